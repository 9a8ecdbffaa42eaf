package get_visit_slots

import (
	"time"

	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// Request модель запроса доступных слотов осмотра
type Request struct {
	EventUUID string // UUID события осмотра
}

// Response модель ответа со слотами по датам
type Response struct {
	EventID   int64            // ID события
	DateBegin time.Time        // Первая дата периода
	DateEnd   time.Time        // Последняя дата периода
	TimeFirst types.TimeString // Первое время дня
	TimeLast  types.TimeString // Последнее время дня
	TimeUnit  int              // Шаг сетки в минутах
	MaxLimit  int              // Вместимость одного слота
	Dates     []DateSlots      // Слоты по датам
}

// DateSlots слоты одной даты
type DateSlots struct {
	Date        time.Time // Дата
	IsAvailable bool      // Есть ли хотя бы один свободный слот
	Times       []Slot    // Слоты времени
}

// Slot один слот времени
type Slot struct {
	Time        types.TimeString // Время слота
	Available   int              // Свободных мест
	IsAvailable bool             // Можно ли записаться
}
