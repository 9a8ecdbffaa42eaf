package get_visit_calendar

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// Request модель запроса календаря осмотра
type Request struct {
	EventUUID    string     // UUID события осмотра
	Year         int        // Год отображаемого месяца
	Month        time.Month // Отображаемый месяц
	SelectedDate *time.Time // Выбранная дата (опционально)
}

// Response модель ответа с сеткой календаря
type Response struct {
	Year      int                   // Год
	Month     time.Month            // Месяц
	DateBegin time.Time             // Первая дата периода события
	DateEnd   time.Time             // Последняя дата периода события
	Cells     []domain.CalendarCell // Ячейки сетки, начиная с воскресенья
}
