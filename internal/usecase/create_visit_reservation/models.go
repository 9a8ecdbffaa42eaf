package create_visit_reservation

import (
	"time"

	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// Request модель запроса на создание записи на осмотр
type Request struct {
	EventUUID   string  `validate:"required"`                     // UUID события осмотра
	DonghoID    int64   `validate:"required,gt=0"`                // ID квартиры
	Date        string  `validate:"required,datetime=2006-01-02"` // Дата записи
	Time        string  `validate:"required,datetime=15:04"`      // Время записи
	WriterName  string  `validate:"required,max=50"`              // Имя записавшегося
	WriterPhone string  `validate:"required,korean_phone"`        // Телефон записавшегося
	Memo        *string `validate:"omitempty,max=500"`            // Памятка (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID   int64            // ID созданной записи
	Date time.Time        // Дата записи
	Time types.TimeString // Время записи
}
