package get_move_calendar

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

// Request модель запроса календаря заезда
type Request struct {
	Session *session.Session // Сессия жильца (под Lock вызывающего)
	Year    int              // Год отображаемого месяца
	Month   time.Month       // Отображаемый месяц
}

// Response модель ответа с сеткой календаря
type Response struct {
	Year      int                   // Год
	Month     time.Month            // Месяц
	DateBegin time.Time             // Первая дата периода события
	DateEnd   time.Time             // Последняя дата периода события
	Cells     []domain.CalendarCell // Ячейки сетки, начиная с воскресенья
}
