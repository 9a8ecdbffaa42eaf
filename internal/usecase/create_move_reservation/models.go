package create_move_reservation

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/session"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// Request модель запроса на создание записи на заезд
// Дата, время и линия берутся из подтвержденного выбора сессии
type Request struct {
	Session *session.Session // Сессия жильца (под Lock вызывающего)
}

// Response модель ответа с созданной записью
type Response struct {
	ID   int64            // ID созданной записи
	Date time.Time        // Дата заезда
	Time types.TimeString // Время заезда
	Line string           // Линия лифта
}
