package domain

import (
	"time"

	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// TimeSlot временной слот одного дня
// Для сеансов сопровождаемого осмотра (previsit) заполняется Available - остаток мест,
// для заезда (move) - AvailableLines, список свободных линий лифтов
type TimeSlot struct {
	Time           types.TimeString
	Available      int
	AvailableLines []string
}

// HasLines возвращает true, если слот управляется линиями лифтов (move-поток)
func (s *TimeSlot) HasLines() bool {
	return s.AvailableLines != nil
}

// IsAvailable возвращает true, если слот можно забронировать:
// остались места либо свободна хотя бы одна линия
func (s *TimeSlot) IsAvailable() bool {
	if s.HasLines() {
		return len(s.AvailableLines) > 0
	}
	return s.Available > 0
}

// DateSlot все слоты одной даты, времена отсортированы хронологически
type DateSlot struct {
	Date  time.Time
	Times []TimeSlot
}

// HasAvailableTime возвращает true, если хотя бы один слот даты доступен
func (d *DateSlot) HasAvailableTime() bool {
	for i := range d.Times {
		if d.Times[i].IsAvailable() {
			return true
		}
	}
	return false
}

// AvailabilityPayload ответ customer API о доступных слотах
// Загружается один раз при входе на экран и не изменяется до его закрытия
type AvailabilityPayload struct {
	EventID   int64
	DateBegin time.Time
	DateEnd   time.Time
	TimeFirst types.TimeString
	TimeLast  types.TimeString
	TimeUnit  int // длительность слота в минутах
	MaxLimit  int // вместимость слота (previsit-поток, 0 = не задана)
	Dates     []DateSlot
}

// FindDate возвращает DateSlot для указанной даты (сравнение только по дате)
func (p *AvailabilityPayload) FindDate(date time.Time) *DateSlot {
	for i := range p.Dates {
		if SameDate(p.Dates[i].Date, date) {
			return &p.Dates[i]
		}
	}
	return nil
}

// SameDate проверяет, что два значения относятся к одному календарному дню
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
