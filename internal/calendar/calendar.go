package calendar

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// AvailabilityChecker интерфейс проверки доступности даты
type AvailabilityChecker interface {
	IsDateAvailable(date time.Time) bool
}

// Generate строит месячную сетку календаря
// Сетка начинается с ведущих пустых ячеек, выравнивающих первое число
// по столбцу его дня недели (неделя начинается с воскресенья),
// затем идут ячейки всех дней месяца 1..N
// Чистая функция: при одинаковых аргументах результат всегда одинаков
func Generate(
	year int,
	month time.Month,
	checker AvailabilityChecker,
	today time.Time,
	selected *time.Time,
) []domain.CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayOnly := domain.DateOnly(today)

	cells := make([]domain.CalendarCell, 0, int(first.Weekday())+daysInMonth)

	// Ведущие пустые ячейки: их количество равно индексу дня недели
	// первого числа (воскресенье = 0)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, domain.CalendarCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, today.Location())

		isPast := d.Before(todayOnly)
		cell := domain.CalendarCell{
			DayNumber:   day,
			Date:        d,
			IsPast:      isPast,
			IsHoliday:   IsHoliday(d),
			IsAvailable: !isPast && checker.IsDateAvailable(d),
		}
		if selected != nil && domain.SameDate(d, *selected) {
			cell.IsSelected = true
		}

		cells = append(cells, cell)
	}

	return cells
}
