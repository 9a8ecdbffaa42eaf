package domain

import "time"

// CalendarCell ячейка месячной сетки календаря
// Ячейки с DayNumber == 0 - ведущие пустые ячейки для выравнивания
// первого дня месяца по столбцу его дня недели (неделя начинается с воскресенья)
type CalendarCell struct {
	DayNumber   int
	Date        time.Time
	IsPast      bool
	IsHoliday   bool
	IsAvailable bool
	IsSelected  bool
}

// IsPadding возвращает true для пустой выравнивающей ячейки
func (c *CalendarCell) IsPadding() bool {
	return c.DayNumber == 0
}
