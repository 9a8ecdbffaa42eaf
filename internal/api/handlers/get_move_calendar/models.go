package get_move_calendar

import (
	"github.com/m04kA/APT-ReservationService/internal/domain"
	getMoveCalendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_move_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	DateBegin string         `json:"date_begin"`
	DateEnd   string         `json:"date_end"`
	Cells     []CalendarCell `json:"cells"`
}

// CalendarCell одна ячейка сетки
// Нулевой day обозначает пустую ячейку выравнивания перед первым числом
type CalendarCell struct {
	Day         int    `json:"day"`
	Date        string `json:"date,omitempty"`
	IsPast      bool   `json:"is_past"`
	IsHoliday   bool   `json:"is_holiday"`
	IsAvailable bool   `json:"is_available"`
	IsSelected  bool   `json:"is_selected"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMoveCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Year:      resp.Year,
		Month:     int(resp.Month),
		DateBegin: resp.DateBegin.Format(domain.DateFormat),
		DateEnd:   resp.DateEnd.Format(domain.DateFormat),
		Cells:     make([]CalendarCell, 0, len(resp.Cells)),
	}

	for _, cell := range resp.Cells {
		c := CalendarCell{
			Day:         cell.DayNumber,
			IsPast:      cell.IsPast,
			IsHoliday:   cell.IsHoliday,
			IsAvailable: cell.IsAvailable,
			IsSelected:  cell.IsSelected,
		}
		if !cell.IsPadding() {
			c.Date = cell.Date.Format(domain.DateFormat)
		}
		out.Cells = append(out.Cells, c)
	}

	return out
}
