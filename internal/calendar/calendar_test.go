package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/pkg/ptr"
)

// checkerFunc адаптер функции под AvailabilityChecker
type checkerFunc func(time.Time) bool

func (f checkerFunc) IsDateAvailable(d time.Time) bool { return f(d) }

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGenerate_PaddingAlignsFirstWeekday(t *testing.T) {
	all := checkerFunc(func(time.Time) bool { return true })

	// 1 декабря 2024 - воскресенье: без пустых ячеек
	cells := Generate(2024, time.December, all, date("2024-12-01"), nil)
	require.Len(t, cells, 31)
	assert.Equal(t, 1, cells[0].DayNumber)

	// 1 августа 2024 - четверг: четыре пустые ячейки
	cells = Generate(2024, time.August, all, date("2024-08-01"), nil)
	require.Len(t, cells, 4+31)
	for i := 0; i < 4; i++ {
		assert.True(t, cells[i].IsPadding())
	}
	assert.Equal(t, 1, cells[4].DayNumber)
	assert.Equal(t, 31, cells[len(cells)-1].DayNumber)
}

func TestGenerate_PastAndAvailabilityFlags(t *testing.T) {
	avail := map[string]bool{"2024-08-14": true, "2024-08-20": true}
	checker := checkerFunc(func(d time.Time) bool {
		return avail[d.Format(domain.DateFormat)]
	})

	cells := Generate(2024, time.August, checker, date("2024-08-15"), nil)

	byDay := make(map[int]domain.CalendarCell)
	for _, c := range cells {
		if !c.IsPadding() {
			byDay[c.DayNumber] = c
		}
	}

	// 14-е доступно по payload, но уже в прошлом
	assert.True(t, byDay[14].IsPast)
	assert.False(t, byDay[14].IsAvailable)

	// Сегодняшний день прошлым не считается
	assert.False(t, byDay[15].IsPast)

	assert.True(t, byDay[20].IsAvailable)
	assert.False(t, byDay[21].IsAvailable)

	// 15 августа - 광복절
	assert.True(t, byDay[15].IsHoliday)
	assert.False(t, byDay[16].IsHoliday)
}

func TestGenerate_SelectedFlag(t *testing.T) {
	all := checkerFunc(func(time.Time) bool { return true })

	cells := Generate(2025, time.March, all, date("2025-03-01"), ptr.Ptr(date("2025-03-10")))

	var selected []int
	for _, c := range cells {
		if c.IsSelected {
			selected = append(selected, c.DayNumber)
		}
	}
	assert.Equal(t, []int{10}, selected)
}

func TestGenerate_IsPure(t *testing.T) {
	checker := checkerFunc(func(d time.Time) bool { return d.Day()%2 == 0 })
	today := date("2025-02-05")
	sel := ptr.Ptr(date("2025-02-12"))

	first := Generate(2025, time.February, checker, today, sel)
	second := Generate(2025, time.February, checker, today, sel)

	assert.Equal(t, first, second)
}
