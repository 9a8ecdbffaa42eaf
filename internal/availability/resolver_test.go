package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func visitPayload() *domain.AvailabilityPayload {
	return &domain.AvailabilityPayload{
		DateBegin: date("2024-12-01"),
		DateEnd:   date("2024-12-02"),
		TimeFirst: "10:00",
		TimeLast:  "17:00",
		TimeUnit:  30,
		MaxLimit:  5,
		Dates: []domain.DateSlot{
			{
				Date: date("2024-12-01"),
				Times: []domain.TimeSlot{
					{Time: "10:00", Available: 0},
					{Time: "10:30", Available: 0},
				},
			},
			{
				Date: date("2024-12-02"),
				Times: []domain.TimeSlot{
					{Time: "10:00", Available: 2},
				},
			},
		},
	}
}

func TestResolver_IsDateAvailable(t *testing.T) {
	r := NewResolver(visitPayload(), date("2024-11-20"))

	// 2024-12-01 полностью занята, 2024-12-02 имеет свободный слот
	assert.False(t, r.IsDateAvailable(date("2024-12-01")))
	assert.True(t, r.IsDateAvailable(date("2024-12-02")))
}

func TestResolver_IsDateAvailable_UnknownDate(t *testing.T) {
	r := NewResolver(visitPayload(), date("2024-11-20"))

	// Дата вне загруженного диапазона - недоступна, без ошибок
	assert.False(t, r.IsDateAvailable(date("2025-01-15")))
	assert.False(t, r.IsDateAvailable(date("2024-11-30")))
}

func TestResolver_IsDateAvailable_PastDate(t *testing.T) {
	// "Сегодня" позже обеих дат payload
	r := NewResolver(visitPayload(), date("2024-12-03"))

	assert.False(t, r.IsDateAvailable(date("2024-12-02")))

	// Сама граница "сегодня" прошлым не считается
	r = NewResolver(visitPayload(), date("2024-12-02"))
	assert.True(t, r.IsDateAvailable(date("2024-12-02")))
}

func TestResolver_TimesFor(t *testing.T) {
	r := NewResolver(visitPayload(), date("2024-11-20"))

	times := r.TimesFor(date("2024-12-02"))
	require.Len(t, times, 1)
	assert.Equal(t, types.TimeString("10:00"), times[0].Time)
	assert.Greater(t, times[0].Available, 0)

	// Занятые слоты перечисляются, но помечены недоступными
	times = r.TimesFor(date("2024-12-01"))
	require.Len(t, times, 2)
	for _, ts := range times {
		assert.False(t, ts.IsAvailable())
	}

	assert.Empty(t, r.TimesFor(date("2024-12-25")))
}

func TestResolver_LinesFor(t *testing.T) {
	payload := &domain.AvailabilityPayload{
		Dates: []domain.DateSlot{
			{
				Date: date("2025-01-10"),
				Times: []domain.TimeSlot{
					{Time: "09:00", AvailableLines: []string{"A", "B"}},
					{Time: "10:00", AvailableLines: []string{}},
				},
			},
		},
	}
	r := NewResolver(payload, date("2025-01-01"))

	assert.Equal(t, []string{"A", "B"}, r.LinesFor(date("2025-01-10"), "09:00"))
	assert.Empty(t, r.LinesFor(date("2025-01-10"), "10:00"))
	assert.Empty(t, r.LinesFor(date("2025-01-10"), "11:00"))
	assert.Empty(t, r.LinesFor(date("2025-01-11"), "09:00"))
}

func TestResolver_LinesFor_VisitFlow(t *testing.T) {
	// Visit-поток не использует линии: LinesFor всегда пуст
	r := NewResolver(visitPayload(), date("2024-11-20"))
	assert.Empty(t, r.LinesFor(date("2024-12-02"), "10:00"))
}
