package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

// movePayload один день заезда: 09:00 с единственной линией A,
// 10:00 с линиями A и B, 11:00 без свободных линий
func movePayload() *domain.AvailabilityPayload {
	return &domain.AvailabilityPayload{
		Dates: []domain.DateSlot{
			{
				Date: date("2025-02-10"),
				Times: []domain.TimeSlot{
					{Time: "09:00", AvailableLines: []string{"A"}},
					{Time: "10:00", AvailableLines: []string{"A", "B"}},
					{Time: "11:00", AvailableLines: []string{}},
				},
			},
		},
	}
}

func moveMachine() *Machine {
	return NewMachine(availability.NewResolver(movePayload(), date("2025-02-01")))
}

func TestMachine_SingleLineAutoAdvance(t *testing.T) {
	m := moveMachine()

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	require.NoError(t, m.ChooseTime("09:00"))

	// Единственная линия выбирается без явного ChooseLine
	assert.Equal(t, StateLineChosen, m.State())
	require.NotNil(t, m.Line())
	assert.Equal(t, "A", *m.Line())

	snap, err := m.Confirm()
	require.NoError(t, err)
	require.NotNil(t, snap.Line)
	assert.Equal(t, "A", *snap.Line)
}

func TestMachine_MultipleLinesRequireExplicitChoice(t *testing.T) {
	m := moveMachine()

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	require.NoError(t, m.ChooseTime("10:00"))

	assert.Equal(t, StateTimeChosen, m.State())
	assert.Nil(t, m.Line())

	// Подтверждение до выбора линии отклоняется
	_, err := m.Confirm()
	assert.ErrorIs(t, err, ErrLinePending)

	require.NoError(t, m.ChooseLine("B"))
	assert.Equal(t, StateLineChosen, m.State())

	snap, err := m.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "B", *snap.Line)
}

func TestMachine_VisitFlowWithoutLines(t *testing.T) {
	payload := &domain.AvailabilityPayload{
		Dates: []domain.DateSlot{
			{
				Date:  date("2025-02-10"),
				Times: []domain.TimeSlot{{Time: "14:00", Available: 3}},
			},
		},
	}
	m := NewMachine(availability.NewResolver(payload, date("2025-02-01")))

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	require.NoError(t, m.ChooseTime("14:00"))

	// Линии не применимы: шаг выбора линии пропущен
	assert.Equal(t, StateLineChosen, m.State())
	assert.Nil(t, m.Line())

	snap, err := m.Confirm()
	require.NoError(t, err)
	assert.Nil(t, snap.Line)
	assert.Equal(t, date("2025-02-10"), snap.Date)
}

func TestMachine_TimeWithoutDateRejected(t *testing.T) {
	m := moveMachine()

	err := m.ChooseTime("09:00")
	assert.ErrorIs(t, err, ErrNoDateChosen)
	assert.Equal(t, StateEmpty, m.State())
}

func TestMachine_UnavailableChoicesRejected(t *testing.T) {
	m := moveMachine()

	assert.ErrorIs(t, m.ChooseDate(date("2025-03-01")), ErrDateUnavailable)

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	assert.ErrorIs(t, m.ChooseTime("11:00"), ErrTimeUnavailable)
	assert.ErrorIs(t, m.ChooseTime("23:00"), ErrTimeUnavailable)

	require.NoError(t, m.ChooseTime("10:00"))
	assert.ErrorIs(t, m.ChooseLine("C"), ErrLineUnavailable)
}

func TestMachine_UpstreamChangeClearsDownstream(t *testing.T) {
	m := moveMachine()

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	require.NoError(t, m.ChooseTime("09:00"))
	require.NotNil(t, m.Line())

	// Повторный выбор даты сбрасывает время и линию
	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	assert.Equal(t, StateDateChosen, m.State())
	assert.Equal(t, "", m.Time().String())
	assert.Nil(t, m.Line())
}

func TestMachine_CancelIsIdempotent(t *testing.T) {
	m := moveMachine()

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	require.NoError(t, m.ChooseTime("09:00"))

	m.Cancel()
	first := *m

	m.Cancel()
	assert.Equal(t, first.state, m.state)
	assert.Equal(t, StateEmpty, m.State())
	assert.True(t, m.Date().IsZero())
	assert.Nil(t, m.Line())
}

func TestMachine_NoTransitionsAfterConfirm(t *testing.T) {
	m := moveMachine()

	require.NoError(t, m.ChooseDate(date("2025-02-10")))
	require.NoError(t, m.ChooseTime("09:00"))

	_, err := m.Confirm()
	require.NoError(t, err)

	assert.ErrorIs(t, m.ChooseDate(date("2025-02-10")), ErrAlreadyConfirmed)
	assert.ErrorIs(t, m.ChooseTime("09:00"), ErrAlreadyConfirmed)
	assert.ErrorIs(t, m.ChooseLine("A"), ErrAlreadyConfirmed)

	_, err = m.Confirm()
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	// Cancel выводит машину из Confirmed для нового выбора
	m.Cancel()
	assert.Equal(t, StateEmpty, m.State())
	require.NoError(t, m.ChooseDate(date("2025-02-10")))
}

func TestMachine_ConfirmFromEmptyRejected(t *testing.T) {
	m := moveMachine()

	_, err := m.Confirm()
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}
