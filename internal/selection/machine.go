package selection

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// State состояние каскадного выбора
type State int

const (
	StateEmpty State = iota
	StateDateChosen
	StateTimeChosen
	StateLineChosen
	StateConfirmed
)

// String возвращает имя состояния для логов и ответов API
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDateChosen:
		return "date_chosen"
	case StateTimeChosen:
		return "time_chosen"
	case StateLineChosen:
		return "line_chosen"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Resolver интерфейс резолвера доступности слотов
type Resolver interface {
	IsDateAvailable(date time.Time) bool
	TimesFor(date time.Time) []domain.TimeSlot
	LinesFor(date time.Time, t types.TimeString) []string
}

// Snapshot неизменяемый снимок завершенного выбора
// Line == nil, когда линии лифтов не применимы (visit-поток)
type Snapshot struct {
	Date time.Time
	Time types.TimeString
	Line *string
}

// Machine машина каскадного выбора: дата -> время -> линия лифта
// Изменение верхнего уровня сбрасывает все уровни ниже него
// Инварианты: время выбирается только при выбранной дате и из ее слотов,
// линия - только при выбранном времени и из его свободных линий
type Machine struct {
	resolver Resolver

	state   State
	date    time.Time
	time    types.TimeString
	line    *string
	linesNA bool // линии не применимы для выбранного времени
}

// NewMachine создает машину в состоянии Empty
func NewMachine(resolver Resolver) *Machine {
	return &Machine{resolver: resolver, state: StateEmpty}
}

// State возвращает текущее состояние
func (m *Machine) State() State {
	return m.state
}

// Date возвращает выбранную дату (zero value, если не выбрана)
func (m *Machine) Date() time.Time {
	return m.date
}

// Time возвращает выбранное время (пустая строка, если не выбрано)
func (m *Machine) Time() types.TimeString {
	return m.time
}

// Line возвращает выбранную линию лифта или nil
func (m *Machine) Line() *string {
	return m.line
}

// ChooseDate выбирает дату и сбрасывает время и линию
func (m *Machine) ChooseDate(d time.Time) error {
	if m.state == StateConfirmed {
		return ErrAlreadyConfirmed
	}
	if !m.resolver.IsDateAvailable(d) {
		return ErrDateUnavailable
	}

	m.date = domain.DateOnly(d)
	m.clearTime()
	m.state = StateDateChosen
	return nil
}

// ChooseTime выбирает время для уже выбранной даты
// Если у слота ровно одна свободная линия - она выбирается автоматически,
// если линий нет вовсе (visit-поток) - шаг выбора линии пропускается,
// если линий несколько - машина остается в TimeChosen до явного ChooseLine
func (m *Machine) ChooseTime(t types.TimeString) error {
	if m.state == StateConfirmed {
		return ErrAlreadyConfirmed
	}
	if m.state == StateEmpty {
		return ErrNoDateChosen
	}

	slot := m.findSlot(t)
	if slot == nil || !slot.IsAvailable() {
		return ErrTimeUnavailable
	}

	m.time = slot.Time
	m.line = nil
	m.linesNA = false

	lines := m.resolver.LinesFor(m.date, slot.Time)
	switch len(lines) {
	case 0:
		m.linesNA = true
		m.state = StateLineChosen
	case 1:
		line := lines[0]
		m.line = &line
		m.state = StateLineChosen
	default:
		m.state = StateTimeChosen
	}
	return nil
}

// ChooseLine явно выбирает линию лифта для уже выбранного времени
func (m *Machine) ChooseLine(line string) error {
	if m.state == StateConfirmed {
		return ErrAlreadyConfirmed
	}
	if m.state == StateEmpty || m.state == StateDateChosen {
		return ErrNoTimeChosen
	}

	for _, l := range m.resolver.LinesFor(m.date, m.time) {
		if l == line {
			m.line = &l
			m.state = StateLineChosen
			return nil
		}
	}
	return ErrLineUnavailable
}

// Confirm фиксирует выбор и возвращает его снимок
// Требует полностью завершенного выбора (LineChosen либо TimeChosen
// при неприменимых линиях - такого состояния машина не допускает)
func (m *Machine) Confirm() (*Snapshot, error) {
	switch m.state {
	case StateConfirmed:
		return nil, ErrAlreadyConfirmed
	case StateTimeChosen:
		// Свободных линий больше одной, а явного выбора не было
		return nil, ErrLinePending
	case StateLineChosen:
		// ok
	default:
		return nil, ErrSelectionIncomplete
	}

	m.state = StateConfirmed

	snap := &Snapshot{Date: m.date, Time: m.time}
	if !m.linesNA && m.line != nil {
		line := *m.line
		snap.Line = &line
	}
	return snap, nil
}

// Snapshot возвращает снимок подтвержденного выбора
// До подтверждения снимка нет
func (m *Machine) Snapshot() (*Snapshot, error) {
	if m.state != StateConfirmed {
		return nil, ErrSelectionIncomplete
	}

	snap := &Snapshot{Date: m.date, Time: m.time}
	if !m.linesNA && m.line != nil {
		line := *m.line
		snap.Line = &line
	}
	return snap, nil
}

// Cancel сбрасывает машину в Empty из любого состояния (идемпотентно)
func (m *Machine) Cancel() {
	m.state = StateEmpty
	m.date = time.Time{}
	m.clearTime()
}

func (m *Machine) clearTime() {
	m.time = ""
	m.line = nil
	m.linesNA = false
}

func (m *Machine) findSlot(t types.TimeString) *domain.TimeSlot {
	times := m.resolver.TimesFor(m.date)
	for i := range times {
		if times[i].Time.Equal(t) {
			return &times[i]
		}
	}
	return nil
}
