package move_selection

import (
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

// ChooseDateRequest HTTP request model
type ChooseDateRequest struct {
	Date string `json:"date"` // "2024-12-05"
}

// ChooseTimeRequest HTTP request model
type ChooseTimeRequest struct {
	Time string `json:"time"` // "09:30"
}

// ChooseLineRequest HTTP request model
type ChooseLineRequest struct {
	Line string `json:"line"` // "A"
}

// StateResponse текущее состояние выбора
// pending_lines заполняется, когда слот выбран, а линию еще надо выбрать
type StateResponse struct {
	State        string   `json:"state"`
	Date         string   `json:"date,omitempty"`
	Time         string   `json:"time,omitempty"`
	Line         *string  `json:"line,omitempty"`
	PendingLines []string `json:"pending_lines,omitempty"`
}

// stateResponse собирает ответ о состоянии из автомата сессии
// Вызывается под Lock сессии
func stateResponse(sess *session.Session, machine *selection.Machine) *StateResponse {
	out := &StateResponse{State: machine.State().String()}

	if machine.State() == selection.StateEmpty {
		return out
	}

	out.Date = machine.Date().Format(domain.DateFormat)

	if machine.State() == selection.StateDateChosen {
		return out
	}

	out.Time = machine.Time().String()
	out.Line = machine.Line()

	if machine.State() == selection.StateTimeChosen {
		out.PendingLines = linesFor(sess.Payload, machine)
	}

	return out
}

// linesFor находит свободные линии выбранного слота
func linesFor(payload *domain.AvailabilityPayload, machine *selection.Machine) []string {
	if payload == nil {
		return nil
	}
	ds := payload.FindDate(machine.Date())
	if ds == nil {
		return nil
	}
	for _, ts := range ds.Times {
		if ts.Time.Equal(machine.Time()) {
			return ts.AvailableLines
		}
	}
	return nil
}
