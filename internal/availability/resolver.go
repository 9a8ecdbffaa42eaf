package availability

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// Resolver отвечает на вопросы о доступности слотов поверх загруженного payload
// Payload неизменяем на все время жизни экрана, поэтому resolver не имеет состояния
// Все запросы fail-soft: неизвестная дата/время означают "недоступно", а не ошибку
type Resolver struct {
	payload *domain.AvailabilityPayload
	today   time.Time
}

// NewResolver создает resolver
// today фиксируется на момент создания: прошедшие даты недоступны целиком
func NewResolver(payload *domain.AvailabilityPayload, today time.Time) *Resolver {
	return &Resolver{
		payload: payload,
		today:   domain.DateOnly(today),
	}
}

// IsDateAvailable возвращает true, если дата известна payload,
// не в прошлом и хотя бы один ее слот доступен
func (r *Resolver) IsDateAvailable(date time.Time) bool {
	if domain.DateOnly(date).Before(r.today) {
		return false
	}

	slot := r.payload.FindDate(date)
	if slot == nil {
		return false
	}

	return slot.HasAvailableTime()
}

// TimesFor возвращает все слоты даты, включая занятые
// (занятые слоты рендерятся как неактивные, а не скрываются)
// Для неизвестной даты возвращает пустой список
func (r *Resolver) TimesFor(date time.Time) []domain.TimeSlot {
	slot := r.payload.FindDate(date)
	if slot == nil {
		return []domain.TimeSlot{}
	}
	return slot.Times
}

// LinesFor возвращает свободные линии лифтов для слота date+t
// Пустой список - слот неизвестен, занят или линии не применимы (visit-поток)
func (r *Resolver) LinesFor(date time.Time, t types.TimeString) []string {
	for _, ts := range r.TimesFor(date) {
		if ts.Time.Equal(t) {
			if len(ts.AvailableLines) == 0 {
				return []string{}
			}
			return ts.AvailableLines
		}
	}
	return []string{}
}
