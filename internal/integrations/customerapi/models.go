package customerapi

import (
	"encoding/json"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// envelope общий конверт ответов customer API
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// refreshRequest тело запроса обновления access-токена
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// refreshData ответ обновления токена
type refreshData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// dongData элемент списка домов
type dongData struct {
	Dong string `json:"dong"`
}

// donghoData элемент списка квартир
type donghoData struct {
	ID       int64   `json:"id"`
	Dong     string  `json:"dong"`
	Ho       string  `json:"ho"`
	UnitType *string `json:"unit_type"`
}

func (d *donghoData) toDomain() domain.Dongho {
	return domain.Dongho{
		ID:       d.ID,
		Dong:     d.Dong,
		Ho:       d.Ho,
		UnitType: d.UnitType,
	}
}

// listData общий контейнер списков customer API
type listData[T any] struct {
	List []T `json:"list"`
}
