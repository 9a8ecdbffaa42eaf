package previsitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

const clientName = "previsitapi"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс записи метрик upstream-запросов
type Metrics interface {
	ObserveUpstream(client, operation, outcome string, seconds float64)
}

// Client клиент публичной части customer API (사전방문)
// Аутентификация не требуется: доступ ограничен знанием UUID события
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента
// metrics может быть nil, если сбор метрик выключен
func NewClient(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// GetEvent получает событие осмотра
// GET /customer/previsit/{uuid}
func (c *Client) GetEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error) {
	var data previsitData
	url := fmt.Sprintf("%s/customer/previsit/%s", c.baseURL, uuid)
	if err := c.do(ctx, "get_event", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	event, err := data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return event, nil
}

// GetEventForProject получает событие осмотра в рамках проекта
// GET /customer/project/{projectId}/previsit/{uuid}
func (c *Client) GetEventForProject(ctx context.Context, projectID int64, uuid string) (*domain.PrevisitEvent, error) {
	var data previsitData
	url := fmt.Sprintf("%s/customer/project/%d/previsit/%s", c.baseURL, projectID, uuid)
	if err := c.do(ctx, "get_event_for_project", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	event, err := data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return event, nil
}

// GetAvailableSlots получает доступные даты и времена осмотра
// GET /customer/previsit/{uuid}/available-slots
func (c *Client) GetAvailableSlots(ctx context.Context, uuid string) (*domain.AvailabilityPayload, error) {
	var data availableSlotsData
	url := fmt.Sprintf("%s/customer/previsit/%s/available-slots", c.baseURL, uuid)
	if err := c.do(ctx, "get_available_slots", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	payload, err := data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return payload, nil
}

// CreateReservation создает запись на осмотр и возвращает ее ID
// POST /customer/previsit/{uuid}/reservations
func (c *Client) CreateReservation(ctx context.Context, uuid string, req *CreateReservationRequest) (int64, error) {
	var data reservationResultData
	url := fmt.Sprintf("%s/customer/previsit/%s/reservations", c.baseURL, uuid)
	if err := c.do(ctx, "create_reservation", http.MethodPost, url, req, &data); err != nil {
		return 0, err
	}
	return data.ID, nil
}

// do выполняет один запрос к customer API и разбирает envelope
func (c *Client) do(ctx context.Context, operation, method, url string, body interface{}, out interface{}) error {
	started := time.Now()
	err := c.doOnce(ctx, method, url, body, out)
	c.observe(operation, started, err)
	if err != nil {
		c.log.Warn("previsitapi: %s %s failed: %v", method, url, err)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}

	if env.Code != 0 {
		return &APIError{Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
		}
	}
	return nil
}

func (c *Client) observe(operation string, started time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstream(clientName, operation, outcome, time.Since(started).Seconds())
}
