package moveapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

const clientName = "moveapi"

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

// Factory создает клиентов move-потока
// Upstream держит авторизацию в cookie, поэтому каждой пользовательской
// сессии нужен собственный клиент с изолированным cookie jar
type Factory struct {
	baseURL string
	timeout time.Duration
	metrics Metrics
	log     Logger
}

// NewFactory создает фабрику клиентов
// metrics может быть nil, если сбор метрик выключен
func NewFactory(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Factory {
	return &Factory{
		baseURL: baseURL,
		timeout: timeout,
		metrics: metrics,
		log:     log,
	}
}

// NewClient создает клиент с чистым cookie jar для одной сессии
func (f *Factory) NewClient() *Client {
	// cookiejar.New с nil-опциями не возвращает ошибку
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: f.baseURL,
		httpClient: &http.Client{
			Timeout: f.timeout,
			Jar:     jar,
		},
		metrics: f.metrics,
		log:     f.log,
	}
}

// Client клиент move-части customer API, привязанный к одной сессии
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// GetEvent получает событие заезда
// GET /customer/move/{uuid}
func (c *Client) GetEvent(ctx context.Context, uuid string) (*domain.MoveEvent, error) {
	var data moveInfoData
	url := fmt.Sprintf("%s/customer/move/%s", c.baseURL, uuid)
	if err := c.do(ctx, "get_event", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	event, err := data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return event, nil
}

// GetDongs получает список домов проекта
// GET /customer/project/{projectUuid}/dongs
func (c *Client) GetDongs(ctx context.Context, projectUUID string) ([]string, error) {
	var data listData[dongData]
	url := fmt.Sprintf("%s/customer/project/%s/dongs", c.baseURL, projectUUID)
	if err := c.do(ctx, "get_dongs", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	dongs := make([]string, 0, len(data.List))
	for _, d := range data.List {
		dongs = append(dongs, d.Dong)
	}
	return dongs, nil
}

// GetDonghos получает список квартир указанного дома
// GET /customer/project/{projectUuid}/donghos?dong={dong}
func (c *Client) GetDonghos(ctx context.Context, projectUUID, dong string) ([]domain.Dongho, error) {
	var data listData[donghoData]
	url := fmt.Sprintf("%s/customer/project/%s/donghos?dong=%s", c.baseURL, projectUUID, dong)
	if err := c.do(ctx, "get_donghos", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	donghos := make([]domain.Dongho, 0, len(data.List))
	for _, d := range data.List {
		donghos = append(donghos, domain.Dongho{
			ID:       d.ID,
			Dong:     d.Dong,
			Ho:       d.Ho,
			UnitType: d.UnitType,
		})
	}
	return donghos, nil
}

// Login авторизует жильца в move-потоке
// Upstream устанавливает сессионную cookie, она остается в jar клиента
// POST /customer/move/{uuid}/login
func (c *Client) Login(ctx context.Context, uuid string, req *LoginRequest) (*domain.MoveUnit, error) {
	var data loginData
	url := fmt.Sprintf("%s/customer/move/%s/login", c.baseURL, uuid)
	if err := c.do(ctx, "login", http.MethodPost, url, req, &data); err != nil {
		return nil, err
	}
	return data.toDomain(), nil
}

// Logout завершает upstream-сессию
// POST /customer/move/{uuid}/logout
func (c *Client) Logout(ctx context.Context, uuid string) error {
	url := fmt.Sprintf("%s/customer/move/%s/logout", c.baseURL, uuid)
	return c.do(ctx, "logout", http.MethodPost, url, nil, nil)
}

// GetAvailableSlots получает доступные даты и времена заезда
// GET /customer/move/{uuid}/available-slots
func (c *Client) GetAvailableSlots(ctx context.Context, uuid string) (*domain.AvailabilityPayload, error) {
	var data availableSlotsData
	url := fmt.Sprintf("%s/customer/move/%s/available-slots", c.baseURL, uuid)
	if err := c.do(ctx, "get_available_slots", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	payload, err := data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return payload, nil
}

// CreateReservation создает запись на заезд и возвращает ее ID
// POST /customer/move/{uuid}/reservations
func (c *Client) CreateReservation(ctx context.Context, uuid string, req *CreateReservationRequest) (int64, error) {
	var data reservationResultData
	url := fmt.Sprintf("%s/customer/move/%s/reservations", c.baseURL, uuid)
	if err := c.do(ctx, "create_reservation", http.MethodPost, url, req, &data); err != nil {
		return 0, err
	}
	return data.ID, nil
}

// MyReservation получает активную запись и историю текущей сессии
// GET /customer/move/{uuid}/my-reservation
func (c *Client) MyReservation(ctx context.Context, uuid string) (*domain.MyReservations, error) {
	var data myReservationData
	url := fmt.Sprintf("%s/customer/move/%s/my-reservation", c.baseURL, uuid)
	if err := c.do(ctx, "my_reservation", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	out, err := data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}

// CancelReservation отменяет запись на заезд
// DELETE /customer/move/{uuid}/reservations/{id}
func (c *Client) CancelReservation(ctx context.Context, uuid string, reservationID int64, reason *string) error {
	var data cancelResultData
	url := fmt.Sprintf("%s/customer/move/%s/reservations/%d", c.baseURL, uuid, reservationID)
	return c.do(ctx, "cancel_reservation", http.MethodDelete, url, &cancelRequest{Reason: reason}, &data)
}

// do выполняет один запрос к customer API и разбирает envelope
func (c *Client) do(ctx context.Context, operation, method, url string, body interface{}, out interface{}) error {
	started := time.Now()
	err := c.doOnce(ctx, method, url, body, out)
	c.observe(operation, started, err)
	if err != nil {
		c.log.Warn("moveapi: %s %s failed: %v", method, url, err)
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
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
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
