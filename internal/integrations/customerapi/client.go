package customerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

const clientName = "customerapi"

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

// Client клиент закрытой части customer API под bearer-токеном
// При 401 один раз обновляет токен через /auth/refresh и повторяет запрос
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenStore
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента
// metrics может быть nil, если сбор метрик выключен
func NewClient(baseURL string, timeout time.Duration, tokens *TokenStore, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:  tokens,
		metrics: metrics,
		log:     log,
	}
}

// GetDongs получает список домов проекта
// GET /customer/project/{projectId}/dongs
func (c *Client) GetDongs(ctx context.Context, projectID int64) ([]string, error) {
	var data listData[dongData]
	url := fmt.Sprintf("%s/customer/project/%d/dongs", c.baseURL, projectID)
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
// GET /customer/project/{projectId}/donghos?dong={dong}
func (c *Client) GetDonghos(ctx context.Context, projectID int64, dong string) ([]domain.Dongho, error) {
	var data listData[donghoData]
	url := fmt.Sprintf("%s/customer/project/%d/donghos?dong=%s", c.baseURL, projectID, dong)
	if err := c.do(ctx, "get_donghos", http.MethodGet, url, nil, &data); err != nil {
		return nil, err
	}

	donghos := make([]domain.Dongho, 0, len(data.List))
	for _, d := range data.List {
		donghos = append(donghos, d.toDomain())
	}
	return donghos, nil
}

// do выполняет запрос с bearer-токеном
// Если токен отклонен, один раз обновляет его и повторяет запрос
func (c *Client) do(ctx context.Context, operation, method, url string, body interface{}, out interface{}) error {
	started := time.Now()
	err := c.doAuthorized(ctx, method, url, body, out)
	if errors.Is(err, ErrUnauthorized) {
		if refreshErr := c.refresh(ctx); refreshErr != nil {
			c.observe(operation, started, refreshErr)
			c.log.Warn("customerapi: token refresh failed: %v", refreshErr)
			return refreshErr
		}
		err = c.doAuthorized(ctx, method, url, body, out)
	}
	c.observe(operation, started, err)
	if err != nil {
		c.log.Warn("customerapi: %s %s failed: %v", method, url, err)
	}
	return err
}

func (c *Client) doAuthorized(ctx context.Context, method, url string, body interface{}, out interface{}) error {
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
	req.Header.Set("Authorization", "Bearer "+c.tokens.AccessToken())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
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

// refresh обновляет пару токенов
// POST /auth/refresh
func (c *Client) refresh(ctx context.Context) error {
	encoded, err := json.Marshal(refreshRequest{RefreshToken: c.tokens.RefreshToken()})
	if err != nil {
		return fmt.Errorf("%w: failed to encode refresh request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/auth/refresh", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: failed to create refresh request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute refresh request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: refresh rejected with status %d", ErrUnauthorized, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode refresh envelope: %v", ErrInvalidResponse, err)
	}
	if env.Code != 0 {
		return fmt.Errorf("%w: refresh rejected: %s", ErrUnauthorized, env.Message)
	}

	var data refreshData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("%w: failed to decode refresh data: %v", ErrInvalidResponse, err)
	}
	if data.AccessToken == "" {
		return fmt.Errorf("%w: refresh returned empty access token", ErrInvalidResponse)
	}

	c.tokens.Update(data.AccessToken, data.RefreshToken)
	c.log.Info("customerapi: access token refreshed")
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
