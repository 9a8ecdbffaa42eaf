package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/flow"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
)

var (
	// ErrSessionNotFound возвращается, когда сессия отсутствует или истекла
	ErrSessionNotFound = errors.New("session not found")
)

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Metrics интерфейс обновления gauge живых сессий
type Metrics interface {
	SetActiveSessions(n int)
}

// Store in-memory хранилище сессий с ленивым истечением по TTL
// Истекшая сессия удаляется при первом обращении к ней
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	time     TimeProvider
	metrics  Metrics
}

// NewStore создает хранилище сессий
// metrics может быть nil, если сбор метрик выключен
func NewStore(ttl time.Duration, timeProvider TimeProvider, metrics Metrics) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		time:     timeProvider,
		metrics:  metrics,
	}
}

// Create создает сессию для события заезда с собственным upstream-клиентом
func (s *Store) Create(moveUUID string, client *moveapi.Client) (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:       id,
		MoveUUID: moveUUID,
		Client:   client,
		Flow:     flow.New(),
		lastSeen: s.time.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	size := len(s.sessions)
	s.mu.Unlock()

	s.setGauge(size)
	return sess, nil
}

// Get возвращает живую сессию и продлевает ее
// Истекшая сессия удаляется, возвращается ErrSessionNotFound
func (s *Store) Get(id string) (*Session, error) {
	now := s.time.Now()

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	sess, ok = s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		size := len(s.sessions)
		s.mu.Unlock()
		s.setGauge(size)
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = now
	s.mu.Unlock()

	return sess, nil
}

// Delete удаляет сессию
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	size := len(s.sessions)
	s.mu.Unlock()

	s.setGauge(size)
}

// Len возвращает число сессий в хранилище, включая еще не вычищенные истекшие
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) setGauge(size int) {
	if s.metrics == nil {
		return
	}
	s.metrics.SetActiveSessions(size)
}

// newSessionID генерирует криптослучайный идентификатор сессии
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
