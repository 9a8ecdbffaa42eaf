package customerapi

import "sync"

// TokenStore хранит пару токенов сервисного аккаунта
// Доступ из нескольких запросов, поэтому защищен мьютексом
type TokenStore struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// NewTokenStore создает хранилище с начальной парой токенов
func NewTokenStore(accessToken, refreshToken string) *TokenStore {
	return &TokenStore{
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}

// AccessToken возвращает текущий access-токен
func (s *TokenStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken возвращает текущий refresh-токен
func (s *TokenStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Update заменяет пару токенов после успешного refresh
// Пустой refresh-токен в ответе означает, что старый остается в силе
func (s *TokenStore) Update(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	if refreshToken != "" {
		s.refreshToken = refreshToken
	}
}
