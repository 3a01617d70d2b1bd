package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессии с таким токеном нет или она истекла
	ErrSessionNotFound = errors.New("sessions: session not found")
)

// Metrics интерфейс сбора метрик сессий
type Metrics interface {
	SetActiveSessions(n int)
}

// Store хранилище сессий поставщиков в памяти процесса.
// Наружу отдаются копии, изменения сохраняются через Save.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time
	metrics  Metrics
}

// NewStore создает хранилище с временем жизни сессии ttl
func NewStore(ttl time.Duration, metrics Metrics) *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
		metrics:  metrics,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Create открывает сессию для прошедшего проверку поставщика
func (s *Store) Create(cred *domain.Credential) *domain.Session {
	now := s.now()
	session := &domain.Session{
		Token:     uuid.NewString(),
		Supplier:  cred.Username,
		Email:     cred.Email,
		CC:        append([]string(nil), cred.CC...),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = session
	s.reportLocked()
	return session.Clone()
}

// Get возвращает копию сессии по токену
func (s *Store) Get(token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired(s.now()) {
		delete(s.sessions, token)
		s.reportLocked()
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Save сохраняет изменения черновика сессии
func (s *Store) Save(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[session.Token]
	if !ok || current.IsExpired(s.now()) {
		return ErrSessionNotFound
	}

	updated := session.Clone()
	updated.CreatedAt = current.CreatedAt
	updated.ExpiresAt = current.ExpiresAt
	s.sessions[session.Token] = updated
	return nil
}

// Delete закрывает сессию; отсутствие сессии не ошибка
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	s.reportLocked()
}

// PurgeExpired удаляет истекшие сессии и возвращает их число
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for token, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, token)
			purged++
		}
	}
	if purged > 0 {
		s.reportLocked()
	}
	return purged
}

func (s *Store) reportLocked() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(len(s.sessions))
	}
}
