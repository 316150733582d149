package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

type memorySession struct {
	mu       sync.RWMutex
	sessions map[int64]memoryEntry

	ttl time.Duration
	now func() time.Time
}

// NewMemorySessionRepository - keeps sessions in process memory. A zero ttl never expires.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return newMemorySessionRepository(ttl, time.Now)
}

func newMemorySessionRepository(ttl time.Duration, now func() time.Time) *memorySession {
	return &memorySession{
		sessions: make(map[int64]memoryEntry),
		ttl:      ttl,
		now:      now,
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	entry := memoryEntry{session: *session}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.sessions[session.Player.ID] = entry
	that.mu.Unlock()

	return nil
}

func (that *memorySession) GetByPlayerID(_ context.Context, playerID int64) (*entity.Session, error) {
	that.mu.RLock()
	entry, ok := that.sessions[playerID]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	if that.expired(entry) {
		that.mu.Lock()
		if current, ok := that.sessions[playerID]; ok && that.expired(current) {
			delete(that.sessions, playerID)
		}
		that.mu.Unlock()

		return nil, apperror.ErrSessionNotFound
	}

	session := entry.session

	return &session, nil
}

func (that *memorySession) DeleteByPlayerID(_ context.Context, playerID int64) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.sessions[playerID]
	if !ok || that.expired(entry) {
		delete(that.sessions, playerID)
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, playerID)

	return nil
}

func (that *memorySession) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
