package memory

import (
	"context"
	"fmt"
	"sync"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
)

type SessionRepository struct {
	mu      sync.RWMutex
	data    map[uuid.UUID]domain.Session
	byToken map[string]uuid.UUID
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		data:    map[uuid.UUID]domain.Session{},
		byToken: map[string]uuid.UUID{},
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if _, ok := r.byToken[session.SessionToken]; ok {
		return domain.ErrConflict
	}

	ts := now()
	session.CreatedAt = ts
	if session.LastActive.IsZero() {
		session.LastActive = ts
	}
	r.data[session.ID] = *session
	r.byToken[session.SessionToken] = session.ID

	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.data[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}

	return session, nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byToken[token]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}

	return r.data[id], nil
}

// Update stores last_active and device_info; the token never changes
func (r *SessionRepository) Update(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.data[session.ID]
	if !ok {
		return domain.ErrNotFound
	}

	existing.LastActive = session.LastActive
	existing.DeviceInfo = session.DeviceInfo
	r.data[session.ID] = existing

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.data[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byToken, session.SessionToken)
	delete(r.data, id)

	return nil
}
