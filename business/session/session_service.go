package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/pkg/logger"

	"github.com/google/uuid"
)

const tokenBytes = 32

// SessionRepository contract interface
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (domain.Session, error)
	FindByToken(ctx context.Context, token string) (domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionCache is an optional fast path from token to session id
type SessionCache interface {
	Store(ctx context.Context, token string, sessionID uuid.UUID, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (uuid.UUID, error)
	Refresh(ctx context.Context, token string, ttl time.Duration) error
	Forget(ctx context.Context, token string) error
}

// Created is returned once; the token is never readable afterwards
type Created struct {
	SessionToken string    `json:"session_token"`
	SessionID    uuid.UUID `json:"session_id"`
}

type sessionService struct {
	sessionRepo SessionRepository
	cache       SessionCache
	ttl         time.Duration
	now         func() time.Time
}

// NewSessionService builds the service; cache may be nil.
func NewSessionService(sessionRepo SessionRepository, cache SessionCache, ttl time.Duration) *sessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		cache:       cache,
		ttl:         ttl,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *sessionService) CreateSession(ctx context.Context, deviceInfo map[string]interface{}) (*Created, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create session")
		return nil, fmt.Errorf("context error: %w", err)
	}

	token, err := newToken()
	if err != nil {
		logger.Error("failed to generate session token", err)
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if deviceInfo == nil {
		deviceInfo = map[string]interface{}{}
	}

	session := domain.Session{
		ID:           uuid.New(),
		SessionToken: token,
		DeviceInfo:   deviceInfo,
		LastActive:   s.now(),
	}

	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		logger.Error("failed to create new session", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Store(ctx, token, session.ID, s.ttl); err != nil {
			logger.Warn("failed to cache session token", err)
		}
	}

	logger.Info("session created successfully", "session_id", session.ID.String())

	return &Created{SessionToken: token, SessionID: session.ID}, nil
}

// find resolves a token through the cache first, then the store
func (s *sessionService) find(ctx context.Context, token string) (domain.Session, error) {
	if s.cache != nil {
		id, err := s.cache.Lookup(ctx, token)
		if err == nil {
			session, err := s.sessionRepo.FindByID(ctx, id)
			if err == nil && session.SessionToken == token {
				return session, nil
			}
		} else if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("session cache lookup failed", err)
		}
	}

	return s.sessionRepo.FindByToken(ctx, token)
}

// TouchSession records activity for the session owning token. Device info
// replaces the stored value only when provided.
func (s *sessionService) TouchSession(ctx context.Context, token string, deviceInfo map[string]interface{}) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when touching session")
		return domain.Session{}, fmt.Errorf("context error: %w", err)
	}

	if token == "" {
		return domain.Session{}, fmt.Errorf("%w: session token is required", domain.ErrInvalidInput)
	}

	session, err := s.find(ctx, token)
	if err != nil {
		logger.Error("session not found", err)
		return domain.Session{}, err
	}

	session.LastActive = s.now()
	if deviceInfo != nil {
		session.DeviceInfo = deviceInfo
	}

	if err := s.sessionRepo.Update(ctx, &session); err != nil {
		logger.Error("failed to update session", err)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, err
		}
		return domain.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Refresh(ctx, token, s.ttl); err != nil {
			if err := s.cache.Store(ctx, token, session.ID, s.ttl); err != nil {
				logger.Warn("failed to cache session token", err)
			}
		}
	}

	return session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get session by id")
		return domain.Session{}, fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find session", err)
		return domain.Session{}, err
	}

	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting session")
		return fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("session not found", err)
		return err
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete session", err)
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Forget(ctx, session.SessionToken); err != nil {
			logger.Warn("failed to forget cached session", err)
		}
	}

	logger.Info("session deleted successfully", "session_id", id.String())

	return nil
}
