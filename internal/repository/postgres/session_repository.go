package postgres

import (
	"context"
	"fmt"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	if err := r.DB.WithContext(ctx).Create(session).Error; err != nil {
		return translate("create session", err)
	}

	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("context error: %w", err)
	}

	var session domain.Session

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		return domain.Session{}, translate("find session", err)
	}

	return session, nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("context error: %w", err)
	}

	var session domain.Session

	err := r.DB.WithContext(ctx).Where("session_token = ?", token).First(&session).Error
	if err != nil {
		return domain.Session{}, translate("find session", err)
	}

	return session, nil
}

func (r *SessionRepository) Update(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"last_active": session.LastActive,
		"device_info": session.DeviceInfo,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Session{}).Where("id = ?", session.ID).Updates(updateData)
	if result.Error != nil {
		return translate("update session", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Session{})
	if result.Error != nil {
		return translate("delete session", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
