package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, db *gorm.DB, session *model.Session) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.Session, error)
	Delete(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) error
	DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, db *gorm.DB, session *model.Session) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(session).Error; err != nil {
		logger.Error("Failed to create session", "error", err, "user_id", session.UserID.String())
		return fmt.Errorf("gormSessionRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)
	var session model.Session
	if err := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find session", "error", err)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", err)
	}
	return &session, nil
}

// Delete はセッション行を削除します。存在しなくてもエラーにしない (ログアウトは冪等)。
func (r *gormSessionRepository) Delete(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.Session{})
	if result.Error != nil {
		logger.Error("Failed to delete session", "error", result.Error)
		return fmt.Errorf("gormSessionRepository.Delete: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})
	if result.Error != nil {
		logger.Error("Failed to delete expired sessions", "error", result.Error)
		return 0, fmt.Errorf("gormSessionRepository.DeleteExpired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
