package repository

import (
	"context"
	"errors"
	"fmt"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error)
	FindByCategory(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	CheckEnglishExists(ctx context.Context, db *gorm.DB, english string, excludeWordID *uuid.UUID) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

// Create は english の一意制約違反を model.ErrDuplicateTranslation として返します。
// 同時作成の競合はこの制約で解決される。
func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate english translation on create word",
				"error", result.Error,
				"english", word.English,
			)
			return model.ErrDuplicateTranslation
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"maori", word.Maori,
			"english", word.English,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// FindAll は順序を保証しない
func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding all words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindAll: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindByCategory(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Where("category_id = ?", categoryID).Order("maori ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by category in DB",
			"error", result.Error,
			"category_id", categoryID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByCategory: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("word_id = ?", wordID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate english translation on update word",
				"error", result.Error,
				"word_id", wordID.String(),
			)
			return model.ErrDuplicateTranslation
		}
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// CheckEnglishExists は正規化済みの english が既に使われているかを返します。
// エラーメッセージを分かりやすくするための事前チェックで、競合の防止は一意制約が担う。
func (r *gormWordRepository) CheckEnglishExists(ctx context.Context, db *gorm.DB, english string, excludeWordID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{}).Where("english = ?", english)
	if excludeWordID != nil {
		query = query.Where("word_id <> ?", *excludeWordID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking english existence in DB",
			"error", result.Error,
			"english", english,
		)
		return false, fmt.Errorf("gormWordRepository.CheckEnglishExists: %w", result.Error)
	}
	return count > 0, nil
}
