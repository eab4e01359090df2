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

type CategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *model.Category) error
	FindByID(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) (*model.Category, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Category, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Category, error)
	Delete(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) error
}

type gormCategoryRepository struct{}

func NewGormCategoryRepository() CategoryRepository {
	return &gormCategoryRepository{}
}

// Create は名前の一意制約違反を model.ErrDuplicateCategory として返します
func (r *gormCategoryRepository) Create(ctx context.Context, db *gorm.DB, category *model.Category) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(category)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create category", "error", result.Error, "name", category.Name)
			return model.ErrDuplicateCategory
		}
		logger.Error("Error creating category in DB", "error", result.Error, "name", category.Name)
		return fmt.Errorf("gormCategoryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var category model.Category

	result := db.WithContext(ctx).Where("category_id = ?", categoryID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding category by ID in DB", "error", result.Error, "category_id", categoryID.String())
		return nil, fmt.Errorf("gormCategoryRepository.FindByID: %w", result.Error)
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var category model.Category

	result := db.WithContext(ctx).Where("name = ?", name).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Category not found by name", "name", name)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding category by name in DB", "error", result.Error, "name", name)
		return nil, fmt.Errorf("gormCategoryRepository.FindByName: %w", result.Error)
	}
	return &category, nil
}

// List は名前の昇順で全カテゴリを返します
func (r *gormCategoryRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var categories []*model.Category

	result := db.WithContext(ctx).Order("name ASC").Find(&categories)
	if result.Error != nil {
		logger.Error("Error listing categories in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCategoryRepository.List: %w", result.Error)
	}
	return categories, nil
}

// Delete はカテゴリ行だけを削除します。参照している単語には触れない。
func (r *gormCategoryRepository) Delete(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&model.Category{})
	if result.Error != nil {
		logger.Error("Error deleting category in DB", "error", result.Error, "category_id", categoryID.String())
		return fmt.Errorf("gormCategoryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
