package service

import (
	"context"
	"errors"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name CategoryService --output ./mocks --outpkg mocks --structname MockCategoryService --filename mock_category_service.go
type CategoryService interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*model.Category, error)
	GetCategoryDetail(ctx context.Context, categoryID uuid.UUID) (*model.CategoryDetail, error)
	CreateCategory(ctx context.Context, name string, userCreated bool) (*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	SeedCategories(ctx context.Context, names []string) (int, error)
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
	wordRepo     repository.WordRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repository.CategoryRepository, wordRepo repository.WordRepository) CategoryService {
	return &categoryService{
		db:           db,
		categoryRepo: categoryRepo,
		wordRepo:     wordRepo,
	}
}

// ListCategories は名前の昇順で返します
func (s *categoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx, s.db)
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID uuid.UUID) (*model.Category, error) {
	return s.categoryRepo.FindByID(ctx, s.db, categoryID)
}

// GetCategoryDetail はカテゴリと所属する単語 (maori 昇順) を返します
func (s *categoryService) GetCategoryDetail(ctx context.Context, categoryID uuid.UUID) (*model.CategoryDetail, error) {
	category, err := s.categoryRepo.FindByID(ctx, s.db, categoryID)
	if err != nil {
		return nil, err
	}
	words, err := s.wordRepo.FindByCategory(ctx, s.db, categoryID)
	if err != nil {
		return nil, err
	}
	return &model.CategoryDetail{Category: category, Words: words}, nil
}

// CreateCategory は名前を trim + タイトルケースに正規化して作成します。
// 大文字小文字違いの重複もここで弾かれる。
func (s *categoryService) CreateCategory(ctx context.Context, name string, userCreated bool) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)

	normalized := titleCase(name)
	if normalized == "" {
		return nil, model.ErrInvalidInput
	}

	category := &model.Category{
		CategoryID:  uuid.New(),
		Name:        normalized,
		UserCreated: userCreated,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.categoryRepo.FindByName(ctx, tx, normalized)
		if err == nil {
			logger.Warn("Category already exists", "name", normalized)
			return model.ErrDuplicateCategory
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}
		return s.categoryRepo.Create(ctx, tx, category)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Category created", "category_id", category.CategoryID.String(), "name", category.Name)
	return category, nil
}

// DeleteCategory はカテゴリだけを削除します。
// 所属していた単語は残り、category_id も書き換えない。
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, s.db, categoryID); err != nil {
		return err
	}
	middleware.GetLogger(ctx).Info("Category deleted", "category_id", categoryID.String())
	return nil
}

// SeedCategories は起動時にシステムカテゴリを投入し、新しく作成した件数を返します
func (s *categoryService) SeedCategories(ctx context.Context, names []string) (int, error) {
	logger := middleware.GetLogger(ctx)
	created := 0
	for _, name := range names {
		_, err := s.CreateCategory(ctx, name, false)
		switch {
		case err == nil:
			created++
		case errors.Is(err, model.ErrDuplicateCategory), errors.Is(err, model.ErrInvalidInput):
			logger.Debug("Skipping seed category", "name", name, "reason", err.Error())
		default:
			return created, err
		}
	}
	return created, nil
}
