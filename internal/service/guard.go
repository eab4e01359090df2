package service

import (
	"context"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"

	"github.com/google/uuid"
)

// Guard は更新系の操作の前に権限を確認します。
// 確認の順序は 未ログイン (ErrUnauthenticated) → teacher 以外 (ErrForbidden)。
// 拒否された呼び出しはサービスにもリポジトリにも到達しない。
//
//go:generate mockery --name Guard --output ./mocks --outpkg mocks --structname MockGuard --filename mock_guard.go
type Guard interface {
	CreateWord(ctx context.Context, identity *model.Identity, req *model.CreateWordRequest) (*model.Word, error)
	UpdateWord(ctx context.Context, identity *model.Identity, wordID uuid.UUID, req *model.UpdateWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, identity *model.Identity, wordID uuid.UUID) error
	CreateCategory(ctx context.Context, identity *model.Identity, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, identity *model.Identity, categoryID uuid.UUID) error
}

type guard struct {
	wordService     WordService
	categoryService CategoryService
}

func NewGuard(wordService WordService, categoryService CategoryService) Guard {
	return &guard{
		wordService:     wordService,
		categoryService: categoryService,
	}
}

// RequireTeacher は更新系の入口で最初に行う権限確認です。
// ハンドラはリクエストの検証より前にこれを呼ぶ。
func RequireTeacher(ctx context.Context, identity *model.Identity, action string) error {
	logger := middleware.GetLogger(ctx)
	if identity == nil {
		logger.Info("Mutation denied: not logged in", "action", action)
		return model.ErrUnauthenticated
	}
	if !model.IsTeacher(identity) {
		logger.Info("Mutation denied: not a teacher", "action", action, "user_id", identity.UserID.String())
		return model.ErrForbidden
	}
	return nil
}

func (g *guard) CreateWord(ctx context.Context, identity *model.Identity, req *model.CreateWordRequest) (*model.Word, error) {
	if err := RequireTeacher(ctx, identity, "create_word"); err != nil {
		return nil, err
	}
	return g.wordService.CreateWord(ctx, identity.UserID, req)
}

func (g *guard) UpdateWord(ctx context.Context, identity *model.Identity, wordID uuid.UUID, req *model.UpdateWordRequest) (*model.Word, error) {
	if err := RequireTeacher(ctx, identity, "update_word"); err != nil {
		return nil, err
	}
	return g.wordService.UpdateWord(ctx, wordID, identity.UserID, req)
}

func (g *guard) DeleteWord(ctx context.Context, identity *model.Identity, wordID uuid.UUID) error {
	if err := RequireTeacher(ctx, identity, "delete_word"); err != nil {
		return err
	}
	return g.wordService.DeleteWord(ctx, wordID)
}

// CreateCategory で作成されたカテゴリは user_created = true になる
func (g *guard) CreateCategory(ctx context.Context, identity *model.Identity, name string) (*model.Category, error) {
	if err := RequireTeacher(ctx, identity, "create_category"); err != nil {
		return nil, err
	}
	return g.categoryService.CreateCategory(ctx, name, true)
}

func (g *guard) DeleteCategory(ctx context.Context, identity *model.Identity, categoryID uuid.UUID) error {
	if err := RequireTeacher(ctx, identity, "delete_category"); err != nil {
		return err
	}
	return g.categoryService.DeleteCategory(ctx, categoryID)
}
