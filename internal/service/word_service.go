package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name WordService --output ./mocks --outpkg mocks --structname MockWordService --filename mock_word_service.go
type WordService interface {
	ListWords(ctx context.Context) ([]*model.Word, error)
	ListWordsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*model.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error)
	GetWordDetail(ctx context.Context, wordID uuid.UUID) (*model.WordDetail, error)
	CreateWord(ctx context.Context, authorID uuid.UUID, req *model.CreateWordRequest) (*model.Word, error)
	UpdateWord(ctx context.Context, wordID, authorID uuid.UUID, req *model.UpdateWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
}

type wordService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo    repository.WordRepository
	authService AuthService
	now         func() time.Time
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, authService AuthService) WordService {
	return &wordService{
		db:          db,
		wordRepo:    wordRepo,
		authService: authService,
		now:         time.Now,
	}
}

// wordFields は正規化済みの入力値
type wordFields struct {
	maori      string
	english    string
	definition string
	level      int
}

func normalizeWordFields(maori, english, definition string, level int) (wordFields, error) {
	f := wordFields{
		maori:      normalizeTerm(maori),
		english:    normalizeTerm(english),
		definition: strings.TrimSpace(definition),
		level:      clampLevel(level),
	}
	if f.maori == "" || f.english == "" {
		return f, model.ErrInvalidInput
	}
	return f, nil
}

func (f wordFields) sameAs(w *model.Word) bool {
	return f.maori == w.Maori &&
		f.english == w.English &&
		f.definition == w.Definition &&
		f.level == w.Level
}

// ListWords は順序を保証しない
func (s *wordService) ListWords(ctx context.Context) ([]*model.Word, error) {
	return s.wordRepo.FindAll(ctx, s.db)
}

// ListWordsByCategory は maori の昇順で返します。
// カテゴリの存在は確認しない (削除済みカテゴリに残った単語も取得できる)。
func (s *wordService) ListWordsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*model.Word, error) {
	return s.wordRepo.FindByCategory(ctx, s.db, categoryID)
}

func (s *wordService) GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error) {
	return s.wordRepo.FindByID(ctx, s.db, wordID)
}

// GetWordDetail は単語と作成者を返します。作成者が見つからない場合 Author は nil。
func (s *wordService) GetWordDetail(ctx context.Context, wordID uuid.UUID) (*model.WordDetail, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		return nil, err
	}
	author, err := s.authService.GetAuthor(ctx, word.UserID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	return &model.WordDetail{Word: word, Author: author}, nil
}

func (s *wordService) CreateWord(ctx context.Context, authorID uuid.UUID, req *model.CreateWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	fields, err := normalizeWordFields(req.Maori, req.English, req.Definition, req.Level)
	if err != nil {
		return nil, err
	}

	word := &model.Word{
		WordID:     uuid.New(),
		Maori:      fields.maori,
		English:    fields.english,
		Definition: fields.definition,
		Level:      fields.level,
		CategoryID: req.CategoryID,
		UserID:     authorID,
		ModifiedAt: s.now(),
		Image:      model.NoImage,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.wordRepo.CheckEnglishExists(ctx, tx, fields.english, nil)
		if err != nil {
			return err
		}
		if exists {
			logger.Warn("English translation already exists", "english", fields.english)
			return model.ErrDuplicateTranslation
		}
		return s.wordRepo.Create(ctx, tx, word)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", word.WordID.String(), "author_id", authorID.String())
	return word, nil
}

// UpdateWord は入力を作成時と同じ規則で正規化し、保存済みの値と比較します。
// どの項目も変わらない場合は ErrNoChange。カテゴリは変更しない。
func (s *wordService) UpdateWord(ctx context.Context, wordID, authorID uuid.UUID, req *model.UpdateWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	fields, err := normalizeWordFields(req.Maori, req.English, req.Definition, req.Level)
	if err != nil {
		return nil, err
	}

	var updatedWord *model.Word
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.wordRepo.FindByID(ctx, tx, wordID)
		if err != nil {
			return err
		}

		if fields.sameAs(word) {
			logger.Info("Word update rejected: no change", "word_id", wordID.String())
			return model.ErrNoChange
		}

		if fields.english != word.English {
			exists, err := s.wordRepo.CheckEnglishExists(ctx, tx, fields.english, &wordID)
			if err != nil {
				return err
			}
			if exists {
				logger.Warn("English translation already exists", "english", fields.english)
				return model.ErrDuplicateTranslation
			}
		}

		modifiedAt := s.now()
		updates := map[string]interface{}{
			"maori":       fields.maori,
			"english":     fields.english,
			"definition":  fields.definition,
			"level":       fields.level,
			"user_id":     authorID,
			"modified_at": modifiedAt,
		}
		if err := s.wordRepo.Update(ctx, tx, wordID, updates); err != nil {
			return err
		}

		word.Maori = fields.maori
		word.English = fields.english
		word.Definition = fields.definition
		word.Level = fields.level
		word.UserID = authorID
		word.ModifiedAt = modifiedAt
		updatedWord = word
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word updated", "word_id", wordID.String(), "author_id", authorID.String())
	return updatedWord, nil
}

func (s *wordService) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	if err := s.wordRepo.Delete(ctx, s.db, wordID); err != nil {
		return err
	}
	middleware.GetLogger(ctx).Info("Word deleted", "word_id", wordID.String())
	return nil
}
