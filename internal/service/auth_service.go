package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// dummyPasswordHash はユーザーが存在しない場合の比較に使うハッシュです。
// 存在しないメールアドレスでも bcrypt の比較コストを揃える。
var dummyPasswordHash = mustHashPassword("dictionary-dummy-password")

func mustHashPassword(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy password hash: %v", err))
	}
	return hash
}

//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --structname MockAuthService --filename mock_auth_service.go
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Authenticate(ctx context.Context, email, rawPassword string) (*model.Identity, error)
	GetAuthor(ctx context.Context, userID uuid.UUID) (*model.Author, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	hashCost int
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register は新しいユーザーを登録します。
// パスワード確認 → 長さ → メール重複の順に検証する。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	if req.Password != req.ConfirmPassword {
		logger.Info("Registration rejected: password confirmation mismatch")
		return nil, model.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		logger.Info("Registration rejected: password too short")
		return nil, model.ErrPasswordTooShort
	}

	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, model.ErrInvalidInput
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, model.ErrInvalidInput
		}
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("authService.Register: %w", err)
	}

	user := &model.User{
		UserID:       uuid.New(),
		FirstName:    titleCase(req.FirstName),
		LastName:     titleCase(req.LastName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleFromFlag(req.Teacher),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists", "email", email)
			return model.ErrDuplicateEmail
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}
		// 同時登録は一意制約で ErrDuplicateEmail になる
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.UserID.String(), "role", user.Role.String())
	return user, nil
}

// Authenticate はメールアドレスとパスワードを検証し、Identity を返します
func (s *authService) Authenticate(ctx context.Context, email, rawPassword string) (*model.Identity, error) {
	email = normalizeEmail(email)
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(rawPassword))
			logger.Warn("Authentication failed: user not found")
			return nil, model.ErrNotFound
		}
		logger.Error("Authentication failed: db error on FindByEmail", "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		logger.Warn("Authentication failed: password mismatch", "user_id", user.UserID.String())
		return nil, model.ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// GetAuthor は単語の作成者情報を返します
func (s *authService) GetAuthor(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return &model.Author{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}
