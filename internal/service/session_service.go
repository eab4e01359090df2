package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --structname MockSessionService --filename mock_session_service.go
type SessionService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error)
	Logout(ctx context.Context, token string) error
	CurrentIdentity(ctx context.Context, token string) (*model.Identity, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionService struct {
	db          *gorm.DB
	authService AuthService
	sessionRepo repository.SessionRepository
	secretKey   []byte
	issuer      string
	ttl         time.Duration
	now         func() time.Time
}

func NewSessionService(db *gorm.DB, authService AuthService, sessionRepo repository.SessionRepository, secretKey, issuer string, ttl time.Duration) SessionService {
	return &sessionService{
		db:          db,
		authService: authService,
		sessionRepo: sessionRepo,
		secretKey:   []byte(secretKey),
		issuer:      issuer,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Login は認証に成功したらセッション行を作成し、署名済みトークンを返します
func (s *sessionService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	logger := middleware.GetLogger(ctx)

	identity, err := s.authService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &model.Session{
		SessionID: uuid.New(),
		UserID:    identity.UserID,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		Role:      identity.Role,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		return nil, err
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   session.SessionID.String(),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		logger.Error("Failed to sign session token", "error", err, "user_id", identity.UserID.String())
		return nil, fmt.Errorf("sessionService.Login: %w", err)
	}

	logger.Info("Login successful", "user_id", identity.UserID.String())
	return &model.LoginResult{
		Token:     signed,
		ExpiresAt: session.ExpiresAt,
		Identity:  session.Identity(),
	}, nil
}

// Logout はトークンが指すセッション行を削除します。無効なトークンでも成功扱い。
func (s *sessionService) Logout(ctx context.Context, token string) error {
	sessionID, ok := s.parseToken(ctx, token)
	if !ok {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, s.db, sessionID); err != nil {
		return err
	}
	middleware.GetLogger(ctx).Info("Logout successful", "session_id", sessionID.String())
	return nil
}

// CurrentIdentity はトークンからログイン中のユーザーを復元します。
// 未ログイン (トークンなし、不正、期限切れ、セッション削除済み) は nil, nil を返す。
// Identity はセッション行だけから組み立て、users テーブルは参照しない。
// セッションは読むだけで、書き換えるのは Login / Logout / PurgeExpired。
func (s *sessionService) CurrentIdentity(ctx context.Context, token string) (*model.Identity, error) {
	sessionID, ok := s.parseToken(ctx, token)
	if !ok {
		return nil, nil
	}

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	// 期限切れの行は PurgeExpired が削除する
	if session.IsExpiredAt(s.now()) {
		return nil, nil
	}
	return session.Identity(), nil
}

// PurgeExpired は期限切れのセッション行をまとめて削除します
func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.sessionRepo.DeleteExpired(ctx, s.db, s.now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		middleware.GetLogger(ctx).Info("Expired sessions purged", "count", deleted)
	}
	return deleted, nil
}

func (s *sessionService) parseToken(ctx context.Context, tokenString string) (uuid.UUID, bool) {
	if tokenString == "" {
		return uuid.Nil, false
	}
	logger := middleware.GetLogger(ctx)

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.Debug("Session token rejected", "error", err)
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(claims.Subject)
	if err != nil {
		logger.Debug("Session token has invalid subject", "subject", claims.Subject)
		return uuid.Nil, false
	}
	return sessionID, true
}
