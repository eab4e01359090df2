package model

import (
	"time"

	"github.com/google/uuid"
)

// Session はログイン時に書き込まれるセッション情報です。
// ログイン時に全フィールドを書き込み、ログアウト時に行ごと削除します。
type Session struct {
	SessionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"not null"`
	FirstName string    `gorm:"not null"`
	Role      Role      `gorm:"type:smallint;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsExpiredAt(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

func (s *Session) Identity() *Identity {
	return &Identity{
		UserID:    s.UserID,
		Email:     s.Email,
		FirstName: s.FirstName,
		Role:      s.Role,
	}
}
