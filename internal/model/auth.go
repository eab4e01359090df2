package model

import (
	"time"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult はログイン成功時のサービス層の戻り値
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  *Identity
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Identity    *Identity `json:"identity"`
}
