package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Role はユーザーの権限です。DBには smallint (0/1) で保存します。
type Role int

const (
	RoleLearner Role = 0
	RoleTeacher Role = 1
)

// RoleFromFlag はサインアップフォームの teacher フラグを Role に変換します。
func RoleFromFlag(teacher bool) Role {
	if teacher {
		return RoleTeacher
	}
	return RoleLearner
}

func (r Role) String() string {
	switch r {
	case RoleTeacher:
		return "teacher"
	case RoleLearner:
		return "learner"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "teacher":
		*r = RoleTeacher
	case "learner":
		*r = RoleLearner
	default:
		return fmt.Errorf("unknown role %q", string(text))
	}
	return nil
}

// Identity はログイン中のユーザーを表します。
// ログイン時にセッションへ書き込まれ、以降はセッションだけから復元されます。
type Identity struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Role      Role      `json:"role"`
}

// IsTeacher は identity が存在し、かつ teacher 権限を持つ場合のみ true を返します。
func IsTeacher(identity *Identity) bool {
	return identity != nil && identity.Role == RoleTeacher
}

type ContextKey string

const (
	IdentityKey ContextKey = "identity"
)

// MeResponse は /auth/me のレスポンス
type MeResponse struct {
	LoggedIn  bool      `json:"logged_in"`
	IsTeacher bool      `json:"is_teacher"`
	Identity  *Identity `json:"identity,omitempty"`
}
