// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinLevel = 0
	MaxLevel = 10

	// NoImage は画像が未設定の単語に入る値
	NoImage = "noimage.png"
)

// Word は辞書の1エントリです。
// English は全単語を通して一意です (カテゴリ単位ではない)。
// CategoryID には外部キー制約を張りません。カテゴリ削除後も値は残ります。
type Word struct {
	WordID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	Maori      string    `gorm:"not null" json:"maori"`
	English    string    `gorm:"not null;uniqueIndex:uq_words_english" json:"english"`
	Definition string    `gorm:"not null" json:"definition"`
	Level      int       `gorm:"not null" json:"level"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"` // 最終更新者
	ModifiedAt time.Time `gorm:"not null" json:"modified_at"`
	Image      string    `gorm:"not null" json:"image"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Word) TableName() string {
	return "words"
}

// WordDetail は単語と作成者情報 (作成者が存在しない場合は nil)
type WordDetail struct {
	Word   *Word   `json:"word"`
	Author *Author `json:"author"`
}

// 単語作成リクエストDTO
type CreateWordRequest struct {
	Maori      string    `json:"maori" validate:"required,max=200"`
	English    string    `json:"english" validate:"required,max=200"`
	Definition string    `json:"definition" validate:"max=2000"`
	Level      int       `json:"level"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
}

// 単語更新リクエストDTO (カテゴリは変更できない)
type UpdateWordRequest struct {
	Maori      string `json:"maori" validate:"required,max=200"`
	English    string `json:"english" validate:"required,max=200"`
	Definition string `json:"definition" validate:"max=2000"`
	Level      int    `json:"level"`
}
