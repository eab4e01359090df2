package model

import (
	"time"

	"github.com/google/uuid"
)

// Category は単語のグループです。
// UserCreated が false のものは起動時に投入されるシステムカテゴリです。
type Category struct {
	CategoryID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	Name        string    `gorm:"not null;uniqueIndex:uq_categories_name" json:"name"`
	UserCreated bool      `gorm:"not null;default:false" json:"user_created"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryDetail はカテゴリとその単語一覧 (maori 昇順)
type CategoryDetail struct {
	Category *Category `json:"category"`
	Words    []*Word   `json:"words"`
}

// カテゴリ作成リクエストDTO
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
