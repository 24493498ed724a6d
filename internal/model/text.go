// internal/model/text.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedText は生成された読み物1本を表します。作成後は不変です。
type GeneratedText struct {
	TextID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"text_id"`
	CourseID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	ImageData []byte         `gorm:"type:bytea" json:"-"`            // 挿絵バイナリ (ない場合はnull)
	ImageURL  string         `json:"image_url,omitempty"`            // 安定した配信パス
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Exercises []Exercise `gorm:"foreignKey:TextID" json:"-"`
}

func (GeneratedText) TableName() string {
	return "generated_texts"
}

// テキスト生成リクエストDTO (認証あり)
type GenerateTextRequest struct {
	Topic string `json:"topic" validate:"omitempty,max=100"` // 任意。指定時は興味リストより優先
}

// ゲスト用テキスト生成リクエストDTO
type GuestGenerateTextRequest struct {
	Language       string `json:"language" validate:"required,min=1,max=50"`
	Level          string `json:"level" validate:"required,min=1,max=10"`
	NativeLanguage string `json:"native_language" validate:"omitempty,max=50"`
	Topic          string `json:"topic" validate:"omitempty,max=100"`
}

// GenerateTextResponse は生成完了時のレスポンス
type GenerateTextResponse struct {
	TextID        uuid.UUID `json:"text_id"`
	Title         string    `json:"title"`
	HasImage      bool      `json:"has_image"`
	ExerciseCount int       `json:"exercise_count"`
}

// GuestTextResponse はゲスト生成のレスポンス (永続化されない)
type GuestTextResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TextListItem は一覧表示用の軽量DTO (本文・画像を含まない)
type TextListItem struct {
	TextID    uuid.UUID `json:"text_id"`
	Title     string    `json:"title"`
	HasImage  bool      `json:"has_image"`
	CreatedAt time.Time `json:"created_at"`
}
