// internal/model/learner.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 学習者の基本情報
type Learner struct {
	LearnerID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"unique;not null" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	NativeLanguage string         `gorm:"not null;default:'日本語'" json:"native_language"` // 学習者の母語
	IsActive       bool           `json:"is_active" gorm:"default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// GORM用のリレーション (JSONには含めない)
	Courses []Course `gorm:"foreignKey:LearnerID" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	NativeLanguage string `json:"native_language" validate:"omitempty,max=50"`
}

// LearnerResponse はクライアントに返す学習者情報の構造体
type LearnerResponse struct {
	LearnerID      uuid.UUID `json:"learner_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	NativeLanguage string    `json:"native_language"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewLearnerResponse(l *Learner) *LearnerResponse {
	return &LearnerResponse{
		LearnerID:      l.LearnerID,
		Name:           l.Name,
		Email:          l.Email,
		NativeLanguage: l.NativeLanguage,
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
	}
}
