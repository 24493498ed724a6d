// internal/model/token.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// LearnerVerificationToken はアカウント有効化用のトークン情報を保持します
type LearnerVerificationToken struct {
	Token     string    `gorm:"primaryKey"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (LearnerVerificationToken) TableName() string {
	return "learner_verification_tokens"
}

type PasswordResetToken struct {
	Token     string    `gorm:"primaryKey"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
