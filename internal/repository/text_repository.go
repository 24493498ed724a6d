//go:generate mockery --name TextRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TextRepository interface {
	Create(ctx context.Context, tx *gorm.DB, text *model.GeneratedText) error
	FindByID(ctx context.Context, db *gorm.DB, textID uuid.UUID) (*model.GeneratedText, error)
	// FindByCourse は一覧表示用に本文・画像カラムを除いて取得します
	FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.GeneratedText, error)
}

type gormTextRepository struct{}

func NewGormTextRepository() TextRepository {
	return &gormTextRepository{}
}

func (r *gormTextRepository) Create(ctx context.Context, tx *gorm.DB, text *model.GeneratedText) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(text)
	if result.Error != nil {
		logger.Error("Error creating generated text in DB",
			"error", result.Error,
			"course_id", text.CourseID.String(),
			"title", text.Title,
		)
		return fmt.Errorf("gormTextRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTextRepository) FindByID(ctx context.Context, db *gorm.DB, textID uuid.UUID) (*model.GeneratedText, error) {
	logger := middleware.GetLogger(ctx)
	var text model.GeneratedText
	result := db.WithContext(ctx).Where("text_id = ?", textID).First(&text)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding generated text by ID in DB", "error", result.Error, "text_id", textID.String())
		return nil, fmt.Errorf("gormTextRepository.FindByID: %w", result.Error)
	}
	return &text, nil
}

func (r *gormTextRepository) FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.GeneratedText, error) {
	logger := middleware.GetLogger(ctx)
	var texts []*model.GeneratedText
	// 本文と画像は一覧に不要なので取得しない
	result := db.WithContext(ctx).
		Select("text_id", "course_id", "title", "image_url", "created_at").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&texts)
	if result.Error != nil {
		logger.Error("Error listing generated texts in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormTextRepository.FindByCourse: %w", result.Error)
	}
	return texts, nil
}
