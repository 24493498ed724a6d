//go:generate mockery --name ExerciseRepository --output ./mocks --outpkg mocks --case=underscore
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

type ExerciseRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, exercises []*model.Exercise) error
	FindByID(ctx context.Context, db *gorm.DB, exerciseID uuid.UUID) (*model.Exercise, error)
	FindByText(ctx context.Context, db *gorm.DB, textID uuid.UUID) ([]*model.Exercise, error)
	CountByText(ctx context.Context, db *gorm.DB, textID uuid.UUID) (int64, error)
}

type gormExerciseRepository struct{}

func NewGormExerciseRepository() ExerciseRepository {
	return &gormExerciseRepository{}
}

func (r *gormExerciseRepository) CreateBatch(ctx context.Context, tx *gorm.DB, exercises []*model.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(exercises)
	if result.Error != nil {
		logger.Error("Error creating exercises in DB",
			"error", result.Error,
			"count", len(exercises),
		)
		return fmt.Errorf("gormExerciseRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormExerciseRepository) FindByID(ctx context.Context, db *gorm.DB, exerciseID uuid.UUID) (*model.Exercise, error) {
	logger := middleware.GetLogger(ctx)
	var exercise model.Exercise
	result := db.WithContext(ctx).Where("exercise_id = ?", exerciseID).First(&exercise)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding exercise by ID in DB", "error", result.Error, "exercise_id", exerciseID.String())
		return nil, fmt.Errorf("gormExerciseRepository.FindByID: %w", result.Error)
	}
	return &exercise, nil
}

func (r *gormExerciseRepository) FindByText(ctx context.Context, db *gorm.DB, textID uuid.UUID) ([]*model.Exercise, error) {
	logger := middleware.GetLogger(ctx)
	var exercises []*model.Exercise
	result := db.WithContext(ctx).
		Where("text_id = ?", textID).
		Order("order_index ASC").
		Find(&exercises)
	if result.Error != nil {
		logger.Error("Error listing exercises in DB", "error", result.Error, "text_id", textID.String())
		return nil, fmt.Errorf("gormExerciseRepository.FindByText: %w", result.Error)
	}
	return exercises, nil
}

func (r *gormExerciseRepository) CountByText(ctx context.Context, db *gorm.DB, textID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Exercise{}).
		Where("text_id = ?", textID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting exercises in DB", "error", result.Error, "text_id", textID.String())
		return 0, fmt.Errorf("gormExerciseRepository.CountByText: %w", result.Error)
	}
	return count, nil
}
