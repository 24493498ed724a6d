//go:generate mockery --name ExerciseProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ExerciseProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.ExerciseProgress) error
	FindByExercise(ctx context.Context, db *gorm.DB, learnerID, exerciseID uuid.UUID) (*model.ExerciseProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.ExerciseProgress) error
}

type gormExerciseProgressRepository struct{}

func NewGormExerciseProgressRepository() ExerciseProgressRepository {
	return &gormExerciseProgressRepository{}
}

func (r *gormExerciseProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.ExerciseProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		logger.Error("Error creating exercise progress in DB",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
			"exercise_id", progress.ExerciseID.String(),
		)
		return fmt.Errorf("gormExerciseProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormExerciseProgressRepository) FindByExercise(ctx context.Context, db *gorm.DB, learnerID, exerciseID uuid.UUID) (*model.ExerciseProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.ExerciseProgress
	result := db.WithContext(ctx).Where("learner_id = ? AND exercise_id = ?", learnerID, exerciseID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding exercise progress in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"exercise_id", exerciseID.String(),
		)
		return nil, fmt.Errorf("gormExerciseProgressRepository.FindByExercise: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormExerciseProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.ExerciseProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating exercise progress in DB", "error", result.Error, "progress_id", progress.ProgressID.String())
		return fmt.Errorf("gormExerciseProgressRepository.Update: %w", result.Error)
	}
	return nil
}
