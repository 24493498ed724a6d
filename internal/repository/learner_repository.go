//go:generate mockery --name LearnerRepository --output ./mocks --outpkg mocks --case=underscore
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

type LearnerRepository interface {
	Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Learner, error)
	Delete(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) error
}

type gormLearnerRepository struct{}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(learner)
	if result.Error != nil {
		// 一意制約違反 (メールアドレス重複など) は Conflict に変換する
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create learner",
				"error", result.Error,
				"learner_name", learner.Name,
				"email", learner.Email,
			)
			return model.ErrConflict
		}

		logger.Error("Error creating learner in DB",
			"error", result.Error,
			"learner_name", learner.Name,
		)
		return fmt.Errorf("gormLearnerRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)
	var learner model.Learner
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learner by ID in DB", "error", result.Error, "learner_id", learnerID.String())
		return nil, fmt.Errorf("gormLearnerRepository.FindByID: %w", result.Error)
	}
	return &learner, nil
}

func (r *gormLearnerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)
	var learner model.Learner
	result := db.WithContext(ctx).Where("email = ?", email).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learner by email in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLearnerRepository.FindByEmail: %w", result.Error)
	}
	return &learner, nil
}

func (r *gormLearnerRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)
	var learner model.Learner
	result := db.WithContext(ctx).Where("name = ?", name).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learner by name in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLearnerRepository.FindByName: %w", result.Error)
	}
	return &learner, nil
}

func (r *gormLearnerRepository) Delete(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).Delete(&model.Learner{})
	if result.Error != nil {
		logger.Error("Error deleting learner in DB", "error", result.Error, "learner_id", learnerID.String())
		return fmt.Errorf("gormLearnerRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
