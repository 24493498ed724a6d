//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
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

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, courseID uuid.UUID) (*model.Course, error)
	// FindByCourseID は所有者を限定せずに取得します。内部処理専用。
	FindByCourseID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Course, error)
	Delete(ctx context.Context, tx *gorm.DB, learnerID, courseID uuid.UUID) error
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, tx *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(course)
	if result.Error != nil {
		logger.Error("Error creating course in DB",
			"error", result.Error,
			"learner_id", course.LearnerID.String(),
			"language", course.Language,
		)
		return fmt.Errorf("gormCourseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	result := db.WithContext(ctx).Where("learner_id = ? AND course_id = ?", learnerID, courseID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindByCourseID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	result := db.WithContext(ctx).Where("course_id = ?", courseID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by course ID in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindByCourseID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var courses []*model.Course
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Find(&courses)
	if result.Error != nil {
		logger.Error("Error listing courses in DB", "error", result.Error, "learner_id", learnerID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindByLearner: %w", result.Error)
	}
	return courses, nil
}

func (r *gormCourseRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("learner_id = ? AND course_id = ?", learnerID, courseID).Delete(&model.Course{})
	if result.Error != nil {
		logger.Error("Error deleting course in DB", "error", result.Error, "course_id", courseID.String())
		return fmt.Errorf("gormCourseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
