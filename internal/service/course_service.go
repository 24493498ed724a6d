//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --case=underscore
// internal/service/course_service.go
package service

import (
	"context"
	"errors"

	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService interface {
	CreateCourse(ctx context.Context, learnerID uuid.UUID, req *model.CreateCourseRequest) (*model.Course, error)
	GetCourse(ctx context.Context, learnerID, courseID uuid.UUID) (*model.Course, error)
	ListCourses(ctx context.Context, learnerID uuid.UUID) ([]*model.Course, error)
	DeleteCourse(ctx context.Context, learnerID, courseID uuid.UUID) error
}

type courseService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
}

func NewCourseService(db *gorm.DB, courseRepo repository.CourseRepository) CourseService {
	return &courseService{db: db, courseRepo: courseRepo}
}

func (s *courseService) CreateCourse(ctx context.Context, learnerID uuid.UUID, req *model.CreateCourseRequest) (*model.Course, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	course := &model.Course{
		CourseID:  uuid.New(),
		LearnerID: learnerID,
		Language:  req.Language,
		Level:     req.Level,
	}
	course.SetInterestList(req.Interests)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.courseRepo.Create(ctx, tx, course)
	})
	if err != nil {
		logger.Error("Failed to create course", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの作成に失敗しました。", "", err)
	}

	logger.Info("Course created", "course_id", course.CourseID, "language", course.Language, "level", course.Level)
	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, learnerID, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, s.db, learnerID, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context, learnerID uuid.UUID) ([]*model.Course, error) {
	courses, err := s.courseRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コース一覧の取得に失敗しました。", "", err)
	}
	return courses, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, learnerID, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "course_id", courseID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.courseRepo.Delete(ctx, tx, learnerID, courseID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete course", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "コースの削除に失敗しました。", "", err)
	}

	logger.Info("Course deleted")
	return nil
}
