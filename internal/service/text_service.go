//go:generate mockery --name TextService --output ./mocks --outpkg mocks --case=underscore
// internal/service/text_service.go
package service

import (
	"context"
	"errors"

	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TextService は生成済みテキストの閲覧を担当します。生成は GenerationService。
type TextService interface {
	ListTexts(ctx context.Context, learnerID, courseID uuid.UUID) ([]*model.TextListItem, error)
	GetText(ctx context.Context, learnerID, textID uuid.UUID) (*model.GeneratedText, error)
	// GetTextImage は挿絵バイナリを返します。挿絵がないテキストは ErrNotFound。
	GetTextImage(ctx context.Context, learnerID, textID uuid.UUID) ([]byte, error)
}

type textService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	textRepo   repository.TextRepository
}

func NewTextService(db *gorm.DB, courseRepo repository.CourseRepository, textRepo repository.TextRepository) TextService {
	return &textService{db: db, courseRepo: courseRepo, textRepo: textRepo}
}

func (s *textService) ListTexts(ctx context.Context, learnerID, courseID uuid.UUID) ([]*model.TextListItem, error) {
	if _, err := s.courseRepo.FindByID(ctx, s.db, learnerID, courseID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}

	texts, err := s.textRepo.FindByCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テキスト一覧の取得に失敗しました。", "", err)
	}

	items := make([]*model.TextListItem, 0, len(texts))
	for _, t := range texts {
		items = append(items, &model.TextListItem{
			TextID:    t.TextID,
			Title:     t.Title,
			HasImage:  t.ImageURL != "",
			CreatedAt: t.CreatedAt,
		})
	}
	return items, nil
}

func (s *textService) GetText(ctx context.Context, learnerID, textID uuid.UUID) (*model.GeneratedText, error) {
	text, err := s.findAuthorized(ctx, learnerID, textID)
	if err != nil {
		return nil, err
	}
	return text, nil
}

func (s *textService) GetTextImage(ctx context.Context, learnerID, textID uuid.UUID) ([]byte, error) {
	text, err := s.findAuthorized(ctx, learnerID, textID)
	if err != nil {
		return nil, err
	}
	if len(text.ImageData) == 0 {
		return nil, model.NewAppError("IMAGE_NOT_FOUND", "このテキストには挿絵がありません。", "", model.ErrNotFound)
	}
	return text.ImageData, nil
}

// findAuthorized はテキストを取得し、学習者自身のコースに属することを確認します
func (s *textService) findAuthorized(ctx context.Context, learnerID, textID uuid.UUID) (*model.GeneratedText, error) {
	text, err := s.textRepo.FindByID(ctx, s.db, textID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TEXT_NOT_FOUND", "テキストが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テキストの取得に失敗しました。", "", err)
	}
	course, err := s.courseRepo.FindByCourseID(ctx, s.db, text.CourseID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}
	if course.LearnerID != learnerID {
		return nil, model.NewAppError("FORBIDDEN", "このテキストへのアクセス権がありません。", "", model.ErrForbidden)
	}
	return text, nil
}
