//go:generate mockery --name DictionaryService --output ./mocks --outpkg mocks --case=underscore
// internal/service/dictionary_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go_5_tadoku_read/internal/llm"
	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DictionaryService は個人辞書 (クリック翻訳で育つ単語帳) を担当します。
type DictionaryService interface {
	// LookupWord は find-or-create です。初回は翻訳を生成して登録し、
	// 2回目以降は参照回数を増やして既存の翻訳を返す。
	LookupWord(ctx context.Context, learnerID, courseID uuid.UUID, req *model.LookupWordRequest) (*model.DictionaryWord, error)
	ListWords(ctx context.Context, learnerID, courseID uuid.UUID) ([]*model.DictionaryWord, error)
	UpdateMastery(ctx context.Context, learnerID, wordID uuid.UUID, req *model.UpdateMasteryRequest) (*model.DictionaryWord, error)
	DeleteWord(ctx context.Context, learnerID, wordID uuid.UUID) error
}

type dictionaryService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	courseRepo  repository.CourseRepository
	dictRepo    repository.DictionaryRepository
	appearRepo  repository.AppearanceRepository
	llmClient   llm.Client
}

func NewDictionaryService(
	db *gorm.DB,
	learnerRepo repository.LearnerRepository,
	courseRepo repository.CourseRepository,
	dictRepo repository.DictionaryRepository,
	appearRepo repository.AppearanceRepository,
	llmClient llm.Client,
) DictionaryService {
	return &dictionaryService{
		db:          db,
		learnerRepo: learnerRepo,
		courseRepo:  courseRepo,
		dictRepo:    dictRepo,
		appearRepo:  appearRepo,
		llmClient:   llmClient,
	}
}

func (s *dictionaryService) LookupWord(ctx context.Context, learnerID, courseID uuid.UUID, req *model.LookupWordRequest) (*model.DictionaryWord, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "course_id", courseID)

	course, err := s.courseRepo.FindByID(ctx, s.db, learnerID, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}

	// 辞書の語は小文字の原形で保持する
	term := strings.ToLower(strings.TrimSpace(req.Term))
	if term == "" {
		return nil, model.NewAppError("INVALID_INPUT", "単語を指定してください。", "term", model.ErrInvalidInput)
	}

	now := time.Now()
	word, err := s.dictRepo.FindByTerm(ctx, s.db, courseID, term)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}

	if word == nil {
		// 初回参照。登録前に翻訳を生成する (トランザクション外)
		translation, err := s.translate(ctx, term, course)
		if err != nil {
			logger.Error("Word translation failed", "error", err, "term", term)
			return nil, model.NewAppError("GENERATION_FAILED", "翻訳の生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrExternal)
		}

		word = &model.DictionaryWord{
			WordID:       uuid.New(),
			CourseID:     courseID,
			LearnerID:    learnerID,
			Term:         term,
			Translation:  translation,
			LookupCount:  1,
			LastSeenAt:   now,
			MasteryLevel: model.MasteryLearning,
		}
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.dictRepo.Create(ctx, tx, word); err != nil {
				return err
			}
			return s.markClickedIfTracked(ctx, tx, word.WordID, req.TextID)
		})
		if err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同時クリックで先に登録された。取り直して参照扱いにする
				return s.LookupWord(ctx, learnerID, courseID, req)
			}
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", err)
		}
		logger.Info("Dictionary word registered", "term", term, "word_id", word.WordID)
		return word, nil
	}

	// 再参照。回数と最終出現を更新する
	word.LookupCount++
	word.LastSeenAt = now
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.dictRepo.Update(ctx, tx, word); err != nil {
			return err
		}
		return s.markClickedIfTracked(ctx, tx, word.WordID, req.TextID)
	})
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の更新に失敗しました。", "", err)
	}
	logger.Debug("Dictionary word looked up again", "term", term, "lookup_count", word.LookupCount)
	return word, nil
}

// markClickedIfTracked はテキストIDが指定された場合のみ出現記録をクリック済みにします
func (s *dictionaryService) markClickedIfTracked(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, textID *uuid.UUID) error {
	if textID == nil {
		return nil
	}
	return s.appearRepo.MarkClicked(ctx, tx, wordID, *textID)
}

func (s *dictionaryService) translate(ctx context.Context, term string, course *model.Course) (string, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, course.LearnerID)
	if err != nil {
		return "", err
	}
	translation, err := s.llmClient.GenerateText(ctx,
		"You are a precise bilingual dictionary.",
		buildTranslationPrompt(term, course.Language, learner.NativeLanguage))
	if err != nil {
		return "", err
	}
	translation = strings.TrimSpace(translation)
	if translation == "" {
		return "", errors.New("empty translation")
	}
	return translation, nil
}

func (s *dictionaryService) ListWords(ctx context.Context, learnerID, courseID uuid.UUID) ([]*model.DictionaryWord, error) {
	if _, err := s.courseRepo.FindByID(ctx, s.db, learnerID, courseID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}

	words, err := s.dictRepo.FindByCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}
	return words, nil
}

func (s *dictionaryService) UpdateMastery(ctx context.Context, learnerID, wordID uuid.UUID, req *model.UpdateMasteryRequest) (*model.DictionaryWord, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "word_id", wordID)

	word, err := s.dictRepo.FindByID(ctx, s.db, learnerID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	word.MasteryLevel = req.MasteryLevel
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.dictRepo.Update(ctx, tx, word)
	})
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の更新に失敗しました。", "", err)
	}

	logger.Info("Mastery level updated", "term", word.Term, "mastery_level", word.MasteryLevel)
	return word, nil
}

func (s *dictionaryService) DeleteWord(ctx context.Context, learnerID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "word_id", wordID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.dictRepo.Delete(ctx, tx, learnerID, wordID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
	}

	logger.Info("Dictionary word deleted")
	return nil
}
