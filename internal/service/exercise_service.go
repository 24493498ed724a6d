//go:generate mockery --name ExerciseService --output ./mocks --outpkg mocks --case=underscore
// internal/service/exercise_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go_5_tadoku_read/internal/llm"
	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseService は読解問題の生成・出題・採点を担当します。
type ExerciseService interface {
	// GenerateExercises は冪等です。既に問題があるテキストには生成せず既存件数を返す。
	GenerateExercises(ctx context.Context, textID uuid.UUID) (int, error)
	ListExercises(ctx context.Context, learnerID, textID uuid.UUID) ([]*model.ExerciseResponse, error)
	SubmitAnswer(ctx context.Context, learnerID, exerciseID uuid.UUID, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error)
}

type exerciseService struct {
	db           *gorm.DB
	textRepo     repository.TextRepository
	courseRepo   repository.CourseRepository
	learnerRepo  repository.LearnerRepository
	exerciseRepo repository.ExerciseRepository
	progressRepo repository.ExerciseProgressRepository
	llmClient    llm.Client
}

func NewExerciseService(
	db *gorm.DB,
	textRepo repository.TextRepository,
	courseRepo repository.CourseRepository,
	learnerRepo repository.LearnerRepository,
	exerciseRepo repository.ExerciseRepository,
	progressRepo repository.ExerciseProgressRepository,
	llmClient llm.Client,
) ExerciseService {
	return &exerciseService{
		db:           db,
		textRepo:     textRepo,
		courseRepo:   courseRepo,
		learnerRepo:  learnerRepo,
		exerciseRepo: exerciseRepo,
		progressRepo: progressRepo,
		llmClient:    llmClient,
	}
}

// generatedExercise は問題生成APIの構造化出力の1問分です
type generatedExercise struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type generatedExerciseBatch struct {
	Exercises []generatedExercise `json:"exercises"`
}

// 期待する種別配分 (計8問)
var exerciseDistribution = map[model.ExerciseType]int{
	model.ExerciseMultipleChoice: 2,
	model.ExerciseFillBlank:      2,
	model.ExerciseTrueFalse:      1,
	model.ExerciseTranslation:    2,
	model.ExerciseSentenceOrder:  1,
}

func (s *exerciseService) GenerateExercises(ctx context.Context, textID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx).With("text_id", textID)

	// 冪等性: 既に1問でもあれば生成しない
	count, err := s.exerciseRepo.CountByText(ctx, s.db, textID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Debug("Exercises already exist, skipping generation", "count", count)
		return int(count), nil
	}

	text, err := s.textRepo.FindByID(ctx, s.db, textID)
	if err != nil {
		return 0, err
	}
	course, err := s.courseRepo.FindByCourseID(ctx, s.db, text.CourseID)
	if err != nil {
		return 0, err
	}
	learner, err := s.learnerRepo.FindByID(ctx, s.db, course.LearnerID)
	if err != nil {
		return 0, err
	}

	prompt := buildExercisePrompt(text.Title, text.Content, course.Language, course.Level, learner.NativeLanguage)
	raw, err := s.llmClient.GenerateJSON(ctx, prompt, "Create the exercises now.")
	if err != nil {
		return 0, err
	}

	exercises, err := parseExerciseBatch(raw, textID)
	if err != nil {
		logger.Warn("Generated exercise batch rejected", "error", err)
		return 0, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.exerciseRepo.CreateBatch(ctx, tx, exercises)
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Exercises generated", "count", len(exercises))
	return len(exercises), nil
}

// parseExerciseBatch は生成結果をパースし、件数・種別配分・種別ごとの
// 形式制約を検証します。1箇所でも崩れていればバッチ全体を破棄する。
func parseExerciseBatch(raw string, textID uuid.UUID) ([]*model.Exercise, error) {
	var batch generatedExerciseBatch
	if err := json.Unmarshal([]byte(llm.StripCodeFence(raw)), &batch); err != nil {
		return nil, fmt.Errorf("parse exercise batch: %w", err)
	}
	if len(batch.Exercises) != model.ExerciseBatchSize {
		return nil, fmt.Errorf("expected %d exercises, got %d", model.ExerciseBatchSize, len(batch.Exercises))
	}

	typeCounts := make(map[model.ExerciseType]int)
	exercises := make([]*model.Exercise, 0, len(batch.Exercises))

	for i, ge := range batch.Exercises {
		exType := model.ExerciseType(ge.Type)
		if _, ok := exerciseDistribution[exType]; !ok {
			return nil, fmt.Errorf("exercise %d: unknown type %q", i, ge.Type)
		}
		if ge.Question == "" || ge.CorrectAnswer == "" {
			return nil, fmt.Errorf("exercise %d: missing question or correct_answer", i)
		}
		if err := validateExerciseShape(exType, ge); err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i, err)
		}
		typeCounts[exType]++

		ex := &model.Exercise{
			ExerciseID:    uuid.New(),
			TextID:        textID,
			Type:          exType,
			Question:      ge.Question,
			CorrectAnswer: ge.CorrectAnswer,
			Explanation:   ge.Explanation,
			OrderIndex:    i,
		}
		ex.SetOptionList(ge.Options)
		exercises = append(exercises, ex)
	}

	for exType, want := range exerciseDistribution {
		if typeCounts[exType] != want {
			return nil, fmt.Errorf("type %s: expected %d, got %d", exType, want, typeCounts[exType])
		}
	}
	return exercises, nil
}

func validateExerciseShape(exType model.ExerciseType, ge generatedExercise) error {
	switch exType {
	case model.ExerciseMultipleChoice:
		if len(ge.Options) != 4 {
			return fmt.Errorf("multiple choice requires 4 options, got %d", len(ge.Options))
		}
		found := false
		for _, opt := range ge.Options {
			if opt == ge.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return errors.New("correct_answer is not one of the options")
		}
	case model.ExerciseTrueFalse:
		answer := strings.ToLower(strings.TrimSpace(ge.CorrectAnswer))
		if answer != "true" && answer != "false" {
			return fmt.Errorf("true/false answer must be literal true or false, got %q", ge.CorrectAnswer)
		}
	case model.ExerciseSentenceOrder:
		if len(ge.Options) < 2 {
			return fmt.Errorf("sentence order requires at least 2 word options, got %d", len(ge.Options))
		}
		for _, opt := range ge.Options {
			if len(strings.Fields(opt)) != 1 {
				return fmt.Errorf("sentence order option %q must be a single word", opt)
			}
		}
	}
	return nil
}

func (s *exerciseService) ListExercises(ctx context.Context, learnerID, textID uuid.UUID) ([]*model.ExerciseResponse, error) {
	if err := s.authorizeText(ctx, learnerID, textID); err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.FindByText(ctx, s.db, textID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題の取得に失敗しました。", "", err)
	}

	responses := make([]*model.ExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		responses = append(responses, model.NewExerciseResponse(ex))
	}
	return responses, nil
}

func (s *exerciseService) SubmitAnswer(ctx context.Context, learnerID, exerciseID uuid.UUID, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "exercise_id", exerciseID)

	exercise, err := s.exerciseRepo.FindByID(ctx, s.db, exerciseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("EXERCISE_NOT_FOUND", "問題が見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題の取得に失敗しました。", "", err)
	}
	if err := s.authorizeText(ctx, learnerID, exercise.TextID); err != nil {
		return nil, err
	}

	isCorrect := CheckAnswer(exercise.Type, req.Answer, exercise.CorrectAnswer)

	var progress *model.ExerciseProgress
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.progressRepo.FindByExercise(ctx, tx, learnerID, exerciseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if existing == nil {
			progress = &model.ExerciseProgress{
				ProgressID:   uuid.New(),
				LearnerID:    learnerID,
				ExerciseID:   exerciseID,
				Completed:    true,
				IsCorrect:    isCorrect,
				Answer:       req.Answer,
				AttemptCount: 1,
			}
			return s.progressRepo.Create(ctx, tx, progress)
		}
		existing.Completed = true
		existing.IsCorrect = isCorrect
		existing.Answer = req.Answer
		existing.AttemptCount++
		progress = existing
		return s.progressRepo.Update(ctx, tx, existing)
	})
	if err != nil {
		logger.Error("Failed to record exercise answer", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "解答の記録に失敗しました。", "", err)
	}

	return &model.SubmitAnswerResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: exercise.CorrectAnswer,
		Explanation:   exercise.Explanation,
		AttemptCount:  progress.AttemptCount,
	}, nil
}

// authorizeText はテキストが学習者自身のコースに属することを確認します
func (s *exerciseService) authorizeText(ctx context.Context, learnerID, textID uuid.UUID) error {
	text, err := s.textRepo.FindByID(ctx, s.db, textID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("TEXT_NOT_FOUND", "テキストが見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "テキストの取得に失敗しました。", "", err)
	}
	course, err := s.courseRepo.FindByCourseID(ctx, s.db, text.CourseID)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}
	if course.LearnerID != learnerID {
		return model.NewAppError("FORBIDDEN", "このテキストへのアクセス権がありません。", "", model.ErrForbidden)
	}
	return nil
}

// 採点時に無視する記号 (FILL_BLANK用)
const answerPunctuation = ".,!?;:'\"()"

// CheckAnswer は種別ごとの規則で解答を採点します。
// いずれの種別も前後空白を無視し、大文字小文字を区別しない。
func CheckAnswer(exType model.ExerciseType, given, correct string) bool {
	given = strings.ToLower(strings.TrimSpace(given))
	correct = strings.ToLower(strings.TrimSpace(correct))
	if given == "" {
		return false
	}

	switch exType {
	case model.ExerciseMultipleChoice, model.ExerciseTrueFalse:
		return given == correct

	case model.ExerciseFillBlank:
		// 句読点の有無は問わない
		return stripPunctuation(given) == stripPunctuation(correct)

	case model.ExerciseTranslation:
		// 翻訳は言い回しの揺れが大きいので双方向の包含一致まで許容する
		if correct == "" {
			return false
		}
		return strings.Contains(given, correct) || strings.Contains(correct, given)

	case model.ExerciseSentenceOrder:
		// 単語間の空白量は問わない
		return collapseWhitespace(given) == collapseWhitespace(correct)

	default:
		return given == correct
	}
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(answerPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
