//go:generate mockery --name GenerationService --output ./mocks --outpkg mocks --case=underscore
// internal/service/generation_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go_5_tadoku_read/internal/config"
	"go_5_tadoku_read/internal/llm"
	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerationService はテキスト生成パイプライン全体を調停します。
// 処理順: 復習候補選定 → テキスト生成 → 挿絵生成 → 永続化 → 出現追跡 → 問題生成。
// テキスト生成の失敗のみ致命的で、挿絵と問題はベストエフォート。
type GenerationService interface {
	GenerateText(ctx context.Context, learnerID, courseID uuid.UUID, topic string) (*model.GenerateTextResponse, error)
	GenerateGuestText(ctx context.Context, req *model.GuestGenerateTextRequest) (*model.GuestTextResponse, error)
}

type generationService struct {
	db             *gorm.DB
	learnerRepo    repository.LearnerRepository
	courseRepo     repository.CourseRepository
	dictRepo       repository.DictionaryRepository
	textRepo       repository.TextRepository
	appearanceRepo repository.AppearanceRepository
	exerciseSvc    ExerciseService
	llmClient      llm.Client
	cfg            *config.Config
}

func NewGenerationService(
	db *gorm.DB,
	learnerRepo repository.LearnerRepository,
	courseRepo repository.CourseRepository,
	dictRepo repository.DictionaryRepository,
	textRepo repository.TextRepository,
	appearanceRepo repository.AppearanceRepository,
	exerciseSvc ExerciseService,
	llmClient llm.Client,
	cfg *config.Config,
) GenerationService {
	return &generationService{
		db:             db,
		learnerRepo:    learnerRepo,
		courseRepo:     courseRepo,
		dictRepo:       dictRepo,
		textRepo:       textRepo,
		appearanceRepo: appearanceRepo,
		exerciseSvc:    exerciseSvc,
		llmClient:      llmClient,
		cfg:            cfg,
	}
}

// generatedContent はテキスト生成APIの構造化出力です
type generatedContent struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	Translations []struct {
		Term        string `json:"term"`
		Translation string `json:"translation"`
	} `json:"translations"`
}

func (s *generationService) GenerateText(ctx context.Context, learnerID, courseID uuid.UUID, topic string) (*model.GenerateTextResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "course_id", courseID)

	course, err := s.courseRepo.FindByID(ctx, s.db, learnerID, courseID)
	if err != nil {
		if err == model.ErrNotFound {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}

	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー情報の取得に失敗しました。", "", err)
	}

	// --- PRIORITIZE: 復習候補の選定 ---
	reinforceable, err := s.dictRepo.FindReinforceable(ctx, s.db, courseID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}
	now := time.Now()
	candidates := selectReinforcementWords(reinforceable, now, s.cfg.App.ReinforcementLimit)
	reinforceTerms := make([]string, 0, len(candidates))
	for _, w := range candidates {
		reinforceTerms = append(reinforceTerms, w.Term)
	}
	logger.Debug("Selected reinforcement candidates", "count", len(reinforceTerms), "terms", reinforceTerms)

	// --- REQUEST_TEXT: 本文生成。失敗したら全体を失敗させる ---
	// トピック指定時は興味リストを使わない (排他)
	interests := course.InterestList()
	if topic != "" {
		interests = nil
	}
	content, err := s.requestText(ctx, course.Language, course.Level, learner.NativeLanguage, topic, reinforceTerms, interests)
	if err != nil {
		logger.Error("Text generation failed", "error", err)
		return nil, model.NewAppError("GENERATION_FAILED", "テキストの生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrExternal)
	}

	// --- REQUEST_ILLUSTRATION: ベストエフォート。失敗はnilとして扱う ---
	imageData := s.requestIllustration(ctx, content.Title, content.Text)

	// --- PERSIST_TEXT + TRACK_APPEARANCES: 1トランザクションで実施 ---
	text := &model.GeneratedText{
		TextID:    uuid.New(),
		CourseID:  courseID,
		Title:     content.Title,
		Content:   content.Text,
		ImageData: imageData,
	}
	if imageData != nil {
		text.ImageURL = fmt.Sprintf("/api/v1/texts/%s/image", text.TextID)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.textRepo.Create(ctx, tx, text); err != nil {
			return err
		}
		return s.trackAppearances(ctx, tx, candidates, content.Text, text.TextID, now)
	})
	if err != nil {
		logger.Error("Failed to persist generated text", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テキストの保存に失敗しました。", "", err)
	}

	// --- SYNTHESIZE_EXERCISES: ベストエフォート。失敗してもテキストは返す ---
	exerciseCount, err := s.exerciseSvc.GenerateExercises(ctx, text.TextID)
	if err != nil {
		logger.Warn("Exercise generation failed, continuing without exercises", "error", err, "text_id", text.TextID)
		exerciseCount = 0
	}

	logger.Info("Text generated successfully",
		"text_id", text.TextID,
		"title", text.Title,
		"has_image", imageData != nil,
		"exercise_count", exerciseCount,
	)

	return &model.GenerateTextResponse{
		TextID:        text.TextID,
		Title:         text.Title,
		HasImage:      imageData != nil,
		ExerciseCount: exerciseCount,
	}, nil
}

// GenerateGuestText はアカウントなしでの生成です。永続化・出現追跡・問題生成は行いません。
func (s *generationService) GenerateGuestText(ctx context.Context, req *model.GuestGenerateTextRequest) (*model.GuestTextResponse, error) {
	logger := middleware.GetLogger(ctx)

	nativeLanguage := req.NativeLanguage
	if nativeLanguage == "" {
		nativeLanguage = "日本語"
	}

	content, err := s.requestText(ctx, req.Language, req.Level, nativeLanguage, req.Topic, nil, nil)
	if err != nil {
		logger.Error("Guest text generation failed", "error", err)
		return nil, model.NewAppError("GENERATION_FAILED", "テキストの生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrExternal)
	}

	return &model.GuestTextResponse{
		Title:   content.Title,
		Content: content.Text,
	}, nil
}

// requestText は生成APIを1回呼び、構造化出力をパースします。
// パース失敗もエラーとして返す (リトライはしない。呼び出し側が全体をやり直す)。
func (s *generationService) requestText(ctx context.Context, language, level, nativeLanguage, topic string, reinforceTerms, interests []string) (*generatedContent, error) {
	system := buildTextSystemPrompt(language, level, nativeLanguage, topic, reinforceTerms, interests, s.cfg.App.TextWordCount)
	user := buildTextUserPrompt(language, level, nativeLanguage)

	raw, err := s.llmClient.GenerateJSON(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var content generatedContent
	if err := json.Unmarshal([]byte(llm.StripCodeFence(raw)), &content); err != nil {
		return nil, fmt.Errorf("parse generated content: %w", err)
	}
	if content.Title == "" || content.Text == "" {
		return nil, fmt.Errorf("generated content missing title or text")
	}
	return &content, nil
}

// requestIllustration は2段階で挿絵を生成します:
// 本文から情景描写を作り、それを画風指定と合わせて画像生成に渡す。
// どこで失敗しても nil を返すだけで、エラーは上に伝播させない。
func (s *generationService) requestIllustration(ctx context.Context, title, body string) []byte {
	logger := middleware.GetLogger(ctx)

	scene, err := s.llmClient.GenerateText(ctx, "You describe visual scenes for illustrators.", buildScenePrompt(title, body))
	if err != nil || scene == "" {
		logger.Warn("Illustration skipped: scene description failed", "error", err)
		return nil
	}

	imageData, err := s.llmClient.GenerateImage(ctx, illustrationStyleDirective+scene)
	if err != nil || len(imageData) == 0 {
		logger.Warn("Illustration skipped: image generation failed", "error", err)
		return nil
	}

	return imageData
}

// trackAppearances は生成本文に実際に出現した復習候補だけに対して
// 出現記録の作成・最終出現時刻の更新・LEARNING→REVIEWINGの昇格を行います。
// 生成APIは候補の織り込みを保証しないため、出現確認が必須。
func (s *generationService) trackAppearances(ctx context.Context, tx *gorm.DB, candidates []*model.DictionaryWord, body string, textID uuid.UUID, now time.Time) error {
	logger := middleware.GetLogger(ctx)

	matched := matchReinforcedWords(candidates, body)
	if len(matched) == 0 {
		// 候補が1語も登場しなかった。正常系。
		logger.Debug("No reinforcement words appeared in generated text", "candidates", len(candidates))
		return nil
	}

	appearances := make([]*model.WordAppearance, 0, len(matched))
	for _, w := range matched {
		appearances = append(appearances, &model.WordAppearance{
			AppearanceID: uuid.New(),
			WordID:       w.WordID,
			TextID:       textID,
			Clicked:      false,
		})
	}
	if err := s.appearanceRepo.CreateBatch(ctx, tx, appearances); err != nil {
		return err
	}

	for _, w := range matched {
		w.LastSeenAt = now
		// 自動昇格は LEARNING→REVIEWING のみ。REVIEWING/MASTERED には触れない。
		if w.MasteryLevel == model.MasteryLearning {
			w.MasteryLevel = model.MasteryReviewing
		}
		if err := s.dictRepo.Update(ctx, tx, w); err != nil {
			return err
		}
	}

	logger.Info("Tracked reinforcement word appearances", "matched", len(matched), "text_id", textID)
	return nil
}
