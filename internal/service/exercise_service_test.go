// internal/service/exercise_service_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	llmmocks "go_5_tadoku_read/internal/llm/mocks"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name    string
		exType  model.ExerciseType
		given   string
		correct string
		want    bool
	}{
		// MULTIPLE_CHOICE / TRUE_FALSE: 前後空白と大文字小文字のみ無視
		{"正常系: 選択式は完全一致で正解", model.ExerciseMultipleChoice, "el perro", "el perro", true},
		{"正常系: 選択式は大文字小文字を区別しない", model.ExerciseMultipleChoice, "El Perro", "el perro", true},
		{"正常系: 選択式は前後空白を無視する", model.ExerciseMultipleChoice, "  el perro  ", "el perro", true},
		{"異常系: 選択式は別の選択肢なら不正解", model.ExerciseMultipleChoice, "el gato", "el perro", false},
		{"正常系: 真偽式はリテラル一致", model.ExerciseTrueFalse, "True", "true", true},
		{"異常系: 真偽式は逆の値なら不正解", model.ExerciseTrueFalse, "false", "true", false},

		// FILL_BLANK: 句読点の有無を問わない
		{"正常系: 空欄補充は句読点の有無を問わない", model.ExerciseFillBlank, "casa.", "casa", true},
		{"正常系: 空欄補充はアポストロフィも無視する", model.ExerciseFillBlank, "l'eau", "leau", true},
		{"異常系: 空欄補充は別の単語なら不正解", model.ExerciseFillBlank, "perro", "casa", false},

		// TRANSLATION: 双方向の包含一致まで許容
		{"正常系: 翻訳は完全一致で正解", model.ExerciseTranslation, "犬は大きい", "犬は大きい", true},
		{"正常系: 翻訳は解答が正解を包含していれば正解", model.ExerciseTranslation, "その犬はとても大きいです", "犬はとても大きい", true},
		{"正常系: 翻訳は正解が解答を包含していても正解", model.ExerciseTranslation, "犬は大きい", "その犬は大きいです", true},
		{"異常系: 翻訳は無関係な文なら不正解", model.ExerciseTranslation, "猫は小さい", "犬は大きい", false},
		{"正常系: 翻訳は末尾の句点を含んでいても包含で正解", model.ExerciseTranslation, "犬は大きいです。", "犬は大きい", true},
		{"異常系: 翻訳は文中に読点が挟まると包含にならず不正解", model.ExerciseTranslation, "その犬は、とても大きい", "その犬はとても大きい", false},

		// SENTENCE_ORDER: 単語間の空白量を問わない
		{"正常系: 並べ替えは空白の量を問わない", model.ExerciseSentenceOrder, "el  perro   corre", "el perro corre", true},
		{"異常系: 並べ替えは語順が違えば不正解", model.ExerciseSentenceOrder, "perro el corre", "el perro corre", false},

		// 共通: 空解答は常に不正解
		{"異常系: 空の解答は不正解", model.ExerciseMultipleChoice, "", "el perro", false},
		{"異常系: 空白のみの解答は不正解", model.ExerciseTranslation, "   ", "犬は大きい", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAnswer(tt.exType, tt.given, tt.correct))
		})
	}
}

// validExerciseBatch は配分 (2/2/1/2/1) を満たす8問のバッチを生成します
func validExerciseBatch() generatedExerciseBatch {
	return generatedExerciseBatch{
		Exercises: []generatedExercise{
			{Type: "MULTIPLE_CHOICE", Question: "¿Qué hace el perro?", Options: []string{"corre", "duerme", "come", "ladra"}, CorrectAnswer: "corre", Explanation: "本文2行目"},
			{Type: "MULTIPLE_CHOICE", Question: "¿Dónde vive Ana?", Options: []string{"Madrid", "Lima", "Bogotá", "Quito"}, CorrectAnswer: "Lima"},
			{Type: "FILL_BLANK", Question: "El perro ___ en el parque.", CorrectAnswer: "corre"},
			{Type: "FILL_BLANK", Question: "Ana vive en ___.", CorrectAnswer: "Lima"},
			{Type: "TRUE_FALSE", Question: "El perro es grande.", CorrectAnswer: "true"},
			{Type: "TRANSLATION", Question: "El perro corre.", CorrectAnswer: "犬は走る"},
			{Type: "TRANSLATION", Question: "Ana vive en Lima.", CorrectAnswer: "アナはリマに住んでいる"},
			{Type: "SENTENCE_ORDER", Question: "正しい語順に並べ替えなさい", Options: []string{"el", "perro", "corre"}, CorrectAnswer: "el perro corre"},
		},
	}
}

func mustMarshalBatch(t *testing.T, batch generatedExerciseBatch) string {
	t.Helper()
	b, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("failed to marshal batch: %v", err)
	}
	return string(b)
}

func Test_parseExerciseBatch(t *testing.T) {
	textID := uuid.New()

	t.Run("正常系: 配分を満たす8問を受理する", func(t *testing.T) {
		raw := mustMarshalBatch(t, validExerciseBatch())

		exercises, err := parseExerciseBatch(raw, textID)

		assert.NoError(t, err)
		assert.Len(t, exercises, model.ExerciseBatchSize)
		for i, ex := range exercises {
			assert.Equal(t, textID, ex.TextID)
			assert.Equal(t, i, ex.OrderIndex)
			assert.NotEqual(t, uuid.Nil, ex.ExerciseID)
		}
		// 選択肢はシリアライズして保持される
		assert.Equal(t, []string{"corre", "duerme", "come", "ladra"}, exercises[0].OptionList())
	})

	t.Run("正常系: コードフェンス付きでも受理する", func(t *testing.T) {
		raw := "```json\n" + mustMarshalBatch(t, validExerciseBatch()) + "\n```"

		exercises, err := parseExerciseBatch(raw, textID)

		assert.NoError(t, err)
		assert.Len(t, exercises, model.ExerciseBatchSize)
	})

	t.Run("異常系: 8問未満は拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises = batch.Exercises[:7]

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 種別配分が崩れていれば拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		// TRUE_FALSEをもう1問に差し替えて配分を崩す (計8問のまま)
		batch.Exercises[5] = generatedExercise{Type: "TRUE_FALSE", Question: "Ana es alta.", CorrectAnswer: "false"}

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 未知の種別は拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises[0].Type = "MATCHING"

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 正解が欠けていれば拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises[2].CorrectAnswer = ""

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 選択式の選択肢が4つでなければ拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises[0].Options = []string{"corre", "duerme"}

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 選択式の正解が選択肢に含まれなければ拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises[0].CorrectAnswer = "vuela"

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 真偽式の正解がリテラルでなければ拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises[4].CorrectAnswer = "はい"

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: 並べ替えの選択肢に複数語が混じれば拒否する", func(t *testing.T) {
		batch := validExerciseBatch()
		batch.Exercises[7].Options = []string{"el perro", "corre"}

		_, err := parseExerciseBatch(mustMarshalBatch(t, batch), textID)

		assert.Error(t, err)
	})

	t.Run("異常系: JSONとしてパースできなければ拒否する", func(t *testing.T) {
		_, err := parseExerciseBatch("ここに問題を8問生成しました。", textID)

		assert.Error(t, err)
	})
}

func TestExerciseService_GenerateExercises(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	learnerID := uuid.New()
	courseID := uuid.New()
	textID := uuid.New()

	learner := &model.Learner{LearnerID: learnerID, NativeLanguage: "日本語"}
	course := &model.Course{CourseID: courseID, LearnerID: learnerID, Language: "スペイン語", Level: "A2"}
	text := &model.GeneratedText{TextID: textID, CourseID: courseID, Title: "El perro", Content: "El perro corre en el parque."}

	t.Run("正常系: 8問生成して保存する", func(t *testing.T) {
		mockTextRepo := new(mocks.TextRepository)
		mockCourseRepo := new(mocks.CourseRepository)
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockExerciseRepo := new(mocks.ExerciseRepository)
		mockLLM := new(llmmocks.Client)

		mockExerciseRepo.On("CountByText", ctx, mock.Anything, textID).Return(int64(0), nil).Once()
		mockTextRepo.On("FindByID", ctx, mock.Anything, textID).Return(text, nil).Once()
		mockCourseRepo.On("FindByCourseID", ctx, mock.Anything, courseID).Return(course, nil).Once()
		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockLLM.On("GenerateJSON", ctx, mock.AnythingOfType("string"), "Create the exercises now.").
			Return(mustMarshalBatch(t, validExerciseBatch()), nil).Once()
		mockExerciseRepo.On("CreateBatch", ctx, mock.Anything, mock.AnythingOfType("[]*model.Exercise")).Return(nil).Once()

		svc := NewExerciseService(db, mockTextRepo, mockCourseRepo, mockLearnerRepo, mockExerciseRepo, new(mocks.ExerciseProgressRepository), mockLLM)
		count, err := svc.GenerateExercises(ctx, textID)

		assert.NoError(t, err)
		assert.Equal(t, model.ExerciseBatchSize, count)
		mockTextRepo.AssertExpectations(t)
		mockCourseRepo.AssertExpectations(t)
		mockLearnerRepo.AssertExpectations(t)
		mockExerciseRepo.AssertExpectations(t)
		mockLLM.AssertExpectations(t)
	})

	t.Run("正常系: 既に問題があれば生成せず既存件数を返す", func(t *testing.T) {
		mockExerciseRepo := new(mocks.ExerciseRepository)
		mockLLM := new(llmmocks.Client)

		mockExerciseRepo.On("CountByText", ctx, mock.Anything, textID).Return(int64(8), nil).Once()

		svc := NewExerciseService(db, new(mocks.TextRepository), new(mocks.CourseRepository), new(mocks.LearnerRepository), mockExerciseRepo, new(mocks.ExerciseProgressRepository), mockLLM)
		count, err := svc.GenerateExercises(ctx, textID)

		assert.NoError(t, err)
		assert.Equal(t, 8, count)
		mockExerciseRepo.AssertExpectations(t)
		mockLLM.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 生成結果が検証に通らなければ保存しない", func(t *testing.T) {
		mockTextRepo := new(mocks.TextRepository)
		mockCourseRepo := new(mocks.CourseRepository)
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockExerciseRepo := new(mocks.ExerciseRepository)
		mockLLM := new(llmmocks.Client)

		mockExerciseRepo.On("CountByText", ctx, mock.Anything, textID).Return(int64(0), nil).Once()
		mockTextRepo.On("FindByID", ctx, mock.Anything, textID).Return(text, nil).Once()
		mockCourseRepo.On("FindByCourseID", ctx, mock.Anything, courseID).Return(course, nil).Once()
		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockLLM.On("GenerateJSON", ctx, mock.AnythingOfType("string"), "Create the exercises now.").
			Return(`{"exercises": []}`, nil).Once()

		svc := NewExerciseService(db, mockTextRepo, mockCourseRepo, mockLearnerRepo, mockExerciseRepo, new(mocks.ExerciseProgressRepository), mockLLM)
		_, err := svc.GenerateExercises(ctx, textID)

		assert.Error(t, err)
		mockExerciseRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExerciseService_SubmitAnswer(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	learnerID := uuid.New()
	courseID := uuid.New()
	textID := uuid.New()
	exerciseID := uuid.New()

	course := &model.Course{CourseID: courseID, LearnerID: learnerID, Language: "スペイン語", Level: "A2"}
	text := &model.GeneratedText{TextID: textID, CourseID: courseID, Title: "El perro", Content: "El perro corre."}
	exercise := &model.Exercise{
		ExerciseID:    exerciseID,
		TextID:        textID,
		Type:          model.ExerciseTrueFalse,
		Question:      "El perro es grande.",
		CorrectAnswer: "true",
		Explanation:   "本文1行目",
	}

	t.Run("正常系: 初回解答はレコードを作成し試行回数1を返す", func(t *testing.T) {
		mockTextRepo := new(mocks.TextRepository)
		mockCourseRepo := new(mocks.CourseRepository)
		mockExerciseRepo := new(mocks.ExerciseRepository)
		mockProgressRepo := new(mocks.ExerciseProgressRepository)

		mockExerciseRepo.On("FindByID", ctx, mock.Anything, exerciseID).Return(exercise, nil).Once()
		mockTextRepo.On("FindByID", ctx, mock.Anything, textID).Return(text, nil).Once()
		mockCourseRepo.On("FindByCourseID", ctx, mock.Anything, courseID).Return(course, nil).Once()
		mockProgressRepo.On("FindByExercise", ctx, mock.Anything, learnerID, exerciseID).Return(nil, model.ErrNotFound).Once()
		mockProgressRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(p *model.ExerciseProgress) bool {
			return p.LearnerID == learnerID && p.ExerciseID == exerciseID && p.IsCorrect && p.AttemptCount == 1
		})).Return(nil).Once()

		svc := NewExerciseService(db, mockTextRepo, mockCourseRepo, new(mocks.LearnerRepository), mockExerciseRepo, mockProgressRepo, new(llmmocks.Client))
		res, err := svc.SubmitAnswer(ctx, learnerID, exerciseID, &model.SubmitAnswerRequest{Answer: "True"})

		assert.NoError(t, err)
		assert.True(t, res.IsCorrect)
		assert.Equal(t, "true", res.CorrectAnswer)
		assert.Equal(t, 1, res.AttemptCount)
		mockProgressRepo.AssertExpectations(t)
	})

	t.Run("正常系: 再解答は試行回数を加算して更新する", func(t *testing.T) {
		mockTextRepo := new(mocks.TextRepository)
		mockCourseRepo := new(mocks.CourseRepository)
		mockExerciseRepo := new(mocks.ExerciseRepository)
		mockProgressRepo := new(mocks.ExerciseProgressRepository)

		existing := &model.ExerciseProgress{
			ProgressID:   uuid.New(),
			LearnerID:    learnerID,
			ExerciseID:   exerciseID,
			Completed:    true,
			IsCorrect:    false,
			Answer:       "false",
			AttemptCount: 1,
		}

		mockExerciseRepo.On("FindByID", ctx, mock.Anything, exerciseID).Return(exercise, nil).Once()
		mockTextRepo.On("FindByID", ctx, mock.Anything, textID).Return(text, nil).Once()
		mockCourseRepo.On("FindByCourseID", ctx, mock.Anything, courseID).Return(course, nil).Once()
		mockProgressRepo.On("FindByExercise", ctx, mock.Anything, learnerID, exerciseID).Return(existing, nil).Once()
		mockProgressRepo.On("Update", ctx, mock.Anything, mock.MatchedBy(func(p *model.ExerciseProgress) bool {
			return p.AttemptCount == 2 && p.IsCorrect && p.Answer == "true"
		})).Return(nil).Once()

		svc := NewExerciseService(db, mockTextRepo, mockCourseRepo, new(mocks.LearnerRepository), mockExerciseRepo, mockProgressRepo, new(llmmocks.Client))
		res, err := svc.SubmitAnswer(ctx, learnerID, exerciseID, &model.SubmitAnswerRequest{Answer: "true"})

		assert.NoError(t, err)
		assert.True(t, res.IsCorrect)
		assert.Equal(t, 2, res.AttemptCount)
		mockProgressRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他人のテキストの問題には解答できない", func(t *testing.T) {
		mockTextRepo := new(mocks.TextRepository)
		mockCourseRepo := new(mocks.CourseRepository)
		mockExerciseRepo := new(mocks.ExerciseRepository)

		otherLearner := uuid.New()

		mockExerciseRepo.On("FindByID", ctx, mock.Anything, exerciseID).Return(exercise, nil).Once()
		mockTextRepo.On("FindByID", ctx, mock.Anything, textID).Return(text, nil).Once()
		mockCourseRepo.On("FindByCourseID", ctx, mock.Anything, courseID).Return(course, nil).Once()

		svc := NewExerciseService(db, mockTextRepo, mockCourseRepo, new(mocks.LearnerRepository), mockExerciseRepo, new(mocks.ExerciseProgressRepository), new(llmmocks.Client))
		_, err := svc.SubmitAnswer(ctx, otherLearner, exerciseID, &model.SubmitAnswerRequest{Answer: "true"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrForbidden))
	})

	t.Run("異常系: 存在しない問題は404相当のエラー", func(t *testing.T) {
		mockExerciseRepo := new(mocks.ExerciseRepository)

		unknownID := uuid.New()
		mockExerciseRepo.On("FindByID", ctx, mock.Anything, unknownID).Return(nil, model.ErrNotFound).Once()

		svc := NewExerciseService(db, new(mocks.TextRepository), new(mocks.CourseRepository), new(mocks.LearnerRepository), mockExerciseRepo, new(mocks.ExerciseProgressRepository), new(llmmocks.Client))
		_, err := svc.SubmitAnswer(ctx, learnerID, unknownID, &model.SubmitAnswerRequest{Answer: "true"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}
