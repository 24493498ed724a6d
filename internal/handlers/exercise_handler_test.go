package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_tadoku_read/internal/handlers"
	"go_5_tadoku_read/internal/model"
	svc_mocks "go_5_tadoku_read/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestExerciseHandler_GetExercises(t *testing.T) {
	mockService := new(svc_mocks.ExerciseService)
	handler := handlers.NewExerciseHandler(mockService)

	testLearnerID := uuid.New()
	testTextID := uuid.New()
	ctxWithLearner := context.WithValue(context.Background(), model.LearnerIDKey, testLearnerID)

	expectedExercises := []*model.ExerciseResponse{
		{ExerciseID: uuid.New(), Type: model.ExerciseMultipleChoice, Question: "¿Qué hace el perro?", Options: []string{"corre", "duerme", "come", "ladra"}, OrderIndex: 0},
		{ExerciseID: uuid.New(), Type: model.ExerciseTrueFalse, Question: "El perro es grande.", OrderIndex: 1},
	}

	tests := []struct {
		name           string
		textIDParam    string
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 問題一覧を取得",
			textIDParam:  testTextID.String(),
			setupContext: func() context.Context { return ctxWithLearner },
			setupMock: func() {
				mockService.On("ListExercises", mock.Anything, testLearnerID, testTextID).Return(expectedExercises, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"question":"¿Qué hace el perro?"`,
		},
		{
			name:         "正常系: サービスがnilを返しても空配列",
			textIDParam:  testTextID.String(),
			setupContext: func() context.Context { return ctxWithLearner },
			setupMock: func() {
				mockService.On("ListExercises", mock.Anything, testLearnerID, testTextID).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "異常系: 認証コンテキストがない",
			textIDParam:    testTextID.String(),
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:           "異常系: 不正なテキストID形式",
			textIDParam:    "not-a-uuid",
			setupContext:   func() context.Context { return ctxWithLearner },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:         "異常系: 他人のテキスト",
			textIDParam:  testTextID.String(),
			setupContext: func() context.Context { return ctxWithLearner },
			setupMock: func() {
				appErr := model.NewAppError("FORBIDDEN", "このテキストへのアクセス権がありません。", "", model.ErrForbidden)
				mockService.On("ListExercises", mock.Anything, testLearnerID, testTextID).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			chiCtx := contextWithChiURLParam(tt.setupContext(), "text_id", tt.textIDParam)
			req := newJsonRequest(t, http.MethodGet, "/texts/"+tt.textIDParam+"/exercises", nil)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.GetExercises(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestExerciseHandler_PostExercises(t *testing.T) {
	mockService := new(svc_mocks.ExerciseService)
	handler := handlers.NewExerciseHandler(mockService)

	testLearnerID := uuid.New()
	testTextID := uuid.New()
	ctxWithLearner := context.WithValue(context.Background(), model.LearnerIDKey, testLearnerID)

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 問題を生成して件数を返す",
			setupMock: func() {
				mockService.On("ListExercises", mock.Anything, testLearnerID, testTextID).Return([]*model.ExerciseResponse{}, nil).Once()
				mockService.On("GenerateExercises", mock.Anything, testTextID).Return(8, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"exercise_count":8`,
		},
		{
			name: "異常系: 生成に失敗したら502",
			setupMock: func() {
				mockService.On("ListExercises", mock.Anything, testLearnerID, testTextID).Return([]*model.ExerciseResponse{}, nil).Once()
				mockService.On("GenerateExercises", mock.Anything, testTextID).Return(0, model.ErrExternal).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   "GENERATION_FAILED",
		},
		{
			name: "異常系: 存在しないテキストは404",
			setupMock: func() {
				appErr := model.NewAppError("TEXT_NOT_FOUND", "テキストが見つかりません。", "", model.ErrNotFound)
				mockService.On("ListExercises", mock.Anything, testLearnerID, testTextID).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "TEXT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			chiCtx := contextWithChiURLParam(ctxWithLearner, "text_id", testTextID.String())
			req := newJsonRequest(t, http.MethodPost, "/texts/"+testTextID.String()+"/exercises", nil)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.PostExercises(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestExerciseHandler_PostAnswer(t *testing.T) {
	mockService := new(svc_mocks.ExerciseService)
	handler := handlers.NewExerciseHandler(mockService)

	testLearnerID := uuid.New()
	testExerciseID := uuid.New()
	ctxWithLearner := context.WithValue(context.Background(), model.LearnerIDKey, testLearnerID)

	successResult := &model.SubmitAnswerResponse{
		IsCorrect:     true,
		CorrectAnswer: "true",
		Explanation:   "本文1行目",
		AttemptCount:  1,
	}

	tests := []struct {
		name           string
		exerciseParam  string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "正常系: 採点結果が返る",
			exerciseParam: testExerciseID.String(),
			reqBody:       &model.SubmitAnswerRequest{Answer: "true"},
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testLearnerID, testExerciseID, mock.MatchedBy(func(req *model.SubmitAnswerRequest) bool {
					return req.Answer == "true"
				})).Return(successResult, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"is_correct":true`,
		},
		{
			name:           "異常系: 不正なJSONボディ",
			exerciseParam:  testExerciseID.String(),
			reqBody:        `{"answer":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 解答が空ならバリデーションエラー",
			exerciseParam:  testExerciseID.String(),
			reqBody:        &model.SubmitAnswerRequest{Answer: ""},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 不正な問題ID形式",
			exerciseParam:  "not-a-uuid",
			reqBody:        &model.SubmitAnswerRequest{Answer: "true"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:          "異常系: 存在しない問題は404",
			exerciseParam: testExerciseID.String(),
			reqBody:       &model.SubmitAnswerRequest{Answer: "true"},
			setupMock: func() {
				appErr := model.NewAppError("EXERCISE_NOT_FOUND", "問題が見つかりません。", "", model.ErrNotFound)
				mockService.On("SubmitAnswer", mock.Anything, testLearnerID, testExerciseID, mock.AnythingOfType("*model.SubmitAnswerRequest")).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "EXERCISE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			chiCtx := contextWithChiURLParam(ctxWithLearner, "exercise_id", tt.exerciseParam)
			req := newJsonRequest(t, http.MethodPost, "/exercises/"+tt.exerciseParam+"/answer", tt.reqBody)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.PostAnswer(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}
