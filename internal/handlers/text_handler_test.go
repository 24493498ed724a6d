package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_tadoku_read/internal/handlers"
	"go_5_tadoku_read/internal/model"
	svc_mocks "go_5_tadoku_read/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTextHandler_PostText(t *testing.T) {
	mockGeneration := new(svc_mocks.GenerationService)
	mockText := new(svc_mocks.TextService)
	handler := handlers.NewTextHandler(mockGeneration, mockText)

	testLearnerID := uuid.New()
	testCourseID := uuid.New()
	testTextID := uuid.New()
	ctxWithLearner := context.WithValue(context.Background(), model.LearnerIDKey, testLearnerID)

	successResp := &model.GenerateTextResponse{
		TextID:        testTextID,
		Title:         "La casa pequeña",
		HasImage:      true,
		ExerciseCount: 8,
	}

	tests := []struct {
		name           string
		courseIDParam  string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "正常系: ボディなしで生成 (トピック未指定)",
			courseIDParam: testCourseID.String(),
			reqBody:       nil,
			setupContext:  func() context.Context { return ctxWithLearner },
			setupMock: func() {
				mockGeneration.On("GenerateText", mock.Anything, testLearnerID, testCourseID, "").Return(successResp, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"exercise_count":8`,
		},
		{
			name:          "正常系: トピック指定で生成",
			courseIDParam: testCourseID.String(),
			reqBody:       &model.GenerateTextRequest{Topic: "el fútbol"},
			setupContext:  func() context.Context { return ctxWithLearner },
			setupMock: func() {
				mockGeneration.On("GenerateText", mock.Anything, testLearnerID, testCourseID, "el fútbol").Return(successResp, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"title":"La casa pequeña"`,
		},
		{
			name:           "異常系: 不正なコースID形式",
			courseIDParam:  "not-a-uuid",
			reqBody:        nil,
			setupContext:   func() context.Context { return ctxWithLearner },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:           "異常系: 不正なJSONボディ",
			courseIDParam:  testCourseID.String(),
			reqBody:        `{"topic":`,
			setupContext:   func() context.Context { return ctxWithLearner },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:          "異常系: 生成失敗は502",
			courseIDParam: testCourseID.String(),
			reqBody:       nil,
			setupContext:  func() context.Context { return ctxWithLearner },
			setupMock: func() {
				appErr := model.NewAppError("GENERATION_FAILED", "テキストの生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrExternal)
				mockGeneration.On("GenerateText", mock.Anything, testLearnerID, testCourseID, "").Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   "GENERATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGeneration.Mock = mock.Mock{}
			tt.setupMock()

			chiCtx := contextWithChiURLParam(tt.setupContext(), "course_id", tt.courseIDParam)
			req := newJsonRequest(t, http.MethodPost, "/courses/"+tt.courseIDParam+"/texts", tt.reqBody)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.PostText(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockGeneration.AssertExpectations(t)
		})
	}
}

func TestTextHandler_PostGuestText(t *testing.T) {
	mockGeneration := new(svc_mocks.GenerationService)
	mockText := new(svc_mocks.TextService)
	handler := handlers.NewTextHandler(mockGeneration, mockText)

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "正常系: 言語とレベルだけで生成できる",
			reqBody: &model.GuestGenerateTextRequest{Language: "スペイン語", Level: "A1"},
			setupMock: func() {
				mockGeneration.On("GenerateGuestText", mock.Anything, mock.MatchedBy(func(req *model.GuestGenerateTextRequest) bool {
					return req.Language == "スペイン語" && req.Level == "A1"
				})).Return(&model.GuestTextResponse{Title: "El mercado", Content: "Pedro compra frutas."}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"El mercado"`,
		},
		{
			name:           "異常系: 言語が欠けているとバリデーションエラー",
			reqBody:        &model.GuestGenerateTextRequest{Level: "A1"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 不正なJSONボディ",
			reqBody:        `{"language":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGeneration.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPost, "/guest/texts", tt.reqBody)

			rr := httptest.NewRecorder()
			handler.PostGuestText(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockGeneration.AssertExpectations(t)
		})
	}
}

func TestTextHandler_GetTextImage(t *testing.T) {
	mockGeneration := new(svc_mocks.GenerationService)
	mockText := new(svc_mocks.TextService)
	handler := handlers.NewTextHandler(mockGeneration, mockText)

	testLearnerID := uuid.New()
	testTextID := uuid.New()
	ctxWithLearner := context.WithValue(context.Background(), model.LearnerIDKey, testLearnerID)

	t.Run("正常系: PNGバイナリをそのまま返す", func(t *testing.T) {
		mockText.Mock = mock.Mock{}
		imageData := []byte{0x89, 0x50, 0x4e, 0x47}
		mockText.On("GetTextImage", mock.Anything, testLearnerID, testTextID).Return(imageData, nil).Once()

		chiCtx := contextWithChiURLParam(ctxWithLearner, "text_id", testTextID.String())
		req := newJsonRequest(t, http.MethodGet, "/texts/"+testTextID.String()+"/image", nil)
		req = req.WithContext(chiCtx)

		rr := httptest.NewRecorder()
		handler.GetTextImage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.Equal(t, imageData, rr.Body.Bytes())
		mockText.AssertExpectations(t)
	})

	t.Run("異常系: 挿絵がないテキストは404", func(t *testing.T) {
		mockText.Mock = mock.Mock{}
		appErr := model.NewAppError("IMAGE_NOT_FOUND", "このテキストには挿絵がありません。", "", model.ErrNotFound)
		mockText.On("GetTextImage", mock.Anything, testLearnerID, testTextID).Return(nil, appErr).Once()

		chiCtx := contextWithChiURLParam(ctxWithLearner, "text_id", testTextID.String())
		req := newJsonRequest(t, http.MethodGet, "/texts/"+testTextID.String()+"/image", nil)
		req = req.WithContext(chiCtx)

		rr := httptest.NewRecorder()
		handler.GetTextImage(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "IMAGE_NOT_FOUND")
		mockText.AssertExpectations(t)
	})
}
