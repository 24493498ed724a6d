// internal/handlers/exercise_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/service"
	"go_5_tadoku_read/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ExerciseHandler struct {
	service service.ExerciseService
}

func NewExerciseHandler(s service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: s}
}

// GetExercises はテキストに紐づく問題一覧を返すハンドラ。
// 出題用なので正解と解説はレスポンスに含まれない。
func (h *ExerciseHandler) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetExercises")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	textID, ok := parseUUIDParam(w, r, logger, "text_id")
	if !ok {
		return
	}

	exercises, err := h.service.ListExercises(r.Context(), learnerID, textID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if exercises == nil {
		exercises = []*model.ExerciseResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, exercises, logger)
}

// PostExercises はテキストの問題生成を明示的に要求するハンドラ。
// 生成時に失敗していた場合のリトライ用で、既に問題があれば何もしない。
func (h *ExerciseHandler) PostExercises(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostExercises")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	textID, ok := parseUUIDParam(w, r, logger, "text_id")
	if !ok {
		return
	}

	// 一覧と同じ所有チェックを生成前に通す
	if _, err := h.service.ListExercises(r.Context(), learnerID, textID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.service.GenerateExercises(r.Context(), textID)
	if err != nil {
		logger.Error("Exercise generation failed", "error", err)
		appErr := model.NewAppError("GENERATION_FAILED", "問題の生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrExternal)
		webutil.HandleError(w, logger, appErr)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]int{"exercise_count": count}, logger)
}

// PostAnswer は1問分の解答を採点して記録するハンドラ
func (h *ExerciseHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostAnswer")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	exerciseID, ok := parseUUIDParam(w, r, logger, "exercise_id")
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for answer submission", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), learnerID, exerciseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
