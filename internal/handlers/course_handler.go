// internal/handlers/course_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/service"
	"go_5_tadoku_read/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CourseHandler struct {
	service service.CourseService
}

func NewCourseHandler(s service.CourseService) *CourseHandler {
	return &CourseHandler{service: s}
}

// PostCourse は新しいコースを作成するためのハンドラ
func (h *CourseHandler) PostCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostCourse")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateCourseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for course creation", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	course, err := h.service.CreateCourse(r.Context(), learnerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, model.NewCourseResponse(course), logger)
}

// GetCourses は学習者のコース一覧を返すハンドラ
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetCourses")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courses, err := h.service.ListCourses(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	responses := make([]*model.CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, model.NewCourseResponse(c))
	}
	webutil.RespondWithJSON(w, http.StatusOK, responses, logger)
}

// GetCourse は特定のコースを返すハンドラ
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetCourse")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}

	course, err := h.service.GetCourse(r.Context(), learnerID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewCourseResponse(course), logger)
}

// DeleteCourse はコースを削除するハンドラ
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteCourse")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(r.Context(), learnerID, courseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam はURLパラメータをUUIDとして解釈します。
// 失敗時はエラーレスポンスまで書き込み、falseを返す。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", "param", name, "value", raw, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
