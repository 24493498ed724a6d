// internal/handlers/text_handler.go
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

type TextHandler struct {
	generationService service.GenerationService
	textService       service.TextService
}

func NewTextHandler(generationService service.GenerationService, textService service.TextService) *TextHandler {
	return &TextHandler{
		generationService: generationService,
		textService:       textService,
	}
}

// PostText は新しい読み物を生成するハンドラ。
// 生成APIを複数回呼ぶため応答に時間がかかる。
func (h *TextHandler) PostText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostText")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}

	// トピックは任意なのでボディなしも許容する
	var req model.GenerateTextRequest
	if r.ContentLength > 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", "error", err)
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		if err := webutil.Validator.Struct(req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				logger.Warn("Validation failed for text generation", "errors", validationErrors.Error())
				webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			} else {
				logger.Error("Unexpected error during validation", "error", err)
				webutil.HandleError(w, logger, err)
			}
			return
		}
	}

	resp, err := h.generationService.GenerateText(r.Context(), learnerID, courseID, req.Topic)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// PostGuestText はアカウントなしで読み物を1本生成するハンドラ。
// レート制限ミドルウェアの背後に置かれる前提。
func (h *TextHandler) PostGuestText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostGuestText")

	var req model.GuestGenerateTextRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for guest text generation", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.generationService.GenerateGuestText(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetTexts はコースの生成済みテキスト一覧を返すハンドラ (本文は含まない)
func (h *TextHandler) GetTexts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetTexts")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}

	items, err := h.textService.ListTexts(r.Context(), learnerID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.TextListItem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetText は特定のテキストを本文込みで返すハンドラ
func (h *TextHandler) GetText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetText")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	textID, ok := parseUUIDParam(w, r, logger, "text_id")
	if !ok {
		return
	}

	text, err := h.textService.GetText(r.Context(), learnerID, textID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

// GetTextImage は挿絵バイナリをそのまま配信するハンドラ
func (h *TextHandler) GetTextImage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetTextImage")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	textID, ok := parseUUIDParam(w, r, logger, "text_id")
	if !ok {
		return
	}

	imageData, err := h.textService.GetTextImage(r.Context(), learnerID, textID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=86400") // 挿絵は不変なのでキャッシュ可
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(imageData); err != nil {
		logger.Warn("Failed to write image response", "error", err)
	}
}
