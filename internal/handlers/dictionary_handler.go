// internal/handlers/dictionary_handler.go
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

type DictionaryHandler struct {
	service service.DictionaryService
}

func NewDictionaryHandler(s service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{service: s}
}

// LookupWord はクリック翻訳のハンドラ。初回は翻訳を生成して辞書に登録し、
// 2回目以降は参照回数を更新して既存の訳を返します。
func (h *DictionaryHandler) LookupWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "LookupWord")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}

	var req model.LookupWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for word lookup", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	word, err := h.service.LookupWord(r.Context(), learnerID, courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// GetWords はコースの個人辞書の一覧を返すハンドラ
func (h *DictionaryHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWords")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}

	words, err := h.service.ListWords(r.Context(), learnerID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.DictionaryWord{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// PatchWordMastery は習得レベルを明示的に更新するハンドラ (MASTERED化など)
func (h *DictionaryHandler) PatchWordMastery(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PatchWordMastery")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	wordID, ok := parseUUIDParam(w, r, logger, "word_id")
	if !ok {
		return
	}

	var req model.UpdateMasteryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for mastery update", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	word, err := h.service.UpdateMastery(r.Context(), learnerID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// DeleteWord は辞書から単語を削除するハンドラ
func (h *DictionaryHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteWord")

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	wordID, ok := parseUUIDParam(w, r, logger, "word_id")
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), learnerID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
