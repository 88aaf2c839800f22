// internal/handlers/mastery_handler.go
package handlers

import (
	"net/http"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"
	"go_5_adapt_quiz/internal/service"
	"go_5_adapt_quiz/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type MasteryHandler struct {
	service service.MasteryService
}

func NewMasteryHandler(s service.MasteryService) *MasteryHandler {
	return &MasteryHandler{service: s}
}

// GetMastery は GET /api/v1/mastery/{topicSlug} を処理します
func (h *MasteryHandler) GetMastery(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topicSlug := chi.URLParam(r, "topicSlug")
	if topicSlug == "" {
		appErr := model.NewAppError("INVALID_INPUT", "トピックスラッグが必要です。", "topicSlug", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.GetMastery(r.Context(), learnerID, topicSlug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, resp)
}

// ListMastery は GET /api/v1/mastery を処理します
func (h *MasteryHandler) ListMastery(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	responses, err := h.service.ListMastery(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if responses == nil {
		responses = []*model.MasteryResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, responses)
}
