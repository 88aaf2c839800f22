// internal/handlers/quiz_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"
	"go_5_adapt_quiz/internal/service"
	"go_5_adapt_quiz/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(s service.QuizService) *QuizHandler {
	return &QuizHandler{service: s}
}

// GetNextQuestion は GET /api/v1/courses/{courseSlug}/next を処理します
func (h *QuizHandler) GetNextQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseSlug := chi.URLParam(r, "courseSlug")
	if courseSlug == "" {
		appErr := model.NewAppError("INVALID_INPUT", "コーススラッグが必要です。", "courseSlug", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.RecommendNext(r.Context(), learnerID, courseSlug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, resp)
}

// SubmitAttempt は POST /api/v1/attempts/{instanceID} を処理します
func (h *QuizHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	instanceIDStr := chi.URLParam(r, "instanceID")
	instanceID, err := uuid.Parse(instanceIDStr)
	if err != nil {
		appErr := model.NewAppError("INVALID_INPUT", "インスタンスIDの形式が正しくありません。", "instanceID", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitAttempt(r.Context(), learnerID, instanceID, req.AttemptedKeys)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, resp)
}
