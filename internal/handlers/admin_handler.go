// internal/handlers/admin_handler.go
package handlers

import (
	"net/http"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/service"
	"go_5_adapt_quiz/internal/webutil"
)

// AdminHandler は運用系エンドポイントを束ねます。
// ルーティング側で AdminKeyMiddleware を通してから到達させること。
type AdminHandler struct {
	mastery service.MasteryService
}

func NewAdminHandler(mastery service.MasteryService) *AdminHandler {
	return &AdminHandler{mastery: mastery}
}

// RollSnapshots は POST /internal/snapshots/roll を処理します。
// 週次スケジューラから叩かれる想定 (多重実行しても繰越が1段進むだけで壊れない)。
func (h *AdminHandler) RollSnapshots(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	result, err := h.mastery.RollSnapshots(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, result)
}
