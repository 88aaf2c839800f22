// internal/middleware/admin_auth.go
package middleware

import (
	"net/http"

	"go_5_adapt_quiz/internal/config"
	"go_5_adapt_quiz/internal/model"
	"go_5_adapt_quiz/internal/webutil"

	"golang.org/x/crypto/bcrypt"
)

// AdminKeyMiddleware は X-Admin-Key ヘッダーを設定済みのbcryptハッシュと照合します。
// スナップショット繰越のような運用系エンドポイントの保護用。
// ハッシュ未設定のデプロイではエンドポイント自体を閉じる (全リクエスト拒否)。
func AdminKeyMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			if cfg.Admin.KeyHash == "" {
				logger.Warn("Admin auth failed: admin key hash not configured")
				appErr := model.NewAppError("FORBIDDEN", "管理エンドポイントは無効化されています。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				logger.Warn("Admin auth failed: X-Admin-Key header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "X-Admin-Keyヘッダーが必要です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(cfg.Admin.KeyHash), []byte(key)); err != nil {
				logger.Warn("Admin auth failed: key mismatch")
				appErr := model.NewAppError("FORBIDDEN", "管理キーが一致しません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
