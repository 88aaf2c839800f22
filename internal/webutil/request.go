package webutil

import (
	"encoding/json"
	"net/http"

	"go_5_adapt_quiz/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドは拒否する (タイポした回答キーを黙って捨てないため)。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_BODY", "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_BODY", "リクエストボディを解釈できません。", "", model.ErrInvalidInput)
	}
	return nil
}
