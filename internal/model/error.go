// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
// エンジンのエラー分類はこのセンチネルエラーで行い、呼び出し側は errors.Is で判定する
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// 出題エンジン固有のエラー
	ErrExpression        = errors.New("expression evaluation failed") // テンプレートの数式不備 (リトライ不可・作問者の修正が必要)
	ErrGeneration        = errors.New("distractor generation failed") // 誤答選択肢が生成できない (同じく作問不備)
	ErrNoQuestions       = errors.New("no questions available")       // トピック全体でも問題プールが空 (コンテンツ追加後にリトライ可)
	ErrOracleUnavailable = errors.New("mastery oracle unavailable")   // 習熟度推定サービスの一時障害 (リトライ可)
	ErrLearnerNotFound   = errors.New("learner not found or invalid") // 学習者IDが不正
)

// AppError はエラーコード・メッセージ・対象フィールドを保持するアプリケーションエラーです。
// センチネルエラーをラップし、HTTPステータスへのマッピングは webutil 側で行います。
type AppError struct {
	Detail ErrorDetail
	Err    error // ラップする原因エラー (センチネルエラー or 外部エラー)
}

// ErrorDetail はAPIエラーレスポンスに含めるエラー詳細です
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

// Unwrap は errors.Is / errors.As のためにラップされたエラーを返します
func (e *AppError) Unwrap() error {
	return e.Err
}
