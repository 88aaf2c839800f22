// internal/model/attempt.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AttemptedKeys は学習者が選択した選択肢キーの配列 (JSONBカラム)
type AttemptedKeys []string

func (k AttemptedKeys) Value() (driver.Value, error) {
	return json.Marshal(k)
}

func (k *AttemptedKeys) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, k)
	case string:
		return json.Unmarshal([]byte(v), k)
	default:
		return fmt.Errorf("unsupported type for AttemptedKeys: %T", value)
	}
}

// Attempt は解答1回の追記専用レコードです。
// エンジンからは作成のみで、更新・削除は行わない (一括リセットは管理機能側の責務)。
type Attempt struct {
	AttemptID     uuid.UUID     `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	LearnerID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"learner_id"`
	InstanceID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"instance_id"`
	CourseSlug    string        `gorm:"not null" json:"course_slug"`
	AttemptedKeys AttemptedKeys `gorm:"type:jsonb" json:"attempted_keys"`
	IsCorrect     bool          `gorm:"not null" json:"is_correct"`
	AttemptedAt   time.Time     `gorm:"not null" json:"attempted_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// SubmitAttemptRequest は解答送信APIのリクエストDTO
type SubmitAttemptRequest struct {
	AttemptedKeys []string `json:"attempted_keys" validate:"required,min=1"`
}

// SubmitAttemptResponse は解答送信APIのレスポンスDTO。
// 採点結果と更新後の習熟度に加えて、次の問題をその場で返す。
type SubmitAttemptResponse struct {
	IsCorrect    bool    `json:"is_correct"`
	TopicSlug    string  `json:"topic_slug"`
	MasteryLevel float64 `json:"mastery_level"`
	// Next は後続のレコメンドに失敗した場合 null になる
	// (採点と習熟度更新は成立済み)。クライアントは次問なしを扱えること。
	Next *RecommendResponse `json:"next"`
}
