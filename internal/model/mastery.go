// internal/model/mastery.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MasteryRecord は (学習者, トピック) ごとの習熟度推定値を保持します。
// MasteryLevel は外部オラクルが算出した [0,1] の確率で、エンジン側では再計算しない。
// Weekly / Fortnightly は傾向表示用のスナップショットで、定期ロールオーバーで
// weekly → fortnightly → 破棄 の順に送られる (試行の頻度とは独立)。
type MasteryRecord struct {
	LearnerID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"learner_id"`
	TopicSlug               string    `gorm:"primaryKey" json:"topic_slug"`
	MasteryLevel            float64   `gorm:"not null;default:0" json:"mastery_level"`
	WeeklyMasteryLevel      float64   `gorm:"not null;default:0" json:"weekly_mastery_level"`
	FortnightlyMasteryLevel float64   `gorm:"not null;default:0" json:"fortnightly_mastery_level"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (MasteryRecord) TableName() string {
	return "mastery_records"
}

// MasteryResponse は習熟度参照APIのレスポンスDTO
type MasteryResponse struct {
	TopicSlug               string  `json:"topic_slug"`
	MasteryLevel            float64 `json:"mastery_level"`
	WeeklyMasteryLevel      float64 `json:"weekly_mastery_level"`
	FortnightlyMasteryLevel float64 `json:"fortnightly_mastery_level"`
}

// RollSnapshotsResult はスナップショットロールオーバーの実行結果です。
// レコード単位で独立に処理するため、一部失敗してもバッチは継続する。
type RollSnapshotsResult struct {
	Rolled int `json:"rolled"`
	Failed int `json:"failed"`
}
