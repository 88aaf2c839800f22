// internal/model/instance.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RealizedVariable は生成時点で確定した変数値です (監査・復習表示用)
type RealizedVariable struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit,omitempty"`
	Value float64 `json:"value"`
}

// RealizedVariables / AnswerOptions は JSONB カラム用のラッパー
type RealizedVariables []RealizedVariable

func (v RealizedVariables) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *RealizedVariables) Scan(value interface{}) error {
	switch x := value.(type) {
	case []byte:
		return json.Unmarshal(x, v)
	case string:
		return json.Unmarshal([]byte(x), v)
	default:
		return fmt.Errorf("unsupported type for RealizedVariables: %T", value)
	}
}

type AnswerOptions []Answer

func (a AnswerOptions) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerOptions) Scan(value interface{}) error {
	switch x := value.(type) {
	case []byte:
		return json.Unmarshal(x, a)
	case string:
		return json.Unmarshal([]byte(x), a)
	default:
		return fmt.Errorf("unsupported type for AnswerOptions: %T", value)
	}
}

// QuestionInstance は1人の学習者に実際に提示する問題の実体です。
// レコメンド時に生成され、生成後は不変。次のレコメンドで置き換えられる (更新はしない)。
type QuestionInstance struct {
	InstanceID  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"instance_id"`
	LearnerID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"learner_id"`
	CourseSlug  string            `gorm:"not null" json:"course_slug"`
	TopicSlug   string            `gorm:"not null" json:"topic_slug"`
	QuestionID  int               `gorm:"not null" json:"question_id"`
	VariationID int               `gorm:"not null" json:"variation_id"`
	Variables   RealizedVariables `gorm:"type:jsonb" json:"variables"`
	Answers     AnswerOptions     `gorm:"type:jsonb" json:"answers"`
	AddedAt     time.Time         `gorm:"not null;index" json:"added_at"`

	// 関連 (Preload用)
	Question *Question `gorm:"foreignKey:QuestionID,VariationID;references:QuestionID,VariationID" json:"question,omitempty"`
}

func (QuestionInstance) TableName() string {
	return "question_instances"
}

// RecommendResponse は次問レコメンドAPIのレスポンスDTO
type RecommendResponse struct {
	Instance     *QuestionInstance `json:"instance"`
	TopicSlug    string            `json:"topic_slug"`
	Difficulty   QuestionDifficulty `json:"difficulty"`
	MasteryLevel float64           `json:"mastery_level"`
}
