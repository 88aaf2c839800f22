// internal/model/question.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// QuestionDifficulty は問題単位の難易度です
type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "Easy"
	DifficultyMedium QuestionDifficulty = "Medium"
	DifficultyHard   QuestionDifficulty = "Hard"
)

// Variable は出題テンプレートの変数定義です。
// Randomize が true の場合は Min/Max/DecimalPlaces で乱数生成し、
// false の場合は Default を数値としてパースする。
// IsFinalAnswer が true の変数 (動的テンプレートでちょうど1つ) が正答値になる。
type Variable struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit,omitempty"`
	Default       string  `json:"default,omitempty"`
	Randomize     bool    `json:"randomize"`
	Min           float64 `json:"min,omitempty"`
	Max           float64 `json:"max,omitempty"`
	Step          float64 `json:"step,omitempty"`
	DecimalPlaces *int    `json:"decimalPlaces,omitempty"`
	IsFinalAnswer bool    `json:"isFinalAnswer"`
}

// Method は変数や先行メソッドを参照する導出式です。
// 式は "Key = expr" 形式で、宣言順がそのまま評価順 (前方参照は非対応)。
type Method struct {
	Key         string `json:"key"`
	Expr        string `json:"expr"`
	Explanation string `json:"explanation,omitempty"`
}

// Answer は提示する選択肢1件です
type Answer struct {
	Key           string `json:"key"`
	AnswerContent string `json:"answerContent"`
	IsCorrect     bool   `json:"isCorrect"`
	IsLatex       bool   `json:"isLatex"`
}

// QuestionData はテンプレート本体 (JSONBカラムに格納)
// 静的テンプレートは Answers を持ち、動的テンプレートは Variables/Methods を持つ。
type QuestionData struct {
	Variables []Variable `json:"variables,omitempty"`
	Methods   []Method   `json:"methods,omitempty"`
	Hints     []string   `json:"hints,omitempty"`
	Answers   []Answer   `json:"answers,omitempty"`
}

// Value / Scan で gorm の JSONB カラムに対応させる
func (d QuestionData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *QuestionData) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type for QuestionData: %T", value)
	}
}

// Question は出題テンプレートを表します。
// (QuestionID, VariationID) の組で一意。VariationID == 0 が動的テンプレート、
// それ以外は静的テンプレート (選択肢は作問時に一度だけシャッフル済み)。
type Question struct {
	QuestionID         int                `gorm:"primaryKey;autoIncrement:false" json:"question_id"`
	VariationID        int                `gorm:"primaryKey;autoIncrement:false" json:"variation_id"`
	TopicSlug          string             `gorm:"not null;index" json:"topic_slug"`
	QuestionDifficulty QuestionDifficulty `gorm:"not null;index" json:"question_difficulty"`
	QuestionContent    string             `gorm:"not null" json:"question_content"`
	QuestionData       QuestionData       `gorm:"type:jsonb" json:"question_data"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	// 関連 (Preload用)
	Topic *Topic `gorm:"foreignKey:TopicSlug;references:TopicSlug" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// IsDynamic は実行時評価が必要なテンプレートかどうかを返します
func (q *Question) IsDynamic() bool {
	return q.VariationID == 0
}
