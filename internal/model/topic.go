// internal/model/topic.go
package model

import (
	"time"
)

// TopicLevel はコンテンツ分類用の難易度ラベル (問題自体の難易度とは別物)
type TopicLevel string

const (
	TopicFoundational TopicLevel = "Foundational"
	TopicIntermediate TopicLevel = "Intermediate"
	TopicAdvanced     TopicLevel = "Advanced"
)

// Topic はコース内の学習トピックを表します。
// 作問者が管理する参照データで、エンジンからは読み取り専用。
type Topic struct {
	TopicSlug  string     `gorm:"primaryKey" json:"topic_slug"`
	TopicName  string     `gorm:"not null" json:"topic_name"`
	TopicLevel TopicLevel `gorm:"not null;default:'Foundational'" json:"topic_level"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// Course は出題対象トピックの集合です
type Course struct {
	CourseSlug string    `gorm:"primaryKey" json:"course_slug"`
	CourseName string    `gorm:"not null" json:"course_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Topics []Topic `gorm:"many2many:course_topics;foreignKey:CourseSlug;joinForeignKey:course_slug;References:TopicSlug;joinReferences:topic_slug" json:"topics,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
