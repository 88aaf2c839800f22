//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository は出題テンプレートの読み取り窓口です。
// テンプレートの作成・編集は出題管理ツール側の責務なので、ここは参照のみ。
type QuestionRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, questionID, variationID int) (*model.Question, error)
	// FindPool はトピックと難易度で絞った出題候補を返します (空スライスはエラーではない)
	FindPool(ctx context.Context, db *gorm.DB, topicSlug string, difficulty model.QuestionDifficulty) ([]*model.Question, error)
	// FindByTopic は難易度を問わずトピック配下の全テンプレートを返します
	FindByTopic(ctx context.Context, db *gorm.DB, topicSlug string) ([]*model.Question, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID, variationID int) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).
		Where("question_id = ? AND variation_id = ?", questionID, variationID).
		First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB",
			"error", result.Error,
			"question_id", questionID,
			"variation_id", variationID,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindPool(ctx context.Context, db *gorm.DB, topicSlug string, difficulty model.QuestionDifficulty) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).
		Where("topic_slug = ? AND question_difficulty = ?", topicSlug, difficulty).
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding question pool in DB",
			"error", result.Error,
			"topic_slug", topicSlug,
			"difficulty", difficulty,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindPool: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicSlug string) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).
		Where("topic_slug = ?", topicSlug).
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by topic in DB",
			"error", result.Error,
			"topic_slug", topicSlug,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByTopic: %w", result.Error)
	}
	return questions, nil
}
