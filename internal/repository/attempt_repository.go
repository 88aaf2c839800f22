//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository は回答履歴 (追記専用) を管理します。
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.Attempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		logger.Error("Error creating attempt in DB",
			"error", result.Error,
			"learner_id", attempt.LearnerID.String(),
			"instance_id", attempt.InstanceID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.Attempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempts []*model.Attempt
	query := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("attempted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding attempts by learner in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindByLearner: %w", result.Error)
	}
	return attempts, nil
}
