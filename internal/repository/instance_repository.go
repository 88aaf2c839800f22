//go:generate mockery --name InstanceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstanceRepository は提示済み問題インスタンスを管理します。
// インスタンスは採点の根拠になるため、提示時の選択肢と正誤フラグを保存したまま変更しない。
type InstanceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, instance *model.QuestionInstance) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, instanceID uuid.UUID) (*model.QuestionInstance, error)
}

type gormInstanceRepository struct{}

func NewGormInstanceRepository() InstanceRepository {
	return &gormInstanceRepository{}
}

func (r *gormInstanceRepository) Create(ctx context.Context, tx *gorm.DB, instance *model.QuestionInstance) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(instance)
	if result.Error != nil {
		logger.Error("Error creating question instance in DB",
			"error", result.Error,
			"learner_id", instance.LearnerID.String(),
			"topic_slug", instance.TopicSlug,
		)
		return fmt.Errorf("gormInstanceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormInstanceRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, instanceID uuid.UUID) (*model.QuestionInstance, error) {
	logger := middleware.GetLogger(ctx)
	var instance model.QuestionInstance
	// learner_id も条件に含める (他学習者のインスタンスへの回答を拒否)
	result := db.WithContext(ctx).
		Where("learner_id = ? AND instance_id = ?", learnerID, instanceID).
		First(&instance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question instance by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"instance_id", instanceID.String(),
		)
		return nil, fmt.Errorf("gormInstanceRepository.FindByID: %w", result.Error)
	}
	return &instance, nil
}
