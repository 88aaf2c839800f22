//go:generate mockery --name MasteryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MasteryRepository は学習者×トピックの習熟度レコードを管理します。
type MasteryRepository interface {
	Find(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, topicSlug string) (*model.MasteryRecord, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.MasteryRecord, error)
	// Upsert は現在値のみ更新します (スナップショット列には触れない)
	Upsert(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, topicSlug string, level float64) error
	// FindAll は全レコードを主キー順で返します (スナップショット繰越用)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.MasteryRecord, error)
	// RollSnapshot は1レコード分の繰越 (隔週←週次、週次←現在値) を行います
	RollSnapshot(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, topicSlug string) error
}

type gormMasteryRepository struct{}

func NewGormMasteryRepository() MasteryRepository {
	return &gormMasteryRepository{}
}

func (r *gormMasteryRepository) Find(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, topicSlug string) (*model.MasteryRecord, error) {
	logger := middleware.GetLogger(ctx)
	var record model.MasteryRecord
	result := db.WithContext(ctx).
		Where("learner_id = ? AND topic_slug = ?", learnerID, topicSlug).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding mastery record in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"topic_slug", topicSlug,
		)
		return nil, fmt.Errorf("gormMasteryRepository.Find: %w", result.Error)
	}
	return &record, nil
}

func (r *gormMasteryRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.MasteryRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.MasteryRecord
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("topic_slug ASC").
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding mastery records by learner in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormMasteryRepository.FindByLearner: %w", result.Error)
	}
	return records, nil
}

func (r *gormMasteryRepository) Upsert(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, topicSlug string, level float64) error {
	logger := middleware.GetLogger(ctx)
	record := model.MasteryRecord{
		LearnerID:    learnerID,
		TopicSlug:    topicSlug,
		MasteryLevel: level,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_id"}, {Name: "topic_slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"mastery_level", "updated_at"}),
	}).Create(&record)
	if result.Error != nil {
		logger.Error("Error upserting mastery record in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"topic_slug", topicSlug,
		)
		return fmt.Errorf("gormMasteryRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormMasteryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.MasteryRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.MasteryRecord
	result := db.WithContext(ctx).
		Order("learner_id ASC, topic_slug ASC").
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding all mastery records in DB", "error", result.Error)
		return nil, fmt.Errorf("gormMasteryRepository.FindAll: %w", result.Error)
	}
	return records, nil
}

func (r *gormMasteryRepository) RollSnapshot(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, topicSlug string) error {
	logger := middleware.GetLogger(ctx)
	// 繰越は列間コピーで行う (読み出してから書き戻すと並行更新を失う)
	result := tx.WithContext(ctx).Model(&model.MasteryRecord{}).
		Where("learner_id = ? AND topic_slug = ?", learnerID, topicSlug).
		Updates(map[string]interface{}{
			"fortnightly_mastery_level": gorm.Expr("weekly_mastery_level"),
			"weekly_mastery_level":      gorm.Expr("mastery_level"),
		})
	if result.Error != nil {
		logger.Error("Error rolling mastery snapshot in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"topic_slug", topicSlug,
		)
		return fmt.Errorf("gormMasteryRepository.RollSnapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
