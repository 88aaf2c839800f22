//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"

	"gorm.io/gorm"
)

// CourseRepository はコースとトピックの参照窓口です。
type CourseRepository interface {
	// FindBySlug はコースを所属トピック込みで返します
	FindBySlug(ctx context.Context, db *gorm.DB, courseSlug string) (*model.Course, error)
	FindTopic(ctx context.Context, db *gorm.DB, topicSlug string) (*model.Topic, error)
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) FindBySlug(ctx context.Context, db *gorm.DB, courseSlug string) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	result := db.WithContext(ctx).
		Preload("Topics").
		Where("course_slug = ?", courseSlug).
		First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by slug in DB",
			"error", result.Error,
			"course_slug", courseSlug,
		)
		return nil, fmt.Errorf("gormCourseRepository.FindBySlug: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindTopic(ctx context.Context, db *gorm.DB, topicSlug string) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topic model.Topic
	result := db.WithContext(ctx).
		Where("topic_slug = ?", topicSlug).
		First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding topic by slug in DB",
			"error", result.Error,
			"topic_slug", topicSlug,
		)
		return nil, fmt.Errorf("gormCourseRepository.FindTopic: %w", result.Error)
	}
	return &topic, nil
}
