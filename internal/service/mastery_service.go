package service

import (
	"context"
	"errors"

	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"
	"go_5_adapt_quiz/internal/oracle"
	"go_5_adapt_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasteryService は習熟度の記録と参照を担当します。
// 推定そのものは外部オラクルに委譲し、ここでは観測結果の送信と
// 返ってきた習熟度の永続化だけを行う。
type MasteryService interface {
	// RecordAttempt は1試行の正誤をオラクルに反映し、更新後の習熟度を返します
	RecordAttempt(ctx context.Context, learnerID uuid.UUID, topicSlug string, correct bool) (float64, error)
	GetMastery(ctx context.Context, learnerID uuid.UUID, topicSlug string) (*model.MasteryResponse, error)
	ListMastery(ctx context.Context, learnerID uuid.UUID) ([]*model.MasteryResponse, error)
	// RollSnapshots は全レコードの週次・隔週スナップショットを繰り越します
	RollSnapshots(ctx context.Context) (*model.RollSnapshotsResult, error)
}

type masteryService struct {
	db          *gorm.DB
	masteryRepo repository.MasteryRepository
	courseRepo  repository.CourseRepository
	oracle      oracle.Client
}

func NewMasteryService(db *gorm.DB, masteryRepo repository.MasteryRepository, courseRepo repository.CourseRepository, oracleClient oracle.Client) MasteryService {
	return &masteryService{
		db:          db,
		masteryRepo: masteryRepo,
		courseRepo:  courseRepo,
		oracle:      oracleClient,
	}
}

func (s *masteryService) RecordAttempt(ctx context.Context, learnerID uuid.UUID, topicSlug string, correct bool) (float64, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "topic_slug", topicSlug)

	// オラクル更新が失敗したらローカルにも書かない (推定値と記録値を乖離させない)
	if err := s.oracle.Update(ctx, learnerID, topicSlug, correct); err != nil {
		logger.Error("Failed to update mastery oracle", "error", err, "is_correct", correct)
		return 0, err
	}

	level, err := s.oracle.Get(ctx, learnerID, topicSlug)
	if err != nil {
		logger.Error("Failed to fetch updated mastery from oracle", "error", err)
		return 0, err
	}

	if err := s.masteryRepo.Upsert(ctx, s.db, learnerID, topicSlug, level); err != nil {
		logger.Error("Failed to persist mastery record", "error", err, "level", level)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の保存に失敗しました。", "", err)
	}

	logger.Info("Mastery recorded", "is_correct", correct, "level", level)
	return level, nil
}

func (s *masteryService) GetMastery(ctx context.Context, learnerID uuid.UUID, topicSlug string) (*model.MasteryResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "topic_slug", topicSlug)

	if _, err := s.courseRepo.FindTopic(ctx, s.db, topicSlug); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_slug", model.ErrNotFound)
		}
		logger.Error("Failed to find topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トピックの確認中にエラーが発生しました。", "", err)
	}

	record, err := s.masteryRepo.Find(ctx, s.db, learnerID, topicSlug)
	if err != nil {
		// 未受験トピックはゼロ習熟として扱う (エラーではない)
		if errors.Is(err, model.ErrNotFound) {
			return &model.MasteryResponse{TopicSlug: topicSlug}, nil
		}
		logger.Error("Failed to find mastery record", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の取得に失敗しました。", "", err)
	}

	return &model.MasteryResponse{
		TopicSlug:               record.TopicSlug,
		MasteryLevel:            record.MasteryLevel,
		WeeklyMasteryLevel:      record.WeeklyMasteryLevel,
		FortnightlyMasteryLevel: record.FortnightlyMasteryLevel,
	}, nil
}

func (s *masteryService) ListMastery(ctx context.Context, learnerID uuid.UUID) ([]*model.MasteryResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	records, err := s.masteryRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list mastery records", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度一覧の取得に失敗しました。", "", err)
	}

	responses := make([]*model.MasteryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, &model.MasteryResponse{
			TopicSlug:               record.TopicSlug,
			MasteryLevel:            record.MasteryLevel,
			WeeklyMasteryLevel:      record.WeeklyMasteryLevel,
			FortnightlyMasteryLevel: record.FortnightlyMasteryLevel,
		})
	}
	return responses, nil
}

func (s *masteryService) RollSnapshots(ctx context.Context) (*model.RollSnapshotsResult, error) {
	logger := middleware.GetLogger(ctx)

	records, err := s.masteryRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list mastery records for snapshot roll", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スナップショット対象の取得に失敗しました。", "", err)
	}

	result := &model.RollSnapshotsResult{}
	// 1レコードずつ独立に繰り越す。途中の失敗はスキップしてバッチを続行する
	// (全件を1トランザクションにすると1件の不整合で全学習者の繰越が止まる)
	for _, record := range records {
		if err := s.masteryRepo.RollSnapshot(ctx, s.db, record.LearnerID, record.TopicSlug); err != nil {
			logger.Warn("Failed to roll mastery snapshot, skipping record",
				"error", err,
				"learner_id", record.LearnerID.String(),
				"topic_slug", record.TopicSlug,
			)
			result.Failed++
			continue
		}
		result.Rolled++
	}

	logger.Info("Mastery snapshots rolled", "rolled", result.Rolled, "failed", result.Failed)
	return result, nil
}
