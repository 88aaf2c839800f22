package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go_5_adapt_quiz/internal/generator"
	"go_5_adapt_quiz/internal/mathutil"
	"go_5_adapt_quiz/internal/middleware"
	"go_5_adapt_quiz/internal/model"
	"go_5_adapt_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 習熟度バンドの境界値。ベイズ推定値がこの範囲のどこに落ちるかで
// 難易度の抽選テーブルが切り替わる。
const (
	masteryLowBand  = 0.4
	masteryHighBand = 0.7
)

// QuizService は出題レコメンドと解答受付の本体です。
type QuizService interface {
	// RecommendNext はコース内のトピックを1つ選び、習熟度に応じた難易度の
	// 問題インスタンスを生成して返します
	RecommendNext(ctx context.Context, learnerID uuid.UUID, courseSlug string) (*model.RecommendResponse, error)
	// SubmitAttempt は解答を採点し、習熟度を更新した上で次の問題を返します
	SubmitAttempt(ctx context.Context, learnerID, instanceID uuid.UUID, attemptedKeys []string) (*model.SubmitAttemptResponse, error)
}

type quizService struct {
	db           *gorm.DB
	courseRepo   repository.CourseRepository
	questionRepo repository.QuestionRepository
	instanceRepo repository.InstanceRepository
	attemptRepo  repository.AttemptRepository
	masteryRepo  repository.MasteryRepository
	mastery      MasteryService
	gen          *generator.Generator
	r            mathutil.Rand
}

func NewQuizService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	questionRepo repository.QuestionRepository,
	instanceRepo repository.InstanceRepository,
	attemptRepo repository.AttemptRepository,
	masteryRepo repository.MasteryRepository,
	mastery MasteryService,
	gen *generator.Generator,
	r mathutil.Rand,
) QuizService {
	if r == nil {
		r = mathutil.Global
	}
	return &quizService{
		db:           db,
		courseRepo:   courseRepo,
		questionRepo: questionRepo,
		instanceRepo: instanceRepo,
		attemptRepo:  attemptRepo,
		masteryRepo:  masteryRepo,
		mastery:      mastery,
		gen:          gen,
		r:            r,
	}
}

func (s *quizService) RecommendNext(ctx context.Context, learnerID uuid.UUID, courseSlug string) (*model.RecommendResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "course_slug", courseSlug)

	course, err := s.courseRepo.FindBySlug(ctx, s.db, courseSlug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたコースが見つかりません。", "course_slug", model.ErrNotFound)
		}
		logger.Error("Failed to find course", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの取得に失敗しました。", "", err)
	}
	if len(course.Topics) == 0 {
		return nil, model.NewAppError("NOT_FOUND", "コースにトピックが登録されていません。", "course_slug", model.ErrNotFound)
	}

	// トピックは一様乱択。弱点優先などの重み付けは習熟度バンド側で吸収している
	topic := mathutil.NRandomItems(s.r, 1, course.Topics)[0]

	masteryLevel := 0.0
	record, err := s.masteryRepo.Find(ctx, s.db, learnerID, topic.TopicSlug)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to read mastery for recommendation", "error", err, "topic_slug", topic.TopicSlug)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の取得に失敗しました。", "", err)
	}
	if record != nil {
		masteryLevel = record.MasteryLevel
	}

	difficulty := s.pickDifficulty(masteryLevel)

	question, err := s.pickQuestion(ctx, topic.TopicSlug, difficulty)
	if err != nil {
		return nil, err
	}

	variables, answers, err := s.gen.Instantiate(question)
	if err != nil {
		logger.Error("Failed to instantiate question",
			"error", err,
			"question_id", question.QuestionID,
			"variation_id", question.VariationID,
		)
		return nil, err
	}

	instance := &model.QuestionInstance{
		InstanceID:  uuid.New(),
		LearnerID:   learnerID,
		CourseSlug:  courseSlug,
		TopicSlug:   topic.TopicSlug,
		QuestionID:  question.QuestionID,
		VariationID: question.VariationID,
		Variables:   variables,
		Answers:     answers,
		AddedAt:     time.Now(),
	}
	if err := s.instanceRepo.Create(ctx, s.db, instance); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題インスタンスの保存に失敗しました。", "", err)
	}
	instance.Question = question

	logger.Info("Question recommended",
		"topic_slug", topic.TopicSlug,
		"difficulty", question.QuestionDifficulty,
		"question_id", question.QuestionID,
		"mastery_level", masteryLevel,
	)

	return &model.RecommendResponse{
		Instance:     instance,
		TopicSlug:    topic.TopicSlug,
		Difficulty:   question.QuestionDifficulty,
		MasteryLevel: masteryLevel,
	}, nil
}

// pickDifficulty は習熟度バンドごとの抽選テーブルで難易度を決めます。
// 境界は上側に含める (m == 0.4 は低バンド、m == 0.7 は中バンド)。
func (s *quizService) pickDifficulty(m float64) model.QuestionDifficulty {
	switch {
	case m == 0:
		// 初見トピックは必ずEasyから入る
		return model.DifficultyEasy
	case m <= masteryLowBand:
		if s.r.Float64() < 0.75 {
			return model.DifficultyEasy
		}
		return model.DifficultyMedium
	case m <= masteryHighBand:
		if s.r.Float64() < 0.25 {
			return model.DifficultyEasy
		}
		if s.r.Float64() < 0.5 {
			return model.DifficultyMedium
		}
		return model.DifficultyHard
	default:
		if s.r.Float64() < 0.75 {
			return model.DifficultyHard
		}
		return model.DifficultyMedium
	}
}

// pickQuestion は (トピック, 難易度) の出題プールから1問選びます。
// プールが空ならトピック全体にフォールバックし、それでも空なら ErrNoQuestions。
func (s *quizService) pickQuestion(ctx context.Context, topicSlug string, difficulty model.QuestionDifficulty) (*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("topic_slug", topicSlug)

	pool, err := s.questionRepo.FindPool(ctx, s.db, topicSlug, difficulty)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "出題候補の取得に失敗しました。", "", err)
	}
	if len(pool) == 0 {
		logger.Warn("No questions for recommended difficulty, falling back to topic-wide pool",
			"difficulty", difficulty,
		)
		pool, err = s.questionRepo.FindByTopic(ctx, s.db, topicSlug)
		if err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "出題候補の取得に失敗しました。", "", err)
		}
	}
	if len(pool) == 0 {
		return nil, model.NewAppError("NO_QUESTIONS",
			fmt.Sprintf("トピック %s に出題可能な問題がありません。", topicSlug),
			"topic_slug", model.ErrNoQuestions)
	}

	return mathutil.NRandomItems(s.r, 1, pool)[0], nil
}

func (s *quizService) SubmitAttempt(ctx context.Context, learnerID, instanceID uuid.UUID, attemptedKeys []string) (*model.SubmitAttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "instance_id", instanceID)

	instance, err := s.instanceRepo.FindByID(ctx, s.db, learnerID, instanceID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "解答対象の問題が見つかりません。", "instance_id", model.ErrNotFound)
		}
		logger.Error("Failed to find question instance", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題インスタンスの取得に失敗しました。", "", err)
	}

	isCorrect, err := gradeAttempt(instance.Answers, attemptedKeys)
	if err != nil {
		return nil, err
	}

	// 習熟度の更新が失敗したら解答全体を失敗にする (採点済み扱いにしない)
	masteryLevel, err := s.mastery.RecordAttempt(ctx, learnerID, instance.TopicSlug, isCorrect)
	if err != nil {
		return nil, err
	}

	// 履歴の追記失敗は習熟度更新を巻き戻さない (履歴は監査用の副次データ)
	attempt := &model.Attempt{
		AttemptID:     uuid.New(),
		LearnerID:     learnerID,
		InstanceID:    instanceID,
		CourseSlug:    instance.CourseSlug,
		AttemptedKeys: attemptedKeys,
		IsCorrect:     isCorrect,
		AttemptedAt:   time.Now(),
	}
	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		logger.Warn("Failed to append attempt history", "error", err)
	}

	next, err := s.RecommendNext(ctx, learnerID, instance.CourseSlug)
	if err != nil {
		// 採点と習熟度更新は成立している。次問が出せないだけなら next なしで返す
		logger.Warn("Failed to recommend follow-up question", "error", err)
		next = nil
	}

	logger.Info("Attempt submitted",
		"topic_slug", instance.TopicSlug,
		"is_correct", isCorrect,
		"mastery_level", masteryLevel,
	)

	return &model.SubmitAttemptResponse{
		IsCorrect:    isCorrect,
		TopicSlug:    instance.TopicSlug,
		MasteryLevel: masteryLevel,
		Next:         next,
	}, nil
}

// gradeAttempt は選択キー集合と正解キー集合の一致で採点します。
// 複数正解の問題は全正解キーの選択が必要 (部分点はない)。
func gradeAttempt(options model.AnswerOptions, attemptedKeys []string) (bool, error) {
	known := make(map[string]bool, len(options))
	var correctKeys []string
	for _, opt := range options {
		known[opt.Key] = true
		if opt.IsCorrect {
			correctKeys = append(correctKeys, opt.Key)
		}
	}

	for _, key := range attemptedKeys {
		if !known[key] {
			return false, model.NewAppError("INVALID_ANSWER_KEY",
				fmt.Sprintf("選択肢キー %s はこの問題に存在しません。", key),
				"attempted_keys", model.ErrInvalidInput)
		}
	}

	if len(attemptedKeys) != len(correctKeys) {
		return false, nil
	}
	chosen := append([]string(nil), attemptedKeys...)
	sort.Strings(chosen)
	sort.Strings(correctKeys)
	for i := range chosen {
		if chosen[i] != correctKeys[i] {
			return false, nil
		}
	}
	return true, nil
}
