// repository_integration_test.go
//
// Docker上のPostgreSQLに対する結合テスト。
// INTEG_TEST=1 のときだけコンテナを起動して実行する (通常の go test ではスキップ)。
package repository

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var integDB *gorm.DB

const integContainerName = "test_postgres_quiz_repository"

func TestMain(m *testing.M) {
	if os.Getenv("INTEG_TEST") == "" {
		os.Exit(m.Run())
	}

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       integContainerName,
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=adapt_quiz",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	hostMappedPort := resource.GetPort("5432/tcp")
	gormDSN := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=adapt_quiz sslmode=disable TimeZone=Asia/Tokyo", hostMappedPort)

	if err = pool.Retry(func() error {
		var errRetry error
		integDB, errRetry = gorm.Open(postgres.Open(gormDSN), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := integDB.DB()
		if errRetry != nil {
			integDB = nil
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container after retries: %s", err)
	}
	testLogger.Info("Connected to test PostgreSQL container", slog.String("port", hostMappedPort))

	err = integDB.AutoMigrate(
		&model.Learner{},
		&model.Topic{},
		&model.Course{},
		&model.Question{},
		&model.QuestionInstance{},
		&model.Attempt{},
		&model.MasteryRecord{},
	)
	if err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func requireIntegDB(t *testing.T) *gorm.DB {
	t.Helper()
	if integDB == nil {
		t.Skip("INTEG_TEST が未設定のためスキップ")
	}
	return integDB
}

func TestGormMasteryRepository_Integration(t *testing.T) {
	db := requireIntegDB(t)
	ctx := context.Background()
	repo := NewGormMasteryRepository()
	learnerID := uuid.New()

	t.Run("正常系: Upsertの挿入と更新", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, db, learnerID, "ohms-law", 0.3))

		record, err := repo.Find(ctx, db, learnerID, "ohms-law")
		require.NoError(t, err)
		assert.InDelta(t, 0.3, record.MasteryLevel, 1e-9)

		// スナップショット列に値を入れてから現在値だけ更新する
		require.NoError(t, repo.RollSnapshot(ctx, db, learnerID, "ohms-law"))
		require.NoError(t, repo.Upsert(ctx, db, learnerID, "ohms-law", 0.8))

		record, err = repo.Find(ctx, db, learnerID, "ohms-law")
		require.NoError(t, err)
		assert.InDelta(t, 0.8, record.MasteryLevel, 1e-9)
		assert.InDelta(t, 0.3, record.WeeklyMasteryLevel, 1e-9, "Upsertはスナップショット列に触れない")
	})

	t.Run("正常系: RollSnapshotの列間コピー", func(t *testing.T) {
		id := uuid.New()
		require.NoError(t, repo.Upsert(ctx, db, id, "voltage-division", 0.6))
		require.NoError(t, repo.RollSnapshot(ctx, db, id, "voltage-division"))
		require.NoError(t, repo.Upsert(ctx, db, id, "voltage-division", 0.9))
		require.NoError(t, repo.RollSnapshot(ctx, db, id, "voltage-division"))

		record, err := repo.Find(ctx, db, id, "voltage-division")
		require.NoError(t, err)
		assert.InDelta(t, 0.9, record.MasteryLevel, 1e-9)
		assert.InDelta(t, 0.9, record.WeeklyMasteryLevel, 1e-9)
		assert.InDelta(t, 0.6, record.FortnightlyMasteryLevel, 1e-9)
	})

	t.Run("異常系: 存在しないレコードの繰越", func(t *testing.T) {
		err := repo.RollSnapshot(ctx, db, uuid.New(), "ohms-law")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 存在しないレコードの取得", func(t *testing.T) {
		_, err := repo.Find(ctx, db, uuid.New(), "ohms-law")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormQuestionRepository_Integration(t *testing.T) {
	db := requireIntegDB(t)
	ctx := context.Background()
	repo := NewGormQuestionRepository()

	questions := []*model.Question{
		{QuestionID: 101, VariationID: 0, TopicSlug: "integ-ohms-law", QuestionDifficulty: model.DifficultyEasy, QuestionContent: "V = ?"},
		{QuestionID: 102, VariationID: 1, TopicSlug: "integ-ohms-law", QuestionDifficulty: model.DifficultyEasy, QuestionContent: "I = ?"},
		{QuestionID: 103, VariationID: 0, TopicSlug: "integ-ohms-law", QuestionDifficulty: model.DifficultyHard, QuestionContent: "R_th = ?"},
	}
	require.NoError(t, db.Create(&questions).Error)

	t.Run("正常系: 難易度で絞った候補", func(t *testing.T) {
		pool, err := repo.FindPool(ctx, db, "integ-ohms-law", model.DifficultyEasy)
		require.NoError(t, err)
		assert.Len(t, pool, 2)
	})

	t.Run("正常系: 空の候補はエラーにならない", func(t *testing.T) {
		pool, err := repo.FindPool(ctx, db, "integ-ohms-law", model.DifficultyMedium)
		require.NoError(t, err)
		assert.Empty(t, pool)
	})

	t.Run("正常系: トピック配下の全件", func(t *testing.T) {
		all, err := repo.FindByTopic(ctx, db, "integ-ohms-law")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("正常系: 複合キーで1件取得", func(t *testing.T) {
		q, err := repo.FindByID(ctx, db, 102, 1)
		require.NoError(t, err)
		assert.Equal(t, "I = ?", q.QuestionContent)
		assert.False(t, q.IsDynamic())
	})

	t.Run("異常系: 存在しない複合キー", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, 101, 99)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormInstanceRepository_Integration(t *testing.T) {
	db := requireIntegDB(t)
	ctx := context.Background()
	repo := NewGormInstanceRepository()

	owner := uuid.New()
	other := uuid.New()
	instance := &model.QuestionInstance{
		InstanceID:  uuid.New(),
		LearnerID:   owner,
		CourseSlug:  "integ-circuits",
		TopicSlug:   "integ-ohms-law",
		QuestionID:  101,
		VariationID: 0,
		Variables: model.RealizedVariables{
			{Key: "R1", Name: "抵抗1", Unit: "Ω", Value: 20},
		},
		Answers: model.AnswerOptions{
			{Key: "opt-a", AnswerContent: "V = 5.00", IsCorrect: true, IsLatex: true},
			{Key: "opt-b", AnswerContent: "V = 4.50", IsCorrect: false, IsLatex: true},
		},
		AddedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, db, instance))

	t.Run("正常系: 所有者はJSONB込みで取得できる", func(t *testing.T) {
		got, err := repo.FindByID(ctx, db, owner, instance.InstanceID)
		require.NoError(t, err)
		require.Len(t, got.Answers, 2)
		assert.True(t, got.Answers[0].IsCorrect)
		require.Len(t, got.Variables, 1)
		assert.InDelta(t, 20, got.Variables[0].Value, 1e-9)
	})

	t.Run("異常系: 他の学習者からは見えない", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, other, instance.InstanceID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormAttemptRepository_Integration(t *testing.T) {
	db := requireIntegDB(t)
	ctx := context.Background()
	repo := NewGormAttemptRepository()
	learnerID := uuid.New()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		attempt := &model.Attempt{
			AttemptID:     uuid.New(),
			LearnerID:     learnerID,
			InstanceID:    uuid.New(),
			CourseSlug:    "integ-circuits",
			AttemptedKeys: model.AttemptedKeys{"opt-a"},
			IsCorrect:     i%2 == 0,
			AttemptedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, db, attempt))
	}

	t.Run("正常系: 新しい順にlimit件", func(t *testing.T) {
		attempts, err := repo.FindByLearner(ctx, db, learnerID, 2)
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.True(t, attempts[0].AttemptedAt.After(attempts[1].AttemptedAt))
	})

	t.Run("正常系: limit 0 は全件", func(t *testing.T) {
		attempts, err := repo.FindByLearner(ctx, db, learnerID, 0)
		require.NoError(t, err)
		assert.Len(t, attempts, 3)
	})
}

func TestGormCourseRepository_Integration(t *testing.T) {
	db := requireIntegDB(t)
	ctx := context.Background()
	repo := NewGormCourseRepository()

	topics := []model.Topic{
		{TopicSlug: "integ-topic-a", TopicName: "トピックA", TopicLevel: model.TopicFoundational},
		{TopicSlug: "integ-topic-b", TopicName: "トピックB", TopicLevel: model.TopicIntermediate},
	}
	require.NoError(t, db.Create(&topics).Error)
	course := model.Course{
		CourseSlug: "integ-course",
		CourseName: "結合テストコース",
		Topics:     topics,
	}
	require.NoError(t, db.Create(&course).Error)

	t.Run("正常系: トピック込みで取得", func(t *testing.T) {
		got, err := repo.FindBySlug(ctx, db, "integ-course")
		require.NoError(t, err)
		assert.Len(t, got.Topics, 2)
	})

	t.Run("異常系: 存在しないコース", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, db, "integ-missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: トピック単体の取得", func(t *testing.T) {
		topic, err := repo.FindTopic(ctx, db, "integ-topic-b")
		require.NoError(t, err)
		assert.Equal(t, model.TopicIntermediate, topic.TopicLevel)
	})
}

func TestGormLearnerRepository_Integration(t *testing.T) {
	db := requireIntegDB(t)
	ctx := context.Background()
	repo := NewGormLearnerRepository()

	learner := &model.Learner{
		LearnerID: uuid.New(),
		Name:      "結合テスト学習者",
		Email:     fmt.Sprintf("integ-%s@example.com", uuid.NewString()[:8]),
		IsActive:  true,
	}
	require.NoError(t, repo.Create(ctx, db, learner))

	t.Run("正常系: IDとメールで取得できる", func(t *testing.T) {
		byID, err := repo.FindByID(ctx, db, learner.LearnerID)
		require.NoError(t, err)
		assert.Equal(t, learner.Email, byID.Email)

		byEmail, err := repo.FindByEmail(ctx, db, learner.Email)
		require.NoError(t, err)
		assert.Equal(t, learner.LearnerID, byEmail.LearnerID)
	})

	t.Run("異常系: メール重複は競合エラー", func(t *testing.T) {
		dup := &model.Learner{
			LearnerID: uuid.New(),
			Name:      "重複",
			Email:     learner.Email,
		}
		err := repo.Create(ctx, db, dup)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 存在しない学習者", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrLearnerNotFound)
	})
}
