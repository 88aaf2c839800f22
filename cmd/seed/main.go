// cmd/seed/main.go
// スキーマのマイグレーションとサンプルコンテンツの投入を行うツールです。
// ローカル開発と結合テスト環境の立ち上げ用 (本番データ投入には使わない)。
package main

import (
	"log/slog"
	"os"

	"go_5_adapt_quiz/internal/config"
	"go_5_adapt_quiz/internal/model"
	"go_5_adapt_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := migrate(db); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration completed")

	if err := seed(db); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Seeding completed")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Topic{},
		&model.Course{},
		&model.Question{},
		&model.QuestionInstance{},
		&model.MasteryRecord{},
		&model.Attempt{},
		&model.Learner{},
	)
}

func intPtr(v int) *int { return &v }

func seed(db *gorm.DB) error {
	topics := []model.Topic{
		{TopicSlug: "ohms-law", TopicName: "Ohm's Law", TopicLevel: model.TopicFoundational},
		{TopicSlug: "voltage-division", TopicName: "Voltage Division Principle", TopicLevel: model.TopicFoundational},
		{TopicSlug: "thevenin-equivalent-circuit", TopicName: "Thevenin Equivalent Circuit", TopicLevel: model.TopicIntermediate},
	}
	if err := db.Save(&topics).Error; err != nil {
		return err
	}

	course := model.Course{
		CourseSlug: "fundamentals-of-electrical-circuits",
		CourseName: "Fundamentals of Electrical Circuits",
		Topics:     topics,
	}
	if err := db.Save(&course).Error; err != nil {
		return err
	}

	questions := []model.Question{
		{
			QuestionID:         1,
			VariationID:        0,
			TopicSlug:          "ohms-law",
			QuestionDifficulty: model.DifficultyEasy,
			QuestionContent:    "抵抗 $R_1$ と $R_2$ を直列に接続し電流 $I$ を流したとき、合成抵抗の端子電圧 $V_t$ を求めよ。",
			QuestionData: model.QuestionData{
				Variables: []model.Variable{
					{Key: "R1", Name: "R_1", Unit: "\\Omega", Randomize: true, Min: 5, Max: 20, DecimalPlaces: intPtr(0)},
					{Key: "R2", Name: "R_2", Unit: "\\Omega", Randomize: true, Min: 5, Max: 20, DecimalPlaces: intPtr(0)},
					{Key: "I", Name: "I", Unit: "A", Randomize: true, Min: 0.1, Max: 2, DecimalPlaces: intPtr(1)},
					{Key: "Vt", Name: "V_t", Unit: "V", IsFinalAnswer: true, DecimalPlaces: intPtr(2), Step: 20},
				},
				Methods: []model.Method{
					{Key: "Rt", Expr: "R1 + R2", Explanation: "直列抵抗の合成"},
					{Key: "Vt", Expr: "I * Rt", Explanation: "オームの法則"},
				},
				Hints: []string{"直列接続の合成抵抗は単純な和になる。"},
			},
		},
		{
			QuestionID:         2,
			VariationID:        1,
			TopicSlug:          "ohms-law",
			QuestionDifficulty: model.DifficultyEasy,
			QuestionContent:    "10V の電源に 5Ω の抵抗を接続したとき、流れる電流はいくらか。",
			QuestionData: model.QuestionData{
				Answers: []model.Answer{
					{Key: uuid.NewString(), AnswerContent: "I = 2.00 A", IsCorrect: true, IsLatex: true},
					{Key: uuid.NewString(), AnswerContent: "I = 0.50 A", IsCorrect: false, IsLatex: true},
					{Key: uuid.NewString(), AnswerContent: "I = 50.00 A", IsCorrect: false, IsLatex: true},
					{Key: uuid.NewString(), AnswerContent: "I = 5.00 A", IsCorrect: false, IsLatex: true},
				},
				Hints: []string{"I = V / R"},
			},
		},
	}
	if err := db.Save(&questions).Error; err != nil {
		return err
	}

	learner := model.Learner{
		LearnerID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:      "Dev Learner",
		Email:     "dev@example.com",
		IsActive:  true,
	}
	return db.Save(&learner).Error
}
