// internal/generator/generator_test.go
package generator

import (
	"math/rand/v2"
	"strings"
	"testing"

	"go_5_adapt_quiz/internal/mathutil"
	"go_5_adapt_quiz/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTestRand(seed uint64) mathutil.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// 直列抵抗の動的テンプレート。変数を固定値にして正答 Vt = 5.00 V を確定させる。
func dynamicQuestion() *model.Question {
	return &model.Question{
		QuestionID:         1,
		VariationID:        0,
		TopicSlug:          "ohms-law",
		QuestionDifficulty: model.DifficultyEasy,
		QuestionContent:    "直列抵抗の端子電圧を求めよ。",
		QuestionData: model.QuestionData{
			Variables: []model.Variable{
				{Key: "R1", Name: "R_1", Unit: "\\Omega", Default: "4", DecimalPlaces: intPtr(0)},
				{Key: "R2", Name: "R_2", Unit: "\\Omega", Default: "6", DecimalPlaces: intPtr(0)},
				{Key: "I", Name: "I", Unit: "A", Default: "0.5", DecimalPlaces: intPtr(1)},
				{Key: "Vt", Name: "V_t", Unit: "V", IsFinalAnswer: true, DecimalPlaces: intPtr(2)},
			},
			Methods: []model.Method{
				{Key: "Rt", Expr: "R1 + R2"},
				{Key: "Vt", Expr: "I * Rt"},
			},
		},
	}
}

func staticQuestion() *model.Question {
	return &model.Question{
		QuestionID:         2,
		VariationID:        1,
		TopicSlug:          "ohms-law",
		QuestionDifficulty: model.DifficultyEasy,
		QuestionData: model.QuestionData{
			Answers: []model.Answer{
				{Key: "a", AnswerContent: "I = 2.00 A", IsCorrect: true},
				{Key: "b", AnswerContent: "I = 0.50 A", IsCorrect: false},
				{Key: "c", AnswerContent: "I = 5.00 A", IsCorrect: false},
			},
		},
	}
}

func TestInstantiate_Dynamic(t *testing.T) {
	t.Run("正常系: 正答1つと誤答3つが生成される", func(t *testing.T) {
		g := New(newTestRand(1), 4)
		variables, options, err := g.Instantiate(dynamicQuestion())
		require.NoError(t, err)

		require.Len(t, options, 4)
		correctCount := 0
		for _, opt := range options {
			if opt.IsCorrect {
				correctCount++
				assert.Equal(t, "V_t~(V) = 5.00", opt.AnswerContent)
			}
		}
		assert.Equal(t, 1, correctCount)

		// 最終解答の変数は確定値に含まれない
		keys := make([]string, 0, len(variables))
		for _, v := range variables {
			keys = append(keys, v.Key)
		}
		assert.ElementsMatch(t, []string{"R1", "R2", "I"}, keys)
	})

	t.Run("正常系: 誤答も正答と同じ書式で描画される", func(t *testing.T) {
		g := New(newTestRand(2), 4)
		_, options, err := g.Instantiate(dynamicQuestion())
		require.NoError(t, err)

		for _, opt := range options {
			assert.True(t, strings.HasPrefix(opt.AnswerContent, "V_t~(V) = "), "unexpected format: %s", opt.AnswerContent)
			// 小数2桁で固定
			value := strings.TrimPrefix(opt.AnswerContent, "V_t~(V) = ")
			parts := strings.Split(value, ".")
			require.Len(t, parts, 2)
			assert.Len(t, parts[1], 2)
		}
	})

	t.Run("正常系: 正答の位置はシャッフルで変わる", func(t *testing.T) {
		positions := make(map[int]bool)
		for seed := uint64(1); seed <= 40; seed++ {
			g := New(newTestRand(seed), 4)
			_, options, err := g.Instantiate(dynamicQuestion())
			require.NoError(t, err)
			for i, opt := range options {
				if opt.IsCorrect {
					positions[i] = true
				}
			}
		}
		assert.Greater(t, len(positions), 1, "correct option should not be pinned to one position")
	})

	t.Run("正常系: 誤答は重複しない", func(t *testing.T) {
		g := New(newTestRand(3), 4)
		_, options, err := g.Instantiate(dynamicQuestion())
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, opt := range options {
			assert.False(t, seen[opt.AnswerContent], "duplicate option %s", opt.AnswerContent)
			seen[opt.AnswerContent] = true
		}
	})

	t.Run("異常系: 誤答候補が足りない", func(t *testing.T) {
		q := dynamicQuestion()
		// 刻み幅を広げて候補を2件に絞る
		q.QuestionData.Variables[3].Min = -90
		q.QuestionData.Variables[3].Max = 90
		q.QuestionData.Variables[3].Step = 90

		g := New(newTestRand(4), 4)
		_, _, err := g.Instantiate(q)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrGeneration)
	})

	t.Run("異常系: 式が評価できないテンプレート", func(t *testing.T) {
		q := dynamicQuestion()
		q.QuestionData.Methods[0].Expr = "R1 + R9"

		g := New(newTestRand(5), 4)
		_, _, err := g.Instantiate(q)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})
}

func TestInstantiate_Static(t *testing.T) {
	t.Run("正常系: 登録済み選択肢を並び替えずに返す", func(t *testing.T) {
		g := New(newTestRand(1), 4)
		variables, options, err := g.Instantiate(staticQuestion())
		require.NoError(t, err)

		assert.Nil(t, variables)
		require.Len(t, options, 3)
		assert.Equal(t, "a", options[0].Key)
		assert.Equal(t, "b", options[1].Key)
		assert.Equal(t, "c", options[2].Key)
	})

	t.Run("異常系: 選択肢が未登録", func(t *testing.T) {
		q := staticQuestion()
		q.QuestionData.Answers = nil

		g := New(newTestRand(1), 4)
		_, _, err := g.Instantiate(q)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrGeneration)
	})
}
