// internal/evaluator/evaluator_test.go
package evaluator

import (
	"math/rand/v2"
	"testing"

	"go_5_adapt_quiz/internal/mathutil"
	"go_5_adapt_quiz/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTestRand() mathutil.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestEvalExpr(t *testing.T) {
	env := map[string]float64{"R1": 10, "R2": 20, "I": 0.5}

	tests := []struct {
		name    string
		expr    string
		want    float64
		wantErr bool
	}{
		{"正常系: 加算", "R1 + R2", 30, false},
		{"正常系: 乗算と優先順位", "R1 + R2 * 2", 50, false},
		{"正常系: 括弧", "(R1 + R2) * 2", 60, false},
		{"正常系: 単項マイナス", "-R1 + R2", 10, false},
		{"正常系: べき乗は右結合", "2 ^ 3 ^ 2", 512, false},
		{"正常系: 除算", "R2 / R1", 2, false},
		{"正常系: 指数表記の数値", "1.5e2 + R1", 160, false},
		{"異常系: 未定義の識別子", "R1 + R3", 0, true},
		{"異常系: 閉じ括弧なし", "(R1 + R2", 0, true},
		{"異常系: 不正な文字", "R1 $ R2", 0, true},
		{"異常系: 関数呼び出しは文法外", "max(R1, R2)", 0, true},
		{"異常系: 空の式", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalExpr(tt.expr, env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("正常系: 直列抵抗テンプレートの評価", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "R1", Default: "10", DecimalPlaces: intPtr(0)},
			{Key: "R2", Default: "20", DecimalPlaces: intPtr(0)},
			{Key: "I", Default: "0.5", DecimalPlaces: intPtr(1)},
			{Key: "Vt", IsFinalAnswer: true, DecimalPlaces: intPtr(2)},
		}
		methods := []model.Method{
			{Key: "Rt", Expr: "R1 + R2"},
			{Key: "Vt", Expr: "I * Rt"},
		}

		res, err := Evaluate(variables, methods, newTestRand())
		require.NoError(t, err)

		assert.InDelta(t, 30.0, res.Methods["Rt"], 1e-9)
		assert.InDelta(t, 15.0, res.FinalAnswer, 1e-9)
		assert.Equal(t, "Vt", res.FinalVar.Key)
		// メソッドが同キーの変数値を上書きする
		assert.InDelta(t, 15.0, res.Variables["Vt"], 1e-9)
	})

	t.Run("正常系: 乱数化変数は値域に収まる", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "R", Randomize: true, Min: 5, Max: 20, DecimalPlaces: intPtr(0), IsFinalAnswer: true},
		}
		for i := 0; i < 200; i++ {
			res, err := Evaluate(variables, nil, newTestRand())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.FinalAnswer, 5.0)
			assert.LessOrEqual(t, res.FinalAnswer, 20.0)
		}
	})

	t.Run("正常系: 既定値なしの最終解答変数はメソッドから値を受け取る", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "R1", Default: "10", DecimalPlaces: intPtr(0)},
			{Key: "Vt", IsFinalAnswer: true, DecimalPlaces: intPtr(0)},
		}
		methods := []model.Method{
			{Key: "Vt", Expr: "R1 * 2"},
		}

		res, err := Evaluate(variables, methods, newTestRand())
		require.NoError(t, err)
		assert.InDelta(t, 20.0, res.FinalAnswer, 1e-9)
		assert.InDelta(t, 20.0, res.Variables["Vt"], 1e-9)
	})

	t.Run("異常系: 既定値なしの最終解答変数に代入するメソッドがない", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "R1", Default: "10", DecimalPlaces: intPtr(0)},
			{Key: "Vt", IsFinalAnswer: true, DecimalPlaces: intPtr(2)},
		}
		methods := []model.Method{
			{Key: "Rt", Expr: "R1 + 5"},
		}

		_, err := Evaluate(variables, methods, newTestRand())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})

	t.Run("正常系: 既定値に式を使える", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "a", Default: "2"},
			{Key: "b", Default: "a * 3", IsFinalAnswer: true, DecimalPlaces: intPtr(0)},
		}
		res, err := Evaluate(variables, nil, newTestRand())
		require.NoError(t, err)
		assert.InDelta(t, 6.0, res.FinalAnswer, 1e-9)
	})

	t.Run("異常系: 未定義キーを参照するメソッド", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "R1", Default: "10", IsFinalAnswer: true},
		}
		methods := []model.Method{
			{Key: "X", Expr: "R1 + R9"},
		}
		_, err := Evaluate(variables, methods, newTestRand())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})

	t.Run("異常系: 最終解答の変数がない", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "R1", Default: "10"},
		}
		_, err := Evaluate(variables, nil, newTestRand())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})

	t.Run("異常系: 最終解答の変数が複数", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "a", Default: "1", IsFinalAnswer: true},
			{Key: "b", Default: "2", IsFinalAnswer: true},
		}
		_, err := Evaluate(variables, nil, newTestRand())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})

	t.Run("異常系: 変数が空", func(t *testing.T) {
		_, err := Evaluate(nil, nil, newTestRand())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})

	t.Run("異常系: ゼロ除算で最終解答が非数", func(t *testing.T) {
		variables := []model.Variable{
			{Key: "a", Default: "0"},
			{Key: "v", Default: "0", IsFinalAnswer: true, DecimalPlaces: intPtr(2)},
		}
		methods := []model.Method{
			{Key: "v", Expr: "1 / a - 1 / a"},
		}
		_, err := Evaluate(variables, methods, newTestRand())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrExpression)
	})
}
