// internal/evaluator/evaluator.go
// 出題テンプレートの変数とメソッド (導出式) を具体的な数値に評価します。
// 評価順は宣言順で、メソッドは先に宣言された変数・メソッドのみ参照できる
// (前方参照は仕様として非対応。依存グラフによる並べ替えは行わない)。
package evaluator

import (
	"fmt"
	"math"
	"strings"

	"go_5_adapt_quiz/internal/mathutil"
	"go_5_adapt_quiz/internal/model"
)

const defaultDecimalPlaces = 3

// Result は評価済みテンプレートの実現値です
type Result struct {
	Variables   map[string]float64 // 変数キー → 確定値
	Methods     map[string]float64 // メソッドキー → 確定値
	FinalAnswer float64            // 正答の正準値
	FinalVar    model.Variable     // IsFinalAnswer の変数定義 (単位・精度・誤答範囲の参照用)
}

// Evaluate は変数を乱数化または既定値で実現し、メソッドを宣言順に評価して、
// 最終解答値を返します。失敗はすべて作問不備 (model.ErrExpression) として扱い、
// リトライせず作問者へ表面化させること。
func Evaluate(variables []model.Variable, methods []model.Method, r mathutil.Rand) (*Result, error) {
	if len(variables) == 0 {
		return nil, model.NewAppError("INVALID_EXPRESSION", "動的テンプレートには変数が1つ以上必要です。", "variables", model.ErrExpression)
	}

	env := make(map[string]float64, len(variables)+len(methods))
	realized := make(map[string]float64, len(variables))
	varKeys := make(map[string]bool, len(variables))

	// 1. 変数を宣言順に実現する
	for _, v := range variables {
		key := strings.TrimSpace(v.Key)
		if key == "" {
			return nil, model.NewAppError("INVALID_EXPRESSION", "変数キーが空です。", "variables", model.ErrExpression)
		}
		varKeys[key] = true

		dp := defaultDecimalPlaces
		if v.DecimalPlaces != nil {
			dp = *v.DecimalPlaces
		}

		var val float64
		if v.Randomize {
			val = mathutil.Random(r, v.Min, v.Max, dp)
		} else {
			def := strings.TrimSpace(v.Default)
			if def == "" {
				// 既定値なしの変数はこの時点では未確定のまま残す。
				// 最終解答の変数は同キーのメソッドから値を受け取るのが通常の作問パターン。
				continue
			}
			// 既定値は数値リテラルまたは数式 (既出の変数参照可) を許容する
			parsed, err := evalExpr(def, env)
			if err != nil {
				return nil, model.NewAppError("INVALID_EXPRESSION",
					fmt.Sprintf("変数 %s の既定値を評価できません。", key), key, model.ErrExpression)
			}
			val = mathutil.Round(parsed, dp)
		}

		env[key] = val
		realized[key] = val
	}

	// 2. メソッドを宣言順に評価する
	evaluated := make(map[string]float64, len(methods))
	for i, m := range methods {
		key := strings.TrimSpace(m.Key)
		expr := strings.TrimSpace(m.Expr)
		if key == "" || expr == "" {
			return nil, model.NewAppError("INVALID_EXPRESSION",
				fmt.Sprintf("メソッド %d 番目のキーまたは式が空です。", i+1), key, model.ErrExpression)
		}

		val, err := evalExpr(expr, env)
		if err != nil {
			return nil, model.NewAppError("INVALID_EXPRESSION",
				fmt.Sprintf("メソッド %s の式を評価できません: %v", key, err), key, model.ErrExpression)
		}

		env[key] = val
		evaluated[key] = val
		// メソッドキーが変数キーと一致する場合は変数の確定値を代入・上書きする
		// (既定値なしの変数はここで初めて値を持つ)
		if varKeys[key] {
			realized[key] = val
		}
	}

	// 3. 最終解答の変数を特定する (動的テンプレートはちょうど1つ)
	var finalVar *model.Variable
	for i := range variables {
		if variables[i].IsFinalAnswer {
			if finalVar != nil {
				return nil, model.NewAppError("INVALID_EXPRESSION", "最終解答の変数が複数あります。", "variables", model.ErrExpression)
			}
			finalVar = &variables[i]
		}
	}
	if finalVar == nil {
		return nil, model.NewAppError("INVALID_EXPRESSION", "最終解答の変数が指定されていません。", "variables", model.ErrExpression)
	}

	dp := defaultDecimalPlaces
	if finalVar.DecimalPlaces != nil {
		dp = *finalVar.DecimalPlaces
	}
	value, ok := realized[strings.TrimSpace(finalVar.Key)]
	if !ok {
		return nil, model.NewAppError("INVALID_EXPRESSION",
			fmt.Sprintf("最終解答 %s に値を代入するメソッドがありません。", finalVar.Key),
			finalVar.Key, model.ErrExpression)
	}
	finalAnswer := mathutil.Round(value, dp)
	if math.IsNaN(finalAnswer) || math.IsInf(finalAnswer, 0) {
		return nil, model.NewAppError("INVALID_EXPRESSION",
			fmt.Sprintf("最終解答 %s が数値になりません。メソッドでの使われ方を確認してください。", finalVar.Key),
			finalVar.Key, model.ErrExpression)
	}

	return &Result{
		Variables:   realized,
		Methods:     evaluated,
		FinalAnswer: finalAnswer,
		FinalVar:    *finalVar,
	}, nil
}
