// internal/generator/generator.go
// テンプレートから提示可能な問題インスタンスを生成します。
// 動的テンプレートは評価した最終解答値の周辺に誤答選択肢を合成し、
// 静的テンプレートは作問時にシャッフル済みの選択肢をそのまま使う
// (静的問題の提示順は学習者間で安定させる)。
package generator

import (
	"fmt"
	"strings"

	"go_5_adapt_quiz/internal/evaluator"
	"go_5_adapt_quiz/internal/mathutil"
	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
)

// 最終解答変数の min/max/step は正答値に対するオフセットをパーセントで表す。
// 未指定 (ゼロ値) の場合のフォールバック。
const (
	defaultOffsetMin  = -90
	defaultOffsetMax  = 90
	defaultOffsetStep = 20
)

type Generator struct {
	r           mathutil.Rand
	optionCount int // 提示する選択肢数 (正答1 + 誤答 optionCount-1)
}

func New(r mathutil.Rand, optionCount int) *Generator {
	if r == nil {
		r = mathutil.Global
	}
	if optionCount < 2 {
		optionCount = 4
	}
	return &Generator{r: r, optionCount: optionCount}
}

// Instantiate はテンプレートを1件の提示用インスタンスの素材
// (確定済み変数値と選択肢リスト) に変換します。
// 評価エラー (model.ErrExpression) と選択肢不足 (model.ErrGeneration) は
// 作問不備としてそのまま呼び出し元へ返す。
func (g *Generator) Instantiate(q *model.Question) (model.RealizedVariables, model.AnswerOptions, error) {
	if !q.IsDynamic() {
		return g.instantiateStatic(q)
	}
	return g.instantiateDynamic(q)
}

func (g *Generator) instantiateStatic(q *model.Question) (model.RealizedVariables, model.AnswerOptions, error) {
	answers := q.QuestionData.Answers
	if len(answers) == 0 {
		return nil, nil, model.NewAppError("NO_ANSWERS",
			fmt.Sprintf("静的テンプレート %d-%d に選択肢が登録されていません。", q.QuestionID, q.VariationID),
			"answers", model.ErrGeneration)
	}
	// 静的テンプレートは再シャッフルしない (作問時の並びを維持)
	options := make(model.AnswerOptions, len(answers))
	copy(options, answers)
	return nil, options, nil
}

func (g *Generator) instantiateDynamic(q *model.Question) (model.RealizedVariables, model.AnswerOptions, error) {
	res, err := evaluator.Evaluate(q.QuestionData.Variables, q.QuestionData.Methods, g.r)
	if err != nil {
		return nil, nil, err
	}

	finalVar := res.FinalVar
	dp := mathutil.DecimalPlaces(res.FinalAnswer)
	if finalVar.DecimalPlaces != nil {
		dp = *finalVar.DecimalPlaces
	}

	// 正答値からのオフセット候補を生成する (パーセント指定を比率に変換)
	offMin, offMax, offStep := finalVar.Min, finalVar.Max, finalVar.Step
	if offMin == 0 && offMax == 0 {
		offMin, offMax = defaultOffsetMin, defaultOffsetMax
	}
	if offStep == 0 {
		offStep = defaultOffsetStep
	}

	var offsets []float64
	for _, off := range mathutil.GenerateRange(offMin/100, offMax/100, offStep/100) {
		rounded := mathutil.Round(off, dp)
		if rounded == 0 {
			continue // 丸めた結果ゼロのオフセットは正答と一致するため誤答にならない
		}
		offsets = append(offsets, rounded)
	}

	needed := g.optionCount - 1
	if len(offsets) < needed {
		return nil, nil, model.NewAppError("NOT_ENOUGH_DISTRACTORS",
			fmt.Sprintf("変数 %s の誤答選択肢が %d 件しか生成できません。小数桁数・刻み幅・範囲を見直してください。", finalVar.Key, len(offsets)),
			finalVar.Key, model.ErrGeneration)
	}

	// 正答と誤答を同じ丸め・同じ書式で描画する (書式で正答が判別できてはいけない)
	options := make(model.AnswerOptions, 0, g.optionCount)
	options = append(options, model.Answer{
		Key:           uuid.NewString(),
		AnswerContent: renderOption(finalVar, res.FinalAnswer, dp),
		IsCorrect:     true,
		IsLatex:       true,
	})
	for _, off := range mathutil.NRandomItems(g.r, needed, offsets) {
		distractor := mathutil.Round(res.FinalAnswer*(1+off), dp)
		options = append(options, model.Answer{
			Key:           uuid.NewString(),
			AnswerContent: renderOption(finalVar, distractor, dp),
			IsCorrect:     false,
			IsLatex:       true,
		})
	}
	mathutil.ShuffleArray(g.r, options)

	// 確定値は監査と復習表示のために保存する (最終解答の変数は露出しない)
	realized := make(model.RealizedVariables, 0, len(q.QuestionData.Variables))
	for _, v := range q.QuestionData.Variables {
		if v.IsFinalAnswer {
			continue
		}
		realized = append(realized, model.RealizedVariable{
			Key:   v.Key,
			Name:  v.Name,
			Unit:  v.Unit,
			Value: res.Variables[strings.TrimSpace(v.Key)],
		})
	}

	return realized, options, nil
}

func renderOption(v model.Variable, value float64, dp int) string {
	name := v.Name
	if name == "" {
		name = v.Key
	}
	if v.Unit != "" {
		return fmt.Sprintf("%s~(%s) = %s", name, v.Unit, mathutil.ToFixed(value, dp))
	}
	return fmt.Sprintf("%s = %s", name, mathutil.ToFixed(value, dp))
}
