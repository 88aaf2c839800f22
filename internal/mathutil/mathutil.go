// internal/mathutil/mathutil.go
// 10進数を意識した丸め処理と乱数ユーティリティ。
// 2進浮動小数点の表現誤差を補正するため、スケール後にイプシロン比で
// 補正してから整数演算を適用する (Round(2.005, 2) == 2.01 を保証する)。
package mathutil

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Rand は乱数源の抽象です。
// 本番ではプロセス共有の rand/v2 グローバル関数 (ロックで直列化されない) を使い、
// テストや再現が必要な箇所では固定シードの *rand.Rand を注入する。
// *rand.Rand はこのインターフェースをそのまま満たす。
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Global は rand/v2 のトップレベル関数を使う既定の乱数源です
var Global Rand = globalRand{}

const epsilon = 2.220446049250313e-16 // 2^-52

// Round は小数第d位で四捨五入します (0.5は0から遠ざける方向)
func Round(num float64, decimalPlaces int) float64 {
	p := math.Pow(10, float64(decimalPlaces))
	n := num * p * (1 + epsilon)
	return math.Round(n) / p
}

// Ceil は小数第d位で切り上げます
func Ceil(num float64, decimalPlaces int) float64 {
	p := math.Pow(10, float64(decimalPlaces))
	n := num * p * (1 - sign(num)*epsilon)
	return math.Ceil(n) / p
}

// Floor は小数第d位で切り捨てます
func Floor(num float64, decimalPlaces int) float64 {
	p := math.Pow(10, float64(decimalPlaces))
	n := num * p * (1 + sign(num)*epsilon)
	return math.Floor(n) / p
}

// Trunc は小数第d位でゼロ方向に切り詰めます (負数はCeil、それ以外はFloorに委譲)
func Trunc(num float64, decimalPlaces int) float64 {
	if num < 0 {
		return Ceil(num, decimalPlaces)
	}
	return Floor(num, decimalPlaces)
}

// ToFixed は固定小数点表記の文字列を返します
func ToFixed(num float64, decimalPlaces int) string {
	return strconv.FormatFloat(Round(num, decimalPlaces), 'f', decimalPlaces, 64)
}

// Random は [min, max] の一様乱数を小数第d位に丸めて返します。
// min == max == 0 のときは 0 を返す。
func Random(r Rand, min, max float64, decimalPlaces int) float64 {
	if min == 0 && max == 0 {
		return 0
	}
	return Round(r.Float64()*(max-min)+min, decimalPlaces)
}

// ShuffleArray は Fisher–Yates でインプレースにシャッフルし、同じスライスを返します。
// 一様な乱数源に対して n! 通りの並びが等確率になる。
func ShuffleArray[T any](r Rand, arr []T) []T {
	for i := len(arr) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
	return arr
}

// NRandomItems はコピーをシャッフルして先頭n件を返します (元のスライスは変更しない)
func NRandomItems[T any](r Rand, n int, arr []T) []T {
	if n > len(arr) {
		n = len(arr)
	}
	shuffled := make([]T, len(arr))
	copy(shuffled, arr)
	ShuffleArray(r, shuffled)
	return shuffled[:n]
}

// GenerateRange は -max から max まで step 刻みで進み、絶対値が [min, max] に
// 収まる値を昇順で返します (0は除外)。誤答選択肢の候補オフセット生成用。
func GenerateRange(min, max, step float64) []float64 {
	var result []float64
	for i := -max; i <= max; i += step {
		if i == 0 {
			continue
		}
		if math.Abs(i) >= min && math.Abs(i) <= max {
			result = append(result, i)
		}
	}
	return result
}

// DecimalPlaces は数値の小数部の桁数を返します
// (最終解答の変数が精度を明示していない場合のフォールバックに使う)
func DecimalPlaces(num float64) int {
	s := strconv.FormatFloat(num, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
