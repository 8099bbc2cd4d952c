package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sciml-go/evalgo/pkg/errors"
)

// EstimatorKind は分類問題の推定モードを表す
type EstimatorKind int

const (
	// KindUnknown は未解決の状態
	KindUnknown EstimatorKind = iota
	// KindBinary は2クラス分類
	KindBinary
	// KindMulticlass は3クラス以上の分類
	KindMulticlass
)

// String はEstimatorKindの文字列表現を返す
func (k EstimatorKind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindMulticlass:
		return "multiclass"
	default:
		return "unknown"
	}
}

// DefaultStabilityFloor は対数を取る前に真クラス確率に適用される下限値。
// 倍精度浮動小数点のマシンイプシロン（2^-52）に一致し、log(0) = -Inf を防ぐ。
const DefaultStabilityFloor = 0x1p-52

// ResolveEstimator はクラス数Kから推定モードを決定する
//
// 契約:
//   - K == 2 ⇒ KindBinary
//   - K > 2  ⇒ KindMulticlass
//   - K < 2  ⇒ ValueError（計算が定義できない）
func ResolveEstimator(numClasses int) (EstimatorKind, error) {
	if numClasses < 2 {
		return KindUnknown, errors.NewValueError("ResolveEstimator", "at least two classes required")
	}
	if numClasses == 2 {
		return KindBinary, nil
	}
	return KindMulticlass, nil
}

// logLossConfig はLogLossの動作を制御する設定
type logLossConfig struct {
	sum        bool
	floor      float64
	numClasses int // 0の場合は確率行列の列数から推論する
}

// LogLossOption はLogLossの関数オプション
type LogLossOption func(*logLossConfig)

// WithSum は平均ではなく合計損失を返すようにする
func WithSum() LogLossOption {
	return func(c *logLossConfig) {
		c.sum = true
	}
}

// WithStabilityFloor はデフォルトのマシンイプシロンに代わる下限値を設定する
func WithStabilityFloor(floor float64) LogLossOption {
	return func(c *logLossConfig) {
		c.floor = floor
	}
}

// WithNumClasses はクラス数Kを明示的に固定する。
// 確率行列から推論できない呼び出し（異種グループをまたぐ集約など）で使う。
func WithNumClasses(k int) LogLossOption {
	return func(c *logLossConfig) {
		c.numClasses = k
	}
}

// LogLoss は対数損失（クロスエントロピー損失）を計算する
//
// yTrueは各観測の真クラスのインデックス（0..K-1）、probaはN×Kの
// 予測確率行列。デフォルトでは観測数Nで割った平均損失を返す。
//
// 計算手順:
//  1. 真値ベクトルからN×Kのone-hot指示行列を構築する
//  2. 指示行列と確率行列の要素ごとの積を取る（マスキング）
//  3. 各行で唯一残る真クラス確率に下限値を適用してから対数を取る
//  4. 符号を反転して合計し、平均モードならNで割る
//
// 真クラス確率が下限値以下の観測はクランプされ、エラーではなく
// DegenerateProbabilityWarningが発生する。
func LogLoss(yTrue *mat.VecDense, proba mat.Matrix, opts ...LogLossOption) (loss float64, err error) {
	defer errors.Recover(&err, "LogLoss")

	cfg := logLossConfig{floor: DefaultStabilityFloor}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 入力検証
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError("LogLoss", "empty vector")
	}
	if proba == nil {
		return 0, errors.NewValueError("LogLoss", "nil probability matrix")
	}
	if cfg.floor <= 0 || cfg.floor >= 1 {
		return 0, errors.NewValueError("LogLoss", "stability floor must be in (0, 1)")
	}

	n := yTrue.Len()
	rows, cols := proba.Dims()

	k := cfg.numClasses
	if k == 0 {
		k = cols
	}

	// クラス数の解決（K < 2 はここで失敗し、行列構築は行われない）
	if _, err := ResolveEstimator(k); err != nil {
		return 0, err
	}

	if rows != n {
		return 0, errors.NewDimensionError("LogLoss", n, rows, 0)
	}
	if cols != k {
		return 0, errors.NewDimensionError("LogLoss", k, cols, 1)
	}
	if err := errors.CheckMatrix("LogLoss", proba, rows, cols); err != nil {
		return 0, err
	}

	indicator, classIdx, err := indicatorMatrix(yTrue, k)
	if err != nil {
		return 0, err
	}

	// masked = indicator ⊙ proba
	// 各行で真クラスに対応する列だけが非ゼロとして残る
	masked := mat.NewDense(n, k, nil)
	masked.MulElem(indicator, proba)

	var total float64
	var clampedRows []int
	clamped := 0
	for i := 0; i < n; i++ {
		p := masked.At(i, classIdx[i])
		if p <= cfg.floor {
			// 真クラスに割り当てられた確率がゼロ近傍でもクラッシュせず、
			// 大きいが有限のペナルティとして扱う
			p = cfg.floor
			clamped++
			if len(clampedRows) < 10 {
				clampedRows = append(clampedRows, i)
			}
		}
		total += math.Log(p)
	}

	if clamped > 0 {
		errors.Warn(errors.NewDegenerateProbabilityWarning("LogLoss", clampedRows, clamped, cfg.floor))
	}

	loss = -total
	if !cfg.sum {
		loss /= float64(n)
	}

	if err := errors.CheckScalar("LogLoss", loss); err != nil {
		return 0, err
	}
	return loss, nil
}

// BinaryLogLossProba は2クラス分類の省略形に対する薄いアダプタ。
// pFirstは最初のレベル（インデックス0）に割り当てられた確率のベクトルで、
// [p, 1-p] の2列行列に展開してからLogLossに委譲する。
// これによりK=2は多クラスの射影として扱われ、損失計算本体に分岐は残らない。
func BinaryLogLossProba(yTrue, pFirst *mat.VecDense, opts ...LogLossOption) (float64, error) {
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError("BinaryLogLossProba", "empty vector")
	}
	if pFirst == nil || pFirst.Len() != yTrue.Len() {
		got := 0
		if pFirst != nil {
			got = pFirst.Len()
		}
		return 0, errors.NewDimensionError("BinaryLogLossProba", yTrue.Len(), got, 0)
	}

	n := pFirst.Len()
	expanded := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		p := pFirst.AtVec(i)
		expanded.Set(i, 0, p)
		expanded.Set(i, 1, 1-p)
	}

	opts = append(opts, WithNumClasses(2))
	return LogLoss(yTrue, expanded, opts...)
}

// indicatorMatrix は真値ベクトルをレベル集合{0..k-1}に対するN×Kの
// one-hot指示行列に変換する。ラベルが整数でない、または範囲外の場合は
// ValueErrorを返す。戻り値のclassIdxは各行の真クラス列番号。
func indicatorMatrix(yTrue *mat.VecDense, k int) (*mat.Dense, []int, error) {
	n := yTrue.Len()
	indicator := mat.NewDense(n, k, nil)
	classIdx := make([]int, n)

	for i := 0; i < n; i++ {
		v := yTrue.AtVec(i)
		j := int(v)
		if float64(j) != v || j < 0 || j >= k {
			return nil, nil, errors.NewValueError("LogLoss", "labels must be integer class indices in [0, numClasses)")
		}
		indicator.Set(i, j, 1)
		classIdx[i] = j
	}

	// 各行の合計が厳密に1であることを確認する。
	// 不正なレベル集合がこの不変条件を壊した場合、暗黙の誤計算ではなく
	// 即座に失敗させる。
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < k; j++ {
			rowSum += indicator.At(i, j)
		}
		if rowSum != 1 {
			return nil, nil, errors.NewValueError("LogLoss", "indicator matrix row does not sum to one")
		}
	}

	return indicator, classIdx, nil
}
