package preprocessing

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sciml-go/evalgo/core/model"
	"github.com/sciml-go/evalgo/pkg/errors"
)

// LabelBinarizer はscikit-learn互換のラベル二値化エンコーダ
// カテゴリカルなラベルを固定されたレベル集合に対するone-hot指示行列に変換する
type LabelBinarizer struct {
	model.BaseEstimator

	// Classes は学習済みのレベル集合（昇順、またはコンストラクタで指定した順序）
	Classes []string

	// index はラベルから列番号への逆引き
	index map[string]int
}

// NewLabelBinarizer は新しいLabelBinarizerを作成する
//
// 使用例:
//
//	lb := preprocessing.NewLabelBinarizer()
//	err := lb.Fit([]string{"cat", "dog", "bird"})
//	indicator, err := lb.Transform([]string{"dog", "cat"})
func NewLabelBinarizer() *LabelBinarizer {
	return &LabelBinarizer{}
}

// NewLabelBinarizerWithClasses は明示的なレベル順序でLabelBinarizerを作成する。
// 確率行列の列順がレベル集合と一対一で対応する必要がある場合に使う。
func NewLabelBinarizerWithClasses(classes []string) (*LabelBinarizer, error) {
	lb := &LabelBinarizer{}
	if err := lb.setClasses(classes); err != nil {
		return nil, err
	}
	lb.SetFitted()
	return lb, nil
}

func (lb *LabelBinarizer) setClasses(classes []string) error {
	if len(classes) < 2 {
		return errors.NewValueError("LabelBinarizer", "at least two classes required")
	}
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, ok := index[c]; ok {
			return errors.NewValueError("LabelBinarizer", "duplicate class label: "+c)
		}
		index[c] = i
	}
	lb.Classes = append([]string(nil), classes...)
	lb.index = index
	return nil
}

// Fit はラベルから一意なレベル集合を学習する（昇順に整列される）
func (lb *LabelBinarizer) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewModelError("LabelBinarizer.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	if err := lb.setClasses(classes); err != nil {
		return err
	}
	lb.SetFitted()
	return nil
}

// Transform はラベル列をN×Kのone-hot指示行列に変換する
// 学習済みのレベル集合に含まれないラベルはエラーになる
func (lb *LabelBinarizer) Transform(labels []string) (*mat.Dense, error) {
	if !lb.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "Transform")
	}
	if len(labels) == 0 {
		return nil, errors.NewModelError("LabelBinarizer.Transform", "empty data", errors.ErrEmptyData)
	}

	n, k := len(labels), len(lb.Classes)
	indicator := mat.NewDense(n, k, nil)
	for i, l := range labels {
		j, ok := lb.index[l]
		if !ok {
			return nil, errors.NewModelError("LabelBinarizer.Transform", l, errors.ErrUnknownLabel)
		}
		indicator.Set(i, j, 1)
	}
	return indicator, nil
}

// FitTransform はFitとTransformを連続して実行する
func (lb *LabelBinarizer) FitTransform(labels []string) (*mat.Dense, error) {
	if err := lb.Fit(labels); err != nil {
		return nil, err
	}
	return lb.Transform(labels)
}

// ClassIndices はラベル列をクラスインデックス（0..K-1）のベクトルに変換する
// metrics.LogLossの真値ベクトルとしてそのまま使える
func (lb *LabelBinarizer) ClassIndices(labels []string) (*mat.VecDense, error) {
	if !lb.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "ClassIndices")
	}
	if len(labels) == 0 {
		return nil, errors.NewModelError("LabelBinarizer.ClassIndices", "empty data", errors.ErrEmptyData)
	}

	vec := mat.NewVecDense(len(labels), nil)
	for i, l := range labels {
		j, ok := lb.index[l]
		if !ok {
			return nil, errors.NewModelError("LabelBinarizer.ClassIndices", l, errors.ErrUnknownLabel)
		}
		vec.SetVec(i, float64(j))
	}
	return vec, nil
}

// InverseTransform は指示行列（または確率行列）を行ごとのargmaxでラベル列に戻す
func (lb *LabelBinarizer) InverseTransform(indicator mat.Matrix) ([]string, error) {
	if !lb.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "InverseTransform")
	}

	n, k := indicator.Dims()
	if k != len(lb.Classes) {
		return nil, errors.NewDimensionError("LabelBinarizer.InverseTransform", len(lb.Classes), k, 1)
	}

	labels := make([]string, n)
	for i := 0; i < n; i++ {
		best, bestVal := 0, indicator.At(i, 0)
		for j := 1; j < k; j++ {
			if v := indicator.At(i, j); v > bestVal {
				best, bestVal = j, v
			}
		}
		labels[i] = lb.Classes[best]
	}
	return labels, nil
}

// NumClasses は学習済みのレベル数Kを返す
func (lb *LabelBinarizer) NumClasses() int {
	return len(lb.Classes)
}
