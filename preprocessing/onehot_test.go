package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	scierr "github.com/sciml-go/evalgo/pkg/errors"
)

func TestLabelBinarizer_FitTransform(t *testing.T) {
	lb := NewLabelBinarizer()
	indicator, err := lb.FitTransform([]string{"dog", "cat", "bird", "dog"})
	require.NoError(t, err)

	// クラスは昇順に整列される
	assert.Equal(t, []string{"bird", "cat", "dog"}, lb.Classes)
	assert.Equal(t, 3, lb.NumClasses())

	want := mat.NewDense(4, 3, []float64{
		0, 0, 1,
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	assert.True(t, mat.Equal(want, indicator), "indicator matrix mismatch")

	// 各行の合計はちょうど1
	n, k := indicator.Dims()
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < k; j++ {
			rowSum += indicator.At(i, j)
		}
		assert.Equal(t, 1.0, rowSum, "row %d", i)
	}
}

func TestLabelBinarizer_ExplicitClassOrder(t *testing.T) {
	lb, err := NewLabelBinarizerWithClasses([]string{"yes", "no"})
	require.NoError(t, err)

	vec, err := lb.ClassIndices([]string{"yes", "no", "yes"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, vec.AtVec(0))
	assert.Equal(t, 1.0, vec.AtVec(1))
	assert.Equal(t, 0.0, vec.AtVec(2))
}

func TestLabelBinarizer_NotFitted(t *testing.T) {
	lb := NewLabelBinarizer()

	_, err := lb.Transform([]string{"a"})
	require.Error(t, err)

	var notFitted *scierr.NotFittedError
	assert.True(t, scierr.As(err, &notFitted))
}

func TestLabelBinarizer_UnknownLabel(t *testing.T) {
	lb, err := NewLabelBinarizerWithClasses([]string{"a", "b"})
	require.NoError(t, err)

	_, err = lb.Transform([]string{"a", "c"})
	require.Error(t, err)
	assert.True(t, scierr.Is(err, scierr.ErrUnknownLabel))
}

func TestLabelBinarizer_SingleClass(t *testing.T) {
	lb := NewLabelBinarizer()
	err := lb.Fit([]string{"only", "only", "only"})
	require.Error(t, err)

	var valErr *scierr.ValueError
	assert.True(t, scierr.As(err, &valErr))
}

func TestLabelBinarizer_DuplicateExplicitClasses(t *testing.T) {
	_, err := NewLabelBinarizerWithClasses([]string{"a", "a"})
	require.Error(t, err)
}

func TestLabelBinarizer_EmptyInput(t *testing.T) {
	lb := NewLabelBinarizer()
	err := lb.Fit(nil)
	require.Error(t, err)
	assert.True(t, scierr.Is(err, scierr.ErrEmptyData))
}

func TestLabelBinarizer_InverseTransform(t *testing.T) {
	lb, err := NewLabelBinarizerWithClasses([]string{"a", "b", "c"})
	require.NoError(t, err)

	proba := mat.NewDense(2, 3, []float64{
		0.2, 0.7, 0.1,
		0.6, 0.3, 0.1,
	})
	labels, err := lb.InverseTransform(proba)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, labels)
}

func TestLabelBinarizer_InverseTransformShapeMismatch(t *testing.T) {
	lb, err := NewLabelBinarizerWithClasses([]string{"a", "b", "c"})
	require.NoError(t, err)

	_, err = lb.InverseTransform(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.Error(t, err)

	var dimErr *scierr.DimensionError
	assert.True(t, scierr.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Axis)
}
