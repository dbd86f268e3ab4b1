package effectiveinfo

import (
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func tpm(t *testing.T, n int, data []float64) *TPM {
	t.Helper()
	m, err := NewTPM(mat64.NewDense(n, n, data))
	require.NoError(t, err)
	return m
}

func TestNewTPM(t *testing.T) {
	t.Run("NotSquare", func(t *testing.T) {
		_, err := NewTPM(mat64.NewDense(1, 2, []float64{0.5, 0.5}))
		assert.ErrorIs(t, err, ErrInvalidTPM)
	})

	t.Run("ZeroRow", func(t *testing.T) {
		_, err := NewTPM(mat64.NewDense(2, 2, []float64{0, 1, 0, 0}))
		assert.ErrorIs(t, err, ErrInvalidTPM)
	})

	t.Run("NotNormalized", func(t *testing.T) {
		_, err := NewTPM(mat64.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.25}))
		assert.ErrorIs(t, err, ErrInvalidTPM)
		_, err = NewTPM(mat64.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.75}))
		assert.ErrorIs(t, err, ErrInvalidTPM)
	})

	t.Run("EntryOutOfRange", func(t *testing.T) {
		_, err := NewTPM(mat64.NewDense(2, 2, []float64{1.5, -0.5, 0.5, 0.5}))
		assert.ErrorIs(t, err, ErrInvalidTPM)
	})

	t.Run("Valid", func(t *testing.T) {
		m := tpm(t, 2, []float64{0.2, 0.8, 0.75, 0.25})
		assert.Equal(t, 2, m.Size())
		assert.Equal(t, 0.8, m.At(0, 1))
	})
}

func TestInfer(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		_, err := Infer([]int{0}, 0)
		assert.ErrorIs(t, err, ErrInvalidSeries)
	})

	t.Run("NegativeState", func(t *testing.T) {
		_, err := Infer([]int{0, -1, 0}, 0)
		assert.ErrorIs(t, err, ErrInvalidSeries)
	})

	t.Run("InvalidBase", func(t *testing.T) {
		_, err := Infer([]int{0, 1, 0}, -2)
		assert.ErrorIs(t, err, ErrInvalidSeries)
	})

	t.Run("StateExceedsBase", func(t *testing.T) {
		_, err := Infer([]int{0, 3, 0}, 2)
		assert.ErrorIs(t, err, ErrInvalidSeries)
	})

	t.Run("UnvisitedSource", func(t *testing.T) {
		// State 1 exists in the inferred base but never transitions out.
		_, err := Infer([]int{0, 0, 1}, 0)
		assert.ErrorIs(t, err, ErrInvalidSeries)
	})

	t.Run("Binary", func(t *testing.T) {
		m, err := Infer([]int{0, 0, 1, 1, 0, 1, 0}, 0)
		require.NoError(t, err)
		require.Equal(t, 2, m.Size())
		assert.InDelta(t, 1.0/3, m.At(0, 0), tol)
		assert.InDelta(t, 2.0/3, m.At(0, 1), tol)
		assert.InDelta(t, 2.0/3, m.At(1, 0), tol)
		assert.InDelta(t, 1.0/3, m.At(1, 1), tol)
	})
}

func TestEffectiveInfoIntervention(t *testing.T) {
	m := tpm(t, 2, []float64{0.5, 0.5, 0.25, 0.75})

	t.Run("WrongSize", func(t *testing.T) {
		_, err := EffectiveInfo(m, []float64{1})
		assert.ErrorIs(t, err, ErrInvalidIntervention)
		_, err = EffectiveInfo(m, []float64{0, 0.5, 0.5})
		assert.ErrorIs(t, err, ErrInvalidIntervention)
	})

	t.Run("Zero", func(t *testing.T) {
		_, err := EffectiveInfo(m, []float64{0, 0})
		assert.ErrorIs(t, err, ErrInvalidIntervention)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := EffectiveInfo(m, []float64{0.8, -0.2})
		assert.ErrorIs(t, err, ErrInvalidIntervention)
	})

	t.Run("NotNormalized", func(t *testing.T) {
		_, err := EffectiveInfo(m, []float64{0.5, 0.25})
		assert.ErrorIs(t, err, ErrInvalidIntervention)
		_, err = EffectiveInfo(m, []float64{0.5, 0.75})
		assert.ErrorIs(t, err, ErrInvalidIntervention)
	})
}

func TestEffectiveInfoUniformIntervention(t *testing.T) {
	m := tpm(t, 2, []float64{0.2, 0.8, 0.75, 0.25})
	ei, err := EffectiveInfo(m, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.231593, ei, tol)

	m = tpm(t, 3, []float64{
		1.0 / 3, 1.0 / 3, 1.0 / 3,
		0.250, 0.750, 0.000,
		0.125, 0.500, 0.375,
	})
	ei, err = EffectiveInfo(m, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.202701, ei, tol)
}

func TestEffectiveInfoNonUniformIntervention(t *testing.T) {
	m := tpm(t, 2, []float64{0.2, 0.8, 0.75, 0.25})
	ei, err := EffectiveInfo(m, []float64{0.25, 0.75})
	require.NoError(t, err)
	assert.InDelta(t, 0.174227, ei, tol)

	m = tpm(t, 3, []float64{
		1.0 / 3, 1.0 / 3, 1.0 / 3,
		0.250, 0.750, 0.000,
		0.125, 0.500, 0.375,
	})
	ei, err = EffectiveInfo(m, []float64{0.3, 0.25, 0.45})
	require.NoError(t, err)
	assert.InDelta(t, 0.172498, ei, tol)
}

// Reference values from E. Hoel, "When the map is better than the
// territory", arXiv:1612.09592.
func TestEffectiveInfoHoel(t *testing.T) {
	cases := []struct {
		name string
		n    int
		data []float64
		want float64
	}{
		{
			name: "Permutation",
			n:    4,
			data: []float64{
				0, 0, 1, 0,
				1, 0, 0, 0,
				0, 0, 0, 1,
				0, 1, 0, 0,
			},
			want: 2.0,
		},
		{
			name: "TwoBlocks",
			n:    4,
			data: []float64{
				1.0 / 3, 1.0 / 3, 1.0 / 3, 0.000,
				1.0 / 3, 1.0 / 3, 1.0 / 3, 0.000,
				0.000, 0.000, 0.000, 1.000,
				0.000, 0.000, 0.000, 1.000,
			},
			want: 1.0,
		},
		{
			name: "MaximallyMixed",
			n:    4,
			data: []float64{
				0.25, 0.25, 0.25, 0.25,
				0.25, 0.25, 0.25, 0.25,
				0.25, 0.25, 0.25, 0.25,
				0.25, 0.25, 0.25, 0.25,
			},
			want: 0.0,
		},
		{
			name: "SevenAndOne",
			n:    8,
			data: func() []float64 {
				data := make([]float64, 64)
				for i := 0; i < 7; i++ {
					for j := 0; j < 7; j++ {
						data[i*8+j] = 1.0 / 7
					}
				}
				data[63] = 1
				return data
			}(),
			want: 0.543564,
		},
		{
			name: "SixUniformTwoDegenerate",
			n:    8,
			data: func() []float64 {
				data := make([]float64, 64)
				for i := 0; i < 6; i++ {
					for j := 0; j < 8; j++ {
						data[i*8+j] = 1.0 / 8
					}
				}
				data[6*8+6] = 1
				data[7*8+7] = 1
				return data
			}(),
			want: 0.630241,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ei, err := EffectiveInfo(tpm(t, c.n, c.data), nil)
			require.NoError(t, err)
			assert.InDelta(t, c.want, ei, tol)
		})
	}
}
