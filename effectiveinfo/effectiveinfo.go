package effectiveinfo

import (
	"math"

	"github.com/pkg/errors"
)

// EffectiveInfo computes the effective information of the system described
// by t under the given intervention distribution: the mutual information
// between the intervened cause and the resulting effect,
//
//	EI = H(Σ_i w_i row_i) - Σ_i w_i H(row_i)
//
// in bits. A nil intervention means the uniform distribution over the
// states. A non-nil intervention must have one weight per state, each
// non-negative, summing to 1 within a small tolerance.
func EffectiveInfo(t *TPM, intervention []float64) (float64, error) {
	n := t.Size()
	w := intervention
	if w == nil {
		w = make([]float64, n)
		for i := range w {
			w[i] = 1 / float64(n)
		}
	} else {
		if len(w) != n {
			return 0, errors.Wrapf(ErrInvalidIntervention, "%d weights for %d states", len(w), n)
		}
		var sum float64
		for i, wi := range w {
			if wi < 0 || math.IsNaN(wi) {
				return 0, errors.Wrapf(ErrInvalidIntervention, "weight %v for state %d", wi, i)
			}
			sum += wi
		}
		if math.Abs(sum-1) > normTol {
			return 0, errors.Wrapf(ErrInvalidIntervention, "weights sum to %v", sum)
		}
	}

	effect := make([]float64, n)
	var rowsEntropy float64
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row[j] = t.At(i, j)
			effect[j] += w[i] * row[j]
		}
		if w[i] > 0 {
			rowsEntropy += w[i] * entropy(row)
		}
	}
	return entropy(effect) - rowsEntropy, nil
}

// entropy is the base-2 Shannon entropy of a probability vector. Zero terms
// are skipped; the p log p limit at zero is 0.
func entropy(ps []float64) float64 {
	var h float64
	for _, p := range ps {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
