// Package effectiveinfo computes the effective information of a discrete
// dynamical system described by a transition probability matrix, optionally
// under a non-uniform intervention distribution.
package effectiveinfo

import (
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"
)

// normTol is the tolerance used when checking that a probability vector or
// matrix row sums to 1.
const normTol = 1e-6

var (
	// ErrInvalidTPM is returned for a matrix that is empty, non-square,
	// or not row-stochastic.
	ErrInvalidTPM = errors.New("invalid transition probability matrix")

	// ErrInvalidSeries is returned when a transition matrix cannot be
	// inferred from a time series.
	ErrInvalidSeries = errors.New("invalid time series")

	// ErrInvalidIntervention is returned for an intervention distribution
	// that is the wrong size or not a probability vector.
	ErrInvalidIntervention = errors.New("invalid intervention distribution")
)

// TPM is a validated row-stochastic transition probability matrix: entry
// (i, j) is the probability that state i transitions to state j.
type TPM struct {
	m *mat64.Dense
}

// NewTPM validates m as a transition probability matrix: it must be square
// and non-empty, every entry must lie in [0, 1], and every row must sum to
// 1 within a small tolerance. The matrix is not copied; the caller must not
// mutate it afterwards.
func NewTPM(m *mat64.Dense) (*TPM, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.Wrap(ErrInvalidTPM, "empty matrix")
	}
	if r != c {
		return nil, errors.Wrapf(ErrInvalidTPM, "%dx%d matrix is not square", r, c)
	}
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			p := m.At(i, j)
			if p < 0 || p > 1 || math.IsNaN(p) {
				return nil, errors.Wrapf(ErrInvalidTPM, "entry (%d,%d) = %v", i, j, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > normTol {
			return nil, errors.Wrapf(ErrInvalidTPM, "row %d sums to %v", i, sum)
		}
	}
	return &TPM{m: m}, nil
}

// Infer builds a transition probability matrix from the first-order
// transitions of a time series over the states [0, b). A base of zero means
// infer it from the data (at least 2). Every state must occur at least once
// as a transition source, otherwise its row cannot be normalized.
func Infer(series []int, b int) (*TPM, error) {
	if len(series) < 2 {
		return nil, errors.Wrap(ErrInvalidSeries, "need at least two time steps")
	}
	max := 0
	for i, s := range series {
		if s < 0 {
			return nil, errors.Wrapf(ErrInvalidSeries, "state %d at time %d", s, i)
		}
		if s > max {
			max = s
		}
	}
	if b == 0 {
		b = max + 1
		if b < 2 {
			b = 2
		}
	} else if b < 1 {
		return nil, errors.Wrapf(ErrInvalidSeries, "base %d", b)
	} else if max >= b {
		return nil, errors.Wrapf(ErrInvalidSeries, "state %d exceeds base %d", max, b)
	}

	counts := make([]uint64, b*b)
	rows := make([]uint64, b)
	for t := 1; t < len(series); t++ {
		from, to := series[t-1], series[t]
		counts[from*b+to]++
		rows[from]++
	}

	data := make([]float64, b*b)
	for i := 0; i < b; i++ {
		if rows[i] == 0 {
			return nil, errors.Wrapf(ErrInvalidSeries, "state %d has no outgoing transitions", i)
		}
		total := float64(rows[i])
		for j := 0; j < b; j++ {
			data[i*b+j] = float64(counts[i*b+j]) / total
		}
	}
	return &TPM{m: mat64.NewDense(b, b, data)}, nil
}

// Size returns the number of states.
func (t *TPM) Size() int {
	n, _ := t.m.Dims()
	return n
}

// At returns the probability of the transition from state i to state j.
func (t *TPM) At(i, j int) float64 {
	return t.m.At(i, j)
}
