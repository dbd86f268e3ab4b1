// Package shannon provides the standard Shannon information measures over
// empirical distributions.
//
// Every function is a pure computation over the probability vectors of its
// arguments; nothing here mutates a distribution or keeps state between
// calls. Zero-probability terms contribute nothing to any measure (the
// limit of p log p as p approaches 0) and are skipped explicitly so that no
// logarithm of zero is ever evaluated.
package shannon

import (
	"math"

	"github.com/pkg/errors"

	"github.com/inform-go/inform/dist"
)

// DefaultBase is the customary logarithm base; with it, all measures are
// reported in bits.
const DefaultBase = 2

var (
	// ErrInvalidBase is returned when the logarithm base is not positive
	// or is 1, for which the logarithm is undefined.
	ErrInvalidBase = errors.New("invalid logarithm base")

	// ErrSizeMismatch is returned when a measure requires its
	// distributions to share a support and they do not.
	ErrSizeMismatch = errors.New("distributions have different support sizes")
)

// Entropy computes the Shannon entropy of d,
//
//	H(d) = -Σ p_i log_base(p_i)
//
// over the events with non-zero probability. The distribution must be valid
// and the base positive and not 1. For base > 1 the result lies in
// [0, log_base(N)].
func Entropy(d *dist.Dist, base float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	ps, err := d.Dump()
	if err != nil {
		return 0, err
	}
	return entropy(ps) / math.Log2(base), nil
}

// ConditionalEntropy computes the entropy of the joint distribution
// conditioned on the variable described by marginal,
//
//	H(joint | marginal) = H(joint) - H(marginal).
func ConditionalEntropy(joint, marginal *dist.Dist, base float64) (float64, error) {
	hj, err := Entropy(joint, base)
	if err != nil {
		return 0, err
	}
	hm, err := Entropy(marginal, base)
	if err != nil {
		return 0, err
	}
	return hj - hm, nil
}

// MutualInfo computes the mutual information between the two variables
// whose joint distribution is joint and whose marginals are x and y,
//
//	I(X;Y) = H(x) + H(y) - H(joint).
func MutualInfo(joint, x, y *dist.Dist, base float64) (float64, error) {
	hx, err := Entropy(x, base)
	if err != nil {
		return 0, err
	}
	hy, err := Entropy(y, base)
	if err != nil {
		return 0, err
	}
	hj, err := Entropy(joint, base)
	if err != nil {
		return 0, err
	}
	return hx + hy - hj, nil
}

// ConditionalMutualInfo computes the mutual information between X and Y
// conditioned on Z, given the full joint distribution and the marginals
// over (X,Z), (Y,Z) and Z,
//
//	I(X;Y|Z) = H(xz) + H(yz) - H(z) - H(joint).
func ConditionalMutualInfo(joint, xz, yz, z *dist.Dist, base float64) (float64, error) {
	hxz, err := Entropy(xz, base)
	if err != nil {
		return 0, err
	}
	hyz, err := Entropy(yz, base)
	if err != nil {
		return 0, err
	}
	hz, err := Entropy(z, base)
	if err != nil {
		return 0, err
	}
	hj, err := Entropy(joint, base)
	if err != nil {
		return 0, err
	}
	return hxz + hyz - hz - hj, nil
}

// RelativeEntropy computes the Kullback-Leibler divergence of q from p,
//
//	D(p||q) = Σ p_i log_base(p_i / q_i)
//
// over the events where p_i > 0. The two distributions must share a support
// size. If some event has p_i > 0 but q_i == 0 the divergence is +Inf.
func RelativeEntropy(p, q *dist.Dist, base float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if p.Len() != q.Len() {
		return 0, errors.Wrapf(ErrSizeMismatch, "%d vs %d", p.Len(), q.Len())
	}
	pp, err := p.Dump()
	if err != nil {
		return 0, err
	}
	qq, err := q.Dump()
	if err != nil {
		return 0, err
	}
	var div float64
	for i, pi := range pp {
		if pi > 0 {
			div += pi * math.Log2(pi/qq[i])
		}
	}
	return div / math.Log2(base), nil
}

func checkBase(base float64) error {
	if base <= 0 || base == 1 || math.IsNaN(base) {
		return errors.Wrapf(ErrInvalidBase, "base %v", base)
	}
	return nil
}

// entropy is the base-2 entropy of a probability vector with the zero-term
// convention applied.
func entropy(ps []float64) float64 {
	var h float64
	for _, p := range ps {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
