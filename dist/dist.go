// Package dist implements empirical probability distributions over a dense
// space of discrete events.
//
// A Dist is a histogram: one observation count per event identifier in
// [0, N). It is built all at once (FromHistogram, FromObservations,
// FromProbabilities, Uniform) or incrementally (Tick, Accumulate, Set) and
// normalized on demand into probabilities (Probability, Dump). A
// distribution with no recorded observations cannot be normalized and is
// reported invalid; read operations that require normalization fail with
// ErrInvalidDistribution rather than fabricating a value.
package dist

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Error kinds reported by distribution operations. Failures wrap these with
// context at the call site; match them with errors.Is.
var (
	ErrInvalidSize         = errors.New("invalid support size")
	ErrInvalidCount        = errors.New("negative observation count")
	ErrInvalidProbability  = errors.New("invalid probability")
	ErrInvalidObservation  = errors.New("invalid observation")
	ErrIndexOutOfRange     = errors.New("event out of range")
	ErrInvalidDistribution = errors.New("invalid distribution: no observations")
)

// probScale is the fixed-point scale factor used by FromProbabilities. A
// probability p becomes round(p * probScale) counts, so the resulting
// distribution only approximates the requested proportions.
const probScale = 1_000_000_000

// Dist is an empirical distribution over the event identifiers [0, N).
//
// A Dist is a mutable value with no internal locking: at most one mutator
// (Set, Tick, Accumulate, Merge, Resize) may run at a time per instance.
// The read-only operations (Len, Get, Counts, Valid, Probability, Dump) are
// safe to call concurrently with each other, but not with a mutator. Copies
// share no storage and need no synchronization between them.
type Dist struct {
	counts []uint64
	total  uint64
}

// New allocates a distribution with the given support size and no recorded
// observations. A size of zero is permitted and yields a trivially invalid
// distribution.
func New(size int) (*Dist, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	return &Dist{counts: make([]uint64, size)}, nil
}

// FromHistogram builds a distribution whose counts are a copy of hist.
func FromHistogram(hist []int64) (*Dist, error) {
	if len(hist) == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "empty histogram")
	}
	d := &Dist{counts: make([]uint64, len(hist))}
	for i, c := range hist {
		if c < 0 {
			return nil, errors.Wrapf(ErrInvalidCount, "count %d for event %d", c, i)
		}
		d.counts[i] = uint64(c)
		d.total += uint64(c)
	}
	return d, nil
}

// FromProbabilities builds a distribution approximating the given
// proportions via fixed-point scaling: each probability is multiplied by a
// large constant and rounded independently, so the total count is only
// approximately equal to the scale factor and the resulting probabilities
// only approximately equal the inputs. Each element must lie in [0, 1].
func FromProbabilities(probs []float64) (*Dist, error) {
	return approximate(probs, probScale)
}

func approximate(probs []float64, scale float64) (*Dist, error) {
	if len(probs) == 0 {
		return nil, errors.Wrap(ErrInvalidProbability, "no probabilities provided")
	}
	d := &Dist{counts: make([]uint64, len(probs))}
	for i, p := range probs {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return nil, errors.Wrapf(ErrInvalidProbability, "probability %v for event %d", p, i)
		}
		c := uint64(math.Round(p * scale))
		d.counts[i] = c
		d.total += c
	}
	return d, nil
}

// FromObservations tallies a sequence of observed events. The support size
// is one more than the largest observation. The sequence must be non-empty
// and every observation non-negative.
func FromObservations(obs []int) (*Dist, error) {
	if len(obs) == 0 {
		return nil, errors.Wrap(ErrInvalidObservation, "no observations")
	}
	max := 0
	for i, o := range obs {
		if o < 0 {
			return nil, errors.Wrapf(ErrInvalidObservation, "observation %d at position %d", o, i)
		}
		if o > max {
			max = o
		}
	}
	d := &Dist{counts: make([]uint64, max+1)}
	for _, o := range obs {
		d.counts[o]++
	}
	d.total = uint64(len(obs))
	return d, nil
}

// FromObservationsSize is FromObservations with a minimum support size: the
// distribution is grown to at least n events, zero-filling the extras.
func FromObservationsSize(obs []int, n int) (*Dist, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", n)
	}
	d, err := FromObservations(obs)
	if err != nil {
		return nil, err
	}
	if d.Len() < n {
		if err := d.Resize(n); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Uniform builds a distribution with a single observation of each of size
// events. The size must be positive.
func Uniform(size int) (*Dist, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	d := &Dist{counts: make([]uint64, size), total: uint64(size)}
	for i := range d.counts {
		d.counts[i] = 1
	}
	return d, nil
}

// Len returns the support size, i.e. the number of distinct events the
// distribution can record.
func (d *Dist) Len() int {
	return len(d.counts)
}

// Get returns the number of observations recorded for event.
func (d *Dist) Get(event int) (uint64, error) {
	if event < 0 || event >= len(d.counts) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "event %d, support %d", event, len(d.counts))
	}
	return d.counts[event], nil
}

// Set overwrites the observation count for event. The value must be
// non-negative; a negative count is rejected rather than clamped.
func (d *Dist) Set(event int, value int64) error {
	if event < 0 || event >= len(d.counts) {
		return errors.Wrapf(ErrIndexOutOfRange, "event %d, support %d", event, len(d.counts))
	}
	if value < 0 {
		return errors.Wrapf(ErrInvalidCount, "count %d for event %d", value, event)
	}
	d.total -= d.counts[event]
	d.counts[event] = uint64(value)
	d.total += uint64(value)
	return nil
}

// Resize changes the support size in place. Growing zero-fills the new
// events; shrinking silently truncates, discarding the counts of the
// dropped events. The discard is irrecoverable.
func (d *Dist) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidSize, "size %d", n)
	}
	counts := make([]uint64, n)
	copied := copy(counts, d.counts)
	var total uint64
	for _, c := range counts[:copied] {
		total += c
	}
	d.counts = counts
	d.total = total
	return nil
}

// Copy returns a deep copy sharing no storage with d.
func (d *Dist) Copy() *Dist {
	counts := make([]uint64, len(d.counts))
	copy(counts, d.counts)
	return &Dist{counts: counts, total: d.total}
}

// Counts returns the total number of observations recorded so far.
func (d *Dist) Counts() uint64 {
	return d.total
}

// Valid reports whether the distribution has at least one recorded
// observation and can therefore be normalized into probabilities.
func (d *Dist) Valid() bool {
	return d.total > 0
}

// Tick records a single observation of event and returns the updated count
// for that event (not the new total), letting a caller inspect the tally
// inline while observing a stream.
func (d *Dist) Tick(event int) (uint64, error) {
	if event < 0 || event >= len(d.counts) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "event %d, support %d", event, len(d.counts))
	}
	d.counts[event]++
	d.total++
	return d.counts[event], nil
}

// Accumulate ticks every observation in order and returns the number
// applied. It stops at the first out-of-range observation; increments made
// before the failure remain in effect, so on error the returned count tells
// the caller exactly how much of the sequence is reflected in d.
func (d *Dist) Accumulate(obs []int) (int, error) {
	for i, o := range obs {
		if o < 0 || o >= len(d.counts) {
			return i, errors.Wrapf(ErrIndexOutOfRange, "observation %d at position %d, support %d", o, i, len(d.counts))
		}
		d.counts[o]++
		d.total++
	}
	return len(obs), nil
}

// Probability returns the empirical probability of event.
func (d *Dist) Probability(event int) (float64, error) {
	if !d.Valid() {
		return 0, errors.WithStack(ErrInvalidDistribution)
	}
	if event < 0 || event >= len(d.counts) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "event %d, support %d", event, len(d.counts))
	}
	return float64(d.counts[event]) / float64(d.total), nil
}

// Dump returns the full probability vector, freshly allocated and owned by
// the caller: p[i] = counts[i] / total for every event i.
func (d *Dist) Dump() ([]float64, error) {
	if !d.Valid() {
		return nil, errors.WithStack(ErrInvalidDistribution)
	}
	ps := make([]float64, len(d.counts))
	total := float64(d.total)
	for i, c := range d.counts {
		ps[i] = float64(c) / total
	}
	return ps, nil
}

// String renders the current count vector for diagnostics.
func (d *Dist) String() string {
	return fmt.Sprintf("Dist(%v)", d.counts)
}
