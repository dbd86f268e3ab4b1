package dist

import (
	"github.com/gammazero/workerpool"
	"github.com/pkg/errors"
)

// Merge adds every count from other into d. The two distributions must have
// the same support size. Merging is how independently accumulated
// distributions are recombined after partitioning an observation stream.
func (d *Dist) Merge(other *Dist) error {
	if other.Len() != d.Len() {
		return errors.Wrapf(ErrInvalidSize, "cannot merge support %d into support %d", other.Len(), d.Len())
	}
	for i, c := range other.counts {
		d.counts[i] += c
	}
	d.total += other.total
	return nil
}

type shard struct {
	local   *Dist
	applied int
	err     error
}

// AccumulateParallel accumulates a long observation sequence using a bounded
// worker pool: the sequence is split into contiguous shards, each worker
// ticks its own private distribution, and the shards are merged back into d
// serially once all workers finish.
//
// The contract matches Accumulate: the returned count is the number of
// observations applied, and on an out-of-range observation the work already
// done is not rolled back. Every shard that was fully or partially
// accumulated is merged, so the error reports the first failure by shard
// order while d still reflects all successful increments.
func (d *Dist) AccumulateParallel(obs []int, workers int) (int, error) {
	if workers <= 1 || len(obs) <= 1 {
		return d.Accumulate(obs)
	}
	if workers > len(obs) {
		workers = len(obs)
	}

	chunk := (len(obs) + workers - 1) / workers
	shards := make([]shard, (len(obs)+chunk-1)/chunk)
	wp := workerpool.New(workers)
	for i := range shards {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(obs) {
			hi = len(obs)
		}
		part := obs[lo:hi]
		s := &shards[i]
		s.local = &Dist{counts: make([]uint64, d.Len())}
		wp.Submit(func() {
			s.applied, s.err = s.local.Accumulate(part)
		})
	}
	wp.StopWait()

	applied := 0
	var firstErr error
	for i := range shards {
		// Supports match by construction, so Merge cannot fail here.
		_ = d.Merge(shards[i].local)
		applied += shards[i].applied
		if shards[i].err != nil && firstErr == nil {
			firstErr = shards[i].err
		}
	}
	return applied, firstErr
}
