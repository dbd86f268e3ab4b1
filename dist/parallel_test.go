package dist

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Run("SizeMismatch", func(t *testing.T) {
		a := mustFromHistogram(t, []int64{1, 2})
		b := mustFromHistogram(t, []int64{1, 2, 3})
		if err := a.Merge(b); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("expected ErrInvalidSize, got %v", err)
		}
	})

	t.Run("AddsCounts", func(t *testing.T) {
		a := mustFromHistogram(t, []int64{1, 0, 2})
		b := mustFromHistogram(t, []int64{3, 4, 0})
		if err := a.Merge(b); err != nil {
			t.Fatalf("Merge: %v", err)
		}
		want := []uint64{4, 4, 2}
		if !reflect.DeepEqual(a.counts, want) {
			t.Errorf("merged counts = %v, want %v", a.counts, want)
		}
		if a.Counts() != 10 {
			t.Errorf("Counts() = %d, want 10", a.Counts())
		}
		// b is untouched.
		if b.Counts() != 7 {
			t.Errorf("merge source mutated: Counts() = %d, want 7", b.Counts())
		}
	})
}

func TestAccumulateParallel(t *testing.T) {
	t.Run("MatchesSequential", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		obs := make([]int, 10000)
		for i := range obs {
			obs[i] = rng.Intn(8)
		}

		seq, _ := New(8)
		if _, err := seq.Accumulate(obs); err != nil {
			t.Fatalf("Accumulate: %v", err)
		}

		for _, workers := range []int{1, 2, 4, 7} {
			par, _ := New(8)
			n, err := par.AccumulateParallel(obs, workers)
			if err != nil {
				t.Fatalf("AccumulateParallel(workers=%d): %v", workers, err)
			}
			if n != len(obs) {
				t.Errorf("workers=%d: applied %d, want %d", workers, n, len(obs))
			}
			if !reflect.DeepEqual(par.counts, seq.counts) {
				t.Errorf("workers=%d: parallel counts %v != sequential %v", workers, par.counts, seq.counts)
			}
		}
	})

	t.Run("PartialOnOutOfRange", func(t *testing.T) {
		obs := []int{0, 1, 1, 9, 0, 1, 0, 0}
		d, _ := New(2)
		n, err := d.AccumulateParallel(obs, 4)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
		// 7 of the 8 observations are in range; every shard but the one
		// holding the bad observation completes, and that shard keeps its
		// progress up to the failure.
		if n != 7 {
			t.Errorf("applied %d observations, want 7", n)
		}
		if d.Counts() != 7 {
			t.Errorf("Counts() = %d, want 7", d.Counts())
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		d, _ := New(2)
		n, err := d.AccumulateParallel(nil, 4)
		if err != nil || n != 0 {
			t.Fatalf("AccumulateParallel(nil) = %d, %v; want 0, nil", n, err)
		}
	})
}
