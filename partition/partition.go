// Package partition enumerates the unique partitionings of n items into
// non-empty blocks.
//
// A partitioning is represented as a restricted growth string: a sequence
// p_0, ..., p_{n-1} where p_i is the block to which item i belongs, p_0 is
// 0, and each p_i is at most one more than the largest block index used
// before it. For example, {{x0}, {x1, x2}} is [0 1 1]. The number of
// partitionings of n items is the n-th Bell number.
package partition

import "github.com/pkg/errors"

// ErrInvalidSize is returned when the number of items is not positive.
var ErrInvalidSize = errors.New("number of items must be positive")

// A Partitioner walks the partitionings of n items in lexicographic order
// of their restricted growth strings, starting from the single-block
// partitioning [0 0 ... 0].
type Partitioner struct {
	parts []int
}

// New returns a Partitioner positioned on the first partitioning of n
// items.
func New(n int) (*Partitioner, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "n = %d", n)
	}
	return &Partitioner{parts: make([]int, n)}, nil
}

// Current returns a copy of the current partitioning.
func (p *Partitioner) Current() []int {
	cur := make([]int, len(p.parts))
	copy(cur, p.parts)
	return cur
}

// Parts returns the number of blocks in the current partitioning.
func (p *Partitioner) Parts() int {
	max := 0
	for _, b := range p.parts {
		if b > max {
			max = b
		}
	}
	return max + 1
}

// Next advances to the next partitioning, reporting false once the
// enumeration is exhausted. The successor increments the rightmost element
// that can grow without breaking the restricted growth property and zeroes
// everything after it.
func (p *Partitioner) Next() bool {
	for i := len(p.parts) - 1; i > 0; i-- {
		max := 0
		for _, b := range p.parts[:i] {
			if b > max {
				max = b
			}
		}
		if p.parts[i] <= max {
			p.parts[i]++
			for j := i + 1; j < len(p.parts); j++ {
				p.parts[j] = 0
			}
			return true
		}
	}
	return false
}

// All returns every partitioning of n items.
func All(n int) ([][]int, error) {
	p, err := New(n)
	if err != nil {
		return nil, err
	}
	all := [][]int{p.Current()}
	for p.Next() {
		all = append(all, p.Current())
	}
	return all, nil
}
