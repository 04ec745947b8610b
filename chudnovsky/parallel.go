package chudnovsky

import (
	"runtime"

	"golang.org/x/sync/semaphore"
)

// DefaultThreshold is the smallest range, in terms, whose halves are worth
// computing on separate goroutines. Below this the big.Int operands are
// small enough that goroutine hand-off dominates.
const DefaultThreshold = 512

// Splitter evaluates term ranges using up to Workers extra goroutines. The
// zero value is usable and runs sequentially.
type Splitter struct {
	// Workers limits the number of goroutines running beside the caller.
	Workers int
	// Threshold is the smallest range that may be split across goroutines.
	Threshold int64
}

// NewSplitter returns a Splitter using one worker per CPU beyond the caller.
func NewSplitter() *Splitter {
	return &Splitter{
		Workers:   runtime.NumCPU() - 1,
		Threshold: DefaultThreshold,
	}
}

// Split computes the same triple as the package level Split. When a worker is
// free, the lower half of a large range is handed to it while the caller
// works on the upper half; a busy pool means both halves run inline, so the
// recursion never waits for a token.
func (s *Splitter) Split(a, b int64) Triple {
	if s == nil || s.Workers <= 0 {
		return Split(a, b)
	}
	threshold := s.Threshold
	if threshold < 2 {
		threshold = 2
	}
	sem := semaphore.NewWeighted(int64(s.Workers))
	return s.split(sem, threshold, a, b)
}

func (s *Splitter) split(sem *semaphore.Weighted, threshold, a, b int64) Triple {
	if b-a < threshold {
		return Split(a, b)
	}
	m := Midpoint(a, b)
	if !sem.TryAcquire(1) {
		return Combine(s.split(sem, threshold, a, m), s.split(sem, threshold, m, b))
	}

	done := make(chan Triple, 1)
	go func() {
		defer sem.Release(1)
		done <- s.split(sem, threshold, a, m)
	}()
	right := s.split(sem, threshold, m, b)
	return Combine(<-done, right)
}

