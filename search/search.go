// Package search looks for a word in ever longer expansions of pi.
package search

import (
	"context"
	"fmt"
	"iter"
	"log"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"NameInPi/chudnovsky"
	"NameInPi/common"
	"NameInPi/wordcode"
)

// MaxPower is the largest power of ten Schedule will produce.
const MaxPower = common.MaxPower

type Status int

const (
	Exhausted Status = iota
	Found
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "found":
		*s = Found
	case "exhausted":
		*s = Exhausted
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Attempt records one digit count that was computed and scanned.
type Attempt struct {
	Digits  int             `json:"digits"`
	Terms   int64           `json:"terms"`
	Elapsed time.Duration   `json:"-"`
	Seconds decimal.Decimal `json:"seconds"`
	// Checked is set when the result matched a known checksum.
	Checked bool `json:"checked"`
	Offset  int  `json:"offset"`
}

type Result struct {
	Status   Status    `json:"status"`
	Word     string    `json:"word"`
	Code     string    `json:"code"`
	Digits   int       `json:"digits,omitempty"`
	Offset   int       `json:"offset"`
	Attempts []Attempt `json:"attempts"`
}

// Schedule yields probe when it is positive, then 10^0, 10^1, ... 10^maxPower.
// Powers beyond MaxPower are not produced.
func Schedule(probe, maxPower int) iter.Seq[int] {
	maxPower = min(maxPower, MaxPower)
	return func(yield func(int) bool) {
		if probe > 0 && !yield(probe) {
			return
		}
		d := 1
		for k := 0; k <= maxPower; k++ {
			if !yield(d) {
				return
			}
			d *= 10
		}
	}
}

// Searcher computes pi at each scheduled digit count until the word turns up.
type Searcher struct {
	Splitter *chudnovsky.Splitter
	Probe    int
	MaxPower int
	// Limit skips digit counts above it, 0 means no limit.
	Limit   int
	Verbose bool
	// OnAttempt, if set, sees every attempt with the value that was scanned.
	OnAttempt func(a Attempt, pi *big.Int)
}

// Run tries each scheduled digit count in turn. The context is only checked
// between attempts, a computation that has started runs to completion. A
// checksum mismatch stops the search with an error.
func (s *Searcher) Run(ctx context.Context, pattern *wordcode.Pattern) (Result, error) {
	r := Result{
		Status: Exhausted,
		Word:   pattern.Word(),
		Code:   pattern.Code(),
		Offset: wordcode.NotFound,
	}
	p := message.NewPrinter(message.MatchLanguage("en"))

	for d := range Schedule(s.Probe, s.MaxPower) {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if s.Limit > 0 && d > s.Limit {
			if s.Verbose {
				log.Print(p.Sprintf("skipping %d digits, limit is %d", d, s.Limit))
			}
			continue
		}

		stop := s.watch(p, d)
		t0 := time.Now()
		pi := s.Splitter.Pi(d)
		elapsed := time.Since(t0)
		stop()

		a := Attempt{
			Digits:  d,
			Terms:   chudnovsky.Terms(d),
			Elapsed: elapsed,
			Seconds: decimal.NewFromFloat(elapsed.Seconds()).Round(3),
		}
		if _, ok := chudnovsky.Checksum(d); ok {
			if err := chudnovsky.Verify(pi, d); err != nil {
				return r, err
			}
			a.Checked = true
		}
		a.Offset = pattern.Find(pi.String())
		r.Attempts = append(r.Attempts, a)
		if s.OnAttempt != nil {
			s.OnAttempt(a, pi)
		}

		if a.Offset != wordcode.NotFound {
			r.Status = Found
			r.Digits = d
			r.Offset = a.Offset
			return r, nil
		}
	}
	return r, nil
}

// watch logs progress while a long computation runs. Reports start after five
// seconds and spread out as the run gets longer, never more than 30s apart.
func (s *Searcher) watch(p *message.Printer, d int) (stop func()) {
	if !s.Verbose {
		return func() {}
	}
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		startTime := time.Now()
		lastReport := startTime
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				total := time.Since(startTime).Seconds()
				recent := time.Since(lastReport).Seconds()
				interval := math.Min(30.0, math.Max(5, total/2.5))
				if recent >= interval {
					log.Print(p.Sprintf("computing %d digits, %.1f s so far", d, total))
					lastReport = time.Now()
				}
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}
