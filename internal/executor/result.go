package executor

import (
	"fmt"
	"strings"
	"time"
)

// Failures returns the failed results in submission order
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Error != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// FirstFailure returns the earliest submitted result that failed
func FirstFailure(results []Result) (Result, bool) {
	for _, r := range results {
		if r.Error != nil {
			return r, true
		}
	}
	return Result{}, false
}

// Summary tallies a batch of lookups
type Summary struct {
	Total      int
	Successful int
	Failed     int

	// Slowest names the task that took longest, empty for an empty batch
	Slowest         string
	SlowestDuration time.Duration
}

// Summarize tallies results
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Error != nil {
			s.Failed++
		} else {
			s.Successful++
		}
		if s.Slowest == "" || r.Duration > s.SlowestDuration {
			s.Slowest = r.Name
			s.SlowestDuration = r.Duration
		}
	}
	return s
}

// String renders the summary as "2 of 3 fetched, 1 failed, slowest alt (300ms)"
func (s Summary) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d of %d fetched", s.Successful, s.Total)
	if s.Failed > 0 {
		fmt.Fprintf(&sb, ", %d failed", s.Failed)
	}
	if s.Slowest != "" {
		fmt.Fprintf(&sb, ", slowest %s (%s)", s.Slowest, s.SlowestDuration.Round(time.Millisecond))
	}

	return sb.String()
}
