// Package analytics implements the temporal mood analysis engine: period
// partitioning, per-feeling pattern extraction, trend trajectories, trigger
// aggregation, interaction correlation and recommendation composition.
// Everything here is pure computation over records the caller already
// fetched; the package performs no I/O and keeps no state between calls.
package analytics

import (
	"fmt"
	"time"
)

// PeriodCount is the fixed number of sub-periods a lookback window is split
// into for trend analysis.
const PeriodCount = 7

// Period is one labeled sub-period of a lookback window.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

// BuildPeriods splits a lookback window of days ending at now into exactly
// PeriodCount contiguous sub-periods of ceil(days/7) days each.
//
// When days is not evenly divisible by 7 the ceiling rounding pushes the
// later periods past now instead of tiling the window exactly. Those periods
// never match any record and get skipped by the trend analyzer. The
// boundaries are intentionally not normalized; callers depend on these exact
// cut points.
func BuildPeriods(now time.Time, days int) []Period {
	periodSize := (days + PeriodCount - 1) / PeriodCount

	periods := make([]Period, 0, PeriodCount)
	for i := 0; i < PeriodCount; i++ {
		periods = append(periods, Period{
			Label: fmt.Sprintf("Period %d", i+1),
			Start: now.AddDate(0, 0, -(days - i*periodSize)),
			End:   now.AddDate(0, 0, -(days - (i+1)*periodSize)),
		})
	}

	return periods
}

// Contains reports whether t falls inside the period, boundaries inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
