package analytics

import (
	"testing"
	"time"
)

func TestBuildPeriodsEvenWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	periods := BuildPeriods(now, 14)

	if len(periods) != PeriodCount {
		t.Fatalf("expected %d periods, got %d", PeriodCount, len(periods))
	}

	if periods[0].Label != "Period 1" || periods[6].Label != "Period 7" {
		t.Errorf("unexpected labels: %q .. %q", periods[0].Label, periods[6].Label)
	}

	// 14 days split evenly into 7 two-day periods tiling the whole window
	if !periods[0].Start.Equal(now.AddDate(0, 0, -14)) {
		t.Errorf("first period start = %v, want %v", periods[0].Start, now.AddDate(0, 0, -14))
	}
	if !periods[6].End.Equal(now) {
		t.Errorf("last period end = %v, want %v", periods[6].End, now)
	}
	for i := 1; i < len(periods); i++ {
		if !periods[i].Start.Equal(periods[i-1].End) {
			t.Errorf("period %d start %v does not touch previous end %v", i+1, periods[i].Start, periods[i-1].End)
		}
	}
}

// A 10-day window does not divide evenly by 7: periodSize = ceil(10/7) = 2,
// so 5 periods cover the window and the last 2 spill past "now". That spill
// is part of the contract, not something to normalize away.
func TestBuildPeriodsTruncation(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	periods := BuildPeriods(now, 10)

	if len(periods) != PeriodCount {
		t.Fatalf("expected %d periods, got %d", PeriodCount, len(periods))
	}

	within := 0
	for _, p := range periods {
		if p.End.Sub(p.Start) != 48*time.Hour {
			t.Errorf("%s spans %v, want 48h", p.Label, p.End.Sub(p.Start))
		}
		if !p.End.After(now) {
			within++
		}
	}
	if within != 5 {
		t.Errorf("expected 5 periods inside the window, got %d", within)
	}

	// Period 5 ends exactly at "now"; periods 6 and 7 lie in the future.
	if !periods[4].End.Equal(now) {
		t.Errorf("period 5 end = %v, want %v", periods[4].End, now)
	}
	if !periods[5].Start.Equal(now) {
		t.Errorf("period 6 start = %v, want %v", periods[5].Start, now)
	}
}

func TestPeriodContainsInclusiveBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	p := BuildPeriods(now, 7)[0]

	if !p.Contains(p.Start) {
		t.Error("period should contain its start boundary")
	}
	if !p.Contains(p.End) {
		t.Error("period should contain its end boundary")
	}
	if p.Contains(p.Start.Add(-time.Second)) {
		t.Error("period should not contain times before its start")
	}
	if p.Contains(p.End.Add(time.Second)) {
		t.Error("period should not contain times after its end")
	}
}
