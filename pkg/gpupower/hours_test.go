package gpupower

import (
	"testing"
	"time"
)

func TestWithinActiveHours_SameDayWindow(t *testing.T) {
	// Tuesday 2026-07-28 10:00, window 7-22.
	mon := time.Date(2026, time.July, 28, 10, 0, 0, 0, time.UTC)
	if !WithinActiveHours(mon, 7, 22, true) {
		t.Fatal("expected 10:00 to be within 7-22 window")
	}
	late := time.Date(2026, time.July, 28, 23, 0, 0, 0, time.UTC)
	if WithinActiveHours(late, 7, 22, true) {
		t.Fatal("expected 23:00 to be outside 7-22 window")
	}
}

func TestWithinActiveHours_OvernightWindow(t *testing.T) {
	// Window 22-7 (overnight): both 23:00 and 5:00 should be inside, noon
	// should be outside.
	night := time.Date(2026, time.July, 28, 23, 0, 0, 0, time.UTC)
	if !WithinActiveHours(night, 22, 7, false) {
		t.Fatal("expected 23:00 to be within overnight 22-7 window")
	}
	earlyMorning := time.Date(2026, time.July, 28, 5, 0, 0, 0, time.UTC)
	if !WithinActiveHours(earlyMorning, 22, 7, false) {
		t.Fatal("expected 05:00 to be within overnight 22-7 window")
	}
	noon := time.Date(2026, time.July, 28, 12, 0, 0, 0, time.UTC)
	if WithinActiveHours(noon, 22, 7, false) {
		t.Fatal("expected noon to be outside overnight 22-7 window")
	}
}

func TestWithinActiveHours_WeekdaysOnlyExcludesWeekend(t *testing.T) {
	// 2026-08-01 is a Saturday.
	saturday := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	if WithinActiveHours(saturday, 7, 22, true) {
		t.Fatal("expected Saturday to be excluded when weekdaysOnly is set")
	}
	if !WithinActiveHours(saturday, 7, 22, false) {
		t.Fatal("expected Saturday to be included when weekdaysOnly is false")
	}
}
