package gpupower

import "time"

// WithinActiveHours reports whether now falls inside the configured
// wake-permission window: weekdays-only excludes Saturday/Sunday when
// weekdaysOnly is set; a same-day window (start < end) requires
// start <= hour < end, while an overnight window (start >= end, e.g. 22-7)
// requires hour >= start OR hour < end.
func WithinActiveHours(now time.Time, startHour, endHour int, weekdaysOnly bool) bool {
	if weekdaysOnly {
		switch now.Weekday() {
		case time.Saturday, time.Sunday:
			return false
		}
	}

	hour := now.Hour()
	if startHour < endHour {
		return hour >= startHour && hour < endHour
	}
	return hour >= startHour || hour < endHour
}
