package schedule

import "time"

// Business window: Monday through Friday, 08:00 to 17:00. The closing
// boundary is inclusive at exactly 17:00; 17:01 is already out.
const (
	OpeningHour = 8
	ClosingHour = 17

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ParseSlot combines a date string ("2006-01-02") and a time-of-day
// string ("15:04") into a single wall-clock instant. The values are
// taken as typed, with no time-zone shifting, so the resulting weekday
// is the calendar weekday of the typed date.
func ParseSlot(dateStr, timeStr string) (time.Time, error) {
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

// IsAvailable reports whether the requested date/time falls inside the
// weekly business window. Malformed input (non-numeric components,
// impossible calendar dates like Feb 30, out-of-range clock values)
// yields false: the check fails closed instead of propagating a
// parse error.
func IsAvailable(dateStr, timeStr string) bool {
	slot, err := ParseSlot(dateStr, timeStr)
	if err != nil {
		return false
	}
	return WithinBusinessHours(slot)
}

// WithinBusinessHours applies the window guards in order: weekday,
// hour range, then the exact-17:00 closing boundary.
func WithinBusinessHours(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	hour, minute := t.Hour(), t.Minute()
	if hour < OpeningHour || hour > ClosingHour {
		return false
	}
	if hour == ClosingHour && minute != 0 {
		return false
	}
	return true
}
