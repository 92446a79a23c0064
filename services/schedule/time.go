package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ToMinutes parses an "HH:MM" 24-hour string into minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	return hour*60 + minute, nil
}

// FromMinutes renders minutes since midnight as "HH:MM", wrapping mod 24h.
func FromMinutes(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts an "HH:MM" time by delta minutes.
func AddMinutes(hhmm string, delta int) (string, error) {
	m, err := ToMinutes(hhmm)
	if err != nil {
		return "", err
	}
	return FromMinutes(m + delta), nil
}

// InvalidTimeSentinel is what FormatDisplay returns for malformed input.
// Display code renders it verbatim instead of crashing.
const InvalidTimeSentinel = "Invalid time"

// FormatDisplay converts "HH:MM" to a 12-hour "h:mm AM/PM" string. Hour 0
// displays as 12 AM, hour 12 as 12 PM.
func FormatDisplay(hhmm string) string {
	m, err := ToMinutes(hhmm)
	if err != nil {
		return InvalidTimeSentinel
	}
	hour := m / 60
	minute := m % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, suffix)
}

// Overlaps reports whether two half-open "HH:MM" ranges intersect. Touching
// endpoints (one range ending exactly when the other starts) do not overlap.
func Overlaps(startA, endA, startB, endB string) (bool, error) {
	sa, err := ToMinutes(startA)
	if err != nil {
		return false, err
	}
	ea, err := ToMinutes(endA)
	if err != nil {
		return false, err
	}
	sb, err := ToMinutes(startB)
	if err != nil {
		return false, err
	}
	eb, err := ToMinutes(endB)
	if err != nil {
		return false, err
	}
	return rangesOverlap(sa, ea, sb, eb), nil
}

func rangesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}
