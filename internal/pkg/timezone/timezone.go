package timezone

import (
	"time"
)

// DefaultTimezone is assumed for employees with no timezone on record.
const DefaultTimezone = "America/Chicago"

// LoadLocation resolves an IANA timezone name, falling back to
// DefaultTimezone when the name is empty or unknown.
func LoadLocation(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, err = time.LoadLocation(DefaultTimezone)
		if err != nil {
			return time.UTC
		}
	}
	return loc
}

// ToLocal projects a UTC instant into the wall clock of tz.
func ToLocal(t time.Time, tz string) time.Time {
	return t.In(LoadLocation(tz))
}

// ToUTC converts a local projection back to the UTC instant it
// carries. Exact inverse of ToLocal for every instant, including the
// repeated hour of a DST fall-back; rebuilding from clock fields would
// resolve that ambiguous hour to the pre-transition offset and land an
// hour off. Only CombineDateAndClock rebuilds from fields, where the
// anchor date disambiguates.
func ToUTC(local time.Time) time.Time {
	return local.UTC()
}

// ParseClock parses a wall-clock time-of-day string, "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// CombineDateAndClock returns the UTC instant for the wall-clock time
// clock on the local calendar date that baseUTC falls on in tz, shifted
// by addDays days. Used when an admin edits a time-of-day field: the new
// local time is anchored to the entry's original local date, then
// converted back to UTC for storage.
func CombineDateAndClock(baseUTC time.Time, clock time.Time, tz string, addDays int) time.Time {
	loc := LoadLocation(tz)
	local := baseUTC.In(loc)
	combined := time.Date(
		local.Year(), local.Month(), local.Day()+addDays,
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		loc,
	)
	return combined.UTC()
}

// LocalDayBounds returns the UTC instants bounding the local calendar
// day of tz that t falls on: [local midnight, next local midnight).
// Report queries use this so "today" follows the employee's own
// timezone, not the viewer's.
func LocalDayBounds(t time.Time, tz string) (start, end time.Time) {
	loc := LoadLocation(tz)
	local := t.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.UTC(), midnight.AddDate(0, 0, 1).UTC()
}
