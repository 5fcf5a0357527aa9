package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocationFallback(t *testing.T) {
	assert.Equal(t, "America/Chicago", LoadLocation("").String())
	assert.Equal(t, "America/Chicago", LoadLocation("Not/AZone").String())
	assert.Equal(t, "Asia/Jakarta", LoadLocation("Asia/Jakarta").String())
}

func TestRoundTrip(t *testing.T) {
	zones := []string{
		"America/Chicago",
		"Asia/Jakarta",
		"Europe/Berlin",
		"Pacific/Auckland",
		"UTC",
	}
	instants := []time.Time{
		time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		// Around US DST transitions
		time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 3, 7, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, tz := range zones {
		for _, instant := range instants {
			got := ToUTC(ToLocal(instant, tz))
			assert.True(t, got.Equal(instant), "round trip %s in %s: got %s", instant, tz, got)
		}
	}
}

func TestRoundTripDSTFallBackFold(t *testing.T) {
	// 2024-11-03 07:30 UTC is 01:30 CST in Chicago, inside the repeated
	// hour after fall-back (01:30 also occurred an hour earlier as CDT).
	// The round trip must preserve the instant, not re-resolve the
	// ambiguous wall clock.
	instant := time.Date(2024, 11, 3, 7, 30, 0, 0, time.UTC)

	local := ToLocal(instant, "America/Chicago")
	assert.Equal(t, 1, local.Hour())
	assert.Equal(t, 30, local.Minute())

	got := ToUTC(local)
	assert.True(t, got.Equal(instant), "fold round trip: got %s want %s", got, instant)
}

func TestToLocalWallClock(t *testing.T) {
	// 9pm UTC on Jan 15 is 3pm in Chicago (CST, UTC-6).
	utc := time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC)
	local := ToLocal(utc, "America/Chicago")
	assert.Equal(t, 15, local.Hour())
	assert.Equal(t, 15, local.Day())

	// Same instant is already Jan 16 in Jakarta (UTC+7).
	jakarta := ToLocal(utc, "Asia/Jakarta")
	assert.Equal(t, 4, jakarta.Hour())
	assert.Equal(t, 16, jakarta.Day())
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("17:30")
	require.NoError(t, err)
	assert.Equal(t, 17, c.Hour())
	assert.Equal(t, 30, c.Minute())

	c, err = ParseClock("09:15:45")
	require.NoError(t, err)
	assert.Equal(t, 45, c.Second())

	_, err = ParseClock("half past nine")
	assert.Error(t, err)
}

func TestCombineDateAndClock(t *testing.T) {
	// Entry checked in at 14:00 UTC = 08:00 Chicago on Jan 15.
	base := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	clock, err := ParseClock("10:30")
	require.NoError(t, err)

	// Editing the time to 10:30 local keeps the entry's local date.
	got := CombineDateAndClock(base, clock, "America/Chicago", 0)
	want := time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC) // 10:30 CST
	assert.True(t, got.Equal(want), "got %s want %s", got, want)

	// addDays pushes the local date forward for overnight checkouts.
	next := CombineDateAndClock(base, clock, "America/Chicago", 1)
	assert.True(t, next.Equal(want.AddDate(0, 0, 1)))
}

func TestCombineDateAndClockAcrossDST(t *testing.T) {
	// March 10 2024: US spring-forward. 06:00 UTC is still March 9 local.
	base := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC) // 09:00 CDT March 10

	clock, err := ParseClock("02:30")
	require.NoError(t, err)

	got := CombineDateAndClock(base, clock, "America/Chicago", 0)
	// 02:30 local does not exist on that date; Go resolves it to 03:30 CDT.
	local := got.In(LoadLocation("America/Chicago"))
	assert.Equal(t, 10, local.Day())
}

func TestLocalDayBounds(t *testing.T) {
	// 02:00 UTC Jan 16 is still Jan 15 in Chicago.
	instant := time.Date(2024, 1, 16, 2, 0, 0, 0, time.UTC)
	start, end := LocalDayBounds(instant, "America/Chicago")
	assert.True(t, start.Equal(time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC)))

	// The same instant buckets into Jan 16 for a Jakarta employee.
	start, end = LocalDayBounds(instant, "Asia/Jakarta")
	assert.True(t, start.Equal(time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC)))
}
