package timeclock

import (
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func strPtr(s string) *string { return &s }

func TestApplyEdit_CheckInAnchoredToLocalDate(t *testing.T) {
	// 2025-06-09 14:00 Chicago (CDT, UTC-5) stored as 19:00 UTC.
	entry := timeentry.TimeEntry{
		CheckInTime: mustParse(t, "2025-06-09T19:00:00Z"),
		Status:      timeentry.StatusCheckedIn,
	}

	edited, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		CheckInClock: strPtr("08:30"),
		EditReason:   "forgot to clock in",
	}, "America/Chicago")
	require.NoError(t, err)

	// Same local date, new local clock: 2025-06-09 08:30 CDT = 13:30 UTC.
	assert.Equal(t, mustParse(t, "2025-06-09T13:30:00Z"), edited.CheckInTime)
	assert.True(t, edited.IsEdited)
	require.NotNil(t, edited.EditReason)
	assert.Equal(t, "forgot to clock in", *edited.EditReason)
}

func TestApplyEdit_OvernightCheckOutRollsForward(t *testing.T) {
	// Checked in 22:00 local on the 9th; admin sets checkout to 06:00,
	// which is earlier on the clock, so it lands on the 10th.
	entry := timeentry.TimeEntry{
		CheckInTime: mustParse(t, "2025-06-10T03:00:00Z"), // 22:00 CDT on the 9th
		Status:      timeentry.StatusCheckedIn,
	}

	edited, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		CheckOutClock: strPtr("06:00"),
		EditReason:    "missed checkout",
	}, "America/Chicago")
	require.NoError(t, err)

	require.NotNil(t, edited.CheckOutTime)
	assert.Equal(t, mustParse(t, "2025-06-10T11:00:00Z"), *edited.CheckOutTime)
	assert.Equal(t, timeentry.StatusCheckedOut, edited.Status)

	require.NotNil(t, edited.TotalHours)
	assert.Equal(t, "8", edited.TotalHours.String())
}

func TestApplyEdit_BothClocksRecomputeHours(t *testing.T) {
	out := mustParse(t, "2025-06-09T22:00:00Z")
	entry := timeentry.TimeEntry{
		CheckInTime:  mustParse(t, "2025-06-09T14:00:00Z"),
		CheckOutTime: &out,
		Status:       timeentry.StatusCheckedOut,
	}

	edited, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		CheckInClock:  strPtr("09:00"),
		CheckOutClock: strPtr("17:30"),
		EditReason:    "corrected shift",
	}, "America/Chicago")
	require.NoError(t, err)

	assert.Equal(t, mustParse(t, "2025-06-09T14:00:00Z"), edited.CheckInTime)
	require.NotNil(t, edited.CheckOutTime)
	assert.Equal(t, mustParse(t, "2025-06-09T22:30:00Z"), *edited.CheckOutTime)
	require.NotNil(t, edited.TotalHours)
	assert.Equal(t, "8.5", edited.TotalHours.String())
}

func TestApplyEdit_ClearCheckOutReopensEntry(t *testing.T) {
	out := mustParse(t, "2025-06-09T22:00:00Z")
	entry := timeentry.TimeEntry{
		CheckInTime:  mustParse(t, "2025-06-09T14:00:00Z"),
		CheckOutTime: &out,
		Status:       timeentry.StatusCheckedOut,
	}

	edited, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		ClearCheckOut: true,
		EditReason:    "checked out by mistake",
	}, "America/Chicago")
	require.NoError(t, err)

	assert.Nil(t, edited.CheckOutTime)
	assert.Nil(t, edited.TotalHours)
	assert.Equal(t, timeentry.StatusCheckedIn, edited.Status)
}

func TestApplyEdit_CheckInMovedPastCheckOutRolls(t *testing.T) {
	out := mustParse(t, "2025-06-09T20:00:00Z") // 15:00 CDT
	entry := timeentry.TimeEntry{
		CheckInTime:  mustParse(t, "2025-06-09T14:00:00Z"), // 09:00 CDT
		CheckOutTime: &out,
		Status:       timeentry.StatusCheckedOut,
	}

	// Check-in corrected to 23:00 local, now after the 15:00 checkout;
	// the checkout keeps its clock but rolls to the next day.
	edited, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		CheckInClock: strPtr("23:00"),
		EditReason:   "wrong day boundary",
	}, "America/Chicago")
	require.NoError(t, err)

	require.NotNil(t, edited.CheckOutTime)
	assert.Equal(t, mustParse(t, "2025-06-10T20:00:00Z"), *edited.CheckOutTime)
	require.NotNil(t, edited.TotalHours)
	assert.Equal(t, "16", edited.TotalHours.String())
}

func TestApplyEdit_NotesOnly(t *testing.T) {
	entry := timeentry.TimeEntry{
		CheckInTime: mustParse(t, "2025-06-09T14:00:00Z"),
		Status:      timeentry.StatusCheckedIn,
	}

	edited, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		Notes:      strPtr("worked the front desk"),
		EditReason: "added context",
	}, "America/Chicago")
	require.NoError(t, err)

	assert.Equal(t, entry.CheckInTime, edited.CheckInTime)
	require.NotNil(t, edited.Notes)
	assert.Equal(t, "worked the front desk", *edited.Notes)
	assert.True(t, edited.IsEdited)
}

func TestApplyEdit_RejectsUnparseableClock(t *testing.T) {
	entry := timeentry.TimeEntry{
		CheckInTime: mustParse(t, "2025-06-09T14:00:00Z"),
		Status:      timeentry.StatusCheckedIn,
	}

	_, err := applyEdit(entry, timeentry.UpdateTimeEntryRequest{
		CheckInClock: strPtr("25:99"),
		EditReason:   "typo",
	}, "America/Chicago")
	assert.Error(t, err)
}
