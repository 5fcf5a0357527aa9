package timeentry

import (
	"context"
)

// TimeClockService defines business logic for the employee time clock
type TimeClockService interface {
	// CheckIn opens a new session; rejected when the employee already
	// has an open one.
	CheckIn(ctx context.Context, req CheckInRequest) (TimeEntryResponse, error)

	// CheckOut closes the open session and computes total hours from
	// the stored UTC instants.
	CheckOut(ctx context.Context, req CheckOutRequest) (TimeEntryResponse, error)

	List(ctx context.Context, filter TimeEntryFilter) (ListTimeEntriesResponse, error)

	// ListToday buckets entries by each employee's own local calendar
	// day, not the viewer's.
	ListToday(ctx context.Context) (TodayResponse, error)

	Get(ctx context.Context, id string) (TimeEntryResponse, error)

	// Update is the admin correction path; total hours are always
	// recomputed from the corrected instants.
	Update(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)

	Delete(ctx context.Context, id string) error
}
