package timeclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/timezone"
	payoutsvc "github.com/crewpay/crewpay-backend-go/internal/service/payout"
)

type TimeClockServiceImpl struct {
	timeEntryRepo timeentry.TimeEntryRepository
	employeeRepo  employee.EmployeeRepository

	// now is swappable for tests
	now func() time.Time
}

func NewTimeClockService(
	timeEntryRepo timeentry.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
) timeentry.TimeClockService {
	return &TimeClockServiceImpl{
		timeEntryRepo: timeEntryRepo,
		employeeRepo:  employeeRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn implements timeentry.TimeClockService.
func (s *TimeClockServiceImpl) CheckIn(ctx context.Context, req timeentry.CheckInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	_, err = s.timeEntryRepo.GetOpenByEmployee(ctx, emp.ID)
	if err == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, timeentry.ErrNotCheckedIn) {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to check for open entry: %w", err)
	}

	entry := timeentry.TimeEntry{
		EmployeeID:            emp.ID,
		CheckInTime:           s.now(),
		Status:                timeentry.StatusCheckedIn,
		Notes:                 req.Notes,
		TimezoneOffsetMinutes: req.TimezoneOffsetMinutes,
	}

	// The open-entry check above races; the storage-level guard turns
	// the loser's insert into ErrAlreadyCheckedIn.
	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(created, emp.FullName, emp.Location()), nil
}

// CheckOut implements timeentry.TimeClockService.
func (s *TimeClockServiceImpl) CheckOut(ctx context.Context, req timeentry.CheckOutRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetOpenByEmployee(ctx, emp.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	now := s.now()
	hours := payoutsvc.ElapsedHours(entry.CheckInTime, now)

	entry.CheckOutTime = &now
	entry.Status = timeentry.StatusCheckedOut
	entry.TotalHours = &hours
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(entry, emp.FullName, emp.Location()), nil
}

// List implements timeentry.TimeClockService.
func (s *TimeClockServiceImpl) List(ctx context.Context, filter timeentry.TimeEntryFilter) (timeentry.ListTimeEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return timeentry.ListTimeEntriesResponse{}, err
	}

	entries, total, err := s.timeEntryRepo.List(ctx, filter)
	if err != nil {
		return timeentry.ListTimeEntriesResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toJoinedResponse(entry))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return timeentry.ListTimeEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Entries:    responses,
	}, nil
}

// ListToday implements timeentry.TimeClockService. "Today" is computed
// per employee from their own timezone, so an overnight shift in
// Jakarta and one in Chicago each land on the right local day.
func (s *TimeClockServiceImpl) ListToday(ctx context.Context) (timeentry.TodayResponse, error) {
	employees, err := s.listActiveEmployees(ctx)
	if err != nil {
		return timeentry.TodayResponse{}, err
	}

	now := s.now()
	result := timeentry.TodayResponse{Employees: make([]timeentry.TodayEmployeeEntries, 0, len(employees))}

	for _, emp := range employees {
		tz := emp.Location()
		start, end := timezone.LocalDayBounds(now, tz)

		entries, err := s.timeEntryRepo.ListForEmployeeBetween(ctx, emp.ID, start, end)
		if err != nil {
			return timeentry.TodayResponse{}, fmt.Errorf("failed to list today's entries for employee %s: %w", emp.ID, err)
		}

		responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
		for _, entry := range entries {
			responses = append(responses, toTimeEntryResponse(entry, emp.FullName, tz))
		}

		result.Employees = append(result.Employees, timeentry.TodayEmployeeEntries{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Timezone:     tz,
			LocalDate:    timezone.ToLocal(now, tz).Format("2006-01-02"),
			Entries:      responses,
		})
	}

	return result, nil
}

func (s *TimeClockServiceImpl) listActiveEmployees(ctx context.Context) ([]employee.Employee, error) {
	active := string(employee.StatusActive)
	filter := employee.EmployeeFilter{
		Status:    &active,
		Page:      1,
		Limit:     100,
		SortBy:    "full_name",
		SortOrder: "asc",
	}

	var all []employee.Employee
	for {
		page, total, err := s.employeeRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		all = append(all, page...)
		if len(page) == 0 || int64(len(all)) >= total {
			return all, nil
		}
		filter.Page++
	}
}

// Get implements timeentry.TimeClockService.
func (s *TimeClockServiceImpl) Get(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	entry, err := s.timeEntryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toJoinedResponse(entry), nil
}

// Update implements timeentry.TimeClockService.
func (s *TimeClockServiceImpl) Update(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	tz := timezone.DefaultTimezone
	if entry.EmployeeTimezone != nil && *entry.EmployeeTimezone != "" {
		tz = *entry.EmployeeTimezone
	}

	entry, err = applyEdit(entry, req, tz)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return toJoinedResponse(entry), nil
}

// Delete implements timeentry.TimeClockService.
func (s *TimeClockServiceImpl) Delete(ctx context.Context, id string) error {
	return s.timeEntryRepo.Delete(ctx, id)
}

// applyEdit rewrites an entry from an admin correction. Clock fields
// are wall-clock times in tz, anchored to the entry's original local
// check-in date; a corrected checkout earlier than the check-in rolls
// to the next local day (overnight shift). Total hours are always
// recomputed from the resulting UTC instants.
func applyEdit(entry timeentry.TimeEntry, req timeentry.UpdateTimeEntryRequest, tz string) (timeentry.TimeEntry, error) {
	anchor := entry.CheckInTime

	if req.CheckInClock != nil {
		clock, err := timezone.ParseClock(*req.CheckInClock)
		if err != nil {
			return entry, fmt.Errorf("invalid check_in_time: %w", err)
		}
		entry.CheckInTime = timezone.CombineDateAndClock(anchor, clock, tz, 0)
	}

	switch {
	case req.ClearCheckOut:
		entry.CheckOutTime = nil
		entry.Status = timeentry.StatusCheckedIn
		entry.TotalHours = nil

	case req.CheckOutClock != nil:
		clock, err := timezone.ParseClock(*req.CheckOutClock)
		if err != nil {
			return entry, fmt.Errorf("invalid check_out_time: %w", err)
		}
		checkOut := timezone.CombineDateAndClock(anchor, clock, tz, 0)
		if checkOut.Before(entry.CheckInTime) {
			checkOut = timezone.CombineDateAndClock(anchor, clock, tz, 1)
		}
		entry.CheckOutTime = &checkOut
		entry.Status = timeentry.StatusCheckedOut

	case entry.CheckOutTime != nil && entry.CheckOutTime.Before(entry.CheckInTime):
		// Only the check-in moved and it passed the existing checkout.
		rolled := entry.CheckOutTime.Add(24 * time.Hour)
		entry.CheckOutTime = &rolled
	}

	if entry.CheckOutTime != nil {
		hours := payoutsvc.ElapsedHours(entry.CheckInTime, *entry.CheckOutTime)
		entry.TotalHours = &hours
	}

	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	entry.IsEdited = true
	entry.EditReason = &req.EditReason

	return entry, nil
}

func toTimeEntryResponse(entry timeentry.TimeEntry, employeeName, tz string) timeentry.TimeEntryResponse {
	localIn := timezone.ToLocal(entry.CheckInTime, tz)

	resp := timeentry.TimeEntryResponse{
		ID:               entry.ID,
		EmployeeID:       entry.EmployeeID,
		EmployeeName:     employeeName,
		Timezone:         tz,
		CheckInTime:      entry.CheckInTime.UTC().Format(time.RFC3339),
		LocalCheckInTime: localIn.Format("15:04:05"),
		LocalDate:        localIn.Format("2006-01-02"),
		Status:           string(entry.Status),
		TotalHours:       entry.TotalHours,
		Notes:            entry.Notes,
		IsEdited:         entry.IsEdited,
		EditReason:       entry.EditReason,
		CreatedAt:        entry.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        entry.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if entry.CheckOutTime != nil {
		utcOut := entry.CheckOutTime.UTC().Format(time.RFC3339)
		localOut := timezone.ToLocal(*entry.CheckOutTime, tz).Format("15:04:05")
		resp.CheckOutTime = &utcOut
		resp.LocalCheckOutTime = &localOut
	}

	return resp
}

func toJoinedResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	name := ""
	if entry.EmployeeName != nil {
		name = *entry.EmployeeName
	}
	tz := timezone.DefaultTimezone
	if entry.EmployeeTimezone != nil && *entry.EmployeeTimezone != "" {
		tz = *entry.EmployeeTimezone
	}
	return toTimeEntryResponse(entry, name, tz)
}
