package timeentry

import "errors"

// Time clock domain errors
var (
	ErrAlreadyCheckedIn = errors.New("employee already has an open check-in")
	ErrNotCheckedIn     = errors.New("employee has no open check-in")
	ErrEntryNotFound    = errors.New("time entry not found")
)
