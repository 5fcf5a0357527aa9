package payout

import (
	"errors"
	"fmt"
)

// Payout domain errors
var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrNoMatchingEmployees = errors.New("no matching project-based employees found")
	ErrNoPayoutsCalculated = errors.New("no payouts could be calculated")
	ErrDuplicatePayout     = errors.New("duplicate payouts")
	ErrPayoutNotFound      = errors.New("payout not found")
)

// DuplicateJobError reports a webhook submission whose job_id already
// produced payouts for one of the target employees. It matches
// ErrDuplicatePayout under errors.Is and carries the existing rows so
// the caller can treat the job as already processed.
type DuplicateJobError struct {
	JobID    string
	Existing []Payout
}

func (e *DuplicateJobError) Error() string {
	return fmt.Sprintf("payouts already exist for job %s", e.JobID)
}

func (e *DuplicateJobError) Is(target error) bool {
	return target == ErrDuplicatePayout
}
