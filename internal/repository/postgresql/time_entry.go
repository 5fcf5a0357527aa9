package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	t.id, t.employee_id, t.check_in_time, t.check_out_time, t.status,
	t.total_hours, t.notes, t.timezone_offset, t.is_edited, t.edit_reason,
	t.created_at, t.updated_at,
	e.full_name, e.timezone
`

const timeEntryJoin = ` FROM time_entries t JOIN employees e ON e.id = t.employee_id `

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var entry timeentry.TimeEntry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.CheckInTime, &entry.CheckOutTime, &entry.Status,
		&entry.TotalHours, &entry.Notes, &entry.TimezoneOffsetMinutes, &entry.IsEdited, &entry.EditReason,
		&entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName, &entry.EmployeeTimezone,
	)
	return entry, err
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO time_entries (
			id, employee_id, check_in_time, check_out_time, status,
			total_hours, notes, timezone_offset, is_edited, edit_reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.CheckInTime, entry.CheckOutTime, entry.Status,
		entry.TotalHours, entry.Notes, entry.TimezoneOffsetMinutes, entry.IsEdited, entry.EditReason,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		// The partial unique index on open entries turns the check-in
		// race into a constraint violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.TimeEntry{}, timeentry.ErrAlreadyCheckedIn
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + timeEntryJoin + ` WHERE t.id = $1`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

// GetOpenByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + timeEntryJoin + `
		WHERE t.employee_id = $1
		  AND t.status = $2
		ORDER BY t.check_in_time DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID, timeentry.StatusCheckedIn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrNotCheckedIn
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}

	return entry, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries SET
			check_in_time = $2,
			check_out_time = $3,
			status = $4,
			total_hours = $5,
			notes = $6,
			is_edited = $7,
			edit_reason = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID, entry.CheckInTime, entry.CheckOutTime, entry.Status,
		entry.TotalHours, entry.Notes, entry.IsEdited, entry.EditReason,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// Delete implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("t.check_in_time >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("t.check_in_time < ($%d::date + INTERVAL '1 day')", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*)" + timeEntryJoin + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY t.%s %s LIMIT $%d OFFSET $%d",
		timeEntryColumns, timeEntryJoin, whereClause, filter.SortBy, sortOrder, argPos, argPos+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, total, rows.Err()
}

// ListForEmployeeBetween implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListForEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + timeEntryJoin + `
		WHERE t.employee_id = $1
		  AND t.check_in_time >= $2
		  AND t.check_in_time < $3
		ORDER BY t.check_in_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries in range: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetCompletedByIDs implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetCompletedByIDs(ctx context.Context, ids []string) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + timeEntryColumns + timeEntryJoin + `
		WHERE t.id = ANY($1)
		  AND t.status = $2
		ORDER BY t.check_in_time ASC
	`

	rows, err := q.Query(ctx, query, ids, timeentry.StatusCheckedOut)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
