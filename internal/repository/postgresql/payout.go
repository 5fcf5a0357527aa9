package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payoutRepository struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepository{db: db}
}

const payoutColumns = `
	id, employee_id, employee_name, calculation_type, amount, rate,
	project_value, collaborators_count, project_title,
	quoted_by_id, quoted_by_name, is_first_time,
	hours_worked, clock_in_time, clock_out_time,
	is_edited, edit_reason, source, job_id,
	created_at, updated_at
`

func scanPayout(row pgx.Row) (payout.Payout, error) {
	var p payout.Payout
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.EmployeeName, &p.CalculationType, &p.Amount, &p.Rate,
		&p.ProjectValue, &p.CollaboratorsCount, &p.ProjectTitle,
		&p.QuotedByID, &p.QuotedByName, &p.IsFirstTime,
		&p.HoursWorked, &p.ClockInTime, &p.ClockOutTime,
		&p.IsEdited, &p.EditReason, &p.Source, &p.JobID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

const insertPayoutQuery = `
	INSERT INTO payouts (
		id, employee_id, employee_name, calculation_type, amount, rate,
		project_value, collaborators_count, project_title,
		quoted_by_id, quoted_by_name, is_first_time,
		hours_worked, clock_in_time, clock_out_time,
		is_edited, edit_reason, source, job_id
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
	) RETURNING created_at, updated_at
`

func insertPayout(ctx context.Context, q database.Querier, p *payout.Payout) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	return q.QueryRow(ctx, insertPayoutQuery,
		p.ID, p.EmployeeID, p.EmployeeName, p.CalculationType, p.Amount, p.Rate,
		p.ProjectValue, p.CollaboratorsCount, p.ProjectTitle,
		p.QuotedByID, p.QuotedByName, p.IsFirstTime,
		p.HoursWorked, p.ClockInTime, p.ClockOutTime,
		p.IsEdited, p.EditReason, p.Source, p.JobID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Create implements payout.PayoutRepository.
func (r *payoutRepository) Create(ctx context.Context, p payout.Payout) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	if err := insertPayout(ctx, q, &p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payout.Payout{}, payout.ErrDuplicatePayout
		}
		return payout.Payout{}, fmt.Errorf("failed to create payout: %w", err)
	}

	return p, nil
}

// CreateBatch implements payout.PayoutRepository.
func (r *payoutRepository) CreateBatch(ctx context.Context, payouts []payout.Payout) ([]payout.Payout, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for i := range payouts {
			if err := insertPayout(txCtx, q, &payouts[i]); err != nil {
				// The unique index on (job_id, employee_id) closes the
				// read-then-insert race between concurrent webhook calls.
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return payout.ErrDuplicatePayout
				}
				return fmt.Errorf("failed to insert payout: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payouts, nil
}

// GetByID implements payout.PayoutRepository.
func (r *payoutRepository) GetByID(ctx context.Context, id string) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`

	p, err := scanPayout(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payout.Payout{}, payout.ErrPayoutNotFound
		}
		return payout.Payout{}, fmt.Errorf("failed to get payout: %w", err)
	}

	return p, nil
}

// GetAutoByJobID implements payout.PayoutRepository.
func (r *payoutRepository) GetAutoByJobID(ctx context.Context, jobID string, employeeIDs []string) ([]payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payoutColumns + `
		FROM payouts
		WHERE job_id = $1
		  AND source = $2
		  AND employee_id = ANY($3)
	`

	rows, err := q.Query(ctx, query, jobID, payout.SourceAuto, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payouts by job id: %w", err)
	}
	defer rows.Close()

	var payouts []payout.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}

	return payouts, rows.Err()
}

// List implements payout.PayoutRepository.
func (r *payoutRepository) List(ctx context.Context, filter payout.PayoutFilter) ([]payout.Payout, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.CalculationType != nil {
		conditions = append(conditions, fmt.Sprintf("calculation_type = $%d", argPos))
		args = append(args, *filter.CalculationType)
		argPos++
	}
	if filter.Source != nil {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argPos))
		args = append(args, *filter.Source)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("created_at < ($%d::date + INTERVAL '1 day')", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payouts " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(
		"SELECT %s FROM payouts %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		payoutColumns, whereClause, filter.SortBy, sortOrder, argPos, argPos+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payouts: %w", err)
	}
	defer rows.Close()

	var payouts []payout.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}

	return payouts, total, rows.Err()
}

// Update implements payout.PayoutRepository.
func (r *payoutRepository) Update(ctx context.Context, p payout.Payout) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payouts SET
			amount = $2,
			rate = $3,
			project_value = $4,
			project_title = $5,
			hours_worked = $6,
			is_edited = $7,
			edit_reason = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.Amount, p.Rate, p.ProjectValue, p.ProjectTitle,
		p.HoursWorked, p.IsEdited, p.EditReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update payout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payout.ErrPayoutNotFound
	}

	return nil
}

// Delete implements payout.PayoutRepository.
func (r *payoutRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payout.ErrPayoutNotFound
	}

	return nil
}
