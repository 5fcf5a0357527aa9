package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, email, pay_scale_type, hourly_rate,
	project_rate_1_member, project_rate_2_members, project_rate_3_members,
	project_rate_4_members, project_rate_5_members,
	status, is_admin, timezone, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.PayScaleType, &emp.HourlyRate,
		&emp.ProjectRate1Member, &emp.ProjectRate2Members, &emp.ProjectRate3Members,
		&emp.ProjectRate4Members, &emp.ProjectRate5Members,
		&emp.Status, &emp.IsAdmin, &emp.Timezone, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, full_name, email, pay_scale_type, hourly_rate,
			project_rate_1_member, project_rate_2_members, project_rate_3_members,
			project_rate_4_members, project_rate_5_members,
			status, is_admin, timezone
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.PayScaleType, emp.HourlyRate,
		emp.ProjectRate1Member, emp.ProjectRate2Members, emp.ProjectRate3Members,
		emp.ProjectRate4Members, emp.ProjectRate5Members,
		emp.Status, emp.IsAdmin, emp.Timezone,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// GetActiveProjectByNames implements employee.EmployeeRepository.
func (r *employeeRepository) GetActiveProjectByNames(ctx context.Context, names []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(name)))
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE LOWER(full_name) = ANY($1)
		  AND pay_scale_type = $2
		  AND status = $3
	`

	rows, err := q.Query(ctx, query, lowered, employee.PayScaleTypeProject, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by names: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// GetByFullName implements employee.EmployeeRepository.
func (r *employeeRepository) GetByFullName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE LOWER(full_name) = LOWER($1)
		LIMIT 1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, strings.TrimSpace(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}
	if filter.PayScaleType != nil {
		conditions = append(conditions, fmt.Sprintf("pay_scale_type = $%d", argPos))
		args = append(args, *filter.PayScaleType)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(
		"SELECT %s FROM employees %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		employeeColumns, whereClause, filter.SortBy, sortOrder, argPos, argPos+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2,
			email = $3,
			pay_scale_type = $4,
			hourly_rate = $5,
			project_rate_1_member = $6,
			project_rate_2_members = $7,
			project_rate_3_members = $8,
			project_rate_4_members = $9,
			project_rate_5_members = $10,
			status = $11,
			is_admin = $12,
			timezone = $13,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.PayScaleType, emp.HourlyRate,
		emp.ProjectRate1Member, emp.ProjectRate2Members, emp.ProjectRate3Members,
		emp.ProjectRate4Members, emp.ProjectRate5Members,
		emp.Status, emp.IsAdmin, emp.Timezone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
