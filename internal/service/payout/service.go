package payout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayoutServiceImpl struct {
	db             *database.DB
	payoutRepo     payout.PayoutRepository
	employeeRepo   employee.EmployeeRepository
	timeEntryRepo  timeentry.TimeEntryRepository
	settingService setting.SettingService
}

func NewPayoutService(
	db *database.DB,
	payoutRepo payout.PayoutRepository,
	employeeRepo employee.EmployeeRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	settingService setting.SettingService,
) payout.PayoutService {
	return &PayoutServiceImpl{
		db:             db,
		payoutRepo:     payoutRepo,
		employeeRepo:   employeeRepo,
		timeEntryRepo:  timeEntryRepo,
		settingService: settingService,
	}
}

// ProcessWebhook implements payout.PayoutService.
func (s *PayoutServiceImpl) ProcessWebhook(ctx context.Context, req payout.WebhookRequest) (payout.WebhookResult, error) {
	if err := req.Validate(); err != nil {
		return payout.WebhookResult{}, err
	}

	// An empty job id means the same as an omitted one: no dedup. It
	// must not reach the rows either, or it would be stored as '' and
	// collide under the unique index on later calls.
	if req.JobID != nil && *req.JobID == "" {
		req.JobID = nil
	}

	employees, err := s.employeeRepo.GetActiveProjectByNames(ctx, req.EmployeesAssigned)
	if err != nil {
		return payout.WebhookResult{}, fmt.Errorf("failed to resolve assigned employees: %w", err)
	}
	if len(employees) == 0 {
		return payout.WebhookResult{}, payout.ErrNoMatchingEmployees
	}

	// Quoted-by resolution degrades gracefully: an unknown name just
	// means no bonus line.
	var quotedBy *employee.Employee
	if req.QuotedByName != "" {
		emp, err := s.employeeRepo.GetByFullName(ctx, req.QuotedByName)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return payout.WebhookResult{}, fmt.Errorf("failed to resolve quoted-by employee: %w", err)
		}
		if err == nil {
			quotedBy = &emp
		}
	}

	// Duplicate guard, only when the caller supplied a job id. An
	// omitted job id is the documented no-dedup mode.
	if req.JobID != nil {
		targetIDs := make([]string, 0, len(employees)+1)
		for _, emp := range employees {
			targetIDs = append(targetIDs, emp.ID)
		}
		if quotedBy != nil {
			targetIDs = append(targetIDs, quotedBy.ID)
		}

		existing, err := s.payoutRepo.GetAutoByJobID(ctx, *req.JobID, targetIDs)
		if err != nil {
			return payout.WebhookResult{}, fmt.Errorf("failed to check for duplicate job: %w", err)
		}
		if len(existing) > 0 {
			return payout.WebhookResult{}, &payout.DuplicateJobError{JobID: *req.JobID, Existing: existing}
		}
	}

	// Bonus percentages are read fresh on every computation.
	cfg, err := s.settingService.LoadBonusConfig(ctx)
	if err != nil {
		return payout.WebhookResult{}, fmt.Errorf("failed to load bonus settings: %w", err)
	}

	rows, skipped := BuildProjectPayouts(ProjectInput{
		ProjectValue:  req.ProjectValue,
		ProjectTitle:  req.ProjectTitle,
		Collaborators: len(req.EmployeesAssigned),
		QuotedBy:      quotedBy,
		FirstTime:     req.FirstTime,
		Source:        payout.SourceAuto,
		JobID:         req.JobID,
	}, employees, cfg)

	if len(rows) == 0 {
		return payout.WebhookResult{}, payout.ErrNoPayoutsCalculated
	}

	created, err := s.payoutRepo.CreateBatch(ctx, rows)
	if err != nil {
		if errors.Is(err, payout.ErrDuplicatePayout) && req.JobID != nil {
			// Lost the race against a concurrent call with the same job id.
			return payout.WebhookResult{}, &payout.DuplicateJobError{JobID: *req.JobID}
		}
		return payout.WebhookResult{}, fmt.Errorf("failed to create payouts: %w", err)
	}

	responses := make([]payout.PayoutResponse, 0, len(created))
	for _, p := range created {
		responses = append(responses, p.ToResponse())
	}

	return payout.WebhookResult{
		Message: fmt.Sprintf("Created %d payout(s) for project %q", len(created), req.ProjectTitle),
		Payouts: responses,
		Skipped: skipped,
	}, nil
}

// CreateManual implements payout.PayoutService.
func (s *PayoutServiceImpl) CreateManual(ctx context.Context, req payout.CreateManualPayoutRequest) ([]payout.PayoutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	switch payout.CalculationType(req.CalculationType) {
	case payout.CalculationTypeProject:
		return s.createManualProject(ctx, req, emp)
	case payout.CalculationTypeHourly:
		return s.createManualHourly(ctx, req, emp)
	}

	return nil, payout.ErrMissingFields
}

func (s *PayoutServiceImpl) createManualProject(ctx context.Context, req payout.CreateManualPayoutRequest, emp employee.Employee) ([]payout.PayoutResponse, error) {
	var quotedBy *employee.Employee
	if req.QuotedByID != nil && *req.QuotedByID != "" {
		q, err := s.employeeRepo.GetByID(ctx, *req.QuotedByID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("failed to resolve quoted-by employee: %w", err)
		}
		if err == nil {
			quotedBy = &q
		}
	}

	cfg, err := s.settingService.LoadBonusConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bonus settings: %w", err)
	}

	rows, _ := BuildProjectPayouts(ProjectInput{
		ProjectValue:  *req.ProjectValue,
		ProjectTitle:  *req.ProjectTitle,
		Collaborators: *req.CollaboratorsCount,
		QuotedBy:      quotedBy,
		FirstTime:     req.IsFirstTime,
		Source:        payout.SourceManual,
	}, []employee.Employee{emp}, cfg)

	if len(rows) == 0 {
		return nil, payout.ErrNoPayoutsCalculated
	}

	created, err := s.payoutRepo.CreateBatch(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create payouts: %w", err)
	}

	responses := make([]payout.PayoutResponse, 0, len(created))
	for _, p := range created {
		responses = append(responses, p.ToResponse())
	}
	return responses, nil
}

func (s *PayoutServiceImpl) createManualHourly(ctx context.Context, req payout.CreateManualPayoutRequest, emp employee.Employee) ([]payout.PayoutResponse, error) {
	if emp.PayScaleType != employee.PayScaleTypeHourly || emp.HourlyRate == nil {
		return nil, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee is not on an hourly pay scale",
		}}
	}

	var hours decimal.Decimal
	var clockIn, clockOut *time.Time

	switch {
	case req.HoursWorked != nil:
		hours = *req.HoursWorked

	case req.StartClock != nil && req.EndClock != nil:
		h, err := HoursBetweenClock(*req.StartClock, *req.EndClock)
		if err != nil {
			return nil, validator.ValidationErrors{{
				Field:   "start_time",
				Message: err.Error(),
			}}
		}
		hours = h

	case len(req.TimeEntryIDs) > 0:
		entries, err := s.timeEntryRepo.GetCompletedByIDs(ctx, req.TimeEntryIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load time entries: %w", err)
		}
		if len(entries) == 0 {
			return nil, payout.ErrNoPayoutsCalculated
		}
		for _, entry := range entries {
			if entry.TotalHours != nil {
				hours = hours.Add(*entry.TotalHours)
			}
		}
		// Audit copy of the session boundaries when a single session
		// backs the payout.
		if len(entries) == 1 {
			in := entries[0].CheckInTime
			clockIn = &in
			clockOut = entries[0].CheckOutTime
		}
	}

	if hours.IsZero() {
		return nil, payout.ErrNoPayoutsCalculated
	}

	p := payout.Payout{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		CalculationType: payout.CalculationTypeHourly,
		Amount:          HourlyAmount(*emp.HourlyRate, hours),
		Rate:            *emp.HourlyRate,
		HoursWorked:     &hours,
		ClockInTime:     clockIn,
		ClockOutTime:    clockOut,
		Source:          payout.SourceManual,
	}

	created, err := s.payoutRepo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	return []payout.PayoutResponse{created.ToResponse()}, nil
}

// List implements payout.PayoutService.
func (s *PayoutServiceImpl) List(ctx context.Context, filter payout.PayoutFilter) (payout.ListPayoutsResponse, error) {
	if err := filter.Validate(); err != nil {
		return payout.ListPayoutsResponse{}, err
	}

	payouts, total, err := s.payoutRepo.List(ctx, filter)
	if err != nil {
		return payout.ListPayoutsResponse{}, fmt.Errorf("failed to list payouts: %w", err)
	}

	responses := make([]payout.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		responses = append(responses, p.ToResponse())
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return payout.ListPayoutsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Payouts:    responses,
	}, nil
}

// Get implements payout.PayoutService.
func (s *PayoutServiceImpl) Get(ctx context.Context, id string) (payout.PayoutResponse, error) {
	p, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return payout.PayoutResponse{}, err
	}
	return p.ToResponse(), nil
}

// Update implements payout.PayoutService.
func (s *PayoutServiceImpl) Update(ctx context.Context, req payout.UpdatePayoutRequest) (payout.PayoutResponse, error) {
	if err := req.Validate(); err != nil {
		return payout.PayoutResponse{}, err
	}

	p, err := s.payoutRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payout.PayoutResponse{}, err
	}

	recompute := false
	if req.Rate != nil {
		p.Rate = *req.Rate
		recompute = true
	}
	if req.ProjectValue != nil {
		p.ProjectValue = req.ProjectValue
		recompute = true
	}
	if req.HoursWorked != nil {
		p.HoursWorked = req.HoursWorked
		recompute = true
	}
	if req.ProjectTitle != nil {
		p.ProjectTitle = req.ProjectTitle
	}

	switch {
	case req.Amount != nil:
		// An explicit amount always wins over recomputation.
		p.Amount = *req.Amount
	case recompute && p.CalculationType == payout.CalculationTypeProject && p.ProjectValue != nil:
		p.Amount = ProjectAmount(*p.ProjectValue, p.Rate)
	case recompute && p.CalculationType == payout.CalculationTypeHourly && p.HoursWorked != nil:
		p.Amount = HourlyAmount(p.Rate, *p.HoursWorked)
	}

	p.IsEdited = true
	p.EditReason = &req.EditReason

	if err := s.payoutRepo.Update(ctx, p); err != nil {
		return payout.PayoutResponse{}, err
	}

	return p.ToResponse(), nil
}

// Delete implements payout.PayoutService.
func (s *PayoutServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payoutRepo.Delete(ctx, id)
}
