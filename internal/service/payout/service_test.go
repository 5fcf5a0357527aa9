package payout

import (
	"context"
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stubs embed their interface so only the methods ProcessWebhook
// touches need bodies; anything else panics and fails the test.

type stubPayoutRepo struct {
	payout.PayoutRepository

	existing     []payout.Payout
	created      []payout.Payout
	jobIDLookups int
}

func (s *stubPayoutRepo) GetAutoByJobID(_ context.Context, _ string, _ []string) ([]payout.Payout, error) {
	s.jobIDLookups++
	return s.existing, nil
}

func (s *stubPayoutRepo) CreateBatch(_ context.Context, rows []payout.Payout) ([]payout.Payout, error) {
	s.created = rows
	return rows, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository

	active []employee.Employee
}

func (s *stubEmployeeRepo) GetActiveProjectByNames(_ context.Context, _ []string) ([]employee.Employee, error) {
	return s.active, nil
}

func (s *stubEmployeeRepo) GetByFullName(_ context.Context, name string) (employee.Employee, error) {
	for _, emp := range s.active {
		if emp.FullName == name {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubSettingService struct {
	setting.SettingService
}

func (s *stubSettingService) LoadBonusConfig(_ context.Context) (setting.BonusConfig, error) {
	return defaultBonusConfig(), nil
}

func newWebhookService(payoutRepo *stubPayoutRepo, employeeRepo *stubEmployeeRepo) payout.PayoutService {
	return NewPayoutService(nil, payoutRepo, employeeRepo, nil, &stubSettingService{})
}

func TestProcessWebhookEmptyJobIDMeansNoDedup(t *testing.T) {
	payoutRepo := &stubPayoutRepo{}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{projectEmployee("e1", "Alice")}}
	svc := newWebhookService(payoutRepo, employeeRepo)

	empty := ""
	_, err := svc.ProcessWebhook(context.Background(), payout.WebhookRequest{
		ProjectValue:      dec("1000"),
		ProjectTitle:      "Acme Site",
		EmployeesAssigned: []string{"Alice"},
		JobID:             &empty,
	})
	require.NoError(t, err)

	// No existence check, and nothing stored with a '' job id that the
	// unique index would treat as a real value.
	assert.Zero(t, payoutRepo.jobIDLookups)
	require.NotEmpty(t, payoutRepo.created)
	for _, row := range payoutRepo.created {
		assert.Nil(t, row.JobID)
	}
}

func TestProcessWebhookJobIDReachesBaseRows(t *testing.T) {
	payoutRepo := &stubPayoutRepo{}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{projectEmployee("e1", "Alice")}}
	svc := newWebhookService(payoutRepo, employeeRepo)

	jobID := "job-7"
	_, err := svc.ProcessWebhook(context.Background(), payout.WebhookRequest{
		ProjectValue:      dec("1000"),
		ProjectTitle:      "Acme Site",
		EmployeesAssigned: []string{"Alice"},
		JobID:             &jobID,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, payoutRepo.jobIDLookups)
	require.Len(t, payoutRepo.created, 1)
	require.NotNil(t, payoutRepo.created[0].JobID)
	assert.Equal(t, jobID, *payoutRepo.created[0].JobID)
}

func TestProcessWebhookDuplicateJobID(t *testing.T) {
	jobID := "job-7"
	payoutRepo := &stubPayoutRepo{
		existing: []payout.Payout{{ID: "p1", EmployeeID: "e1", JobID: &jobID}},
	}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{projectEmployee("e1", "Alice")}}
	svc := newWebhookService(payoutRepo, employeeRepo)

	_, err := svc.ProcessWebhook(context.Background(), payout.WebhookRequest{
		ProjectValue:      dec("1000"),
		ProjectTitle:      "Acme Site",
		EmployeesAssigned: []string{"Alice"},
		JobID:             &jobID,
	})

	var dup *payout.DuplicateJobError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, jobID, dup.JobID)
	assert.Len(t, dup.Existing, 1)
	assert.Empty(t, payoutRepo.created)
}
