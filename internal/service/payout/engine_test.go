package payout

import (
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func projectEmployee(id, name string) employee.Employee {
	return employee.Employee{
		ID:                  id,
		FullName:            name,
		PayScaleType:        employee.PayScaleTypeProject,
		ProjectRate1Member:  decPtr("30"),
		ProjectRate2Members: decPtr("20"),
		ProjectRate3Members: decPtr("15"),
		ProjectRate4Members: decPtr("12"),
		ProjectRate5Members: decPtr("10"),
		Status:              employee.StatusActive,
	}
}

func defaultBonusConfig() setting.BonusConfig {
	return setting.BonusConfig{
		FirstTimeBonusPercent: dec("30"),
		QuotedByBonusPercent:  dec("2"),
	}
}

func TestProjectRateSaturation(t *testing.T) {
	emp := projectEmployee("e1", "Alice")

	cases := []struct {
		collaborators int
		want          string
	}{
		{1, "30"},
		{2, "20"},
		{3, "15"},
		{4, "12"},
		{5, "10"},
		{6, "10"},
		{12, "10"},
	}
	for _, c := range cases {
		got := emp.ProjectRateFor(c.collaborators)
		assert.True(t, got.Equal(dec(c.want)),
			"rate for %d collaborators: got %s want %s", c.collaborators, got, c.want)
	}
}

func TestProjectRateMissingTierIsZero(t *testing.T) {
	emp := employee.Employee{
		ID:                 "e1",
		FullName:           "Alice",
		PayScaleType:       employee.PayScaleTypeProject,
		ProjectRate1Member: decPtr("30"),
	}
	assert.True(t, emp.ProjectRateFor(3).IsZero())
}

func TestProjectAmountRounding(t *testing.T) {
	// 1000.33 * 15% = 150.0495 -> 150.05, rounded only at the edge
	got := ProjectAmount(dec("1000.33"), dec("15"))
	assert.True(t, got.Equal(dec("150.05")), "got %s", got)
}

func TestHoursBetweenClockOvernight(t *testing.T) {
	got, err := HoursBetweenClock("22:00", "06:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("8")), "got %s", got)

	got, err = HoursBetweenClock("09:00", "17:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("8.5")), "got %s", got)

	// Same start and end is a zero-hour shift, not 24
	got, err = HoursBetweenClock("08:00", "08:00")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = HoursBetweenClock("late", "06:00")
	assert.Error(t, err)
}

func TestElapsedHours(t *testing.T) {
	in := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC)
	assert.True(t, ElapsedHours(in, out).Equal(dec("8.5")))

	// Never negative
	assert.True(t, ElapsedHours(out, in).IsZero())
}

func TestHourlyAmount(t *testing.T) {
	// $20/hr * 8.5h = $170.00
	got := HourlyAmount(dec("20"), dec("8.5"))
	assert.True(t, got.Equal(dec("170")), "got %s", got)
}

// Scenario: single assignee, not first time, no quoted-by.
func TestBuildProjectPayoutsSingleAssignee(t *testing.T) {
	emp := projectEmployee("e1", "Alice")

	rows, skipped := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("1000"),
		ProjectTitle:  "Acme Site",
		Collaborators: 1,
		Source:        payout.SourceAuto,
	}, []employee.Employee{emp}, defaultBonusConfig())

	require.Len(t, rows, 1)
	assert.Empty(t, skipped)
	assert.True(t, rows[0].Amount.Equal(dec("300")), "got %s", rows[0].Amount)
	assert.True(t, rows[0].Rate.Equal(dec("30")))
	assert.Equal(t, payout.CalculationTypeProject, rows[0].CalculationType)
	assert.Equal(t, "Alice", rows[0].EmployeeName)
}

// Scenario: two assignees, quoted-by is one of them, first_time project.
func TestBuildProjectPayoutsFirstTimeBonus(t *testing.T) {
	alice := projectEmployee("e1", "Alice")
	bob := projectEmployee("e2", "Bob")

	rows, skipped := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("1000"),
		ProjectTitle:  "Acme Site",
		Collaborators: 2,
		QuotedBy:      &alice,
		FirstTime:     true,
		Source:        payout.SourceAuto,
	}, []employee.Employee{alice, bob}, defaultBonusConfig())

	require.Len(t, rows, 3)
	assert.Empty(t, skipped)

	// Two base payouts at the 2-member rate
	for _, row := range rows[:2] {
		assert.True(t, row.Amount.Equal(dec("200")), "base amount %s", row.Amount)
		assert.True(t, row.Rate.Equal(dec("20")))
	}

	// One first-time bonus to Alice at 30% of $1000; no quoted-by line
	bonus := rows[2]
	assert.Equal(t, "e1", bonus.EmployeeID)
	assert.Equal(t, "Alice (First Time Bonus)", bonus.EmployeeName)
	assert.True(t, bonus.Amount.Equal(dec("300")), "bonus amount %s", bonus.Amount)
	assert.True(t, bonus.IsFirstTime)
	for _, row := range rows {
		assert.NotContains(t, row.EmployeeName, "Quoted By Bonus")
	}
}

func TestBuildProjectPayoutsQuotedByBonus(t *testing.T) {
	alice := projectEmployee("e1", "Alice")
	bob := projectEmployee("e2", "Bob")

	rows, _ := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("5000"),
		ProjectTitle:  "Retainer",
		Collaborators: 2,
		QuotedBy:      &bob,
		FirstTime:     false,
		Source:        payout.SourceManual,
	}, []employee.Employee{alice, bob}, defaultBonusConfig())

	require.Len(t, rows, 3)
	bonus := rows[2]
	assert.Equal(t, "Bob (Quoted By Bonus)", bonus.EmployeeName)
	// 2% of $5000
	assert.True(t, bonus.Amount.Equal(dec("100")), "bonus amount %s", bonus.Amount)
	assert.False(t, bonus.IsFirstTime)
	for _, row := range rows {
		assert.NotContains(t, row.EmployeeName, "First Time Bonus")
	}
}

// A quoted-by employee who is also an assignee gets two rows. The bonus
// row must not repeat the base row's (job_id, employee_id) pair or the
// unique index on auto payouts would reject the whole batch.
func TestBuildProjectPayoutsBonusRowCarriesNoJobID(t *testing.T) {
	alice := projectEmployee("e1", "Alice")
	bob := projectEmployee("e2", "Bob")
	jobID := "job-1042"

	rows, _ := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("1000"),
		ProjectTitle:  "Acme Site",
		Collaborators: 2,
		QuotedBy:      &alice,
		FirstTime:     false,
		Source:        payout.SourceAuto,
		JobID:         &jobID,
	}, []employee.Employee{alice, bob}, defaultBonusConfig())

	require.Len(t, rows, 3)
	for _, row := range rows[:2] {
		require.NotNil(t, row.JobID)
		assert.Equal(t, jobID, *row.JobID)
	}
	assert.Nil(t, rows[2].JobID)

	seen := map[string]bool{}
	for _, row := range rows {
		if row.JobID == nil {
			continue
		}
		key := *row.JobID + "/" + row.EmployeeID
		assert.False(t, seen[key], "duplicate job/employee pair %s", key)
		seen[key] = true
	}
}

func TestBuildProjectPayoutsSkipsZeroRate(t *testing.T) {
	alice := projectEmployee("e1", "Alice")
	noRate := employee.Employee{
		ID:           "e2",
		FullName:     "Bob",
		PayScaleType: employee.PayScaleTypeProject,
		Status:       employee.StatusActive,
	}

	rows, skipped := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("1000"),
		ProjectTitle:  "Acme Site",
		Collaborators: 2,
		Source:        payout.SourceAuto,
	}, []employee.Employee{alice, noRate}, defaultBonusConfig())

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Bob"}, skipped)
}

func TestBuildProjectPayoutsNoBaseMeansNoBonus(t *testing.T) {
	noRate := employee.Employee{
		ID:           "e1",
		FullName:     "Alice",
		PayScaleType: employee.PayScaleTypeProject,
	}

	rows, skipped := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("1000"),
		ProjectTitle:  "Acme Site",
		Collaborators: 1,
		QuotedBy:      &noRate,
		FirstTime:     true,
		Source:        payout.SourceAuto,
	}, []employee.Employee{noRate}, defaultBonusConfig())

	assert.Empty(t, rows)
	assert.Equal(t, []string{"Alice"}, skipped)
}

func TestBuildProjectPayoutsBonusUsesConfiguredPercent(t *testing.T) {
	alice := projectEmployee("e1", "Alice")

	cfg := setting.BonusConfig{
		FirstTimeBonusPercent: dec("45"),
		QuotedByBonusPercent:  dec("3.5"),
	}

	rows, _ := BuildProjectPayouts(ProjectInput{
		ProjectValue:  dec("2000"),
		ProjectTitle:  "Custom",
		Collaborators: 1,
		QuotedBy:      &alice,
		FirstTime:     false,
		Source:        payout.SourceAuto,
	}, []employee.Employee{alice}, cfg)

	require.Len(t, rows, 2)
	assert.True(t, rows[1].Amount.Equal(dec("70")), "got %s", rows[1].Amount)
	assert.True(t, rows[1].Rate.Equal(dec("3.5")))
}
