package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		PayScaleType: employee.PayScaleType(req.PayScaleType),
		Status:       employee.StatusActive,
		IsAdmin:      req.IsAdmin,
		Timezone:     req.Timezone,
	}
	if req.Status != "" {
		emp.Status = employee.Status(req.Status)
	}

	switch emp.PayScaleType {
	case employee.PayScaleTypeHourly:
		emp.HourlyRate = req.HourlyRate
	case employee.PayScaleTypeProject:
		emp.ProjectRate1Member = req.ProjectRate1Member
		emp.ProjectRate2Members = req.ProjectRate2Members
		emp.ProjectRate3Members = req.ProjectRate3Members
		emp.ProjectRate4Members = req.ProjectRate4Members
		emp.ProjectRate5Members = req.ProjectRate5Members
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.IsAdmin != nil {
		emp.IsAdmin = *req.IsAdmin
	}
	if req.Timezone != nil {
		emp.Timezone = *req.Timezone
	}

	if req.PayScaleType != nil && employee.PayScaleType(*req.PayScaleType) != emp.PayScaleType {
		// Switching pay structure drops the rates of the old one.
		emp.PayScaleType = employee.PayScaleType(*req.PayScaleType)
		emp.HourlyRate = nil
		emp.ProjectRate1Member = nil
		emp.ProjectRate2Members = nil
		emp.ProjectRate3Members = nil
		emp.ProjectRate4Members = nil
		emp.ProjectRate5Members = nil
	}

	switch emp.PayScaleType {
	case employee.PayScaleTypeHourly:
		if req.HourlyRate != nil {
			emp.HourlyRate = req.HourlyRate
		}
	case employee.PayScaleTypeProject:
		if req.ProjectRate1Member != nil {
			emp.ProjectRate1Member = req.ProjectRate1Member
		}
		if req.ProjectRate2Members != nil {
			emp.ProjectRate2Members = req.ProjectRate2Members
		}
		if req.ProjectRate3Members != nil {
			emp.ProjectRate3Members = req.ProjectRate3Members
		}
		if req.ProjectRate4Members != nil {
			emp.ProjectRate4Members = req.ProjectRate4Members
		}
		if req.ProjectRate5Members != nil {
			emp.ProjectRate5Members = req.ProjectRate5Members
		}
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                  emp.ID,
		FullName:            emp.FullName,
		Email:               emp.Email,
		PayScaleType:        string(emp.PayScaleType),
		HourlyRate:          emp.HourlyRate,
		ProjectRate1Member:  emp.ProjectRate1Member,
		ProjectRate2Members: emp.ProjectRate2Members,
		ProjectRate3Members: emp.ProjectRate3Members,
		ProjectRate4Members: emp.ProjectRate4Members,
		ProjectRate5Members: emp.ProjectRate5Members,
		Status:              string(emp.Status),
		IsAdmin:             emp.IsAdmin,
		Timezone:            emp.Location(),
		CreatedAt:           emp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           emp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
