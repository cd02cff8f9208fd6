package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	employeeerrors "staffcore/internal/employee/errors"
	"staffcore/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	salary, err := parseSalary(req.Salary)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	contractType := req.ContractType
	if contractType == "" {
		contractType = ContractFullTime
	}

	emp := &Employee{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Salary:       salary,
		HireDate:     hireDate,
		ContractType: contractType,
		IsActive:     true,
	}

	if emp.PositionID, err = parseOptionalID(req.PositionID); err != nil {
		return EmployeeResponse{}, err
	}
	if emp.DepartmentID, err = parseOptionalID(req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	empID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return EmployeeResponse{}, err
	}

	emp.FullName = strings.TrimSpace(req.FullName)
	emp.Email = strings.ToLower(strings.TrimSpace(req.Email))
	emp.Salary = salary
	if req.ContractType != "" {
		emp.ContractType = req.ContractType
	}
	if emp.PositionID, err = parseOptionalID(req.PositionID); err != nil {
		return EmployeeResponse{}, err
	}
	if emp.DepartmentID, err = parseOptionalID(req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	empID, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	return mapRepositoryError(s.repo.Deactivate(ctx, empID))
}

func parseSalary(v string) (decimal.Decimal, error) {
	salary, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || salary.IsNegative() || salary.Exponent() < -2 {
		return decimal.Zero, employeeerrors.ErrInvalidSalary
	}
	return salary, nil
}

func parseOptionalID(v *string) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, apperror.InvalidField("Reference ID")
	}
	return &id, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == apperror.CodeNotFound {
		return employeeerrors.ErrEmployeeNotFound
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		CompanyID:    e.CompanyID.String(),
		FullName:     e.FullName,
		Email:        e.Email,
		Salary:       e.Salary.StringFixed(2),
		HireDate:     e.HireDate.Format("2006-01-02"),
		ContractType: e.ContractType,
		IsActive:     e.IsActive,
	}
	if e.PositionID != nil {
		v := e.PositionID.String()
		resp.PositionID = &v
	}
	if e.DepartmentID != nil {
		v := e.DepartmentID.String()
		resp.DepartmentID = &v
	}
	return resp
}
