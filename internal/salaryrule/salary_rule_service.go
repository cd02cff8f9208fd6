package salaryrule

import (
	"context"
	"strings"

	salaryruleerrors "staffcore/internal/salaryrule/errors"
	"staffcore/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateSalaryRuleRequest) (SalaryRuleResponse, error)
	GetAll(ctx context.Context) ([]SalaryRuleResponse, error)
	GetByID(ctx context.Context, id string) (SalaryRuleResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryRuleRequest) (SalaryRuleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRuleRequest) (SalaryRuleResponse, error) {
	rule, employeeIDs, err := buildRule(req.Name, req.RuleType, req.Amount, req.Percentage, req.IsGlobal, req.EmployeeIDs, req.Description)
	if err != nil {
		return SalaryRuleResponse{}, err
	}
	rule.ID = uuid.New()

	if err := s.repo.Create(ctx, rule); err != nil {
		return SalaryRuleResponse{}, err
	}
	if !rule.IsGlobal {
		if err := s.repo.ReplaceAssignments(ctx, rule.ID, employeeIDs); err != nil {
			return SalaryRuleResponse{}, err
		}
	}

	return mapToResponse(*rule, employeeIDs), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryRuleResponse, error) {
	rules, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]SalaryRuleResponse, len(rules))
	for i, r := range rules {
		res[i] = mapToResponse(r, assignmentIDs(r))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryRuleResponse, error) {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return SalaryRuleResponse{}, apperror.InvalidField("Rule ID")
	}

	rule, err := s.repo.FindByID(ctx, ruleID)
	if err != nil {
		return SalaryRuleResponse{}, mapNotFound(err)
	}
	return mapToResponse(*rule, assignmentIDs(*rule)), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSalaryRuleRequest) (SalaryRuleResponse, error) {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return SalaryRuleResponse{}, apperror.InvalidField("Rule ID")
	}

	existing, err := s.repo.FindByID(ctx, ruleID)
	if err != nil {
		return SalaryRuleResponse{}, mapNotFound(err)
	}

	rule, employeeIDs, err := buildRule(req.Name, req.RuleType, req.Amount, req.Percentage, req.IsGlobal, req.EmployeeIDs, req.Description)
	if err != nil {
		return SalaryRuleResponse{}, err
	}
	rule.ID = existing.ID
	rule.CompanyID = existing.CompanyID
	rule.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, rule); err != nil {
		return SalaryRuleResponse{}, mapNotFound(err)
	}
	if err := s.repo.ReplaceAssignments(ctx, rule.ID, employeeIDs); err != nil {
		return SalaryRuleResponse{}, err
	}

	return mapToResponse(*rule, employeeIDs), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Rule ID")
	}
	return mapNotFound(s.repo.Delete(ctx, ruleID))
}

func buildRule(
	name, ruleType string,
	amount, percentage *string,
	isGlobal *bool,
	employeeIDs []string,
	description string,
) (*SalaryRule, []uuid.UUID, error) {
	if ruleType != RuleAllowance && ruleType != RuleDeduction {
		return nil, nil, salaryruleerrors.ErrInvalidRuleType
	}
	if amount != nil && percentage != nil {
		return nil, nil, salaryruleerrors.ErrAmountAndPercentage
	}

	rule := &SalaryRule{
		Name:        strings.TrimSpace(name),
		RuleType:    ruleType,
		IsGlobal:    true,
		Description: description,
	}
	if isGlobal != nil {
		rule.IsGlobal = *isGlobal
	}

	if amount != nil {
		v, err := decimal.NewFromString(*amount)
		if err != nil || v.IsNegative() || v.Exponent() < -2 {
			return nil, nil, salaryruleerrors.ErrInvalidAmount
		}
		rule.Amount = &v
	}
	if percentage != nil {
		v, err := decimal.NewFromString(*percentage)
		if err != nil || v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
			return nil, nil, salaryruleerrors.ErrInvalidPercentage
		}
		rule.Percentage = &v
	}

	ids := make([]uuid.UUID, 0, len(employeeIDs))
	for _, raw := range employeeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, apperror.InvalidField("Employee ID")
		}
		ids = append(ids, id)
	}
	if rule.IsGlobal {
		// Rule global tidak menyimpan assignment
		ids = nil
	}

	return rule, ids, nil
}

func assignmentIDs(r SalaryRule) []uuid.UUID {
	ids := make([]uuid.UUID, len(r.Assignments))
	for i, a := range r.Assignments {
		ids[i] = a.EmployeeID
	}
	return ids
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	httpErr := apperror.ToHTTP(err)
	if httpErr.Code == apperror.CodeNotFound {
		return salaryruleerrors.ErrRuleNotFound
	}
	return err
}

func mapToResponse(r SalaryRule, employeeIDs []uuid.UUID) SalaryRuleResponse {
	resp := SalaryRuleResponse{
		ID:          r.ID.String(),
		CompanyID:   r.CompanyID.String(),
		Name:        r.Name,
		RuleType:    r.RuleType,
		IsGlobal:    r.IsGlobal,
		Description: r.Description,
	}
	if r.Amount != nil {
		v := r.Amount.StringFixed(2)
		resp.Amount = &v
	}
	if r.Percentage != nil {
		v := r.Percentage.String()
		resp.Percentage = &v
	}
	for _, id := range employeeIDs {
		resp.EmployeeIDs = append(resp.EmployeeIDs, id.String())
	}
	return resp
}
