package salaryrule

import (
	"context"

	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rule *SalaryRule) error
	FindAll(ctx context.Context) ([]SalaryRule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SalaryRule, error)
	FindApplicable(ctx context.Context, employeeID uuid.UUID) ([]SalaryRule, error)
	Update(ctx context.Context, rule *SalaryRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAssignments(ctx context.Context, ruleID uuid.UUID, employeeIDs []uuid.UUID) error
}

type repository struct {
	store *tenant.Store[SalaryRule]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: tenant.NewStore[SalaryRule](db)}
}

func (r *repository) Create(ctx context.Context, rule *SalaryRule) error {
	return r.store.Create(ctx, rule)
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryRule, error) {
	var rules []SalaryRule
	err := r.store.Query(ctx).
		Order("name ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*SalaryRule, error) {
	return r.store.Get(ctx, id)
}

// FindApplicable menghormati scope rule: global berlaku untuk semua,
// non-global hanya untuk employee yang ditugaskan.
func (r *repository) FindApplicable(ctx context.Context, employeeID uuid.UUID) ([]SalaryRule, error) {
	var rules []SalaryRule
	err := r.store.Query(ctx).
		Where(
			"is_global = ? OR id IN (SELECT salary_rule_id FROM salary_rule_assignments WHERE employee_id = ?)",
			true, employeeID,
		).
		Order("name ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) Update(ctx context.Context, rule *SalaryRule) error {
	return r.store.Update(ctx, rule.ID, rule)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.DB().WithContext(ctx).
		Scopes(tenant.ScopeFromContext(ctx)).
		Delete(&RuleAssignment{}, "salary_rule_id = ?", id).Error; err != nil {
		return err
	}
	return r.store.Delete(ctx, id)
}

func (r *repository) ReplaceAssignments(ctx context.Context, ruleID uuid.UUID, employeeIDs []uuid.UUID) error {
	rule, err := r.store.Get(ctx, ruleID)
	if err != nil {
		return err
	}

	db := r.store.DB().WithContext(ctx)
	if err := db.Delete(&RuleAssignment{}, "salary_rule_id = ?", ruleID).Error; err != nil {
		return err
	}

	if len(employeeIDs) == 0 {
		return nil
	}

	rows := make([]RuleAssignment, len(employeeIDs))
	for i, empID := range employeeIDs {
		rows[i] = RuleAssignment{
			ID:         uuid.New(),
			RuleID:     ruleID,
			CompanyID:  rule.CompanyID,
			EmployeeID: empID,
		}
	}
	return db.Create(&rows).Error
}
