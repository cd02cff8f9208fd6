package salaryrule_test

import (
	"context"
	"fmt"
	"testing"

	"staffcore/internal/company"
	"staffcore/internal/salaryrule"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openRuleDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&salaryrule.SalaryRule{}, &salaryrule.RuleAssignment{}))
	return db
}

func tenantCtx() context.Context {
	acme := &company.Company{ID: uuid.New(), Name: "Acme", Slug: "acme"}
	return tenant.WithCompany(context.Background(), acme)
}

func TestFindApplicable_HonorsRuleScope(t *testing.T) {
	db := openRuleDB(t)
	repo := salaryrule.NewRepository(db)
	ctx := tenantCtx()

	assigned := uuid.New()
	unassigned := uuid.New()

	global := &salaryrule.SalaryRule{
		ID: uuid.New(), Name: "Meal allowance",
		RuleType: salaryrule.RuleAllowance, Amount: decPtr("100.00"), IsGlobal: true,
	}
	scoped := &salaryrule.SalaryRule{
		ID: uuid.New(), Name: "Union dues",
		RuleType: salaryrule.RuleDeduction, Amount: decPtr("25.00"), IsGlobal: false,
	}
	assert.NoError(t, repo.Create(ctx, global))
	assert.NoError(t, repo.Create(ctx, scoped))
	assert.NoError(t, repo.ReplaceAssignments(ctx, scoped.ID, []uuid.UUID{assigned}))

	// Employee yang ditugaskan melihat keduanya.
	rules, err := repo.FindApplicable(ctx, assigned)
	assert.NoError(t, err)
	assert.Len(t, rules, 2)

	// Yang tidak ditugaskan hanya kena rule global.
	rules, err = repo.FindApplicable(ctx, unassigned)
	assert.NoError(t, err)
	assert.Len(t, rules, 1)
	assert.Equal(t, global.ID, rules[0].ID)
}

func TestReplaceAssignments_Overwrites(t *testing.T) {
	db := openRuleDB(t)
	repo := salaryrule.NewRepository(db)
	ctx := tenantCtx()

	scoped := &salaryrule.SalaryRule{
		ID: uuid.New(), Name: "Transport",
		RuleType: salaryrule.RuleAllowance, Amount: decPtr("50.00"), IsGlobal: false,
	}
	assert.NoError(t, repo.Create(ctx, scoped))

	first := uuid.New()
	second := uuid.New()
	assert.NoError(t, repo.ReplaceAssignments(ctx, scoped.ID, []uuid.UUID{first}))
	assert.NoError(t, repo.ReplaceAssignments(ctx, scoped.ID, []uuid.UUID{second}))

	rules, err := repo.FindApplicable(ctx, first)
	assert.NoError(t, err)
	assert.Empty(t, rules)

	rules, err = repo.FindApplicable(ctx, second)
	assert.NoError(t, err)
	assert.Len(t, rules, 1)
}

func TestDelete_RemovesAssignments(t *testing.T) {
	db := openRuleDB(t)
	repo := salaryrule.NewRepository(db)
	ctx := tenantCtx()

	scoped := &salaryrule.SalaryRule{
		ID: uuid.New(), Name: "Gym",
		RuleType: salaryrule.RuleAllowance, Amount: decPtr("30.00"), IsGlobal: false,
	}
	emp := uuid.New()
	assert.NoError(t, repo.Create(ctx, scoped))
	assert.NoError(t, repo.ReplaceAssignments(ctx, scoped.ID, []uuid.UUID{emp}))

	assert.NoError(t, repo.Delete(ctx, scoped.ID))

	rules, err := repo.FindApplicable(ctx, emp)
	assert.NoError(t, err)
	assert.Empty(t, rules)

	var count int64
	assert.NoError(t, db.Model(&salaryrule.RuleAssignment{}).Count(&count).Error)
	assert.Zero(t, count)
}
