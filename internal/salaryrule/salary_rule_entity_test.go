package salaryrule_test

import (
	"testing"

	"staffcore/internal/salaryrule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func TestAmountFor_FlatAmountIgnoresBase(t *testing.T) {
	r := salaryrule.SalaryRule{Amount: decPtr("150.00")}

	assert.True(t, r.AmountFor(dec("0")).Equal(dec("150.00")))
	assert.True(t, r.AmountFor(dec("99999")).Equal(dec("150.00")))
}

func TestAmountFor_PercentageOfBase(t *testing.T) {
	r := salaryrule.SalaryRule{Percentage: decPtr("10")}

	assert.True(t, r.AmountFor(dec("5000")).Equal(dec("500")))
	assert.True(t, r.AmountFor(dec("0")).IsZero())
}

func TestAmountFor_AmountWinsOverPercentage(t *testing.T) {
	r := salaryrule.SalaryRule{Amount: decPtr("100"), Percentage: decPtr("50")}

	assert.True(t, r.AmountFor(dec("5000")).Equal(dec("100")))
}

func TestAmountFor_EmptyRuleContributesZero(t *testing.T) {
	var r salaryrule.SalaryRule

	assert.True(t, r.AmountFor(dec("5000")).IsZero())
}
