package taxbracket_test

import (
	"testing"

	"staffcore/internal/taxbracket"

	"github.com/google/uuid"
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

func bracket(min, max, rate, deduction string) taxbracket.TaxBracket {
	b := taxbracket.TaxBracket{
		ID:              uuid.New(),
		MinIncome:       dec(min),
		Rate:            dec(rate),
		DeductionAmount: dec(deduction),
	}
	if max != "" {
		b.MaxIncome = decPtr(max)
	}
	return b
}

// Set progresif standar: 0% sampai 1000, 10% sampai 5000, 20% ke atas.
func progressiveSet() []taxbracket.TaxBracket {
	return []taxbracket.TaxBracket{
		bracket("0", "1000.00", "0", "0"),
		bracket("1000.01", "5000.00", "10", "100"),
		bracket("5000.01", "", "20", "600.001"),
	}
}

func TestDeriveDeduction_NoLowerBrackets(t *testing.T) {
	got := taxbracket.DeriveDeduction(dec("10"), dec("0"), nil)
	assert.True(t, got.IsZero())

	// Pita terbuka di bawahnya tidak dihitung sebagai "lower".
	open := []taxbracket.TaxBracket{bracket("0", "", "10", "0")}
	got = taxbracket.DeriveDeduction(dec("20"), dec("5000"), open)
	assert.True(t, got.IsZero())
}

func TestDeriveDeduction_SecondBracket(t *testing.T) {
	existing := []taxbracket.TaxBracket{bracket("0", "1000.00", "0", "0")}

	got := taxbracket.DeriveDeduction(dec("10"), dec("1000.01"), existing)

	// P = 1000, priorTax = 0, deduction = 1000 × 10% = 100.
	assert.True(t, got.Equal(dec("100")), "got %s", got)
}

func TestDeriveDeduction_ThirdBracket(t *testing.T) {
	existing := []taxbracket.TaxBracket{
		bracket("0", "1000.00", "0", "0"),
		bracket("1000.01", "5000.00", "10", "100"),
	}

	got := taxbracket.DeriveDeduction(dec("20"), dec("5000.01"), existing)

	// P = 5000, priorTax = (5000 − 1000.01) × 10% = 399.999,
	// deduction = 5000 × 20% − 399.999 = 600.001.
	assert.True(t, got.Equal(dec("600.001")), "got %s", got)
}

// Pajak efektif harus kontinu di batas antar pita: naik satu sen dari
// ujung pita tidak boleh bikin pajak melompat.
func TestDeriveDeduction_ContinuityAtBoundaries(t *testing.T) {
	brackets := progressiveSet()

	taxAt := func(income decimal.Decimal) decimal.Decimal {
		b, ok := taxbracket.Lookup(brackets, income)
		if !ok {
			return decimal.Zero
		}
		return b.TaxOn(income)
	}

	tolerance := dec("0.01")
	for _, boundary := range []string{"1000.00", "5000.00"} {
		below := dec(boundary)
		above := below.Add(dec("0.01"))

		jump := taxAt(above).Sub(taxAt(below)).Abs()
		assert.True(t, jump.LessThanOrEqual(tolerance),
			"tax jumps by %s at boundary %s", jump, boundary)
	}
}

func TestValidate_AcceptsTiledSet(t *testing.T) {
	assert.NoError(t, taxbracket.Validate(progressiveSet()))
	assert.NoError(t, taxbracket.Validate(nil))
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		brackets []taxbracket.TaxBracket
	}{
		{
			name:     "first bracket not at zero",
			brackets: []taxbracket.TaxBracket{bracket("100", "", "10", "0")},
		},
		{
			name: "gap between brackets",
			brackets: []taxbracket.TaxBracket{
				bracket("0", "1000.00", "0", "0"),
				bracket("1500.00", "", "10", "0"),
			},
		},
		{
			name: "overlapping brackets",
			brackets: []taxbracket.TaxBracket{
				bracket("0", "1000.00", "0", "0"),
				bracket("900.00", "", "10", "0"),
			},
		},
		{
			name: "open-ended bracket not last",
			brackets: []taxbracket.TaxBracket{
				bracket("0", "", "0", "0"),
				bracket("1000.01", "", "10", "0"),
			},
		},
		{
			name: "max below min",
			brackets: []taxbracket.TaxBracket{
				bracket("0", "3000.00", "0", "0"),
				bracket("3000.01", "2500.00", "10", "0"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, taxbracket.Validate(tc.brackets))
		})
	}
}

func TestLookup_InclusiveBounds(t *testing.T) {
	brackets := progressiveSet()

	b, ok := taxbracket.Lookup(brackets, dec("1000.00"))
	assert.True(t, ok)
	assert.True(t, b.Rate.IsZero())

	b, ok = taxbracket.Lookup(brackets, dec("1000.01"))
	assert.True(t, ok)
	assert.True(t, b.Rate.Equal(dec("10")))

	b, ok = taxbracket.Lookup(brackets, dec("999999"))
	assert.True(t, ok)
	assert.True(t, b.Rate.Equal(dec("20")))
}

func TestLookup_NoMatch(t *testing.T) {
	brackets := []taxbracket.TaxBracket{bracket("1000.00", "2000.00", "10", "0")}
	_, ok := taxbracket.Lookup(brackets, dec("500"))
	assert.False(t, ok)
}

func TestTaxOn_ClampsNegative(t *testing.T) {
	b := bracket("0", "1000.00", "10", "500")
	// 100 × 10% − 500 < 0 → dijepit ke 0.
	assert.True(t, b.TaxOn(dec("100")).IsZero())
}
