package taxbracket

import (
	"net/http"
	"sort"

	"staffcore/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// Dua pita bersebelahan dianggap rapat bila selisihnya tepat satu
	// satuan mata uang terkecil.
	currencyStep = decimal.New(1, -2) // 0.01
)

// DeriveDeduction menurunkan sustraendo untuk pita baru sehingga fungsi
// pajak T(income) kontinu di batas bawah pita.
//
// Fungsi ini sengaja murni: daftar pita yang sudah ada diberikan sebagai
// argumen, tidak dibaca dari tenant context, supaya bisa diuji sendiri.
//
//  1. Tanpa pita di bawah MinIncome -> deduction 0.
//  2. P = MaxIncome pita terdekat di bawahnya. priorTax = T(P) dihitung
//     pelan-pelan, pita per pita, dengan span dipotong agar tidak
//     melewati P.
//  3. deduction = P × rate/100 − priorTax.
func DeriveDeduction(rate, minIncome decimal.Decimal, existing []TaxBracket) decimal.Decimal {
	lower := lowerBrackets(existing, minIncome)
	if len(lower) == 0 {
		return decimal.Zero
	}

	boundary := *lower[len(lower)-1].MaxIncome

	priorTax := decimal.Zero
	for _, b := range lower {
		end := *b.MaxIncome
		if end.GreaterThan(boundary) {
			end = boundary
		}
		taxable := end.Sub(b.MinIncome)
		if taxable.IsPositive() {
			priorTax = priorTax.Add(taxable.Mul(b.Rate).Div(hundred))
		}
	}

	theoreticalTax := boundary.Mul(rate).Div(hundred)
	return theoreticalTax.Sub(priorTax)
}

// lowerBrackets: pita tertutup yang seluruh span-nya di bawah minIncome,
// urut naik.
func lowerBrackets(brackets []TaxBracket, minIncome decimal.Decimal) []TaxBracket {
	lower := make([]TaxBracket, 0, len(brackets))
	for _, b := range brackets {
		if b.MaxIncome != nil && b.MaxIncome.LessThan(minIncome) {
			lower = append(lower, b)
		}
	}
	sort.Slice(lower, func(i, j int) bool {
		return lower[i].MinIncome.LessThan(lower[j].MinIncome)
	})
	return lower
}

// Validate memastikan kumpulan pita menutup sumbu pendapatan [0, ∞)
// tanpa celah dan tanpa tumpang tindih:
//   - pita pertama mulai dari 0,
//   - pita berikutnya mulai tepat satu satuan mata uang di atas max
//     pita sebelumnya,
//   - hanya pita terakhir yang boleh terbuka (MaxIncome nil).
//
// Konfigurasi yang lolos menjamin Lookup selalu menemukan tepat satu
// pita (atau jatuh ke pita 0% implisit hanya jika set kosong).
func Validate(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return nil
	}

	sorted := make([]TaxBracket, len(brackets))
	copy(sorted, brackets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinIncome.LessThan(sorted[j].MinIncome)
	})

	if !sorted[0].MinIncome.IsZero() {
		return validationError("the first bracket must start at 0")
	}

	for i, b := range sorted {
		if b.MaxIncome != nil && b.MaxIncome.LessThan(b.MinIncome) {
			return validationError("bracket max income must not be below its min income")
		}

		last := i == len(sorted)-1
		if b.MaxIncome == nil {
			if !last {
				return validationError("only the last bracket may be open-ended")
			}
			continue
		}
		if last {
			continue
		}

		next := sorted[i+1]
		gap := next.MinIncome.Sub(*b.MaxIncome)
		switch {
		case gap.LessThanOrEqual(decimal.Zero):
			return validationError("brackets must not overlap")
		case !gap.Equal(currencyStep):
			return validationError("brackets must leave no gap on the income axis")
		}
	}

	return nil
}

func validationError(msg string) error {
	return apperror.New(apperror.CodeInvalidInput, msg, http.StatusBadRequest)
}
