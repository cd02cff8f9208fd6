package taxbracket_test

import (
	"context"
	"testing"

	"staffcore/internal/taxbracket"
	taxbracketerrors "staffcore/internal/taxbracket/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBracketRepository struct {
	rows []taxbracket.TaxBracket

	createFn func(ctx context.Context, b *taxbracket.TaxBracket) error
	updateFn func(ctx context.Context, b *taxbracket.TaxBracket) error
}

func (f *fakeBracketRepository) Create(ctx context.Context, b *taxbracket.TaxBracket) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	f.rows = append(f.rows, *b)
	return nil
}

func (f *fakeBracketRepository) FindAll(ctx context.Context) ([]taxbracket.TaxBracket, error) {
	return f.rows, nil
}

func (f *fakeBracketRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxbracket.TaxBracket, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, taxbracketerrors.ErrBracketNotFound
}

func (f *fakeBracketRepository) Update(ctx context.Context, b *taxbracket.TaxBracket) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	for i := range f.rows {
		if f.rows[i].ID == b.ID {
			f.rows[i] = *b
			return nil
		}
	}
	return nil
}

func (f *fakeBracketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestBracketService_CreateDerivesDeduction(t *testing.T) {
	repo := &fakeBracketRepository{
		rows: []taxbracket.TaxBracket{bracket("0", "1000.00", "0", "0")},
	}
	svc := taxbracket.NewService(repo)

	max := "5000.00"
	resp, err := svc.Create(context.Background(), taxbracket.CreateTaxBracketRequest{
		MinIncome: "1000.01",
		MaxIncome: &max,
		Rate:      "10",
	})

	assert.NoError(t, err)
	assert.Equal(t, "100.00", resp.DeductionAmount)
}

func TestBracketService_CreateKeepsExplicitDeduction(t *testing.T) {
	repo := &fakeBracketRepository{
		rows: []taxbracket.TaxBracket{bracket("0", "1000.00", "0", "0")},
	}
	svc := taxbracket.NewService(repo)

	max := "5000.00"
	deduction := "42.00"
	resp, err := svc.Create(context.Background(), taxbracket.CreateTaxBracketRequest{
		MinIncome:       "1000.01",
		MaxIncome:       &max,
		Rate:            "10",
		DeductionAmount: &deduction,
	})

	assert.NoError(t, err)
	assert.Equal(t, "42.00", resp.DeductionAmount)
}

func TestBracketService_CreateRejectsGap(t *testing.T) {
	repo := &fakeBracketRepository{
		rows: []taxbracket.TaxBracket{bracket("0", "1000.00", "0", "0")},
	}
	svc := taxbracket.NewService(repo)

	// 1000.00 -> 1500.00 meninggalkan celah di sumbu pendapatan.
	resp := taxbracket.CreateTaxBracketRequest{MinIncome: "1500.00", Rate: "10"}
	_, err := svc.Create(context.Background(), resp)
	assert.Error(t, err)
}

func TestBracketService_UpdateValidatesAgainstOthers(t *testing.T) {
	first := bracket("0", "1000.00", "0", "0")
	second := bracket("1000.01", "", "10", "100")
	repo := &fakeBracketRepository{rows: []taxbracket.TaxBracket{first, second}}
	svc := taxbracket.NewService(repo)

	// Memindahkan pita kedua sehingga bercelah harus ditolak.
	_, err := svc.Update(context.Background(), second.ID.String(), taxbracket.UpdateTaxBracketRequest{
		MinIncome: "2000.00",
		Rate:      "10",
	})
	assert.Error(t, err)

	// Versi lama tidak boleh ikut divalidasi: update in-place sah.
	_, err = svc.Update(context.Background(), second.ID.String(), taxbracket.UpdateTaxBracketRequest{
		MinIncome: "1000.01",
		Rate:      "15",
	})
	assert.NoError(t, err)
}

func TestBracketService_CreateRejectsNegativeRate(t *testing.T) {
	svc := taxbracket.NewService(&fakeBracketRepository{})

	_, err := svc.Create(context.Background(), taxbracket.CreateTaxBracketRequest{
		MinIncome: "0",
		Rate:      "-5",
	})
	assert.Error(t, err)
}
