package taxbracket

import (
	"context"

	"staffcore/internal/shared/apperror"
	taxbracketerrors "staffcore/internal/taxbracket/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateTaxBracketRequest) (TaxBracketResponse, error)
	GetAll(ctx context.Context) ([]TaxBracketResponse, error)
	Update(ctx context.Context, id string, req UpdateTaxBracketRequest) (TaxBracketResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTaxBracketRequest) (TaxBracketResponse, error) {
	bracket, explicitDeduction, err := parseBracket(req.MinIncome, req.MaxIncome, req.Rate, req.DeductionAmount)
	if err != nil {
		return TaxBracketResponse{}, err
	}
	bracket.ID = uuid.New()

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return TaxBracketResponse{}, err
	}

	if !explicitDeduction {
		bracket.DeductionAmount = DeriveDeduction(bracket.Rate, bracket.MinIncome, existing)
	}

	// Validasi tiling terhadap set hasil penambahan, bukan set lama
	if err := Validate(append(existing, *bracket)); err != nil {
		return TaxBracketResponse{}, err
	}

	if err := s.repo.Create(ctx, bracket); err != nil {
		return TaxBracketResponse{}, err
	}
	return mapToResponse(*bracket), nil
}

func (s *service) GetAll(ctx context.Context) ([]TaxBracketResponse, error) {
	brackets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]TaxBracketResponse, len(brackets))
	for i, b := range brackets {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaxBracketRequest) (TaxBracketResponse, error) {
	bracketID, err := uuid.Parse(id)
	if err != nil {
		return TaxBracketResponse{}, apperror.InvalidField("Bracket ID")
	}

	existing, err := s.repo.FindByID(ctx, bracketID)
	if err != nil {
		return TaxBracketResponse{}, mapNotFound(err)
	}

	bracket, explicitDeduction, err := parseBracket(req.MinIncome, req.MaxIncome, req.Rate, req.DeductionAmount)
	if err != nil {
		return TaxBracketResponse{}, err
	}
	bracket.ID = existing.ID
	bracket.CompanyID = existing.CompanyID
	bracket.CreatedAt = existing.CreatedAt

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return TaxBracketResponse{}, err
	}

	// Keluarkan versi lama dari set sebelum derivasi dan validasi
	others := make([]TaxBracket, 0, len(all))
	for _, b := range all {
		if b.ID != bracket.ID {
			others = append(others, b)
		}
	}

	if !explicitDeduction {
		bracket.DeductionAmount = DeriveDeduction(bracket.Rate, bracket.MinIncome, others)
	}
	if err := Validate(append(others, *bracket)); err != nil {
		return TaxBracketResponse{}, err
	}

	if err := s.repo.Update(ctx, bracket); err != nil {
		return TaxBracketResponse{}, mapNotFound(err)
	}
	return mapToResponse(*bracket), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	bracketID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Bracket ID")
	}
	return mapNotFound(s.repo.Delete(ctx, bracketID))
}

func parseBracket(minIncome string, maxIncome *string, rate string, deduction *string) (*TaxBracket, bool, error) {
	bracket := &TaxBracket{}

	min, err := decimal.NewFromString(minIncome)
	if err != nil || min.IsNegative() || min.Exponent() < -2 {
		return nil, false, taxbracketerrors.ErrInvalidIncomeBound
	}
	bracket.MinIncome = min

	if maxIncome != nil && *maxIncome != "" {
		max, err := decimal.NewFromString(*maxIncome)
		if err != nil || max.IsNegative() || max.Exponent() < -2 {
			return nil, false, taxbracketerrors.ErrInvalidIncomeBound
		}
		bracket.MaxIncome = &max
	}

	r, err := decimal.NewFromString(rate)
	if err != nil || r.IsNegative() || r.GreaterThan(decimal.NewFromInt(100)) {
		return nil, false, taxbracketerrors.ErrInvalidRate
	}
	bracket.Rate = r

	explicit := false
	if deduction != nil && *deduction != "" {
		d, err := decimal.NewFromString(*deduction)
		if err != nil {
			return nil, false, taxbracketerrors.ErrInvalidIncomeBound
		}
		bracket.DeductionAmount = d
		explicit = true
	}

	return bracket, explicit, nil
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	httpErr := apperror.ToHTTP(err)
	if httpErr.Code == apperror.CodeNotFound {
		return taxbracketerrors.ErrBracketNotFound
	}
	return err
}

func mapToResponse(b TaxBracket) TaxBracketResponse {
	resp := TaxBracketResponse{
		ID:              b.ID.String(),
		CompanyID:       b.CompanyID.String(),
		MinIncome:       b.MinIncome.StringFixed(2),
		Rate:            b.Rate.String(),
		DeductionAmount: b.DeductionAmount.StringFixed(2),
	}
	if b.MaxIncome != nil {
		v := b.MaxIncome.StringFixed(2)
		resp.MaxIncome = &v
	}
	return resp
}
