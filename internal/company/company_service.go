package company

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"staffcore/internal/shared/apperror"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Service interface {
	Create(ctx context.Context, name, slug string) (*Company, error)
	GetBySlug(ctx context.Context, slug string) (*Company, error)
	UpdateBranding(ctx context.Context, id string, primaryColor string, logoURL *string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name, slug string) (*Company, error) {
	name = strings.TrimSpace(name)
	slug = strings.ToLower(strings.TrimSpace(slug))

	if name == "" {
		return nil, apperror.RequiredField("Name")
	}
	if !slugPattern.MatchString(slug) {
		return nil, apperror.New(
			apperror.CodeInvalidInput,
			"Slug must be lowercase letters, digits and dashes",
			http.StatusBadRequest,
		)
	}

	company := &Company{
		ID:           uuid.New(),
		Name:         name,
		Slug:         slug,
		PrimaryColor: "#000000",
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, mapRepositoryError(err)
	}
	return company, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Company, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *service) UpdateBranding(ctx context.Context, id string, primaryColor string, logoURL *string) error {
	if !strings.HasPrefix(primaryColor, "#") || len(primaryColor) != 7 {
		return apperror.InvalidField("Primary Color")
	}
	return s.repo.UpdateBranding(ctx, id, primaryColor, logoURL)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint") {
		return apperror.New(
			apperror.CodeConflict,
			"Company slug already taken",
			http.StatusConflict,
		)
	}
	return err
}
