package department

import (
	"context"
	"strings"

	"staffcore/internal/shared/apperror"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, name string) (*Department, error)
	GetAll(ctx context.Context) ([]Department, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.RequiredField("Name")
	}

	dept := &Department{ID: uuid.New(), Name: name}
	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *service) GetAll(ctx context.Context) ([]Department, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Department ID")
	}
	return s.repo.Delete(ctx, deptID)
}
