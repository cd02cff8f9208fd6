package position

import (
	"context"
	"strings"

	"staffcore/internal/shared/apperror"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, title string, departmentID *string) (*Position, error)
	GetAll(ctx context.Context) ([]Position, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, title string, departmentID *string) (*Position, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.RequiredField("Title")
	}

	pos := &Position{ID: uuid.New(), Title: title}
	if departmentID != nil && *departmentID != "" {
		deptID, err := uuid.Parse(*departmentID)
		if err != nil {
			return nil, apperror.InvalidField("Department ID")
		}
		pos.DepartmentID = &deptID
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		return nil, err
	}
	return pos, nil
}

func (s *service) GetAll(ctx context.Context) ([]Position, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	posID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Position ID")
	}
	return s.repo.Delete(ctx, posID)
}
