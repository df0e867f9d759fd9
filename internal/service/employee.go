package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// EmployeeService handles employee-related business logic
type EmployeeService struct {
	repo     *repository.EmployeeRepository
	validate *validation.Validator
	notifier ChangeNotifier
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo *repository.EmployeeRepository, v *validation.Validator, n ChangeNotifier) *EmployeeService {
	return &EmployeeService{repo: repo, validate: v, notifier: notifierOrNop(n)}
}

func (s *EmployeeService) record(req models.EmployeeRequest) (*models.Employee, error) {
	req = req.Trimmed()
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return &models.Employee{Name: req.Name, Contact: req.Contact, Role: req.Role}, nil
}

func (s *EmployeeService) Create(ctx context.Context, req models.EmployeeRequest) (*models.Employee, error) {
	employee, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityEmployee, Action: models.ActionCreated, ID: employee.ID})
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req models.EmployeeRequest) (*models.Employee, error) {
	employee, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, employee); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityEmployee, Action: models.ActionUpdated, ID: id})
	return s.repo.Get(ctx, id)
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityEmployee, Action: models.ActionDeleted, ID: id})
	return nil
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return s.repo.Get(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.repo.List(ctx)
}
