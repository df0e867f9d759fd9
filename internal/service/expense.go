package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	repo     *repository.ExpenseRepository
	validate *validation.Validator
	policy   validation.NumericPolicy
	notifier ChangeNotifier
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo *repository.ExpenseRepository, v *validation.Validator, policy validation.NumericPolicy, n ChangeNotifier) *ExpenseService {
	return &ExpenseService{repo: repo, validate: v, policy: policy, notifier: notifierOrNop(n)}
}

func (s *ExpenseService) record(req models.ExpenseRequest) (*models.Expense, error) {
	req = req.Trimmed()
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	amount, err := validation.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckDecimal("amount", amount); err != nil {
		return nil, err
	}

	return &models.Expense{Description: req.Description, Amount: amount, Date: req.Date}, nil
}

func (s *ExpenseService) Create(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityExpense, Action: models.ActionCreated, ID: expense.ID})
	return expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req models.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, expense); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityExpense, Action: models.ActionUpdated, ID: id})
	return s.repo.Get(ctx, id)
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityExpense, Action: models.ActionDeleted, ID: id})
	return nil
}

func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	return s.repo.Get(ctx, id)
}

func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	return s.repo.List(ctx)
}
