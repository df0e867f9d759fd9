package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
)

// DashboardService computes the figures on the main page
type DashboardService struct {
	repos *repository.Repositories
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{repos: repos}
}

// Summary returns total expenses, inventory value and record counts.
func (s *DashboardService) Summary(ctx context.Context) (models.Summary, error) {
	var sum models.Summary

	expenses, err := s.repos.Expense.List(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	sum.TotalExpense = decimal.Zero
	for _, e := range expenses {
		sum.TotalExpense = sum.TotalExpense.Add(e.Amount)
	}
	sum.Expenses = len(expenses)

	products, err := s.repos.Product.List(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	sum.InventoryValue = decimal.Zero
	for _, p := range products {
		sum.InventoryValue = sum.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	sum.Products = len(products)

	if sum.Clients, err = s.repos.Client.Count(ctx); err != nil {
		return models.Summary{}, err
	}
	if sum.Employees, err = s.repos.Employee.Count(ctx); err != nil {
		return models.Summary{}, err
	}

	return sum, nil
}
