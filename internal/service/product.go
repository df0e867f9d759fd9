package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// ProductService handles inventory business logic. Price and stock arrive
// as text and are parsed here before the repository sees them.
type ProductService struct {
	repo     *repository.ProductRepository
	validate *validation.Validator
	policy   validation.NumericPolicy
	notifier ChangeNotifier
}

// NewProductService creates a new product service
func NewProductService(repo *repository.ProductRepository, v *validation.Validator, policy validation.NumericPolicy, n ChangeNotifier) *ProductService {
	return &ProductService{repo: repo, validate: v, policy: policy, notifier: notifierOrNop(n)}
}

func (s *ProductService) record(req models.ProductRequest) (*models.Product, error) {
	req = req.Trimmed()
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	price, err := validation.ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	stock, err := validation.ParseStock(req.Stock)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CheckDecimal("price", price); err != nil {
		return nil, err
	}
	if err := s.policy.CheckInt("stock", stock); err != nil {
		return nil, err
	}

	return &models.Product{
		Description:    req.Description,
		EmbroideryType: req.EmbroideryType,
		Price:          price,
		Stock:          stock,
	}, nil
}

// Create validates req and stores it as a new inventory item
func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	product, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityProduct, Action: models.ActionCreated, ID: product.ID})
	return product, nil
}

// Update replaces the inventory item identified by id
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	product, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, product); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityProduct, Action: models.ActionUpdated, ID: id})
	return s.repo.Get(ctx, id)
}

// Delete removes the inventory item identified by id
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityProduct, Action: models.ActionDeleted, ID: id})
	return nil
}

// Get retrieves an inventory item by design ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}

// List retrieves all inventory items
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}
