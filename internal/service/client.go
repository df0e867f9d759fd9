package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// ClientService handles client-related business logic
type ClientService struct {
	repo     *repository.ClientRepository
	validate *validation.Validator
	notifier ChangeNotifier
}

// NewClientService creates a new client service
func NewClientService(repo *repository.ClientRepository, v *validation.Validator, n ChangeNotifier) *ClientService {
	return &ClientService{repo: repo, validate: v, notifier: notifierOrNop(n)}
}

func (s *ClientService) record(req models.ClientRequest) (*models.Client, error) {
	req = req.Trimmed()
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return &models.Client{Name: req.Name, Contact: req.Contact, Address: req.Address}, nil
}

// Create validates req and stores it as a new client
func (s *ClientService) Create(ctx context.Context, req models.ClientRequest) (*models.Client, error) {
	client, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityClient, Action: models.ActionCreated, ID: client.ID})
	return client, nil
}

// Update replaces the client identified by id
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req models.ClientRequest) (*models.Client, error) {
	client, err := s.record(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, client); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityClient, Action: models.ActionUpdated, ID: id})
	return s.repo.Get(ctx, id)
}

// Delete removes the client identified by id
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(models.ChangeEvent{Entity: models.EntityClient, Action: models.ActionDeleted, ID: id})
	return nil
}

// Get retrieves a client by ID
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return s.repo.Get(ctx, id)
}

// List retrieves all clients
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.repo.List(ctx)
}

// Search finds clients by name or contact
func (s *ClientService) Search(ctx context.Context, query string) ([]models.Client, error) {
	return s.repo.Search(ctx, query)
}
