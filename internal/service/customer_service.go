package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/repository"
)

type customerService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(store *repository.Store, logger *slog.Logger) CustomerService {
	return &customerService{
		store:  store,
		logger: logger,
	}
}

// Search matches first and last name
func (s *customerService) Search(ctx context.Context, query string) ([]models.Customer, error) {
	var result []models.Customer
	s.store.View(func(doc *models.Document) {
		result = search(doc.Customers, query, func(c models.Customer) []string {
			return []string{c.FirstName, c.LastName}
		})
	})
	return result, nil
}

// Create creates a new customer
func (s *customerService) Create(ctx context.Context, input *CustomerInput) (*models.Customer, error) {
	if input == nil {
		return nil, models.ErrMissingInput(models.MsgNoInput)
	}

	var entry models.Customer
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		entry = models.Customer{
			ID:        repository.NextID(doc.Customers),
			FirstName: strings.TrimSpace(input.FirstName.Text()),
			LastName:  strings.TrimSpace(input.LastName.Text()),
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		doc.Customers = append(doc.Customers, entry)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to create customer", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "customer created",
		slog.Int("customer_id", entry.ID),
	)

	return &entry, nil
}

// Read retrieves a customer by ID
func (s *customerService) Read(ctx context.Context, id int) (*models.Customer, error) {
	var (
		customer models.Customer
		found    bool
	)
	s.store.View(func(doc *models.Document) {
		if i := repository.FindIndex(doc.Customers, id); i >= 0 {
			customer, found = doc.Customers[i], true
		}
	})
	if !found {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
	}
	return &customer, nil
}

// Update overwrites the names that are present in input
func (s *customerService) Update(ctx context.Context, id int, input *CustomerInput) (*models.Customer, error) {
	var updated models.Customer
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		i := repository.FindIndex(doc.Customers, id)
		if i < 0 {
			return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
		}
		if input == nil {
			return models.ErrMissingInput(models.MsgNoInput)
		}

		existing := &doc.Customers[i]
		if input.FirstName.Present() {
			existing.FirstName = strings.TrimSpace(input.FirstName.Text())
		}
		if input.LastName.Present() {
			existing.LastName = strings.TrimSpace(input.LastName.Text())
		}

		if err := existing.Validate(); err != nil {
			return err
		}
		updated = *existing
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to update customer", err, slog.Int("customer_id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "customer updated",
		slog.Int("customer_id", id),
	)

	return &updated, nil
}

// Remove deletes a customer. The document is persisted even when nothing
// matched.
func (s *customerService) Remove(ctx context.Context, id int) (int, error) {
	var removed int
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		doc.Customers, removed = repository.RemoveByID(doc.Customers, id)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to delete customer", err, slog.Int("customer_id", id))
		return 0, fmt.Errorf("failed to delete customer: %w", err)
	}

	if removed > 0 {
		s.logger.InfoContext(ctx, "customer deleted",
			slog.Int("customer_id", id),
		)
	}

	return removed, nil
}
