package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/repository"
)

type productService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(store *repository.Store, logger *slog.Logger) ProductService {
	return &productService{
		store:  store,
		logger: logger,
	}
}

// Search matches id, name and price
func (s *productService) Search(ctx context.Context, query string) ([]models.Product, error) {
	var result []models.Product
	s.store.View(func(doc *models.Document) {
		result = search(doc.Products, query, func(p models.Product) []string {
			return []string{strconv.Itoa(p.ID), p.Name, formatNumber(p.Price)}
		})
	})
	return result, nil
}

// Create creates a new product
func (s *productService) Create(ctx context.Context, input *ProductInput) (*models.Product, error) {
	if input == nil {
		return nil, models.ErrMissingInput(models.MsgNoInput)
	}

	price, ok := input.Price.Float()
	if !ok {
		price = math.NaN()
	}

	var entry models.Product
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		entry = models.Product{
			ID:    repository.NextID(doc.Products),
			Name:  strings.TrimSpace(input.Name.Text()),
			Price: price,
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		doc.Products = append(doc.Products, entry)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to create product", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int("product_id", entry.ID),
		slog.String("name", entry.Name),
	)

	return &entry, nil
}

// Read retrieves a product by ID
func (s *productService) Read(ctx context.Context, id int) (*models.Product, error) {
	var (
		product models.Product
		found   bool
	)
	s.store.View(func(doc *models.Document) {
		if i := repository.FindIndex(doc.Products, id); i >= 0 {
			product, found = doc.Products[i], true
		}
	})
	if !found {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("product with ID %d not found", id))
	}
	return &product, nil
}

// Update overwrites name and price when present in input. A price that is
// not a number is rejected without touching the stored price.
func (s *productService) Update(ctx context.Context, id int, input *ProductInput) (*models.Product, error) {
	var updated models.Product
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		i := repository.FindIndex(doc.Products, id)
		if i < 0 {
			return models.ErrNotFoundWithMsg(fmt.Sprintf("product with ID %d not found", id))
		}
		if input == nil {
			return models.ErrMissingInput(models.MsgNoInput)
		}

		existing := &doc.Products[i]
		if input.Name.Present() {
			existing.Name = strings.TrimSpace(input.Name.Text())
		}
		priceOK := true
		if input.Price.Present() {
			var price float64
			if price, priceOK = input.Price.Float(); priceOK {
				existing.Price = price
			}
		}

		if err := existing.Validate(); err != nil {
			return err
		}
		if !priceOK {
			return models.ErrInvalidInput(models.MsgInvalidPrice)
		}
		updated = *existing
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to update product", err, slog.Int("product_id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.Int("product_id", id),
	)

	return &updated, nil
}

// Remove deletes a product
func (s *productService) Remove(ctx context.Context, id int) (int, error) {
	var removed int
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		doc.Products, removed = repository.RemoveByID(doc.Products, id)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to delete product", err, slog.Int("product_id", id))
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}

	if removed > 0 {
		s.logger.InfoContext(ctx, "product deleted",
			slog.Int("product_id", id),
		)
	}

	return removed, nil
}
