package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Raymond9734/webshop-api/internal/models"
)

// ResourceService is the business logic shared by all three collections.
// In is the request type holding the recognized optional fields.
type ResourceService[T any, In any] interface {
	// Search returns all entities when query is empty, otherwise those with
	// a searchable field containing query, ignoring case.
	Search(ctx context.Context, query string) ([]T, error)

	// Create assigns the next id, validates and persists a new entity
	Create(ctx context.Context, input *In) (*T, error)

	// Read returns the entity or an error wrapping models.ErrNotFound
	Read(ctx context.Context, id int) (*T, error)

	// Update overwrites the fields present in input. PUT and PATCH share it.
	Update(ctx context.Context, id int, input *In) (*T, error)

	// Remove deletes the entity and returns how many were removed (0 or 1)
	Remove(ctx context.Context, id int) (int, error)
}

// CustomerService handles customer business logic
type CustomerService = ResourceService[models.Customer, CustomerInput]

// ProductService handles product business logic
type ProductService = ResourceService[models.Product, ProductInput]

// OrderService handles order business logic
type OrderService = ResourceService[models.Order, OrderInput]

// search filters items by a case-insensitive substring match on any of the
// strings returned by fields. The result is always a fresh, non-nil slice.
func search[T any](items []T, query string, fields func(T) []string) []T {
	result := make([]T, 0, len(items))
	if query == "" {
		return append(result, items...)
	}

	query = strings.ToLower(query)
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				result = append(result, item)
				break
			}
		}
	}
	return result
}

// logFailure logs errors that are not plain validation or lookup results
func logFailure(ctx context.Context, logger *slog.Logger, msg string, err error, attrs ...any) {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return
	}
	logger.ErrorContext(ctx, msg, append(attrs, slog.String("error", err.Error()))...)
}
