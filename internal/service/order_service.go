package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/repository"
)

type orderService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *repository.Store, logger *slog.Logger) OrderService {
	return &orderService{
		store:  store,
		logger: logger,
	}
}

// Search matches id, customer id, product id, quantity and price
func (s *orderService) Search(ctx context.Context, query string) ([]models.Order, error) {
	var result []models.Order
	s.store.View(func(doc *models.Document) {
		result = search(doc.Orders, query, func(o models.Order) []string {
			return []string{
				strconv.Itoa(o.ID),
				strconv.Itoa(o.CustomerID),
				strconv.Itoa(o.ProductID),
				strconv.Itoa(o.Quantity),
				formatNumber(o.Price),
			}
		})
	})
	return result, nil
}

// Create creates a new order. Customer and product ids are stored as given;
// they do not have to exist.
func (s *orderService) Create(ctx context.Context, input *OrderInput) (*models.Order, error) {
	if input == nil {
		return nil, models.ErrMissingInput(models.MsgNoInput)
	}

	customerID, ok1 := input.CustomerID.Int()
	productID, ok2 := input.ProductID.Int()
	quantity, ok3 := input.Quantity.Int()
	price, ok4 := input.Price.Float()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, models.ErrInvalidInput(models.MsgInvalidOrder)
	}

	var entry models.Order
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		entry = models.Order{
			ID:         repository.NextID(doc.Orders),
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
			Price:      price,
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		doc.Orders = append(doc.Orders, entry)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to create order", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "order created",
		slog.Int("order_id", entry.ID),
		slog.Int("customer_id", entry.CustomerID),
		slog.Int("product_id", entry.ProductID),
	)

	return &entry, nil
}

// Read retrieves an order by ID
func (s *orderService) Read(ctx context.Context, id int) (*models.Order, error) {
	var (
		order models.Order
		found bool
	)
	s.store.View(func(doc *models.Document) {
		if i := repository.FindIndex(doc.Orders, id); i >= 0 {
			order, found = doc.Orders[i], true
		}
	})
	if !found {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
	}
	return &order, nil
}

// Update overwrites the numeric fields present in input. Fields that do not
// parse are left unchanged and make the update fail.
func (s *orderService) Update(ctx context.Context, id int, input *OrderInput) (*models.Order, error) {
	var updated models.Order
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		i := repository.FindIndex(doc.Orders, id)
		if i < 0 {
			return models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
		}
		if input == nil {
			return models.ErrMissingInput(models.MsgNoInput)
		}

		existing := &doc.Orders[i]
		valid := true
		setInt := func(v Value, dst *int) {
			if !v.Present() {
				return
			}
			if n, ok := v.Int(); ok {
				*dst = n
			} else {
				valid = false
			}
		}
		setInt(input.CustomerID, &existing.CustomerID)
		setInt(input.ProductID, &existing.ProductID)
		setInt(input.Quantity, &existing.Quantity)
		if input.Price.Present() {
			if price, ok := input.Price.Float(); ok {
				existing.Price = price
			} else {
				valid = false
			}
		}

		if !valid {
			return models.ErrInvalidInput(models.MsgInvalidOrder)
		}
		if err := existing.Validate(); err != nil {
			return err
		}
		updated = *existing
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to update order", err, slog.Int("order_id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "order updated",
		slog.Int("order_id", id),
	)

	return &updated, nil
}

// Remove deletes an order
func (s *orderService) Remove(ctx context.Context, id int) (int, error) {
	var removed int
	err := s.store.Mutate(ctx, func(doc *models.Document) error {
		doc.Orders, removed = repository.RemoveByID(doc.Orders, id)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "failed to delete order", err, slog.Int("order_id", id))
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}

	if removed > 0 {
		s.logger.InfoContext(ctx, "order deleted",
			slog.Int("order_id", id),
		)
	}

	return removed, nil
}
