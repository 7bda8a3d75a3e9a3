package repository

import (
	"context"

	"storefront/models"
)

type OrderRepository interface {
	// CreateWithItems inserts the order header and its line items in one
	// transaction and populates order.ID.
	CreateWithItems(ctx context.Context, order *models.Order) error
	// FindByUser returns the user's orders newest first, each with its items
	// attached. No orders means an empty slice, not an error.
	FindByUser(ctx context.Context, userID uint) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) error
}
