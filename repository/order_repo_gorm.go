package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"storefront/models"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Creating the header also inserts the associated items, so header
		// and lines commit or roll back together.
		return tx.Create(order).Error
	})
}

func (r *orderRepo) FindByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).
		Error
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []models.Order{}, nil
	}

	// Two-phase load: headers above, then each header's items.
	g, ctx := errgroup.WithContext(ctx)
	for i := range orders {
		i := i
		g.Go(func() error {
			items := make([]models.OrderItem, 0)
			err := r.db.WithContext(ctx).
				Where("order_id = ?", orders[i].ID).
				Find(&items).
				Error
			if err != nil {
				return err
			}
			orders[i].Items = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).
		Error
}
