package repository

import (
	"context"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
)

type OrderRepository interface {
	Insert(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
	// FindAll returns orders newest-first by date ordered.
	FindAll(ctx context.Context) ([]order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error)
	Delete(ctx context.Context, id string) error
}

type LineItemRepository interface {
	Insert(ctx context.Context, item *order.LineItem) error
	FindByID(ctx context.Context, id string) (*order.LineItem, error)
	// Delete is idempotent: removing an absent line item is not an error.
	Delete(ctx context.Context, id string) error
}
