package repository

import (
	"context"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
)

type ProductRepository interface {
	Insert(ctx context.Context, p *catalog.Product) error
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	// FindAll optionally filters by category ids; an empty slice means no filter.
	FindAll(ctx context.Context, categoryIDs []string) ([]catalog.Product, error)
	FindFeatured(ctx context.Context, limit int64) ([]catalog.Product, error)
	Update(ctx context.Context, p *catalog.Product) (*catalog.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Insert(ctx context.Context, c *catalog.Category) error
	FindByID(ctx context.Context, id string) (*catalog.Category, error)
	FindAll(ctx context.Context) ([]catalog.Category, error)
	Update(ctx context.Context, c *catalog.Category) (*catalog.Category, error)
	Delete(ctx context.Context, id string) error
}
