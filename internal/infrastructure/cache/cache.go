package cache

import (
	"context"
	"errors"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
)

type ProductCache interface {
	Get(ctx context.Context, productID string) (*catalog.Product, error)
	Set(ctx context.Context, productID string, product *catalog.Product) error
	Delete(ctx context.Context, productID string) error
}

var ErrCacheMiss = errors.New("cache miss")
