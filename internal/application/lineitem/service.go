package lineitem

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/repository"
)

// ProductFinder resolves product references. The catalog service
// satisfies this, so lookups go through its cache.
type ProductFinder interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// Service is the line-item store: it owns creation, price resolution
// and idempotent deletion of individual line items.
type Service struct {
	items    repository.LineItemRepository
	products ProductFinder
}

func NewService(items repository.LineItemRepository, products ProductFinder) *Service {
	return &Service{items: items, products: products}
}

// Create persists a new line item and returns its id. The product
// reference must resolve and the quantity must be positive.
func (s *Service) Create(ctx context.Context, productID string, quantity int) (string, error) {
	item, err := domain.NewLineItem(productID, quantity)
	if err != nil {
		return "", err
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return "", fmt.Errorf("%w: product %s", domain.ErrInvalidReference, productID)
		}
		return "", fmt.Errorf("resolve product %s: %w", productID, err)
	}

	if err := s.items.Insert(ctx, item); err != nil {
		return "", fmt.Errorf("save line item: %w", err)
	}
	return item.ID, nil
}

// ResolveUnitPrice dereferences the line item's product and returns
// its current unit price.
func (s *Service) ResolveUnitPrice(ctx context.Context, id string) (decimal.Decimal, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: line item %s", domain.ErrNotFound, id)
		}
		return decimal.Zero, fmt.Errorf("find line item %s: %w", id, err)
	}

	product, err := s.products.GetProduct(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			// The product was removed between steps.
			return decimal.Zero, fmt.Errorf("%w: product %s", domain.ErrNotFound, item.ProductID)
		}
		return decimal.Zero, fmt.Errorf("resolve product %s: %w", item.ProductID, err)
	}

	return product.Price, nil
}

// Delete removes a line item. Deleting an absent id succeeds, so
// cascade deletes can be retried safely.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete line item %s: %w", id, err)
	}
	return nil
}
