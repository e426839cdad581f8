package catalog

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/repository"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/cache"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service owns product and category CRUD. Product reads go through a
// read-through cache; writes invalidate it.
type Service struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      cache.ProductCache
	log        logger.Logger
}

func NewService(products repository.ProductRepository, categories repository.CategoryRepository, productCache cache.ProductCache, log logger.Logger) *Service {
	return &Service{products: products, categories: categories, cache: productCache, log: log}
}

type CreateProductCommand struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RichDescription string          `json:"richDescription"`
	Brand           string          `json:"brand"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      string          `json:"category"`
	CountInStock    int             `json:"countInStock"`
	IsFeatured      bool            `json:"isFeatured"`
}

func (s *Service) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if err := s.requireCategory(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	p, err := domain.NewProduct(cmd.Name, cmd.Description, cmd.RichDescription, cmd.Brand, cmd.CategoryID, cmd.Price, cmd.CountInStock)
	if err != nil {
		return nil, err
	}
	p.IsFeatured = cmd.IsFeatured

	if err := s.products.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

// GetProduct reads through the cache. Cache trouble degrades to a
// repository read, it never fails the request.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	cached, err := s.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("product cache read failed", logger.String("product_id", id), logger.Error(err))
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, id, p); err != nil {
		s.log.Warn("product cache write failed", logger.String("product_id", id), logger.Error(err))
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context, categoryIDs []string) ([]domain.Product, error) {
	return s.products.FindAll(ctx, categoryIDs)
}

func (s *Service) FeaturedProducts(ctx context.Context, limit int64) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 0
	}
	return s.products.FindFeatured(ctx, limit)
}

func (s *Service) CountProducts(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, cmd CreateProductCommand) (*domain.Product, error) {
	if err := s.requireCategory(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	p, err := domain.NewProduct(cmd.Name, cmd.Description, cmd.RichDescription, cmd.Brand, cmd.CategoryID, cmd.Price, cmd.CountInStock)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.IsFeatured = cmd.IsFeatured

	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

type CategoryCommand struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (s *Service) CreateCategory(ctx context.Context, cmd CategoryCommand) (*domain.Category, error) {
	c, err := domain.NewCategory(cmd.Name, cmd.Icon, cmd.Color)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, cmd CategoryCommand) (*domain.Category, error) {
	c, err := domain.NewCategory(cmd.Name, cmd.Icon, cmd.Color)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return s.categories.Update(ctx, c)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *Service) requireCategory(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidCategory
	}
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return domain.ErrInvalidCategory
		}
		return fmt.Errorf("resolve category %s: %w", id, err)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, productID string) {
	if err := s.cache.Delete(ctx, productID); err != nil {
		s.log.Warn("product cache invalidation failed",
			logger.String("product_id", productID), logger.Error(err))
	}
}
