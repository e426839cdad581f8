package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/cache"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/pkg/logger"
)

// MockProductRepository mocks repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = "product-1"
	}
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, categoryIDs []string) ([]domain.Product, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, limit int64) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository mocks repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Insert(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = "category-1"
	}
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductCache mocks cache.ProductCache
type MockProductCache struct {
	mock.Mock
}

func (m *MockProductCache) Get(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductCache) Set(ctx context.Context, productID string, product *domain.Product) error {
	args := m.Called(ctx, productID, product)
	return args.Error(0)
}

func (m *MockProductCache) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field) {}
func (nopLogger) Info(string, ...logger.Field)  {}
func (nopLogger) Warn(string, ...logger.Field)  {}
func (nopLogger) Error(string, ...logger.Field) {}
func (nopLogger) Fatal(string, ...logger.Field) {}

func (n nopLogger) WithContext(context.Context) logger.Logger { return n }
func (n nopLogger) WithFields(...logger.Field) logger.Logger  { return n }
func (nopLogger) Sync() error                                 { return nil }

func newTestService() (*Service, *MockProductRepository, *MockCategoryRepository, *MockProductCache) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	productCache := new(MockProductCache)
	return NewService(products, categories, productCache, nopLogger{}), products, categories, productCache
}

func TestService_CreateProduct(t *testing.T) {
	service, products, categories, _ := newTestService()
	ctx := context.Background()

	categories.On("FindByID", ctx, "category-1").Return(&domain.Category{ID: "category-1"}, nil)
	products.On("Insert", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	p, err := service.CreateProduct(ctx, CreateProductCommand{
		Name:       "Ceylon Tea",
		Price:      decimal.RequireFromString("4.50"),
		CategoryID: "category-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "product-1", p.ID)
	products.AssertExpectations(t)
}

func TestService_CreateProduct_InvalidCategory(t *testing.T) {
	service, products, categories, _ := newTestService()
	ctx := context.Background()

	categories.On("FindByID", ctx, "ghost").Return(nil, domain.ErrCategoryNotFound)

	_, err := service.CreateProduct(ctx, CreateProductCommand{
		Name:       "Ceylon Tea",
		CategoryID: "ghost",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	products.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_GetProduct_CacheHit(t *testing.T) {
	service, products, _, productCache := newTestService()
	ctx := context.Background()

	cached := &domain.Product{ID: "product-1", Name: "Ceylon Tea"}
	productCache.On("Get", ctx, "product-1").Return(cached, nil)

	p, err := service.GetProduct(ctx, "product-1")

	assert.NoError(t, err)
	assert.Equal(t, cached, p)
	products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_GetProduct_CacheMissFillsCache(t *testing.T) {
	service, products, _, productCache := newTestService()
	ctx := context.Background()

	stored := &domain.Product{ID: "product-1", Name: "Ceylon Tea"}
	productCache.On("Get", ctx, "product-1").Return(nil, cache.ErrCacheMiss)
	products.On("FindByID", ctx, "product-1").Return(stored, nil)
	productCache.On("Set", ctx, "product-1", stored).Return(nil)

	p, err := service.GetProduct(ctx, "product-1")

	assert.NoError(t, err)
	assert.Equal(t, stored, p)
	productCache.AssertExpectations(t)
}

func TestService_GetProduct_CacheErrorFallsThrough(t *testing.T) {
	service, products, _, productCache := newTestService()
	ctx := context.Background()

	stored := &domain.Product{ID: "product-1"}
	productCache.On("Get", ctx, "product-1").Return(nil, errors.New("redis down"))
	products.On("FindByID", ctx, "product-1").Return(stored, nil)
	productCache.On("Set", ctx, "product-1", stored).Return(errors.New("redis down"))

	p, err := service.GetProduct(ctx, "product-1")

	assert.NoError(t, err)
	assert.Equal(t, stored, p)
}

func TestService_GetProduct_NotFound(t *testing.T) {
	service, products, _, productCache := newTestService()
	ctx := context.Background()

	productCache.On("Get", ctx, "ghost").Return(nil, cache.ErrCacheMiss)
	products.On("FindByID", ctx, "ghost").Return(nil, domain.ErrProductNotFound)

	_, err := service.GetProduct(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_UpdateProduct_InvalidatesCache(t *testing.T) {
	service, products, categories, productCache := newTestService()
	ctx := context.Background()

	categories.On("FindByID", ctx, "category-1").Return(&domain.Category{ID: "category-1"}, nil)
	updated := &domain.Product{ID: "product-1", Name: "Ceylon Tea Gold"}
	products.On("Update", ctx, mock.AnythingOfType("*catalog.Product")).Return(updated, nil)
	productCache.On("Delete", ctx, "product-1").Return(nil)

	p, err := service.UpdateProduct(ctx, "product-1", CreateProductCommand{
		Name:       "Ceylon Tea Gold",
		Price:      decimal.RequireFromString("5.00"),
		CategoryID: "category-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ceylon Tea Gold", p.Name)
	productCache.AssertCalled(t, "Delete", ctx, "product-1")
}

func TestService_DeleteProduct_InvalidatesCache(t *testing.T) {
	service, products, _, productCache := newTestService()
	ctx := context.Background()

	products.On("Delete", ctx, "product-1").Return(nil)
	productCache.On("Delete", ctx, "product-1").Return(nil)

	assert.NoError(t, service.DeleteProduct(ctx, "product-1"))
	productCache.AssertExpectations(t)
}

func TestService_CreateCategory(t *testing.T) {
	service, _, categories, _ := newTestService()
	ctx := context.Background()

	categories.On("Insert", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

	c, err := service.CreateCategory(ctx, CategoryCommand{Name: "Spices", Icon: "leaf", Color: "#3b5"})

	assert.NoError(t, err)
	assert.Equal(t, "category-1", c.ID)
}

func TestService_CreateCategory_MissingName(t *testing.T) {
	service, _, categories, _ := newTestService()

	_, err := service.CreateCategory(context.Background(), CategoryCommand{})

	assert.ErrorIs(t, err, domain.ErrMissingField)
	categories.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
