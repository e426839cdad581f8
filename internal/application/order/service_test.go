package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/pkg/logger"
)

// MockOrderRepository mocks repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.ID = "order-1"
	}
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLineItemStore mocks the LineItemStore interface
type MockLineItemStore struct {
	mock.Mock
}

func (m *MockLineItemStore) Create(ctx context.Context, productID string, quantity int) (string, error) {
	args := m.Called(ctx, productID, quantity)
	return args.String(0), args.Error(1)
}

func (m *MockLineItemStore) ResolveUnitPrice(ctx context.Context, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLineItemStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher mocks the EventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishOrderDeleted(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// nopLogger discards everything; the coordinator only logs warnings.
type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field) {}
func (nopLogger) Info(string, ...logger.Field)  {}
func (nopLogger) Warn(string, ...logger.Field)  {}
func (nopLogger) Error(string, ...logger.Field) {}
func (nopLogger) Fatal(string, ...logger.Field) {}

func (n nopLogger) WithContext(context.Context) logger.Logger { return n }
func (n nopLogger) WithFields(...logger.Field) logger.Logger  { return n }
func (nopLogger) Sync() error                                 { return nil }

func newTestService() (*Service, *MockOrderRepository, *MockLineItemStore, *MockEventPublisher) {
	repo := new(MockOrderRepository)
	items := new(MockLineItemStore)
	events := new(MockEventPublisher)
	return NewService(repo, items, events, nopLogger{}), repo, items, events
}

func TestService_PlaceOrder(t *testing.T) {
	// Arrange
	service, repo, items, events := newTestService()
	ctx := context.Background()

	// productA costs 10.00 x2, productB costs 5.00 x1 => total 25.00
	items.On("Create", mock.Anything, "productA", 2).Return("item-a", nil)
	items.On("Create", mock.Anything, "productB", 1).Return("item-b", nil)
	items.On("ResolveUnitPrice", mock.Anything, "item-a").Return(decimal.RequireFromString("10.00"), nil)
	items.On("ResolveUnitPrice", mock.Anything, "item-b").Return(decimal.RequireFromString("5.00"), nil)
	repo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	events.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	cmd := PlaceOrderCommand{
		Items: []ItemRequest{
			{ProductID: "productA", Quantity: 2},
			{ProductID: "productB", Quantity: 1},
		},
		ShippingAddress1: "12 Temple Road",
		City:             "Colombo",
		Zip:              "00300",
		Country:          "LK",
		UserID:           "user-1",
	}

	// Act
	o, err := service.PlaceOrder(ctx, cmd)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "25.00", o.TotalPrice.StringFixed(2))
	// line items keep submission order
	assert.Equal(t, []string{"item-a", "item-b"}, o.ItemIDs)
	assert.Equal(t, domain.StatusPending, o.Status)
	repo.AssertExpectations(t)
	items.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_PlaceOrder_EmptyItems(t *testing.T) {
	service, repo, _, _ := newTestService()

	_, err := service.PlaceOrder(context.Background(), PlaceOrderCommand{UserID: "user-1"})

	assert.ErrorIs(t, err, domain.ErrOrderCreationFailed)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_InvalidQuantity(t *testing.T) {
	service, repo, items, _ := newTestService()
	ctx := context.Background()

	items.On("Create", mock.Anything, "productA", 2).Return("item-a", nil).Maybe()
	items.On("Create", mock.Anything, "productB", -1).Return("", domain.ErrInvalidQuantity)
	// created items are cleaned up again
	items.On("Delete", mock.Anything, "item-a").Return(nil).Maybe()

	cmd := PlaceOrderCommand{
		Items: []ItemRequest{
			{ProductID: "productA", Quantity: 2},
			{ProductID: "productB", Quantity: -1},
		},
		UserID: "user-1",
	}

	_, err := service.PlaceOrder(ctx, cmd)

	assert.ErrorIs(t, err, domain.ErrOrderCreationFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_UnknownProduct(t *testing.T) {
	service, repo, items, _ := newTestService()

	items.On("Create", mock.Anything, "ghost", 1).Return("", domain.ErrInvalidReference)

	cmd := PlaceOrderCommand{
		Items:  []ItemRequest{{ProductID: "ghost", Quantity: 1}},
		UserID: "user-1",
	}

	_, err := service.PlaceOrder(context.Background(), cmd)

	assert.ErrorIs(t, err, domain.ErrOrderCreationFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_InvalidStatus(t *testing.T) {
	service, repo, items, _ := newTestService()

	cmd := PlaceOrderCommand{
		Items:  []ItemRequest{{ProductID: "productA", Quantity: 1}},
		Status: "cancelled",
		UserID: "user-1",
	}

	_, err := service.PlaceOrder(context.Background(), cmd)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_PersistenceFailureCleansUpItems(t *testing.T) {
	service, repo, items, _ := newTestService()
	ctx := context.Background()

	items.On("Create", mock.Anything, "productA", 1).Return("item-a", nil)
	items.On("ResolveUnitPrice", mock.Anything, "item-a").Return(decimal.RequireFromString("10.00"), nil)
	repo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("write concern failed"))
	items.On("Delete", mock.Anything, "item-a").Return(nil)

	cmd := PlaceOrderCommand{
		Items:  []ItemRequest{{ProductID: "productA", Quantity: 1}},
		UserID: "user-1",
	}

	_, err := service.PlaceOrder(ctx, cmd)

	assert.Error(t, err)
	items.AssertCalled(t, "Delete", mock.Anything, "item-a")
}

func TestService_PlaceOrder_PublishFailureDoesNotFailRequest(t *testing.T) {
	service, repo, items, events := newTestService()
	ctx := context.Background()

	items.On("Create", mock.Anything, "productA", 1).Return("item-a", nil)
	items.On("ResolveUnitPrice", mock.Anything, "item-a").Return(decimal.RequireFromString("10.00"), nil)
	repo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	events.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("broker down"))

	cmd := PlaceOrderCommand{
		Items:  []ItemRequest{{ProductID: "productA", Quantity: 1}},
		UserID: "user-1",
	}

	o, err := service.PlaceOrder(ctx, cmd)

	assert.NoError(t, err)
	assert.NotNil(t, o)
}

func TestService_UpdateStatus(t *testing.T) {
	service, repo, _, _ := newTestService()
	ctx := context.Background()

	current := &domain.Order{ID: "order-1", Status: domain.StatusPending}
	updated := &domain.Order{ID: "order-1", Status: domain.StatusShipped}

	repo.On("FindByID", ctx, "order-1").Return(current, nil)
	repo.On("UpdateStatus", ctx, "order-1", domain.StatusShipped).Return(updated, nil)

	o, err := service.UpdateStatus(ctx, "order-1", "shipped")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, o.Status)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	service, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("FindByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	_, err := service.UpdateStatus(ctx, "missing", "shipped")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UpdateStatus_RejectsRegression(t *testing.T) {
	service, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("FindByID", ctx, "order-1").
		Return(&domain.Order{ID: "order-1", Status: domain.StatusDelivered}, nil)

	_, err := service.UpdateStatus(ctx, "order-1", "pending")

	assert.ErrorIs(t, err, domain.ErrStatusRegression)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_UnknownValue(t *testing.T) {
	service, repo, _, _ := newTestService()

	_, err := service.UpdateStatus(context.Background(), "order-1", "teleported")

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	service, repo, items, events := newTestService()
	ctx := context.Background()

	o := &domain.Order{ID: "order-1", ItemIDs: []string{"item-a", "item-b"}}
	repo.On("FindByID", ctx, "order-1").Return(o, nil)
	items.On("Delete", mock.Anything, "item-a").Return(nil)
	items.On("Delete", mock.Anything, "item-b").Return(nil)
	repo.On("Delete", ctx, "order-1").Return(nil)
	events.On("PublishOrderDeleted", ctx, "order-1").Return(nil)

	err := service.Delete(ctx, "order-1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	items.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	service, repo, items, _ := newTestService()
	ctx := context.Background()

	repo.On("FindByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	err := service.Delete(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_PartialCascadeLeavesOrderIntact(t *testing.T) {
	service, repo, items, _ := newTestService()
	ctx := context.Background()

	o := &domain.Order{ID: "order-1", ItemIDs: []string{"item-a", "item-b"}}
	repo.On("FindByID", ctx, "order-1").Return(o, nil)
	items.On("Delete", mock.Anything, "item-a").Return(nil).Maybe()
	items.On("Delete", mock.Anything, "item-b").Return(errors.New("connection reset"))

	err := service.Delete(ctx, "order-1")

	assert.ErrorIs(t, err, domain.ErrPartialCascadeFailure)
	// the order record must survive so the delete can be retried
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_List(t *testing.T) {
	service, repo, _, _ := newTestService()
	ctx := context.Background()

	orders := []domain.Order{{ID: "order-2"}, {ID: "order-1"}}
	repo.On("FindAll", ctx).Return(orders, nil)

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestService_Get(t *testing.T) {
	service, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("FindByID", ctx, "order-1").Return(&domain.Order{ID: "order-1"}, nil)

	o, err := service.Get(ctx, "order-1")

	assert.NoError(t, err)
	assert.Equal(t, "order-1", o.ID)
}
