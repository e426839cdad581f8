package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/repository"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/pkg/logger"
)

// fanOutLimit bounds the per-request parallelism of line-item
// creation and cascade deletion.
const fanOutLimit = 4

// LineItemStore abstracts the line-item service so the coordinator
// can be tested against a mock.
type LineItemStore interface {
	Create(ctx context.Context, productID string, quantity int) (string, error)
	ResolveUnitPrice(ctx context.Context, id string) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher emits order lifecycle events. Publishing is
// best-effort and never fails the request.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *domain.Order) error
	PublishOrderDeleted(ctx context.Context, orderID string) error
}

// Service coordinates the order lifecycle: line-item fan-out and
// price aggregation on placement, cascade cleanup on deletion.
type Service struct {
	repo   repository.OrderRepository
	items  LineItemStore
	events EventPublisher
	log    logger.Logger
}

func NewService(repo repository.OrderRepository, items LineItemStore, events EventPublisher, log logger.Logger) *Service {
	return &Service{repo: repo, items: items, events: events, log: log}
}

type ItemRequest struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderCommand struct {
	Items            []ItemRequest `json:"orderItems"`
	ShippingAddress1 string        `json:"shippingAddress1"`
	ShippingAddress2 string        `json:"shippingAddress2"`
	City             string        `json:"city"`
	Zip              string        `json:"zip"`
	Country          string        `json:"country"`
	Phone            string        `json:"phone"`
	Status           string        `json:"status"`
	UserID           string        `json:"user"`
}

// PlaceOrder creates the line items for the command (scatter), prices
// them, and persists the order referencing the collected ids in
// submission order (gather). Any failed branch aborts the whole call;
// items created before the failure are cleaned up best-effort.
func (s *Service) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrOrderCreationFailed, domain.ErrEmptyOrder)
	}

	status, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrOrderCreationFailed, err)
	}

	// Scatter: create line items concurrently, collecting ids into
	// the slot matching each request's position.
	itemIDs := make([]string, len(cmd.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, req := range cmd.Items {
		g.Go(func() error {
			id, err := s.items.Create(gctx, req.ProductID, req.Quantity)
			if err != nil {
				return fmt.Errorf("line item %d: %w", i, err)
			}
			itemIDs[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cleanupItems(ctx, itemIDs)
		return nil, fmt.Errorf("%w: %w", domain.ErrOrderCreationFailed, err)
	}

	// Gather: snapshot each line's price, round per line, then sum.
	lineTotals := make([]decimal.Decimal, len(itemIDs))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, id := range itemIDs {
		quantity := cmd.Items[i].Quantity
		g.Go(func() error {
			unitPrice, err := s.items.ResolveUnitPrice(gctx, id)
			if err != nil {
				return fmt.Errorf("price line item %d: %w", i, err)
			}
			lineTotals[i] = domain.LineTotal(unitPrice, quantity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cleanupItems(ctx, itemIDs)
		return nil, fmt.Errorf("%w: %w", domain.ErrOrderCreationFailed, err)
	}

	total := decimal.Zero
	for _, lt := range lineTotals {
		total = total.Add(lt)
	}

	o, err := domain.NewOrder(itemIDs, domain.ShippingAddress{
		Address1: cmd.ShippingAddress1,
		Address2: cmd.ShippingAddress2,
		City:     cmd.City,
		Zip:      cmd.Zip,
		Country:  cmd.Country,
		Phone:    cmd.Phone,
	}, cmd.UserID, status, total)
	if err != nil {
		s.cleanupItems(ctx, itemIDs)
		return nil, fmt.Errorf("%w: %w", domain.ErrOrderCreationFailed, err)
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		s.cleanupItems(ctx, itemIDs)
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := s.events.PublishOrderPlaced(ctx, o); err != nil {
		s.log.Warn("publish order placed event failed",
			logger.String("order_id", o.ID), logger.Error(err))
	}

	return o, nil
}

// Get returns a single order by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// List returns all orders newest-first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus moves an order forward through its lifecycle and
// returns the updated order. Regressions are rejected.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (*domain.Order, error) {
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrStatusRegression, current.Status, next)
	}

	return s.repo.UpdateStatus(ctx, id, next)
}

// Delete removes an order together with its line items. Line items go
// first: if any of them cannot be deleted the order stays intact and
// the call fails with ErrPartialCascadeFailure, so it can be retried
// (line-item deletion is idempotent).
func (s *Service) Delete(ctx context.Context, id string) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for _, itemID := range o.ItemIDs {
		g.Go(func() error {
			return s.items.Delete(gctx, itemID)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPartialCascadeFailure, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	if err := s.events.PublishOrderDeleted(ctx, id); err != nil {
		s.log.Warn("publish order deleted event failed",
			logger.String("order_id", id), logger.Error(err))
	}

	return nil
}

// cleanupItems compensates a failed placement by removing any line
// items that were already created. Failures are logged only; the
// placement error is what the caller sees.
func (s *Service) cleanupItems(ctx context.Context, itemIDs []string) {
	for _, id := range itemIDs {
		if id == "" {
			continue
		}
		if err := s.items.Delete(ctx, id); err != nil {
			s.log.Warn("cleanup of orphaned line item failed",
				logger.String("line_item_id", id), logger.Error(err))
		}
	}
}
