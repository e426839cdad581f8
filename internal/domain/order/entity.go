package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single product/quantity pairing. Once attached to an
// Order it is owned by that order and only removed by its cascade.
type LineItem struct {
	ID        string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}

func NewLineItem(productID string, quantity int) (*LineItem, error) {
	if productID == "" {
		return nil, ErrInvalidReference
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &LineItem{
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}, nil
}

type ShippingAddress struct {
	Address1 string
	Address2 string
	City     string
	Zip      string
	Country  string
	Phone    string
}

// Order aggregates line items with a snapshotted total. ItemIDs keep
// submission order, which governs display order.
type Order struct {
	ID          string
	ItemIDs     []string
	Shipping    ShippingAddress
	Status      Status
	TotalPrice  decimal.Decimal
	UserID      string
	DateOrdered time.Time
}

func NewOrder(itemIDs []string, shipping ShippingAddress, userID string, status Status, total decimal.Decimal) (*Order, error) {
	if len(itemIDs) == 0 {
		return nil, ErrEmptyOrder
	}
	if userID == "" {
		return nil, ErrMissingField
	}

	return &Order{
		ItemIDs:     itemIDs,
		Shipping:    shipping,
		Status:      status,
		TotalPrice:  total,
		UserID:      userID,
		DateOrdered: time.Now().UTC(),
	}, nil
}

// LineTotal is the snapshot price of one line: unit price times
// quantity, rounded at the line level before any summation.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
