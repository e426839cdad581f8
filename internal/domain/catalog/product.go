package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RichDescription string          `json:"richDescription"`
	Brand           string          `json:"brand"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      string          `json:"category"`
	CountInStock    int             `json:"countInStock"`
	Rating          float64         `json:"rating"`
	NumReviews      int             `json:"numReviews"`
	IsFeatured      bool            `json:"isFeatured"`
	DateCreated     time.Time       `json:"dateCreated"`
}

func NewProduct(name, description, richDescription, brand, categoryID string, price decimal.Decimal, countInStock int) (*Product, error) {
	if name == "" || categoryID == "" {
		return nil, ErrMissingField
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if countInStock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		Name:            name,
		Description:     description,
		RichDescription: richDescription,
		Brand:           brand,
		Price:           price,
		CategoryID:      categoryID,
		CountInStock:    countInStock,
		DateCreated:     time.Now().UTC(),
	}, nil
}
