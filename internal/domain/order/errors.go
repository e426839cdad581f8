package order

import "errors"

var (
	ErrInvalidQuantity       = errors.New("quantity must be greater than zero")
	ErrInvalidReference      = errors.New("product reference does not exist")
	ErrNotFound              = errors.New("record not found")
	ErrEmptyOrder            = errors.New("order must contain at least one line item")
	ErrMissingField          = errors.New("required field is missing")
	ErrOrderCreationFailed   = errors.New("order could not be placed")
	ErrPartialCascadeFailure = errors.New("some line items could not be deleted")
	ErrInvalidStatus         = errors.New("unknown order status")
	ErrStatusRegression      = errors.New("order status cannot move backwards")
)
