package catalog

import "errors"

var (
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrInvalidStock     = errors.New("stock count must not be negative")
	ErrInvalidCategory  = errors.New("category does not exist")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)
