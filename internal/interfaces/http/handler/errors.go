package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/user"
)

// respondError maps domain errors onto HTTP status codes: validation
// failures are 4xx, missing records 404, everything else 500.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"success": false, "error": err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidReference),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrMissingField),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrStatusRegression),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, catalog.ErrMissingField),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidStock),
		errors.Is(err, user.ErrMissingField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
