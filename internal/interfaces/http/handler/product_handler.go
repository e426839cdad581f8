package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	app "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/catalog"
)

type ProductHandler struct {
	svc *app.Service
}

func NewProductHandler(svc *app.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var cmd app.CreateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListProducts accepts an optional ?categories=a,b,c filter.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var categoryIDs []string
	if raw := c.Query("categories"); raw != "" {
		categoryIDs = strings.Split(raw, ",")
	}

	products, err := h.svc.ListProducts(c.Request.Context(), categoryIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var cmd app.CreateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	p, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "the product is deleted"})
}

func (h *ProductHandler) CountProducts(c *gin.Context) {
	count, err := h.svc.CountProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"productCount": count})
}

func (h *ProductHandler) FeaturedProducts(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Param("count"), 10, 64)

	products, err := h.svc.FeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
