package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	app "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/order"
	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderResponse struct {
	ID               string          `json:"id"`
	ItemIDs          []string        `json:"orderItems"`
	ShippingAddress1 string          `json:"shippingAddress1"`
	ShippingAddress2 string          `json:"shippingAddress2,omitempty"`
	City             string          `json:"city"`
	Zip              string          `json:"zip"`
	Country          string          `json:"country"`
	Phone            string          `json:"phone"`
	Status           string          `json:"status"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	UserID           string          `json:"user"`
	DateOrdered      time.Time       `json:"dateOrdered"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:               o.ID,
		ItemIDs:          o.ItemIDs,
		ShippingAddress1: o.Shipping.Address1,
		ShippingAddress2: o.Shipping.Address2,
		City:             o.Shipping.City,
		Zip:              o.Shipping.Zip,
		Country:          o.Shipping.Country,
		Phone:            o.Shipping.Phone,
		Status:           o.Status.String(),
		TotalPrice:       o.TotalPrice,
		UserID:           o.UserID,
		DateOrdered:      o.DateOrdered,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var cmd app.PlaceOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	o, err := h.svc.PlaceOrder(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(o))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "the order is deleted"})
}
