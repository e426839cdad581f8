package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/user"
)

type UserHandler struct {
	svc *app.Service
}

func NewUserHandler(svc *app.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterUser(c *gin.Context) {
	var cmd app.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	u, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	// the password hash is excluded by the domain json tags
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
