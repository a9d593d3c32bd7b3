package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/storefront/cartsync/internal/application/cart"
	"github.com/storefront/cartsync/internal/interfaces/http/middleware"
)

// OrderHandler handles order-history endpoints
type OrderHandler struct {
	BaseHandler
	syncService *cartapp.SyncService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(syncService *cartapp.SyncService) *OrderHandler {
	return &OrderHandler{syncService: syncService}
}

// List returns the order history, refreshed from the cart service
func (h *OrderHandler) List(c *gin.Context) {
	sess := middleware.GetSession(c)

	orders, err := h.syncService.Orders(c.Request.Context(), sess)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", h.List)
}
