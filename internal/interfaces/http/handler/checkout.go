package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/storefront/cartsync/internal/application/cart"
	"github.com/storefront/cartsync/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout handoff and completion endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *cartapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *cartapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CompleteRequest represents a post-payment completion request. Product ids
// are optional; when absent the selection persisted at handoff is used.
type CompleteRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// Begin computes the checkout summary and persists the selection before the
// client navigates to the payment flow
func (h *CheckoutHandler) Begin(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.checkoutService.Begin(c.Request.Context(), sess)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Complete reconciles cart and order state after the payment flow confirms
func (h *CheckoutHandler) Complete(c *gin.Context) {
	var req CompleteRequest
	if len(c.Request.Header.Get("Content-Type")) > 0 && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "malformed request body")
			return
		}
	}
	sess := middleware.GetSession(c)

	view, err := h.checkoutService.Complete(c.Request.Context(), sess, req.ProductIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("", h.Begin)
		checkout.POST("/complete", h.Complete)
	}
}
