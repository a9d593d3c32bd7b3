package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/storefront/cartsync/internal/application/cart"
	"github.com/storefront/cartsync/internal/interfaces/http/middleware"
)

// CartHandler handles cart and selection API endpoints
type CartHandler struct {
	BaseHandler
	syncService      *cartapp.SyncService
	selectionService *cartapp.SelectionService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(syncService *cartapp.SyncService, selectionService *cartapp.SelectionService) *CartHandler {
	return &CartHandler{
		syncService:      syncService,
		selectionService: selectionService,
	}
}

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SetSelectionRequest represents a request to select or deselect all lines
type SetSelectionRequest struct {
	All *bool `json:"all" binding:"required"`
}

// PreselectRequest carries a navigation hint naming a product to preselect
type PreselectRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Get returns the cart view, refreshed from the cart service
func (h *CartHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.syncService.Refresh(c.Request.Context(), sess)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// AddItem adds a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "product_id is required")
		return
	}
	sess := middleware.GetSession(c)

	view, err := h.syncService.AddItem(c.Request.Context(), sess, req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Increment raises a line's quantity by one
func (h *CartHandler) Increment(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.syncService.IncrementItem(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Decrement lowers a line's quantity by one, removing the line at quantity 1
func (h *CartHandler) Decrement(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.syncService.DecrementItem(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// RemoveItem deletes a single cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.syncService.RemoveItem(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// RemoveSelected deletes every selected cart line
func (h *CartHandler) RemoveSelected(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.syncService.RemoveSelected(c.Request.Context(), sess)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// ToggleSelection flips one line's selection state
func (h *CartHandler) ToggleSelection(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.selectionService.Toggle(sess, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// SetSelection selects or deselects every line
func (h *CartHandler) SetSelection(c *gin.Context) {
	var req SetSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "all is required")
		return
	}
	sess := middleware.GetSession(c)

	h.Success(c, h.selectionService.SetAll(sess, *req.All))
}

// Preselect marks the line for a product as selected, if present
func (h *CartHandler) Preselect(c *gin.Context) {
	var req PreselectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "product_id is required")
		return
	}
	sess := middleware.GetSession(c)

	h.Success(c, h.selectionService.Preselect(sess, req.ProductID))
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.POST("/items/:id/increment", h.Increment)
		cart.POST("/items/:id/decrement", h.Decrement)
		cart.DELETE("/items/:id", h.RemoveItem)
		cart.DELETE("/items", h.RemoveSelected)
		cart.PUT("/selection/:id", h.ToggleSelection)
		cart.PUT("/selection", h.SetSelection)
		cart.POST("/selection/preselect", h.Preselect)
	}
}
