package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/cart"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

// CartHandler serves the per-user cart
type CartHandler struct {
	cart   *cart.Service
	logger *logger.Logger
}

// NewCartHandler creates a cart handler
func NewCartHandler(cartService *cart.Service, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cart:   cartService,
		logger: log,
	}
}

// GetCart handles GET /api/cart?userId=
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.cart.Get(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, items)
}

// AddItem handles POST /api/cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req entities.AddCartItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	item, err := h.cart.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondMessage(c, item, "Item added to cart")
}

// UpdateItem handles PUT /api/cart/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var patch entities.CartItemPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.logger, err)
		return
	}

	item, err := h.cart.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondMessage(c, item, "Cart item updated")
}

// RemoveItem handles DELETE /api/cart/:id?userId=
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.cart.Remove(c.Request.Context(), c.Query("userId"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondMessage(c, nil, "Item removed from cart")
}

// ClearCart handles POST /api/cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	var req entities.ClearCartRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.cart.Clear(c.Request.Context(), req.UserID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondMessage(c, nil, "Cart cleared")
}
