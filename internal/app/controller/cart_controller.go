package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddCartItemRequest struct {
	ProductVariantID string `json:"productVariantId" binding:"required"`
	Quantity         int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart syncs the cart with the backend and returns the merged view
// GET /api/me/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)

	view := ctrl.cartService.Refresh(c.Request.Context(), token)

	log.Debug("Cart fetched", map[string]interface{}{
		"item_count": view.ItemCount,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// AddItem adds a product variant to the cart
// POST /api/me/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	view, err := ctrl.cartService.AddItem(c.Request.Context(), token, req.ProductVariantID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Số lượng phải lớn hơn 0")
			return
		}
		log.Error("Failed to add cart item", err, map[string]interface{}{
			"product_variant_id": req.ProductVariantID,
		})
		apperrors.RespondGatewayError(c, err, apperrors.CartUpdateFailed, "Thêm vào giỏ hàng thất bại")
		return
	}

	log.Info("Cart item added", map[string]interface{}{
		"product_variant_id": req.ProductVariantID,
		"quantity":           req.Quantity,
	})
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    view,
	})
}

// UpdateItem changes a cart line's quantity
// PATCH /api/me/cart/items/:id
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)
	itemID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart update request", map[string]interface{}{
			"item_id": itemID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	view, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), token, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Số lượng phải lớn hơn 0")
			return
		}
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"item_id": itemID,
		})
		apperrors.RespondGatewayError(c, err, apperrors.CartUpdateFailed, "Cập nhật giỏ hàng thất bại")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// RemoveItem deletes a cart line
// DELETE /api/me/cart/items/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)
	itemID := c.Param("id")

	view, err := ctrl.cartService.RemoveItem(c.Request.Context(), token, itemID)
	if err != nil {
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"item_id": itemID,
		})
		apperrors.RespondGatewayError(c, err, apperrors.CartUpdateFailed, "Xóa sản phẩm khỏi giỏ hàng thất bại")
		return
	}

	log.Info("Cart item removed", map[string]interface{}{
		"item_id": itemID,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}
