package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

type SubmitCheckoutRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Ward        string `json:"ward"`
	Street      string `json:"street"`
	Note        string `json:"note"`
}

// Submit places the order and starts the QR payment session
// POST /api/checkout
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)

	var req SubmitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	shipping := model.ShippingInfo{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Ward:        req.Ward,
		Street:      req.Street,
		Note:        req.Note,
	}

	view, err := ctrl.checkoutService.Submit(c.Request.Context(), token, shipping)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			log.Warn("Checkout form rejected", map[string]interface{}{
				"fields": len(verr.Fields),
			})
			apperrors.RespondWithValidationError(c, verr.Fields)
			return
		}
		apperrors.RespondGatewayError(c, err, apperrors.OrderCreateFailed, "Tạo đơn hàng thất bại")
		return
	}

	log.Info("Checkout submitted", map[string]interface{}{
		"session_id": view.ID,
		"state":      view.State,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// Get returns the current state of a checkout session
// GET /api/checkout/:id
func (ctrl *CheckoutController) Get(c *gin.Context) {
	view, err := ctrl.checkoutService.Get(c.Param("id"))
	if err != nil {
		apperrors.NotFound(c, apperrors.CheckoutNotFound, "Không tìm thấy phiên thanh toán")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// Check asks the backend for payment status right now instead of waiting
// for the next poll
// POST /api/checkout/:id/check
func (ctrl *CheckoutController) Check(c *gin.Context) {
	view, err := ctrl.checkoutService.CheckNow(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCheckoutNotFound) {
			apperrors.NotFound(c, apperrors.CheckoutNotFound, "Không tìm thấy phiên thanh toán")
			return
		}
		if errors.Is(err, service.ErrCheckoutInvalidState) {
			apperrors.BadRequest(c, apperrors.CheckoutInvalidState, "Phiên thanh toán không còn chờ thanh toán")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// Abandon stops watching a session, the order stays payable later
// DELETE /api/checkout/:id
func (ctrl *CheckoutController) Abandon(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID := c.Param("id")

	if err := ctrl.checkoutService.Abandon(sessionID); err != nil {
		apperrors.NotFound(c, apperrors.CheckoutNotFound, "Không tìm thấy phiên thanh toán")
		return
	}

	log.Info("Checkout abandoned", map[string]interface{}{
		"session_id": sessionID,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Đã hủy phiên thanh toán",
	})
}
