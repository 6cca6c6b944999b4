package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type PaymentController struct {
	orderGateway appGateway.OrderGateway
}

func NewPaymentController(orderGateway appGateway.OrderGateway) *PaymentController {
	return &PaymentController{
		orderGateway: orderGateway,
	}
}

// GetPaymentStatus reads one order's payment state
// GET /api/payment/status?orderId=
func (ctrl *PaymentController) GetPaymentStatus(c *gin.Context) {
	token := middleware.GetToken(c)

	orderID := c.Query("orderId")
	if orderID == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Thiếu mã đơn hàng")
		return
	}

	state, err := ctrl.orderGateway.PaymentStatus(c.Request.Context(), token, orderID)
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.PaymentStatusFailed, "Không kiểm tra được trạng thái thanh toán")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    state,
	})
}

type RequestQRRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// RequestQR asks the backend for a payment QR for an existing order.
// POST /api/sepay
func (ctrl *PaymentController) RequestQR(c *gin.Context) {
	token := middleware.GetToken(c)

	var req RequestQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Thiếu mã đơn hàng")
		return
	}

	qr, err := ctrl.orderGateway.RequestQR(c.Request.Context(), token, req.OrderID)
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.PaymentQRFailed, "Tạo QR thanh toán thất bại")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    qr,
	})
}

// RelayWebhook passes the payment provider's webhook through to the
// backend. The provider calls the public BFF host, the backend stays
// private.
// POST /api/sepay/webhook
func (ctrl *PaymentController) RelayWebhook(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	env, err := ctrl.orderGateway.RelayWebhook(c.Request.Context(), json.RawMessage(payload))
	if err != nil {
		log.Error("Webhook relay failed", err, nil)
		apperrors.RespondGatewayError(c, err, apperrors.PaymentStatusFailed, "Không xử lý được thông báo thanh toán")
		return
	}

	log.Info("Payment webhook relayed", map[string]interface{}{
		"bytes": len(payload),
	})
	respondEnvelope(c, env)
}
