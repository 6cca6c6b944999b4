package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse là cấu trúc lỗi chuẩn trả về cho browser
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`   // Mã lỗi (xem codes.go)
	Message string `json:"message"` // Thông báo hiển thị cho người dùng
}

// RespondWithError trả về lỗi theo định dạng chuẩn
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: message,
	})
}

// Các hàm tắt cho những lỗi hay gặp

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Bạn phải đăng nhập để tiếp tục"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Bạn không có quyền thực hiện thao tác này"
	}
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Lỗi server. Vui lòng thử lại sau"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// ValidationErrorResponse kèm theo lỗi của từng trường trong form
type ValidationErrorResponse struct {
	ErrorResponse
	Fields map[string]string `json:"fields"`
}

// RespondWithValidationError trả về lỗi 400 kèm thông báo cho từng trường
func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		ErrorResponse: ErrorResponse{
			Success: false,
			Error:   ValidationInvalidInput,
			Message: "Vui lòng kiểm tra lại thông tin đã nhập",
		},
		Fields: fields,
	})
}

func BadGateway(c *gin.Context, message string) {
	if message == "" {
		message = "Không kết nối được máy chủ. Vui lòng thử lại sau"
	}
	RespondWithError(c, http.StatusBadGateway, InternalGatewayError, message)
}
