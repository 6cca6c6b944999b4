package errors

import (
	stderrors "errors"

	"github.com/dsev/locknlock-bff/pkg/gateway"
	"github.com/gin-gonic/gin"
)

// RespondGatewayError dịch lỗi từ backend thành phản hồi chuẩn cho browser.
// Thông báo của backend được trả nguyên văn khi có; lỗi xác thực được tách
// riêng để frontend chuyển hướng đăng nhập; lỗi mạng trả về thông báo chung.
func RespondGatewayError(c *gin.Context, err error, errorCode, fallback string) {
	switch {
	case stderrors.Is(err, gateway.ErrUnauthorized):
		Unauthorized(c, "Phiên đăng nhập không hợp lệ. Vui lòng đăng nhập lại")
	case stderrors.Is(err, gateway.ErrForbidden):
		Forbidden(c, "")
	case stderrors.Is(err, gateway.ErrNetwork):
		BadGateway(c, "")
	default:
		var apiErr *gateway.APIError
		if stderrors.As(err, &apiErr) {
			RespondWithError(c, apiErr.Status, errorCode, gateway.Message(err, fallback))
			return
		}
		InternalError(c, fallback)
	}
}
