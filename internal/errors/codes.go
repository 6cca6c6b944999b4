package errors

// Mã lỗi trả về cho frontend, dạng CATEGORY_SPECIFIC_DETAIL.
// Frontend dựa vào mã này để hiển thị thông báo phù hợp.

const (
	// ==================== Xác thực (AUTH_) ====================
	AuthUnauthorized = "AUTH_UNAUTHORIZED"  // Chưa đăng nhập
	AuthTokenExpired = "AUTH_TOKEN_EXPIRED" // Phiên đăng nhập hết hạn
	AuthTokenMissing = "AUTH_TOKEN_MISSING" // Không tìm thấy token
	AuthLoginFailed  = "AUTH_LOGIN_FAILED"  // Sai tài khoản/mật khẩu

	// ==================== Phân quyền (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN" // Không có quyền truy cập

	// ==================== Kiểm tra dữ liệu (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // Dữ liệu không hợp lệ
	ValidationRequired     = "VALIDATION_REQUIRED"      // Thiếu trường bắt buộc

	// ==================== Giỏ hàng (CART_) ====================
	CartFetchFailed  = "CART_FETCH_FAILED"   // Không tải được giỏ hàng
	CartUpdateFailed = "CART_UPDATE_FAILED"  // Cập nhật giỏ hàng thất bại
	CartItemNotFound = "CART_ITEM_NOT_FOUND" // Không tìm thấy sản phẩm trong giỏ

	// ==================== Đặt hàng / thanh toán (ORDER_, PAYMENT_) ====================
	OrderCreateFailed    = "ORDER_CREATE_FAILED"    // Tạo đơn hàng thất bại
	CheckoutNotFound     = "CHECKOUT_NOT_FOUND"     // Không tìm thấy phiên thanh toán
	CheckoutInvalidState = "CHECKOUT_INVALID_STATE" // Thao tác không hợp lệ ở trạng thái hiện tại
	PaymentQRFailed      = "PAYMENT_QR_FAILED"      // Tạo QR thanh toán thất bại
	PaymentStatusFailed  = "PAYMENT_STATUS_FAILED"  // Không kiểm tra được trạng thái thanh toán

	// ==================== Tài nguyên (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // Không tìm thấy dữ liệu

	// ==================== Hệ thống (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR"  // Lỗi server
	InternalGatewayError = "INTERNAL_GATEWAY_ERROR" // Lỗi kết nối backend
)
