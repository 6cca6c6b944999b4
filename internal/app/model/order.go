package model

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING" // Chờ thanh toán
	PaymentStatusSuccess PaymentStatus = "SUCCESS" // Đã thanh toán
)

// Order is what order creation returns. Immutable from the client's
// perspective once created.
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
}

// PaymentQR is the response of a QR request for an order.
type PaymentQR struct {
	QRURL string `json:"qrUrl"`
}

// PaymentState is the response of a payment status query. The backend is the
// source of truth; the client only ever observes PENDING or SUCCESS.
type PaymentState struct {
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
