package model

type CheckoutState string

// The submit round-trip is synchronous, so a session is only ever seen in
// FORM, AWAITING_PAYMENT or PAID.
const (
	CheckoutStateForm            CheckoutState = "FORM"
	CheckoutStateAwaitingPayment CheckoutState = "AWAITING_PAYMENT"
	CheckoutStatePaid            CheckoutState = "PAID"
)

// ShippingInfo is the checkout form payload. All address fields are required
// before any order is created.
type ShippingInfo struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Ward        string `json:"ward"`
	Street      string `json:"street"`
	Note        string `json:"note,omitempty"`
}

// CheckoutView is the snapshot of a checkout session returned to the browser.
type CheckoutView struct {
	ID          string        `json:"id"`
	State       CheckoutState `json:"state"`
	OrderNumber string        `json:"orderNumber,omitempty"`
	QRURL       string        `json:"qrUrl,omitempty"`
	Message     string        `json:"message,omitempty"`
	RedirectTo  string        `json:"redirectTo,omitempty"`
}
