package model

// CartLine is the wire shape of one cart row as the backend returns it.
type CartLine struct {
	ID               string `json:"id"`
	ProductName      string `json:"productName"`
	UnitPrice        int64  `json:"unitPrice"`
	Quantity         int    `json:"quantity"`
	ProductVariantID string `json:"productVariantId"`
	ImageURL         string `json:"imageUrl,omitempty"`
}

// CartLineItem is one row of the session cart as shown to the browser.
// The ID is always server-assigned; the client never fabricates one.
// UnitPrice is in VND, which has no minor unit.
type CartLineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity"`
}

// CartView is the enriched cart returned by GET /api/me/cart.
type CartView struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"itemCount"`
	Subtotal  int64          `json:"subtotal"`
}
