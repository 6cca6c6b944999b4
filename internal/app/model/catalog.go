package model

// Variant is one purchasable configuration of a product, with its own price
// and stock.
type Variant struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Price int64  `json:"price,omitempty"`
	Stock int    `json:"stock,omitempty"`
}

// Product is a catalog entry as the backend returns it. The BFF only reads
// the fields it needs for image enrichment and export; everything else is
// relayed to the browser untouched.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  string    `json:"categoryId,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Active      bool      `json:"active,omitempty"`
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
