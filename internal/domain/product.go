package domain

// Inventory tracks stock counts for a product.
type Inventory struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
}

// Product is one catalog entry. Prices are kept in cents.
type Product struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	PriceCents           int64     `json:"priceCents"`
	DiscountPercent      int       `json:"discountPercent"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	Image                string    `json:"image"`
	Category             string    `json:"category"`
	Brand                string    `json:"brand"`
	Model                string    `json:"model"`
	Rating               float64   `json:"rating"`
	Reviews              int       `json:"reviews"`
	InStock              bool      `json:"inStock"`
	Inventory            Inventory `json:"inventory"`
	Weight               string    `json:"weight,omitempty"`
	Dimensions           string    `json:"dimensions,omitempty"`
	Color                string    `json:"color,omitempty"`
	Warranty             string    `json:"warranty,omitempty"`
}

// OnSale reports whether the product carries a discount.
func (p Product) OnSale() bool {
	return p.DiscountPercent > 0
}
