package domain

// CartLine is one product-quantity pairing in the cart. At most one line
// exists per product id; insertion order is preserved.
type CartLine struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Image          string `json:"image,omitempty"`
}

// TotalCents is the line total at the recorded unit price.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}
