package domain

// Address is one entry in the customer's address book. At most one entry in
// the set carries IsDefault.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Line1     string `json:"line1"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
	Phone     string `json:"phone"`
}

func (a Address) Key() string { return a.ID }

func (a Address) Default() bool { return a.IsDefault }

func (a Address) WithDefault(flag bool) Address {
	a.IsDefault = flag
	return a
}

// Payment method kinds.
const (
	PaymentTypeCard   = "card"
	PaymentTypePayPal = "paypal"
)

// PaymentMethod is one entry in the customer's wallet. Card numbers are
// stored already masked by the caller; only the last digits survive entry.
type PaymentMethod struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CardType   string `json:"cardType,omitempty"`
	Email      string `json:"email,omitempty"`
	IsDefault  bool   `json:"isDefault"`
}

func (p PaymentMethod) Key() string { return p.ID }

func (p PaymentMethod) Default() bool { return p.IsDefault }

func (p PaymentMethod) WithDefault(flag bool) PaymentMethod {
	p.IsDefault = flag
	return p
}
