package checkout

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"techtrove/internal/domain"
)

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// Flat fees and rates charged by the storefront, in cents / percent.
const (
	ShippingCents = int64(1099)
	CODFeeCents   = int64(200)
	TaxPercent    = 8
)

type cartStore interface {
	Lines() []domain.CartLine
	Clear(ctx context.Context) error
}

type orderRepo interface {
	Add(ctx context.Context, o domain.Order) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

// Service turns the cart into an order after validating the payment form.
// "Payment processing" is a simulated success; the artificial latency is
// applied in the HTTP layer, not here.
type Service struct {
	cart     cartStore
	orders   orderRepo
	products productRepo
	now      func() time.Time
}

func New(cart cartStore, orders orderRepo, products productRepo) *Service {
	return &Service{cart: cart, orders: orders, products: products, now: time.Now}
}

// Input carries the checkout form.
type Input struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	PaymentMethod string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	NameOnCard    string `json:"nameOnCard"`
}

// Summary is the order math shown before and after placing the order.
type Summary struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	CODFeeCents   int64 `json:"codFeeCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Summarize computes the totals for the given lines and payment method.
func Summarize(lines []domain.CartLine, paymentMethod string) Summary {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.TotalCents()
	}
	out := Summary{
		SubtotalCents: subtotal,
		ShippingCents: ShippingCents,
		TaxCents:      subtotal * TaxPercent / 100,
	}
	if paymentMethod == "cod" {
		out.CODFeeCents = CODFeeCents
	}
	out.TotalCents = out.SubtotalCents + out.ShippingCents + out.TaxCents + out.CODFeeCents
	return out
}

// Validate checks the payment form and returns inline messages. Cash on
// delivery and PayPal need no card fields. Problems are presentational,
// never errors.
func (s *Service) Validate(in Input) []string {
	if in.PaymentMethod != "card" {
		return nil
	}
	var problems []string

	cleaned := strings.ReplaceAll(in.CardNumber, " ", "")
	if len(cleaned) < 13 {
		problems = append(problems, "Please enter a valid card number")
	}

	if len(in.ExpiryDate) < 5 {
		problems = append(problems, "Please enter a valid expiry date (MM/YY)")
	} else if expired, ok := s.cardExpired(in.ExpiryDate); !ok {
		problems = append(problems, "Please enter a valid expiry date (MM/YY)")
	} else if expired {
		problems = append(problems, "Card has expired")
	}

	if len(in.CVV) < 3 {
		problems = append(problems, "Please enter a valid CVV")
	}
	if strings.TrimSpace(in.NameOnCard) == "" {
		problems = append(problems, "Please enter the name on card")
	}
	return problems
}

func (s *Service) cardExpired(expiry string) (expired, ok bool) {
	parts := strings.SplitN(expiry, "/", 2)
	if len(parts) != 2 {
		return false, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false, false
	}
	now := s.now()
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return true, true
	}
	return false, true
}

// Place validates the form and, on success, records the order and clears
// the cart. Validation problems come back as the middle return with a nil
// order and a nil error.
func (s *Service) Place(ctx context.Context, in Input) (*domain.Order, []string, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}
	if problems := s.Validate(in); len(problems) > 0 {
		return nil, problems, nil
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := domain.OrderItem{Quantity: line.Quantity, PriceCents: line.UnitPriceCents}
		if p, err := s.products.GetByID(ctx, line.ProductID); err == nil {
			item.Product = *p
		} else {
			// Product gone from the catalog; keep the line snapshot.
			item.Product = domain.Product{ID: line.ProductID, Name: line.Name, PriceCents: line.UnitPriceCents, Image: line.Image}
		}
		items = append(items, item)
	}

	summary := Summarize(lines, in.PaymentMethod)
	order := domain.Order{
		ID:              newOrderID(),
		Date:            s.now().UTC(),
		Status:          domain.OrderProcessing,
		Items:           items,
		TotalCents:      summary.TotalCents,
		ShippingAddress: shippingAddress(in),
		PaymentMethod:   paymentLabel(in),
	}

	if err := s.orders.Add(ctx, order); err != nil {
		return nil, nil, err
	}
	if err := s.cart.Clear(ctx); err != nil {
		return nil, nil, err
	}
	return &order, nil, nil
}

func shippingAddress(in Input) string {
	parts := []string{
		strings.TrimSpace(in.Address),
		strings.TrimSpace(in.City),
		strings.TrimSpace(in.State) + " " + strings.TrimSpace(in.ZipCode),
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func paymentLabel(in Input) string {
	switch in.PaymentMethod {
	case "cod":
		return "Cash on Delivery"
	case "paypal":
		return "PayPal"
	default:
		cleaned := strings.ReplaceAll(in.CardNumber, " ", "")
		if len(cleaned) >= 4 {
			return "Credit Card ending in " + cleaned[len(cleaned)-4:]
		}
		return "Credit Card"
	}
}

func newOrderID() string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("ORD-%d", time.Now().UnixNano()%100000)
	}
	n := binary.BigEndian.Uint32(buf[:]) % 90000
	return fmt.Sprintf("ORD-%d", 10000+n)
}
