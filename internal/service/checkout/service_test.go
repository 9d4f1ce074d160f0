package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"techtrove/internal/blobstore"
	"techtrove/internal/domain"
	orderrepo "techtrove/internal/repository/order"
	productrepo "techtrove/internal/repository/product"
	"techtrove/internal/seed"
	cartstore "techtrove/internal/store/cart"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

type fixture struct {
	svc    *Service
	cart   *cartstore.Store
	orders orderrepo.Repository
	blobs  blobstore.Store
}

func newFixture() *fixture {
	blobs := blobstore.NewMemory()
	cart := cartstore.New(blobs, testLogger())
	orders := orderrepo.NewMemory(nil)
	svc := New(cart, orders, productrepo.NewMemory(seed.Products()))
	svc.now = fixedNow
	return &fixture{svc: svc, cart: cart, orders: orders, blobs: blobs}
}

func validCardInput() Input {
	return Input{
		FirstName: "Demo", LastName: "User",
		Address: "123 Main St", City: "Anytown", State: "CA", ZipCode: "12345",
		PaymentMethod: "card",
		CardNumber:    "4242 4242 4242 4242",
		ExpiryDate:    "12/25",
		CVV:           "123",
		NameOnCard:    "Demo User",
	}
}

func TestSummarizeCardOrder(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 1, UnitPriceCents: 99900, Quantity: 1},
		{ProductID: 3, UnitPriceCents: 19900, Quantity: 2},
	}
	got := Summarize(lines, "card")
	if got.SubtotalCents != 139700 {
		t.Fatalf("subtotal: got %d", got.SubtotalCents)
	}
	if got.ShippingCents != 1099 {
		t.Fatalf("shipping: got %d", got.ShippingCents)
	}
	if got.TaxCents != 11176 {
		t.Fatalf("tax: got %d", got.TaxCents)
	}
	if got.CODFeeCents != 0 {
		t.Fatalf("card orders carry no COD fee, got %d", got.CODFeeCents)
	}
	if got.TotalCents != 151975 {
		t.Fatalf("total: got %d", got.TotalCents)
	}
}

func TestSummarizeCODAddsFee(t *testing.T) {
	lines := []domain.CartLine{{ProductID: 8, UnitPriceCents: 9900, Quantity: 1}}
	got := Summarize(lines, "cod")
	if got.CODFeeCents != 200 {
		t.Fatalf("expected COD fee, got %d", got.CODFeeCents)
	}
	if got.TotalCents != 9900+1099+792+200 {
		t.Fatalf("total: got %d", got.TotalCents)
	}
}

func TestValidateCardProblems(t *testing.T) {
	f := newFixture()
	cases := []struct {
		name    string
		mutate  func(*Input)
		problem string
	}{
		{"short card number", func(in *Input) { in.CardNumber = "4242" }, "Please enter a valid card number"},
		{"short expiry", func(in *Input) { in.ExpiryDate = "1/5" }, "Please enter a valid expiry date (MM/YY)"},
		{"malformed expiry", func(in *Input) { in.ExpiryDate = "ab/cd" }, "Please enter a valid expiry date (MM/YY)"},
		{"bad month", func(in *Input) { in.ExpiryDate = "13/30" }, "Please enter a valid expiry date (MM/YY)"},
		{"expired card", func(in *Input) { in.ExpiryDate = "02/24" }, "Card has expired"},
		{"short cvv", func(in *Input) { in.CVV = "12" }, "Please enter a valid CVV"},
		{"blank name", func(in *Input) { in.NameOnCard = "  " }, "Please enter the name on card"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCardInput()
			tc.mutate(&in)
			problems := f.svc.Validate(in)
			if len(problems) != 1 || problems[0] != tc.problem {
				t.Fatalf("expected %q, got %v", tc.problem, problems)
			}
		})
	}
}

func TestValidateExpiryMonthBoundary(t *testing.T) {
	f := newFixture()
	in := validCardInput()

	// fixedNow is March 2024: the current month is still valid.
	in.ExpiryDate = "03/24"
	if problems := f.svc.Validate(in); len(problems) != 0 {
		t.Fatalf("current month should validate, got %v", problems)
	}
	in.ExpiryDate = "02/24"
	if problems := f.svc.Validate(in); len(problems) != 1 || problems[0] != "Card has expired" {
		t.Fatalf("previous month should be expired, got %v", problems)
	}
}

func TestValidateSkippedForCODAndPayPal(t *testing.T) {
	f := newFixture()
	for _, method := range []string{"cod", "paypal"} {
		in := Input{PaymentMethod: method}
		if problems := f.svc.Validate(in); len(problems) != 0 {
			t.Fatalf("%s needs no card fields, got %v", method, problems)
		}
	}
}

func TestPlaceEmptyCart(t *testing.T) {
	f := newFixture()
	_, _, err := f.svc.Place(context.Background(), validCardInput())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestPlaceInvalidFormDoesNotTouchCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	products := seed.Products()
	_ = f.cart.AddItem(ctx, products[0], 1)

	in := validCardInput()
	in.CVV = ""
	order, problems, err := f.svc.Place(ctx, in)
	if err != nil || order != nil {
		t.Fatalf("validation failure must not place an order: %v %v", order, err)
	}
	if len(problems) == 0 {
		t.Fatalf("expected validation problems")
	}
	if len(f.cart.Lines()) != 1 {
		t.Fatalf("cart must be untouched after a failed validation")
	}
}

func TestPlaceRecordsOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	products := seed.Products()
	_ = f.cart.AddItem(ctx, products[0], 1)
	_ = f.cart.AddItem(ctx, products[2], 2)

	order, problems, err := f.svc.Place(ctx, validCardInput())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Fatalf("unexpected order id %q", order.ID)
	}
	if order.Status != domain.OrderProcessing {
		t.Fatalf("new orders start processing, got %q", order.Status)
	}
	if order.PaymentMethod != "Credit Card ending in 4242" {
		t.Fatalf("unexpected payment label %q", order.PaymentMethod)
	}
	if order.ShippingAddress != "123 Main St, Anytown, CA 12345" {
		t.Fatalf("unexpected shipping address %q", order.ShippingAddress)
	}
	want := Summarize([]domain.CartLine{
		{UnitPriceCents: products[0].PriceCents, Quantity: 1},
		{UnitPriceCents: products[2].PriceCents, Quantity: 2},
	}, "card")
	if order.TotalCents != want.TotalCents {
		t.Fatalf("total: got %d want %d", order.TotalCents, want.TotalCents)
	}

	if len(f.cart.Lines()) != 0 {
		t.Fatalf("cart should be cleared after checkout")
	}
	stored, err := f.orders.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("order should be recorded: %v", err)
	}
	if len(stored.Items) != 2 || stored.Items[0].Product.Name != products[0].Name {
		t.Fatalf("unexpected recorded items: %+v", stored.Items)
	}
}

func TestPlacePaymentLabels(t *testing.T) {
	ctx := context.Background()
	for method, label := range map[string]string{"cod": "Cash on Delivery", "paypal": "PayPal"} {
		f := newFixture()
		_ = f.cart.AddItem(ctx, seed.Products()[7], 1)
		in := validCardInput()
		in.PaymentMethod = method
		order, _, err := f.svc.Place(ctx, in)
		if err != nil {
			t.Fatalf("place %s: %v", method, err)
		}
		if order.PaymentMethod != label {
			t.Fatalf("method %s: got label %q", method, order.PaymentMethod)
		}
	}
}
