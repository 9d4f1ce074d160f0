package backoffice

import (
	"context"
	"errors"
	"testing"
	"time"

	"techtrove/internal/domain"
	identityrepo "techtrove/internal/repository/identity"
	orderrepo "techtrove/internal/repository/order"
	productrepo "techtrove/internal/repository/product"
	promotionrepo "techtrove/internal/repository/promotion"
	"techtrove/internal/seed"
)

func newService() *Service {
	return New(
		orderrepo.NewMemory(seed.Orders()),
		productrepo.NewMemory(seed.Products()),
		promotionrepo.NewMemory(seed.Promotions()),
		identityrepo.NewMemory(seed.Customers()),
	)
}

func TestDashboardAggregates(t *testing.T) {
	svc := newService()
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	orders := seed.Orders()
	if stats.TotalOrders != len(orders) {
		t.Fatalf("total orders: got %d want %d", stats.TotalOrders, len(orders))
	}
	var wantRevenue int64
	for _, o := range orders {
		wantRevenue += o.TotalCents
	}
	if stats.TotalRevenueCents != wantRevenue {
		t.Fatalf("revenue: got %d want %d", stats.TotalRevenueCents, wantRevenue)
	}
	if stats.OrdersByStatus[domain.OrderShipped] != 1 || stats.OrdersByStatus[domain.OrderDelivered] != 1 {
		t.Fatalf("unexpected status breakdown: %v", stats.OrdersByStatus)
	}

	for _, p := range stats.LowStock {
		if p.Inventory.Available >= LowStockThreshold {
			t.Fatalf("product %d is not low stock", p.ID)
		}
	}
	if len(stats.LowStock) != 3 {
		t.Fatalf("expected 3 low stock products in the seed set, got %d", len(stats.LowStock))
	}

	if len(stats.RecentOrders) == 0 || stats.RecentOrders[0].ID != "ORD-54321" {
		t.Fatalf("recent orders should be newest first: %+v", stats.RecentOrders)
	}
}

func TestDashboardExcludesCancelledRevenue(t *testing.T) {
	ctx := context.Background()
	orders := orderrepo.NewMemory(seed.Orders())
	svc := New(orders, productrepo.NewMemory(nil), promotionrepo.NewMemory(nil), identityrepo.NewMemory(nil))

	before, _ := svc.Dashboard(ctx)
	if _, err := orders.SetStatus(ctx, "ORD-12345", domain.OrderCancelled); err != nil {
		t.Fatalf("set status: %v", err)
	}
	after, _ := svc.Dashboard(ctx)

	if after.TotalRevenueCents >= before.TotalRevenueCents {
		t.Fatalf("cancelled order should drop out of revenue: %d -> %d", before.TotalRevenueCents, after.TotalRevenueCents)
	}
	if after.OrdersByStatus[domain.OrderCancelled] != 1 {
		t.Fatalf("cancelled order should still count by status: %v", after.OrdersByStatus)
	}
}

func TestAnalyticsGroupsByCategory(t *testing.T) {
	svc := newService()
	rows, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if len(rows) == 0 {
		t.Fatalf("expected category rows")
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].RevenueCents > rows[i-1].RevenueCents {
			t.Fatalf("rows should be sorted by revenue descending: %+v", rows)
		}
	}
	// The seed history sells two pairs of earbuds in one order.
	for _, row := range rows {
		if row.Category == "audio" && row.UnitsSold != 2 {
			t.Fatalf("audio units: got %d", row.UnitsSold)
		}
	}
}

func TestUpdateOrderStatusValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.UpdateOrderStatus(ctx, "ORD-12345", "misplaced"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}

	order, err := svc.UpdateOrderStatus(ctx, "ORD-12345", domain.OrderDelivered)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if order.Status != domain.OrderDelivered {
		t.Fatalf("status not applied: %+v", order)
	}

	if _, err := svc.UpdateOrderStatus(ctx, "ORD-00000", domain.OrderShipped); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateOrderTracking(t *testing.T) {
	svc := newService()
	order, err := svc.UpdateOrderTracking(context.Background(), "ORD-54321", "TRK-11111")
	if err != nil {
		t.Fatalf("update tracking: %v", err)
	}
	if order.TrackingNumber != "TRK-11111" {
		t.Fatalf("tracking not applied: %+v", order)
	}
}

func TestAdjustInventoryRecomputesStockFlag(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.AdjustInventory(ctx, 9, domain.Inventory{Total: 80, Available: 12, Reserved: 0})
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if !p.InStock {
		t.Fatalf("restocked product should be in stock: %+v", p)
	}

	p, err = svc.AdjustInventory(ctx, 1, domain.Inventory{Total: 120, Available: 0, Reserved: 0})
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if p.InStock {
		t.Fatalf("sold-out product should be out of stock: %+v", p)
	}
}

func TestListPaymentsDerivedFromOrders(t *testing.T) {
	ctx := context.Background()
	orders := orderrepo.NewMemory(seed.Orders())
	svc := New(orders, productrepo.NewMemory(nil), promotionrepo.NewMemory(nil), identityrepo.NewMemory(nil))
	_, _ = orders.SetStatus(ctx, "ORD-67890", domain.OrderCancelled)

	payments, err := svc.ListPayments(ctx)
	if err != nil {
		t.Fatalf("payments: %v", err)
	}
	byID := map[string]Payment{}
	for _, p := range payments {
		byID[p.ID] = p
	}

	card := byID["PAY-12345"]
	if card.OrderID != "ORD-12345" || card.Method != "card" || card.Status != "completed" {
		t.Fatalf("unexpected card payment: %+v", card)
	}
	refunded := byID["PAY-67890"]
	if refunded.Method != "paypal" || refunded.Status != "refunded" {
		t.Fatalf("cancelled order should show a refunded paypal payment: %+v", refunded)
	}
	cod := byID["PAY-54321"]
	if cod.Method != "cash on delivery" {
		t.Fatalf("unexpected COD method: %+v", cod)
	}
}

func TestListCustomersMasksSecrets(t *testing.T) {
	svc := newService()
	customers, err := svc.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("customers: %v", err)
	}
	if len(customers) != len(seed.Customers()) {
		t.Fatalf("expected all seed customers, got %d", len(customers))
	}
	for _, c := range customers {
		if len(c.MaskedSecret) == 0 || c.MaskedSecret[:4] != "****" {
			t.Fatalf("secret not masked: %+v", c)
		}
		for _, id := range seed.Customers() {
			if id.ID == c.ID && c.MaskedSecret == id.Secret {
				t.Fatalf("secret leaked in the clear: %+v", c)
			}
		}
	}
}

func TestPromotionStatusDerivedFromWindow(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	svc.now = func() time.Time {
		return time.Date(time.Now().UTC().Year(), time.July, 15, 0, 0, 0, 0, time.UTC)
	}

	promos, err := svc.ListPromotions(ctx)
	if err != nil {
		t.Fatalf("promotions: %v", err)
	}
	byCode := map[string]PromotionView{}
	for _, p := range promos {
		byCode[p.Code] = p
	}
	if byCode["SUMMER25"].Status != domain.PromotionActive {
		t.Fatalf("summer sale should be active in July: %+v", byCode["SUMMER25"])
	}
	if byCode["HOLIDAY50"].Status != domain.PromotionScheduled {
		t.Fatalf("holiday special should be scheduled in July: %+v", byCode["HOLIDAY50"])
	}
	if byCode["BLACKFRI30"].Status != domain.PromotionScheduled {
		t.Fatalf("black friday should be scheduled in July: %+v", byCode["BLACKFRI30"])
	}
}

func TestPromotionCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.CreatePromotion(ctx, domain.Promotion{
		Name: "Flash Sale", Code: "FLASH15", Type: domain.PromotionPercentage, Value: 15,
		StartDate: time.Now().UTC().Add(-time.Hour), EndDate: time.Now().UTC().Add(time.Hour), UsageLimit: 50,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Status != domain.PromotionActive {
		t.Fatalf("unexpected created promotion: %+v", created)
	}

	created.Value = 20
	updated, err := svc.UpdatePromotion(ctx, created.Promotion)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Value != 20 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.DeletePromotion(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeletePromotion(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
