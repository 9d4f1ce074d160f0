// Package backoffice serves the admin console: aggregate views over the
// mock data set plus the handful of mutations the console exposes. Nothing
// here reaches a real payment processor; payment rows are derived from the
// order history on every read.
package backoffice

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"techtrove/internal/domain"
)

// ErrInvalidStatus is returned for an order status outside the known set.
var ErrInvalidStatus = errors.New("invalid order status")

// LowStockThreshold is the available-count boundary for the dashboard's
// low stock list.
const LowStockThreshold = 10

type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	SetStatus(ctx context.Context, id, status string) (*domain.Order, error)
	SetTracking(ctx context.Context, id, trackingNumber string) (*domain.Order, error)
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	UpdateInventory(ctx context.Context, id int, inv domain.Inventory) (*domain.Product, error)
}

type promotionRepo interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	GetByID(ctx context.Context, id string) (*domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}

type identityRepo interface {
	List(ctx context.Context) ([]domain.Identity, error)
}

type Service struct {
	orders     orderRepo
	products   productRepo
	promotions promotionRepo
	customers  identityRepo
	now        func() time.Time
}

func New(orders orderRepo, products productRepo, promotions promotionRepo, customers identityRepo) *Service {
	return &Service{orders: orders, products: products, promotions: promotions, customers: customers, now: time.Now}
}

// DashboardStats is the admin landing page payload.
type DashboardStats struct {
	TotalRevenueCents int64            `json:"totalRevenueCents"`
	TotalOrders       int              `json:"totalOrders"`
	OrdersByStatus    map[string]int   `json:"ordersByStatus"`
	LowStock          []domain.Product `json:"lowStock"`
	RecentOrders      []domain.Order   `json:"recentOrders"`
}

// Dashboard aggregates the order history and inventory. Cancelled orders
// count toward the status breakdown but not toward revenue.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalOrders:    len(orders),
		OrdersByStatus: map[string]int{},
	}
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		if o.Status != domain.OrderCancelled {
			stats.TotalRevenueCents += o.TotalCents
		}
	}
	for _, p := range products {
		if p.Inventory.Available < LowStockThreshold {
			stats.LowStock = append(stats.LowStock, p)
		}
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].Date.After(orders[j].Date) })
	if len(orders) > 5 {
		orders = orders[:5]
	}
	stats.RecentOrders = orders
	return stats, nil
}

// CategorySales is one analytics row.
type CategorySales struct {
	Category     string `json:"category"`
	UnitsSold    int    `json:"unitsSold"`
	RevenueCents int64  `json:"revenueCents"`
}

// Analytics breaks revenue down by product category, descending by revenue.
// Cancelled orders are excluded.
func (s *Service) Analytics(ctx context.Context) ([]CategorySales, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := map[string]*CategorySales{}
	for _, o := range orders {
		if o.Status == domain.OrderCancelled {
			continue
		}
		for _, item := range o.Items {
			row, ok := byCategory[item.Product.Category]
			if !ok {
				row = &CategorySales{Category: item.Product.Category}
				byCategory[item.Product.Category] = row
			}
			row.UnitsSold += item.Quantity
			row.RevenueCents += item.PriceCents * int64(item.Quantity)
		}
	}

	out := make([]CategorySales, 0, len(byCategory))
	for _, row := range byCategory {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RevenueCents != out[j].RevenueCents {
			return out[i].RevenueCents > out[j].RevenueCents
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// UpdateOrderStatus moves an order to the given status after validating it.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.orders.SetStatus(ctx, id, status)
}

// UpdateOrderTracking records a tracking number on the order.
func (s *Service) UpdateOrderTracking(ctx context.Context, id, trackingNumber string) (*domain.Order, error) {
	return s.orders.SetTracking(ctx, id, trackingNumber)
}

// ListInventory returns the catalog with stock counts.
func (s *Service) ListInventory(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// AdjustInventory replaces a product's stock counts; the in-stock flag is
// recomputed from the new available count.
func (s *Service) AdjustInventory(ctx context.Context, productID int, inv domain.Inventory) (*domain.Product, error) {
	return s.products.UpdateInventory(ctx, productID, inv)
}

// Payment is a row in the admin payments table, derived from an order.
type Payment struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Date        time.Time `json:"date"`
	AmountCents int64     `json:"amountCents"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
}

// ListPayments derives one payment per order. Cancelled orders show as
// refunded, everything else as completed.
func (s *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Payment, 0, len(orders))
	for _, o := range orders {
		status := "completed"
		if o.Status == domain.OrderCancelled {
			status = "refunded"
		}
		out = append(out, Payment{
			ID:          "PAY-" + strings.TrimPrefix(o.ID, "ORD-"),
			OrderID:     o.ID,
			Date:        o.Date,
			AmountCents: o.TotalCents,
			Method:      paymentMethodKind(o.PaymentMethod),
			Status:      status,
		})
	}
	return out, nil
}

func paymentMethodKind(label string) string {
	if strings.Contains(label, "Card") {
		return "card"
	}
	return strings.ToLower(label)
}

// Customer is the admin customer list row; the secret is never shown in
// the clear.
type Customer struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MaskedSecret string `json:"maskedPassword"`
}

func (s *Service) ListCustomers(ctx context.Context) ([]Customer, error) {
	identities, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Customer, 0, len(identities))
	for _, id := range identities {
		out = append(out, Customer{ID: id.ID, Name: id.Name, Email: id.Email, MaskedSecret: maskSecret(id.Secret)})
	}
	return out, nil
}

func maskSecret(secret string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(secret))
	if len(encoded) > 4 {
		encoded = encoded[len(encoded)-4:]
	}
	return "****" + encoded
}

// PromotionView is a promotion with its status derived from the date window.
type PromotionView struct {
	domain.Promotion
	Status string `json:"status"`
}

func (s *Service) view(p domain.Promotion) PromotionView {
	return PromotionView{Promotion: p, Status: p.StatusAt(s.now())}
}

func (s *Service) ListPromotions(ctx context.Context) ([]PromotionView, error) {
	promos, err := s.promotions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PromotionView, 0, len(promos))
	for _, p := range promos {
		out = append(out, s.view(p))
	}
	return out, nil
}

func (s *Service) CreatePromotion(ctx context.Context, p domain.Promotion) (*PromotionView, error) {
	created, err := s.promotions.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	v := s.view(*created)
	return &v, nil
}

func (s *Service) UpdatePromotion(ctx context.Context, p domain.Promotion) (*PromotionView, error) {
	updated, err := s.promotions.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	v := s.view(*updated)
	return &v, nil
}

func (s *Service) DeletePromotion(ctx context.Context, id string) error {
	return s.promotions.Delete(ctx, id)
}
