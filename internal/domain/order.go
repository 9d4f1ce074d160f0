package domain

import "time"

// Order statuses, in rough lifecycle order.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

type OrderItem struct {
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	PriceCents int64   `json:"priceCents"`
}

type Order struct {
	ID              string      `json:"id"`
	Date            time.Time   `json:"date"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	TotalCents      int64       `json:"totalCents"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
