// Package seed holds the static mock data set backing the demo storefront.
// Nothing here is created or destroyed at runtime; login only selects from
// these records and the admin console mutates in-memory copies.
package seed

import (
	"time"

	"techtrove/internal/domain"
)

// Customers returns the hardcoded storefront credential list.
func Customers() []domain.Identity {
	return []domain.Identity{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Secret: "password123"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Secret: "password123"},
		{ID: 3, Name: "Demo User", Email: "demo@example.com", Secret: "demo123"},
	}
}

// Admins returns the hardcoded admin console credential list.
func Admins() []domain.Identity {
	return []domain.Identity{
		{ID: 1, Name: "Admin User", Email: "admin@example.com", Secret: "admin123", Role: domain.RoleAdmin},
		{ID: 2, Name: "Store Manager", Email: "manager@example.com", Secret: "manager123", Role: domain.RoleManager},
	}
}

func Categories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Smartphones", Slug: "smartphones", Image: "/images/categories/smartphones.jpg", Description: "Latest smartphones from top brands"},
		{ID: 2, Name: "Laptops", Slug: "laptops", Image: "/images/categories/laptops.jpg", Description: "Powerful laptops for work and play"},
		{ID: 3, Name: "Audio", Slug: "audio", Image: "/images/categories/audio.jpg", Description: "Headphones, speakers, and audio accessories"},
		{ID: 4, Name: "TVs", Slug: "tvs", Image: "/images/categories/tvs.jpg", Description: "Smart TVs and home entertainment systems"},
		{ID: 5, Name: "Cameras", Slug: "cameras", Image: "/images/categories/cameras.jpg", Description: "Digital cameras, DSLRs, and accessories"},
		{ID: 6, Name: "Gaming", Slug: "gaming", Image: "/images/categories/gaming.jpg", Description: "Gaming consoles, accessories, and peripherals"},
		{ID: 7, Name: "Wearables", Slug: "wearables", Image: "/images/categories/wearables.jpg", Description: "Smartwatches, fitness trackers, and wearable tech"},
		{ID: 8, Name: "Smart Home", Slug: "smart-home", Image: "/images/categories/smart-home.jpg", Description: "Smart speakers, hubs, and home automation"},
	}
}

func Products() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Nebula X5 Pro", Description: "6.7\" OLED flagship with a 108MP camera and two-day battery.",
			PriceCents: 99900, DiscountPercent: 15, DiscountedPriceCents: 84915,
			Image: "/images/products/nebula-x5-pro.jpg", Category: "smartphones", Brand: "Nebula", Model: "X5 Pro",
			Rating: 4.7, Reviews: 1284, InStock: true,
			Inventory: domain.Inventory{Total: 120, Available: 84, Reserved: 6},
			Weight:    "195 g", Dimensions: "160.8 x 78.1 x 7.4 mm", Color: "Graphite", Warranty: "2 years",
		},
		{
			ID: 2, Name: "AeroBook 14", Description: "Featherweight 14\" ultrabook with 16GB RAM and all-day battery.",
			PriceCents: 129900, DiscountPercent: 0, DiscountedPriceCents: 129900,
			Image: "/images/products/aerobook-14.jpg", Category: "laptops", Brand: "Aero", Model: "AB14-2024",
			Rating: 4.5, Reviews: 652, InStock: true,
			Inventory: domain.Inventory{Total: 60, Available: 41, Reserved: 3},
			Weight:    "1.2 kg", Dimensions: "312 x 221 x 14.9 mm", Color: "Silver", Warranty: "1 year",
		},
		{
			ID: 3, Name: "PulseBuds ANC", Description: "True wireless earbuds with adaptive noise cancelling.",
			PriceCents: 19900, DiscountPercent: 20, DiscountedPriceCents: 15920,
			Image: "/images/products/pulsebuds-anc.jpg", Category: "audio", Brand: "Pulse", Model: "PB-ANC2",
			Rating: 4.3, Reviews: 2391, InStock: true,
			Inventory: domain.Inventory{Total: 400, Available: 312, Reserved: 12},
			Weight:    "54 g", Dimensions: "60 x 45 x 25 mm", Color: "Black", Warranty: "1 year",
		},
		{
			ID: 4, Name: "Vista 55\" QLED TV", Description: "55-inch 4K QLED smart TV with 120Hz panel.",
			PriceCents: 79900, DiscountPercent: 10, DiscountedPriceCents: 71910,
			Image: "/images/products/vista-55-qled.jpg", Category: "tvs", Brand: "Vista", Model: "Q55X",
			Rating: 4.6, Reviews: 418, InStock: true,
			Inventory: domain.Inventory{Total: 35, Available: 18, Reserved: 2},
			Weight:    "14.8 kg", Dimensions: "1231 x 707 x 26 mm", Color: "Black", Warranty: "2 years",
		},
		{
			ID: 5, Name: "Shutter Z50 Mirrorless", Description: "24MP mirrorless camera with in-body stabilization.",
			PriceCents: 149900, DiscountPercent: 0, DiscountedPriceCents: 149900,
			Image: "/images/products/shutter-z50.jpg", Category: "cameras", Brand: "Shutter", Model: "Z50",
			Rating: 4.8, Reviews: 203, InStock: true,
			Inventory: domain.Inventory{Total: 25, Available: 11, Reserved: 1},
			Weight:    "590 g", Dimensions: "134 x 101 x 69 mm", Color: "Black", Warranty: "2 years",
		},
		{
			ID: 6, Name: "Raptor One Console", Description: "Next-gen console with 1TB SSD and 4K/120 output.",
			PriceCents: 49900, DiscountPercent: 0, DiscountedPriceCents: 49900,
			Image: "/images/products/raptor-one.jpg", Category: "gaming", Brand: "Raptor", Model: "One",
			Rating: 4.9, Reviews: 5210, InStock: true,
			Inventory: domain.Inventory{Total: 200, Available: 7, Reserved: 20},
			Weight:    "4.4 kg", Dimensions: "301 x 151 x 104 mm", Color: "White", Warranty: "1 year",
		},
		{
			ID: 7, Name: "Stride S2 Smartwatch", Description: "GPS smartwatch with heart-rate and sleep tracking.",
			PriceCents: 24900, DiscountPercent: 25, DiscountedPriceCents: 18675,
			Image: "/images/products/stride-s2.jpg", Category: "wearables", Brand: "Stride", Model: "S2",
			Rating: 4.2, Reviews: 983, InStock: true,
			Inventory: domain.Inventory{Total: 150, Available: 96, Reserved: 4},
			Weight:    "38 g", Dimensions: "45 x 45 x 10.7 mm", Color: "Midnight", Warranty: "1 year",
		},
		{
			ID: 8, Name: "HomeHub Mini", Description: "Compact smart speaker with voice assistant and hub radio.",
			PriceCents: 9900, DiscountPercent: 30, DiscountedPriceCents: 6930,
			Image: "/images/products/homehub-mini.jpg", Category: "smart-home", Brand: "HomeHub", Model: "Mini",
			Rating: 4.1, Reviews: 3478, InStock: true,
			Inventory: domain.Inventory{Total: 500, Available: 421, Reserved: 9},
			Weight:    "180 g", Dimensions: "98 x 98 x 43 mm", Color: "Chalk", Warranty: "1 year",
		},
		{
			ID: 9, Name: "BassLine Studio Headphones", Description: "Over-ear studio headphones with 40h battery.",
			PriceCents: 34900, DiscountPercent: 0, DiscountedPriceCents: 34900,
			Image: "/images/products/bassline-studio.jpg", Category: "audio", Brand: "BassLine", Model: "BL-900",
			Rating: 4.4, Reviews: 767, InStock: false,
			Inventory: domain.Inventory{Total: 80, Available: 0, Reserved: 0},
			Weight:    "280 g", Dimensions: "190 x 165 x 82 mm", Color: "Blue", Warranty: "2 years",
		},
		{
			ID: 10, Name: "AeroBook 16 Creator", Description: "16\" creator laptop with discrete GPU and 32GB RAM.",
			PriceCents: 219900, DiscountPercent: 5, DiscountedPriceCents: 208905,
			Image: "/images/products/aerobook-16.jpg", Category: "laptops", Brand: "Aero", Model: "AB16-CR",
			Rating: 4.6, Reviews: 145, InStock: true,
			Inventory: domain.Inventory{Total: 30, Available: 5, Reserved: 2},
			Weight:    "2.1 kg", Dimensions: "355 x 248 x 16.8 mm", Color: "Space Gray", Warranty: "2 years",
		},
	}
}

// CartLines returns the demo cart written by the seed command. Unit prices
// are list prices; the cart never charges the discounted price.
func CartLines() []domain.CartLine {
	products := Products()
	return []domain.CartLine{
		{ProductID: products[2].ID, Name: products[2].Name, UnitPriceCents: products[2].PriceCents, Quantity: 2, Image: products[2].Image},
		{ProductID: products[7].ID, Name: products[7].Name, UnitPriceCents: products[7].PriceCents, Quantity: 1, Image: products[7].Image},
	}
}

// Addresses returns the demo address book written by the seed command.
func Addresses() []domain.Address {
	return []domain.Address{
		{ID: "addr_home", Name: "Demo User", Line1: "123 Main St", City: "Anytown", State: "CA", ZipCode: "12345", Country: "United States", IsDefault: true, Phone: "555-0100"},
		{ID: "addr_work", Name: "Demo User", Line1: "456 Oak Ave", Line2: "Suite 210", City: "Somewhere", State: "NY", ZipCode: "67890", Country: "United States", Phone: "555-0101"},
	}
}

// PaymentMethods returns the demo wallet written by the seed command.
func PaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: "pm_visa", Type: domain.PaymentTypeCard, Name: "Visa ending in 4242", CardNumber: "**** **** **** 4242", ExpiryDate: "12/25", CardType: "visa", IsDefault: true},
		{ID: "pm_paypal", Type: domain.PaymentTypePayPal, Name: "PayPal", Email: "demo@example.com"},
	}
}

// ShippingFeeCents matches the flat rate the storefront checkout charges.
const ShippingFeeCents int64 = 1099

// Orders returns the mock order history. Totals are discounted item prices
// plus the flat shipping fee.
func Orders() []domain.Order {
	products := Products()
	now := time.Now().UTC()

	orders := []domain.Order{
		{
			ID:     "ORD-12345",
			Date:   now.Add(-2 * 24 * time.Hour),
			Status: domain.OrderShipped,
			Items: []domain.OrderItem{
				{Product: products[0], Quantity: 1, PriceCents: products[0].DiscountedPriceCents},
				{Product: products[2], Quantity: 2, PriceCents: products[2].DiscountedPriceCents},
			},
			ShippingAddress: "123 Main St, Anytown, CA 12345",
			PaymentMethod:   "Credit Card ending in 4242",
			TrackingNumber:  "TRK-987654321",
		},
		{
			ID:     "ORD-67890",
			Date:   now.Add(-10 * 24 * time.Hour),
			Status: domain.OrderDelivered,
			Items: []domain.OrderItem{
				{Product: products[4], Quantity: 1, PriceCents: products[4].DiscountedPriceCents},
			},
			ShippingAddress: "123 Main St, Anytown, CA 12345",
			PaymentMethod:   "PayPal",
		},
		{
			ID:     "ORD-54321",
			Date:   now,
			Status: domain.OrderProcessing,
			Items: []domain.OrderItem{
				{Product: products[1], Quantity: 1, PriceCents: products[1].DiscountedPriceCents},
			},
			ShippingAddress: "456 Oak Ave, Somewhere, NY 67890",
			PaymentMethod:   "Cash on Delivery",
		},
	}

	for i := range orders {
		var subtotal int64
		for _, item := range orders[i].Items {
			subtotal += item.PriceCents * int64(item.Quantity)
		}
		orders[i].TotalCents = subtotal + ShippingFeeCents
	}
	return orders
}

func Promotions() []domain.Promotion {
	year := time.Now().UTC().Year()
	date := func(month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	return []domain.Promotion{
		{ID: "PROMO-1", Name: "Summer Sale", Code: "SUMMER25", Type: domain.PromotionPercentage, Value: 25, StartDate: date(time.June, 1), EndDate: date(time.August, 31), UsageLimit: 100, UsageCount: 45},
		{ID: "PROMO-2", Name: "Holiday Special", Code: "HOLIDAY50", Type: domain.PromotionPercentage, Value: 50, StartDate: date(time.December, 1), EndDate: date(time.December, 31), UsageLimit: 200, UsageCount: 0},
		{ID: "PROMO-3", Name: "Welcome Discount", Code: "WELCOME10", Type: domain.PromotionPercentage, Value: 10, StartDate: date(time.January, 1), EndDate: date(time.December, 31), UsageLimit: 1000, UsageCount: 329},
		{ID: "PROMO-4", Name: "Free Shipping", Code: "FREESHIP", Type: domain.PromotionShipping, Value: 0, StartDate: date(time.January, 1), EndDate: date(time.December, 31), UsageLimit: 500, UsageCount: 78},
		{ID: "PROMO-5", Name: "Black Friday", Code: "BLACKFRI30", Type: domain.PromotionPercentage, Value: 30, StartDate: date(time.November, 24), EndDate: date(time.November, 27), UsageLimit: 1000, UsageCount: 940},
	}
}
