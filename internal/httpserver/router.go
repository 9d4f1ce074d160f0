package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"techtrove/internal/domain"
	"techtrove/internal/service/backoffice"
	"techtrove/internal/service/catalog"
	"techtrove/internal/service/checkout"
	"techtrove/internal/store/book"
	"techtrove/internal/store/cart"
	"techtrove/internal/store/session"
)

// CatalogService serves the storefront's read-only product views.
type CatalogService interface {
	ListProducts(ctx context.Context, in catalog.ListInput) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	ListDeals(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
}

// CheckoutService places orders from the current cart.
type CheckoutService interface {
	Place(ctx context.Context, in checkout.Input) (*domain.Order, []string, error)
}

// OrderHistory is the customer-facing slice of the order repository.
type OrderHistory interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

// BackofficeService serves the admin console.
type BackofficeService interface {
	Dashboard(ctx context.Context) (*backoffice.DashboardStats, error)
	Analytics(ctx context.Context) ([]backoffice.CategorySales, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error)
	UpdateOrderTracking(ctx context.Context, id, trackingNumber string) (*domain.Order, error)
	ListInventory(ctx context.Context) ([]domain.Product, error)
	AdjustInventory(ctx context.Context, productID int, inv domain.Inventory) (*domain.Product, error)
	ListPayments(ctx context.Context) ([]backoffice.Payment, error)
	ListCustomers(ctx context.Context) ([]backoffice.Customer, error)
	ListPromotions(ctx context.Context) ([]backoffice.PromotionView, error)
	CreatePromotion(ctx context.Context, p domain.Promotion) (*backoffice.PromotionView, error)
	UpdatePromotion(ctx context.Context, p domain.Promotion) (*backoffice.PromotionView, error)
	DeletePromotion(ctx context.Context, id string) error
}

// Deps carries everything the routes need. The stores are the single
// mutable state of the process; handlers never hold state of their own.
type Deps struct {
	Catalog    CatalogService
	Checkout   CheckoutService
	Backoffice BackofficeService
	Orders     OrderHistory

	Cart         *cart.Store
	UserSession  *session.Store
	AdminSession *session.Store
	Addresses    *book.Book[domain.Address]
	Wallet       *book.Book[domain.PaymentMethod]
}

// Options are the router knobs that come from configuration.
type Options struct {
	// CORSOrigins lists the allowed browser origins; empty disables CORS.
	CORSOrigins []string
	// SimulatedLatency delays login and checkout to mimic a remote backend.
	SimulatedLatency time.Duration
}

func (d Deps) validate() error {
	switch {
	case d.Catalog == nil:
		return errors.New("httpserver: Catalog is required")
	case d.Checkout == nil:
		return errors.New("httpserver: Checkout is required")
	case d.Backoffice == nil:
		return errors.New("httpserver: Backoffice is required")
	case d.Orders == nil:
		return errors.New("httpserver: Orders is required")
	case d.Cart == nil:
		return errors.New("httpserver: Cart is required")
	case d.UserSession == nil:
		return errors.New("httpserver: UserSession is required")
	case d.AdminSession == nil:
		return errors.New("httpserver: AdminSession is required")
	case d.Addresses == nil:
		return errors.New("httpserver: Addresses is required")
	case d.Wallet == nil:
		return errors.New("httpserver: Wallet is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(opts.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = opts.CORSOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")

	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/products/:id", getProductHandler(deps.Catalog))
	api.GET("/deals", listDealsHandler(deps.Catalog))
	api.GET("/categories", listCategoriesHandler(deps.Catalog))
	api.GET("/categories/:slug", getCategoryHandler(deps.Catalog))

	api.GET("/cart", getCartHandler(deps.Cart))
	api.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
	api.PATCH("/cart/items/:id", updateCartItemHandler(deps.Cart))
	api.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart))
	api.DELETE("/cart", clearCartHandler(deps.Cart))

	api.POST("/auth/login", loginHandler(deps.UserSession, opts.SimulatedLatency))
	api.POST("/auth/logout", logoutHandler(deps.UserSession))
	api.GET("/auth/session", sessionHandler(deps.UserSession))

	api.POST("/checkout", checkoutHandler(deps.Checkout, opts.SimulatedLatency))

	account := api.Group("/account", requireSession(deps.UserSession))
	account.PUT("/profile", updateProfileHandler(deps.UserSession))
	account.PUT("/password", updateSecretHandler(deps.UserSession))
	account.GET("/orders", listOrdersHandler(deps.Orders))
	account.GET("/orders/:id", getOrderHandler(deps.Orders))
	account.GET("/addresses", listAddressesHandler(deps.Addresses))
	account.POST("/addresses", addAddressHandler(deps.Addresses))
	account.PUT("/addresses/:id", updateAddressHandler(deps.Addresses))
	account.DELETE("/addresses/:id", removeAddressHandler(deps.Addresses))
	account.POST("/addresses/:id/default", defaultAddressHandler(deps.Addresses))
	account.GET("/payment-methods", listPaymentMethodsHandler(deps.Wallet))
	account.POST("/payment-methods", addPaymentMethodHandler(deps.Wallet))
	account.PUT("/payment-methods/:id", updatePaymentMethodHandler(deps.Wallet))
	account.DELETE("/payment-methods/:id", removePaymentMethodHandler(deps.Wallet))
	account.POST("/payment-methods/:id/default", defaultPaymentMethodHandler(deps.Wallet))

	api.POST("/admin/auth/login", loginHandler(deps.AdminSession, opts.SimulatedLatency))
	api.POST("/admin/auth/logout", logoutHandler(deps.AdminSession))
	api.GET("/admin/auth/session", sessionHandler(deps.AdminSession))

	admin := api.Group("/admin", requireSession(deps.AdminSession))
	admin.GET("/dashboard", dashboardHandler(deps.Backoffice))
	admin.GET("/analytics", analyticsHandler(deps.Backoffice))
	admin.GET("/inventory", listInventoryHandler(deps.Backoffice))
	admin.PUT("/inventory/:id", adjustInventoryHandler(deps.Backoffice))
	admin.GET("/orders", adminListOrdersHandler(deps.Backoffice))
	admin.GET("/orders/:id", adminGetOrderHandler(deps.Backoffice))
	admin.PUT("/orders/:id/status", orderStatusHandler(deps.Backoffice))
	admin.PUT("/orders/:id/tracking", orderTrackingHandler(deps.Backoffice))
	admin.GET("/payments", listPaymentsHandler(deps.Backoffice))
	admin.GET("/customers", listCustomersHandler(deps.Backoffice))
	admin.GET("/promotions", listPromotionsHandler(deps.Backoffice))
	admin.POST("/promotions", createPromotionHandler(deps.Backoffice))
	admin.PUT("/promotions/:id", updatePromotionHandler(deps.Backoffice))
	admin.DELETE("/promotions/:id", deletePromotionHandler(deps.Backoffice))

	return router, nil
}

// requireSession rejects requests while the session store holds no
// authenticated identity. Loading counts as unauthenticated; the guard
// never blocks waiting for a restore.
func requireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Status() != session.StatusAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
