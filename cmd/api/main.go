package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"techtrove/internal/blobstore"
	"techtrove/internal/config"
	"techtrove/internal/domain"
	"techtrove/internal/httpserver"
	categoryrepo "techtrove/internal/repository/category"
	identityrepo "techtrove/internal/repository/identity"
	orderrepo "techtrove/internal/repository/order"
	productrepo "techtrove/internal/repository/product"
	promotionrepo "techtrove/internal/repository/promotion"
	"techtrove/internal/seed"
	backofficesvc "techtrove/internal/service/backoffice"
	catalogsvc "techtrove/internal/service/catalog"
	checkoutsvc "techtrove/internal/service/checkout"
	"techtrove/internal/store/book"
	cartstore "techtrove/internal/store/cart"
	sessionstore "techtrove/internal/store/session"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("[api] load config: %v", err)
	}
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	blobs, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open blob store: %v", err)
	}
	defer blobs.Close()

	productRepo := productrepo.NewMemory(seed.Products())
	categoryRepo := categoryrepo.NewMemory(seed.Categories())
	orderRepo := orderrepo.NewMemory(seed.Orders())
	promotionRepo := promotionrepo.NewMemory(seed.Promotions())
	customerRepo := identityrepo.NewMemory(seed.Customers())
	adminRepo := identityrepo.NewMemory(seed.Admins())

	cart := cartstore.New(blobs, logger)
	userSession := sessionstore.New(blobs, customerRepo, blobstore.KeyUser, logger)
	adminSession := sessionstore.New(blobs, adminRepo, blobstore.KeyAdmin, logger)
	addresses := book.New[domain.Address](blobs, blobstore.KeyAddresses, logger)
	wallet := book.New[domain.PaymentMethod](blobs, blobstore.KeyPaymentMethods, logger)

	for name, restore := range map[string]func(context.Context) error{
		"cart":            cart.Hydrate,
		"user session":    userSession.Restore,
		"admin session":   adminSession.Restore,
		"address book":    addresses.Hydrate,
		"payment methods": wallet.Hydrate,
	} {
		if err := restore(ctx); err != nil {
			logger.Fatalf("restore %s: %v", name, err)
		}
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:      catalogsvc.New(productRepo, categoryRepo),
		Checkout:     checkoutsvc.New(cart, orderRepo, productRepo),
		Backoffice:   backofficesvc.New(orderRepo, productRepo, promotionRepo, customerRepo),
		Orders:       orderRepo,
		Cart:         cart,
		UserSession:  userSession,
		AdminSession: adminSession,
		Addresses:    addresses,
		Wallet:       wallet,
	}, httpserver.Options{
		CORSOrigins:      cfg.CORSOrigins,
		SimulatedLatency: cfg.SimulatedLatency,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openBlobStore(ctx context.Context, cfg config.Config, logger *log.Logger) (blobstore.Store, error) {
	if cfg.StorePath == "" {
		logger.Printf("no STORE_PATH set, state lives in memory for this run")
		return blobstore.NewMemory(), nil
	}
	logger.Printf("opening blob store at %s", cfg.StorePath)
	return blobstore.OpenSQLite(ctx, cfg.StorePath)
}
