// Command seed writes the demo cart, address book, and wallet blobs into
// the configured blob store so a fresh install starts with account data.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"techtrove/internal/blobstore"
	"techtrove/internal/config"
	"techtrove/internal/seed"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("[seed] load config: %v", err)
	}
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.StorePath == "" {
		logger.Fatalf("STORE_PATH is required; an in-memory store has nothing to seed")
	}

	ctx := context.Background()
	blobs, err := blobstore.OpenSQLite(ctx, cfg.StorePath)
	if err != nil {
		logger.Fatalf("open blob store: %v", err)
	}
	defer blobs.Close()

	for key, value := range map[string]interface{}{
		blobstore.KeyCart:           seed.CartLines(),
		blobstore.KeyAddresses:      seed.Addresses(),
		blobstore.KeyPaymentMethods: seed.PaymentMethods(),
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			logger.Fatalf("marshal %s: %v", key, err)
		}
		if err := blobs.Set(ctx, key, raw); err != nil {
			logger.Fatalf("write %s: %v", key, err)
		}
		logger.Printf("wrote %s", key)
	}

	logger.Println("seed applied")
}
