// cmd/seeddemo/main.go — loads the demo dataset into the remote backend so
// remote mode starts with the same restaurant mock mode shows.
// Usage: MONGO_URI=... go run ./cmd/seeddemo
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"restopanel/internal/config"
	"restopanel/internal/infra"
	"restopanel/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if !cfg.IsRemoteEnabled() {
		log.Fatal("MONGO_URI is required to seed the remote backend")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := infra.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}

	bundle := repository.NewMongoBundle(db)
	if err := repository.SeedFixtures(bundle); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("demo dataset seeded into %s\n", cfg.MongoDatabase)
}
