package main

import (
	"context"
	"log"

	"listingadmin/internal/app"
	"listingadmin/internal/config"
)

func main() {
	cfg := config.Load()

	application, err := app.NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
