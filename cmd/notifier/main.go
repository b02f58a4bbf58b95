package main

import (
	"context"
	"log"

	"aws-health-notifier/internal/di"
)

func main() {
	application, err := di.InitializeApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	application.Run(context.Background())
}
