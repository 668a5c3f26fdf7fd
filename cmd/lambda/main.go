package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/basel-ax/dalleimg/internal/app"
	"github.com/basel-ax/dalleimg/internal/config"
	"github.com/basel-ax/dalleimg/internal/handler"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	lambda.Start(handler.NewLambdaHandler(a.Pipeline).Handle)
}
