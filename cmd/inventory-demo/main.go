package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-rules/internal/config"
	"github.com/tuanvumaihuynh/inventory-rules/internal/inventory"
	"github.com/tuanvumaihuynh/inventory-rules/internal/log"
	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
	"github.com/tuanvumaihuynh/inventory-rules/internal/repository"
	"github.com/tuanvumaihuynh/inventory-rules/internal/service"
	"github.com/tuanvumaihuynh/inventory-rules/internal/storage/memory"
	"github.com/tuanvumaihuynh/inventory-rules/internal/telemetry"
	"github.com/tuanvumaihuynh/inventory-rules/pkg/correlationid"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running inventory demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log       config.Log
		Inventory config.Inventory
		Otel      config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Outcomes go to stdout, logs to stderr.
	logger := log.NewSlogLogger(cfg.Log, os.Stderr)

	cleanupTracer, err := telemetry.InitTracer(cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	loc, err := time.LoadLocation(cfg.Inventory.Timezone)
	if err != nil {
		return fmt.Errorf("error loading timezone: %w", err)
	}

	productRepository := repository.NewProductRepository(memory.NewTable[uuid.UUID, model.Product]())
	orderRepository := repository.NewOrderRepository(memory.NewTable[uuid.UUID, model.Order]())

	rules, err := inventory.New(inventory.WithMaxDiscount(cfg.Inventory.MaxDiscountPercent))
	if err != nil {
		return fmt.Errorf("error creating inventory rules: %w", err)
	}
	inventoryService := service.NewInventoryService(logger, rules, productRepository, orderRepository)

	ctx = correlationid.NewContext(ctx, correlationid.New())
	logger.InfoContext(ctx, "inventory demo started")

	d := newDemo(inventoryService, os.Stdout, loc)
	if err := d.run(ctx); err != nil {
		return fmt.Errorf("error running scenarios: %w", err)
	}

	logger.InfoContext(ctx, "inventory demo finished")

	return nil
}
