package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/inventory-rules/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-rules/internal/inventory"
	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
	"github.com/tuanvumaihuynh/inventory-rules/internal/repository"
	"github.com/tuanvumaihuynh/inventory-rules/pkg/zerror"
)

var tracer = otel.Tracer("internal/service")

type InventoryService interface {
	AddProduct(ctx context.Context, candidate model.ProductCandidate) (model.Product, error)
	PlaceOrder(ctx context.Context, productID uuid.UUID, customerName string, qty int) (model.Order, error)
	ApplyDiscount(ctx context.Context, orderID uuid.UUID, percent decimal.Decimal) (model.Order, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	ListAllProducts(ctx context.Context) ([]model.Product, error)
}

type inventoryService struct {
	logger      *slog.Logger
	rules       *inventory.Rules
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewInventoryService(
	logger *slog.Logger,
	rules *inventory.Rules,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) InventoryService {
	return &inventoryService{
		logger:      logger.With(slog.String("service", "inventory")),
		rules:       rules,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *inventoryService) AddProduct(ctx context.Context, candidate model.ProductCandidate) (model.Product, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.AddProduct")
	defer span.End()

	product, err := s.rules.AddProduct(candidate)
	if err != nil {
		return model.Product{}, s.fail(ctx, span, "add product rejected", err)
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return model.Product{}, s.fail(ctx, span, "error saving product",
			fmt.Errorf("product repository create product: %w", err))
	}

	span.SetAttributes(attribute.String("product_id", product.ID.String()))
	s.logger.InfoContext(ctx, "product added", slog.String("product_id", product.ID.String()))

	return product, nil
}

func (s *inventoryService) PlaceOrder(ctx context.Context, productID uuid.UUID, customerName string, qty int) (model.Order, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.PlaceOrder", trace.WithAttributes(
		attribute.String("product_id", productID.String()),
		attribute.Int("qty", qty),
	))
	defer span.End()

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return model.Order{}, s.fail(ctx, span, "error finding product", err)
	}

	order, err := s.rules.PlaceOrder(product, customerName, qty)
	if err != nil {
		return model.Order{}, s.fail(ctx, span, "place order rejected", err)
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return model.Order{}, s.fail(ctx, span, "error saving order",
			fmt.Errorf("order repository create order: %w", err))
	}

	span.SetAttributes(attribute.String("order_id", order.ID.String()))
	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("product_id", order.ProductID.String()),
		slog.Int("qty", order.Qty),
	)

	return order, nil
}

func (s *inventoryService) ApplyDiscount(ctx context.Context, orderID uuid.UUID, percent decimal.Decimal) (model.Order, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.ApplyDiscount", trace.WithAttributes(
		attribute.String("order_id", orderID.String()),
		attribute.String("percent", percent.String()),
	))
	defer span.End()

	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Order{}, s.fail(ctx, span, "apply discount rejected", apperr.ErrOrderNotFound.WrapParent(err))
	}
	if err != nil {
		return model.Order{}, s.fail(ctx, span, "error finding order",
			fmt.Errorf("order repository get order: %w", err))
	}

	product, err := s.findProduct(ctx, order.ProductID)
	if err != nil {
		return model.Order{}, s.fail(ctx, span, "error finding product", err)
	}

	discounted, err := s.rules.ApplyDiscount(product, order, percent)
	if err != nil {
		return model.Order{}, s.fail(ctx, span, "apply discount rejected", err)
	}

	if err := s.orderRepo.UpdateOrder(ctx, discounted); err != nil {
		return model.Order{}, s.fail(ctx, span, "error saving order",
			fmt.Errorf("order repository update order: %w", err))
	}

	s.logger.InfoContext(ctx, "discount applied",
		slog.String("order_id", discounted.ID.String()),
		slog.String("percent", percent.String()),
	)

	return discounted, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "InventoryService.DeleteProduct", trace.WithAttributes(
		attribute.String("product_id", productID.String()),
	))
	defer span.End()

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return s.fail(ctx, span, "error finding product", err)
	}

	if err := s.rules.DeleteProduct(product); err != nil {
		return s.fail(ctx, span, "delete product rejected", err)
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return s.fail(ctx, span, "error deleting product",
			fmt.Errorf("product repository delete product: %w", err))
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", productID.String()))

	return nil
}

func (s *inventoryService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.ListAllProducts")
	defer span.End()

	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, "error listing products",
			fmt.Errorf("product repository list all products: %w", err))
	}

	return products, nil
}

// findProduct returns None when the product does not exist.
func (s *inventoryService) findProduct(ctx context.Context, id uuid.UUID) (mo.Option[model.Product], error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return mo.None[model.Product](), nil
	}
	if err != nil {
		return mo.None[model.Product](), fmt.Errorf("product repository get product: %w", err)
	}

	return mo.Some(product), nil
}

// fail records err on the span and logs it. Rule failures log at WARN, anything else at ERROR.
func (s *inventoryService) fail(ctx context.Context, span trace.Span, msg string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	logLevel := slog.LevelError
	attrs := []slog.Attr{slog.Any("error", err)}
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		logLevel = slog.LevelWarn
		attrs = append(attrs, slog.String("error_status", zErr.Status().String()))
		span.SetAttributes(attribute.String("error.status", zErr.Status().String()))
	}
	s.logger.LogAttrs(ctx, logLevel, msg, attrs...)

	return err
}
