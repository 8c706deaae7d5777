package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
	"github.com/tuanvumaihuynh/inventory-rules/internal/storage/memory"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListAllProducts(ctx context.Context) ([]model.Product, error)
}

type productRepository struct {
	table *memory.Table[uuid.UUID, model.Product]
}

func NewProductRepository(table *memory.Table[uuid.UUID, model.Product]) ProductRepository {
	return &productRepository{
		table: table,
	}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	if err := r.table.Insert(product.ID, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r productRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := r.table.Get(id)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, translateErr(err))
	}

	return product, nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := r.table.Delete(id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, translateErr(err))
	}

	return nil
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	return r.table.List(), nil
}

func translateErr(err error) error {
	if errors.Is(err, memory.ErrKeyNotFound) {
		return ErrNotFound
	}
	return err
}
