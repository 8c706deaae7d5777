package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
	"github.com/tuanvumaihuynh/inventory-rules/internal/storage/memory"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order model.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error)
	UpdateOrder(ctx context.Context, order model.Order) error
}

type orderRepository struct {
	table *memory.Table[uuid.UUID, model.Order]
}

func NewOrderRepository(table *memory.Table[uuid.UUID, model.Order]) OrderRepository {
	return &orderRepository{
		table: table,
	}
}

func (r orderRepository) CreateOrder(ctx context.Context, order model.Order) error {
	if err := r.table.Insert(order.ID, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

func (r orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error) {
	order, err := r.table.Get(id)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order %s: %w", id, translateErr(err))
	}

	return order, nil
}

func (r orderRepository) UpdateOrder(ctx context.Context, order model.Order) error {
	if err := r.table.Update(order.ID, order); err != nil {
		return fmt.Errorf("update order %s: %w", order.ID, translateErr(err))
	}

	return nil
}
