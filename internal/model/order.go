package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID           uuid.UUID                  `json:"id"`
	ProductID    uuid.UUID                  `json:"product_id"`
	CustomerName string                     `json:"customer_name"`
	Qty          int                        `json:"qty"`
	Discount     mo.Option[decimal.Decimal] `json:"discount"`
	CreatedAt    time.Time                  `json:"created_at"`
}
