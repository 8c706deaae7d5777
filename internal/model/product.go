package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// ProductCandidate holds the caller supplied fields of a product before it is added.
type ProductCandidate struct {
	Name           string               `json:"name"`
	Description    string               `json:"description" validate:"required"`
	Price          decimal.Decimal      `json:"price" validate:"decimal_gt=0"`
	ExpirationDate mo.Option[time.Time] `json:"expiration_date"`
}

type Product struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Price          decimal.Decimal      `json:"price"`
	ExpirationDate mo.Option[time.Time] `json:"expiration_date"`
	CreatedAt      time.Time            `json:"created_at"`
}
