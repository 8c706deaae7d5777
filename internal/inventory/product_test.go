package inventory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-rules/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-rules/internal/inventory"
	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
	"github.com/tuanvumaihuynh/inventory-rules/pkg/zerror"
)

func TestAddProduct(t *testing.T) {
	rules := newRules(t)

	t.Run("Should add product without expiration date", func(t *testing.T) {
		product, err := rules.AddProduct(validCandidate())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.NotEmpty(t, product.ID.String())
		assert.Equal(t, "Yves", product.Name)
		assert.Equal(t, "Eau de parfum", product.Description)
		assert.True(t, decimal.NewFromInt(1).Equal(product.Price))
		assert.True(t, product.ExpirationDate.IsAbsent())
		assert.Equal(t, fixedNow, product.CreatedAt)
	})

	t.Run("Should add product with empty name and future expiration date", func(t *testing.T) {
		expiration := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
		product, err := rules.AddProduct(model.ProductCandidate{
			Name:           "",
			Price:          decimal.NewFromInt(15),
			Description:    "Some Description",
			ExpirationDate: mo.Some(expiration),
		})
		require.NoError(t, err)

		assert.Empty(t, product.Name)
		got, ok := product.ExpirationDate.Get()
		require.True(t, ok)
		assert.Equal(t, expiration, got)
	})

	t.Run("Should accept expiration date equal to now", func(t *testing.T) {
		c := validCandidate()
		c.ExpirationDate = mo.Some(fixedNow)

		_, err := rules.AddProduct(c)
		assert.NoError(t, err)
	})

	t.Run("Should generate unique ids across rapid calls", func(t *testing.T) {
		r, err := inventory.New()
		require.NoError(t, err)
		seen := make(map[uuid.UUID]struct{}, 1000)
		for range 1000 {
			product, err := r.AddProduct(validCandidate())
			require.NoError(t, err)
			seen[product.ID] = struct{}{}
		}
		assert.Len(t, seen, 1000)
	})

	t.Run("Should return error when id generation fails", func(t *testing.T) {
		r := newRules(t, inventory.WithIDGenerator(failingIDGenerator))

		_, err := r.AddProduct(validCandidate())
		require.Error(t, err)

		var zErr zerror.ZError
		assert.NotErrorAs(t, err, &zErr)
	})
}

func TestAddProductRules(t *testing.T) {
	rules := newRules(t)
	past := mo.Some(fixedNow.Add(-time.Nanosecond))
	future := mo.Some(fixedNow.Add(24 * time.Hour))

	tests := []struct {
		name      string
		candidate model.ProductCandidate
		wantErr   zerror.ZError
	}{
		{
			name:      "Should reject empty description",
			candidate: model.ProductCandidate{Name: "a", Price: decimal.NewFromInt(1), Description: ""},
			wantErr:   apperr.ErrDescriptionIsEmpty,
		},
		{
			name:      "Should reject empty description before invalid price and expiration",
			candidate: model.ProductCandidate{Price: decimal.NewFromInt(-1), ExpirationDate: past},
			wantErr:   apperr.ErrDescriptionIsEmpty,
		},
		{
			name:      "Should reject zero price",
			candidate: model.ProductCandidate{Description: "d", Price: decimal.Zero},
			wantErr:   apperr.ErrPriceIsInvalid,
		},
		{
			name:      "Should reject negative price",
			candidate: model.ProductCandidate{Description: "d", Price: decimal.NewFromFloat(-0.01)},
			wantErr:   apperr.ErrPriceIsInvalid,
		},
		{
			name:      "Should reject invalid price before expiration",
			candidate: model.ProductCandidate{Description: "d", Price: decimal.NewFromInt(-5), ExpirationDate: past},
			wantErr:   apperr.ErrPriceIsInvalid,
		},
		{
			name:      "Should reject expired product",
			candidate: model.ProductCandidate{Description: "d", Price: decimal.NewFromInt(3), ExpirationDate: past},
			wantErr:   apperr.ErrProductIsExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.AddProduct(tt.candidate)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var zErr zerror.ZError
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.wantErr.Code(), zErr.Code())
		})
	}

	t.Run("Should accept small positive price with future expiration", func(t *testing.T) {
		_, err := rules.AddProduct(model.ProductCandidate{
			Description:    "d",
			Price:          decimal.RequireFromString("0.0001"),
			ExpirationDate: future,
		})
		assert.NoError(t, err)
	})

	t.Run("Should accept positive price below float64 precision", func(t *testing.T) {
		c := validCandidate()
		c.Price = decimal.New(1, -400)

		product, err := rules.AddProduct(c)
		require.NoError(t, err)
		assert.True(t, c.Price.Equal(product.Price))
	})

	t.Run("Should describe the failing field in the parent error", func(t *testing.T) {
		c := validCandidate()
		c.Price = decimal.Zero

		_, err := rules.AddProduct(c)
		require.Error(t, err)

		var zErr zerror.ZError
		require.ErrorAs(t, err, &zErr)
		require.Error(t, zErr.Parent())
		assert.Contains(t, zErr.Parent().Error(), "Price must be greater than 0")
	})
}

func TestDeleteProduct(t *testing.T) {
	rules := newRules(t)

	t.Run("Should allow deleting existing product", func(t *testing.T) {
		product, err := rules.AddProduct(validCandidate())
		require.NoError(t, err)

		assert.NoError(t, rules.DeleteProduct(mo.Some(product)))
	})

	t.Run("Should reject deleting missing product", func(t *testing.T) {
		err := rules.DeleteProduct(mo.None[model.Product]())
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)
	})
}
