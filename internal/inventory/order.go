package inventory

import (
	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-rules/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
)

type placeOrderInput struct {
	CustomerName string `validate:"required"`
	Qty          int    `validate:"gt=0"`
}

var placeOrderRules = []fieldRule{
	{field: "CustomerName", err: apperr.ErrCustomerNameIsEmpty},
	{field: "Qty", err: apperr.ErrQuantityIsInvalid},
}

// PlaceOrder returns a new order for qty units of product.
//
// Rules, in order: customer name not empty, qty > 0, product present.
// The order starts without a discount.
func (r *Rules) PlaceOrder(product mo.Option[model.Product], customerName string, qty int) (model.Order, error) {
	if err := r.v.Validate(placeOrderInput{CustomerName: customerName, Qty: qty}); err != nil {
		return model.Order{}, firstFailure(err, placeOrderRules)
	}

	p, ok := product.Get()
	if !ok {
		return model.Order{}, apperr.ErrProductIsEmpty
	}

	id, err := r.generateID()
	if err != nil {
		return model.Order{}, err
	}

	return model.Order{
		ID:           id,
		ProductID:    p.ID,
		CustomerName: customerName,
		Qty:          qty,
		Discount:     mo.None[decimal.Decimal](),
		CreatedAt:    r.now(),
	}, nil
}

// ApplyDiscount returns a copy of order carrying the discount percentage.
//
// Rules, in order: product present and referenced by the order, percent > 0,
// percent <= the maximum discount (20 by default). An existing discount is replaced.
func (r *Rules) ApplyDiscount(product mo.Option[model.Product], order model.Order, percent decimal.Decimal) (model.Order, error) {
	p, ok := product.Get()
	if !ok || p.ID != order.ProductID {
		return model.Order{}, apperr.ErrProductNotFound
	}

	if !percent.IsPositive() {
		return model.Order{}, apperr.ErrDiscountIsInvalid
	}

	if percent.GreaterThan(r.maxDiscount) {
		return model.Order{}, apperr.ErrDiscountTooLarge
	}

	order.Discount = mo.Some(percent)
	return order, nil
}
