package inventory

import (
	"github.com/samber/mo"

	"github.com/tuanvumaihuynh/inventory-rules/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
)

var productRules = []fieldRule{
	{field: "Description", err: apperr.ErrDescriptionIsEmpty},
	{field: "Price", err: apperr.ErrPriceIsInvalid},
}

// AddProduct validates the candidate and returns the product with a new ID.
//
// Rules, in order: description not empty, price > 0, expiration date (when set)
// not before now. The name is not validated.
func (r *Rules) AddProduct(candidate model.ProductCandidate) (model.Product, error) {
	if err := r.v.Validate(candidate); err != nil {
		return model.Product{}, firstFailure(err, productRules)
	}

	now := r.now()
	if exp, ok := candidate.ExpirationDate.Get(); ok && exp.Before(now) {
		return model.Product{}, apperr.ErrProductIsExpired
	}

	id, err := r.generateID()
	if err != nil {
		return model.Product{}, err
	}

	return model.Product{
		ID:             id,
		Name:           candidate.Name,
		Description:    candidate.Description,
		Price:          candidate.Price,
		ExpirationDate: candidate.ExpirationDate,
		CreatedAt:      now,
	}, nil
}

// DeleteProduct checks that the product to delete exists.
func (r *Rules) DeleteProduct(product mo.Option[model.Product]) error {
	if product.IsAbsent() {
		return apperr.ErrProductNotFound
	}
	return nil
}
