package apperr

import "github.com/tuanvumaihuynh/inventory-rules/pkg/zerror"

const (
	DescriptionIsEmptyCode  = "DESCRIPTION_IS_EMPTY"
	PriceIsInvalidCode      = "PRICE_IS_INVALID"
	ProductIsExpiredCode    = "PRODUCT_IS_EXPIRED"
	CustomerNameIsEmptyCode = "CUSTOMER_NAME_IS_EMPTY"
	QuantityIsInvalidCode   = "QUANTITY_IS_INVALID"
	ProductIsEmptyCode      = "PRODUCT_IS_EMPTY"
	ProductNotFoundCode     = "PRODUCT_NOT_FOUND"
	OrderNotFoundCode       = "ORDER_NOT_FOUND"
	DiscountIsInvalidCode   = "DISCOUNT_IS_INVALID"
	DiscountTooLargeCode    = "DISCOUNT_TOO_LARGE"
)

// Add product failures.
var (
	ErrDescriptionIsEmpty = zerror.NewValidationFailed(DescriptionIsEmptyCode, "description can't be empty")
	ErrPriceIsInvalid     = zerror.NewValidationFailed(PriceIsInvalidCode, "price must be > 0")
	ErrProductIsExpired   = zerror.NewUnprocessableEntity(ProductIsExpiredCode, "product can't be expired")
)

// Place order failures.
var (
	ErrCustomerNameIsEmpty = zerror.NewValidationFailed(CustomerNameIsEmptyCode, "customer name can't be empty")
	ErrQuantityIsInvalid   = zerror.NewValidationFailed(QuantityIsInvalidCode, "quantity must be > 0")
	ErrProductIsEmpty      = zerror.NewValidationFailed(ProductIsEmptyCode, "product can't be empty")
)

// Apply discount and delete product failures.
var (
	ErrProductNotFound   = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	ErrOrderNotFound     = zerror.NewNotFound(OrderNotFoundCode, "order not found")
	ErrDiscountIsInvalid = zerror.NewValidationFailed(DiscountIsInvalidCode, "discount must be > 0")
	ErrDiscountTooLarge  = zerror.NewValidationFailed(DiscountTooLargeCode, "discount can't be more than the allowed maximum")
)
