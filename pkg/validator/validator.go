package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
// decimal.Decimal fields are compared exactly with the decimal_gt and decimal_lte tags.
func NewDefaultValidator() *DefaultValidator {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	//nolint:errcheck
	v.RegisterValidation("decimal_gt", decimalCompare(func(d, param decimal.Decimal) bool { return d.GreaterThan(param) }))
	//nolint:errcheck
	v.RegisterValidation("decimal_lte", decimalCompare(func(d, param decimal.Decimal) bool { return d.LessThanOrEqual(param) }))

	return &DefaultValidator{v: v}
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

// FieldErrors returns the field errors of a validation error keyed by struct field name.
// The first error reported for a field wins.
func FieldErrors(err error) map[string]validator.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]validator.FieldError, len(validationErrs))
	for _, fe := range validationErrs {
		if _, ok := fields[fe.StructField()]; ok {
			continue
		}
		fields[fe.StructField()] = fe
	}
	return fields
}

func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gt", "decimal_gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte", "decimal_lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return "is invalid"
	}
}

// decimalValue hands decimals to the validator as their exact string form.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.String()
}

func decimalCompare(cmp func(d, param decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		param, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, param)
	}
}
