// Package inventory holds the rules for adding products, placing orders,
// applying discounts and deleting products.
//
// Every operation checks its rules in a fixed order and returns the first
// violated one as an apperr failure. Rules never touch a store; callers pass
// the looked up product as a mo.Option and persist the returned value.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-rules/pkg/validator"
	"github.com/tuanvumaihuynh/inventory-rules/pkg/zerror"
)

// DefaultMaxDiscount is the largest discount percentage accepted by ApplyDiscount.
// A configured maximum may lower it but never raise it.
var DefaultMaxDiscount = decimal.NewFromInt(20)

// ErrInvalidMaxDiscount is returned by New when the maximum discount is not within (0, 20].
var ErrInvalidMaxDiscount = errors.New("max discount must be greater than 0 and at most 20")

// Rules is safe for concurrent use.
type Rules struct {
	v           validator.Validator
	now         func() time.Time
	newID       func() (uuid.UUID, error)
	maxDiscount decimal.Decimal
}

// Opt configures Rules.
type Opt func(*Rules)

// WithClock sets the clock used for expiration checks and timestamps.
func WithClock(now func() time.Time) Opt {
	return func(r *Rules) {
		r.now = now
	}
}

// WithIDGenerator sets the identifier generator for new products and orders.
func WithIDGenerator(newID func() (uuid.UUID, error)) Opt {
	return func(r *Rules) {
		r.newID = newID
	}
}

// WithMaxDiscount sets the inclusive upper bound for discount percentages.
// New rejects a bound outside (0, DefaultMaxDiscount].
func WithMaxDiscount(maxDiscount decimal.Decimal) Opt {
	return func(r *Rules) {
		r.maxDiscount = maxDiscount
	}
}

// New creates Rules using time.Now and uuid.NewV7 unless overridden.
func New(opts ...Opt) (*Rules, error) {
	r := &Rules{
		v:           validator.NewDefaultValidator(),
		now:         time.Now,
		newID:       uuid.NewV7,
		maxDiscount: DefaultMaxDiscount,
	}
	for _, opt := range opts {
		opt(r)
	}

	if !r.maxDiscount.IsPositive() || r.maxDiscount.GreaterThan(DefaultMaxDiscount) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidMaxDiscount, r.maxDiscount)
	}

	return r, nil
}

// MaxDiscount returns the configured discount upper bound.
func (r *Rules) MaxDiscount() decimal.Decimal {
	return r.maxDiscount
}

// fieldRule maps a struct field failing validation to its failure.
type fieldRule struct {
	field string
	err   zerror.ZError
}

// firstFailure returns the failure of the first rule whose field failed validation.
func firstFailure(err error, rules []fieldRule) error {
	if !validator.IsValidationError(err) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := validator.FieldErrors(err)
	for _, rule := range rules {
		if fe, ok := fields[rule.field]; ok {
			return rule.err.WrapParent(fmt.Errorf("%s %s: %w", fe.Field(), validator.ValidationErrorMessage(fe), fe))
		}
	}
	return fmt.Errorf("validate: %w", err)
}

func (r *Rules) generateID() (uuid.UUID, error) {
	id, err := r.newID()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}
