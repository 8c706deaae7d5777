package config

import "github.com/shopspring/decimal"

type Inventory struct {
	MaxDiscountPercent decimal.Decimal `env:"INVENTORY_MAX_DISCOUNT_PERCENT" envDefault:"20"`
	// Timezone is the IANA name used to render dates.
	Timezone string `env:"INVENTORY_TIMEZONE" envDefault:"UTC"`
}
