package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// New reads configuration from environment variables into a struct of type T.
// Nested structs (Log, Inventory, Otel) are parsed with their own env tags.
func New[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
