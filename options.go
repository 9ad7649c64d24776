package checkregister

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmcdougall/ECCheckParser/treemap"
)

// Config holds the tunable settings for one extraction run.
type Config struct {
	// Tolerance is the largest absolute difference between a period's
	// computed total and the report's stated total that still counts
	// as reconciled. Must not be negative.
	Tolerance decimal.Decimal `validate:"-"`

	// Workers bounds how many register sections parse concurrently.
	Workers int `validate:"min=1,max=32"`

	// Strategy names the treemap layout algorithm.
	Strategy string `validate:"oneof=quadtree squarified"`
}

// DefaultConfig returns the defaults: exact reconciliation, one
// worker, quadtree treemaps.
func DefaultConfig() Config {
	return Config{
		Tolerance: decimal.Zero,
		Workers:   1,
		Strategy:  treemap.DefaultStrategy,
	}
}

// Validate checks the configuration. The tolerance is checked by hand
// because the validator cannot see inside a decimal.
func (c Config) Validate() error {
	if c.Tolerance.IsNegative() {
		return fmt.Errorf("tolerance must not be negative, got %s", c.Tolerance)
	}
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
