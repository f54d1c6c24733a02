package incomelens

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"incomelens/date"
)

// ErrInvalidConfig marks configuration invariant violations. They are fatal:
// an analysis run must not proceed on them, since every downstream
// computation depends on these invariants.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the static description of the portfolio under analysis. It is an
// explicit value object passed into the Analyzer at construction; there is no
// process-wide mutable configuration state.
type Config struct {
	// Symbols is the ordered list of fund tickers. The analysis result
	// preserves this order.
	Symbols []string
	// Investment is the amount invested in each fund, uniform across the
	// portfolio.
	Investment Money
	// StartDate is the analysis start date (the initial purchase date).
	StartDate date.Date
	// Categories optionally groups symbols for presentation purposes only.
	Categories map[string][]string
}

// configFile is the on-disk JSON shape of a Config.
type configFile struct {
	Symbols    []string            `json:"symbols"`
	Investment decimal.Decimal     `json:"investment"`
	Currency   string              `json:"currency"`
	Start      date.Date           `json:"start"`
	Categories map[string][]string `json:"categories"`
}

// DecodeConfig reads a portfolio configuration from a JSON file.
func DecodeConfig(filename string) (Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read configuration %q: %w", filename, err)
	}
	var f configFile
	if err := json.Unmarshal(content, &f); err != nil {
		return Config{}, fmt.Errorf("cannot parse configuration %q: %w", filename, err)
	}
	currency := f.Currency
	if currency == "" {
		currency = "USD"
	}
	return Config{
		Symbols:    f.Symbols,
		Investment: M(f.Investment, currency),
		StartDate:  f.Start,
		Categories: f.Categories,
	}, nil
}

// Validate checks the configuration invariants against the analysis end
// date. Any violation is wrapped in ErrInvalidConfig.
func (c Config) Validate(now date.Date) error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("%w: empty symbol list", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if s == "" {
			return fmt.Errorf("%w: empty symbol", ErrInvalidConfig)
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidConfig, s)
		}
		seen[s] = true
	}
	if !c.Investment.IsPositive() {
		return fmt.Errorf("%w: investment amount must be positive, got %s", ErrInvalidConfig, c.Investment)
	}
	if c.StartDate.IsZero() {
		return fmt.Errorf("%w: missing start date", ErrInvalidConfig)
	}
	if c.StartDate.After(now) {
		return fmt.Errorf("%w: start date %s is in the future", ErrInvalidConfig, c.StartDate)
	}
	return nil
}

// Category returns the category a symbol belongs to, or "" when the symbol
// is uncategorized.
func (c Config) Category(symbol string) string {
	for name, symbols := range c.Categories {
		for _, s := range symbols {
			if s == symbol {
				return name
			}
		}
	}
	return ""
}
