package incomelens

import (
	"context"

	"incomelens/date"
)

// Observation is a single price observation produced by a QuoteSource.
// It is immutable once returned.
type Observation struct {
	Symbol string
	Price  Money
	On     date.Date // the trading day the price belongs to
	Source string
}

// QuoteSource provides price observations for a symbol.
//
// A zero 'on' date requests the latest available price. Implementations
// return an error when no usable observation exists; they never return a
// zero-valued price to mean "no data". Retry and backoff policy, if any,
// belongs to the implementation.
type QuoteSource interface {
	Name() string
	Price(ctx context.Context, symbol string, on date.Date) (Observation, error)
}

// DividendEvent is a single per-share dividend payout.
type DividendEvent struct {
	Symbol string
	ExDate date.Date // ex-dividend date
	Amount Money     // per-share amount, non-negative
}

// DividendSource provides the dividend history of a symbol over a date range.
type DividendSource interface {
	Name() string
	Dividends(ctx context.Context, symbol string, r date.Range) ([]DividendEvent, error)
}
