package incomelens

import (
	"context"
	"log"

	"incomelens/date"
)

// DividendSummary is the accumulated per-share dividend income over a period.
//
// A zero PerShare with Incomplete=false is a genuine zero-dividend result
// (the history was retrieved and empty). Incomplete=true means the history
// could not be retrieved and the total is possibly understated; downstream
// figures depending on it must be flagged rather than computed against an
// assumed-zero dividend.
type DividendSummary struct {
	PerShare   Money `json:"perShare"`
	Payments   int   `json:"payments"`
	Incomplete bool  `json:"incomplete,omitempty"`
}

// AccumulateDividends sums the per-share amount of every dividend event for
// symbol whose ex-dividend date falls in r, boundaries included. Events are
// deduplicated by ex-dividend date. The sum is order-independent.
func AccumulateDividends(ctx context.Context, src DividendSource, symbol string, r date.Range) DividendSummary {
	events, err := src.Dividends(ctx, symbol, r)
	if err != nil {
		log.Printf("dividend history unavailable for %s from %s: %v", symbol, src.Name(), err)
		return DividendSummary{Incomplete: true}
	}

	var total Money
	var payments int
	seen := make(map[date.Date]bool, len(events))
	for _, ev := range events {
		if !r.Contains(ev.ExDate) || seen[ev.ExDate] {
			continue
		}
		if ev.Amount.IsNegative() {
			log.Printf("negative dividend for %s on %s, rejected", symbol, ev.ExDate)
			continue
		}
		seen[ev.ExDate] = true
		total = total.Add(ev.Amount)
		payments++
	}
	return DividendSummary{PerShare: total, Payments: payments}
}
