package incomelens

import (
	"time"

	"incomelens/date"
)

// Report is the ordered result of one analysis run, consumed by the
// presentation layer. Presentation performs no further financial
// computation, only formatting and sorting.
type Report struct {
	Config    Config
	Date      date.Date // analysis end date
	Positions []Position
	Time      time.Time // generation timestamp
}

// Working returns the positions with at least an initial price.
func (r *Report) Working() []Position {
	var out []Position
	for _, p := range r.Positions {
		if p.Computable {
			out = append(out, p)
		}
	}
	return out
}

// Failed returns the positions with no usable data at all.
func (r *Report) Failed() []Position {
	var out []Position
	for _, p := range r.Positions {
		if !p.Computable {
			out = append(out, p)
		}
	}
	return out
}

// valued returns the positions whose current value is known. Portfolio
// totals are computed over these only: summing a partial position as zero
// would silently understate the portfolio.
func (r *Report) valued() []Position {
	var out []Position
	for _, p := range r.Positions {
		if p.Valued {
			out = append(out, p)
		}
	}
	return out
}

// ValuedCount returns how many positions have a known current value.
func (r *Report) ValuedCount() int { return len(r.valued()) }

// TotalInvested sums the investment over the valued positions.
func (r *Report) TotalInvested() Money {
	var total Money
	for range r.valued() {
		total = total.Add(r.Config.Investment)
	}
	return total
}

// TotalValue sums the current value of the valued positions.
func (r *Report) TotalValue() Money {
	var total Money
	for _, p := range r.valued() {
		total = total.Add(p.Value)
	}
	return total
}

// IncompleteDividends reports whether any valued position has an incomplete
// dividend history, in which case TotalDividends and TotalReturn are possibly
// understated and must be flagged by the presentation layer.
func (r *Report) IncompleteDividends() bool {
	for _, p := range r.valued() {
		if p.Dividends.Incomplete {
			return true
		}
	}
	return false
}

// TotalDividends sums the dividends collected by the valued positions.
func (r *Report) TotalDividends() Money {
	var total Money
	for _, p := range r.valued() {
		total = total.Add(p.Collected)
	}
	return total
}

// TotalPriceGain is the price-only gain/loss of the valued positions.
func (r *Report) TotalPriceGain() Money { return r.TotalValue().Sub(r.TotalInvested()) }

// TotalReturn is the price gain plus dividends of the valued positions.
func (r *Report) TotalReturn() Money { return r.TotalPriceGain().Add(r.TotalDividends()) }

// TotalPriceGainPct returns the portfolio price gain as a percentage of the
// invested amount.
func (r *Report) TotalPriceGainPct() Percent {
	invested := r.TotalInvested()
	if !invested.IsPositive() {
		return 0
	}
	return r.TotalPriceGain().PercentOf(invested)
}

// TotalReturnPct returns the portfolio total return as a percentage of the
// invested amount.
func (r *Report) TotalReturnPct() Percent {
	invested := r.TotalInvested()
	if !invested.IsPositive() {
		return 0
	}
	return r.TotalReturn().PercentOf(invested)
}

// BestPerformer returns the valued position with the highest price gain
// percentage.
func (r *Report) BestPerformer() (Position, bool) {
	return pick(r.valued(), func(a, b Position) bool { return a.PriceGainPct > b.PriceGainPct })
}

// WorstPerformer returns the valued position with the lowest price gain
// percentage.
func (r *Report) WorstPerformer() (Position, bool) {
	return pick(r.valued(), func(a, b Position) bool { return a.PriceGainPct < b.PriceGainPct })
}

// TopDividendPayer returns the position that collected the most dividends.
func (r *Report) TopDividendPayer() (Position, bool) {
	var candidates []Position
	for _, p := range r.Positions {
		if p.Computable && !p.Dividends.Incomplete {
			candidates = append(candidates, p)
		}
	}
	return pick(candidates, func(a, b Position) bool { return a.Collected.GreaterThan(b.Collected) })
}

func pick(positions []Position, better func(a, b Position) bool) (Position, bool) {
	if len(positions) == 0 {
		return Position{}, false
	}
	best := positions[0]
	for _, p := range positions[1:] {
		if better(p, best) {
			best = p
		}
	}
	return best, true
}

// VerifiedCount returns how many positions have a primary-verified initial
// quote.
func (r *Report) VerifiedCount() int {
	var n int
	for _, p := range r.Positions {
		if p.Initial.Confidence() == Verified {
			n++
		}
	}
	return n
}

// VerificationRate returns the share of positions whose initial price came
// from the primary source.
func (r *Report) VerificationRate() Percent {
	if len(r.Positions) == 0 {
		return 0
	}
	return Percent(100 * float64(r.VerifiedCount()) / float64(len(r.Positions)))
}

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("start", r.Config.StartDate)
	w.Append("date", r.Date)
	w.Append("investment", r.Config.Investment)
	w.Append("positions", r.Positions)
	return w.MarshalJSON()
}
