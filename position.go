package incomelens

// Position is the result record for a single fund in an analysis run. It is
// created once per symbol per run and never mutated after creation.
//
// Two flags describe how much of it could be derived:
//   - Computable: the initial quote carried a price, so Shares and Collected
//     are populated.
//   - Valued: the current quote carried a price too, so Value, PriceGain and
//     TotalReturn are populated as well.
//
// Fields outside the reach of those flags are absent, never zero.
type Position struct {
	Symbol    string
	Initial   Quote
	Current   Quote
	Dividends DividendSummary
	Invested  Money

	Computable bool
	Valued     bool

	Shares    Quantity // Invested / initial price
	Collected Money    // Shares x dividend per share

	Value          Money // Shares x current price
	PriceGain      Money // Value - Invested
	PriceGainPct   Percent
	TotalReturn    Money // PriceGain + Collected
	TotalReturnPct Percent
}

// ComputePosition derives a fund's total-return figures from its two trusted
// quotes, its accumulated dividends and the invested amount. All monetary
// derivations use exact decimal arithmetic; the percentages are computed from
// the decimal amounts.
//
// The identity TotalReturn == PriceGain + Collected holds exactly.
func ComputePosition(initial, current Quote, dividends DividendSummary, invested Money) Position {
	p := Position{
		Symbol:    initial.Symbol(),
		Initial:   initial,
		Current:   current,
		Dividends: dividends,
		Invested:  invested,
	}

	p0, ok := initial.Price()
	if !ok {
		// Without an initial price there is no share count to derive
		// anything from.
		return p
	}
	p.Computable = true
	p.Shares = invested.DivPrice(p0)
	p.Collected = dividends.PerShare.Mul(p.Shares)

	p1, ok := current.Price()
	if !ok {
		// Shares and Collected are still reported from the initial quote
		// alone; the position stays partial.
		return p
	}
	p.Valued = true
	p.Value = p1.Mul(p.Shares)
	p.PriceGain = p.Value.Sub(invested)
	p.PriceGainPct = p1.Sub(p0).PercentOf(p0)
	p.TotalReturn = p.PriceGain.Add(p.Collected)
	p.TotalReturnPct = p.TotalReturn.PercentOf(invested)
	return p
}

func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", p.Symbol)
	w.Append("initial", p.Initial)
	w.Append("current", p.Current)
	w.Append("dividends", p.Dividends)
	w.Append("invested", p.Invested)
	if p.Computable {
		w.Append("shares", p.Shares)
		w.Append("collected", p.Collected)
	}
	if p.Valued {
		w.Append("value", p.Value)
		w.Append("priceGain", p.PriceGain)
		w.Append("priceGainPct", float64(p.PriceGainPct))
		// An incomplete dividend history would understate the total return,
		// so the figure is withheld, like in the rendered report.
		if !p.Dividends.Incomplete {
			w.Append("totalReturn", p.TotalReturn)
			w.Append("totalReturnPct", float64(p.TotalReturnPct))
		}
	}
	return w.MarshalJSON()
}
