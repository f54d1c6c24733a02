// Package renderer builds the human-readable reports out of an analysis
// result. It performs no financial computation, only formatting.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"incomelens"
)

// markers prefix the confidence labels the way the reports show them.
var markers = map[incomelens.Confidence]string{
	incomelens.Verified:  "✅",
	incomelens.AltSource: "🟡",
	incomelens.NoData:    "🔴",
}

func confidence(c incomelens.Confidence) string {
	return markers[c] + " " + c.String()
}

const absent = "-"

// AnalysisMarkdown renders the full analysis report to markdown.
func AnalysisMarkdown(r *incomelens.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Income Portfolio Analysis")
	doc.PlainText(fmt.Sprintf("Reference date %s, analyzed on %s. Investment of %s per fund (raw market prices, not dividend adjusted).",
		r.Config.StartDate, r.Date, r.Config.Investment))

	working := r.Working()
	if len(working) > 0 {
		doc.H2("Positions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{
				"Symbol", "Initial", "Shares", "Current", "Value",
				"Dividends", "Gain/Loss", "Gain/Loss %", "Total Return", "Total Return %",
				"Status",
			},
		}
		for _, p := range working {
			table.Rows = append(table.Rows, positionRow(r, p))
		}
		doc.Table(table)
		doc.PlainText("`*` initial price observed after the configured start date (fund listed later). `†` dividend history incomplete, totals possibly understated.")
	}

	if failed := r.Failed(); len(failed) > 0 {
		doc.H2("Failed Funds (No Data Available)")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
			Header:    []string{"Symbol", "Status"},
		}
		for _, p := range failed {
			table.Rows = append(table.Rows, []string{p.Symbol, confidence(p.Initial.Confidence())})
		}
		doc.Table(table)
	}

	doc.H2("Verification Summary")
	doc.PlainText(fmt.Sprintf("Prices verified by the primary source: %d/%d funds (%s).",
		r.VerifiedCount(), len(r.Positions), r.VerificationRate()))

	renderSummary(doc, r)

	return doc.String()
}

// positionRow formats one fund's figures; absent fields render as a dash,
// never as zero.
func positionRow(r *incomelens.Report, p incomelens.Position) []string {
	initial := absent
	if price, ok := p.Initial.Price(); ok {
		initial = price.String()
		if p.Initial.On() != r.Config.StartDate {
			initial += "*"
		}
	}

	shares, collected := absent, absent
	if p.Computable {
		shares = p.Shares.String()
		if p.Dividends.Incomplete {
			// The history could not be retrieved: unknown, not zero.
			collected = absent + "†"
		} else {
			collected = p.Collected.String()
		}
	}

	current, value, gain, gainPct, total, totalPct := absent, absent, absent, absent, absent, absent
	if price, ok := p.Current.Price(); ok {
		current = price.String()
	}
	if p.Valued {
		value = p.Value.String()
		gain = p.PriceGain.SignedString()
		gainPct = p.PriceGainPct.SignedString()
		if !p.Dividends.Incomplete {
			total = p.TotalReturn.SignedString()
			totalPct = p.TotalReturnPct.SignedString()
		}
	}

	status := confidence(p.Initial.Confidence())
	if p.Current.Confidence() != p.Initial.Confidence() {
		status += " / " + confidence(p.Current.Confidence())
	}

	return []string{p.Symbol, initial, shares, current, value, collected, gain, gainPct, total, totalPct, status}
}

// renderSummary appends the portfolio level totals.
func renderSummary(doc *md.Markdown, r *incomelens.Report) {
	if r.ValuedCount() == 0 {
		return
	}

	// Rows depending on dividends are flagged when any included fund has an
	// incomplete history: their figures count the unknown payouts as nothing.
	understated := ""
	if r.IncompleteDividends() {
		understated = "†"
	}

	doc.H2("Portfolio Summary")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Valued funds", fmt.Sprintf("%d/%d", r.ValuedCount(), len(r.Positions))},
			{"Total invested", r.TotalInvested().String()},
			{"Total current value", r.TotalValue().String()},
			{"Total dividends collected", r.TotalDividends().String() + understated},
			{"Gain/Loss (price only)", fmt.Sprintf("%s (%s)", r.TotalPriceGain().SignedString(), r.TotalPriceGainPct().SignedString())},
			{"Total return (price + dividends)", fmt.Sprintf("%s (%s)%s", r.TotalReturn().SignedString(), r.TotalReturnPct().SignedString(), understated)},
		},
	}
	doc.Table(table)
	if understated != "" {
		doc.PlainText("`†` some funds miss their dividend history, dividend and total-return figures possibly understated.")
	}

	if best, ok := r.BestPerformer(); ok {
		doc.PlainText(fmt.Sprintf("Best price performer: %s (%s)", best.Symbol, best.PriceGainPct.SignedString()))
	}
	if worst, ok := r.WorstPerformer(); ok {
		doc.PlainText(fmt.Sprintf("Worst price performer: %s (%s)", worst.Symbol, worst.PriceGainPct.SignedString()))
	}
	if top, ok := r.TopDividendPayer(); ok {
		doc.PlainText(fmt.Sprintf("Highest dividend payer: %s (%s)", top.Symbol, top.Collected))
	}
}

// VerificationMarkdown renders the source-by-source observations gathered
// while verifying a single symbol.
func VerificationMarkdown(symbol string, observations []incomelens.Observation, failures []error, quote incomelens.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Price Verification: %s", symbol))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Source", "Price", "Date"},
	}
	for _, obs := range observations {
		table.Rows = append(table.Rows, []string{obs.Source, obs.Price.String(), obs.On.String()})
	}
	doc.Table(table)

	for _, err := range failures {
		doc.PlainText(fmt.Sprintf("⚠ %v", err))
	}

	verdict := confidence(quote.Confidence())
	if price, ok := quote.Price(); ok {
		verdict += fmt.Sprintf(": %s on %s from %s", price, quote.On(), quote.Source())
	}
	doc.PlainText("Verdict: " + verdict)

	return doc.String()
}

// SymbolsMarkdown lists the configured symbols grouped by category.
func SymbolsMarkdown(cfg incomelens.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Configured Funds")
	doc.PlainText(fmt.Sprintf("%d funds, %s invested in each since %s.", len(cfg.Symbols), cfg.Investment, cfg.StartDate))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Symbol", "Category"},
	}
	for _, s := range cfg.Symbols {
		category := cfg.Category(s)
		if category == "" {
			category = absent
		}
		table.Rows = append(table.Rows, []string{s, category})
	}
	doc.Table(table)

	return doc.String()
}
