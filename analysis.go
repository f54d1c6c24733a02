package incomelens

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"incomelens/date"
)

// defaultWorkers bounds the number of symbols analyzed concurrently. The
// per-symbol work is independent; the limit only protects the upstream
// providers from a burst of requests.
const defaultWorkers = 4

// Analyzer orchestrates a full portfolio analysis: for every configured
// symbol it verifies the start and current quotes, accumulates the dividend
// history and computes the position's total-return figures.
type Analyzer struct {
	Config    Config
	Verifier  *Verifier
	Dividends DividendSource

	// Workers bounds the per-symbol concurrency; defaultWorkers when zero.
	Workers int
	// Now is the analysis end date; today when zero. Two runs with the same
	// Now and identical source responses yield identical reports.
	Now date.Date
}

// NewAnalyzer returns an Analyzer over the given configuration and sources.
func NewAnalyzer(cfg Config, verifier *Verifier, dividends DividendSource) *Analyzer {
	return &Analyzer{Config: cfg, Verifier: verifier, Dividends: dividends}
}

// Run executes the analysis and returns the ordered report.
//
// A failure verifying or aggregating one symbol never aborts the run: the
// failure is captured in that symbol's position through the NoData
// confidence and the incomplete-dividend flag, and iteration continues. The
// only error returns are a configuration invariant violation and a
// cancellation of ctx; on cancellation no partial report is published.
func (a *Analyzer) Run(ctx context.Context) (*Report, error) {
	now := a.Now
	if now.IsZero() {
		now = date.Today()
	}
	if err := a.Config.Validate(now); err != nil {
		return nil, err
	}

	workers := a.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	// Results are slotted by index so the final sequence preserves the
	// configured order however the goroutines are scheduled.
	positions := make([]Position, len(a.Config.Symbols))
	period := date.Range{From: a.Config.StartDate, To: now}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, symbol := range a.Config.Symbols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			initial := a.Verifier.Verify(gctx, symbol, a.Config.StartDate)
			current := a.Verifier.Verify(gctx, symbol, date.Date{})
			dividends := AccumulateDividends(gctx, a.Dividends, symbol, period)
			positions[i] = ComputePosition(initial, current, dividends, a.Config.Investment)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation arriving while the workers were mid-flight surfaces as
	// NO DATA rows, not as a worker error. Report it instead of publishing a
	// report indistinguishable from a provider outage.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Report{
		Config:    a.Config,
		Date:      now,
		Positions: positions,
		Time:      time.Now(),
	}, nil
}
