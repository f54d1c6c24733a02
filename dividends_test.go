package incomelens

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"incomelens/date"
)

// dividendStub is a DividendSource returning canned events.
type dividendStub struct {
	events []DividendEvent
	err    error
}

func (s dividendStub) Name() string { return "stub" }
func (s dividendStub) Dividends(_ context.Context, _ string, _ date.Range) ([]DividendEvent, error) {
	return s.events, s.err
}

func div(y int, m time.Month, d int, amount float64) DividendEvent {
	return DividendEvent{Symbol: "QYLD", ExDate: date.New(y, m, d), Amount: M(amount, "USD")}
}

func TestAccumulateDividends(t *testing.T) {
	r := date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.June, 30))
	src := dividendStub{events: []DividendEvent{
		div(2025, time.January, 1, 0.18),  // on the lower boundary
		div(2025, time.March, 15, 0.17),
		div(2025, time.June, 30, 0.16),    // on the upper boundary
		div(2024, time.December, 31, 0.99), // out of range
		div(2025, time.July, 1, 0.99),      // out of range
	}}

	got := AccumulateDividends(context.Background(), src, "QYLD", r)

	if got.Incomplete {
		t.Error("Incomplete = true, want false on a successful retrieval")
	}
	if got.Payments != 3 {
		t.Errorf("Payments = %d, want 3", got.Payments)
	}
	if want := M(0.51, "USD"); !got.PerShare.Equal(want) {
		t.Errorf("PerShare = %v, want %v", got.PerShare, want)
	}
}

func TestAccumulateDividends_OrderIndependent(t *testing.T) {
	r := date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.December, 31))
	events := []DividendEvent{
		div(2025, time.February, 3, 0.21),
		div(2025, time.May, 5, 0.19),
		div(2025, time.August, 7, 0.23),
	}
	reversed := slices.Clone(events)
	slices.Reverse(reversed)

	a := AccumulateDividends(context.Background(), dividendStub{events: events}, "QYLD", r)
	b := AccumulateDividends(context.Background(), dividendStub{events: reversed}, "QYLD", r)

	if !a.PerShare.Equal(b.PerShare) || a.Payments != b.Payments {
		t.Errorf("order changed the summary: %+v vs %+v", a, b)
	}
}

func TestAccumulateDividends_DedupesByExDate(t *testing.T) {
	r := date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.December, 31))
	src := dividendStub{events: []DividendEvent{
		div(2025, time.April, 10, 0.25),
		div(2025, time.April, 10, 0.25), // duplicate row from the provider
	}}

	got := AccumulateDividends(context.Background(), src, "QYLD", r)

	if got.Payments != 1 {
		t.Errorf("Payments = %d, want 1 after dedupe", got.Payments)
	}
	if want := M(0.25, "USD"); !got.PerShare.Equal(want) {
		t.Errorf("PerShare = %v, want %v", got.PerShare, want)
	}
}

func TestAccumulateDividends_FailureIsNotZero(t *testing.T) {
	r := date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.December, 31))

	// A retrieval failure is flagged, never silently treated as zero income.
	got := AccumulateDividends(context.Background(), dividendStub{err: errors.New("boom")}, "QYLD", r)
	if !got.Incomplete {
		t.Error("Incomplete = false after a retrieval failure, want true")
	}
	if got.Payments != 0 || !got.PerShare.IsZero() {
		t.Errorf("failed summary carries data: %+v", got)
	}

	// An empty history is a genuine zero.
	got = AccumulateDividends(context.Background(), dividendStub{}, "GROWTH", r)
	if got.Incomplete {
		t.Error("Incomplete = true on an empty history, want false")
	}
}

func TestAccumulateDividends_RejectsNegativeAmount(t *testing.T) {
	r := date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.December, 31))
	src := dividendStub{events: []DividendEvent{
		div(2025, time.April, 10, 0.25),
		div(2025, time.May, 10, -0.10),
	}}

	got := AccumulateDividends(context.Background(), src, "QYLD", r)

	if got.Payments != 1 {
		t.Errorf("Payments = %d, want 1", got.Payments)
	}
	if want := M(0.25, "USD"); !got.PerShare.Equal(want) {
		t.Errorf("PerShare = %v, want %v", got.PerShare, want)
	}
}
