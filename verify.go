package incomelens

import (
	"context"
	"log"

	"incomelens/date"
)

// Confidence labels how much corroboration a trusted quote received.
type Confidence int

const (
	// NoData means no source returned a usable price.
	NoData Confidence = iota
	// AltSource means only a fallback source returned a price.
	AltSource
	// Verified means the primary source returned a price.
	Verified
)

func (c Confidence) String() string {
	switch c {
	case Verified:
		return "VERIFIED"
	case AltSource:
		return "ALT SOURCE"
	default:
		return "NO DATA"
	}
}

// Quote is a price observation the system has decided to report, tagged with
// its confidence label. The price is present and positive if and only if the
// confidence is not NoData; absence is structural, never a zero sentinel.
type Quote struct {
	symbol     string
	on         date.Date
	price      Money
	confidence Confidence
	source     string
}

// NewQuote builds a Quote while enforcing the price/confidence invariant:
// a non-positive price downgrades the confidence to NoData, and a NoData
// confidence drops the price.
func NewQuote(symbol string, on date.Date, price Money, confidence Confidence, source string) Quote {
	if !price.IsPositive() {
		confidence = NoData
	}
	if confidence == NoData {
		return Quote{symbol: symbol, on: on, confidence: NoData}
	}
	return Quote{symbol: symbol, on: on, price: price, confidence: confidence, source: source}
}

func (q Quote) Symbol() string         { return q.symbol }
func (q Quote) On() date.Date          { return q.on }
func (q Quote) Confidence() Confidence { return q.confidence }
func (q Quote) Source() string         { return q.source }

// Price returns the quoted price and whether it is present.
func (q Quote) Price() (Money, bool) {
	return q.price, q.confidence != NoData
}

func (q Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", q.symbol)
	if price, ok := q.Price(); ok {
		w.Append("price", price)
		w.Append("date", q.on)
		w.Append("source", q.source)
	}
	w.Append("confidence", q.confidence.String())
	return w.MarshalJSON()
}

// Verifier reconciles price observations from an ordered list of sources
// into a single trusted quote. Sources are tried in order with an early
// return on first success, so the first source is the primary one and any
// later source yields an AltSource confidence.
type Verifier struct {
	sources []QuoteSource
}

// NewVerifier returns a Verifier querying the given sources in order.
func NewVerifier(sources ...QuoteSource) *Verifier {
	return &Verifier{sources: sources}
}

// Verify produces the trusted quote for symbol at 'on' (zero date for
// "latest"). Source failures are recovered locally by falling back to the
// next source and are never propagated; when every source fails, the quote
// carries the NoData confidence.
//
// A non-positive price is treated as a source failure, not a valid quote.
// Covered-call and option-based funds can legitimately trade near zero, so
// this guards against provider glitches, not against genuinely low prices;
// a provider reporting an exact zero is indistinguishable from a glitch and
// is rejected. Known limitation.
func (v *Verifier) Verify(ctx context.Context, symbol string, on date.Date) Quote {
	for i, src := range v.sources {
		obs, err := src.Price(ctx, symbol, on)
		if err != nil {
			log.Printf("source %s failed for %s: %v", src.Name(), symbol, err)
			continue
		}
		if !obs.Price.IsPositive() {
			log.Printf("source %s returned non-positive price for %s, rejected", src.Name(), symbol)
			continue
		}
		confidence := AltSource
		if i == 0 {
			confidence = Verified
		}
		return NewQuote(symbol, obs.On, obs.Price, confidence, src.Name())
	}
	return NewQuote(symbol, on, Money{}, NoData, "")
}
