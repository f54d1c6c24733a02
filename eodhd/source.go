package eodhd

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"incomelens"
	"incomelens/date"
)

const defaultBaseURL = "https://eodhd.com/api"

// currency of the covered exchanges. Currency conversion is out of scope, so
// the source is limited to USD listings.
const currency = "USD"

// Source fetches end-of-day prices and dividend histories from EODHD.
type Source struct {
	apiKey  string
	baseURL string
}

// New returns a Source using the API key from the flag or environment and a
// daily-expiring disk cache for responses.
func New() *Source {
	return &Source{apiKey: APIKey(), baseURL: defaultBaseURL}
}

func (s *Source) Name() string { return "eodhd" }

// ticker maps a plain US symbol to the EODHD ticker format. Symbols that
// already carry an exchange suffix are passed through.
func ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + ".US"
}

// eodRow is one daily bar of the /eod endpoint.
type eodRow struct {
	Date  date.Date       `json:"date"`
	Open  decimal.Decimal `json:"open"`
	Close decimal.Decimal `json:"close"`
}

// Price returns the price observation for symbol at 'on'. A zero date
// requests the latest close. For a historical date the observation is the
// open of the first trading day at or after 'on', looked up in a five-day
// window: the requested date may be a holiday, or the fund may have listed
// a few days later.
func (s *Source) Price(ctx context.Context, symbol string, on date.Date) (incomelens.Observation, error) {
	if s.apiKey == "" {
		return incomelens.Observation{}, fmt.Errorf("EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable", apiKeyEnv)
	}

	var from, to date.Date
	latest := on.IsZero()
	if latest {
		to = date.Today()
		from = to.Add(-7)
	} else {
		from = on
		to = on.Add(5)
	}

	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", s.baseURL, ticker(symbol), s.apiKey, from, to)
	rows := make([]eodRow, 0)
	if err := jwget(ctx, newDailyCachingClient(), addr, &rows); err != nil {
		return incomelens.Observation{}, err
	}
	if len(rows) == 0 {
		return incomelens.Observation{}, fmt.Errorf("no prices for %s between %s and %s", ticker(symbol), from, to)
	}

	var row eodRow
	var price decimal.Decimal
	if latest {
		row = rows[len(rows)-1]
		price = row.Close
	} else {
		row = rows[0]
		price = row.Open
	}
	return incomelens.Observation{
		Symbol: symbol,
		Price:  incomelens.M(price, currency),
		On:     row.Date,
		Source: s.Name(),
	}, nil
}

// divRow is one payout of the /div endpoint. Date is the ex-dividend date.
type divRow struct {
	Date  date.Date       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Dividends returns the per-share dividend history of symbol over r.
func (s *Source) Dividends(ctx context.Context, symbol string, r date.Range) ([]incomelens.DividendEvent, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable", apiKeyEnv)
	}

	addr := fmt.Sprintf("%s/div/%s?fmt=json&api_token=%s&from=%s&to=%s", s.baseURL, ticker(symbol), s.apiKey, r.From, r.To)
	rows := make([]divRow, 0)
	if err := jwget(ctx, newDailyCachingClient(), addr, &rows); err != nil {
		return nil, err
	}

	events := make([]incomelens.DividendEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, incomelens.DividendEvent{
			Symbol: symbol,
			ExDate: row.Date,
			Amount: incomelens.M(row.Value, currency),
		})
	}
	return events, nil
}
