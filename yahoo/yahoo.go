// Package yahoo implements the alternate quote source on top of the Yahoo
// Finance chart API. It exists purely to cross-validate the primary source;
// it provides prices only.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"incomelens"
	"incomelens/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

const currency = "USD"

// Source fetches prices from the Yahoo Finance chart API.
type Source struct {
	baseURL string
	client  *http.Client
}

// New returns a ready to use Source.
func New() *Source {
	return &Source{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Source) Name() string { return "yahoo" }

// variants returns the ticker formats to try for a symbol. Symbols without
// an exchange suffix are also tried on the Toronto and NEO exchanges, where
// some income funds are listed.
func variants(symbol string) []string {
	if strings.Contains(symbol, ".") {
		return []string{symbol}
	}
	return []string{symbol, symbol + ".TO", symbol + ".NE"}
}

// Price returns the price observation for symbol at 'on' (zero date for
// latest), trying each ticker variant in turn.
func (s *Source) Price(ctx context.Context, symbol string, on date.Date) (incomelens.Observation, error) {
	var errs error
	for _, t := range variants(symbol) {
		obs, err := s.fetch(ctx, symbol, t, on)
		if err == nil {
			return obs, nil
		}
		errs = errors.Join(errs, fmt.Errorf("%s: %w", t, err))
	}
	return incomelens.Observation{}, errs
}

func (s *Source) fetch(ctx context.Context, symbol, t string, on date.Date) (incomelens.Observation, error) {
	params := url.Values{}
	params.Set("interval", "1d")
	params.Set("includeAdjustedClose", "false")
	if on.IsZero() {
		params.Set("range", "5d")
	} else {
		// The requested date may be a holiday; a five-day window catches
		// the first trading day after it.
		params.Set("period1", fmt.Sprint(on.Unix()))
		params.Set("period2", fmt.Sprint(on.Add(5).Unix()))
	}
	addr := s.baseURL + "/" + url.PathEscape(t) + "?" + params.Encode()

	jobj, err := s.wget(ctx, addr)
	if err != nil {
		return incomelens.Observation{}, err
	}

	if on.IsZero() {
		return s.latest(symbol, jobj)
	}
	return s.historical(symbol, on, jobj)
}

// latest extracts the regular market price from the chart metadata.
func (s *Source) latest(symbol string, jobj any) (incomelens.Observation, error) {
	price, err := number(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return incomelens.Observation{}, err
	}
	ts, err := number(jobj, "$.chart.result[0].meta.regularMarketTime")
	on := date.Today()
	if err == nil {
		on = date.FromTime(time.Unix(int64(ts), 0))
	}
	return incomelens.Observation{
		Symbol: symbol,
		Price:  incomelens.M(price, currency),
		On:     on,
		Source: s.Name(),
	}, nil
}

// historical extracts the open of the first trading day in the window.
func (s *Source) historical(symbol string, on date.Date, jobj any) (incomelens.Observation, error) {
	price, err := number(jobj, "$.chart.result[0].indicators.quote[0].open[0]")
	if err != nil {
		return incomelens.Observation{}, err
	}
	actual := on
	if ts, err := number(jobj, "$.chart.result[0].timestamp[0]"); err == nil {
		actual = date.FromTime(time.Unix(int64(ts), 0))
	}
	return incomelens.Observation{
		Symbol: symbol,
		Price:  incomelens.M(price, currency),
		On:     actual,
		Source: s.Name(),
	}, nil
}

// number extracts a float at path from a decoded JSON value.
// jsonpath is never clear about whether it returns a list of one answer or a
// single answer, so a singleton list is unwrapped first.
func number(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing response: %q %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing response: %q not a number: %v", path, jval)
	}
	return val, nil
}

// wget performs a GET and decodes the JSON body into a generic value for
// jsonpath extraction. Yahoo rejects requests without a browser-looking
// User-Agent.
func (s *Source) wget(ctx context.Context, addr string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}
