package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"incomelens"
	"incomelens/date"
)

func TestVariants(t *testing.T) {
	got := variants("YMAX")
	want := []string{"YMAX", "YMAX.TO", "YMAX.NE"}
	if len(got) != len(want) {
		t.Fatalf("variants() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variants()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := variants("HYLD.TO"); len(got) != 1 || got[0] != "HYLD.TO" {
		t.Errorf("variants(HYLD.TO) = %v, want the symbol alone", got)
	}
}

func newTestSource(t *testing.T, handler http.Handler) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Source{baseURL: srv.URL, client: srv.Client()}
}

func TestSource_LatestPrice(t *testing.T) {
	marketTime := date.New(2025, time.August, 22)
	mux := http.NewServeMux()
	mux.HandleFunc("/QYLD", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("range") != "5d" {
			t.Errorf("latest request range = %q, want 5d", r.URL.Query().Get("range"))
		}
		w.Write([]byte(`{"chart": {"result": [{"meta": {
			"regularMarketPrice": 16.23,
			"regularMarketTime": ` + timestamp(marketTime) + `
		}}]}}`))
	})
	s := newTestSource(t, mux)

	obs, err := s.Price(context.Background(), "QYLD", date.Date{})
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}

	if want := incomelens.M(16.23, "USD"); !obs.Price.Equal(want) {
		t.Errorf("Price = %v, want %v", obs.Price, want)
	}
	if obs.On != marketTime {
		t.Errorf("On = %v, want %v", obs.On, marketTime)
	}
	if obs.Source != "yahoo" {
		t.Errorf("Source = %q, want %q", obs.Source, "yahoo")
	}
}

func TestSource_HistoricalPrice(t *testing.T) {
	on := date.New(2025, time.January, 6)
	mux := http.NewServeMux()
	mux.HandleFunc("/QYLD", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("period1") == "" {
			t.Error("historical request misses period1")
		}
		w.Write([]byte(`{"chart": {"result": [{
			"timestamp": [` + timestamp(on) + `],
			"indicators": {"quote": [{"open": [25.00, 25.15]}]}
		}]}}`))
	})
	s := newTestSource(t, mux)

	obs, err := s.Price(context.Background(), "QYLD", on)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}

	// The historical price is the open of the first trading day in the window.
	if want := incomelens.M(25.00, "USD"); !obs.Price.Equal(want) {
		t.Errorf("Price = %v, want %v", obs.Price, want)
	}
	if obs.On != on {
		t.Errorf("On = %v, want %v", obs.On, on)
	}
}

func TestSource_TriesExchangeVariants(t *testing.T) {
	// YMAX is unknown on the US listing but found on the NEO exchange.
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/YMAX.NE", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart": {"result": [{"meta": {"regularMarketPrice": 18.40}}]}}`))
	})
	s := newTestSource(t, mux)

	obs, err := s.Price(context.Background(), "YMAX", date.Date{})
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if want := incomelens.M(18.40, "USD"); !obs.Price.Equal(want) {
		t.Errorf("Price = %v, want %v", obs.Price, want)
	}
}

func TestSource_AllVariantsFail(t *testing.T) {
	s := newTestSource(t, http.NotFoundHandler())

	if _, err := s.Price(context.Background(), "NOPE", date.Date{}); err == nil {
		t.Error("Price() with no listing returned no error")
	}
}

func timestamp(d date.Date) string {
	return fmt.Sprint(d.Unix())
}
