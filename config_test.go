package incomelens

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"incomelens/date"
)

func validConfig() Config {
	return Config{
		Symbols:    []string{"QYLD", "JEPI", "YMAX"},
		Investment: M(10_000, "USD"),
		StartDate:  date.New(2025, time.January, 6),
	}
}

func TestConfig_Validate(t *testing.T) {
	now := date.New(2025, time.August, 22)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"no symbols", func(c *Config) { c.Symbols = nil }, true},
		{"empty symbol", func(c *Config) { c.Symbols = []string{"QYLD", ""} }, true},
		{"duplicate symbol", func(c *Config) { c.Symbols = []string{"QYLD", "QYLD"} }, true},
		{"zero investment", func(c *Config) { c.Investment = M(0, "USD") }, true},
		{"negative investment", func(c *Config) { c.Investment = M(-100, "USD") }, true},
		{"missing start date", func(c *Config) { c.StartDate = date.Date{} }, true},
		{"future start date", func(c *Config) { c.StartDate = now.Add(1) }, true},
		{"start date today", func(c *Config) { c.StartDate = now }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate(now)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want it to wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	content := `{
		"symbols": ["QYLD", "JEPI"],
		"investment": "10000",
		"start": "2025-01-06",
		"categories": {"Covered Call": ["QYLD"]}
	}`
	filename := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := DecodeConfig(filename)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}

	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "QYLD" {
		t.Errorf("Symbols = %v, want [QYLD JEPI]", cfg.Symbols)
	}
	// The currency defaults to USD when omitted.
	if want := M(10_000, "USD"); !cfg.Investment.Equal(want) {
		t.Errorf("Investment = %v, want %v", cfg.Investment, want)
	}
	if want := date.New(2025, time.January, 6); cfg.StartDate != want {
		t.Errorf("StartDate = %v, want %v", cfg.StartDate, want)
	}
	if got := cfg.Category("QYLD"); got != "Covered Call" {
		t.Errorf("Category(QYLD) = %q, want %q", got, "Covered Call")
	}
	if got := cfg.Category("JEPI"); got != "" {
		t.Errorf("Category(JEPI) = %q, want empty", got)
	}
}

func TestDecodeConfig_MissingFile(t *testing.T) {
	if _, err := DecodeConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("DecodeConfig() on a missing file returned no error")
	}
}
