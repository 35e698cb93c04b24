package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("RAW_PAGE_SIZE", "")
	t.Setenv("PROMPT_MAX_ATTEMPTS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.DataDir != "." {
		t.Errorf("DataDir: got %q, want .", cfg.DataDir)
	}
	if cfg.RawPageSize != 5 {
		t.Errorf("RawPageSize: got %d, want 5", cfg.RawPageSize)
	}
	if cfg.PromptMaxAttempts != 0 {
		t.Errorf("PromptMaxAttempts: got %d, want 0", cfg.PromptMaxAttempts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/bikeshare")
	t.Setenv("RAW_PAGE_SIZE", "10")
	t.Setenv("PROMPT_MAX_ATTEMPTS", "not-a-number")

	cfg := Load()
	if cfg.DataDir != "/srv/bikeshare" {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
	if cfg.RawPageSize != 10 {
		t.Errorf("RawPageSize: got %d, want 10", cfg.RawPageSize)
	}
	if cfg.PromptMaxAttempts != 0 {
		t.Errorf("PromptMaxAttempts should fall back to 0, got %d", cfg.PromptMaxAttempts)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no data dir", Config{LogLevel: "info", RawPageSize: 5, Catalog: DefaultCatalog()}},
		{"bad level", Config{DataDir: ".", LogLevel: "loud", RawPageSize: 5, Catalog: DefaultCatalog()}},
		{"zero page size", Config{DataDir: ".", LogLevel: "info", Catalog: DefaultCatalog()}},
		{"negative attempts", Config{DataDir: ".", LogLevel: "info", RawPageSize: 5, PromptMaxAttempts: -1, Catalog: DefaultCatalog()}},
		{"empty catalog", Config{DataDir: ".", LogLevel: "info", RawPageSize: 5}},
	}

	for _, tt := range tests {
		if err := tt.cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := DefaultCatalog()

	if got := c.DescribeCities(); got != "chicago, new york city or washington" {
		t.Errorf("DescribeCities: got %q", got)
	}
	if n, ok := c.MonthNumber("june"); !ok || n != 6 {
		t.Errorf("MonthNumber(june): got %d/%v", n, ok)
	}
	if c.ValidMonth("july") {
		t.Error("july is outside the data range")
	}
	if !c.ValidMonth(AllValue) || !c.ValidDay(AllValue) {
		t.Error("all should be valid for month and day")
	}
	if !c.ValidDay("sunday") || c.ValidDay("Sunday") {
		t.Error("days are matched in lower case")
	}

	cfg := &Config{DataDir: "data", Catalog: c}
	if p, ok := cfg.CityPath("new york city"); !ok || p != filepath.Join("data", "new_york_city.csv") {
		t.Errorf("CityPath: got %q/%v", p, ok)
	}
	if _, ok := cfg.CityPath("boston"); ok {
		t.Error("boston should not resolve")
	}
}
