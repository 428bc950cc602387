package config

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DebounceWindow != 2*time.Second {
		t.Errorf("DebounceWindow = %s", cfg.DebounceWindow)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PAPERBLOOM_BASE_URL", "https://api.paperbloom.example")
	t.Setenv("PAPERBLOOM_DEBOUNCE_WINDOW", "500ms")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.BaseURL != "https://api.paperbloom.example" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DebounceWindow != 500*time.Millisecond {
		t.Errorf("DebounceWindow = %s", cfg.DebounceWindow)
	}
}

func TestNewRejectsNonPositiveWindow(t *testing.T) {
	t.Setenv("PAPERBLOOM_DEBOUNCE_WINDOW", "0s")

	if _, err := New(); err == nil {
		t.Fatal("want error for zero debounce window")
	}
}
