package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fidgetd/fidget/internal/event"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fidget.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
display: ":1"
delay_ms: 500
backend: uinput
keys:
  - key: q
    interval_ms: 4000
buttons:
  - button: 1
    interval_ms: 9000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display != ":1" {
		t.Errorf("display = %q, want %q", cfg.Display, ":1")
	}
	if cfg.Backend != "uinput" {
		t.Errorf("backend = %q, want %q", cfg.Backend, "uinput")
	}
	if got := cfg.Delay(250 * time.Millisecond); got != 500*time.Millisecond {
		t.Errorf("delay = %v, want 500ms", got)
	}

	specs, err := cfg.Specs()
	if err != nil {
		t.Fatalf("Specs: %v", err)
	}
	want := []event.Spec{
		{Target: event.ButtonTarget(1), Interval: 9 * time.Second},
		{Target: event.KeyTarget("q"), Interval: 4 * time.Second},
	}
	if len(specs) != len(want) {
		t.Fatalf("got %d specs, want %d", len(specs), len(want))
	}
	for i := range want {
		if specs[i] != want[i] {
			t.Errorf("spec %d = %v, want %v", i, specs[i], want[i])
		}
	}
}

func TestLoadEmptyConfigUsesFallbacks(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Delay(250 * time.Millisecond); got != 250*time.Millisecond {
		t.Errorf("delay = %v, want fallback 250ms", got)
	}
	specs, err := cfg.Specs()
	if err != nil {
		t.Fatalf("Specs: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("expected no specs, got %v", specs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "keys: [unclosed")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSpecsRejectsZeroInterval(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
keys:
  - key: q
    interval_ms: 0
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Specs(); err == nil {
		t.Error("expected error for zero interval")
	}
}

func TestSpecsRejectsEmptyKey(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
keys:
  - interval_ms: 1000
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Specs(); err == nil {
		t.Error("expected error for empty key name")
	}
}

func TestSpecsRejectsOverflowingInterval(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
keys:
  - key: q
    interval_ms: 20000000000000
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Specs(); err == nil {
		t.Error("expected error for interval that overflows a duration")
	}
}

func TestLoadRejectsOverflowingDelay(t *testing.T) {
	if _, err := Load(writeConfig(t, "delay_ms: 20000000000000\n")); err == nil {
		t.Error("expected error for delay that overflows a duration")
	}
}
