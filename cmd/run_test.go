package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/urfave/cli"

	"github.com/fidgetd/fidget/internal/event"
	"github.com/fidgetd/fidget/pkg/logger"
)

// testContext parses args through the real run flags so Destination vars,
// IsSet and StringSlice behave as they would in a live invocation.
func testContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	displayName, delayMs, verbosity, backendName, configPath = "", 250, 0, "x11", ""
	set := flag.NewFlagSet("fidget", flag.ContinueOnError)
	for _, f := range runFlags {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cli.NewContext(nil, set, nil)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fidget.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestAssembleEventsFlagsOnly(t *testing.T) {
	ctx := testContext(t, "-m", "1:1000", "-k", "q:2000")

	specs, delay, err := assembleEvents(ctx, logger.NewNopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delay != 250*time.Millisecond {
		t.Errorf("expected default delay 250ms, got %v", delay)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if specs[0].Target.Kind != event.KindButton || specs[0].Target.Button != 1 {
		t.Errorf("spec 0: expected button 1, got %s", specs[0].Target)
	}
	if specs[1].Target.Kind != event.KindKey || specs[1].Target.Key != "q" {
		t.Errorf("spec 1: expected key q, got %s", specs[1].Target)
	}
}

func TestAssembleEventsBadSpec(t *testing.T) {
	ctx := testContext(t, "-m", "nope")

	if _, _, err := assembleEvents(ctx, logger.NewNopLogger()); err == nil {
		t.Fatal("expected error for malformed mouse spec")
	}
}

func TestAssembleEventsConfigFileEvents(t *testing.T) {
	path := writeConfigFile(t, `
delay_ms: 1000
backend: uinput
keys:
  - key: q
    interval_ms: 4000
buttons:
  - button: 2
    interval_ms: 3000
`)
	ctx := testContext(t, "-c", path, "-k", "w:5000")

	specs, delay, err := assembleEvents(ctx, logger.NewNopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delay != time.Second {
		t.Errorf("expected config delay 1s, got %v", delay)
	}
	if backendName != "uinput" {
		t.Errorf("expected config backend uinput, got %q", backendName)
	}
	// Config events first (buttons then keys), flag events after.
	want := []string{"button     2", "key        q", "key        w"}
	if len(specs) != len(want) {
		t.Fatalf("expected %d specs, got %d", len(want), len(specs))
	}
	for i, w := range want {
		if got := specs[i].Target.String(); got != w {
			t.Errorf("spec %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestAssembleEventsFlagsBeatConfig(t *testing.T) {
	path := writeConfigFile(t, "delay_ms: 1000\nbackend: uinput\n")
	ctx := testContext(t, "-c", path, "-d", "50", "-b", "x11")

	_, delay, err := assembleEvents(ctx, logger.NewNopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delay != 50*time.Millisecond {
		t.Errorf("expected flag delay 50ms, got %v", delay)
	}
	if backendName != "x11" {
		t.Errorf("expected flag backend x11, got %q", backendName)
	}
}

func TestAssembleEventsMissingConfigFile(t *testing.T) {
	ctx := testContext(t, "-c", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, _, err := assembleEvents(ctx, logger.NewNopLogger()); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	if _, err := newBackend("wayland", logger.NewNopLogger()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
