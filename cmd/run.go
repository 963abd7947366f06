package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/urfave/cli"

	"github.com/fidgetd/fidget/internal/backend"
	"github.com/fidgetd/fidget/internal/backend/uinput"
	"github.com/fidgetd/fidget/internal/backend/x11"
	"github.com/fidgetd/fidget/internal/config"
	"github.com/fidgetd/fidget/internal/event"
	"github.com/fidgetd/fidget/internal/scheduler"
	"github.com/fidgetd/fidget/pkg/logger"
)

func run(ctx *cli.Context) error {
	l := newLogger(verbosity)
	defer l.Close()

	l.Debug("fidget %s", versionCmdStr)
	logHostInfo(l)

	specs, delay, err := assembleEvents(ctx, l)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		l.Warning("No events specified.  Nothing to do...")
		return cli.ShowAppHelp(ctx)
	}

	b, err := newBackend(backendName, l)
	if err != nil {
		return err
	}
	defer b.Close()

	inj := backend.NewInjector(b, l)
	sched := scheduler.New(inj, l)
	for _, spec := range specs {
		l.Info("Will activate %s every %.3fs", spec.Target, spec.Interval.Seconds())
		sched.AddEvent(spec)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sched.Start(runCtx, delay)
	if runCtx.Err() != nil {
		l.Info("Interrupted, exiting.")
		return nil
	}
	return err
}

// assembleEvents merges the config file (when given) with the repeatable
// -m and -k flags. Config events come first, flag events after, so flag
// ordering relative to the file is stable. Scalar flags beat the file.
func assembleEvents(ctx *cli.Context, l logger.Logger) ([]event.Spec, time.Duration, error) {
	var specs []event.Spec
	delay, err := event.IntervalFromMs(delayMs)
	if err != nil {
		return nil, 0, err
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, 0, err
		}
		specs, err = cfg.Specs()
		if err != nil {
			return nil, 0, err
		}
		if !flagGiven(ctx, "delay", "d") {
			delay = cfg.Delay(delay)
		}
		if !flagGiven(ctx, "backend", "b") && cfg.Backend != "" {
			backendName = cfg.Backend
		}
		if displayName == "" {
			displayName = cfg.Display
		}
		l.Debug("loaded %d event(s) from %s", len(specs), configPath)
	}

	for _, arg := range ctx.StringSlice("mousebutton-and-interval") {
		spec, err := event.ParseMouse(arg)
		if err != nil {
			return nil, 0, err
		}
		specs = append(specs, spec)
	}
	for _, arg := range ctx.StringSlice("keypress-and-interval") {
		spec, err := event.ParseKey(arg)
		if err != nil {
			return nil, 0, err
		}
		specs = append(specs, spec)
	}
	return specs, delay, nil
}

// flagGiven reports whether a flag was passed under any of its names. The
// flag set only records the spelling actually used, so aliases must be
// checked individually.
func flagGiven(ctx *cli.Context, names ...string) bool {
	for _, n := range names {
		if ctx.IsSet(n) {
			return true
		}
	}
	return false
}

func newBackend(kind string, l logger.Logger) (backend.Backend, error) {
	switch kind {
	case "x11":
		return x11.New(displayName, l)
	case "uinput":
		return uinput.New(l)
	default:
		return nil, fmt.Errorf("unknown backend %q (expected x11 or uinput)", kind)
	}
}

func newLogger(verbosity int) logger.Logger {
	level := logger.LevelWarning + logger.Level(verbosity)
	if level > logger.LevelDebug {
		level = logger.LevelDebug
	}
	return logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags), level)
}

// logHostInfo records where we are running, mirroring what ends up in bug
// reports anyway.
func logHostInfo(l logger.Logger) {
	info, err := host.Info()
	if err != nil {
		l.Debug("host info unavailable: %v", err)
		return
	}
	l.Debug("host: %s %s (%s)", info.Platform, info.PlatformVersion, info.Hostname)
}
