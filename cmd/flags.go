package cmd

import "github.com/urfave/cli"

var (
	displayName string
	delayMs     uint64
	verbosity   int
	backendName string
	configPath  string
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "x11-display, x",
		Usage:       "the X11 display to send the input to",
		EnvVar:      "DISPLAY",
		Destination: &displayName,
	},
	cli.Uint64Flag{
		Name:        "delay, d",
		Usage:       "delay in msecs before sending any input events",
		Value:       250,
		Destination: &delayMs,
	},
	cli.StringSliceFlag{
		Name:  "mousebutton-and-interval, m",
		Usage: "click mouse button X at regular intervals, with Y msecs between (format X:Y, repeatable)",
	},
	cli.StringSliceFlag{
		Name:  "keypress-and-interval, k",
		Usage: "press keyboard key X at regular intervals, with Y msecs between (format X:Y, repeatable)",
	},
	cli.IntFlag{
		Name:        "verbose, v",
		Usage:       "verbosity level: 0=warnings, 1=info, 2=debug",
		Destination: &verbosity,
	},
	cli.StringFlag{
		Name:        "backend, b",
		Usage:       "input injection backend (x11 or uinput)",
		Value:       "x11",
		Destination: &backendName,
	},
	cli.StringFlag{
		Name:        "config, c",
		Usage:       "path to a YAML configuration file",
		Destination: &configPath,
	},
}
