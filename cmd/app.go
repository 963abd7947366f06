// Package cmd wires the fidget command-line interface: one default action
// that runs the injector until the process is terminated, plus a version
// command.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
)

const description = `Fidget keeps a desktop session from looking idle by injecting
synthetic keyboard and mouse input at configurable intervals, pausing
automatically while the user appears active.`

// BuildArgs carries the ldflags-injected build identity.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var versionCmdStr string

// Execute runs the fidget CLI with the given arguments.
func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:         "fidget",
		HelpName:     "fidget",
		Usage:        "Keeps a desktop session from looking idle.",
		Version:      fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:    "fidget [options...]",
		Description:  description,
		OnUsageError: usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "prints the installed version of fidget",
				Action:  getVersion,
			},
		},
		Action:                 run,
		Flags:                  runFlags,
		UseShortOptionHandling: true,
		HideVersion:            true,
	}
	versionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}

func getVersion(ctx *cli.Context) error {
	fmt.Println(versionCmdStr)
	return nil
}

func usageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	fmt.Printf("%s: %s\n\n", ctx.App.HelpName, err.Error())
	if herr := cli.ShowAppHelp(ctx); herr != nil {
		fmt.Println(herr.Error())
	}
	return err
}
