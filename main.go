package main

import (
	"fmt"
	"os"

	"github.com/fidgetd/fidget/cmd"
)

// overridden at build time via ldflags
var (
	version   = "v0.0.0"
	buildType = "dev"
	date      = "unknown"
	commit    = "unknown"
)

func main() {
	err := cmd.Execute(os.Args, cmd.BuildArgs{
		Version:   version,
		BuildType: buildType,
		Date:      date,
		Commit:    commit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fidget: %s\n", err)
		os.Exit(1)
	}
}
