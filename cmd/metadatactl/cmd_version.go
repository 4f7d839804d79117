package main

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

var (
	GitCommit string
	GitTag    string
)

func newCmd_Version() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information of this binary.",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, "METADATACTL")
			fmt.Fprintf(c.App.Writer, "Tag/Branch: %s\n", GitTag)
			fmt.Fprintf(c.App.Writer, "Commit: %s\n", GitCommit)
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(c.App.Writer, "More info:\n")
				for _, setting := range info.Settings {
					if isAnyOf(setting.Key,
						"-compiler",
						"GOARCH",
						"GOOS",
						"vcs.revision",
						"vcs.time",
						"vcs.modified",
					) {
						fmt.Fprintf(c.App.Writer, "  %s: %s\n", setting.Key, setting.Value)
					}
				}
			}
			return nil
		},
	}
}

func isAnyOf(s string, anyOf ...string) bool {
	for _, v := range anyOf {
		if s == v {
			return true
		}
	}
	return false
}
