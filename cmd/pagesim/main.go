package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/pagesim <command> <flags>

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "pagesim",
		Usage: "page replacement simulator",
		Flags: []cli.Flag{
			&configFlag,
			&logLevelFlag,
			&logFormatFlag,
			&metricsFileFlag,
		},
		Commands: []*cli.Command{
			&RunCmd,
			&CompareCmd,
		},
	}
}
