package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pnralloc",
		Usage: "Assign PNRs to flights, largest group first",
		Commands: []*cli.Command{
			allocateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var allocateCmd = &cli.Command{
	Name:    "allocate",
	Usage:   "Allocate PNRs from CSV files or a JSON document",
	Aliases: []string{"a"},
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "specify an input CSV file, repeat for more files",
		},
		&cli.StringFlag{
			Name:  "json",
			Usage: "specify an input JSON document instead of CSV files",
		},
		&cli.StringFlag{
			Name:  "marker",
			Value: "PNR",
			Usage: "specify the substring that marks a PNR row",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "specify the output file, stdout when empty",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every allocation step to stderr",
		},
	},
	Action: func(ctx *cli.Context) error {
		opts := allocateOptions{
			Files:   ctx.StringSlice("file"),
			JSON:    ctx.String("json"),
			Marker:  ctx.String("marker"),
			Out:     ctx.String("out"),
			Verbose: ctx.Bool("verbose"),
		}
		if len(opts.Files) == 0 && opts.JSON == "" {
			return errors.New("either --file or --json is required")
		}
		if len(opts.Files) > 0 && opts.JSON != "" {
			return errors.New("--file and --json are mutually exclusive")
		}
		return doAllocate(ctx.Context, opts, os.Stdout, os.Stderr)
	},
}
