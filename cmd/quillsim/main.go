// Package main is the entry point for quillsim, the completion simulator
// for command trees built with quill.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/quillcli/quill/internal/sim"
	"github.com/quillcli/quill/pkg/version"
)

func main() {
	app := &cli.Command{
		Name:    "quillsim",
		Usage:   "Simulate and inspect quill shell completion",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("QUILLSIM_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Resolve completion candidates for a partial command line",
				ArgsUsage: "[words...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tree",
						Aliases:  []string{"t"},
						Usage:    "Command tree file (yml, toml or json)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "incomplete",
						Aliases: []string{"i"},
						Usage:   "Partial word under the cursor",
					},
					&cli.StringFlag{
						Name:  "shell",
						Usage: "Emit the raw line protocol of this shell instead of a table",
					},
					&cli.BoolFlag{
						Name:  "timing",
						Usage: "Report load and resolution timings on stderr",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sim.Complete(sim.CompleteParams{
						TreePath:   cmd.String("tree"),
						Words:      cmd.Args().Slice(),
						Incomplete: cmd.String("incomplete"),
						Shell:      cmd.String("shell"),
						LogLevel:   cmd.String("log-level"),
						ShowTiming: cmd.Bool("timing"),
					})
				},
			},
			{
				Name:  "source",
				Usage: "Emit the activation script for a shell",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tree",
						Aliases:  []string{"t"},
						Usage:    "Command tree file (yml, toml or json)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "shell",
						Value: "bash",
						Usage: "Target shell (bash, zsh, fish)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sim.Source(sim.SourceParams{
						TreePath: cmd.String("tree"),
						Shell:    cmd.String("shell"),
						LogLevel: cmd.String("log-level"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Schema-check a command tree file",
				ArgsUsage: "<tree-file>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("missing tree file argument")
					}
					return sim.Validate(cmd.Args().Get(0))
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
