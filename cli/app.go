// Package cli implements the cadexport command line tool.
package cli

import (
	"io"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	outputFlag = "output"
	debugFlag  = "debug"
)

// NewApp returns the cadexport CLI app with the given output writers.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "cadexport",
		Usage:           "export component poses and mass properties from a CAD assembly snapshot",
		Writer:          out,
		ErrWriter:       errOut,
		HideHelpCommand: true,
		Metadata:        map[string]interface{}{},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			var logger golog.Logger
			if c.Bool(debugFlag) {
				logger = golog.NewDebugLogger("cadexport")
			} else {
				logger = zap.NewNop().Sugar()
			}
			c.App.Metadata["logger"] = logger
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "export",
				Usage:     "print a text report of every component's pose and mass properties",
				ArgsUsage: "<assembly.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    outputFlag,
						Aliases: []string{"o"},
						Usage:   "write the report to `FILE` instead of stdout",
					},
				},
				Action: ExportAction,
			},
			{
				Name:      "urdf",
				Usage:     "emit a URDF fragment with a full link element per component",
				ArgsUsage: "<assembly.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    outputFlag,
						Aliases: []string{"o"},
						Usage:   "write the URDF to `FILE` instead of stdout",
					},
				},
				Action: URDFAction,
			},
			{
				Name:      "inspect",
				Usage:     "summarize an assembly snapshot without exporting it",
				ArgsUsage: "<assembly.json>",
				Action:    InspectAction,
			},
		},
	}
}

func appLogger(c *cli.Context) golog.Logger {
	if logger, ok := c.App.Metadata["logger"].(golog.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop().Sugar()
}
