// plot3d - 3D charts from tabular data
// Render CSV, JSON or GLB point data as dot, line, grid, surface or bar
// charts, either to a PNG file or interactively in the terminal.
//
// Usage:
//
//	plot3d render [options] <data.csv|data.json|model.glb>
//	plot3d view [options] <data.csv|data.json|model.glb>
//	plot3d styles
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taigrr/plot3d/pkg/chart"
	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/render"
)

const (
	flagDebug   = "debug"
	flagLogFile = "log-file"
	flagOptions = "options"
	flagStyle   = "style"
	flagWidth   = "width"
	flagHeight  = "height"
	flagOut     = "out"
	flagFPS     = "fps"
	flagFilter  = "filter"
)

var logger = zap.NewNop().Sugar()

func main() {
	chartFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    flagOptions,
			Aliases: []string{"o"},
			Usage:   "load chart options from JSON `FILE`",
		},
		&cli.StringFlag{
			Name:    flagStyle,
			Aliases: []string{"s"},
			Usage:   "chart style (see `plot3d styles`)",
		},
		&cli.IntFlag{
			Name:  flagFilter,
			Usage: "index of the filter group to show",
		},
	}

	app := &cli.App{
		Name:  "plot3d",
		Usage: "draw 3D charts from tabular data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Value: "stderr",
				Usage: "write logs to `FILE`",
			},
		},
		Before: func(c *cli.Context) error {
			l, err := newLogger(c.Bool(flagDebug), c.String(flagLogFile))
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		After: func(*cli.Context) error {
			_ = logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "render a chart to a PNG file",
				ArgsUsage: "<data file>",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: flagWidth, Value: 800, Usage: "image width in pixels"},
					&cli.IntFlag{Name: flagHeight, Value: 600, Usage: "image height in pixels"},
					&cli.StringFlag{
						Name:    flagOut,
						Aliases: []string{"O"},
						Value:   "chart.png",
						Usage:   "write the image to `FILE`",
					},
				}, chartFlags...),
				Action: renderAction,
			},
			{
				Name:      "view",
				Usage:     "explore a chart in the terminal",
				ArgsUsage: "<data file>",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: flagFPS, Value: 30, Usage: "target frames per second"},
				}, chartFlags...),
				Action: viewAction,
			},
			{
				Name:  "styles",
				Usage: "list the chart styles",
				Action: func(c *cli.Context) error {
					for _, s := range chart.Styles() {
						fmt.Fprintln(c.App.Writer, s)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool, path string) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{"stderr"},
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l.Sugar().Named("plot3d"), nil
}

// loadChart reads the data file named by the first argument and builds a
// chart from it with the command line options applied.
func loadChart(c *cli.Context) (*chart.Chart, string, error) {
	if c.NArg() < 1 {
		return nil, "", errors.New("missing data file")
	}
	path := c.Args().First()

	opts := chart.DefaultOptions()
	if file := c.String(flagOptions); file != "" {
		var err error
		if opts, err = readOptions(file); err != nil {
			return nil, "", err
		}
	}
	if style := c.String(flagStyle); style != "" {
		s, err := chart.ParseStyle(style)
		if err != nil {
			return nil, "", err
		}
		opts.Style = s
	}
	opts.Logger = logger

	recs, err := dataset.LoadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load %s", path)
	}

	ch, err := chart.New(opts)
	if err != nil {
		return nil, "", err
	}
	if err := ch.SetData(recs); err != nil {
		return nil, "", err
	}
	if c.IsSet(flagFilter) {
		if err := ch.SelectFilter(c.Int(flagFilter)); err != nil {
			return nil, "", err
		}
	}

	logger.Infow("loaded", "file", filepath.Base(path), "records", len(recs), "style", opts.Style)
	return ch, filepath.Base(path), nil
}

func readOptions(path string) (chart.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chart.Options{}, errors.Wrap(err, "read options")
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return chart.Options{}, errors.Wrapf(err, "parse options %s", path)
	}
	return chart.DecodeOptions(raw)
}

func renderAction(c *cli.Context) error {
	ch, _, err := loadChart(c)
	if err != nil {
		return err
	}

	canvas := render.NewImageCanvas(c.Int(flagWidth), c.Int(flagHeight))
	if err := ch.Paint(canvas); err != nil {
		return err
	}

	out := c.String(flagOut)
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	logger.Infow("rendered", "out", out, "width", canvas.Width(), "height", canvas.Height())
	return nil
}
