// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynav/builder"
	"github.com/katalvlaran/citynav/core"
)

// app holds state shared by every subcommand.
type app struct {
	seed      int64
	nodes     int
	layout    string
	density   float64
	logLevel  string
	logFormat string
	envFile   string

	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:   "citynav",
		Short: "Find the most convenient route through a generated city",
		Long: "citynav builds a city of bus stops, taxi stands and auto stands joined by one-way\n" +
			"streets, enumerates every simple path between two stops and picks the most\n" +
			"convenient one by distance, traffic and red lights.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPaths(cmd, pathsFlags{showGraph: true, precision: defaultPrecision})
		},
	}

	pf := root.PersistentFlags()
	pf.Int64Var(&a.seed, "seed", 0, "random seed for street attributes (default: "+envSeed+" or current time)")
	pf.IntVar(&a.nodes, "nodes", builder.DefaultStops, "number of stops")
	pf.StringVar(&a.layout, "layout", string(builder.LayoutForward), "street layout: forward, corridor or sparse")
	pf.Float64Var(&a.density, "density", 0.3, "edge probability for the sparse layout")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default: "+envLogLevel+" or warn)")
	pf.StringVar(&a.logFormat, "log-format", "auto", "log format: auto, text or json")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newGraphCmd(a), newPathsCmd(a), newServeCmd(a))

	return root
}

// setup resolves environment fallbacks and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := loadDotEnv(a.envFile); err != nil {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}

	// 1. Logging
	if a.logLevel == "" {
		a.logLevel = getEnv(envLogLevel, "warn")
	}
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(formatterFor(a.logFormat, cmd.ErrOrStderr()))

	// 2. Seed: flag, then env, then clock
	if !cmd.Flags().Changed("seed") {
		seed, set, err := envInt64(envSeed)
		if err != nil {
			return fmt.Errorf("%s: %w", envSeed, err)
		}
		if !set {
			seed = time.Now().UnixNano()
		}
		a.seed = seed
	}
	a.log.WithField("seed", a.seed).Debug("seed resolved")

	return nil
}

// formatterFor picks JSON for non-terminal output in auto mode.
func formatterFor(format string, w io.Writer) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{}
	case "text":
		return &logrus.TextFormatter{FullTimestamp: true}
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &logrus.TextFormatter{FullTimestamp: true}
	}

	return &logrus.JSONFormatter{}
}

// buildCity constructs the graph described by the persistent flags.
func (a *app) buildCity() (*core.Graph, error) {
	layout, err := builder.ParseLayout(a.layout)
	if err != nil {
		return nil, err
	}
	streets, err := layout.Constructor(a.density)
	if err != nil {
		return nil, err
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLogger(a.log.WithField("component", "core"))},
		[]builder.BuilderOption{builder.WithSeed(a.seed)},
		builder.Stops(a.nodes),
		streets,
	)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"stops":  g.NodeCount(),
		"edges":  g.EdgeCount(),
		"layout": layout,
		"seed":   a.seed,
	}).Info("city built")

	return g, nil
}
