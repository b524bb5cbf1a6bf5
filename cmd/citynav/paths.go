// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynav/convenience"
	"github.com/katalvlaran/citynav/dfs"
	"github.com/katalvlaran/citynav/render"
	"github.com/katalvlaran/citynav/route"
)

// largeEnumeration is the path count above which the CLI warns before
// listing.
const largeEnumeration = 100000

const defaultPrecision = 4

type pathsFlags struct {
	from, to  int
	scores    bool
	count     bool
	maxPaths  int
	showGraph bool
	fast      bool
	precision int
}

func newPathsCmd(a *app) *cobra.Command {
	var f pathsFlags
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List every path between two stops and the most convenient one",
		Long: "Lists every simple path from --from to --to and the most convenient one.\n" +
			"Without --from/--to the stops are read from standard input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPaths(cmd, f)
		},
	}
	cmd.Flags().IntVar(&f.from, "from", 0, "starting stop")
	cmd.Flags().IntVar(&f.to, "to", 0, "destination stop")
	cmd.Flags().BoolVar(&f.scores, "scores", false, "print each path's convenience score")
	cmd.Flags().BoolVar(&f.count, "count", false, "print the number of paths found")
	cmd.Flags().IntVar(&f.maxPaths, "max-paths", 0, "stop after this many paths (0 = no limit)")
	cmd.Flags().BoolVar(&f.showGraph, "show-graph", false, "print the city before the paths")
	cmd.Flags().IntVar(&f.precision, "precision", defaultPrecision, "decimals printed for scores")
	cmd.Flags().BoolVar(&f.fast, "fast", false, "print only the most convenient path, found without listing every path")

	return cmd
}

func (a *app) runPaths(cmd *cobra.Command, f pathsFlags) error {
	if f.maxPaths < 0 {
		return fmt.Errorf("--max-paths must be ≥ 0, got %d", f.maxPaths)
	}
	if f.precision < 0 {
		return fmt.Errorf("--precision must be ≥ 0, got %d", f.precision)
	}
	g, err := a.buildCity()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	interactive := !cmd.Flags().Changed("from") || !cmd.Flags().Changed("to")
	if f.showGraph || interactive {
		if err = render.Graph(out, g); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if interactive {
		in := bufio.NewReader(cmd.InOrStdin())
		if f.from, err = prompt(in, out, fmt.Sprintf("Enter the starting position (1-%d): ", a.nodes)); err != nil {
			return err
		}
		if f.to, err = prompt(in, out, fmt.Sprintf("Enter the destination position (1-%d): ", a.nodes)); err != nil {
			return err
		}
	}
	opts := []route.Option{route.WithLogger(a.log.WithField("component", "route"))}
	if f.fast {
		rep, err := route.Fast(cmd.Context(), g, f.from, f.to, opts...)
		if err != nil && !errors.Is(err, convenience.ErrNoPath) && !errors.Is(err, dfs.ErrInvalidQuery) {
			return err
		}
		return render.Best(out, rep, render.WithScores(f.scores), render.WithPrecision(f.precision))
	}
	// CountPaths fails on cyclic cities; the warning is then skipped.
	if n, err := dfs.CountPaths(g, f.from, f.to); err == nil && n > largeEnumeration {
		a.log.WithField("paths", n).Warn("large enumeration; consider --max-paths or --fast")
	}
	if f.maxPaths > 0 {
		opts = append(opts, route.WithSearchOptions(dfs.WithMaxPaths(f.maxPaths)))
	}
	rep, err := route.Plan(cmd.Context(), g, f.from, f.to, opts...)
	switch {
	case err == nil, errors.Is(err, convenience.ErrNoPath), errors.Is(err, dfs.ErrInvalidQuery):
		// rendered below; a nil report prints the invalid-query message
	case errors.Is(err, dfs.ErrPathLimit):
		a.log.WithField("max_paths", f.maxPaths).Warn("path limit reached; listing is incomplete")
		return render.Report(out, g, rep, render.WithScores(f.scores), render.WithPrecision(f.precision), render.WithCount(true))
	default:
		return err
	}

	return render.Report(out, g, rep, render.WithScores(f.scores), render.WithPrecision(f.precision), render.WithCount(f.count))
}

// prompt writes msg and reads one integer line. Non-numeric input yields 0,
// which no stop uses, so it surfaces as an invalid query.
func prompt(in *bufio.Reader, out io.Writer, msg string) (int, error) {
	fmt.Fprint(out, msg)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("read input: %w", err)
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, nil
	}

	return n, nil
}
