// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/route"
)

// Messages shared with interactive front ends.
const (
	MsgInvalidQuery = "Invalid start or end node."
	MsgNoPaths      = "No paths found."
	MsgBestPrefix   = "Most convenient path: "
)

const (
	pathSep       = " -> "
	minCellWidth  = 6
	defaultDigits = 4
)

// Option configures Report.
type Option func(*options)

type options struct {
	scores bool
	digits int
	count  bool
}

// WithScores prints each path's score next to it.
func WithScores(on bool) Option {
	return func(o *options) { o.scores = on }
}

// WithPrecision sets the number of decimals for scores. Panics on d < 0.
func WithPrecision(d int) Option {
	if d < 0 {
		panic("render: WithPrecision(d<0)")
	}
	return func(o *options) { o.digits = d }
}

// WithCount prints a "<n> paths found." summary line.
func WithCount(on bool) Option {
	return func(o *options) { o.count = on }
}

// printer remembers the first write error so call sites stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// FormatPath joins path with " -> ".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, pathSep)
}

// Path writes FormatPath(path) followed by a newline.
func Path(w io.Writer, path []int) error {
	_, err := fmt.Fprintln(w, FormatPath(path))

	return err
}

// Label returns the category initial followed by the stop ID, e.g. "T1".
// A stop without a category is shown as "?<id>".
func Label(n core.Node) string {
	initial := "?"
	if n.Category != "" {
		initial = string([]rune(n.Category)[0])
	}

	return initial + strconv.Itoa(n.ID)
}

// FullLabel returns the category followed by the stop ID, e.g. "Taxi Stand1".
func FullLabel(n core.Node) string {
	return n.Category + strconv.Itoa(n.ID)
}

// Graph writes the stop ruler and every street of g.
func Graph(w io.Writer, g *core.Graph) error {
	p := &printer{w: w}
	nodes := g.Nodes()

	// 1. Ruler sized to the widest label
	width := minCellWidth
	labels := make(map[int]string, len(nodes))
	for _, n := range nodes {
		labels[n.ID] = Label(n)
		if l := len(labels[n.ID]) + 3; l > width {
			width = l
		}
	}
	ruler := strings.Repeat("+"+strings.Repeat("-", width), len(nodes)) + "+\n"

	p.printf("%s", ruler)
	for _, n := range nodes {
		p.printf("| %-*s", width-1, labels[n.ID])
	}
	p.printf("|\n%s\n", ruler)

	// 2. Streets grouped by source stop
	for _, n := range nodes {
		out, err := g.Neighbors(n.ID)
		if err != nil {
			return err
		}
		if len(out) == 0 {
			continue
		}
		for _, e := range out {
			p.printf("%s --> %s (D: %d, T: %d, RL: %d)\n",
				labels[e.From], labels[e.To], e.Info.Distance, e.Info.Traffic, e.Info.RedLights)
		}
		p.printf("\n")
	}

	return p.err
}

// Report writes the outcome of a route query. A nil report means the query
// was rejected.
func Report(w io.Writer, g *core.Graph, rep *route.Report, opts ...Option) error {
	o := options{digits: defaultDigits}
	for _, fn := range opts {
		fn(&o)
	}
	p := &printer{w: w}

	if rep == nil {
		p.printf("%s\n", MsgInvalidQuery)
		return p.err
	}

	start, _ := g.Node(rep.Start)
	end, _ := g.Node(rep.End)
	p.printf("All paths from %s to %s:\n", FullLabel(start), FullLabel(end))
	for i, path := range rep.Paths {
		if o.scores && i < len(rep.Scores) {
			p.printf("%s  (score %.*f)\n", FormatPath(path), o.digits, rep.Scores[i])
			continue
		}
		p.printf("%s\n", FormatPath(path))
	}
	if o.count {
		noun := "paths"
		if len(rep.Paths) == 1 {
			noun = "path"
		}
		p.printf("%s %s found.\n", humanize.Comma(int64(len(rep.Paths))), noun)
	}
	if rep.Truncated {
		p.printf("Search stopped after %s paths; the listing is incomplete.\n", humanize.Comma(int64(len(rep.Paths))))
	}
	p.printf("\n")

	if rep.Best == nil {
		p.printf("%s\n", MsgNoPaths)
		return p.err
	}
	p.printf("%s%s\n", MsgBestPrefix, FormatPath(rep.Best))

	return p.err
}

// Best writes only the most convenient path line, or the invalid/no-path
// message. WithScores appends the score; WithCount is ignored.
func Best(w io.Writer, rep *route.Report, opts ...Option) error {
	o := options{digits: defaultDigits}
	for _, fn := range opts {
		fn(&o)
	}
	p := &printer{w: w}

	switch {
	case rep == nil:
		p.printf("%s\n", MsgInvalidQuery)
	case rep.Best == nil:
		p.printf("%s\n", MsgNoPaths)
	case o.scores:
		p.printf("%s%s  (score %.*f)\n", MsgBestPrefix, FormatPath(rep.Best), o.digits, rep.BestScore)
	default:
		p.printf("%s%s\n", MsgBestPrefix, FormatPath(rep.Best))
	}

	return p.err
}
