// Package report cross-references signal usage and renders the mismatch report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/signalscan/internal/logger"
	"github.com/harrison/signalscan/internal/signal"
)

// SummaryLine is printed after the groups when the tally is nonzero.
const SummaryLine = "Found unused signal, exiting with code 1."

// Options controls how usage sets are combined and tallied.
type Options struct {
	// IncludeCompat folds compat connections into the connected set.
	IncludeCompat bool
	// CountInformational counts the emitted-and-added group toward Total.
	CountInformational bool
	// Color highlights signal names; set it only for terminal output.
	Color bool
}

// DefaultOptions ignores compat connections and counts every group.
func DefaultOptions() Options {
	return Options{
		IncludeCompat:      false,
		CountInformational: true,
	}
}

// Group is one category of mismatch with its sorted signal names.
type Group struct {
	// Format renders one line; it receives the signal name.
	Format        string
	Informational bool
	Signals       []string
}

// Lines renders the group's diagnostics in signal order.
func (g Group) Lines(colorize bool) []string {
	lines := make([]string, 0, len(g.Signals))
	for _, s := range g.Signals {
		if colorize {
			s = logger.Colorize(s, color.FgYellow)
		}
		lines = append(lines, fmt.Sprintf(g.Format, s))
	}
	return lines
}

// Report is the result of cross-referencing one scan.
type Report struct {
	Groups []Group
	// Total is the number of findings that count toward failure.
	Total int
	// IgnoredCompat is the number of compat connections left out of the cross-reference.
	IgnoredCompat int

	color bool
}

// Build computes the six groups from usage. Usage is not modified.
func Build(usage *signal.Usage, opts Options) *Report {
	declared := usage.Declared
	emitted := usage.Emitted
	connected := usage.Connected

	r := &Report{color: opts.Color}
	if opts.IncludeCompat {
		connected = connected.Union(usage.CompatConnected)
	} else {
		r.IgnoredCompat = len(usage.CompatConnected)
	}

	r.Groups = []Group{
		{
			Format:  "Signal %s is emitted but never added or connected",
			Signals: emitted.Difference(declared).Difference(connected).Sorted(),
		},
		{
			Format:  "Signal %s is emitted and connected but never added",
			Signals: emitted.Intersect(connected).Difference(declared).Sorted(),
		},
		{
			Format:        "Signal %s is emitted and added but never connected, this is just information message which you can ignore.",
			Informational: true,
			Signals:       emitted.Intersect(declared).Difference(connected).Sorted(),
		},
		{
			Format:  "Signal %s is added but never emitted or connected",
			Signals: declared.Difference(emitted).Difference(connected).Sorted(),
		},
		{
			Format:  "Signal %s is added and connected but never emitted",
			Signals: declared.Intersect(connected).Difference(emitted).Sorted(),
		},
		{
			Format:  "Signal %s is connected but never added or emitted",
			Signals: connected.Difference(declared).Difference(emitted).Sorted(),
		},
	}

	for _, g := range r.Groups {
		if g.Informational && !opts.CountInformational {
			continue
		}
		r.Total += len(g.Signals)
	}

	return r
}

// Failed reports whether the run should exit with a failing status.
func (r *Report) Failed() bool {
	return r.Total > 0
}

// Write prints every group followed by a blank line, then the summary line if the run failed.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	for _, g := range r.Groups {
		for _, line := range g.Lines(r.color) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.Failed() {
		b.WriteString(SummaryLine)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
