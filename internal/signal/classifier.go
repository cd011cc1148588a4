// Package signal classifies source lines into signal declarations, emissions and
// connections, and accumulates the signal names found across a source tree.
package signal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMalformedLine is returned when a line contains a marker but no terminator after it.
var ErrMalformedLine = errors.New("marker without terminator")

const commentPrefix = "//"

// Pattern describes one marker substring and how the signal name after it ends.
type Pattern struct {
	Kind   Kind
	Marker string
	// Terminators end the name; the earliest occurrence wins.
	Terminators string
}

// DefaultPatterns returns the Godot markers in priority order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Kind: Declaration, Marker: `ADD_SIGNAL(MethodInfo("`, Terminators: `"`},
		{Kind: Emission, Marker: `emit_signal("`, Terminators: `"`},
		// StringName accessors are not quoted and may be followed by arguments
		{Kind: Emission, Marker: `emit_signal(CoreStringNames::get_singleton()->`, Terminators: `,)`},
		{Kind: Emission, Marker: `emit_signal(SceneStringNames::get_singleton()->`, Terminators: `,)`},
		{Kind: Connection, Marker: `->connect("`, Terminators: `"`},
		{Kind: CompatConnection, Marker: `connect_compat("`, Terminators: `"`},
	}
}

// Match is the result of classifying a single line.
type Match struct {
	Kind Kind
	Name string
}

// Classifier matches lines against an ordered list of patterns.
type Classifier struct {
	patterns []Pattern
}

// NewClassifier creates a Classifier. A nil or empty list uses DefaultPatterns.
func NewClassifier(patterns []Pattern) *Classifier {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Classifier{patterns: patterns}
}

// Classify returns the first pattern that matches line together with the extracted name.
// Lines starting with "//" after trimming never match.
func (c *Classifier) Classify(line string) (Match, error) {
	if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
		return Match{Kind: NoMatch}, nil
	}

	for _, p := range c.patterns {
		idx := strings.Index(line, p.Marker)
		if idx < 0 {
			continue
		}

		rest := line[idx+len(p.Marker):]
		end := strings.IndexAny(rest, p.Terminators)
		if end < 0 {
			return Match{}, fmt.Errorf("%w: %q expects one of %q", ErrMalformedLine, p.Marker, p.Terminators)
		}

		return Match{Kind: p.Kind, Name: rest[:end]}, nil
	}

	return Match{Kind: NoMatch}, nil
}

// ClassifyFile classifies every line of path and records the matches in usage.
// The file is closed before ClassifyFile returns.
func (c *Classifier) ClassifyFile(path string, usage *Usage) error {
	return c.classifyFile(path, usage, nil)
}

// classifyFile is ClassifyFile with an optional callback for every matched line.
func (c *Classifier) classifyFile(path string, usage *Usage, onMatch func(line int, m Match)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Generated sources can have very long lines
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		m, err := c.Classify(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		usage.Add(m)
		if onMatch != nil && m.Kind != NoMatch {
			onMatch(lineNum, m)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	return nil
}
