package signal

import (
	"fmt"

	"github.com/harrison/signalscan/internal/fileutil"
)

// Logger receives progress messages during a scan.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
}

// ScanOptions configures Scan.
type ScanOptions struct {
	Walk     fileutil.WalkOptions
	Patterns []Pattern
	// Logger is optional; nil discards progress messages.
	Logger Logger
}

// Scan walks root and classifies every eligible file, returning the collected usage.
// Any walk, read or classification error aborts the scan and no usage is returned.
func Scan(root string, opts ScanOptions) (*Usage, error) {
	classifier := NewClassifier(opts.Patterns)
	usage := NewUsage()

	err := fileutil.WalkSources(root, opts.Walk, func(path string) error {
		if opts.Logger != nil {
			opts.Logger.LogDebug(fmt.Sprintf("Scanning %s", path))
		}
		var onMatch func(int, Match)
		if opts.Logger != nil {
			onMatch = func(line int, m Match) {
				opts.Logger.LogTrace(fmt.Sprintf("%s:%d: %s %s", path, line, m.Kind, m.Name))
			}
		}
		if err := classifier.classifyFile(path, usage, onMatch); err != nil {
			return err
		}
		usage.Files++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.LogInfo(fmt.Sprintf("Scanned %d files: %d declared, %d emitted, %d connected, %d compat-connected",
			usage.Files, len(usage.Declared), len(usage.Emitted), len(usage.Connected), len(usage.CompatConnected)))
	}

	return usage, nil
}
