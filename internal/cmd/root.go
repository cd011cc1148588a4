package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harrison/signalscan/internal/config"
	"github.com/harrison/signalscan/internal/display"
	"github.com/harrison/signalscan/internal/fileutil"
	"github.com/harrison/signalscan/internal/logger"
	"github.com/harrison/signalscan/internal/report"
	"github.com/harrison/signalscan/internal/signal"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrMismatches is returned when the report has a nonzero tally.
// The report has already been printed, so callers exit without another message.
var ErrMismatches = errors.New("signal mismatches found")

// NewRootCommand creates and returns the root cobra command for signalscan
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signalscan [GDREPO]",
		Short: "Find out about signal usage in Godot",
		Long: `signalscan walks a Godot source checkout and cross-references the signals
that are added (ADD_SIGNAL), emitted (emit_signal) and connected (->connect).

Every signal that is not added, emitted and connected is reported, grouped by
what is missing. Files under thirdparty/, misc/ and __pycache__/, hidden
entries and generated *.gen.h headers are skipped.

Exit code: 0 if no mismatches were found, 1 otherwise`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		RunE:    runCheck,
		// main prints errors; usage would drown the report
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().String("log-level", "", "Log verbosity on stderr: trace, debug, info, warn, error (default: warn)")
	cmd.Flags().String("marker", "", "File that must exist at the repository top level (default: icon.svg)")
	cmd.Flags().Bool("include-compat", false, "Treat connect_compat calls as connections")
	cmd.Flags().Bool("count-info", true, "Count emitted-and-added-but-unconnected signals toward the exit code")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var root string
	if len(args) > 0 {
		root = args[0]
	}

	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)

	return checkSignals(root, cfg, cmd.OutOrStdout(), stderr, log)
}

// loadConfig reads the optional config file and applies explicitly set flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		// LoadConfig tolerates a missing file; a path given on the command line must exist
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var logLevelPtr, markerPtr *string
	var includeCompatPtr, countInfoPtr *bool

	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("marker") {
		v, _ := cmd.Flags().GetString("marker")
		markerPtr = &v
	}
	if cmd.Flags().Changed("include-compat") {
		v, _ := cmd.Flags().GetBool("include-compat")
		includeCompatPtr = &v
	}
	if cmd.Flags().Changed("count-info") {
		v, _ := cmd.Flags().GetBool("count-info")
		countInfoPtr = &v
	}

	cfg.MergeWithFlags(logLevelPtr, markerPtr, includeCompatPtr, countInfoPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// checkSignals validates root, scans it and writes the report to out.
// Warnings and logs go to errOut. Returns ErrMismatches when the tally is nonzero.
func checkSignals(root string, cfg *config.Config, out, errOut io.Writer, log *logger.ConsoleLogger) error {
	if err := fileutil.ValidateRoot(root, cfg.MarkerFile); err != nil {
		return err
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		resolved = abs
	}

	log.LogInfo(fmt.Sprintf("Scanning %s", resolved))
	usage, err := signal.Scan(resolved, signal.ScanOptions{
		Walk:   cfg.WalkOptions(),
		Logger: log,
	})
	if err != nil {
		return err
	}
	if usage.Files == 0 {
		log.LogWarn(fmt.Sprintf("No source files found under %s", resolved))
	}

	opts := cfg.ReportOptions()
	opts.Color = logger.IsTerminal(out)
	rep := report.Build(usage, opts)

	if rep.IgnoredCompat > 0 {
		display.WarnIgnoredCompat(rep.IgnoredCompat).Display(errOut, logger.IsTerminal(errOut))
	}

	if err := rep.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.LogInfo(fmt.Sprintf("Found %d fine signals, %d findings", len(usage.Fine()), rep.Total))

	if rep.Failed() {
		return ErrMismatches
	}
	return nil
}

// LogFatal writes err to w as an error-level log line.
// ErrMismatches is not logged because the report already ends with the summary line.
func LogFatal(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrMismatches) {
		return
	}
	logger.NewConsoleLogger(w, "error").LogError(err.Error())
}
