package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/occur/internal/configloader"
	"github.com/yaklabco/occur/internal/logging"
	"github.com/yaklabco/occur/pkg/config"
	"github.com/yaklabco/occur/pkg/runner"
)

type findFlags struct {
	gaps   bool
	count  bool
	format string
	ignore []string
	ext    []string
	jobs   int
}

func newFindCommand() *cobra.Command {
	flags := &findFlags{}

	cmd := &cobra.Command{
		Use:   "find <query> [paths...]",
		Short: "Locate occurrences of a literal query",
		Long:  findLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.gaps, "gaps", false, "report the spans between occurrences instead")
	cmd.Flags().BoolVarP(&flags.count, "count", "c", false, "print only the total occurrence count")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, count")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.ext, "ext", nil, "restrict to file extensions (with leading dot)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	return cmd
}

const findLongDescription = `Locate every non-overlapping occurrence of a literal query.

By default, scans all non-binary files in the current directory and
subdirectories. Specify paths to scan specific files or directories. When
standard input is piped and no paths are given, the piped text is scanned
instead.

The exit code is 0 when at least one occurrence was found and 1 otherwise,
following the grep convention.

Examples:
  occur find needle                  # Scan current directory
  occur find needle docs/ README.md  # Scan specific paths
  occur find needle --gaps           # Report the text between occurrences
  occur find needle --format count   # Print only the total count
  cat file.txt | occur find needle   # Scan piped input`

func runFind(cmd *cobra.Command, args []string, flags *findFlags) error {
	logger := logging.Default()
	query := args[0]
	paths := args[1:]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, workDir, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if flags.count {
		cfg.Format = config.FormatCount
	}
	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format %q: must be text, json, or count", cfg.Format)
	}
	if len(flags.ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	}
	if len(flags.ext) > 0 {
		cfg.Extensions = flags.ext
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}

	processor := &runner.ScanProcessor{Query: query, Gaps: flags.gaps}

	// Piped input with no paths scans stdin instead of the filesystem.
	if len(paths) == 0 && stdinIsPiped(cmd) {
		return findStdin(ctx, cmd, query, processor, cfg)
	}

	logger.Debug("starting scan",
		logging.FieldQuery, query,
		logging.FieldPaths, paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, cfg.Jobs,
	)

	result, err := runner.New(processor).Run(ctx, runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		SkipBinary:   cfg.SkipBinary,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	if err := renderFindResult(cmd, result, cfg.Format, workDir); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return scanOutcome(result)
}

// findStdin scans piped standard input as a single unnamed file.
func findStdin(ctx context.Context, cmd *cobra.Command, query string, processor *runner.ScanProcessor, cfg *config.Config) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	fileResult, err := processor.Process(ctx, stdinName, content)
	if err != nil {
		return err
	}

	result := &runner.Result{}
	result.Stats.FilesDiscovered = 1
	result.Files = []runner.FileOutcome{{Path: stdinName, Result: fileResult}}
	result.Stats.FilesProcessed = 1
	result.Stats.OccurrencesTotal = fileResult.Occurrences
	if fileResult.Occurrences > 0 {
		result.Stats.FilesWithMatches = 1
	}

	if err := renderFindResult(cmd, result, cfg.Format, ""); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return scanOutcome(result)
}

// stdinName is the display path used for piped input.
const stdinName = "<stdin>"

// stdinIsPiped reports whether input is available on stdin. A replaced
// input stream (tests) always counts as piped.
func stdinIsPiped(cmd *cobra.Command) bool {
	if cmd.InOrStdin() != os.Stdin {
		return true
	}
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// loadConfig resolves configuration for a command, applying the persistent
// --config flag and logging any warnings.
func loadConfig(cmd *cobra.Command, logger *log.Logger) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}
