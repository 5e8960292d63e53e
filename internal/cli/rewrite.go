package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/occur/internal/logging"
	"github.com/yaklabco/occur/pkg/config"
	"github.com/yaklabco/occur/pkg/runner"
)

type rewriteFlags struct {
	matchCase string
	gapCase   string
	replace   string
	twoPass   bool
	write     bool
	dryRun    bool
	format    string
	ignore    []string
	ext       []string
	jobs      int
}

func newRewriteCommand() *cobra.Command {
	flags := &rewriteFlags{}

	cmd := &cobra.Command{
		Use:   "rewrite <query> [paths...]",
		Short: "Rewrite text around occurrences of a literal query",
		Long:  rewriteLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.matchCase, "match-case", "", "case transform for occurrences: upper, lower, title")
	cmd.Flags().StringVar(&flags.gapCase, "gap-case", "", "case transform for the spans between occurrences: upper, lower, title")
	cmd.Flags().StringVar(&flags.replace, "replace", "", "replace each occurrence with this literal")
	cmd.Flags().BoolVar(&flags.twoPass, "two-pass", false, "transform occurrences first, then re-scan for the transformed query before touching the rest")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write changed files in place")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, count")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.ext, "ext", nil, "restrict to file extensions (with leading dot)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	return cmd
}

const rewriteLongDescription = `Reassemble text by transforming the occurrences of a literal query and the
spans between them independently.

Each occurrence is transformed with --match-case or replaced with --replace;
the spans between occurrences are transformed with --gap-case. At least one
of the three must be given. With --two-pass, occurrences are transformed
first and the intermediate text is re-scanned for the transformed query
before the remaining spans are touched.

Files are left untouched unless --write is given. When standard input is
piped and no paths are given, the rewritten text is printed to stdout.

Examples:
  occur rewrite needle --match-case upper            # Preview changes
  occur rewrite needle --match-case upper --write    # Rewrite in place
  occur rewrite needle --replace thread --write      # Substitute a literal
  occur rewrite needle --match-case upper --gap-case title --two-pass
  cat file.txt | occur rewrite needle --gap-case lower`

func runRewrite(cmd *cobra.Command, args []string, flags *rewriteFlags) error {
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

	if cmd.Flags().Changed("match-case") {
		cfg.Rewrite.MatchCase = config.CaseTransform(flags.matchCase)
	}
	if cmd.Flags().Changed("gap-case") {
		cfg.Rewrite.GapCase = config.CaseTransform(flags.gapCase)
	}
	if cmd.Flags().Changed("replace") {
		cfg.Rewrite.Replace = flags.replace
	}
	if cmd.Flags().Changed("two-pass") {
		cfg.Rewrite.TwoPass = flags.twoPass
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format %q: must be text, json, or count", cfg.Format)
	}
	if !cfg.Rewrite.MatchCase.IsValid() {
		return fmt.Errorf("invalid match case %q: must be upper, lower, or title", cfg.Rewrite.MatchCase)
	}
	if !cfg.Rewrite.GapCase.IsValid() {
		return fmt.Errorf("invalid gap case %q: must be upper, lower, or title", cfg.Rewrite.GapCase)
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

	matchFn, gapFn := rewriteFuncs(cfg.Rewrite)
	if matchFn == nil && gapFn == nil {
		return errors.New("nothing to rewrite: give at least one of --match-case, --gap-case, or --replace")
	}

	processor := &runner.RewriteProcessor{
		Query:   query,
		MatchFn: matchFn,
		GapFn:   gapFn,
		TwoPass: cfg.Rewrite.TwoPass,
		Write:   flags.write,
		DryRun:  flags.dryRun,
	}

	// Piped input with no paths rewrites stdin to stdout.
	if len(paths) == 0 && stdinIsPiped(cmd) {
		return rewriteStdin(ctx, cmd, processor)
	}

	logger.Debug("starting rewrite",
		logging.FieldQuery, query,
		logging.FieldPaths, paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldWrite, flags.write,
		logging.FieldDryRun, flags.dryRun,
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
		return errors.Join(errors.New("rewrite failed"), err)
	}

	if err := renderRewriteResult(cmd, result, cfg.Format, workDir); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return scanOutcome(result)
}

// rewriteStdin transforms piped standard input and prints the result.
func rewriteStdin(ctx context.Context, cmd *cobra.Command, processor *runner.RewriteProcessor) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	// Writes never apply to a stream.
	streamProcessor := *processor
	streamProcessor.Write = false

	result, err := streamProcessor.Process(ctx, stdinName, content)
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(result.Rewritten); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	if result.Occurrences == 0 {
		return ErrNoMatches
	}
	return nil
}
