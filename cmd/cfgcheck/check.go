package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cfgcheck/internal/config"
	"cfgcheck/internal/diagfmt"
	"cfgcheck/internal/driver"
	"cfgcheck/internal/options"
	"cfgcheck/internal/prof"
	"cfgcheck/internal/snapshot"
	"cfgcheck/internal/source"
	"cfgcheck/internal/trace"
)

var checkCmd = &cobra.Command{
	Use:   "check --legacy FILE --computed FILE [diagnostic options]",
	Short: "Compare a legacy snapshot with a computed one",
	Long: `Compare the variables of a legacy make snapshot with those computed by the
new configuration engine. Diagnostic options (--hide, --warning, --error,
--help) are applied in order; run "cfgcheck check --help" for the list of
codes.`,
	DisableFlagParsing: true,
	RunE:               runCheck,
}

const checkUsage = `USAGE
  cfgcheck check --legacy FILE --computed FILE [options]

INPUT OPTIONS
  --legacy FILE            Snapshot of the legacy make evaluator.
  --computed FILE          Snapshot of the new configuration engine.
  --snapshot-format F      auto|toml|msgpack (default: by extension).
  --config FILE            cfgcheck.toml to use instead of searching upward.

OUTPUT OPTIONS
  --format F               pretty|json|short.
  --color MODE             auto|on|off.
  --max N                  Show at most N diagnostics.
  --width N                Truncate messages to N columns.
  --timings                Print phase timings to stderr.
  --jobs N                 Parallel workers (0: one per CPU).
  --trace FILE             Trace output (stderr, stdout or a path).
  --trace-level L          off|error|phase|detail|debug.
  --cpuprofile FILE        Write a CPU profile.
  --memprofile FILE        Write a heap profile after the run.

`

func runCheck(cmd *cobra.Command, args []string) error {
	parsed, err := splitCheckArgs(args)
	if err != nil {
		return err
	}

	cfg, cfgErr := loadConfig(parsed.config)
	if cfgErr != nil {
		cfg = config.Default()
	}
	applyOutputOverrides(cfg, parsed)

	format, err := snapshot.ParseFormat(parsed.snapshotFormat)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd, cfg, parsed)
	if err != nil {
		return err
	}
	defer cleanup()

	profiler, err := prof.Start(prof.Config{CPU: parsed.cpuProfile, Mem: parsed.memProfile})
	if err != nil {
		return err
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}()

	jobs := 0
	if parsed.jobs != nil {
		jobs = *parsed.jobs
	}
	res, err := driver.Run(cmd.Context(), driver.Request{
		Args:        parsed.diagnostics,
		Legacy:      parsed.legacy,
		Computed:    parsed.computed,
		Format:      format,
		Config:      cfg,
		ConfigError: cfgErr,
		Jobs:        jobs,
		Timings:     parsed.timings,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Options.Action == options.ActionHelp {
		if _, err := io.WriteString(out, checkUsage); err != nil {
			return err
		}
		return options.WriteHelp(out, res.Registry)
	}

	if err := render(out, res, cfg); err != nil {
		return err
	}
	if res.Timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timer.Summary())
	}
	if res.Failed() {
		return errDiagnostics
	}
	return nil
}

func applyOutputOverrides(cfg *config.Config, parsed *checkArgs) {
	if parsed.format != "" {
		cfg.Output.Format = parsed.format
	}
	if parsed.color != "" {
		cfg.Output.Color = parsed.color
	}
	if parsed.max != nil {
		cfg.Output.Max = *parsed.max
	}
	if parsed.width != nil {
		cfg.Output.Width = *parsed.width
	}
	if parsed.trace != "" {
		cfg.Trace.Output = parsed.trace
	}
	if parsed.traceLevel != "" {
		cfg.Trace.Level = parsed.traceLevel
	}
}

func render(out io.Writer, res *driver.Result, cfg *config.Config) error {
	items := res.Registry.Items()
	baseDir, _ := os.Getwd()
	switch cfg.Output.Format {
	case "json":
		return diagfmt.JSON(out, items, diagfmt.JSONOpts{
			PathMode: source.PathRelative,
			BaseDir:  baseDir,
			Max:      cfg.Output.Max,
		})
	case "short":
		_, err := io.WriteString(out, diagfmt.Short(items))
		return err
	case "pretty", "":
		colored, err := useColor(cfg.Output.Color, out)
		if err != nil {
			return err
		}
		return diagfmt.Pretty(out, items, diagfmt.PrettyOpts{
			Color:    colored,
			PathMode: source.PathRelative,
			BaseDir:  baseDir,
			Width:    cfg.Output.Width,
			Max:      cfg.Output.Max,
			Summary:  res.Registry.HadWarningOrError(),
		})
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", cfg.Output.Format)
	}
}

// setupTracing creates the tracer described by the configuration and
// attaches it to the command context.
func setupTracing(cmd *cobra.Command, cfg *config.Config, parsed *checkArgs) (func(), error) {
	level, err := trace.ParseLevel(cfg.Trace.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff && parsed.trace == "" {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	if level == trace.LevelOff {
		// --trace без уровня включает фазы
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(cfg.Trace.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}
	output := cfg.Trace.Output
	if parsed.trace == "" && cfg.Path != "" && !isStdName(output) {
		output = cfg.Resolve(output)
	}
	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	return func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

func isStdName(s string) bool {
	switch s {
	case "", "-", "stderr", "stdout":
		return true
	}
	return false
}
