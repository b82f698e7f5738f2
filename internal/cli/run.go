package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gol-cycle/internal/core"
	"gol-cycle/internal/patterns"
	"gol-cycle/pkg/sims/life"
)

// DefaultPattern is run when neither a pattern name nor a file is given.
const DefaultPattern = "gun"

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	File     string
	Draws    bool
	Returns  bool
	Sleep    int
	Params   []string
	Settings []string
}

// RunReport is the machine-readable outcome of a run.
type RunReport struct {
	RunID         string `json:"run_id"`
	Pattern       string `json:"pattern"`
	Returned      bool   `json:"returned"`
	Kind          string `json:"kind,omitempty"`
	Summary       string `json:"summary,omitempty"`
	FinalCount    int    `json:"final_count"`
	RepeatingKey  int    `json:"repeating_key,omitempty"`
	PatternLength int    `json:"pattern_length,omitempty"`
	Period        int    `json:"period,omitempty"`
	Population    int    `json:"population"`
	ElapsedMS     int64  `json:"elapsed_ms"`

	Config core.ParameterSnapshot `json:"config"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "Run a pattern until a generation repeats",
		Long: `Run a built-in pattern (see "golcycle patterns") or a YAML pattern file
until a generation repeats, then print the classification and final board.

Configuration is applied in order: defaults, the file's config section,
--set overrides, then explicit --draws/--returns/--sleep flags.

Example:
  golcycle run blinker
  golcycle run soup --param seed=7 --param density=0.35
  golcycle run --file ./glider.yaml --draws --sleep 50`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPattern(opts, args, cmd)
		},
	}

	def := core.DefaultConfig()
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML pattern file")
	cmd.Flags().BoolVar(&opts.Draws, "draws", def.Draws, "draw every generation")
	cmd.Flags().BoolVar(&opts.Returns, "returns", def.Returns, "print the result once a repeat is found")
	cmd.Flags().IntVar(&opts.Sleep, "sleep", def.SleepTime, "delay between drawn generations in milliseconds")
	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "pattern parameter in key=value form (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Settings, "set", nil, "config override in key=value form (repeatable)")

	return cmd
}

func runPattern(opts *RunOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	runID := uuid.Must(uuid.NewV7()).String()
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr()).With("run_id", runID)

	params, err := parseKV(opts.Params)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadArgument, "invalid --param", err)
	}
	settings, err := parseKV(opts.Settings)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadArgument, "invalid --set", err)
	}

	name, coords, cfg, err := resolvePattern(opts, args, params)
	if err != nil {
		return formatter.fail(ExitCommandError, codeFor(opts), "cannot load pattern", err)
	}

	cfg = cfg.Merge(settings)
	flags := cmd.Flags()
	if flags.Changed("draws") {
		cfg.Draws = opts.Draws
	}
	if flags.Changed("returns") {
		cfg.Returns = opts.Returns
	}
	if flags.Changed("sleep") {
		if opts.Sleep < 0 {
			return formatter.fail(ExitCommandError, ErrCodeBadArgument, "invalid --sleep",
				fmt.Errorf("must not be negative, got %d", opts.Sleep))
		}
		cfg.SleepTime = opts.Sleep
	}

	board := life.FromCoords(coords)
	logger.Info("run starting",
		append([]any{"pattern", name, "cells", len(coords), "population", board.Population()},
			cfg.Parameters().LogAttrs()...)...)

	game := life.NewGame(board)
	game.SetLogger(logger)
	game.Configure(cfg)
	if cfg.Draws {
		frames := cmd.OutOrStdout()
		if formatter.JSON() {
			frames = cmd.ErrOrStderr()
		}
		game.SetOutput(&terminal{w: frames})
	}

	start := time.Now()
	res, ok := game.Run()
	elapsed := time.Since(start)
	logger.Info("run finished", "iterations", game.Generation(), "elapsed", elapsed)

	if formatter.JSON() {
		report := RunReport{
			RunID:      runID,
			Pattern:    name,
			Returned:   ok,
			FinalCount: game.Generation(),
			Population: game.Board().Population(),
			ElapsedMS:  elapsed.Milliseconds(),
			Config:     cfg.Parameters(),
		}
		if ok {
			report.Kind = res.Kind().String()
			report.Summary = res.Summary()
			report.RepeatingKey = res.RepeatingKey
			report.PatternLength = res.PatternLength()
			report.Period = res.Period()
		}
		if err := formatter.Success(report); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if ok {
		if err := res.Draw(out); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
	}
	fmt.Fprintf(out, "Runtime: %s\n", elapsed)
	return nil
}

// resolvePattern picks the starting cells and base configuration from either
// the --file flag or a registered pattern name.
func resolvePattern(opts *RunOptions, args []string, params map[string]string) (string, []core.Coord, core.Config, error) {
	cfg := core.DefaultConfig()
	if opts.File != "" {
		if len(args) > 0 {
			return "", nil, cfg, fmt.Errorf("pattern name %q given together with --file", args[0])
		}
		f, err := patterns.LoadFile(opts.File)
		if err != nil {
			return "", nil, cfg, err
		}
		return f.Name, f.Coords(), f.Config(cfg), nil
	}

	name := DefaultPattern
	if len(args) > 0 {
		name = args[0]
	}
	factory, ok := core.Patterns()[name]
	if !ok {
		return "", nil, cfg, fmt.Errorf("unknown pattern %q (available: %s)", name, strings.Join(core.Names(), ", "))
	}
	return name, factory(params), cfg, nil
}

func codeFor(opts *RunOptions) string {
	if opts.File != "" {
		return ErrCodePatternFile
	}
	return ErrCodeUnknownPattern
}

// parseKV turns repeated key=value flags into a map. Later keys win.
func parseKV(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", kv)
		}
		out[key] = value
	}
	return out, nil
}

// terminal redraws frames in place. Board.Draw delivers each frame in a
// single Write.
type terminal struct {
	w io.Writer
}

func (t *terminal) Write(p []byte) (int, error) {
	if _, err := io.WriteString(t.w, clearScreen); err != nil {
		return 0, err
	}
	return t.w.Write(p)
}
