package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/config"
	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/render"
	"github.com/depscope/depscope/pkg/report"
	"github.com/depscope/depscope/pkg/scan"
)

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	cycles     bool   // run cycle detection over the internal graph
	jsonOut    bool   // export as JSON instead of the text view
	yamlOut    bool   // export as YAML instead of the text view
	output     string // output file path (stdout if empty)
	top        int    // cap for the fan-out ranking (-1 keeps the config value)
	workers    int    // extraction concurrency (0 keeps the config value)
	langs      string // comma-separated language filter (empty means all)
	engine     string // pattern engine override: "builtin" or "ast-grep"
	timeout    int    // external tool timeout in seconds (0 keeps the config value)
	gitignore  bool   // honor the root's .gitignore
	configPath string // explicit config file path
}

// scanCommand creates the scan command, the main entry point of the tool.
//
// Settings resolve in three layers: built-in defaults, then .depscope.toml in
// the scan root (or --config), then explicit flags.
func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{top: -1}

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Analyze a source tree and report its dependencies",
		Long: `Scan walks a source tree, extracts import statements per language,
classifies each as internal or external, and prints a dependency report.

Examples:
  depscope scan                      # current directory, text report
  depscope scan ./backend --cycles   # include circular dependency detection
  depscope scan --json -o deps.json  # machine-readable export`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOut && opts.yamlOut {
				return errors.New(errors.ErrCodeInvalidFormat, "--json and --yaml are mutually exclusive")
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return c.runScan(cmd.Context(), cmd, root, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.cycles, "cycles", false, "detect circular dependencies")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "write the report as JSON")
	cmd.Flags().BoolVar(&opts.yamlOut, "yaml", false, "write the report as YAML")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&opts.top, "top", opts.top, "limit the fan-out ranking to N files")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "extraction concurrency (default: number of CPUs)")
	cmd.Flags().StringVarP(&opts.langs, "lang", "l", "", "comma-separated languages to scan (default: all)")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "pattern engine: builtin (default), ast-grep")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "external tool timeout in seconds")
	cmd.Flags().BoolVar(&opts.gitignore, "gitignore", false, "skip files matched by the root's .gitignore")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: <root>/"+config.FileName+")")

	return cmd
}

func (c *CLI) runScan(ctx context.Context, cmd *cobra.Command, root string, opts *scanOpts) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolving scan root")
	}

	cfg, err := config.Load(opts.configPath, root)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, cmd, opts)

	engine, err := cfg.BuildEngine()
	if err != nil {
		return err
	}
	langs, err := parseLangFilter(opts.langs)
	if err != nil {
		return err
	}

	c.Logger.Debugf("Scanning %s with %s engine", root, cfg.Engine)
	prog := newProgress(c.Logger)

	scanOptions := cfg.ScanOptions(root, engine)
	if langs != nil {
		scanOptions.Languages = langs
	}

	spinner := newSpinner(ctx, "Scanning "+root)
	spinner.Start()
	rep, err := scan.Run(ctx, scanOptions)
	spinner.Stop()
	if err != nil {
		return err
	}

	if opts.cycles {
		cycles := rep.DetectCycles()
		c.Logger.Debugf("Cycle detection found %d cycles", len(cycles))
	}
	prog.done(fmt.Sprintf("Analyzed %d files, %d dependencies", len(rep.Files), rep.Total))
	warnDiagnostics(rep)

	out, err := openOutput(opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "opening output")
	}
	defer out.Close()

	if err := writeReport(out, rep, opts, cfg.TopN); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// parseLangFilter resolves a comma-separated language list. Empty input
// means no filter (nil), which scan.Run expands to all languages.
func parseLangFilter(s string) ([]*deps.Language, error) {
	if s == "" {
		return nil, nil
	}
	var langs []*deps.Language
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		lang := deps.ByName(deps.DefaultLanguages(), name)
		if lang == nil {
			return nil, errors.New(errors.ErrCodeInvalidLanguage, "unsupported language %q", name)
		}
		langs = append(langs, lang)
	}
	return langs, nil
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command, opts *scanOpts) {
	if cmd.Flags().Changed("engine") {
		cfg.Engine = opts.engine
	}
	if cmd.Flags().Changed("timeout") {
		cfg.ToolTimeoutSeconds = opts.timeout
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	if cmd.Flags().Changed("gitignore") {
		cfg.UseGitignore = opts.gitignore
	}
	if opts.top >= 0 {
		cfg.TopN = opts.top
	}
}

func writeReport(w io.Writer, rep *report.Report, opts *scanOpts, topN int) error {
	switch {
	case opts.jsonOut:
		return render.JSON(w, rep)
	case opts.yamlOut:
		return render.YAML(w, rep)
	default:
		render.Text(w, rep, topN)
		return nil
	}
}

func warnDiagnostics(rep *report.Report) {
	d := rep.Diag
	if d.SkippedDirs > 0 || d.UnreadableFiles > 0 {
		printWarning("%d directories skipped, %d files unreadable", d.SkippedDirs, d.UnreadableFiles)
	}
	if d.ToolTimeouts > 0 {
		printWarning("%d external tool invocations timed out", d.ToolTimeouts)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
