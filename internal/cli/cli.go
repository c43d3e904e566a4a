// Package cli implements the depscope command-line interface.
//
// This package provides commands for scanning source trees, exporting
// dependency reports, and rendering the internal dependency graph. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - scan: Analyze a source tree and report its dependencies
//   - graph: Render the internal dependency graph (DOT, SVG, PNG)
//   - languages: List supported languages and their import patterns
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// held on the CLI value shared by all commands.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/buildinfo"
)

// appName is the application name used for config files and display.
const appName = "depscope"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Depscope maps import dependencies across a source tree",
		Long:         `Depscope scans a mixed-language source tree, extracts import statements, classifies them as internal or external, and reports the resulting dependency structure including circular dependencies.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.languagesCommand())
	root.AddCommand(c.completionCommand())

	return root
}
