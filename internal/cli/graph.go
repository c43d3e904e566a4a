package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/config"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/render"
	"github.com/depscope/depscope/pkg/scan"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format     string // output format: "dot", "svg", "png"
	output     string // output file path (stdout if empty, DOT only)
	configPath string // explicit config file path
}

// graphCommand creates the graph command for rendering the internal
// dependency graph. Cycle member edges are highlighted in the output.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Render the internal dependency graph",
		Long: `Graph scans a source tree and renders its internal dependency graph.

Examples:
  depscope graph                          # DOT to stdout
  depscope graph ./src -f svg -o deps.svg # SVG via Graphviz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return c.runGraph(cmd.Context(), root, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: <root>/"+config.FileName+")")

	return cmd
}

func validateGraphFormat(f string) error {
	switch f {
	case formatDOT, formatSVG, formatPNG:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be 'dot', 'svg', or 'png')", f)
	}
}

func (c *CLI) runGraph(ctx context.Context, root string, opts *graphOpts) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolving scan root")
	}

	cfg, err := config.Load(opts.configPath, root)
	if err != nil {
		return err
	}
	engine, err := cfg.BuildEngine()
	if err != nil {
		return err
	}

	rep, err := scan.Run(ctx, cfg.ScanOptions(root, engine))
	if err != nil {
		return err
	}
	cycles := rep.DetectCycles()
	c.Logger.Infof("Graph: %d nodes, %d edges, %d cycles",
		rep.Graph.NodeCount(), rep.Graph.EdgeCount(), len(cycles))

	dot := render.ToDOT(rep.Graph, cycles)

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = render.RenderSVG(ctx, dot)
	case formatPNG:
		data, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "opening output")
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing graph output")
	}
	if opts.output != "" {
		printSuccess("Rendered %s graph", opts.format)
		printFile(opts.output)
	}
	return nil
}
