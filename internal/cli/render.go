package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string    // output file path; empty writes to stdout
	format  string    // html, css or json
	query   string    // share-link query the flags are applied on top of
	id      string    // host element id
	strict  bool      // reject malformed values instead of rendering them
	noCache bool      // bypass the render cache
	attrs   art.Attrs // values of the attribute flags that were set
}

// attrFlags are the string attribute flags, one per recognized key.
var attrFlags = []struct {
	key   string
	usage string
}{
	{art.KeyTemplate, "layer template: geometric, grid, radial, angular, minimal"},
	{art.KeySize, "tile width (CSS length)"},
	{art.KeySeed, "seed preset 1-6"},
	{art.KeyLit, "base lightness, e.g. 62%"},
	{art.KeyCell, "pattern grain (CSS length)"},
	{art.KeyR, "vignette radius in [0,1]"},
	{art.KeyA1, "first angle, e.g. .12turn"},
	{art.KeyA2, "second angle"},
	{art.KeyA3, "third angle"},
	{art.KeyBg, "flat background color name"},
}

// renderCommand creates the render command for a single tile.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	values := make(map[string]*string, len(attrFlags))
	var animate bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single tile as HTML, CSS or JSON",
		Long: `Render a single mini-art tile.

The tile is described by attribute flags, a share-link query, or both; flags
override the query. HTML output is the complete <mini-art-bw> element with its
declarative shadow DOM and can be pasted into any page that loads the element
script.`,
		Example: `  miniart render --seed 3 --lit 62%
  miniart render --query 'template=grid&seed=4&animate=' -o tile.html
  miniart render --seed 6 --bg slate --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.attrs = art.Attrs{}
			for _, f := range attrFlags {
				if cmd.Flags().Changed(f.key) {
					opts.attrs[f.key] = *values[f.key]
				}
			}
			if cmd.Flags().Changed(art.KeyAnimate) {
				opts.attrs[art.KeyAnimate] = animate
			}
			if opts.format == "" {
				opts.format = formatFromPath(opts.output)
			}
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	for _, f := range attrFlags {
		values[f.key] = cmd.Flags().String(f.key, "", f.usage)
	}
	cmd.Flags().BoolVar(&animate, art.KeyAnimate, false, "spin the pattern angles")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: html (default), css, json")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "share-link query, e.g. 'seed=3&lit=62%25'")
	cmd.Flags().StringVar(&opts.id, "id", "", "id attribute of the host element")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject malformed values")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	_ = cmd.RegisterFlagCompletionFunc(art.KeyTemplate, completeValues(templateNames()))
	_ = cmd.RegisterFlagCompletionFunc(art.KeyBg, completeValues(backgroundNames()))
	_ = cmd.RegisterFlagCompletionFunc("format", completeValues([]string{pipeline.FormatHTML, pipeline.FormatCSS, pipeline.FormatJSON}))

	return cmd
}

// runRender resolves the bag from opts and writes the tile in opts.format.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	a, err := mergeQuery(opts.query, opts.attrs)
	if err != nil {
		return err
	}
	logger.Debug("rendering tile", "query", art.ToQuery(a), "format", opts.format)

	var data []byte
	if opts.format == pipeline.FormatHTML {
		runner, err := c.newRunner(opts.noCache)
		if err != nil {
			return err
		}
		defer runner.Close()

		tile, err := runner.RenderTile(ctx, a, pipeline.TileOptions{ID: opts.id, Strict: opts.strict})
		if err != nil {
			return err
		}
		logger.Debug("rendered tile", "bytes", len(tile.Markup), "cached", tile.Cached)
		data = []byte(tile.Markup + "\n")
	} else {
		if opts.strict {
			if err := art.Validate(a); err != nil {
				return fmt.Errorf("validate tile: %w", err)
			}
		}
		if data, err = pipeline.Render(a, opts.format); err != nil {
			return err
		}
	}

	out, err := openOutput(opts.output, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Generated %s", opts.output)
	}
	return nil
}

// mergeQuery parses a share-link query and lays attrs over it.
func mergeQuery(query string, attrs art.Attrs) (art.Attrs, error) {
	q, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	a := art.FromQuery(q)
	for k, v := range attrs {
		a[k] = v
	}
	return a, nil
}

// formatFromPath infers the output format from a file extension, falling
// back to html.
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "htm" {
		ext = pipeline.FormatHTML
	}
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return pipeline.FormatHTML
}

// openOutput returns a writer for path, or stdout when path is empty.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func completeValues(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func templateNames() []string {
	out := make([]string, len(art.Templates))
	for i, t := range art.Templates {
		out[i] = string(t)
	}
	return out
}

func backgroundNames() []string {
	out := make([]string, len(art.Backgrounds))
	for i, b := range art.Backgrounds {
		out[i] = string(b)
	}
	return out
}
