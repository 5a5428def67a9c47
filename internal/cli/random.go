package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/pipeline"
)

type randomOpts struct {
	count  int
	seed   uint64 // zero samples from the process-wide source
	size   string
	render bool // print tile markup instead of share links
}

// randomCommand creates the random command, which samples tiles.
func (c *CLI) randomCommand() *cobra.Command {
	opts := randomOpts{count: pipeline.DefaultRandomCount, size: art.DefaultRandomSize}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Sample random tiles",
		Long: `Sample random tiles and print their share links, one per line.

With --seed the same tiles are produced on every run. With --render the
complete tile markup is printed instead.`,
		Example: `  miniart random -n 3
  miniart random --seed 42 --render > tiles.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRandomCount(opts.count); err != nil {
				return err
			}
			return c.runRandom(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of tiles")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output (0 = random)")
	cmd.Flags().StringVar(&opts.size, "size", opts.size, "size carried by every tile (empty to omit)")
	cmd.Flags().BoolVar(&opts.render, "render", false, "print tile markup instead of share links")
	return cmd
}

func checkRandomCount(n int) error {
	if n < 1 || n > pipeline.DefaultMaxRandom {
		return fmt.Errorf("--count must be between 1 and %d, got %d", pipeline.DefaultMaxRandom, n)
	}
	return nil
}

func (c *CLI) runRandom(ctx context.Context, w io.Writer, opts randomOpts) error {
	prog := newProgress(loggerFromContext(ctx))

	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()
	if opts.seed != 0 {
		runner.Randomizer = art.NewRandomizer(opts.seed)
	}

	for i := 0; i < opts.count; i++ {
		a := runner.Random()
		if opts.size == "" {
			delete(a, art.KeySize)
		} else {
			a[art.KeySize] = opts.size
		}

		line := "/?" + art.ToQuery(a)
		if opts.render {
			tile, err := runner.RenderTile(ctx, a, pipeline.TileOptions{NoCache: true})
			if err != nil {
				return err
			}
			line = tile.Markup
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	prog.donef("Sampled %d tiles", opts.count)
	return nil
}
