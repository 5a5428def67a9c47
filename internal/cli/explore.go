package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/pipeline"
)

// exploreCommand creates the explore command, an interactive browser over
// random tiles.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		count  int
		seed   uint64
		render bool
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse random tiles interactively",
		Long: `Browse random tiles in the terminal. Reroll, change template and toggle
animation, then press enter to print the share link (or, with --render, the
markup) of the selected tile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRandomCount(count); err != nil {
				return err
			}
			return c.runExplore(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), count, seed, render)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of tiles")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().BoolVar(&render, "render", false, "print the selected tile's markup")
	return cmd
}

func (c *CLI) runExplore(ctx context.Context, stdout, tty io.Writer, count int, seed uint64, render bool) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()
	if seed != 0 {
		runner.Randomizer = art.NewRandomizer(seed)
	}

	p := tea.NewProgram(NewExploreModel(count, runner.Random), tea.WithContext(ctx), tea.WithOutput(tty))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("explore: %w", err)
	}

	m, ok := final.(ExploreModel)
	if !ok || m.Selected == nil {
		return nil
	}
	if render {
		tile, err := runner.RenderTile(ctx, m.Selected, pipeline.TileOptions{NoCache: true})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, tile.Markup)
		return err
	}
	fmt.Fprintln(stdout, "/?"+art.ToQuery(m.Selected))
	printDetail(stdout, "%s", art.Caption(m.Selected))
	return nil
}
