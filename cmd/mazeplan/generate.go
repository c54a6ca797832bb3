package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mineexpress/gridgraph"
	"github.com/katalvlaran/mineexpress/maze"
)

func newGenerateCommand(root *rootOptions) *cobra.Command {
	var (
		seed uint64
		slow float64
		show bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the observation JSON of a random corridor maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			l, err := maze.Generate(maze.WithSeed(seed), maze.WithSlowProbability(slow))
			if err != nil {
				return err
			}
			g, err := l.ObservationGrid()
			if err != nil {
				return err
			}
			if show {
				fmt.Fprintln(cmd.ErrOrStderr(), g.Render(nil))
			}
			data, err := gridgraph.EncodeObservation(g, cfg.GridName)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().Float64Var(&slow, "slow", maze.DefaultOptions().SlowProbability, "Probability that a corridor segment is soul sand")
	cmd.Flags().BoolVar(&show, "show", false, "Render the maze to stderr")

	return cmd
}
