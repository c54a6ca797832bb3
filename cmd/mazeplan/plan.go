package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mineexpress/planner"
)

func newPlanCommand(root *rootOptions) *cobra.Command {
	var (
		show   bool
		stride int
	)
	cmd := &cobra.Command{
		Use:   "plan [observation.json|-]",
		Short: "Print the movement commands from start to exit, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("stride") {
				cfg.Stride = stride
			}
			p, err := planner.New(cfg)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			plan, err := p.PlanObservation(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if show {
				fmt.Fprintln(out, plan.Grid.Render(plan.Path))
			}
			for _, c := range plan.Commands() {
				fmt.Fprintln(out, c)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "Render the grid with the route before the commands")
	cmd.Flags().IntVar(&stride, "stride", planner.DefaultStride, "Observation lattice side length (overrides config)")

	return cmd
}

// readInput reads the named file, or standard input for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(args[0])
}
