// Command mazeplan plans shortest routes through block-grid mazes.
//
//	mazeplan generate --seed 7 > obs.json
//	mazeplan plan obs.json
//	mazeplan plan --show --config planner.yaml - < obs.json
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mineexpress/planner"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	quiet      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "mazeplan",
		Short:        "Plan shortest routes through block-grid mazes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.quiet {
				planner.SetLogger(nil)
				return
			}
			planner.SetLogger(log.New(cmd.ErrOrStderr(), "mazeplan: ", log.LstdFlags).Printf)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML planner configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress diagnostic logging")
	cmd.AddCommand(newPlanCommand(opts), newGenerateCommand(opts))

	return cmd
}

// loadConfig returns the --config file's settings, or the defaults.
func (o *rootOptions) loadConfig() (planner.Config, error) {
	if o.configPath == "" {
		return planner.DefaultConfig(), nil
	}

	return planner.LoadConfig(o.configPath)
}
