// Package cli wires the lambdalab command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/charmingruby/lambdalab/internal/config"
	"github.com/charmingruby/lambdalab/internal/demo"
	"github.com/charmingruby/lambdalab/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
	envFile    string
	logLevel   string
}

// NewRootCmd builds the command tree writing demo output to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "lambdalab",
		Short:        "Run small functional-pipeline demonstrations",
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "optional config file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional .env file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level")

	cmd.AddCommand(newListCmd(), newRunCmd(opts))
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, d := range demo.All() {
				fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Summary)
			}
			return tw.Flush()
		},
	}
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run the named demos, or every demo with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New("name at least one demo or pass --all")
			}
			cfg, err := config.Load(config.Options{ConfigFile: opts.configFile, EnvFile: opts.envFile})
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
				if err := cfg.Log.Validate(); err != nil {
					return err
				}
			}
			logger.Init(cfg.Log)

			log := logger.WithComponent("cli")
			log.Debug().Strs("demos", args).Uint64("seed", cfg.Demo.Seed).Msg("starting run")

			env := demo.NewEnv(cmd.OutOrStdout(), cfg.Demo.Seed, log)
			if all {
				args = nil
			}
			return demo.Run(env, args...)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every demo")
	return cmd
}
