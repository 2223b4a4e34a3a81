package main

import (
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/question-pipeline/internal/app"
	"github.com/heartmarshall/question-pipeline/internal/config"
)

// commandContext loads configuration and the logger once per invocation.
type commandContext struct {
	configPath string

	once   sync.Once
	cfg    *config.Config
	logger *slog.Logger
	err    error
}

func (c *commandContext) ensure() (*config.Config, *slog.Logger, error) {
	c.once.Do(func() {
		c.cfg, c.err = config.Load(c.configPath)
		if c.err != nil {
			return
		}
		c.logger = app.NewLogger(c.cfg.Log)
	})
	return c.cfg, c.logger, c.err
}

func newRootCommand() *cobra.Command {
	cc := &commandContext{}

	root := &cobra.Command{
		Use:           "pipeline",
		Short:         "Editorial question pipeline",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&cc.configPath, "config", "c", "",
		"configuration file (default $CONFIG_PATH, then ./config.yaml)")

	root.AddCommand(newServeCommand(cc))
	root.AddCommand(newMigrateCommand(cc))
	root.AddCommand(newReclaimCommand(cc))

	return root
}
