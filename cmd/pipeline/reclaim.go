package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/question-pipeline/internal/app"
)

// newReclaimCommand releases stale typesetting claims once. It is meant for
// an external cron job when the in-process reclaimer is not used.
func newReclaimCommand(cc *commandContext) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "reclaim",
		Short: "Release typesetting claims older than the lease",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := cc.ensure()
			if err != nil {
				return err
			}

			lease := cfg.Claims.LeaseTTL
			if cmd.Flags().Changed("ttl") {
				lease = ttl
			}
			if lease <= 0 {
				return errors.New("no lease configured: set claims.lease_ttl or pass --ttl")
			}

			a, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			released, err := a.Workflow.Reclaim(cmd.Context(), lease)
			if err != nil {
				return err
			}

			logger.Info("reclaim completed",
				slog.Int("released", released),
				slog.Duration("lease_ttl", lease),
			)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 0, "lease to apply instead of claims.lease_ttl")
	return cmd
}
