package main

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/question-pipeline/internal/adapter/postgres"
	"github.com/heartmarshall/question-pipeline/internal/app"
)

func newMigrateCommand(cc *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(cc, func(cmd *cobra.Command, m *postgres.Migrator, logger *slog.Logger) error {
			applied, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("migrations applied", slog.Any("versions", applied))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: withMigrator(cc, func(cmd *cobra.Command, m *postgres.Migrator, logger *slog.Logger) error {
			v, err := m.Down(cmd.Context())
			if err != nil {
				return err
			}
			if v == 0 {
				logger.Info("nothing to roll back")
				return nil
			}
			logger.Info("migration rolled back", slog.Int64("version", v))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(cc, func(cmd *cobra.Command, m *postgres.Migrator, _ *slog.Logger) error {
			states, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			renderTable(cmd.OutOrStdout(),
				[]string{"Version", "State", "Applied At", "File"},
				statusRows(states),
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			)
			return nil
		}),
	})

	return cmd
}

func statusRows(states []postgres.MigrationState) [][]string {
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		state, at := "pending", "-"
		if s.Applied {
			state, at = "applied", s.AppliedAt.Format(time.RFC3339)
		}
		rows = append(rows, []string{strconv.FormatInt(s.Version, 10), state, at, s.Path})
	}
	return rows
}

func withMigrator(
	cc *commandContext,
	fn func(cmd *cobra.Command, m *postgres.Migrator, logger *slog.Logger) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := cc.ensure()
		if err != nil {
			return err
		}

		m, closeDB, err := app.OpenMigrator(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB()

		return fn(cmd, m, logger)
	}
}
