package main

import (
	"MediCore/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(false)
			if err != nil {
				return err
			}
			db, err := database.InitDB(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Info().Int("tables", len(database.Models())).Msg("migrations applied")
			return nil
		},
	}
}
