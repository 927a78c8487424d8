package main

import (
	"MediCore/config"
	"MediCore/logging"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "medicore",
		Short:        "Hospital management API server",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedDiseasesCmd())
	return root
}

// bootstrap loads configuration and builds the process logger.
func bootstrap(requireSecrets bool) (*config.AppConfig, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if requireSecrets {
		if err := cfg.Validate(); err != nil {
			return nil, zerolog.Nop(), err
		}
	}
	return cfg, logging.Setup(cfg.LogFormat, cfg.LogLevel), nil
}
