package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/daemon"
	"github.com/fieldops/fieldops/internal/db/models"
	"github.com/fieldops/fieldops/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed RBAC screens, roles, the super admin account and reference data",
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := daemon.OpenDB(&cfg)
		if err != nil {
			return err
		}

		if err = db.AutoMigrate(models.All()...); err != nil {
			return err
		}

		if err = daemon.Seed(&cfg, db); err != nil {
			return err
		}

		log.Info().Msg("seeding finished")

		return nil
	},
}
