package main

import (
	"MediCore/cache"
	"MediCore/database"
	"MediCore/repositories"
	"MediCore/services"

	"github.com/spf13/cobra"
)

func newSeedDiseasesCmd() *cobra.Command {
	var createdBy string

	cmd := &cobra.Command{
		Use:   "seed-diseases",
		Short: "Insert the starter disease catalogue used by the chatbot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(false)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			db, err := database.InitDB(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			redisClient, err := database.NewRedisClient(ctx, database.RedisConfigFrom(cfg), log)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			repo := repositories.NewDiseaseRepository(db, cache.New(redisClient), log)
			svc := services.NewDiseaseService(repo, database.NewLocker(redisClient).WithLogger(log))

			added, skipped, err := svc.Seed(ctx, createdBy)
			if err != nil {
				return err
			}
			log.Info().Int("added", added).Int("skipped", skipped).Msg("disease catalogue seeded")
			return nil
		},
	}
	cmd.Flags().StringVar(&createdBy, "created-by", "admin", "value recorded as the creator of seeded diseases")
	return cmd
}
