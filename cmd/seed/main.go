package main

import (
	"context"
	"os"
	"time"

	appRepos "github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/bootstrap"
	"github.com/yigit/placementportal/internal/pkg/logger"
	"github.com/yigit/placementportal/internal/seed"
)

// Inserts the sample students and the default faculty, student and company logins
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, _, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedErr := seed.CreateDefaultData(ctx, appRepos.NewRepositories(database), lgr)
	if err := database.Close(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Failed to close database connection")
	}
	if seedErr != nil {
		lgr.Error().Err(seedErr).Msg("Seeding finished with errors")
		os.Exit(1)
	}

	lgr.Info().Msg("Seeding complete")
}
