package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"auction-sim/internal/auth"
	bidding "auction-sim/internal/biddingService"
	"auction-sim/internal/config"
	game "auction-sim/internal/gameService"
	"auction-sim/internal/repository"
	"auction-sim/internal/server"
	"auction-sim/utils"
)

func main() {
	cfg := config.Load()

	listingDB, gameDB, cleanup := setupStorage(cfg)
	defer cleanup()

	clock := clockwork.NewRealClock()
	biddingSvc := bidding.NewBiddingService(listingDB, clock)
	gameSvc := game.NewGameService(gameDB, clock)

	var verifier *auth.Verifier
	if cfg.AuthSecret != "" {
		verifier = auth.NewVerifier(cfg.AuthSecret)
	} else {
		utils.Warn("AUTH_SECRET not set, trusting request-supplied identities", nil)
	}

	router := server.SetupRouter(biddingSvc, gameSvc, verifier)

	fmt.Printf("Starting auction server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupStorage connects to Postgres when DATABASE_URL is set, otherwise
// falls back to the in-memory store.
func setupStorage(cfg config.Config) (repository.ListingDB, repository.GameDB, func()) {
	if cfg.DatabaseURL == "" {
		utils.Warn("DATABASE_URL not set, using in-memory store", nil)
		repo := repository.NewMemoryRepo()
		return repo, repo, func() {}
	}

	repo, err := repository.NewPostgresRepo(context.Background(), cfg.DatabaseURL)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	return repo, repo, repo.Close
}
