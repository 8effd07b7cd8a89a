package main

import (
	"fmt"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/adapter/postgres"
	"nutritrack/internal/config"
	"nutritrack/internal/domain"
)

// stores bundles every repository port behind one backend.
type stores struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	weights  domain.WeightRepository
	water    domain.WaterRepository
	meals    domain.MealRepository
	foods    domain.FoodRepository
	profiles domain.ProfileRepository
	close    func() error
}

func openStores(cfg *config.Config) (*stores, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		db := memory.New()
		return &stores{
			users:    db,
			sessions: db.NewSessionRepo(),
			weights:  db,
			water:    db,
			meals:    db,
			foods:    db,
			profiles: db,
			close:    func() error { return nil },
		}, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		return &stores{
			users:    db,
			sessions: postgres.NewSessionRepo(db),
			weights:  db,
			water:    db,
			meals:    db,
			foods:    db,
			profiles: db,
			close:    db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}
