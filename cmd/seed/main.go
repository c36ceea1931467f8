// Package main seeds a Farmdeck database from a YAML fixture file. The
// seeder goes through the same commit path as the API, so seeded data is
// fully visible to syncing clients.
//
// Usage: seed -file fixtures.yaml
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"farmdeck.io/farmdeck/internal/config"
	"farmdeck.io/farmdeck/internal/infrastructure"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/usecase"
)

// fixture is the YAML document shape.
type fixture struct {
	Farm struct {
		Name string `yaml:"name"`
	} `yaml:"farm"`
	Entities []fixtureEntity `yaml:"entities"`
}

type fixtureEntity struct {
	Type string                 `yaml:"type"`
	ID   string                 `yaml:"id"`
	Data map[string]interface{} `yaml:"data"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "fixtures.yaml", "fixture file to load")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, "console"); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}
	if fx.Farm.Name == "" {
		return fmt.Errorf("fixture must name a farm")
	}

	ctx := context.Background()
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	registry := syncengine.NewRegistry()
	registry.Register(service.EntityPaddock, service.NewPaddockService(db.EntClient))
	registry.Register(service.EntityMob, service.NewMobService(db.EntClient))
	registry.Register(service.EntityMovement, service.NewMovementService(db.EntClient))
	registry.Register(service.EntitySensor, service.NewSensorService(db.EntClient))
	registry.Register(service.EntityStockRecord, service.NewStockRecordService(db.EntClient))
	registry.Register(service.EntityPaddockRecord, service.NewPaddockRecordService(db.EntClient))
	commit := usecase.NewCommit(db.EntClient, registry, syncengine.NewRecorder())

	farm, err := service.NewFarmService(db.EntClient).Create(ctx, fx.Farm.Name)
	if err != nil {
		return fmt.Errorf("create farm %q: %w", fx.Farm.Name, err)
	}
	fmt.Printf("farm %s (%s)\n", farm.Name, farm.ID)

	for i, e := range fx.Entities {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return fmt.Errorf("entity %d: encode data: %w", i, err)
		}
		result, err := commit.Execute(ctx, usecase.CommitInput{
			FarmID:     farm.ID,
			EntityType: e.Type,
			EntityID:   e.ID,
			Op:         syncengine.OpCreate,
			Data:       data,
		})
		if err != nil {
			return fmt.Errorf("entity %d (%s): %w", i, e.Type, err)
		}
		fmt.Printf("  %s %s seq=%d\n", e.Type, result.EntityID, result.Seq)
	}
	return nil
}
