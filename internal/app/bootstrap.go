// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"farmdeck.io/farmdeck/internal/api/handlers"
	"farmdeck.io/farmdeck/internal/api/middleware"
	"farmdeck.io/farmdeck/internal/config"
	"farmdeck.io/farmdeck/internal/infrastructure"
	"farmdeck.io/farmdeck/internal/jobs"
	"farmdeck.io/farmdeck/internal/pkg/worker"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/telemetry"
	"farmdeck.io/farmdeck/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
	Mirror *telemetry.Mirror
}

// Bootstrap initializes all dependencies with manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:   cfg.Worker.GeneralPoolSize,
		TelemetryPoolSize: cfg.Worker.TelemetryPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	mirror := telemetry.NewMirror(telemetry.Config{
		URL:    cfg.Telemetry.InfluxURL,
		Token:  cfg.Telemetry.InfluxToken,
		Org:    cfg.Telemetry.InfluxOrg,
		Bucket: cfg.Telemetry.InfluxBucket,
	}, pools)

	// Entity services double as the sync engine's mutators.
	paddocks := service.NewPaddockService(db.EntClient)
	mobs := service.NewMobService(db.EntClient)
	movements := service.NewMovementService(db.EntClient)
	sensors := service.NewSensorService(db.EntClient)
	stockRecords := service.NewStockRecordService(db.EntClient)
	paddockRecords := service.NewPaddockRecordService(db.EntClient)

	registry := syncengine.NewRegistry()
	registry.Register(service.EntityPaddock, paddocks)
	registry.Register(service.EntityMob, mobs)
	registry.Register(service.EntityMovement, movements)
	registry.Register(service.EntitySensor, sensors)
	registry.Register(service.EntityStockRecord, stockRecords)
	registry.Register(service.EntityPaddockRecord, paddockRecords)

	recorder := syncengine.NewRecorder()
	applier := syncengine.NewApplier(db.EntClient, registry, recorder, cfg.Sync.MaxBatchSize)
	puller := syncengine.NewPuller(db.EntClient)
	commit := usecase.NewCommit(db.EntClient, registry, recorder)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewReceiptCleanupWorker(db.EntClient, cfg.Sync.ReceiptRetention))
	// Receipt retention cleanup: daily, plus once on startup so a long
	// stopped instance catches up immediately.
	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.ReceiptCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
	if err := db.InitRiverClient(workers, cfg.River, periodic); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	tokenCfg := middleware.FarmTokenConfig{
		Secret:    []byte(cfg.Security.FarmTokenSecret),
		Issuer:    "farmdeck",
		ExpiresIn: 30 * 24 * time.Hour,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:      db.EntClient,
		Pool:           db.Pool,
		Farms:          service.NewFarmService(db.EntClient),
		Paddocks:       paddocks,
		Mobs:           mobs,
		Movements:      movements,
		Sensors:        sensors,
		StockRecords:   stockRecords,
		PaddockRecords: paddockRecords,
		Commit:         commit,
		Applier:        applier,
		Puller:         puller,
		Mirror:         mirror,
		TokenCfg:       tokenCfg,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server),
		DB:     db,
		Pools:  pools,
		Mirror: mirror,
	}, nil
}
