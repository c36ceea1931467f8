// Package handlers implements the HTTP API. Reads go through the entity
// services; every mutation goes through the commit use case so the
// change log stays the single source of sync truth.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/internal/api/middleware"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/telemetry"
	"farmdeck.io/farmdeck/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client *ent.Client
	pool   *pgxpool.Pool

	farms          *service.FarmService
	paddocks       *service.PaddockService
	mobs           *service.MobService
	movements      *service.MovementService
	sensors        *service.SensorService
	stockRecords   *service.StockRecordService
	paddockRecords *service.PaddockRecordService

	commit   *usecase.Commit
	applier  *syncengine.Applier
	puller   *syncengine.Puller
	mirror   *telemetry.Mirror
	tokenCfg middleware.FarmTokenConfig
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool

	Farms          *service.FarmService
	Paddocks       *service.PaddockService
	Mobs           *service.MobService
	Movements      *service.MovementService
	Sensors        *service.SensorService
	StockRecords   *service.StockRecordService
	PaddockRecords *service.PaddockRecordService

	Commit   *usecase.Commit
	Applier  *syncengine.Applier
	Puller   *syncengine.Puller
	Mirror   *telemetry.Mirror // optional
	TokenCfg middleware.FarmTokenConfig
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:         deps.EntClient,
		pool:           deps.Pool,
		farms:          deps.Farms,
		paddocks:       deps.Paddocks,
		mobs:           deps.Mobs,
		movements:      deps.Movements,
		sensors:        deps.Sensors,
		stockRecords:   deps.StockRecords,
		paddockRecords: deps.PaddockRecords,
		commit:         deps.Commit,
		applier:        deps.Applier,
		puller:         deps.Puller,
		mirror:         deps.Mirror,
		tokenCfg:       deps.TokenCfg,
	}
}

// farmScope extracts the farm scope resolved by the auth middleware.
// Routes behind FarmAuth always have one; the empty check is for routes
// mistakenly registered outside the group.
func farmScope(c *gin.Context) (string, bool) {
	farmID := middleware.GetFarmID(c.Request.Context())
	if farmID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeFarmUnresolved, "no farm scope"))
		return "", false
	}
	return farmID, true
}

// fail hands the error to the ErrorHandler middleware and aborts.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
