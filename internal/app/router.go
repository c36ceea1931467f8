package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"farmdeck.io/farmdeck/internal/api/handlers"
	"farmdeck.io/farmdeck/internal/api/middleware"
	"farmdeck.io/farmdeck/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.ErrorHandler(),
	)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader, middleware.FarmIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public
	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)
	v1.POST("/farms", server.CreateFarm)
	v1.GET("/farms/:id", server.GetFarm)
	v1.POST("/farms/:id/tokens", server.IssueFarmToken)

	// Farm-scoped
	scoped := v1.Group("", middleware.FarmAuth([]byte(cfg.Security.FarmTokenSecret)))
	{
		scoped.GET("/sync/changes", server.GetChanges)
		scoped.POST("/sync/batch", server.PostBatch)

		scoped.GET("/paddocks", server.ListPaddocks)
		scoped.POST("/paddocks", server.CreatePaddock)
		scoped.GET("/paddocks/:id", server.GetPaddock)
		scoped.PUT("/paddocks/:id", server.UpdatePaddock)
		scoped.DELETE("/paddocks/:id", server.DeletePaddock)
		scoped.GET("/paddocks/:id/records", server.ListPaddockRecords)

		scoped.GET("/mobs", server.ListMobs)
		scoped.POST("/mobs", server.CreateMob)
		scoped.GET("/mobs/:id", server.GetMob)
		scoped.PUT("/mobs/:id", server.UpdateMob)
		scoped.DELETE("/mobs/:id", server.DeleteMob)
		scoped.GET("/mobs/:id/stock-records", server.ListMobStockRecords)

		scoped.GET("/movements", server.ListMovements)
		scoped.POST("/movements", server.CreateMovement)
		scoped.PUT("/movements/:id", server.UpdateMovement)
		scoped.DELETE("/movements/:id", server.DeleteMovement)

		scoped.GET("/sensors", server.ListSensors)
		scoped.POST("/sensors", server.CreateSensor)
		scoped.GET("/sensors/:id", server.GetSensor)
		scoped.PUT("/sensors/:id", server.UpdateSensor)
		scoped.DELETE("/sensors/:id", server.DeleteSensor)
		scoped.POST("/sensors/:id/readings", server.PostSensorReading)

		scoped.POST("/stock-records", server.CreateStockRecord)
		scoped.PUT("/stock-records/:id", server.UpdateStockRecord)
		scoped.DELETE("/stock-records/:id", server.DeleteStockRecord)

		scoped.POST("/paddock-records", server.CreatePaddockRecord)
		scoped.PUT("/paddock-records/:id", server.UpdatePaddockRecord)
		scoped.DELETE("/paddock-records/:id", server.DeletePaddockRecord)
	}

	return router
}
