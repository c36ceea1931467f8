package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/internal/api/middleware"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/testutil"
	"farmdeck.io/farmdeck/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// newTestRouter wires a Server against a real database in header-scoped
// auth mode, mirroring the production route table.
func newTestRouter(t *testing.T) (*gin.Engine, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, t.Name())

	paddocks := service.NewPaddockService(client)
	mobs := service.NewMobService(client)
	movements := service.NewMovementService(client)
	sensors := service.NewSensorService(client)
	stockRecords := service.NewStockRecordService(client)
	paddockRecords := service.NewPaddockRecordService(client)

	registry := syncengine.NewRegistry()
	registry.Register(service.EntityPaddock, paddocks)
	registry.Register(service.EntityMob, mobs)
	registry.Register(service.EntityMovement, movements)
	registry.Register(service.EntitySensor, sensors)
	registry.Register(service.EntityStockRecord, stockRecords)
	registry.Register(service.EntityPaddockRecord, paddockRecords)

	recorder := syncengine.NewRecorder()
	server := NewServer(ServerDeps{
		EntClient:      client,
		Farms:          service.NewFarmService(client),
		Paddocks:       paddocks,
		Mobs:           mobs,
		Movements:      movements,
		Sensors:        sensors,
		StockRecords:   stockRecords,
		PaddockRecords: paddockRecords,
		Commit:         usecase.NewCommit(client, registry, recorder),
		Applier:        syncengine.NewApplier(client, registry, recorder, 0),
		Puller:         syncengine.NewPuller(client),
	})

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.POST("/farms", server.CreateFarm)
	v1.GET("/farms/:id", server.GetFarm)

	scoped := v1.Group("", middleware.FarmAuth(nil))
	scoped.GET("/sync/changes", server.GetChanges)
	scoped.POST("/sync/batch", server.PostBatch)
	scoped.GET("/paddocks", server.ListPaddocks)
	scoped.POST("/paddocks", server.CreatePaddock)
	scoped.GET("/paddocks/:id", server.GetPaddock)
	scoped.PUT("/paddocks/:id", server.UpdatePaddock)
	scoped.DELETE("/paddocks/:id", server.DeletePaddock)
	scoped.GET("/sensors/:id", server.GetSensor)
	scoped.POST("/sensors", server.CreateSensor)
	scoped.POST("/sensors/:id/readings", server.PostSensorReading)

	return router, client
}

func doJSON(t *testing.T, router *gin.Engine, method, path, farmID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if farmID != "" {
		req.Header.Set(middleware.FarmIDHeader, farmID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}

func TestHTTP_PaddockCRUDFeedsSyncLog(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/paddocks", "farm-1",
		map[string]interface{}{"name": "River Flat", "areaHa": 12.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID  string `json:"id"`
		Seq int64  `json:"seq"`
	}
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, int64(1), created.Seq)

	w = doJSON(t, router, http.MethodPut, "/api/v1/paddocks/"+created.ID, "farm-1",
		map[string]interface{}{"areaHa": 13.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Both mutations arrive in a client's delta.
	w = doJSON(t, router, http.MethodGet, "/api/v1/sync/changes?since=0", "farm-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var delta syncengine.Delta
	decodeBody(t, w, &delta)
	require.Equal(t, int64(2), delta.ServerTime)
	require.Len(t, delta.Changes, 2)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/paddocks/"+created.ID, "farm-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/paddocks/"+created.ID, "farm-1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTP_SyncBatchReportsConflicts(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	batch := map[string]interface{}{
		"actions": []map[string]interface{}{
			{
				"clientId": "c-1",
				"entity":   map[string]string{"type": "paddock", "id": "p-1"},
				"op":       "CREATE",
				"data":     map[string]interface{}{"name": "A"},
			},
			{
				"clientId": "c-2",
				"entity":   map[string]string{"type": "paddock", "id": "p-1"},
				"op":       "CREATE",
				"data":     map[string]interface{}{"name": "B"},
			},
		},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/sync/batch", "farm-1", batch)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result syncengine.BatchResult
	decodeBody(t, w, &result)
	require.Len(t, result.Applied, 1)
	require.Equal(t, "c-1", result.Applied[0].ClientID)
	require.Len(t, result.Conflicts, 1)
	require.Equal(t, syncengine.ReasonAlreadyExists, result.Conflicts[0].Reason)
}

func TestHTTP_InvalidCursorRejected(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/sync/changes?since=abc", "farm-1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, w, &body)
	require.Equal(t, "SYNC_INVALID_CURSOR", body.Code)
}

func TestHTTP_MissingFarmScopeRejected(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/paddocks", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHTTP_FarmsSeeOnlyTheirOwnData(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/paddocks", "farm-1",
		map[string]interface{}{"name": "Mine"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/paddocks", "farm-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []service.PaddockDTO `json:"items"`
	}
	decodeBody(t, w, &list)
	require.Empty(t, list.Items)
}

func TestHTTP_FarmLifecycle(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/farms", "",
		map[string]string{"name": "Glenmore"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var farm service.FarmDTO
	decodeBody(t, w, &farm)
	require.Equal(t, "Glenmore", farm.Name)
	require.NotEmpty(t, farm.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/farms/"+farm.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
