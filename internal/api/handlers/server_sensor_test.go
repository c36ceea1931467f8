package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

func TestHTTP_SensorReadingIntake(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sensors", "farm-1",
		map[string]interface{}{"name": "Tank North", "type": "WATER_LEVEL"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	at := time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC)
	w = doJSON(t, router, http.MethodPost, "/api/v1/sensors/"+created.ID+"/readings", "farm-1",
		map[string]interface{}{
			"values":     map[string]interface{}{"level": 0.42},
			"recordedAt": at,
		})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	var accepted struct {
		ID  string `json:"id"`
		Seq int64  `json:"seq"`
	}
	decodeBody(t, w, &accepted)
	require.Equal(t, created.ID, accepted.ID)
	require.Equal(t, int64(2), accepted.Seq)

	// The reading lands on the sensor row.
	w = doJSON(t, router, http.MethodGet, "/api/v1/sensors/"+created.ID, "farm-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dto service.SensorDTO
	decodeBody(t, w, &dto)
	require.NotNil(t, dto.LastSeen)
	require.True(t, dto.LastSeen.Equal(at))
	require.InDelta(t, 0.42, dto.LastValue["level"], 1e-9)

	// Offline clients see the reading as an ordinary update.
	w = doJSON(t, router, http.MethodGet, "/api/v1/sync/changes?since=1", "farm-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var delta syncengine.Delta
	decodeBody(t, w, &delta)
	require.Len(t, delta.Changes, 1)
	require.Equal(t, syncengine.OpUpdate, delta.Changes[0].Op)
	require.Equal(t, created.ID, delta.Changes[0].EntityID)
}

func TestHTTP_SensorReadingUnknownSensor(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sensors/nope/readings", "farm-1",
		map[string]interface{}{"values": map[string]interface{}{"level": 1}})
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}
