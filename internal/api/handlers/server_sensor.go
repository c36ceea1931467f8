package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/pkg/metrics"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/telemetry"
	"farmdeck.io/farmdeck/internal/usecase"
)

// ListSensors handles GET /sensors.
func (s *Server) ListSensors(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	items, err := s.sensors.List(c.Request.Context(), farmID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetSensor handles GET /sensors/:id.
func (s *Server) GetSensor(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	item, err := s.sensors.Get(c.Request.Context(), farmID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateSensor handles POST /sensors.
func (s *Server) CreateSensor(c *gin.Context) {
	s.commitEntity(c, service.EntitySensor, "", syncengine.OpCreate, http.StatusCreated)
}

// UpdateSensor handles PUT /sensors/:id.
func (s *Server) UpdateSensor(c *gin.Context) {
	s.commitEntity(c, service.EntitySensor, c.Param("id"), syncengine.OpUpdate, http.StatusOK)
}

// DeleteSensor handles DELETE /sensors/:id.
func (s *Server) DeleteSensor(c *gin.Context) {
	s.commitEntity(c, service.EntitySensor, c.Param("id"), syncengine.OpDelete, http.StatusOK)
}

// sensorReadingRequest is the body of POST /sensors/:id/readings.
type sensorReadingRequest struct {
	Values     map[string]interface{} `json:"values" binding:"required"`
	RecordedAt *time.Time             `json:"recordedAt"`
}

// PostSensorReading handles POST /sensors/:id/readings: device intake.
// The reading lands on the sensor row through the same commit path as
// every other mutation, so offline clients see it as an ordinary UPDATE
// in their next delta. A configured telemetry mirror gets a copy.
func (s *Server) PostSensorReading(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	sensorID := c.Param("id")

	var req sensorReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.Wrap(err, apperrors.CodeValidationFailed, "malformed reading body", http.StatusBadRequest))
		return
	}
	at := time.Now().UTC()
	if req.RecordedAt != nil {
		at = req.RecordedAt.UTC()
	}

	// existence and type check before committing
	sensorDTO, err := s.sensors.Get(c.Request.Context(), farmID, sensorID)
	if err != nil {
		fail(c, err)
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"lastValue": req.Values,
		"lastSeen":  at,
	})
	if err != nil {
		fail(c, err)
		return
	}

	result, err := s.commit.Execute(c.Request.Context(), usecase.CommitInput{
		FarmID:     farmID,
		EntityType: service.EntitySensor,
		EntityID:   sensorID,
		Op:         syncengine.OpUpdate,
		Data:       data,
	})
	if err != nil {
		fail(c, err)
		return
	}
	metrics.SensorReadingsTotal.Inc()

	s.mirror.Record(telemetry.Reading{
		FarmID:   farmID,
		SensorID: sensorID,
		Type:     sensorDTO.Type,
		Fields:   req.Values,
		At:       at,
	})

	c.JSON(http.StatusAccepted, gin.H{"id": sensorID, "seq": result.Seq})
}
