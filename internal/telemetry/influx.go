// Package telemetry mirrors sensor readings into InfluxDB for
// time-series dashboards. The mirror is best-effort: Postgres stays the
// system of record, and a write failure here never fails the intake.
package telemetry

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"go.uber.org/zap"

	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/pkg/worker"
)

// Reading is one sensor observation to mirror.
type Reading struct {
	FarmID   string
	SensorID string
	Type     string
	Fields   map[string]interface{}
	At       time.Time
}

// Mirror writes sensor readings to InfluxDB through the telemetry worker
// pool. A nil *Mirror is valid and drops every reading, so callers never
// branch on whether telemetry is configured.
type Mirror struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	pools    *worker.Pools
}

// Config holds InfluxDB connection settings.
type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Enabled reports whether the mirror is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

// NewMirror connects to InfluxDB. Returns nil when cfg is empty.
func NewMirror(cfg Config, pools *worker.Pools) *Mirror {
	if !cfg.Enabled() {
		return nil
	}
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &Mirror{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		pools:    pools,
	}
}

// Record queues a reading for the mirror. The write runs detached on the
// telemetry pool so intake latency never includes InfluxDB.
func (m *Mirror) Record(r Reading) {
	if m == nil {
		return
	}
	err := m.pools.SubmitDetached("telemetry", func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		p := influxdb2.NewPoint(
			"sensor_readings",
			map[string]string{
				"farm_id":     r.FarmID,
				"sensor_id":   r.SensorID,
				"sensor_type": r.Type,
			},
			r.Fields,
			r.At,
		)
		if err := m.writeAPI.WritePoint(ctx, p); err != nil {
			logger.Warn("telemetry mirror write failed",
				zap.String("sensor_id", r.SensorID),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		logger.Warn("telemetry mirror submit failed",
			zap.String("sensor_id", r.SensorID),
			zap.Error(err),
		)
	}
}

// Close releases the InfluxDB client.
func (m *Mirror) Close() {
	if m == nil {
		return
	}
	m.client.Close()
}
