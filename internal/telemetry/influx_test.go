package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/pkg/worker"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestConfigEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{URL: "http://localhost:8086"}.Enabled())
}

func TestNewMirrorDisabledIsNil(t *testing.T) {
	t.Parallel()

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{GeneralPoolSize: 1, TelemetryPoolSize: 1})
	assert.NoError(t, err)
	defer pools.Shutdown()

	assert.Nil(t, NewMirror(Config{}, pools))
}

func TestNilMirrorIsSafe(t *testing.T) {
	t.Parallel()

	var m *Mirror
	m.Record(Reading{
		FarmID:   "farm-1",
		SensorID: "s-1",
		Type:     "WATER_LEVEL",
		Fields:   map[string]interface{}{"level": 0.5},
		At:       time.Now(),
	})
	m.Close()
}
