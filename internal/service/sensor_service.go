package service

import (
	"context"
	"encoding/json"
	"time"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/sensor"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// EntitySensor is the sync entity type name for sensors.
const EntitySensor = "sensor"

// SensorDTO is the wire representation of a sensor.
type SensorDTO struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	PaddockID string                 `json:"paddockId,omitempty"`
	LastValue map[string]interface{} `json:"lastValue,omitempty"`
	LastSeen  *time.Time             `json:"lastSeen,omitempty"`
}

type sensorInput struct {
	Name      *string                `json:"name"`
	Type      *string                `json:"type"`
	PaddockID *string                `json:"paddockId"`
	LastValue map[string]interface{} `json:"lastValue"`
	LastSeen  *time.Time             `json:"lastSeen"`
}

// SensorService manages sensor reads and mutations. Device intake
// reaches sensors through the same Update mutator as field clients, so
// telemetry writes land in the change log like every other mutation.
type SensorService struct {
	client *ent.Client
}

// NewSensorService creates a SensorService.
func NewSensorService(client *ent.Client) *SensorService {
	return &SensorService{client: client}
}

// List returns the farm's active sensors.
func (s *SensorService) List(ctx context.Context, farmID string) ([]SensorDTO, error) {
	rows, err := s.client.Sensor.Query().
		Where(sensor.FarmIDEQ(farmID), sensor.DeletedAtIsNil()).
		Order(ent.Asc(sensor.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SensorDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, sensorDTO(row))
	}
	return out, nil
}

// Get returns one active sensor.
func (s *SensorService) Get(ctx context.Context, farmID, id string) (*SensorDTO, error) {
	row, err := s.client.Sensor.Query().
		Where(sensor.IDEQ(id), sensor.FarmIDEQ(farmID), sensor.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeSensorNotFound, "sensor not found")
	}
	if err != nil {
		return nil, err
	}
	dto := sensorDTO(row)
	return &dto, nil
}

// Create inserts a sensor with the given id, reviving a soft-deleted row
// under the same id.
func (s *SensorService) Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in sensorInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	if in.Name == nil || *in.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "sensor name is required")
	}
	if in.Type == nil || *in.Type == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "sensor type is required")
	}

	row, err := tx.Sensor.Query().
		Where(sensor.IDEQ(entityID), sensor.FarmIDEQ(farmID)).
		Only(ctx)
	switch {
	case err == nil && row.DeletedAt == nil:
		return nil, apperrors.Conflict(apperrors.CodeEntityExists, "sensor already exists")
	case err == nil:
		upd := tx.Sensor.UpdateOne(row).
			ClearDeletedAt().
			SetName(*in.Name).
			SetType(*in.Type)
		applySensorInput(upd.Mutation(), in)
		row, err = upd.Save(ctx)
	case ent.IsNotFound(err):
		create := tx.Sensor.Create().
			SetID(entityID).
			SetFarmID(farmID).
			SetName(*in.Name).
			SetType(*in.Type)
		applySensorInput(create.Mutation(), in)
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(sensorDTO(row))
}

// Update applies the non-nil members of data to an active sensor.
func (s *SensorService) Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in sensorInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	row, err := tx.Sensor.Query().
		Where(sensor.IDEQ(entityID), sensor.FarmIDEQ(farmID), sensor.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeSensorNotFound, "sensor not found")
	}
	if err != nil {
		return nil, err
	}
	upd := tx.Sensor.UpdateOne(row)
	if in.Name != nil {
		upd.SetName(*in.Name)
	}
	if in.Type != nil {
		upd.SetType(*in.Type)
	}
	applySensorInput(upd.Mutation(), in)
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(sensorDTO(row))
}

// SoftDelete marks an active sensor deleted.
func (s *SensorService) SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error {
	row, err := tx.Sensor.Query().
		Where(sensor.IDEQ(entityID), sensor.FarmIDEQ(farmID), sensor.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodeSensorNotFound, "sensor not found")
	}
	if err != nil {
		return err
	}
	return tx.Sensor.UpdateOne(row).SetDeletedAt(time.Now().UTC()).Exec(ctx)
}

func applySensorInput(m *ent.SensorMutation, in sensorInput) {
	if in.PaddockID != nil {
		m.SetPaddockID(*in.PaddockID)
	}
	if in.LastValue != nil {
		m.SetLastValue(in.LastValue)
	}
	if in.LastSeen != nil {
		m.SetLastSeen(*in.LastSeen)
	}
}

func sensorDTO(row *ent.Sensor) SensorDTO {
	return SensorDTO{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		PaddockID: row.PaddockID,
		LastValue: row.LastValue,
		LastSeen:  row.LastSeen,
	}
}
