package service

import (
	"context"
	"encoding/json"
	"time"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/mob"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// EntityMob is the sync entity type name for mobs.
const EntityMob = "mob"

// MobDTO is the wire representation of a mob.
type MobDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	AvgWeight float64 `json:"avgWeight"`
	PaddockID string  `json:"paddockId,omitempty"`
}

type mobInput struct {
	Name      *string  `json:"name"`
	Count     *int     `json:"count"`
	AvgWeight *float64 `json:"avgWeight"`
	PaddockID *string  `json:"paddockId"`
}

// MobService manages mob reads and mutations.
type MobService struct {
	client *ent.Client
}

// NewMobService creates a MobService.
func NewMobService(client *ent.Client) *MobService {
	return &MobService{client: client}
}

// List returns the farm's active mobs.
func (s *MobService) List(ctx context.Context, farmID string) ([]MobDTO, error) {
	rows, err := s.client.Mob.Query().
		Where(mob.FarmIDEQ(farmID), mob.DeletedAtIsNil()).
		Order(ent.Asc(mob.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MobDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, mobDTO(row))
	}
	return out, nil
}

// Get returns one active mob.
func (s *MobService) Get(ctx context.Context, farmID, id string) (*MobDTO, error) {
	row, err := s.client.Mob.Query().
		Where(mob.IDEQ(id), mob.FarmIDEQ(farmID), mob.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeMobNotFound, "mob not found")
	}
	if err != nil {
		return nil, err
	}
	dto := mobDTO(row)
	return &dto, nil
}

// Create inserts a mob with the given id, reviving a soft-deleted row
// under the same id.
func (s *MobService) Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in mobInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	if in.Name == nil || *in.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "mob name is required")
	}

	row, err := tx.Mob.Query().
		Where(mob.IDEQ(entityID), mob.FarmIDEQ(farmID)).
		Only(ctx)
	switch {
	case err == nil && row.DeletedAt == nil:
		return nil, apperrors.Conflict(apperrors.CodeEntityExists, "mob already exists")
	case err == nil:
		upd := tx.Mob.UpdateOne(row).
			ClearDeletedAt().
			SetName(*in.Name)
		applyMobInput(upd.Mutation(), in)
		row, err = upd.Save(ctx)
	case ent.IsNotFound(err):
		create := tx.Mob.Create().
			SetID(entityID).
			SetFarmID(farmID).
			SetName(*in.Name)
		applyMobInput(create.Mutation(), in)
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(mobDTO(row))
}

// Update applies the non-nil members of data to an active mob.
func (s *MobService) Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in mobInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	row, err := tx.Mob.Query().
		Where(mob.IDEQ(entityID), mob.FarmIDEQ(farmID), mob.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeMobNotFound, "mob not found")
	}
	if err != nil {
		return nil, err
	}
	upd := tx.Mob.UpdateOne(row)
	if in.Name != nil {
		upd.SetName(*in.Name)
	}
	applyMobInput(upd.Mutation(), in)
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(mobDTO(row))
}

// SoftDelete marks an active mob deleted.
func (s *MobService) SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error {
	row, err := tx.Mob.Query().
		Where(mob.IDEQ(entityID), mob.FarmIDEQ(farmID), mob.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodeMobNotFound, "mob not found")
	}
	if err != nil {
		return err
	}
	return tx.Mob.UpdateOne(row).SetDeletedAt(time.Now().UTC()).Exec(ctx)
}

func applyMobInput(m *ent.MobMutation, in mobInput) {
	if in.Count != nil {
		m.SetCount(*in.Count)
	}
	if in.AvgWeight != nil {
		m.SetAvgWeight(*in.AvgWeight)
	}
	if in.PaddockID != nil {
		m.SetPaddockID(*in.PaddockID)
	}
}

func mobDTO(row *ent.Mob) MobDTO {
	return MobDTO{
		ID:        row.ID,
		Name:      row.Name,
		Count:     row.Count,
		AvgWeight: row.AvgWeight,
		PaddockID: row.PaddockID,
	}
}
