package service

import (
	"context"
	"encoding/json"
	"time"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/movement"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// EntityMovement is the sync entity type name for movements.
const EntityMovement = "movement"

// MovementDTO is the wire representation of a mob movement.
type MovementDTO struct {
	ID            string    `json:"id"`
	MobID         string    `json:"mobId"`
	FromPaddockID string    `json:"fromPaddockId,omitempty"`
	ToPaddockID   string    `json:"toPaddockId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type movementInput struct {
	MobID         *string    `json:"mobId"`
	FromPaddockID *string    `json:"fromPaddockId"`
	ToPaddockID   *string    `json:"toPaddockId"`
	OccurredAt    *time.Time `json:"occurredAt"`
}

// MovementService manages movement reads and mutations. A movement does
// not repoint the mob by itself; clients submit the mob's paddock change
// as its own action so both edits land in the change log.
type MovementService struct {
	client *ent.Client
}

// NewMovementService creates a MovementService.
func NewMovementService(client *ent.Client) *MovementService {
	return &MovementService{client: client}
}

// List returns the farm's movements, most recent first.
func (s *MovementService) List(ctx context.Context, farmID string) ([]MovementDTO, error) {
	rows, err := s.client.Movement.Query().
		Where(movement.FarmIDEQ(farmID), movement.DeletedAtIsNil()).
		Order(ent.Desc(movement.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MovementDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, movementDTO(row))
	}
	return out, nil
}

// Create records a movement. A soft-deleted row under the same id is
// revived in place.
func (s *MovementService) Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in movementInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	if in.MobID == nil || *in.MobID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "movement mobId is required")
	}
	if in.ToPaddockID == nil || *in.ToPaddockID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "movement toPaddockId is required")
	}

	row, err := tx.Movement.Query().
		Where(movement.IDEQ(entityID), movement.FarmIDEQ(farmID)).
		Only(ctx)
	switch {
	case err == nil && row.DeletedAt == nil:
		return nil, apperrors.Conflict(apperrors.CodeEntityExists, "movement already exists")
	case err == nil:
		upd := tx.Movement.UpdateOne(row).
			ClearDeletedAt().
			SetMobID(*in.MobID).
			SetToPaddockID(*in.ToPaddockID)
		if in.FromPaddockID != nil {
			upd.SetFromPaddockID(*in.FromPaddockID)
		}
		if in.OccurredAt != nil {
			upd.SetOccurredAt(*in.OccurredAt)
		}
		row, err = upd.Save(ctx)
	case ent.IsNotFound(err):
		create := tx.Movement.Create().
			SetID(entityID).
			SetFarmID(farmID).
			SetMobID(*in.MobID).
			SetToPaddockID(*in.ToPaddockID)
		if in.FromPaddockID != nil {
			create.SetFromPaddockID(*in.FromPaddockID)
		}
		if in.OccurredAt != nil {
			create.SetOccurredAt(*in.OccurredAt)
		}
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(movementDTO(row))
}

// Update applies the non-nil members of data to an active movement.
func (s *MovementService) Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in movementInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	row, err := tx.Movement.Query().
		Where(movement.IDEQ(entityID), movement.FarmIDEQ(farmID), movement.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeMovementNotFound, "movement not found")
	}
	if err != nil {
		return nil, err
	}
	upd := tx.Movement.UpdateOne(row)
	if in.MobID != nil {
		upd.SetMobID(*in.MobID)
	}
	if in.FromPaddockID != nil {
		upd.SetFromPaddockID(*in.FromPaddockID)
	}
	if in.ToPaddockID != nil {
		upd.SetToPaddockID(*in.ToPaddockID)
	}
	if in.OccurredAt != nil {
		upd.SetOccurredAt(*in.OccurredAt)
	}
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(movementDTO(row))
}

// SoftDelete marks an active movement deleted.
func (s *MovementService) SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error {
	row, err := tx.Movement.Query().
		Where(movement.IDEQ(entityID), movement.FarmIDEQ(farmID), movement.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodeMovementNotFound, "movement not found")
	}
	if err != nil {
		return err
	}
	return tx.Movement.UpdateOne(row).SetDeletedAt(time.Now().UTC()).Exec(ctx)
}

func movementDTO(row *ent.Movement) MovementDTO {
	return MovementDTO{
		ID:            row.ID,
		MobID:         row.MobID,
		FromPaddockID: row.FromPaddockID,
		ToPaddockID:   row.ToPaddockID,
		OccurredAt:    row.OccurredAt,
	}
}
