// Package service implements entity services: the CRUD-facing reads and
// the mutators the sync engine drives. Mutator methods run inside a
// caller-supplied transaction and return the canonical snapshot that
// gets recorded in the change log.
package service

import (
	"context"
	"encoding/json"
	"time"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/paddock"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// EntityPaddock is the sync entity type name for paddocks.
const EntityPaddock = "paddock"

// PaddockDTO is the wire representation of a paddock.
type PaddockDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	AreaHa         float64 `json:"areaHa"`
	PolygonGeojson string  `json:"polygonGeojson"`
	CropType       string  `json:"cropType,omitempty"`
	CropColor      string  `json:"cropColor,omitempty"`
}

type paddockInput struct {
	Name           *string  `json:"name"`
	AreaHa         *float64 `json:"areaHa"`
	PolygonGeojson *string  `json:"polygonGeojson"`
	CropType       *string  `json:"cropType"`
	CropColor      *string  `json:"cropColor"`
}

// PaddockService manages paddock reads and mutations.
type PaddockService struct {
	client *ent.Client
}

// NewPaddockService creates a PaddockService.
func NewPaddockService(client *ent.Client) *PaddockService {
	return &PaddockService{client: client}
}

// List returns the farm's active paddocks.
func (s *PaddockService) List(ctx context.Context, farmID string) ([]PaddockDTO, error) {
	rows, err := s.client.Paddock.Query().
		Where(paddock.FarmIDEQ(farmID), paddock.DeletedAtIsNil()).
		Order(ent.Asc(paddock.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PaddockDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, paddockDTO(row))
	}
	return out, nil
}

// Get returns one active paddock.
func (s *PaddockService) Get(ctx context.Context, farmID, id string) (*PaddockDTO, error) {
	row, err := s.client.Paddock.Query().
		Where(paddock.IDEQ(id), paddock.FarmIDEQ(farmID), paddock.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodePaddockNotFound, "paddock not found")
	}
	if err != nil {
		return nil, err
	}
	dto := paddockDTO(row)
	return &dto, nil
}

// Create inserts a paddock with the given id. A soft-deleted row under
// the same id is revived in place: the change log's CREATE entry carries
// a later seq than the old tombstone, so consumers converge on the new
// state.
func (s *PaddockService) Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in paddockInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	if in.Name == nil || *in.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "paddock name is required")
	}

	row, err := tx.Paddock.Query().
		Where(paddock.IDEQ(entityID), paddock.FarmIDEQ(farmID)).
		Only(ctx)
	switch {
	case err == nil && row.DeletedAt == nil:
		return nil, apperrors.Conflict(apperrors.CodeEntityExists, "paddock already exists")
	case err == nil:
		upd := tx.Paddock.UpdateOne(row).
			ClearDeletedAt().
			SetName(*in.Name)
		applyPaddockInput(upd.Mutation(), in)
		row, err = upd.Save(ctx)
	case ent.IsNotFound(err):
		create := tx.Paddock.Create().
			SetID(entityID).
			SetFarmID(farmID).
			SetName(*in.Name)
		applyPaddockInput(create.Mutation(), in)
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(paddockDTO(row))
}

// Update applies the non-nil members of data to an active paddock.
func (s *PaddockService) Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in paddockInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	row, err := tx.Paddock.Query().
		Where(paddock.IDEQ(entityID), paddock.FarmIDEQ(farmID), paddock.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodePaddockNotFound, "paddock not found")
	}
	if err != nil {
		return nil, err
	}
	upd := tx.Paddock.UpdateOne(row)
	if in.Name != nil {
		upd.SetName(*in.Name)
	}
	applyPaddockInput(upd.Mutation(), in)
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(paddockDTO(row))
}

// SoftDelete marks an active paddock deleted.
func (s *PaddockService) SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error {
	row, err := tx.Paddock.Query().
		Where(paddock.IDEQ(entityID), paddock.FarmIDEQ(farmID), paddock.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodePaddockNotFound, "paddock not found")
	}
	if err != nil {
		return err
	}
	return tx.Paddock.UpdateOne(row).SetDeletedAt(time.Now().UTC()).Exec(ctx)
}

func applyPaddockInput(m *ent.PaddockMutation, in paddockInput) {
	if in.AreaHa != nil {
		m.SetAreaHa(*in.AreaHa)
	}
	if in.PolygonGeojson != nil {
		m.SetPolygonGeojson(*in.PolygonGeojson)
	}
	if in.CropType != nil {
		m.SetCropType(*in.CropType)
	}
	if in.CropColor != nil {
		m.SetCropColor(*in.CropColor)
	}
}

func paddockDTO(row *ent.Paddock) PaddockDTO {
	return PaddockDTO{
		ID:             row.ID,
		Name:           row.Name,
		AreaHa:         row.AreaHa,
		PolygonGeojson: row.PolygonGeojson,
		CropType:       row.CropType,
		CropColor:      row.CropColor,
	}
}
