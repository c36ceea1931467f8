package service

import (
	"context"
	"encoding/json"
	"time"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/paddockrecord"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// EntityPaddockRecord is the sync entity type name for paddock records.
const EntityPaddockRecord = "paddock_record"

// PaddockRecordDTO is the wire representation of a field operation record.
type PaddockRecordDTO struct {
	ID        string    `json:"id"`
	PaddockID string    `json:"paddockId"`
	Kind      string    `json:"kind"`
	Date      time.Time `json:"date"`
	Product   string    `json:"product,omitempty"`
	Rate      string    `json:"rate,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type paddockRecordInput struct {
	PaddockID *string    `json:"paddockId"`
	Kind      *string    `json:"kind"`
	Date      *time.Time `json:"date"`
	Product   *string    `json:"product"`
	Rate      *string    `json:"rate"`
	Amount    *string    `json:"amount"`
	Notes     *string    `json:"notes"`
}

// PaddockRecordService manages field operation record reads and mutations.
type PaddockRecordService struct {
	client *ent.Client
}

// NewPaddockRecordService creates a PaddockRecordService.
func NewPaddockRecordService(client *ent.Client) *PaddockRecordService {
	return &PaddockRecordService{client: client}
}

// ListByPaddock returns a paddock's active records, most recent first.
func (s *PaddockRecordService) ListByPaddock(ctx context.Context, farmID, paddockID string) ([]PaddockRecordDTO, error) {
	rows, err := s.client.PaddockRecord.Query().
		Where(
			paddockrecord.FarmIDEQ(farmID),
			paddockrecord.PaddockIDEQ(paddockID),
			paddockrecord.DeletedAtIsNil(),
		).
		Order(ent.Desc(paddockrecord.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PaddockRecordDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, paddockRecordDTO(row))
	}
	return out, nil
}

// Create inserts a record with the given id. A soft-deleted row under
// the same id is revived in place.
func (s *PaddockRecordService) Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in paddockRecordInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	if in.PaddockID == nil || *in.PaddockID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "record paddockId is required")
	}
	kind, err := paddockRecordKind(in.Kind)
	if err != nil {
		return nil, err
	}

	row, err := tx.PaddockRecord.Query().
		Where(paddockrecord.IDEQ(entityID), paddockrecord.FarmIDEQ(farmID)).
		Only(ctx)
	switch {
	case err == nil && row.DeletedAt == nil:
		return nil, apperrors.Conflict(apperrors.CodeEntityExists, "paddock record already exists")
	case err == nil:
		upd := tx.PaddockRecord.UpdateOne(row).
			ClearDeletedAt().
			SetPaddockID(*in.PaddockID).
			SetKind(kind)
		applyPaddockRecordInput(upd.Mutation(), in)
		row, err = upd.Save(ctx)
	case ent.IsNotFound(err):
		create := tx.PaddockRecord.Create().
			SetID(entityID).
			SetFarmID(farmID).
			SetPaddockID(*in.PaddockID).
			SetKind(kind)
		applyPaddockRecordInput(create.Mutation(), in)
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(paddockRecordDTO(row))
}

// Update applies the non-nil members of data to an active record.
func (s *PaddockRecordService) Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in paddockRecordInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	row, err := tx.PaddockRecord.Query().
		Where(paddockrecord.IDEQ(entityID), paddockrecord.FarmIDEQ(farmID), paddockrecord.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeRecordNotFound, "paddock record not found")
	}
	if err != nil {
		return nil, err
	}
	upd := tx.PaddockRecord.UpdateOne(row)
	if in.PaddockID != nil {
		upd.SetPaddockID(*in.PaddockID)
	}
	if in.Kind != nil {
		kind, err := paddockRecordKind(in.Kind)
		if err != nil {
			return nil, err
		}
		upd.SetKind(kind)
	}
	applyPaddockRecordInput(upd.Mutation(), in)
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(paddockRecordDTO(row))
}

// SoftDelete marks an active record deleted.
func (s *PaddockRecordService) SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error {
	row, err := tx.PaddockRecord.Query().
		Where(paddockrecord.IDEQ(entityID), paddockrecord.FarmIDEQ(farmID), paddockrecord.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodeRecordNotFound, "paddock record not found")
	}
	if err != nil {
		return err
	}
	return tx.PaddockRecord.UpdateOne(row).SetDeletedAt(time.Now().UTC()).Exec(ctx)
}

func paddockRecordKind(kind *string) (paddockrecord.Kind, error) {
	if kind == nil || *kind == "" {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed, "record kind is required")
	}
	k := paddockrecord.Kind(*kind)
	if err := paddockrecord.KindValidator(k); err != nil {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed, "unknown paddock record kind")
	}
	return k, nil
}

func applyPaddockRecordInput(m *ent.PaddockRecordMutation, in paddockRecordInput) {
	if in.Date != nil {
		m.SetDate(*in.Date)
	}
	if in.Product != nil {
		m.SetProduct(*in.Product)
	}
	if in.Rate != nil {
		m.SetRate(*in.Rate)
	}
	if in.Amount != nil {
		m.SetAmount(*in.Amount)
	}
	if in.Notes != nil {
		m.SetNotes(*in.Notes)
	}
}

func paddockRecordDTO(row *ent.PaddockRecord) PaddockRecordDTO {
	return PaddockRecordDTO{
		ID:        row.ID,
		PaddockID: row.PaddockID,
		Kind:      string(row.Kind),
		Date:      row.Date,
		Product:   row.Product,
		Rate:      row.Rate,
		Amount:    row.Amount,
		Notes:     row.Notes,
	}
}
