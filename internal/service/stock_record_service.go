package service

import (
	"context"
	"encoding/json"
	"time"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/stockrecord"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// EntityStockRecord is the sync entity type name for stock records.
const EntityStockRecord = "stock_record"

// StockRecordDTO is the wire representation of a husbandry record.
type StockRecordDTO struct {
	ID      string    `json:"id"`
	MobID   string    `json:"mobId"`
	Kind    string    `json:"kind"`
	Date    time.Time `json:"date"`
	Product string    `json:"product,omitempty"`
	Rate    string    `json:"rate,omitempty"`
	Count   int       `json:"count,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

type stockRecordInput struct {
	MobID   *string    `json:"mobId"`
	Kind    *string    `json:"kind"`
	Date    *time.Time `json:"date"`
	Product *string    `json:"product"`
	Rate    *string    `json:"rate"`
	Count   *int       `json:"count"`
	Notes   *string    `json:"notes"`
}

// StockRecordService manages husbandry record reads and mutations.
type StockRecordService struct {
	client *ent.Client
}

// NewStockRecordService creates a StockRecordService.
func NewStockRecordService(client *ent.Client) *StockRecordService {
	return &StockRecordService{client: client}
}

// ListByMob returns a mob's active records, most recent first.
func (s *StockRecordService) ListByMob(ctx context.Context, farmID, mobID string) ([]StockRecordDTO, error) {
	rows, err := s.client.StockRecord.Query().
		Where(
			stockrecord.FarmIDEQ(farmID),
			stockrecord.MobIDEQ(mobID),
			stockrecord.DeletedAtIsNil(),
		).
		Order(ent.Desc(stockrecord.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StockRecordDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, stockRecordDTO(row))
	}
	return out, nil
}

// Create inserts a record with the given id. A soft-deleted row under
// the same id is revived in place.
func (s *StockRecordService) Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in stockRecordInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	if in.MobID == nil || *in.MobID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "record mobId is required")
	}
	kind, err := stockRecordKind(in.Kind)
	if err != nil {
		return nil, err
	}

	row, err := tx.StockRecord.Query().
		Where(stockrecord.IDEQ(entityID), stockrecord.FarmIDEQ(farmID)).
		Only(ctx)
	switch {
	case err == nil && row.DeletedAt == nil:
		return nil, apperrors.Conflict(apperrors.CodeEntityExists, "stock record already exists")
	case err == nil:
		upd := tx.StockRecord.UpdateOne(row).
			ClearDeletedAt().
			SetMobID(*in.MobID).
			SetKind(kind)
		applyStockRecordInput(upd.Mutation(), in)
		row, err = upd.Save(ctx)
	case ent.IsNotFound(err):
		create := tx.StockRecord.Create().
			SetID(entityID).
			SetFarmID(farmID).
			SetMobID(*in.MobID).
			SetKind(kind)
		applyStockRecordInput(create.Mutation(), in)
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(stockRecordDTO(row))
}

// Update applies the non-nil members of data to an active record.
func (s *StockRecordService) Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error) {
	var in stockRecordInput
	if err := decodeInput(data, &in); err != nil {
		return nil, err
	}
	row, err := tx.StockRecord.Query().
		Where(stockrecord.IDEQ(entityID), stockrecord.FarmIDEQ(farmID), stockrecord.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeRecordNotFound, "stock record not found")
	}
	if err != nil {
		return nil, err
	}
	upd := tx.StockRecord.UpdateOne(row)
	if in.MobID != nil {
		upd.SetMobID(*in.MobID)
	}
	if in.Kind != nil {
		kind, err := stockRecordKind(in.Kind)
		if err != nil {
			return nil, err
		}
		upd.SetKind(kind)
	}
	applyStockRecordInput(upd.Mutation(), in)
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return marshalSnapshot(stockRecordDTO(row))
}

// SoftDelete marks an active record deleted.
func (s *StockRecordService) SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error {
	row, err := tx.StockRecord.Query().
		Where(stockrecord.IDEQ(entityID), stockrecord.FarmIDEQ(farmID), stockrecord.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodeRecordNotFound, "stock record not found")
	}
	if err != nil {
		return err
	}
	return tx.StockRecord.UpdateOne(row).SetDeletedAt(time.Now().UTC()).Exec(ctx)
}

func stockRecordKind(kind *string) (stockrecord.Kind, error) {
	if kind == nil || *kind == "" {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed, "record kind is required")
	}
	k := stockrecord.Kind(*kind)
	if err := stockrecord.KindValidator(k); err != nil {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed, "unknown stock record kind")
	}
	return k, nil
}

func applyStockRecordInput(m *ent.StockRecordMutation, in stockRecordInput) {
	if in.Date != nil {
		m.SetDate(*in.Date)
	}
	if in.Product != nil {
		m.SetProduct(*in.Product)
	}
	if in.Rate != nil {
		m.SetRate(*in.Rate)
	}
	if in.Count != nil {
		m.SetCount(*in.Count)
	}
	if in.Notes != nil {
		m.SetNotes(*in.Notes)
	}
}

func stockRecordDTO(row *ent.StockRecord) StockRecordDTO {
	return StockRecordDTO{
		ID:      row.ID,
		MobID:   row.MobID,
		Kind:    string(row.Kind),
		Date:    row.Date,
		Product: row.Product,
		Rate:    row.Rate,
		Count:   row.Count,
		Notes:   row.Notes,
	}
}
