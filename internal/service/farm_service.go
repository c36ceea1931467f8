package service

import (
	"context"

	"github.com/google/uuid"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/farm"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// FarmDTO is the wire representation of a farm.
type FarmDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FarmService manages farms. Farms are not syncable entities: they are
// the scope every other entity, log entry, and receipt lives under.
type FarmService struct {
	client *ent.Client
}

// NewFarmService creates a FarmService.
func NewFarmService(client *ent.Client) *FarmService {
	return &FarmService{client: client}
}

// Create registers a farm and seeds its sequence counter.
func (s *FarmService) Create(ctx context.Context, name string) (*FarmDTO, error) {
	if name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "farm name is required")
	}
	id := newID()
	row, err := s.client.Farm.Create().
		SetID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := syncengine.EnsureSequence(ctx, s.client, row.ID); err != nil {
		return nil, err
	}
	return &FarmDTO{ID: row.ID, Name: row.Name}, nil
}

// Get returns one farm.
func (s *FarmService) Get(ctx context.Context, id string) (*FarmDTO, error) {
	row, err := s.client.Farm.Query().Where(farm.IDEQ(id)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeFarmUnresolved, "farm not found")
	}
	if err != nil {
		return nil, err
	}
	return &FarmDTO{ID: row.ID, Name: row.Name}, nil
}

// newID generates a time-ordered UUID for server-created rows.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
