// Package usecase provides application use cases shared by the HTTP
// layer and tooling (seeding, device intake).
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"farmdeck.io/farmdeck/ent"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// CommitInput describes one server-side entity mutation.
type CommitInput struct {
	FarmID     string
	EntityType string
	EntityID   string // empty on CREATE lets the server generate one
	Op         syncengine.Op
	Data       json.RawMessage
}

// CommitResult reports the committed mutation.
type CommitResult struct {
	EntityID string
	Seq      int64
	Payload  json.RawMessage
}

// Commit is the online write path: it wraps an entity mutation with
// change recording in one transaction, so CRUD and device-ingestion
// writes feed the same ordered log offline clients pull from. Online
// writers are authoritative and skip the staleness check; the conflict
// engine is only for client-submitted batches.
type Commit struct {
	client   *ent.Client
	registry *syncengine.Registry
	recorder *syncengine.Recorder
}

// NewCommit creates a Commit use case.
func NewCommit(client *ent.Client, registry *syncengine.Registry, recorder *syncengine.Recorder) *Commit {
	return &Commit{client: client, registry: registry, recorder: recorder}
}

// Execute runs the mutation and the log append atomically.
func (c *Commit) Execute(ctx context.Context, in CommitInput) (*CommitResult, error) {
	mutator, ok := c.registry.Lookup(in.EntityType)
	if !ok {
		return nil, apperrors.BadRequest(apperrors.CodeUnknownEntityType,
			fmt.Sprintf("unknown entity type %q, known types: %s",
				in.EntityType, strings.Join(c.registry.Types(), ", ")))
	}

	entityID := in.EntityID
	if entityID == "" {
		if in.Op != syncengine.OpCreate {
			return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "entity id is required")
		}
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate entity id: %w", err)
		}
		entityID = id.String()
	}
	ref := syncengine.EntityRef{Type: in.EntityType, ID: entityID}

	if err := syncengine.EnsureSequence(ctx, c.client, in.FarmID); err != nil {
		return nil, err
	}

	result := &CommitResult{EntityID: entityID}
	err := syncengine.WithTx(ctx, c.client, func(tx *ent.Tx) error {
		switch in.Op {
		case syncengine.OpCreate:
			snapshot, err := mutator.Create(ctx, tx, in.FarmID, entityID, in.Data)
			if err != nil {
				return err
			}
			seq, err := c.recorder.RecordChange(ctx, tx, in.FarmID, ref, syncengine.OpCreate, snapshot)
			if err != nil {
				return err
			}
			result.Seq, result.Payload = seq, snapshot
		case syncengine.OpUpdate:
			snapshot, err := mutator.Update(ctx, tx, in.FarmID, entityID, in.Data)
			if err != nil {
				return err
			}
			seq, err := c.recorder.RecordChange(ctx, tx, in.FarmID, ref, syncengine.OpUpdate, snapshot)
			if err != nil {
				return err
			}
			result.Seq, result.Payload = seq, snapshot
		case syncengine.OpDelete:
			if err := mutator.SoftDelete(ctx, tx, in.FarmID, entityID); err != nil {
				return err
			}
			seq, err := c.recorder.RecordTombstone(ctx, tx, in.FarmID, ref)
			if err != nil {
				return err
			}
			result.Seq = seq
		default:
			return apperrors.BadRequest(apperrors.CodeValidationFailed,
				fmt.Sprintf("unknown op %q", in.Op))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("entity mutation committed",
		zap.String("farm_id", in.FarmID),
		zap.String("entity_type", in.EntityType),
		zap.String("entity_id", entityID),
		zap.String("op", string(in.Op)),
		zap.Int64("seq", result.Seq),
	)
	return result, nil
}
