package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/syncreceipt"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/pkg/metrics"
)

// DefaultMaxBatchSize caps the number of actions accepted per submission.
const DefaultMaxBatchSize = 500

// Applier ingests a client-submitted batch of pending actions and
// decides per action whether to apply, reject, or replay. Actions are
// processed in submitted order, each in its own transaction: a failure
// in one action never rolls back its siblings. Partial success is the
// designed behavior, and clients resume by retrying with the same
// clientIds.
type Applier struct {
	client   *ent.Client
	registry *Registry
	recorder *Recorder
	ledger   Ledger
	maxBatch int
}

// NewApplier creates an Applier. maxBatch <= 0 selects the default cap.
func NewApplier(client *ent.Client, registry *Registry, recorder *Recorder, maxBatch int) *Applier {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchSize
	}
	return &Applier{
		client:   client,
		registry: registry,
		recorder: recorder,
		maxBatch: maxBatch,
	}
}

// actionOutcome is the resolution of one action.
type actionOutcome struct {
	applied    bool
	seq        int64
	reason     Reason
	currentSeq int64
}

// Apply processes the batch in submitted order. Every action resolves
// into exactly one of result.Applied or result.Conflicts. Cancellation
// stops processing between actions; whatever committed stays committed.
func (a *Applier) Apply(ctx context.Context, farmID string, actions []ClientAction) (*BatchResult, error) {
	if len(actions) > a.maxBatch {
		return nil, apperrors.BadRequest(apperrors.CodeBatchTooLarge,
			fmt.Sprintf("batch of %d exceeds limit of %d actions", len(actions), a.maxBatch))
	}
	if err := EnsureSequence(ctx, a.client, farmID); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Applied:   []AppliedAction{},
		Conflicts: []ConflictAction{},
	}
	for i := range actions {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		act := actions[i]

		if reason, ok := a.validate(act); !ok {
			result.Conflicts = append(result.Conflicts, ConflictAction{
				ClientID: act.ClientID,
				Reason:   ReasonValidation,
				Entity:   act.Entity,
			})
			metrics.SyncActionsTotal.WithLabelValues("validation").Inc()
			logger.Debug("sync action rejected before conflict engine",
				zap.String("farm_id", farmID),
				zap.String("client_id", act.ClientID),
				zap.String("detail", reason),
			)
			continue
		}

		outcome, err := a.applyOne(ctx, farmID, act)
		if err != nil {
			if ent.IsConstraintError(err) {
				// A concurrent submission won the receipt insert.
				// Re-read the committed outcome instead of re-executing.
				outcome, err = a.replayCommitted(ctx, act)
			}
			if appErr, ok := apperrors.IsAppError(err); ok && appErr.HTTPStatus < 500 {
				// The mutator rejected the action's content. Deterministic
				// on the payload, so no receipt: a corrected resubmission
				// under the same clientId must be able to succeed.
				result.Conflicts = append(result.Conflicts, ConflictAction{
					ClientID: act.ClientID,
					Reason:   ReasonValidation,
					Entity:   act.Entity,
				})
				metrics.SyncActionsTotal.WithLabelValues("validation").Inc()
				logger.Debug("sync action rejected by entity mutator",
					zap.String("farm_id", farmID),
					zap.String("client_id", act.ClientID),
					zap.String("detail", appErr.Message),
				)
				continue
			}
			if err != nil {
				// Storage failure: nothing committed for this action, so
				// a retry with the same clientId is safe. Siblings keep
				// processing.
				metrics.SyncActionsTotal.WithLabelValues("error").Inc()
				logger.Error("sync action failed",
					zap.String("farm_id", farmID),
					zap.String("client_id", act.ClientID),
					zap.Error(err),
				)
				continue
			}
		}

		if outcome.applied {
			result.Applied = append(result.Applied, AppliedAction{
				ClientID: act.ClientID,
				Status:   "APPLIED",
				Entity:   act.Entity,
				Op:       act.Op,
				Seq:      outcome.seq,
			})
			metrics.SyncActionsTotal.WithLabelValues("applied").Inc()
		} else {
			result.Conflicts = append(result.Conflicts, ConflictAction{
				ClientID:   act.ClientID,
				Reason:     outcome.reason,
				Entity:     act.Entity,
				CurrentSeq: outcome.currentSeq,
			})
			metrics.SyncActionsTotal.WithLabelValues(strings.ToLower(string(outcome.reason))).Inc()
		}
	}
	return result, nil
}

// validate rejects malformed actions before they reach the conflict
// engine. Rejections carry no receipt: they are deterministic on the
// action's own content, so a retry resolves identically.
func (a *Applier) validate(act ClientAction) (string, bool) {
	switch {
	case act.ClientID == "" || len(act.ClientID) > 128:
		return "missing or oversized clientId", false
	case act.Op != OpCreate && act.Op != OpUpdate && act.Op != OpDelete:
		return fmt.Sprintf("unknown op %q", act.Op), false
	case act.Entity.ID == "":
		return "missing entity id", false
	}
	if _, ok := a.registry.Lookup(act.Entity.Type); !ok {
		return fmt.Sprintf("unknown entity type %q", act.Entity.Type), false
	}
	if act.Op != OpDelete && !json.Valid(act.Data) {
		return "data is not valid JSON", false
	}
	return "", true
}

// applyOne resolves a single action inside its own transaction: the
// idempotency check, existence/tombstone check, staleness check, entity
// mutation, log append, and receipt write all commit or abort together.
func (a *Applier) applyOne(ctx context.Context, farmID string, act ClientAction) (actionOutcome, error) {
	mutator, _ := a.registry.Lookup(act.Entity.Type)

	var outcome actionOutcome
	err := WithTx(ctx, a.client, func(tx *ent.Tx) error {
		receipt, err := a.ledger.Lookup(ctx, tx, act.ClientID)
		if err != nil {
			return err
		}
		if receipt != nil {
			outcome = outcomeFromReceipt(receipt)
			metrics.SyncReplaysTotal.Inc()
			return nil
		}

		base, payload, err := splitBase(act.Data)
		if err != nil {
			return fmt.Errorf("decode action data: %w", err)
		}

		state, err := CurrentState(ctx, tx, farmID, act.Entity)
		if err != nil {
			return err
		}

		if reason, ok := decide(act.Op, base, state); !ok {
			outcome = actionOutcome{reason: reason, currentSeq: state.Seq}
			// The observed seq rides along in the receipt so a replayed
			// conflict reproduces the first response exactly.
			var observed *int64
			if state.Seq > 0 {
				observed = &state.Seq
			}
			return a.ledger.Record(ctx, tx, act.ClientID, farmID,
				syncreceipt.Status(reason), act.Entity, observed)
		}

		var seq int64
		switch act.Op {
		case OpCreate:
			snapshot, err := mutator.Create(ctx, tx, farmID, act.Entity.ID, payload)
			if err != nil {
				return err
			}
			seq, err = a.recorder.RecordChange(ctx, tx, farmID, act.Entity, OpCreate, snapshot)
			if err != nil {
				return err
			}
		case OpUpdate:
			snapshot, err := mutator.Update(ctx, tx, farmID, act.Entity.ID, payload)
			if err != nil {
				return err
			}
			seq, err = a.recorder.RecordChange(ctx, tx, farmID, act.Entity, OpUpdate, snapshot)
			if err != nil {
				return err
			}
		case OpDelete:
			if err := mutator.SoftDelete(ctx, tx, farmID, act.Entity.ID); err != nil {
				return err
			}
			seq, err = a.recorder.RecordTombstone(ctx, tx, farmID, act.Entity)
			if err != nil {
				return err
			}
		}

		outcome = actionOutcome{applied: true, seq: seq}
		return a.ledger.Record(ctx, tx, act.ClientID, farmID,
			syncreceipt.StatusAPPLIED, act.Entity, &seq)
	})
	return outcome, err
}

// decide runs the existence, tombstone, and staleness checks. ok=false
// carries the conflict reason. An UPDATE whose base equals the current
// seq is NOT stale: that is the expected case and applies normally.
func decide(op Op, base int64, state EntityState) (Reason, bool) {
	switch op {
	case OpCreate:
		if state.Exists && !state.Deleted {
			return ReasonAlreadyExists, false
		}
		return "", true
	case OpUpdate:
		if !state.Exists {
			return ReasonNotFound, false
		}
		if state.Deleted {
			return ReasonDeleted, false
		}
		if state.Seq > base {
			return ReasonStale, false
		}
		return "", true
	case OpDelete:
		if !state.Exists {
			return ReasonNotFound, false
		}
		if state.Deleted {
			return ReasonDeleted, false
		}
		return "", true
	}
	return ReasonValidation, false
}

// replayCommitted fetches the outcome a concurrent submission committed
// for the same clientId.
func (a *Applier) replayCommitted(ctx context.Context, act ClientAction) (actionOutcome, error) {
	receipt, err := a.ledger.LookupCommitted(ctx, a.client, act.ClientID)
	if err != nil {
		return actionOutcome{}, err
	}
	if receipt == nil {
		return actionOutcome{}, fmt.Errorf("constraint failure without committed receipt for %s", act.ClientID)
	}
	metrics.SyncReplaysTotal.Inc()
	return outcomeFromReceipt(receipt), nil
}

func outcomeFromReceipt(receipt *ent.SyncReceipt) actionOutcome {
	var seq int64
	if receipt.Seq != nil {
		seq = *receipt.Seq
	}
	if receipt.Status == syncreceipt.StatusAPPLIED {
		return actionOutcome{applied: true, seq: seq}
	}
	return actionOutcome{reason: Reason(receipt.Status), currentSeq: seq}
}

// splitBase pops the client's base version out of the action data. The
// remaining members are the entity payload handed to the mutator. A
// missing base means the client never saw server state and compares
// against 0.
func splitBase(data json.RawMessage) (int64, json.RawMessage, error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return 0, nil, err
	}
	var base int64
	if raw, ok := fields["base"]; ok {
		if err := json.Unmarshal(raw, &base); err != nil {
			return 0, nil, fmt.Errorf("base version: %w", err)
		}
		delete(fields, "base")
	}
	cleaned, err := json.Marshal(fields)
	if err != nil {
		return 0, nil, err
	}
	return base, cleaned, nil
}
