// Package sync implements the offline synchronization engine: the
// append-only change/tombstone log, per-farm sequence allocation, delta
// pulls, and batched client action application with deterministic
// conflict resolution and idempotent replay.
package sync

import (
	"encoding/json"
	"time"
)

// Op is a mutation operation submitted by a client or recorded in the log.
type Op string

// Client action operations. The change log itself only records CREATE and
// UPDATE; deletions are recorded as tombstones.
const (
	OpCreate Op = "CREATE"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Reason classifies why an action was rejected.
type Reason string

// Conflict reasons reported per action.
const (
	ReasonStale         Reason = "STALE"
	ReasonDeleted       Reason = "DELETED"
	ReasonNotFound      Reason = "NOT_FOUND"
	ReasonAlreadyExists Reason = "ALREADY_EXISTS"
	ReasonValidation    Reason = "VALIDATION"
)

// EntityRef identifies a syncable entity.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ClientAction is one pending mutation submitted by a field client.
// ClientID is the idempotency anchor: a replay with the same ClientID
// returns the recorded outcome without re-executing.
type ClientAction struct {
	ClientID string          `json:"clientId"`
	TS       time.Time       `json:"ts"`
	Entity   EntityRef       `json:"entity"`
	Op       Op              `json:"op"`
	Data     json.RawMessage `json:"data"`
}

// AppliedAction reports one successfully applied action.
type AppliedAction struct {
	ClientID string    `json:"clientId"`
	Status   string    `json:"status"`
	Entity   EntityRef `json:"entity"`
	Op       Op        `json:"op"`
	Seq      int64     `json:"seq"`
}

// ConflictAction reports one rejected action. For STALE conflicts,
// CurrentSeq carries the server's version so the client can re-derive
// its edit against current state.
type ConflictAction struct {
	ClientID   string    `json:"clientId"`
	Reason     Reason    `json:"reason"`
	Entity     EntityRef `json:"entity"`
	CurrentSeq int64     `json:"currentSeq,omitempty"`
}

// BatchResult is the structured outcome of a batch submission. Every
// action in the batch lands in exactly one of the two lists.
type BatchResult struct {
	Applied   []AppliedAction  `json:"applied"`
	Conflicts []ConflictAction `json:"conflicts"`
}

// ChangeRecord is a wire-level change log entry served by the Delta Puller.
type ChangeRecord struct {
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Op         Op              `json:"op"`
	Payload    json.RawMessage `json:"payload"`
	Seq        int64           `json:"seq"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// TombstoneRecord is a wire-level deletion marker served by the Delta Puller.
type TombstoneRecord struct {
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Seq        int64     `json:"seq"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Delta is one since→now slice of the log. ServerTime is the farm's
// sequence watermark at the read snapshot; clients advance their cursor
// to it, never to the highest seq they happened to observe.
type Delta struct {
	ServerTime int64             `json:"serverTime"`
	Changes    []ChangeRecord    `json:"changes"`
	Tombstones []TombstoneRecord `json:"tombstones"`
}
