package sync

import (
	"context"
	"encoding/json"
	"sort"

	"farmdeck.io/farmdeck/ent"
)

// Mutator performs the actual entity writes on behalf of the conflict
// engine. One implementation per entity type, owned by the service
// layer; the engine knows nothing about entity-specific validation.
// All methods run inside the caller's transaction. Create and Update
// return the canonical full snapshot recorded in the change log.
type Mutator interface {
	Create(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, tx *ent.Tx, farmID, entityID string, data json.RawMessage) (json.RawMessage, error)
	SoftDelete(ctx context.Context, tx *ent.Tx, farmID, entityID string) error
}

// Registry maps entity type names to their mutators.
type Registry struct {
	mutators map[string]Mutator
}

// NewRegistry creates an empty mutator registry.
func NewRegistry() *Registry {
	return &Registry{mutators: make(map[string]Mutator)}
}

// Register binds a mutator to an entity type name.
func (r *Registry) Register(entityType string, m Mutator) {
	r.mutators[entityType] = m
}

// Lookup returns the mutator for entityType.
func (r *Registry) Lookup(entityType string) (Mutator, bool) {
	m, ok := r.mutators[entityType]
	return m, ok
}

// Types returns the registered entity type names, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.mutators))
	for t := range r.mutators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
