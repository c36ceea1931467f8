// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChangeLogEntry is the predicate function for changelogentry builders.
type ChangeLogEntry func(*sql.Selector)

// Farm is the predicate function for farm builders.
type Farm func(*sql.Selector)

// FarmSequence is the predicate function for farmsequence builders.
type FarmSequence func(*sql.Selector)

// Mob is the predicate function for mob builders.
type Mob func(*sql.Selector)

// Movement is the predicate function for movement builders.
type Movement func(*sql.Selector)

// Paddock is the predicate function for paddock builders.
type Paddock func(*sql.Selector)

// PaddockRecord is the predicate function for paddockrecord builders.
type PaddockRecord func(*sql.Selector)

// Sensor is the predicate function for sensor builders.
type Sensor func(*sql.Selector)

// StockRecord is the predicate function for stockrecord builders.
type StockRecord func(*sql.Selector)

// SyncReceipt is the predicate function for syncreceipt builders.
type SyncReceipt func(*sql.Selector)

// Tombstone is the predicate function for tombstone builders.
type Tombstone func(*sql.Selector)
