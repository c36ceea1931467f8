// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChangeLogEntriesColumns holds the columns for the "change_log_entries" table.
	ChangeLogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "op", Type: field.TypeEnum, Enums: []string{"CREATE", "UPDATE"}},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// ChangeLogEntriesTable holds the schema information for the "change_log_entries" table.
	ChangeLogEntriesTable = &schema.Table{
		Name:       "change_log_entries",
		Columns:    ChangeLogEntriesColumns,
		PrimaryKey: []*schema.Column{ChangeLogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "changelogentry_farm_id_seq",
				Unique:  true,
				Columns: []*schema.Column{ChangeLogEntriesColumns[1], ChangeLogEntriesColumns[6]},
			},
			{
				Name:    "changelogentry_farm_id_entity_type_entity_id_seq",
				Unique:  false,
				Columns: []*schema.Column{ChangeLogEntriesColumns[1], ChangeLogEntriesColumns[2], ChangeLogEntriesColumns[3], ChangeLogEntriesColumns[6]},
			},
		},
	}
	// FarmsColumns holds the columns for the "farms" table.
	FarmsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
	}
	// FarmsTable holds the schema information for the "farms" table.
	FarmsTable = &schema.Table{
		Name:       "farms",
		Columns:    FarmsColumns,
		PrimaryKey: []*schema.Column{FarmsColumns[0]},
	}
	// FarmSequencesColumns holds the columns for the "farm_sequences" table.
	FarmSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "farm_id", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeInt64, Default: 0},
	}
	// FarmSequencesTable holds the schema information for the "farm_sequences" table.
	FarmSequencesTable = &schema.Table{
		Name:       "farm_sequences",
		Columns:    FarmSequencesColumns,
		PrimaryKey: []*schema.Column{FarmSequencesColumns[0]},
	}
	// MobsColumns holds the columns for the "mobs" table.
	MobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "avg_weight", Type: field.TypeFloat64, Default: 0},
		{Name: "paddock_id", Type: field.TypeString, Nullable: true},
	}
	// MobsTable holds the schema information for the "mobs" table.
	MobsTable = &schema.Table{
		Name:       "mobs",
		Columns:    MobsColumns,
		PrimaryKey: []*schema.Column{MobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mob_farm_id_name",
				Unique:  false,
				Columns: []*schema.Column{MobsColumns[3], MobsColumns[5]},
			},
			{
				Name:    "mob_paddock_id",
				Unique:  false,
				Columns: []*schema.Column{MobsColumns[8]},
			},
		},
	}
	// MovementsColumns holds the columns for the "movements" table.
	MovementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "mob_id", Type: field.TypeString},
		{Name: "from_paddock_id", Type: field.TypeString, Nullable: true},
		{Name: "to_paddock_id", Type: field.TypeString},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// MovementsTable holds the schema information for the "movements" table.
	MovementsTable = &schema.Table{
		Name:       "movements",
		Columns:    MovementsColumns,
		PrimaryKey: []*schema.Column{MovementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "movement_farm_id_mob_id",
				Unique:  false,
				Columns: []*schema.Column{MovementsColumns[3], MovementsColumns[5]},
			},
		},
	}
	// PaddocksColumns holds the columns for the "paddocks" table.
	PaddocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "area_ha", Type: field.TypeFloat64, Default: 0},
		{Name: "polygon_geojson", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "crop_type", Type: field.TypeString, Nullable: true},
		{Name: "crop_color", Type: field.TypeString, Nullable: true, Size: 16},
	}
	// PaddocksTable holds the schema information for the "paddocks" table.
	PaddocksTable = &schema.Table{
		Name:       "paddocks",
		Columns:    PaddocksColumns,
		PrimaryKey: []*schema.Column{PaddocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paddock_farm_id_name",
				Unique:  false,
				Columns: []*schema.Column{PaddocksColumns[3], PaddocksColumns[5]},
			},
		},
	}
	// PaddockRecordsColumns holds the columns for the "paddock_records" table.
	PaddockRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "paddock_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"SPRAY", "SOWING", "FERTILISER", "CUT", "HARVEST", "OBSERVATION"}},
		{Name: "date", Type: field.TypeTime},
		{Name: "product", Type: field.TypeString, Nullable: true},
		{Name: "rate", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PaddockRecordsTable holds the schema information for the "paddock_records" table.
	PaddockRecordsTable = &schema.Table{
		Name:       "paddock_records",
		Columns:    PaddockRecordsColumns,
		PrimaryKey: []*schema.Column{PaddockRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paddockrecord_farm_id_paddock_id_kind",
				Unique:  false,
				Columns: []*schema.Column{PaddockRecordsColumns[3], PaddockRecordsColumns[5], PaddockRecordsColumns[6]},
			},
		},
	}
	// SensorsColumns holds the columns for the "sensors" table.
	SensorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "paddock_id", Type: field.TypeString, Nullable: true},
		{Name: "last_value", Type: field.TypeJSON, Nullable: true},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
	}
	// SensorsTable holds the schema information for the "sensors" table.
	SensorsTable = &schema.Table{
		Name:       "sensors",
		Columns:    SensorsColumns,
		PrimaryKey: []*schema.Column{SensorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sensor_farm_id_name",
				Unique:  false,
				Columns: []*schema.Column{SensorsColumns[3], SensorsColumns[5]},
			},
		},
	}
	// StockRecordsColumns holds the columns for the "stock_records" table.
	StockRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "mob_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"WORMING", "FOOTBATH", "JOINING", "MARKING", "WEANING", "FLY_TREATMENT", "FOOT_PARING"}},
		{Name: "date", Type: field.TypeTime},
		{Name: "product", Type: field.TypeString, Nullable: true},
		{Name: "rate", Type: field.TypeString, Nullable: true},
		{Name: "count", Type: field.TypeInt, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// StockRecordsTable holds the schema information for the "stock_records" table.
	StockRecordsTable = &schema.Table{
		Name:       "stock_records",
		Columns:    StockRecordsColumns,
		PrimaryKey: []*schema.Column{StockRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stockrecord_farm_id_mob_id_kind",
				Unique:  false,
				Columns: []*schema.Column{StockRecordsColumns[3], StockRecordsColumns[5], StockRecordsColumns[6]},
			},
		},
	}
	// SyncReceiptsColumns holds the columns for the "sync_receipts" table.
	SyncReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_id", Type: field.TypeString, Unique: true},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"APPLIED", "STALE", "DELETED", "NOT_FOUND", "ALREADY_EXISTS"}},
		{Name: "seq", Type: field.TypeInt64, Nullable: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SyncReceiptsTable holds the schema information for the "sync_receipts" table.
	SyncReceiptsTable = &schema.Table{
		Name:       "sync_receipts",
		Columns:    SyncReceiptsColumns,
		PrimaryKey: []*schema.Column{SyncReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncreceipt_farm_id",
				Unique:  false,
				Columns: []*schema.Column{SyncReceiptsColumns[2]},
			},
			{
				Name:    "syncreceipt_created_at",
				Unique:  false,
				Columns: []*schema.Column{SyncReceiptsColumns[7]},
			},
		},
	}
	// TombstonesColumns holds the columns for the "tombstones" table.
	TombstonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "farm_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// TombstonesTable holds the schema information for the "tombstones" table.
	TombstonesTable = &schema.Table{
		Name:       "tombstones",
		Columns:    TombstonesColumns,
		PrimaryKey: []*schema.Column{TombstonesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tombstone_farm_id_seq",
				Unique:  true,
				Columns: []*schema.Column{TombstonesColumns[1], TombstonesColumns[4]},
			},
			{
				Name:    "tombstone_farm_id_entity_type_entity_id_seq",
				Unique:  false,
				Columns: []*schema.Column{TombstonesColumns[1], TombstonesColumns[2], TombstonesColumns[3], TombstonesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChangeLogEntriesTable,
		FarmsTable,
		FarmSequencesTable,
		MobsTable,
		MovementsTable,
		PaddocksTable,
		PaddockRecordsTable,
		SensorsTable,
		StockRecordsTable,
		SyncReceiptsTable,
		TombstonesTable,
	}
)

func init() {
}
