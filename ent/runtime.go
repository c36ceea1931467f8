// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/farm"
	"farmdeck.io/farmdeck/ent/farmsequence"
	"farmdeck.io/farmdeck/ent/mob"
	"farmdeck.io/farmdeck/ent/movement"
	"farmdeck.io/farmdeck/ent/paddock"
	"farmdeck.io/farmdeck/ent/paddockrecord"
	"farmdeck.io/farmdeck/ent/schema"
	"farmdeck.io/farmdeck/ent/sensor"
	"farmdeck.io/farmdeck/ent/stockrecord"
	"farmdeck.io/farmdeck/ent/syncreceipt"
	"farmdeck.io/farmdeck/ent/tombstone"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	changelogentryFields := schema.ChangeLogEntry{}.Fields()
	_ = changelogentryFields
	// changelogentryDescFarmID is the schema descriptor for farm_id field.
	changelogentryDescFarmID := changelogentryFields[0].Descriptor()
	// changelogentry.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	changelogentry.FarmIDValidator = changelogentryDescFarmID.Validators[0].(func(string) error)
	// changelogentryDescEntityType is the schema descriptor for entity_type field.
	changelogentryDescEntityType := changelogentryFields[1].Descriptor()
	// changelogentry.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	changelogentry.EntityTypeValidator = changelogentryDescEntityType.Validators[0].(func(string) error)
	// changelogentryDescEntityID is the schema descriptor for entity_id field.
	changelogentryDescEntityID := changelogentryFields[2].Descriptor()
	// changelogentry.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	changelogentry.EntityIDValidator = changelogentryDescEntityID.Validators[0].(func(string) error)
	// changelogentryDescSeq is the schema descriptor for seq field.
	changelogentryDescSeq := changelogentryFields[5].Descriptor()
	// changelogentry.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	changelogentry.SeqValidator = changelogentryDescSeq.Validators[0].(func(int64) error)
	// changelogentryDescRecordedAt is the schema descriptor for recorded_at field.
	changelogentryDescRecordedAt := changelogentryFields[6].Descriptor()
	// changelogentry.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	changelogentry.DefaultRecordedAt = changelogentryDescRecordedAt.Default.(func() time.Time)
	farmMixin := schema.Farm{}.Mixin()
	farmMixinFields0 := farmMixin[0].Fields()
	_ = farmMixinFields0
	farmFields := schema.Farm{}.Fields()
	_ = farmFields
	// farmDescCreatedAt is the schema descriptor for created_at field.
	farmDescCreatedAt := farmMixinFields0[0].Descriptor()
	// farm.DefaultCreatedAt holds the default value on creation for the created_at field.
	farm.DefaultCreatedAt = farmDescCreatedAt.Default.(func() time.Time)
	// farmDescUpdatedAt is the schema descriptor for updated_at field.
	farmDescUpdatedAt := farmMixinFields0[1].Descriptor()
	// farm.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	farm.DefaultUpdatedAt = farmDescUpdatedAt.Default.(func() time.Time)
	// farm.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	farm.UpdateDefaultUpdatedAt = farmDescUpdatedAt.UpdateDefault.(func() time.Time)
	// farmDescName is the schema descriptor for name field.
	farmDescName := farmFields[1].Descriptor()
	// farm.NameValidator is a validator for the "name" field. It is called by the builders before save.
	farm.NameValidator = farmDescName.Validators[0].(func(string) error)
	farmsequenceFields := schema.FarmSequence{}.Fields()
	_ = farmsequenceFields
	// farmsequenceDescFarmID is the schema descriptor for farm_id field.
	farmsequenceDescFarmID := farmsequenceFields[0].Descriptor()
	// farmsequence.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	farmsequence.FarmIDValidator = farmsequenceDescFarmID.Validators[0].(func(string) error)
	// farmsequenceDescValue is the schema descriptor for value field.
	farmsequenceDescValue := farmsequenceFields[1].Descriptor()
	// farmsequence.DefaultValue holds the default value on creation for the value field.
	farmsequence.DefaultValue = farmsequenceDescValue.Default.(int64)
	// farmsequence.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	farmsequence.ValueValidator = farmsequenceDescValue.Validators[0].(func(int64) error)
	mobMixin := schema.Mob{}.Mixin()
	mobMixinFields0 := mobMixin[0].Fields()
	_ = mobMixinFields0
	mobMixinFields1 := mobMixin[1].Fields()
	_ = mobMixinFields1
	mobFields := schema.Mob{}.Fields()
	_ = mobFields
	// mobDescCreatedAt is the schema descriptor for created_at field.
	mobDescCreatedAt := mobMixinFields0[0].Descriptor()
	// mob.DefaultCreatedAt holds the default value on creation for the created_at field.
	mob.DefaultCreatedAt = mobDescCreatedAt.Default.(func() time.Time)
	// mobDescUpdatedAt is the schema descriptor for updated_at field.
	mobDescUpdatedAt := mobMixinFields0[1].Descriptor()
	// mob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mob.DefaultUpdatedAt = mobDescUpdatedAt.Default.(func() time.Time)
	// mob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mob.UpdateDefaultUpdatedAt = mobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mobDescFarmID is the schema descriptor for farm_id field.
	mobDescFarmID := mobMixinFields1[0].Descriptor()
	// mob.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	mob.FarmIDValidator = mobDescFarmID.Validators[0].(func(string) error)
	// mobDescName is the schema descriptor for name field.
	mobDescName := mobFields[1].Descriptor()
	// mob.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mob.NameValidator = mobDescName.Validators[0].(func(string) error)
	// mobDescCount is the schema descriptor for count field.
	mobDescCount := mobFields[2].Descriptor()
	// mob.DefaultCount holds the default value on creation for the count field.
	mob.DefaultCount = mobDescCount.Default.(int)
	// mob.CountValidator is a validator for the "count" field. It is called by the builders before save.
	mob.CountValidator = mobDescCount.Validators[0].(func(int) error)
	// mobDescAvgWeight is the schema descriptor for avg_weight field.
	mobDescAvgWeight := mobFields[3].Descriptor()
	// mob.DefaultAvgWeight holds the default value on creation for the avg_weight field.
	mob.DefaultAvgWeight = mobDescAvgWeight.Default.(float64)
	movementMixin := schema.Movement{}.Mixin()
	movementMixinFields0 := movementMixin[0].Fields()
	_ = movementMixinFields0
	movementMixinFields1 := movementMixin[1].Fields()
	_ = movementMixinFields1
	movementFields := schema.Movement{}.Fields()
	_ = movementFields
	// movementDescCreatedAt is the schema descriptor for created_at field.
	movementDescCreatedAt := movementMixinFields0[0].Descriptor()
	// movement.DefaultCreatedAt holds the default value on creation for the created_at field.
	movement.DefaultCreatedAt = movementDescCreatedAt.Default.(func() time.Time)
	// movementDescUpdatedAt is the schema descriptor for updated_at field.
	movementDescUpdatedAt := movementMixinFields0[1].Descriptor()
	// movement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	movement.DefaultUpdatedAt = movementDescUpdatedAt.Default.(func() time.Time)
	// movement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	movement.UpdateDefaultUpdatedAt = movementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// movementDescFarmID is the schema descriptor for farm_id field.
	movementDescFarmID := movementMixinFields1[0].Descriptor()
	// movement.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	movement.FarmIDValidator = movementDescFarmID.Validators[0].(func(string) error)
	// movementDescMobID is the schema descriptor for mob_id field.
	movementDescMobID := movementFields[1].Descriptor()
	// movement.MobIDValidator is a validator for the "mob_id" field. It is called by the builders before save.
	movement.MobIDValidator = movementDescMobID.Validators[0].(func(string) error)
	// movementDescToPaddockID is the schema descriptor for to_paddock_id field.
	movementDescToPaddockID := movementFields[3].Descriptor()
	// movement.ToPaddockIDValidator is a validator for the "to_paddock_id" field. It is called by the builders before save.
	movement.ToPaddockIDValidator = movementDescToPaddockID.Validators[0].(func(string) error)
	// movementDescOccurredAt is the schema descriptor for occurred_at field.
	movementDescOccurredAt := movementFields[4].Descriptor()
	// movement.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	movement.DefaultOccurredAt = movementDescOccurredAt.Default.(func() time.Time)
	paddockMixin := schema.Paddock{}.Mixin()
	paddockMixinFields0 := paddockMixin[0].Fields()
	_ = paddockMixinFields0
	paddockMixinFields1 := paddockMixin[1].Fields()
	_ = paddockMixinFields1
	paddockFields := schema.Paddock{}.Fields()
	_ = paddockFields
	// paddockDescCreatedAt is the schema descriptor for created_at field.
	paddockDescCreatedAt := paddockMixinFields0[0].Descriptor()
	// paddock.DefaultCreatedAt holds the default value on creation for the created_at field.
	paddock.DefaultCreatedAt = paddockDescCreatedAt.Default.(func() time.Time)
	// paddockDescUpdatedAt is the schema descriptor for updated_at field.
	paddockDescUpdatedAt := paddockMixinFields0[1].Descriptor()
	// paddock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paddock.DefaultUpdatedAt = paddockDescUpdatedAt.Default.(func() time.Time)
	// paddock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paddock.UpdateDefaultUpdatedAt = paddockDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paddockDescFarmID is the schema descriptor for farm_id field.
	paddockDescFarmID := paddockMixinFields1[0].Descriptor()
	// paddock.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	paddock.FarmIDValidator = paddockDescFarmID.Validators[0].(func(string) error)
	// paddockDescName is the schema descriptor for name field.
	paddockDescName := paddockFields[1].Descriptor()
	// paddock.NameValidator is a validator for the "name" field. It is called by the builders before save.
	paddock.NameValidator = paddockDescName.Validators[0].(func(string) error)
	// paddockDescAreaHa is the schema descriptor for area_ha field.
	paddockDescAreaHa := paddockFields[2].Descriptor()
	// paddock.DefaultAreaHa holds the default value on creation for the area_ha field.
	paddock.DefaultAreaHa = paddockDescAreaHa.Default.(float64)
	// paddockDescPolygonGeojson is the schema descriptor for polygon_geojson field.
	paddockDescPolygonGeojson := paddockFields[3].Descriptor()
	// paddock.DefaultPolygonGeojson holds the default value on creation for the polygon_geojson field.
	paddock.DefaultPolygonGeojson = paddockDescPolygonGeojson.Default.(string)
	// paddockDescCropColor is the schema descriptor for crop_color field.
	paddockDescCropColor := paddockFields[5].Descriptor()
	// paddock.CropColorValidator is a validator for the "crop_color" field. It is called by the builders before save.
	paddock.CropColorValidator = paddockDescCropColor.Validators[0].(func(string) error)
	paddockrecordMixin := schema.PaddockRecord{}.Mixin()
	paddockrecordMixinFields0 := paddockrecordMixin[0].Fields()
	_ = paddockrecordMixinFields0
	paddockrecordMixinFields1 := paddockrecordMixin[1].Fields()
	_ = paddockrecordMixinFields1
	paddockrecordFields := schema.PaddockRecord{}.Fields()
	_ = paddockrecordFields
	// paddockrecordDescCreatedAt is the schema descriptor for created_at field.
	paddockrecordDescCreatedAt := paddockrecordMixinFields0[0].Descriptor()
	// paddockrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	paddockrecord.DefaultCreatedAt = paddockrecordDescCreatedAt.Default.(func() time.Time)
	// paddockrecordDescUpdatedAt is the schema descriptor for updated_at field.
	paddockrecordDescUpdatedAt := paddockrecordMixinFields0[1].Descriptor()
	// paddockrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paddockrecord.DefaultUpdatedAt = paddockrecordDescUpdatedAt.Default.(func() time.Time)
	// paddockrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paddockrecord.UpdateDefaultUpdatedAt = paddockrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paddockrecordDescFarmID is the schema descriptor for farm_id field.
	paddockrecordDescFarmID := paddockrecordMixinFields1[0].Descriptor()
	// paddockrecord.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	paddockrecord.FarmIDValidator = paddockrecordDescFarmID.Validators[0].(func(string) error)
	// paddockrecordDescPaddockID is the schema descriptor for paddock_id field.
	paddockrecordDescPaddockID := paddockrecordFields[1].Descriptor()
	// paddockrecord.PaddockIDValidator is a validator for the "paddock_id" field. It is called by the builders before save.
	paddockrecord.PaddockIDValidator = paddockrecordDescPaddockID.Validators[0].(func(string) error)
	// paddockrecordDescDate is the schema descriptor for date field.
	paddockrecordDescDate := paddockrecordFields[3].Descriptor()
	// paddockrecord.DefaultDate holds the default value on creation for the date field.
	paddockrecord.DefaultDate = paddockrecordDescDate.Default.(func() time.Time)
	sensorMixin := schema.Sensor{}.Mixin()
	sensorMixinFields0 := sensorMixin[0].Fields()
	_ = sensorMixinFields0
	sensorMixinFields1 := sensorMixin[1].Fields()
	_ = sensorMixinFields1
	sensorFields := schema.Sensor{}.Fields()
	_ = sensorFields
	// sensorDescCreatedAt is the schema descriptor for created_at field.
	sensorDescCreatedAt := sensorMixinFields0[0].Descriptor()
	// sensor.DefaultCreatedAt holds the default value on creation for the created_at field.
	sensor.DefaultCreatedAt = sensorDescCreatedAt.Default.(func() time.Time)
	// sensorDescUpdatedAt is the schema descriptor for updated_at field.
	sensorDescUpdatedAt := sensorMixinFields0[1].Descriptor()
	// sensor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sensor.DefaultUpdatedAt = sensorDescUpdatedAt.Default.(func() time.Time)
	// sensor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sensor.UpdateDefaultUpdatedAt = sensorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sensorDescFarmID is the schema descriptor for farm_id field.
	sensorDescFarmID := sensorMixinFields1[0].Descriptor()
	// sensor.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	sensor.FarmIDValidator = sensorDescFarmID.Validators[0].(func(string) error)
	// sensorDescName is the schema descriptor for name field.
	sensorDescName := sensorFields[1].Descriptor()
	// sensor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sensor.NameValidator = sensorDescName.Validators[0].(func(string) error)
	// sensorDescType is the schema descriptor for type field.
	sensorDescType := sensorFields[2].Descriptor()
	// sensor.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	sensor.TypeValidator = sensorDescType.Validators[0].(func(string) error)
	stockrecordMixin := schema.StockRecord{}.Mixin()
	stockrecordMixinFields0 := stockrecordMixin[0].Fields()
	_ = stockrecordMixinFields0
	stockrecordMixinFields1 := stockrecordMixin[1].Fields()
	_ = stockrecordMixinFields1
	stockrecordFields := schema.StockRecord{}.Fields()
	_ = stockrecordFields
	// stockrecordDescCreatedAt is the schema descriptor for created_at field.
	stockrecordDescCreatedAt := stockrecordMixinFields0[0].Descriptor()
	// stockrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	stockrecord.DefaultCreatedAt = stockrecordDescCreatedAt.Default.(func() time.Time)
	// stockrecordDescUpdatedAt is the schema descriptor for updated_at field.
	stockrecordDescUpdatedAt := stockrecordMixinFields0[1].Descriptor()
	// stockrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stockrecord.DefaultUpdatedAt = stockrecordDescUpdatedAt.Default.(func() time.Time)
	// stockrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stockrecord.UpdateDefaultUpdatedAt = stockrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stockrecordDescFarmID is the schema descriptor for farm_id field.
	stockrecordDescFarmID := stockrecordMixinFields1[0].Descriptor()
	// stockrecord.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	stockrecord.FarmIDValidator = stockrecordDescFarmID.Validators[0].(func(string) error)
	// stockrecordDescMobID is the schema descriptor for mob_id field.
	stockrecordDescMobID := stockrecordFields[1].Descriptor()
	// stockrecord.MobIDValidator is a validator for the "mob_id" field. It is called by the builders before save.
	stockrecord.MobIDValidator = stockrecordDescMobID.Validators[0].(func(string) error)
	// stockrecordDescDate is the schema descriptor for date field.
	stockrecordDescDate := stockrecordFields[3].Descriptor()
	// stockrecord.DefaultDate holds the default value on creation for the date field.
	stockrecord.DefaultDate = stockrecordDescDate.Default.(func() time.Time)
	syncreceiptFields := schema.SyncReceipt{}.Fields()
	_ = syncreceiptFields
	// syncreceiptDescClientID is the schema descriptor for client_id field.
	syncreceiptDescClientID := syncreceiptFields[0].Descriptor()
	// syncreceipt.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	syncreceipt.ClientIDValidator = syncreceiptDescClientID.Validators[0].(func(string) error)
	// syncreceiptDescFarmID is the schema descriptor for farm_id field.
	syncreceiptDescFarmID := syncreceiptFields[1].Descriptor()
	// syncreceipt.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	syncreceipt.FarmIDValidator = syncreceiptDescFarmID.Validators[0].(func(string) error)
	// syncreceiptDescCreatedAt is the schema descriptor for created_at field.
	syncreceiptDescCreatedAt := syncreceiptFields[6].Descriptor()
	// syncreceipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncreceipt.DefaultCreatedAt = syncreceiptDescCreatedAt.Default.(func() time.Time)
	tombstoneFields := schema.Tombstone{}.Fields()
	_ = tombstoneFields
	// tombstoneDescFarmID is the schema descriptor for farm_id field.
	tombstoneDescFarmID := tombstoneFields[0].Descriptor()
	// tombstone.FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	tombstone.FarmIDValidator = tombstoneDescFarmID.Validators[0].(func(string) error)
	// tombstoneDescEntityType is the schema descriptor for entity_type field.
	tombstoneDescEntityType := tombstoneFields[1].Descriptor()
	// tombstone.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	tombstone.EntityTypeValidator = tombstoneDescEntityType.Validators[0].(func(string) error)
	// tombstoneDescEntityID is the schema descriptor for entity_id field.
	tombstoneDescEntityID := tombstoneFields[2].Descriptor()
	// tombstone.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	tombstone.EntityIDValidator = tombstoneDescEntityID.Validators[0].(func(string) error)
	// tombstoneDescSeq is the schema descriptor for seq field.
	tombstoneDescSeq := tombstoneFields[3].Descriptor()
	// tombstone.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	tombstone.SeqValidator = tombstoneDescSeq.Validators[0].(func(int64) error)
	// tombstoneDescRecordedAt is the schema descriptor for recorded_at field.
	tombstoneDescRecordedAt := tombstoneFields[4].Descriptor()
	// tombstone.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	tombstone.DefaultRecordedAt = tombstoneDescRecordedAt.Default.(func() time.Time)
}
