package errors

// Error code constants. Errors carry code + params; messages are for
// operators, clients key off the code.

// Entity error codes.
const (
	CodePaddockNotFound  = "PADDOCK_NOT_FOUND"
	CodeMobNotFound      = "MOB_NOT_FOUND"
	CodeMovementNotFound = "MOVEMENT_NOT_FOUND"
	CodeSensorNotFound   = "SENSOR_NOT_FOUND"
	CodeRecordNotFound   = "RECORD_NOT_FOUND"
	CodeEntityExists     = "ENTITY_ALREADY_EXISTS"
	CodeEntityDeleted    = "ENTITY_DELETED"
)

// Sync error codes.
const (
	CodeBatchTooLarge     = "SYNC_BATCH_TOO_LARGE"
	CodeInvalidCursor     = "SYNC_INVALID_CURSOR"
	CodeInvalidAction     = "SYNC_INVALID_ACTION"
	CodeUnknownEntityType = "SYNC_UNKNOWN_ENTITY_TYPE"
)

// Auth error codes.
const (
	CodeFarmTokenInvalid = "FARM_TOKEN_INVALID"
	CodeFarmUnresolved   = "FARM_UNRESOLVED"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
)
