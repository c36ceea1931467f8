package service

import (
	"encoding/json"

	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// decodeInput unmarshals an action payload into the entity's input
// struct. Empty data is allowed; garbage is a validation failure.
func decodeInput(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.Wrap(err, apperrors.CodeValidationFailed, "malformed entity data", 400)
	}
	return nil
}

// marshalSnapshot serializes the canonical post-mutation snapshot for
// the change log.
func marshalSnapshot(v interface{}) (json.RawMessage, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
