// Package wire holds the JSON representation shared by every expected
// backing: a success is written as the bare value and an error as
// {"unexpected": <error>}.
package wire

import (
	"bytes"
	"encoding/json"

	"github.com/Philanthropists/expected/internal/types"
)

const UnexpectedKey = "unexpected"

func Marshal(hasValue bool, value, err any) ([]byte, error) {
	if hasValue {
		return json.Marshal(value)
	}

	return json.Marshal(map[string]any{UnexpectedKey: err})
}

// Null reports whether data is the JSON null literal. Backings leave their
// receiver unchanged on null, as encoding/json does for other types.
func Null(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// Unmarshal decodes data into either a value or an error. An object whose
// only key is "unexpected" is an error, anything else is a value. A value
// that itself encodes as such an object, e.g. map[string]string{"unexpected": "x"},
// therefore decodes as an error.
func Unmarshal[V, E any](data []byte) (value V, err E, hasValue bool, decodeErr error) {
	var obj map[string]json.RawMessage
	if json.Unmarshal(data, &obj) == nil && len(obj) == 1 {
		if raw, ok := obj[UnexpectedKey]; ok {
			if e := json.Unmarshal(raw, &err); e != nil {
				return value, err, false, types.ErrDecode.Wrap(e)
			}
			return value, err, false, nil
		}
	}

	if e := json.Unmarshal(data, &value); e != nil {
		return value, err, false, types.ErrDecode.Wrap(e)
	}

	return value, err, true, nil
}
