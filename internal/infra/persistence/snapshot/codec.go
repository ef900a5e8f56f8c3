// Package snapshot encodes the application state into its persisted JSON document.
// The layout is shared by every store and by the /api/data endpoint.
package snapshot

import (
	"bytes"
	"encoding/json"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrEmptyDocument is returned when a stored document holds no state.
var ErrEmptyDocument = errors.New("empty state document")

// Encode serialises state. Pretty output is indented with two spaces.
func Encode(state *entity.AppState, pretty bool) ([]byte, error) {
	if state == nil {
		return nil, ErrEmptyDocument
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(state, "", "  ")
	} else {
		data, err = json.Marshal(state)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode state")
	}

	return data, nil
}

// Decode parses a stored document and normalises missing collections.
// Blank input, null and {} are all ErrEmptyDocument.
func Decode(data []byte) (*entity.AppState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || isEmptyObject(trimmed) {
		return nil, ErrEmptyDocument
	}

	state := &entity.AppState{}
	if err := json.Unmarshal(trimmed, state); err != nil {
		return nil, errors.Wrap(err, "failed to decode state")
	}
	state.Normalize()

	return state, nil
}

func isEmptyObject(data []byte) bool {
	if len(data) < 2 || data[0] != '{' || data[len(data)-1] != '}' {
		return false
	}

	return len(bytes.TrimSpace(data[1:len(data)-1])) == 0
}
