package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// schemaVersion tags every persisted value so future field changes can be
// migrated instead of silently misread.
const schemaVersion = 1

var (
	// ErrUnsupportedVersion indicates a persisted value was written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
)

// Store provides JSON-serialized persistence over a key-value substrate.
type Store interface {
	// Load decodes the value stored at key into dest. It returns false with a
	// nil error when the key is absent.
	Load(ctx context.Context, key string, dest any) (bool, error)
	// Save serializes value and writes it at key, replacing any prior value.
	Save(ctx context.Context, key string, value any) error
	// Delete removes the value at key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func encodeValue(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return raw, nil
}

func decodeValue(raw []byte, dest any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.Version > schemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	return nil
}
