package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/productive/internal/state"
)

// Blob returns the raw value stored under key. A missing key yields an
// error wrapping sql.ErrNoRows.
func (s *Store) Blob(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state_blobs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, fmt.Errorf("get blob %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) PutBlob(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO state_blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("put blob %q: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last written.
func (s *Store) UpdatedAt(key string) (time.Time, error) {
	var updatedAt string
	err := s.db.QueryRow(`SELECT updated_at FROM state_blobs WHERE key = ?`, key).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("get blob %q: %w", key, err)
	}
	return time.Parse(time.RFC3339, updatedAt)
}

func (s *Store) DeleteBlob(key string) error {
	if _, err := s.db.Exec(`DELETE FROM state_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

// Load implements state.Persister.
func (s *Store) Load() (*state.Snapshot, error) {
	data, err := s.Blob(state.StorageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, state.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return state.Decode(data)
}

// Save implements state.Persister.
func (s *Store) Save(snap *state.Snapshot) error {
	data, err := state.Encode(snap)
	if err != nil {
		return err
	}
	return s.PutBlob(state.StorageKey, data)
}
