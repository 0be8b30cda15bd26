// Package store owns the single in-process dataset instance. Every mutating
// operation in the registries and ledgers goes through a *Store handle and
// persists synchronously before returning; there is exactly one writer and no
// background work, so no locking is needed.
package store

import (
	"fmt"
	"time"

	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// Store holds the live dataset and its snapshot path.
type Store struct {
	path string
	data *snapshot.Dataset
	now  func() time.Time
}

// Open loads the snapshot at path (creating a fresh dataset when absent),
// normalizes it, and persists the normalized form once, mirroring what the
// store does after every later mutation.
func Open(path string) (*Store, error) {
	ds, err := snapshot.Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, data: ds, now: time.Now}
	snapshot.Normalize(ds, s.now())
	if err := s.Persist(); err != nil {
		return nil, fmt.Errorf("persist normalized snapshot: %w", err)
	}
	return s, nil
}

// Data exposes the live dataset to the registries, ledgers and reports.
func (s *Store) Data() *snapshot.Dataset { return s.data }

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// Persist writes the current dataset to disk atomically.
func (s *Store) Persist() error {
	return snapshot.Save(s.path, s.data)
}

// Now returns the current time in the snapshot timestamp layout.
func (s *Store) Now() string {
	return shared.FormatTime(s.now())
}

// SetClock overrides the time source. Tests use it to produce deterministic,
// strictly increasing ledger timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Backup copies the snapshot file to a timestamp-suffixed sibling (or into
// dir when non-empty) and returns the backup path.
func (s *Store) Backup(dir string) (string, error) {
	return snapshot.Backup(s.path, dir)
}
