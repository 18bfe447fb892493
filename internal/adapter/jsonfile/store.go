package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dayplan/weekly-planner/internal/domain"
)

// Store keeps the whole user collection in a single JSON file. The file
// is the source of truth: every operation re-reads it, and mu is held
// across the full load-modify-save cycle so no two writers can interleave
// and drop each other's changes.
type Store struct {
	mu       sync.Mutex
	filePath string
}

// New creates a store backed by the given file. The file itself is
// created lazily on first save; a missing file reads as an empty
// collection.
func New(filePath string) (*Store, error) {
	if filePath == "" {
		return nil, fmt.Errorf("jsonfile: empty file path")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("jsonfile: create data dir: %w", err)
	}
	return &Store{filePath: filePath}, nil
}

// LoadAll returns the full persisted collection. Missing, unreadable or
// corrupt files degrade to an empty collection; the read path never
// fails the caller.
func (s *Store) LoadAll(ctx context.Context) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() []domain.Record {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return []domain.Record{}
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return []domain.Record{}
	}
	for i := range records {
		records[i].Normalize()
	}
	return records
}

// SaveAll overwrites the full persisted collection.
func (s *Store) SaveAll(ctx context.Context, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(records)
}

func (s *Store) saveLocked(records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode records: %v", domain.ErrStorage, err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, s.filePath, err)
	}
	return nil
}

// Find returns the record for username, nil if absent. A linear scan is
// fine at this scale.
func (s *Store) Find(ctx context.Context, username string) *domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findIn(s.loadLocked(), username)
}

func findIn(records []domain.Record, username string) *domain.Record {
	for i := range records {
		if records[i].Username == username {
			return &records[i]
		}
	}
	return nil
}

// Upsert replaces the matching record or appends a new one. The lock is
// held from load through save, so racing upserts for different usernames
// serialize and both land in the file.
func (s *Store) Upsert(ctx context.Context, record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.loadLocked()
	replaced := false
	for i := range records {
		if records[i].Username == record.Username {
			records[i] = *record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, *record)
	}
	return s.saveLocked(records)
}

// Create appends a record for a username that must not exist yet. The
// duplicate check and the save share one critical section, so racing
// registrations for the same username resolve to exactly one winner.
func (s *Store) Create(ctx context.Context, record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.loadLocked()
	if findIn(records, record.Username) != nil {
		return domain.ErrDuplicateUser
	}
	records = append(records, *record)
	return s.saveLocked(records)
}

// Update applies fn to the stored record for username and persists the
// result, all inside one critical section. Mutations routed through
// Update cannot lose out to a concurrent Update or Upsert even when they
// touch disjoint fields of the same record.
func (s *Store) Update(ctx context.Context, username string, fn func(*domain.Record) error) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.loadLocked()
	rec := findIn(records, username)
	if rec == nil {
		return nil, domain.ErrRecordNotFound
	}
	if err := fn(rec); err != nil {
		return nil, err
	}
	if err := s.saveLocked(records); err != nil {
		return nil, err
	}
	out := *rec
	return &out, nil
}
