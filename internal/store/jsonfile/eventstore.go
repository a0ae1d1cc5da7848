// Package jsonfile provides a JSONL file-based interaction event store.
package jsonfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/placardhq/placard/internal/core/events"
)

const (
	defaultMaxEvents = 1000
	eventsFilename   = "interactions.jsonl"
)

// EventStore implements events.Store using a JSONL file.
type EventStore struct {
	dir       string
	maxEvents int
	mu        sync.Mutex
}

// NewEventStore creates a new event store at the given directory.
func NewEventStore(dir string) *EventStore {
	return &EventStore{
		dir:       dir,
		maxEvents: defaultMaxEvents,
	}
}

// WithMaxEvents sets the maximum number of events to retain.
func (s *EventStore) WithMaxEvents(max int) *EventStore {
	if max > 0 {
		s.maxEvents = max
	}
	return s
}

func (s *EventStore) filePath() string {
	return filepath.Join(s.dir, eventsFilename)
}

func (s *EventStore) lockPath() string {
	return s.filePath() + ".lock"
}

// withExclusiveLock executes fn while holding an exclusive file lock.
func (s *EventStore) withExclusiveLock(fn func() error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create events directory: %w", err)
	}

	f, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire file lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN) //nolint:errcheck

	return fn()
}

// Record appends an interaction event.
func (s *EventStore) Record(event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withExclusiveLock(func() error {
		// Set ID and timestamp if not provided
		if event.ID == "" {
			event.ID = events.NewID()
		}
		if event.Timestamp.IsZero() {
			event.Timestamp = time.Now()
		}

		all, err := s.readEventsUnsafe()
		if err != nil {
			return err
		}

		all = append(all, event)

		// Enforce retention limit
		if len(all) > s.maxEvents {
			all = all[len(all)-s.maxEvents:]
		}

		return s.writeEventsUnsafe(all)
	})
}

// List returns recent events, newest first.
func (s *EventStore) List(limit int) ([]events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []events.Event
	err := s.withExclusiveLock(func() error {
		all, err := s.readEventsUnsafe()
		if err != nil {
			return err
		}

		// Reverse to get newest first
		for i := len(all) - 1; i >= 0; i-- {
			result = append(result, all[i])
			if limit > 0 && len(result) >= limit {
				break
			}
		}
		return nil
	})
	return result, err
}

// readEventsUnsafe reads all events from the file.
// Caller must hold lock.
func (s *EventStore) readEventsUnsafe() ([]events.Event, error) {
	f, err := os.Open(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var all []events.Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event events.Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			// Skip malformed lines
			continue
		}
		all = append(all, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}

	return all, nil
}

// writeEventsUnsafe writes all events to the file.
// Caller must hold lock.
func (s *EventStore) writeEventsUnsafe(all []events.Event) error {
	tmpPath := s.filePath() + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	for _, e := range all {
		if err := enc.Encode(e); err != nil {
			f.Close() //nolint:errcheck
			_ = os.Remove(tmpPath)
			return fmt.Errorf("write event: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.filePath()); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
