// Package events defines interaction analytics events and their dispatch
// contracts.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind is the type of an interaction event.
type Kind string

const (
	KindClicked Kind = "clicked"
	KindViewed  Kind = "viewed"
)

// Event records one interaction outcome for a message.
type Event struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	MessageID string    `json:"message_id"`
	QueryID   string    `json:"query_id,omitempty"` // raw interaction query, clicked only
	Timestamp time.Time `json:"timestamp"`
}

// Store defines persistence operations for interaction events.
type Store interface {
	// Record appends an event. ID and Timestamp are filled if unset.
	Record(event Event) error
	// List returns recent events, newest first. Limit of 0 returns all.
	List(limit int) ([]Event, error)
}

// Dispatcher receives interaction events raised by a message controller.
// For a recognized interaction, Clicked is always raised before Viewed.
type Dispatcher interface {
	Clicked(messageID, queryID string)
	Viewed(messageID string)
}

// NewID returns a unique event ID.
func NewID() string {
	return "evt_" + uuid.NewString()
}

// StoreDispatcher persists dispatched events to a Store. Persistence
// failures are logged, never surfaced: analytics must not block display.
type StoreDispatcher struct {
	store Store
	log   zerolog.Logger
}

// NewStoreDispatcher creates a dispatcher writing to the given store.
func NewStoreDispatcher(store Store, log zerolog.Logger) *StoreDispatcher {
	return &StoreDispatcher{store: store, log: log}
}

func (d *StoreDispatcher) Clicked(messageID, queryID string) {
	d.record(Event{Kind: KindClicked, MessageID: messageID, QueryID: queryID})
}

func (d *StoreDispatcher) Viewed(messageID string) {
	d.record(Event{Kind: KindViewed, MessageID: messageID})
}

func (d *StoreDispatcher) record(e Event) {
	if err := d.store.Record(e); err != nil {
		d.log.Warn().
			Err(err).
			Str("message_id", e.MessageID).
			Str("kind", string(e.Kind)).
			Msg("failed to record interaction event")
	}
}

// LogDispatcher emits dispatched events to the logger only.
type LogDispatcher struct {
	log zerolog.Logger
}

// NewLogDispatcher creates a log-only dispatcher.
func NewLogDispatcher(log zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Clicked(messageID, queryID string) {
	d.log.Info().Str("message_id", messageID).Str("query_id", queryID).Msg("clicked")
}

func (d *LogDispatcher) Viewed(messageID string) {
	d.log.Info().Str("message_id", messageID).Msg("viewed")
}
