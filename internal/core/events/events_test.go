package events

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	recorded []Event
	err      error
}

func (m *mockStore) Record(event Event) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, event)
	return nil
}

func (m *mockStore) List(limit int) ([]Event, error) {
	return m.recorded, nil
}

func TestStoreDispatcher_RecordsEvents(t *testing.T) {
	store := &mockStore{}
	d := NewStoreDispatcher(store, zerolog.New(io.Discard))

	d.Clicked("msg_1", "h1,86f,3")
	d.Viewed("msg_1")

	require.Len(t, store.recorded, 2)

	clicked := store.recorded[0]
	assert.Equal(t, KindClicked, clicked.Kind)
	assert.Equal(t, "msg_1", clicked.MessageID)
	assert.Equal(t, "h1,86f,3", clicked.QueryID)

	viewed := store.recorded[1]
	assert.Equal(t, KindViewed, viewed.Kind)
	assert.Equal(t, "msg_1", viewed.MessageID)
	assert.Empty(t, viewed.QueryID)
}

func TestStoreDispatcher_StoreFailureDoesNotPanic(t *testing.T) {
	store := &mockStore{err: errors.New("disk full")}
	d := NewStoreDispatcher(store, zerolog.New(io.Discard))

	assert.NotPanics(t, func() {
		d.Clicked("msg_1", "h1,86f,3")
		d.Viewed("msg_1")
	})
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "evt_"))
	assert.NotEqual(t, id, NewID())
}
