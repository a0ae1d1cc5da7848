package assets

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placardhq/placard/internal/core/message"
)

// mockCache implements Cache for testing.
type mockCache struct {
	entries map[string][]byte
	err     error
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func newTestResolver(cache Cache) *Resolver {
	return NewResolver(cache, NewClassifier(nil), zerolog.New(io.Discard))
}

func TestResolver_RemoteHit(t *testing.T) {
	cache := &mockCache{entries: map[string][]byte{
		"msg-1/https://cdn.example.com/a.png": []byte("cached-a"),
	}}
	r := newTestResolver(cache)

	group := message.AssetGroup{"https://cdn.example.com/a.png", "fallback.png"}
	res, ok := r.Resolve(context.Background(), group, "msg-1")

	require.True(t, ok)
	assert.Equal(t, "cached-a", res.Value)
	assert.False(t, res.Local)
}

func TestResolver_FirstRemoteHitWins(t *testing.T) {
	cache := &mockCache{entries: map[string][]byte{
		"msg-1/https://cdn.example.com/a.png": []byte("first"),
		"msg-1/https://cdn.example.com/b.png": []byte("second"),
	}}
	r := newTestResolver(cache)

	group := message.AssetGroup{
		"https://cdn.example.com/a.png",
		"https://cdn.example.com/b.png",
	}
	res, ok := r.Resolve(context.Background(), group, "msg-1")

	require.True(t, ok)
	assert.Equal(t, "first", res.Value)
}

func TestResolver_LocalFallback(t *testing.T) {
	r := newTestResolver(&mockCache{})

	group := message.AssetGroup{"https://cdn.example.com/a.png", "fallback.png"}
	res, ok := r.Resolve(context.Background(), group, "msg-1")

	require.True(t, ok)
	assert.Equal(t, "fallback.png", res.Value)
	assert.True(t, res.Local)
}

func TestResolver_RemotePreferredOverEarlierLocal(t *testing.T) {
	// A cached remote candidate wins even when a local candidate appears
	// earlier in the group: the remote pass runs to completion first.
	cache := &mockCache{entries: map[string][]byte{
		"msg-1/https://cdn.example.com/late.png": []byte("remote"),
	}}
	r := newTestResolver(cache)

	group := message.AssetGroup{"early.png", "https://cdn.example.com/late.png"}
	res, ok := r.Resolve(context.Background(), group, "msg-1")

	require.True(t, ok)
	assert.Equal(t, "remote", res.Value)
	assert.False(t, res.Local)
}

func TestResolver_NoCandidateResolves(t *testing.T) {
	r := newTestResolver(&mockCache{})

	tests := []struct {
		name  string
		group message.AssetGroup
	}{
		{name: "empty group", group: message.AssetGroup{}},
		{name: "all candidates fail classification", group: message.AssetGroup{"ftp://x/a.png", "not a url", "dir/a.png"}},
		{name: "remote candidates uncached, no local", group: message.AssetGroup{"https://cdn.example.com/a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.Resolve(context.Background(), tt.group, "msg-1")
			assert.False(t, ok)
		})
	}
}

func TestResolver_InvalidUTF8Skipped(t *testing.T) {
	cache := &mockCache{entries: map[string][]byte{
		"msg-1/https://cdn.example.com/a.png": {0xff, 0xfe, 0xfd},
	}}
	r := newTestResolver(cache)

	group := message.AssetGroup{"https://cdn.example.com/a.png", "fallback.png"}
	res, ok := r.Resolve(context.Background(), group, "msg-1")

	require.True(t, ok)
	assert.Equal(t, "fallback.png", res.Value, "undecodable blob falls through to local pass")
	assert.True(t, res.Local)
}

func TestResolver_CacheErrorDegrades(t *testing.T) {
	r := newTestResolver(&mockCache{err: errors.New("disk on fire")})

	group := message.AssetGroup{"https://cdn.example.com/a.png", "fallback.png"}
	res, ok := r.Resolve(context.Background(), group, "msg-1")

	require.True(t, ok, "read failure degrades to the local pass")
	assert.Equal(t, "fallback.png", res.Value)
}
