package placard

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placardhq/placard/internal/core/config"
	"github.com/placardhq/placard/internal/core/message"
)

func newTestService(t *testing.T, cache *mockCache, dispatcher *mockDispatcher) *Service {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	return New(&cfg, cache, dispatcher, zerolog.New(io.Discard))
}

func TestService_Render(t *testing.T) {
	cache := &mockCache{entries: map[string][]byte{
		"rules_assets/msg1.html": []byte("<html>Hi</html>"),
	}}
	svc := newTestService(t, cache, &mockDispatcher{})

	html, err := svc.Render(context.Background(), map[string]any{"html": "msg1.html"})
	require.NoError(t, err)
	assert.Equal(t, "<html>Hi</html>", html)
}

func TestService_RenderMissingHTMLField(t *testing.T) {
	svc := newTestService(t, &mockCache{}, &mockDispatcher{})

	_, err := svc.Render(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, message.ErrMissingHTML)
}

func TestService_RenderUncachedBody(t *testing.T) {
	svc := newTestService(t, &mockCache{}, &mockDispatcher{})

	_, err := svc.Render(context.Background(), map[string]any{"html": "msg1.html"})
	assert.Error(t, err)
}

func TestService_Interact(t *testing.T) {
	cache := &mockCache{entries: map[string][]byte{
		"rules_assets/m.html": []byte("<html>Hi</html>"),
	}}
	dispatcher := &mockDispatcher{}
	svc := newTestService(t, cache, dispatcher)

	handled, err := svc.Interact(context.Background(), map[string]any{"html": "m.html"}, "h1,86f,3")
	require.NoError(t, err)

	assert.True(t, handled)
	assert.Equal(t, []string{"clicked:h1,86f,3", "viewed"}, dispatcher.calls)
}

func TestService_InteractMalformedQuery(t *testing.T) {
	dispatcher := &mockDispatcher{}
	svc := newTestService(t, &mockCache{}, dispatcher)

	handled, err := svc.Interact(context.Background(), map[string]any{"html": "m.html"}, "bad")
	require.NoError(t, err)

	assert.False(t, handled)
	assert.Empty(t, dispatcher.calls)
}
