package placard

import "github.com/placardhq/placard/internal/core/message"

// Listener receives lifecycle callbacks for a displayed message. Ownership
// of the listener stays with the caller; the controller holds a non-owning
// reference and tolerates a nil listener.
type Listener interface {
	OnShow()
	OnDismiss()
	OnInteraction(query message.InteractionQuery)
}

// DisplayOptions carries per-message display settings alongside the HTML.
type DisplayOptions struct {
	MessageID string
	// LocalAssets is true when the HTML references bundled local image
	// resources that the surface must make available.
	LocalAssets bool
}

// Surface is the external fullscreen display collaborator. It renders the
// final HTML and reports user interaction back through the listener.
type Surface interface {
	Display(html string, opts DisplayOptions, listener Listener)
}

// NopSurface discards displayed content.
type NopSurface struct{}

func (NopSurface) Display(string, DisplayOptions, Listener) {}

// CaptureSurface records the most recent display call. Used by Render and
// in tests.
type CaptureSurface struct {
	HTML     string
	Opts     DisplayOptions
	Listener Listener
	Shown    bool
}

func (s *CaptureSurface) Display(html string, opts DisplayOptions, listener Listener) {
	s.HTML = html
	s.Opts = opts
	s.Listener = listener
	s.Shown = true
}
