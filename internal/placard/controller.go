// Package placard orchestrates the rendering of cached HTML in-app messages.
package placard

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/placardhq/placard/internal/core/assets"
	"github.com/placardhq/placard/internal/core/events"
	"github.com/placardhq/placard/internal/core/expand"
	"github.com/placardhq/placard/internal/core/message"
)

// ControllerOptions carries the collaborators and settings for one message
// controller. Cache, Resolver, Surface and Dispatcher are required; Listener
// is optional.
type ControllerOptions struct {
	// Namespace is the cache key prefix for HTML bodies.
	Namespace string
	// Delimiter and Segments describe the interaction query schema.
	Delimiter string
	Segments  int

	Cache      assets.Cache
	Resolver   *assets.Resolver
	Surface    Surface
	Dispatcher events.Dispatcher
	Listener   Listener
	Log        zerolog.Logger
}

// Controller drives a single message through its lifecycle:
//
//	parsed -> ready -> displayed -> {interacted, dismissed}
//
// Construction fails only when the payload has no usable html field; every
// later failure degrades gracefully and is observable only through logging.
// A controller is mutated by exactly one logical owner; it does no internal
// locking.
type Controller struct {
	desc  message.Descriptor
	state message.State
	opts  ControllerOptions
	log   zerolog.Logger

	// usedLocalAssets is set when any group resolved via the local pass.
	usedLocalAssets bool
}

// NewController parses the raw message payload into a controller in the
// parsed state. Returns message.ErrMissingHTML when no message can exist.
func NewController(detail map[string]any, opts ControllerOptions) (*Controller, error) {
	desc, err := message.ParsePayload(detail)
	if err != nil {
		opts.Log.Error().Err(err).Msg("message payload rejected")
		return nil, err
	}

	return &Controller{
		desc:  desc,
		state: message.StateParsed,
		opts:  opts,
		log:   opts.Log.With().Str("message_id", desc.ID).Logger(),
	}, nil
}

// Descriptor returns the parsed, immutable message descriptor.
func (c *Controller) Descriptor() message.Descriptor {
	return c.desc
}

// State returns the current lifecycle state.
func (c *Controller) State() message.State {
	return c.state
}

// UsedLocalAssets reports whether any asset group resolved to a bundled
// local resource during Show.
func (c *Controller) UsedLocalAssets() bool {
	return c.usedLocalAssets
}

// Show loads the cached HTML body, resolves the asset groups, expands the
// resolved tokens, and hands the result to the display surface.
//
// Returns false when the message could not be displayed: wrong state, cache
// miss, or undecodable body. The controller then stays in its current state
// and nothing is shown. Cache reads are blocking I/O; callers decide whether
// to run Show off a latency-sensitive goroutine.
func (c *Controller) Show(ctx context.Context) bool {
	if c.state != message.StateParsed {
		c.log.Debug().Str("state", string(c.state)).Msg("show ignored in current state")
		return false
	}

	key := assets.HTMLKey(c.opts.Namespace, c.desc.HTMLKey)
	data, err := c.opts.Cache.Get(ctx, key)
	if err != nil {
		c.log.Trace().Err(err).Str("key", key).Msg("html body not available")
		return false
	}
	if !utf8.Valid(data) {
		c.log.Trace().Str("key", key).Msg("cached html is not valid utf-8")
		return false
	}

	html := string(data)
	c.state = message.StateReady

	if len(c.desc.AssetGroups) > 0 {
		tokens := make(message.TokenMap, len(c.desc.AssetGroups))
		for _, group := range c.desc.AssetGroups {
			res, ok := c.opts.Resolver.Resolve(ctx, group, c.desc.ID)
			if !ok {
				continue
			}
			tokens[group.Token()] = res.Value
			if res.Local {
				c.usedLocalAssets = true
			}
		}
		html = expand.Expand(html, tokens)
	}

	opts := DisplayOptions{MessageID: c.desc.ID, LocalAssets: c.usedLocalAssets}
	c.opts.Surface.Display(html, opts, surfaceListener{c})
	c.state = message.StateDisplayed

	if c.opts.Listener != nil {
		c.opts.Listener.OnShow()
	}

	c.log.Debug().Str("key", key).Bool("local_assets", c.usedLocalAssets).Msg("message displayed")
	return true
}

// ProcessInteraction handles one interaction query reported by the display
// surface. A recognized tag moves the message to the interacted state and
// raises clicked then viewed on the dispatcher, in that order. Anything else
// is a logged no-op.
func (c *Controller) ProcessInteraction(query message.InteractionQuery) bool {
	if c.state.Terminal() {
		c.log.Debug().Str("state", string(c.state)).Msg("interaction ignored in terminal state")
		return false
	}

	tag, err := message.ParseTag(query.ID, c.opts.Delimiter, c.opts.Segments)
	if err != nil {
		c.log.Debug().Err(err).Str("query_id", query.ID).Msg("interaction ignored")
		return false
	}

	c.opts.Dispatcher.Clicked(c.desc.ID, query.ID)
	c.opts.Dispatcher.Viewed(c.desc.ID)
	c.state = message.StateInteracted

	if c.opts.Listener != nil {
		c.opts.Listener.OnInteraction(query)
	}

	c.log.Debug().Str("query_id", query.ID).Str("tag", string(tag)).Msg("interaction handled")
	return true
}

// Dismiss moves the message to its dismissed terminal state.
func (c *Controller) Dismiss() {
	if c.state.Terminal() {
		return
	}
	c.state = message.StateDismissed

	if c.opts.Listener != nil {
		c.opts.Listener.OnDismiss()
	}

	c.log.Debug().Msg("message dismissed")
}

// surfaceListener routes surface callbacks back into the controller and
// forwards them to the injected listener.
type surfaceListener struct {
	c *Controller
}

func (l surfaceListener) OnShow() {}

func (l surfaceListener) OnDismiss() {
	l.c.Dismiss()
}

func (l surfaceListener) OnInteraction(query message.InteractionQuery) {
	l.c.ProcessInteraction(query)
}
