package placard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/placardhq/placard/internal/core/assets"
	"github.com/placardhq/placard/internal/core/config"
	"github.com/placardhq/placard/internal/core/events"
	"github.com/placardhq/placard/internal/core/message"
)

// Service wires the rendering pipeline for CLI use: one configured resolver
// and dispatcher shared across message controllers.
type Service struct {
	cfg        *config.Config
	cache      assets.Cache
	resolver   *assets.Resolver
	dispatcher events.Dispatcher
	log        zerolog.Logger
}

// New creates a new Service.
func New(cfg *config.Config, cache assets.Cache, dispatcher events.Dispatcher, log zerolog.Logger) *Service {
	classifier := assets.NewClassifier(cfg.AssetExtensions)
	resolverLog := log.With().Str("component", "resolver").Logger()

	return &Service{
		cfg:        cfg,
		cache:      cache,
		resolver:   assets.NewResolver(cache, classifier, resolverLog),
		dispatcher: dispatcher,
		log:        log,
	}
}

// controllerOptions builds the per-message options with the given surface.
func (s *Service) controllerOptions(surface Surface) ControllerOptions {
	return ControllerOptions{
		Namespace:  s.cfg.AssetNamespace,
		Delimiter:  s.cfg.Interaction.Delimiter,
		Segments:   s.cfg.Interaction.Segments,
		Cache:      s.cache,
		Resolver:   s.resolver,
		Surface:    surface,
		Dispatcher: s.dispatcher,
		Log:        s.log.With().Str("component", "controller").Logger(),
	}
}

// Render parses a raw payload and shows it against the cache, returning the
// final HTML handed to the display surface. Unlike the controller, which
// degrades silently, Render reports failure to its CLI caller.
func (s *Service) Render(ctx context.Context, detail map[string]any) (string, error) {
	capture := &CaptureSurface{}

	ctrl, err := NewController(detail, s.controllerOptions(capture))
	if err != nil {
		return "", fmt.Errorf("parse payload: %w", err)
	}

	if !ctrl.Show(ctx) {
		return "", fmt.Errorf("message %s was not displayed (html body %q not cached?)",
			ctrl.Descriptor().ID, ctrl.Descriptor().HTMLKey)
	}

	return capture.HTML, nil
}

// Interact parses a payload and processes a single interaction query against
// it, as the display surface would report it. Returns true when the query
// carried a recognized tag and events were dispatched.
func (s *Service) Interact(_ context.Context, detail map[string]any, queryID string) (bool, error) {
	ctrl, err := NewController(detail, s.controllerOptions(NopSurface{}))
	if err != nil {
		return false, fmt.Errorf("parse payload: %w", err)
	}

	return ctrl.ProcessInteraction(message.InteractionQuery{ID: queryID}), nil
}
