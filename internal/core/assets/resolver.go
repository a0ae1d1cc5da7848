package assets

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/placardhq/placard/internal/core/message"
)

// Resolution is the outcome of resolving one asset group.
type Resolution struct {
	// Value is the replacement substituted for the group's token.
	Value string
	// Local is true when Value names a bundled local asset, meaning local
	// image resources must be made available to the display surface.
	Local bool
}

// Resolver picks the best available replacement for an asset group: cached
// remote assets first, bundled local names as fallback.
type Resolver struct {
	cache    Cache
	classify *Classifier
	log      zerolog.Logger
}

// NewResolver creates a resolver reading from the given cache.
func NewResolver(cache Cache, classify *Classifier, log zerolog.Logger) *Resolver {
	return &Resolver{cache: cache, classify: classify, log: log}
}

// Resolve scans the group twice in candidate order: once for remote
// candidates with a cached download, once for local bundled fallbacks. The
// token element itself participates as a candidate in both passes. The first
// hit wins.
//
// ok is false when no candidate yields a value; the caller leaves the
// original token untouched in the HTML. That is degradation, not an error.
func (r *Resolver) Resolve(ctx context.Context, group message.AssetGroup, messageID string) (Resolution, bool) {
	for _, candidate := range group {
		if !r.classify.IsRemote(candidate) {
			continue
		}

		key := AssetKey(messageID, candidate)
		data, err := r.cache.Get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				r.log.Trace().Str("key", key).Msg("remote candidate not cached")
			} else {
				r.log.Trace().Err(err).Str("key", key).Msg("cache read failed")
			}
			continue
		}

		if !utf8.Valid(data) {
			r.log.Trace().Str("key", key).Msg("cached asset is not valid utf-8")
			continue
		}

		return Resolution{Value: string(data)}, true
	}

	for _, candidate := range group {
		if r.classify.IsLocal(candidate) {
			return Resolution{Value: candidate, Local: true}, true
		}
	}

	r.log.Trace().
		Str("message_id", messageID).
		Str("token", group.Token()).
		Msg("asset group unresolved")

	return Resolution{}, false
}
