package message

import (
	"errors"
	"strings"
)

// Tag identifies an interactive element in a message's HTML body.
type Tag string

const (
	TagButton1 Tag = "button1"
	TagButton2 Tag = "button2"
	TagButtonX Tag = "buttonx"
)

// tagSegment is the zero-indexed query segment carrying the tag identifier.
const tagSegment = 2

// knownTags is the closed set of recognized tag identifiers.
var knownTags = map[string]Tag{
	"1": TagButton1,
	"2": TagButton2,
	"3": TagButtonX,
}

// InteractionQuery is a single interaction event reported by the display
// surface. Ephemeral: constructed and consumed per event, never stored.
type InteractionQuery struct {
	ID string `json:"id"`
}

// Sentinel errors for interaction query parsing.
var (
	ErrMalformedQuery = errors.New("interaction query has wrong segment count")
	ErrUnknownTag     = errors.New("interaction query tag not recognized")
)

// ParseTag extracts the tag from a query ID composed of delimiter-separated
// segments. The ID must split into exactly the expected segment count, and
// the third segment must name a recognized tag.
func ParseTag(id, delimiter string, segments int) (Tag, error) {
	parts := strings.Split(id, delimiter)
	if len(parts) != segments {
		return "", ErrMalformedQuery
	}

	tag, ok := knownTags[parts[tagSegment]]
	if !ok {
		return "", ErrUnknownTag
	}

	return tag, nil
}
