package message

import (
	"errors"

	"github.com/google/uuid"
)

// Payload keys recognized by ParsePayload.
const (
	KeyHTML         = "html"
	KeyRemoteAssets = "remoteAssets"
)

// ErrMissingHTML is returned when the payload has no usable html field.
// This is the only fatal parse condition: without it no message exists.
var ErrMissingHTML = errors.New("payload missing required html field")

// ParsePayload validates a raw consequence payload into a Descriptor.
//
// The html field is required and must be a non-empty string. The
// remoteAssets field is an optional sequence of string sequences; empty
// groups are skipped entirely and empty candidate strings are dropped,
// preserving encounter order. No other validation happens at parse time;
// malformed candidates are tolerated and classified lazily at render time.
func ParsePayload(detail map[string]any) (Descriptor, error) {
	html, _ := detail[KeyHTML].(string)
	if html == "" {
		return Descriptor{}, ErrMissingHTML
	}

	d := Descriptor{
		ID:      "msg_" + uuid.NewString(),
		HTMLKey: html,
	}

	raw, ok := detail[KeyRemoteAssets].([]any)
	if !ok {
		return d, nil
	}

	for _, item := range raw {
		group := coerceGroup(item)
		if len(group) == 0 {
			continue
		}
		d.AssetGroups = append(d.AssetGroups, group)
	}

	return d, nil
}

// coerceGroup copies the non-empty strings of one raw group into a new
// AssetGroup. Handles both []any (decoded JSON) and []string inputs.
func coerceGroup(item any) AssetGroup {
	var group AssetGroup

	switch v := item.(type) {
	case []string:
		for _, s := range v {
			if s != "" {
				group = append(group, s)
			}
		}
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				group = append(group, s)
			}
		}
	}

	return group
}
