// Package message defines the in-app message domain types.
package message

// State represents the lifecycle state of a message.
type State string

const (
	StateParsed     State = "parsed"
	StateReady      State = "ready"
	StateDisplayed  State = "displayed"
	StateInteracted State = "interacted"
	StateDismissed  State = "dismissed"
)

// Terminal returns true if no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateInteracted || s == StateDismissed
}

// AssetGroup is an ordered replacement group. Element 0 is the token, the
// literal substring to replace in the HTML body. Elements 1..N are candidates
// in descending priority: remote URLs first, bundled local names last. The
// token itself also participates as a candidate during resolution. Groups
// never contain empty strings.
type AssetGroup []string

// Token returns the literal substring to replace in the HTML body.
func (g AssetGroup) Token() string {
	if len(g) == 0 {
		return ""
	}
	return g[0]
}

// Descriptor is the validated, immutable representation of a message: the
// cache key of its HTML body plus its optional asset replacement groups.
// It is created once by ParsePayload and never mutated afterwards.
type Descriptor struct {
	ID          string
	HTMLKey     string
	AssetGroups []AssetGroup
}

// TokenMap maps tokens to their resolved replacement values. Built fresh per
// render from the asset groups that resolved; unresolved groups are absent.
type TokenMap map[string]string
