package assets

import (
	"net/url"
	"path"
	"strings"
)

// DefaultExtensions lists the file extensions treated as downloadable asset
// types when no override is configured.
var DefaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".css", ".js", ".html",
}

// Classifier decides whether a candidate string names a downloadable asset,
// either as a remote URL or as a bundled local resource.
type Classifier struct {
	exts map[string]struct{}
}

// NewClassifier creates a classifier for the given extension set. An empty
// set uses DefaultExtensions. Extensions are matched case-insensitively and
// may be given with or without the leading dot.
func NewClassifier(exts []string) *Classifier {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	m := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = struct{}{}
	}

	return &Classifier{exts: m}
}

// IsRemote returns true if the candidate is a well-formed absolute http(s)
// URL whose path names a downloadable asset type.
func (c *Classifier) IsRemote(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	return c.downloadable(u.Path)
}

// IsLocal returns true if the candidate is a bare bundled-asset name with a
// downloadable extension. Names with URL schemes or path separators are not
// bundled resources.
func (c *Classifier) IsLocal(candidate string) bool {
	if strings.Contains(candidate, "://") || strings.ContainsAny(candidate, `/\`) {
		return false
	}
	return c.downloadable(candidate)
}

func (c *Classifier) downloadable(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return false
	}
	_, ok := c.exts[ext]
	return ok
}
