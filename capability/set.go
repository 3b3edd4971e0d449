package capability

import (
	"sort"
	"strings"
)

// Set is the snapshot of what the active context supports: its API,
// version and enabled extensions. A Set is read-only once built.
type Set struct {
	API     API
	Version Version

	// Raw is the unparsed GL_VERSION string, kept for diagnostics.
	Raw string

	extensions map[string]struct{}
}

// NewSet builds a Set. Empty and duplicate extension names are dropped.
func NewSet(api API, version Version, extensions []string) *Set {
	s := &Set{
		API:        api,
		Version:    version,
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, e := range extensions {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		s.extensions[e] = struct{}{}
	}
	return s
}

// HasExtension reports whether the named extension is enabled.
func (s *Set) HasExtension(name string) bool {
	_, ok := s.extensions[name]
	return ok
}

// Extensions returns the enabled extension names in sorted order.
func (s *Set) Extensions() []string {
	names := make([]string, 0, len(s.extensions))
	for e := range s.extensions {
		names = append(names, e)
	}
	sort.Strings(names)
	return names
}

// Enables reports whether f is active in this set.
func (s *Set) Enables(f Feature) bool {
	if f.IsExtension() {
		return s.HasExtension(f.Extension)
	}
	var since Version
	switch s.API {
	case APIGL:
		since = f.GL
	case APIGLES:
		since = f.GLES
	}
	return !since.IsZero() && s.Version.AtLeast(since)
}

// Without returns a copy of s with the named extensions removed.
func (s *Set) Without(names ...string) *Set {
	masked := make(map[string]struct{}, len(names))
	for _, n := range names {
		masked[strings.TrimSpace(n)] = struct{}{}
	}
	exts := make([]string, 0, len(s.extensions))
	for e := range s.extensions {
		if _, drop := masked[e]; !drop {
			exts = append(exts, e)
		}
	}
	c := NewSet(s.API, s.Version, exts)
	c.Raw = s.Raw
	return c
}

// Clamp returns a copy of s whose version is at most l.Version when s is
// of API l.API. Sets of the other API and the zero limit are unchanged.
func (s *Set) Clamp(l Limit) *Set {
	c := NewSet(s.API, s.Version, s.Extensions())
	c.Raw = s.Raw
	if !l.IsZero() && l.API == s.API && !l.Version.AtLeast(s.Version) {
		c.Version = l.Version
	}
	return c
}
