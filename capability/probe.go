// Package capability reports what the currently active native GL context
// supports: its API flavor, version and enabled extensions.
package capability

import (
	"errors"
	"fmt"
)

// ErrInvalidContextState is returned when no context is current on the
// calling thread or the context handle cannot be queried.
var ErrInvalidContextState = errors.New("capability: invalid context state")

// NativeContext is the query surface of the context current on the calling
// thread.
type NativeContext interface {
	// CurrentVersion returns the raw GL_VERSION string.
	CurrentVersion() (string, error)

	// EnabledExtensions returns the names of the enabled extensions.
	EnabledExtensions() ([]string, error)
}

// Probe queries ctx and returns a fresh capability set. Nothing is cached:
// every call asks the context again.
//
// ctx must be current on the calling thread. A nil context, a failed query
// or an unparsable version yields an error wrapping ErrInvalidContextState,
// never an empty set.
func Probe(ctx NativeContext) (*Set, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: nil context", ErrInvalidContextState)
	}
	raw, err := ctx.CurrentVersion()
	if err != nil {
		return nil, fmt.Errorf("%w: version query: %w", ErrInvalidContextState, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: empty version string", ErrInvalidContextState)
	}
	ver, api, err := ParseVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContextState, err)
	}
	exts, err := ctx.EnabledExtensions()
	if err != nil {
		return nil, fmt.Errorf("%w: extension query: %w", ErrInvalidContextState, err)
	}
	s := NewSet(api, ver, exts)
	s.Raw = raw
	return s, nil
}
