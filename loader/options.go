package loader

import "github.com/gogpu/gldispatch"

// Option configures Open.
type Option func(*options)

type options struct {
	provider  string
	libraries []string
	open      func(name string) (library, error)
	call      func(p uintptr, args ...uintptr) uintptr
	float     func(name string, p uintptr) func(args []uintptr) uintptr
	goos      string
}

// WithProvider restricts Open to the named provider.
func WithProvider(name string) Option {
	return func(o *options) {
		o.provider = name
	}
}

// WithLibraries replaces the provider's library list. Unless WithProvider
// is also given, the provider is the first whose lookup function the
// libraries export.
// An empty list keeps the provider's defaults.
func WithLibraries(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.libraries = names
		}
	}
}

// WithConfig applies the loader-related fields of cfg.
func WithConfig(cfg gldispatch.Config) Option {
	return WithLibraries(cfg.Libraries...)
}

// withNative swaps the dynamic loader for tests.
func withNative(goos string, open func(string) (library, error), call func(uintptr, ...uintptr) uintptr) Option {
	return func(o *options) {
		o.goos = goos
		o.open = open
		o.call = call
		o.float = nil
	}
}
