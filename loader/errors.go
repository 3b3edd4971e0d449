package loader

import "errors"

// Sentinel errors for native loading.
var (
	// ErrUnsupportedPlatform is returned on operating systems without a
	// dynamic loading path.
	ErrUnsupportedPlatform = errors.New("loader: unsupported platform")

	// ErrNoProvider is returned when no registered provider exists for
	// the running operating system, or the requested one is unknown.
	ErrNoProvider = errors.New("loader: no provider available")

	// ErrLibraryNotFound is returned when a provider's libraries cannot
	// be opened.
	ErrLibraryNotFound = errors.New("loader: library not found")

	// ErrSymbolNotFound is returned when a symbol needed for a context
	// query cannot be located.
	ErrSymbolNotFound = errors.New("loader: symbol not found")

	// ErrNoContext is returned when a context query yields nothing,
	// which happens when no context is current on the calling thread.
	ErrNoContext = errors.New("loader: no current context")
)
