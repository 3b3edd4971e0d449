package loader

import (
	"runtime"
	"slices"
	"sync"
)

// Provider names.
const (
	ProviderEGL = "egl"
	ProviderGLX = "glx"
	ProviderCGL = "cgl"
	ProviderWGL = "wgl"
)

// Provider describes how to reach GL on one windowing system: which shared
// libraries to open and which function returns context-dependent entry
// points.
type Provider struct {
	// Name identifies the provider (e.g., "egl", "wgl").
	Name string

	// GOOS lists the operating systems the provider exists on.
	GOOS []string

	// Libraries are opened in order. Every library is searched for GL
	// symbols; GetProcAddress is looked up in them too.
	Libraries []string

	// GetProcAddress names the provider's entry point lookup, such as
	// "eglGetProcAddress". Empty if the platform has none.
	GetProcAddress string

	// InvalidProcs are values GetProcAddress returns for symbols it does
	// not have besides 0.
	InvalidProcs []uintptr
}

// supports reports whether p exists on goos.
func (p Provider) supports(goos string) bool {
	return slices.Contains(p.GOOS, goos)
}

func (p Provider) invalid(proc uintptr) bool {
	return proc == 0 || slices.Contains(p.InvalidProcs, proc)
}

// registry holds registered providers.
var (
	registryMu sync.RWMutex
	providers  = make(map[string]Provider)
	// Priority order for provider selection (first that opens wins).
	// EGL serves both GL and GLES and is preferred over GLX on Linux.
	providerPriority = []string{ProviderEGL, ProviderGLX, ProviderCGL, ProviderWGL}
)

func init() {
	Register(Provider{
		Name:           ProviderEGL,
		GOOS:           []string{"linux"},
		Libraries:      []string{"libEGL.so.1", "libGLESv2.so.2"},
		GetProcAddress: "eglGetProcAddress",
	})
	Register(Provider{
		Name:           ProviderGLX,
		GOOS:           []string{"linux"},
		Libraries:      []string{"libGL.so.1"},
		GetProcAddress: "glXGetProcAddressARB",
	})
	Register(Provider{
		Name:      ProviderCGL,
		GOOS:      []string{"darwin"},
		Libraries: []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"},
	})
	Register(Provider{
		Name:           ProviderWGL,
		GOOS:           []string{"windows"},
		Libraries:      []string{"opengl32.dll"},
		GetProcAddress: "wglGetProcAddress",
		// wglGetProcAddress reports failure with small integers or -1 on
		// some drivers.
		InvalidProcs: []uintptr{1, 2, 3, ^uintptr(0)},
	})
}

// Register registers a provider under p.Name.
// If a provider with the same name is already registered, it will be replaced.
func Register(p Provider) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[p.Name] = p
}

// Unregister removes a provider from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(providers, name)
}

// Available returns the names of registered providers that exist on the
// running operating system, in priority order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var names []string
	for _, p := range candidatesLocked(runtime.GOOS) {
		names = append(names, p.Name)
	}
	return names
}

// Get returns the provider registered under name.
func Get(name string) (Provider, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := providers[name]
	return p, ok
}

// candidates returns the providers for goos in priority order, followed by
// any other registered providers for goos sorted by name.
func candidates(goos string) []Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return candidatesLocked(goos)
}

func candidatesLocked(goos string) []Provider {
	var out []Provider
	for _, name := range providerPriority {
		if p, ok := providers[name]; ok && p.supports(goos) {
			out = append(out, p)
		}
	}

	// Fallback: providers registered outside the priority list
	var extra []string
	for name, p := range providers {
		if !slices.Contains(providerPriority, name) && p.supports(goos) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	for _, name := range extra {
		out = append(out, providers[name])
	}
	return out
}
