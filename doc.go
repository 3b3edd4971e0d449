// Package gldispatch exposes OpenGL and OpenGL ES through a stable,
// version-agnostic call surface.
//
// # Overview
//
// A logical command such as ActiveTexture may be implemented by several
// native symbols: the core glActiveTexture, glActiveTextureARB, and so on.
// Which one works depends on the context that is current. gldispatch probes
// the context once, binds every command to the best symbol the context
// offers, and dispatches calls through that binding.
//
// # Quick Start
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//
//	// Make a native context current, then:
//	p, err := loader.Open()
//	c, err := gldispatch.New(p)
//	fns := gl.New(c)
//	err = fns.ClearColor(0, 0, 0, 1)
//
// # Architecture
//
// The module is organized into:
//   - capability: probing the current context (API, version, extensions)
//   - schema: declarative command descriptors and the built-in catalog
//   - slot: the resolver and the per-context slot table
//   - gldispatch: Context, dispatch middleware and the debug validator
//   - gl: typed methods, one per catalog command
//   - loader: native library loading on top of purego and x/sys/windows
//
// # Threads
//
// Native GL contexts are current per OS thread. A Context must be created
// and used by a goroutine that called runtime.LockOSThread and made the
// native context current. Contexts are not safe for concurrent use; create
// one per thread.
//
// # Errors
//
// Dispatching a command that could not be bound returns a
// *CommandUnavailableError. With validation enabled, native error states
// are attached to the Result as a *NativeFault; the call's value is kept.
package gldispatch
