// Package loader opens the system OpenGL libraries and exposes them as a
// gldispatch.Platform.
//
// A provider names the libraries of one windowing system and its entry
// point lookup (eglGetProcAddress, glXGetProcAddressARB, wglGetProcAddress).
// Open tries the providers registered for the running OS in priority order
// (EGL, GLX, CGL, WGL) and keeps the first whose libraries load:
//
//	runtime.LockOSThread()
//	// make a context current with your windowing library
//	p, err := loader.Open()
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//	c, err := gldispatch.New(p)
//
// Symbols are looked up in the libraries' exports first, then through the
// provider's lookup function, whose results may be specific to the current
// context.
//
// Darwin and Linux use purego and need no cgo. Windows uses
// golang.org/x/sys/windows.
package loader
