//go:build darwin || linux

package loader

import (
	"math"

	"github.com/ebitengine/purego"
)

type dlLibrary struct {
	name   string
	handle uintptr
}

func openLibrary(name string) (library, error) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	return &dlLibrary{name: name, handle: h}, nil
}

func (l *dlLibrary) Name() string { return l.name }

func (l *dlLibrary) Symbol(name string) uintptr {
	p, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0
	}
	return p
}

func (l *dlLibrary) Close() error { return purego.Dlclose(l.handle) }

func callProc(p uintptr, args ...uintptr) uintptr {
	r, _, _ := purego.SyscallN(p, args...)
	return r
}

func bitsf(u uintptr) float32 { return math.Float32frombits(uint32(u)) }

// floatCall binds symbols whose parameters are floats. SyscallN passes
// every argument in integer registers; the C ABIs purego targets expect
// floats in vector registers.
func floatCall(name string, p uintptr) func(args []uintptr) uintptr {
	switch name {
	case "glClearColor":
		var fn func(r, g, b, a float32)
		purego.RegisterFunc(&fn, p)
		return func(args []uintptr) uintptr {
			fn(bitsf(args[0]), bitsf(args[1]), bitsf(args[2]), bitsf(args[3]))
			return 0
		}
	case "glClearDepthf", "glClearDepthfOES":
		var fn func(d float32)
		purego.RegisterFunc(&fn, p)
		return func(args []uintptr) uintptr {
			fn(bitsf(args[0]))
			return 0
		}
	}
	return nil
}
