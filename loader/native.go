package loader

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gogpu/gldispatch"
	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/internal/cmem"
	"github.com/gogpu/gldispatch/slot"
)

// library is an opened shared library.
type library interface {
	Name() string
	Symbol(name string) uintptr
	Close() error
}

// GL enums used by the context queries.
const (
	glVersion       = 0x1F02
	glExtensions    = 0x1F03
	glNumExtensions = 0x821D
)

// Native is a gldispatch.Platform backed by the system GL libraries.
//
// Entry points returned by a provider's GetProcAddress may depend on the
// context current when they were located. Like the gldispatch.Context it
// feeds, a Native belongs to one thread.
type Native struct {
	provider Provider
	libs     []library
	getProc  uintptr

	call  func(p uintptr, args ...uintptr) uintptr
	float func(name string, p uintptr) func(args []uintptr) uintptr
	calls map[slot.Proc]func(args []uintptr) uintptr

	getError uintptr
}

var (
	_ gldispatch.Platform    = (*Native)(nil)
	_ gldispatch.FaultSource = (*Native)(nil)
)

// Open opens the GL libraries of the first provider, in priority order,
// whose libraries all load on this system.
//
// With WithLibraries and no WithProvider, a provider is only chosen if the
// named libraries export its GetProcAddress function.
func Open(opts ...Option) (*Native, error) {
	o := options{
		open:  openLibrary,
		call:  callProc,
		float: floatCall,
		goos:  runtime.GOOS,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var provs []Provider
	if o.provider != "" {
		p, ok := Get(o.provider)
		if !ok || !p.supports(o.goos) {
			return nil, fmt.Errorf("%w: %q on %s", ErrNoProvider, o.provider, o.goos)
		}
		provs = []Provider{p}
	} else {
		provs = candidates(o.goos)
	}
	if len(provs) == 0 {
		return nil, fmt.Errorf("%w on %s", ErrNoProvider, o.goos)
	}

	log := gldispatch.Logger()
	// Overridden libraries may belong to any provider; without an explicit
	// choice, a provider only qualifies if its lookup is exported.
	requireLookup := o.libraries != nil && o.provider == ""
	var errs []error
	unqualified := false
	for _, p := range provs {
		if o.libraries != nil {
			p.Libraries = o.libraries
		}
		libs, err := openAll(o.open, p.Libraries)
		if err != nil {
			log.Debug("loader: provider unavailable", "provider", p.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name, err))
			continue
		}
		n := &Native{
			provider: p,
			libs:     libs,
			call:     o.call,
			float:    o.float,
			calls:    make(map[slot.Proc]func([]uintptr) uintptr),
		}
		if p.GetProcAddress != "" {
			n.getProc = n.symbol(p.GetProcAddress)
			if n.getProc == 0 && requireLookup {
				_ = n.Close()
				log.Debug("loader: provider lookup missing", "provider", p.Name, "symbol", p.GetProcAddress)
				errs = append(errs, fmt.Errorf("%s: %s not exported", p.Name, p.GetProcAddress))
				unqualified = true
				continue
			}
		}
		log.Debug("loader: opened", "provider", p.Name, "libraries", p.Libraries,
			"getProcAddress", n.getProc != 0)
		return n, nil
	}
	if unqualified {
		return nil, fmt.Errorf("%w for %v: %w", ErrNoProvider, o.libraries, errors.Join(errs...))
	}
	return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

func openAll(open func(string) (library, error), names []string) ([]library, error) {
	if len(names) == 0 {
		return nil, errors.New("no libraries")
	}
	libs := make([]library, 0, len(names))
	for _, name := range names {
		l, err := open(name)
		if err != nil {
			for _, opened := range libs {
				_ = opened.Close()
			}
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		libs = append(libs, l)
	}
	return libs, nil
}

// Provider returns the name of the provider that was opened.
func (n *Native) Provider() string { return n.provider.Name }

// Close releases the opened libraries. Procs located through n must not
// be invoked afterwards.
func (n *Native) Close() error {
	var errs []error
	for _, l := range n.libs {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("loader: close %s: %w", l.Name(), err))
		}
	}
	n.libs = nil
	n.getProc = 0
	n.getError = 0
	clear(n.calls)
	return errors.Join(errs...)
}

// symbol searches the opened libraries' exports.
func (n *Native) symbol(name string) uintptr {
	for _, l := range n.libs {
		if p := l.Symbol(name); p != 0 {
			return p
		}
	}
	return 0
}

// Locate returns the entry point for name, or 0. Library exports are
// searched first, then the provider's GetProcAddress.
func (n *Native) Locate(name string) slot.Proc {
	p := n.symbol(name)
	if p == 0 && n.getProc != 0 {
		cname := cmem.CString(name)
		p = n.call(n.getProc, cmem.Addr(cname))
		runtime.KeepAlive(cname)
		if n.provider.invalid(p) {
			p = 0
		}
	}
	if p != 0 && n.float != nil {
		if fn := n.float(name, p); fn != nil {
			n.calls[slot.Proc(p)] = fn
		}
	}
	return slot.Proc(p)
}

// Invoke calls the native entry point p.
func (n *Native) Invoke(p slot.Proc, args ...uintptr) uintptr {
	if fn, ok := n.calls[p]; ok {
		return fn(args)
	}
	return n.call(uintptr(p), args...)
}

func (n *Native) getString(name uint32) (string, error) {
	p := n.Locate("glGetString")
	if p == 0 {
		return "", fmt.Errorf("%w: glGetString", ErrSymbolNotFound)
	}
	s := n.Invoke(p, uintptr(name))
	if s == 0 {
		return "", ErrNoContext
	}
	return cmem.GoString(s), nil
}

// CurrentVersion returns GL_VERSION of the current context.
func (n *Native) CurrentVersion() (string, error) {
	return n.getString(glVersion)
}

// EnabledExtensions returns the extensions of the current context.
// Contexts from GL 3.0 and ES 3.0 on are queried by index; older ones
// return a space-separated GL_EXTENSIONS string.
func (n *Native) EnabledExtensions() ([]string, error) {
	raw, err := n.CurrentVersion()
	if err != nil {
		return nil, err
	}
	ver, _, err := capability.ParseVersion(raw)
	if err != nil {
		return nil, err
	}
	if ver.AtLeast(capability.V(3, 0)) {
		if exts, ok := n.indexedExtensions(); ok {
			return exts, nil
		}
	}
	s, err := n.getString(glExtensions)
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

func (n *Native) indexedExtensions() ([]string, bool) {
	getIntegerv := n.Locate("glGetIntegerv")
	getStringi := n.Locate("glGetStringi")
	if getIntegerv == 0 || getStringi == 0 {
		return nil, false
	}
	count := cmem.Alloc[int32](1)
	n.Invoke(getIntegerv, glNumExtensions, cmem.Addr(count))
	runtime.KeepAlive(count)

	if count[0] < 0 {
		return nil, false
	}
	exts := make([]string, 0, count[0])
	for i := range count[0] {
		if s := n.Invoke(getStringi, glExtensions, uintptr(i)); s != 0 {
			exts = append(exts, cmem.GoString(s))
		}
	}
	return exts, true
}

// CurrentError pops one code from the GL error queue. It reports false
// if glGetError cannot be located.
func (n *Native) CurrentError() (uint32, bool) {
	if n.getError == 0 {
		n.getError = uintptr(n.Locate("glGetError"))
		if n.getError == 0 {
			return 0, false
		}
	}
	return uint32(n.Invoke(slot.Proc(n.getError))), true
}
