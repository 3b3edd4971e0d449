// Package fake provides an in-memory native platform for tests: a context
// that reports a chosen version and extension list, a symbol table, an
// invoker that calls Go functions, and a queue of native error codes.
package fake

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gldispatch/slot"
)

// ErrNoContext is returned by the context queries when the platform is
// marked as having no current context.
var ErrNoContext = errors.New("fake: no current context")

// Func is the Go implementation behind a fake native symbol.
type Func func(args ...uintptr) uintptr

// Call records one invocation.
type Call struct {
	Proc   slot.Proc
	Symbol string
	Args   []uintptr
}

// Platform is a fake native GL platform. It is safe for concurrent use,
// although a real platform would only ever be driven by one thread.
type Platform struct {
	mu sync.Mutex

	version    string
	extensions []string
	lost       bool
	noErrQuery bool

	next    slot.Proc
	symbols map[string]slot.Proc
	names   map[slot.Proc]string
	funcs   map[slot.Proc]Func

	located []string
	calls   []Call
	errs    []uint32
}

// New returns a platform whose current context reports the given GL_VERSION
// string and extensions.
func New(version string, extensions ...string) *Platform {
	return &Platform{
		version:    version,
		extensions: extensions,
		next:       0x1000,
		symbols:    make(map[string]slot.Proc),
		names:      make(map[slot.Proc]string),
		funcs:      make(map[slot.Proc]Func),
	}
}

// Define exports a symbol backed by fn and returns its address. A nil fn
// returns 0 on every call.
func (p *Platform) Define(name string, fn Func) slot.Proc {
	p.mu.Lock()
	defer p.mu.Unlock()
	proc := p.next
	p.next += 0x10
	if fn == nil {
		fn = func(...uintptr) uintptr { return 0 }
	}
	p.symbols[name] = proc
	p.names[proc] = name
	p.funcs[proc] = fn
	return proc
}

// DefineAll exports every name with a nil implementation.
func (p *Platform) DefineAll(names ...string) {
	for _, n := range names {
		p.Define(n, nil)
	}
}

// SetContext changes what the current context reports.
func (p *Platform) SetContext(version string, extensions ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.version = version
	p.extensions = extensions
	p.lost = false
}

// LoseContext makes the context queries fail as if nothing were current.
func (p *Platform) LoseContext() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lost = true
}

// DisableErrorQuery makes CurrentError report that no error query exists.
func (p *Platform) DisableErrorQuery() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.noErrQuery = true
}

// Locate implements slot.Locator and records the request.
func (p *Platform) Locate(name string) slot.Proc {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.located = append(p.located, name)
	return p.symbols[name]
}

// Located returns the names passed to Locate, in order.
func (p *Platform) Located() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.located...)
}

// ResetLocated clears the Locate record.
func (p *Platform) ResetLocated() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.located = nil
}

// Invoke calls the function behind proc. Invoking an unknown address panics,
// which is what a native call through a bad pointer would do.
func (p *Platform) Invoke(proc slot.Proc, args ...uintptr) uintptr {
	p.mu.Lock()
	fn, ok := p.funcs[proc]
	if !ok {
		p.mu.Unlock()
		panic(fmt.Sprintf("fake: invoke of unknown proc %#x", uintptr(proc)))
	}
	p.calls = append(p.calls, Call{Proc: proc, Symbol: p.names[proc], Args: append([]uintptr(nil), args...)})
	p.mu.Unlock()
	return fn(args...)
}

// Calls returns the recorded invocations, in order.
func (p *Platform) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// RaiseError queues native error codes, reported one at a time by
// CurrentError.
func (p *Platform) RaiseError(codes ...uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, codes...)
}

// CurrentError pops the oldest queued error code. It returns 0 when none is
// queued, and ok == false if the error query was disabled.
func (p *Platform) CurrentError() (code uint32, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.noErrQuery {
		return 0, false
	}
	if len(p.errs) == 0 {
		return 0, true
	}
	code = p.errs[0]
	p.errs = p.errs[1:]
	return code, true
}

// CurrentVersion implements capability.NativeContext.
func (p *Platform) CurrentVersion() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lost {
		return "", ErrNoContext
	}
	return p.version, nil
}

// EnabledExtensions implements capability.NativeContext.
func (p *Platform) EnabledExtensions() ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lost {
		return nil, ErrNoContext
	}
	return append([]string(nil), p.extensions...), nil
}
