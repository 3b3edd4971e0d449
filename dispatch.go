package gldispatch

import (
	"github.com/gogpu/gldispatch/slot"
)

// Invoker performs a native call through a located entry point.
// Arguments are passed verbatim as machine words.
type Invoker interface {
	Invoke(p slot.Proc, args ...uintptr) uintptr
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(p slot.Proc, args ...uintptr) uintptr

// Invoke calls f(p, args...).
func (f InvokerFunc) Invoke(p slot.Proc, args ...uintptr) uintptr { return f(p, args...) }

// Result is the outcome of one dispatch.
//
// Value is whatever the native entry point returned and is always valid,
// even when Fault is set.
type Result struct {
	Value uintptr

	// Fault is set by the validator when the native context reported an
	// error state right after the call.
	Fault *NativeFault
}

// Err returns Fault as an error, or nil.
func (r Result) Err() error {
	if r.Fault == nil {
		return nil
	}
	return r.Fault
}

// Dispatcher dispatches one call through a slot entry.
type Dispatcher interface {
	Dispatch(e *slot.Entry, args []uintptr) (Result, error)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(e *slot.Entry, args []uintptr) (Result, error)

// Dispatch calls f(e, args).
func (f DispatcherFunc) Dispatch(e *slot.Entry, args []uintptr) (Result, error) { return f(e, args) }

// Middleware wraps a Dispatcher with extra behavior.
type Middleware func(next Dispatcher) Dispatcher

// Chain composes middlewares around d. The first middleware is outermost.
func Chain(d Dispatcher, mws ...Middleware) Dispatcher {
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}

// invokeDispatcher is the innermost dispatcher: it calls the bound proc or
// reports the command as unavailable.
type invokeDispatcher struct {
	inv Invoker
}

func (d invokeDispatcher) Dispatch(e *slot.Entry, args []uintptr) (Result, error) {
	if !e.Bound() {
		return Result{}, unavailable(e)
	}
	return Result{Value: d.inv.Invoke(e.Proc, args...)}, nil
}

func unavailable(e *slot.Entry) *CommandUnavailableError {
	return &CommandUnavailableError{
		Command:  e.Command.Name,
		Attempts: append([]slot.Attempt(nil), e.Attempts...),
	}
}
