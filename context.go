package gldispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/schema"
	"github.com/gogpu/gldispatch/slot"
)

// Platform is the native side a Context needs: the context queries used
// for probing, a symbol locator and an invoker. A Platform that also
// implements FaultSource can be validated.
type Platform interface {
	capability.NativeContext
	slot.Locator
	Invoker
}

// Context is the dispatch state of one native GL context on one OS thread.
//
// A Context belongs to the goroutine that locked itself to the thread the
// native context is current on (runtime.LockOSThread). It is not safe for
// concurrent use and holds no locks. Distinct Contexts share nothing but
// their immutable schema, so each thread may hold its own.
type Context struct {
	platform   Platform
	opts       options
	tel        *telemetry
	dispatcher Dispatcher

	caps  *capability.Set
	table *slot.Table
}

// New creates a Context for the native context current on the calling
// thread and performs the first InitializeForCurrentContext.
//
// Example:
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//	// make the native context current ...
//	c, err := gldispatch.New(platform, gldispatch.WithValidation(true))
func New(platform Platform, opts ...Option) (*Context, error) {
	if platform == nil {
		return nil, ErrNilPlatform
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		platform: platform,
		opts:     o,
		tel:      newTelemetry(o.tracerProvider, o.meterProvider),
	}

	mws := append([]Middleware(nil), o.middleware...)
	if o.validate {
		src, _ := platform.(FaultSource)
		mws = append(mws, Validate(src,
			ValidateOnFault(o.onFault),
			ValidateWithMeter(c.tel.meter)))
	}
	c.dispatcher = Chain(invokeDispatcher{inv: platform}, mws...)

	if err := c.InitializeForCurrentContext(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// InitializeForCurrentContext probes the native context current on the
// calling thread and replaces the slot table with a freshly resolved one.
//
// Call it again after making a different native context current. On
// failure the previous table stays in force and the error wraps
// ErrInvalidContextState. ctx only carries tracing and metrics.
func (c *Context) InitializeForCurrentContext(ctx context.Context) error {
	ctx, span, start := c.tel.startInitialize(ctx)

	caps, err := capability.Probe(c.platform)
	if err != nil {
		err = fmt.Errorf("gldispatch: initialize: %w", err)
		c.tel.endInitialize(ctx, span, start, nil, nil, err)
		return err
	}
	if len(c.opts.maskExtensions) > 0 {
		caps = caps.Without(c.opts.maskExtensions...)
	}
	caps = caps.Clamp(c.opts.maxVersion)

	tbl := slot.Resolve(c.opts.schema, caps, c.platform)
	c.caps, c.table = caps, tbl

	c.tel.endInitialize(ctx, span, start, caps, tbl, nil)
	logResolution(ctx, caps, tbl)
	return nil
}

func logResolution(ctx context.Context, caps *capability.Set, tbl *slot.Table) {
	log := Logger()
	log.Info("gldispatch: context initialized",
		"api", caps.API,
		"version", caps.Version,
		"bound", tbl.Bound(),
		"unresolved", tbl.Len()-tbl.Bound())
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for i := range tbl.Len() {
		e := tbl.Entry(schema.CommandID(i))
		log.Debug("gldispatch: resolved", "command", e.Command.Name, "result", e.String())
	}
}

// Call dispatches command id with args passed verbatim.
//
// The returned error is nil or a *CommandUnavailableError; the native entry
// point is never invoked for an unresolved command. Native faults, when
// validation is enabled, are reported in Result.Fault.
func (c *Context) Call(id schema.CommandID, args ...uintptr) (Result, error) {
	if id < 0 || int(id) >= c.table.Len() {
		return Result{}, &CommandUnavailableError{Command: fmt.Sprintf("CommandID(%d)", id), Unknown: true}
	}
	e := c.table.Entry(id)
	res, err := c.dispatcher.Dispatch(e, args)
	if err != nil && errors.Is(err, ErrCommandUnavailable) {
		c.tel.recordUnavailable(e.Command.Name)
		Logger().Warn("gldispatch: command unavailable", "command", e.Command.Name)
	}
	return res, err
}

// CallName dispatches the command with the given schema name.
func (c *Context) CallName(name string, args ...uintptr) (Result, error) {
	cmd, ok := c.opts.schema.Lookup(name)
	if !ok {
		return Result{}, &CommandUnavailableError{Command: name, Unknown: true}
	}
	return c.Call(cmd.ID, args...)
}

// Has reports whether command id is bound in the current table.
func (c *Context) Has(id schema.CommandID) bool {
	if id < 0 || int(id) >= c.table.Len() {
		return false
	}
	return c.table.Entry(id).Bound()
}

// Capabilities returns the capability set the current table was resolved
// against, after masking and clamping.
func (c *Context) Capabilities() *capability.Set { return c.caps }

// Table returns the current slot table. It is replaced, never modified,
// by InitializeForCurrentContext.
func (c *Context) Table() *slot.Table { return c.table }

// Schema returns the command schema.
func (c *Context) Schema() *schema.Schema { return c.opts.schema }
