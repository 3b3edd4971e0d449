package gldispatch

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/schema"
)

// Option configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default catalog, no validation
//	c, err := gldispatch.New(platform)
//
//	// Validate every call and fall back as if only GL 3.3 were available
//	c, err := gldispatch.New(platform,
//	    gldispatch.WithValidation(true),
//	    gldispatch.WithMaxVersion(capability.GLLimit(3, 3)))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	schema         *schema.Schema
	validate       bool
	maskExtensions []string
	maxVersion     capability.Limit
	middleware     []Middleware
	onFault        func(*NativeFault)
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		schema: schema.Default(),
	}
}

// WithSchema resolves commands from s instead of the built-in catalog.
func WithSchema(s *schema.Schema) Option {
	return func(o *options) {
		if s != nil {
			o.schema = s
		}
	}
}

// WithValidation enables the debug validator on every dispatch.
// The platform must implement FaultSource; otherwise validation is a no-op.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithDisabledExtensions hides the named extensions from every probed
// capability set, as if the driver did not advertise them.
func WithDisabledExtensions(names ...string) Option {
	return func(o *options) {
		o.maskExtensions = append(o.maskExtensions, names...)
	}
}

// WithMaxVersion caps the probed version of contexts of l.API at
// l.Version. Commands whose core alias requires a newer version fall back
// to their extension aliases.
func WithMaxVersion(l capability.Limit) Option {
	return func(o *options) {
		o.maxVersion = l
	}
}

// WithMiddleware adds dispatch middleware. Middleware given here runs
// outside the validator.
func WithMiddleware(mws ...Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mws...)
	}
}

// WithFaultHandler registers fn to receive every native fault observed by
// the validator.
func WithFaultHandler(fn func(*NativeFault)) Option {
	return func(o *options) {
		o.onFault = fn
	}
}

// WithTracerProvider sets the tracer provider. The global provider is used
// by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider. The global provider is used by
// default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithConfig applies an environment configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Debug {
			o.validate = true
		}
		o.maskExtensions = append(o.maskExtensions, cfg.DisabledExtensions...)
		if !cfg.MaxVersion.IsZero() {
			o.maxVersion = cfg.MaxVersion
		}
	}
}
