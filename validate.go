package gldispatch

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/gogpu/gldispatch/slot"
)

// FaultSource exposes the native error state of the current context.
//
// CurrentError pops one pending error code; 0 means none is pending.
// ok is false when the platform has no error query at all.
type FaultSource interface {
	CurrentError() (code uint32, ok bool)
}

// DefaultMaxDrain is how many pending error codes Validate collects per
// dispatch. GL keeps one flag per error kind, so a handful is plenty.
const DefaultMaxDrain = 8

// ValidateOption configures Validate.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	maxDrain int
	onFault  func(*NativeFault)
	meter    metric.Meter
}

// ValidateMaxDrain sets how many error codes are drained after a call.
// Values below 1 are ignored.
func ValidateMaxDrain(n int) ValidateOption {
	return func(o *validateOptions) {
		if n > 0 {
			o.maxDrain = n
		}
	}
}

// ValidateOnFault registers fn to be called with every fault observed.
func ValidateOnFault(fn func(*NativeFault)) ValidateOption {
	return func(o *validateOptions) {
		o.onFault = fn
	}
}

// ValidateWithMeter records the gldispatch.native_faults counter on m.
func ValidateWithMeter(m metric.Meter) ValidateOption {
	return func(o *validateOptions) {
		o.meter = m
	}
}

// Validate returns middleware that checks the native error state after
// every successful dispatch and attaches what it finds to Result.Fault.
//
// The check runs only after the underlying call returns. It never changes
// Result.Value, never retries, and passes dispatch errors through untouched.
// A nil src, or one whose error query is unavailable, makes the middleware
// a pass-through.
func Validate(src FaultSource, opts ...ValidateOption) Middleware {
	o := validateOptions{
		maxDrain: DefaultMaxDrain,
		meter:    noop.NewMeterProvider().Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(&o)
	}

	faults, fErr := o.meter.Int64Counter(
		"gldispatch.native_faults",
		metric.WithDescription("Native error states observed after dispatch"),
		metric.WithUnit("{fault}"),
	)
	_ = fErr // noop fallback guaranteed by OTel API contract

	return func(next Dispatcher) Dispatcher {
		if src == nil {
			return next
		}
		return DispatcherFunc(func(e *slot.Entry, args []uintptr) (Result, error) {
			res, err := next.Dispatch(e, args)
			if err != nil {
				return res, err
			}
			codes := drain(src, o.maxDrain)
			if len(codes) == 0 {
				return res, nil
			}
			res.Fault = &NativeFault{
				Command: e.Command.Name,
				Alias:   e.AliasName(),
				Codes:   codes,
			}
			Logger().Warn("gldispatch: native fault",
				"command", res.Fault.Command,
				"alias", res.Fault.Alias,
				"codes", res.Fault.Codes)
			faults.Add(context.Background(), int64(len(codes)),
				metric.WithAttributes(attribute.String("gldispatch.command", res.Fault.Command)))
			if o.onFault != nil {
				o.onFault(res.Fault)
			}
			return res, nil
		})
	}
}

func drain(src FaultSource, limit int) []uint32 {
	var codes []uint32
	for range limit {
		code, ok := src.CurrentError()
		if !ok || code == NoError {
			break
		}
		codes = append(codes, code)
	}
	return codes
}
