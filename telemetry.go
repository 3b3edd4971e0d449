package gldispatch

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/slot"
)

// instrumentationName is the instrumentation scope for traces and metrics.
const instrumentationName = "github.com/gogpu/gldispatch"

// telemetry holds the instruments of one Context. With no providers
// installed they are the otel noop implementations.
type telemetry struct {
	tracer      trace.Tracer
	meter       metric.Meter
	resolve     metric.Float64Histogram
	unavailable metric.Int64Counter
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) *telemetry {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	t := &telemetry{
		tracer: tp.Tracer(instrumentationName),
		meter:  mp.Meter(instrumentationName),
	}

	var err error
	t.resolve, err = t.meter.Float64Histogram(
		"gldispatch.resolve.duration",
		metric.WithDescription("Duration of capability probing and command resolution in seconds"),
		metric.WithUnit("s"),
	)
	_ = err // noop fallback guaranteed by OTel API contract

	t.unavailable, err = t.meter.Int64Counter(
		"gldispatch.commands.unavailable",
		metric.WithDescription("Dispatches of commands with no bound alias"),
		metric.WithUnit("{call}"),
	)
	_ = err

	return t
}

// startInitialize opens the gldispatch.initialize span.
func (t *telemetry) startInitialize(ctx context.Context) (context.Context, trace.Span, time.Time) {
	ctx, span := t.tracer.Start(ctx, "gldispatch.initialize",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	return ctx, span, time.Now()
}

// endInitialize records the outcome of one initialization and ends span.
func (t *telemetry) endInitialize(ctx context.Context, span trace.Span, start time.Time, caps *capability.Set, tbl *slot.Table, err error) {
	defer span.End()

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.String("gl.api", caps.API.String()),
			attribute.String("gl.version", caps.Version.String()),
			attribute.Int("gldispatch.commands.bound", tbl.Bound()),
			attribute.Int("gldispatch.commands.unresolved", tbl.Len()-tbl.Bound()),
		)
		span.SetStatus(codes.Ok, "")
	}

	t.resolve.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("status", status)))
}

func (t *telemetry) recordUnavailable(command string) {
	t.unavailable.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("gldispatch.command", command)))
}
