// Package tracing records onboarding runs as OpenTelemetry spans. A run is
// one "onboarding.run" span with a child per step change and a final
// "onboarding.finished" child. No exporter is installed here; callers
// decide where spans go by choosing the tracer provider.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MaybeLow/OfficeAI/internal/logging"
	"github.com/MaybeLow/OfficeAI/internal/onboarding"
)

const instrumentationName = "github.com/MaybeLow/OfficeAI/internal/tracing"

// Observer implements onboarding.Observer by emitting spans.
type Observer struct {
	tracer trace.Tracer
	logger logging.Logger

	ctx  context.Context
	root trace.Span
}

// Option configures an Observer.
type Option func(*Observer)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Observer) { o.tracer = tp.Tracer(instrumentationName) }
}

// WithLogger logs the id of every span the observer ends.
func WithLogger(l logging.Logger) Option {
	return func(o *Observer) { o.logger = l }
}

// Start opens the run span. sessionID is attached to every span.
func Start(ctx context.Context, sessionID string, opts ...Option) *Observer {
	o := &Observer{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.ctx, o.root = o.tracer.Start(ctx, "onboarding.run",
		trace.WithAttributes(attribute.String("onboarding.session", sessionID)))
	return o
}

// OnTransition implements onboarding.Observer.
func (o *Observer) OnTransition(rec onboarding.TransitionRecord) {
	_, span := o.tracer.Start(o.ctx, "onboarding.transition", trace.WithAttributes(
		attribute.String("onboarding.session", rec.SessionID),
		attribute.String("onboarding.from", rec.From.String()),
		attribute.String("onboarding.to", rec.To.String()),
		attribute.Int("onboarding.progress", rec.Progress),
		attribute.Bool("onboarding.offline", rec.Offline),
	))
	o.end(span, "onboarding.transition")
}

// OnFinished implements onboarding.Observer. It closes the run span.
func (o *Observer) OnFinished(res onboarding.Result) {
	_, span := o.tracer.Start(o.ctx, "onboarding.finished", trace.WithAttributes(
		attribute.String("onboarding.session", res.SessionID),
		attribute.String("onboarding.terminal", res.Terminal.String()),
		attribute.Bool("onboarding.offline", res.Offline),
		attribute.StringSlice("onboarding.recommendations", res.Summary.Recommendations.IDs()),
		attribute.StringSlice("onboarding.data_tracking", res.Summary.DataTracking.IDs()),
		attribute.Bool("onboarding.personal_info", res.Summary.PersonalInfo != ""),
	))
	o.end(span, "onboarding.finished")
	o.root.SetStatus(codes.Ok, "")
	o.end(o.root, "onboarding.run")
}

// Abandon closes the run span for a run that never reached a terminal step.
// It does nothing once the run has finished.
func (o *Observer) Abandon(step onboarding.Step) {
	if !o.root.IsRecording() {
		return
	}
	o.root.SetAttributes(attribute.String("onboarding.abandoned_at", step.String()))
	o.root.SetStatus(codes.Error, "abandoned")
	o.end(o.root, "onboarding.run")
}

func (o *Observer) end(span trace.Span, name string) {
	sc := span.SpanContext()
	span.End()
	o.logger.Debug("span ended",
		logging.String("span", name),
		logging.String("trace_id", sc.TraceID().String()),
		logging.String("span_id", sc.SpanID().String()))
}
