package customid

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Jxpro/custom-rustdesk"

// Metric names recorded by Service.
const (
	MetricOperations = "customid_operations_total"
	MetricDuration   = "customid_operation_duration_seconds"
)

// Service wraps EncryptID and DecryptID with tracing, metrics and logging.
// Seeds and custom IDs are never logged or attached to spans.
//
// Service is safe for concurrent use.
type Service struct {
	tracer   trace.Tracer
	ops      metric.Int64Counter
	duration metric.Float64Histogram
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	logger         *slog.Logger
}

// WithTracerProvider sets the tracer provider. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.meterProvider = mp
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = l
	}
}

// NewService creates an instrumented Service.
// Returns an error if the metric instruments cannot be created.
func NewService(opts ...ServiceOption) (*Service, error) {
	o := serviceOptions{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracerProvider == nil || o.meterProvider == nil || o.logger == nil {
		return nil, fmt.Errorf("customid: NewService: nil tracer provider, meter provider or logger")
	}

	meter := o.meterProvider.Meter(instrumentationName)

	ops, err := meter.Int64Counter(
		MetricOperations,
		metric.WithDescription("Total number of custom ID operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("customid: failed to create operation counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		MetricDuration,
		metric.WithDescription("Duration of custom ID operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("customid: failed to create duration histogram: %w", err)
	}

	return &Service{
		tracer:   o.tracerProvider.Tracer(instrumentationName),
		ops:      ops,
		duration: duration,
		logger:   o.logger,
	}, nil
}

// Encrypt runs EncryptID inside a "customid.encrypt" span.
func (s *Service) Encrypt(ctx context.Context, customID, seed string) Result {
	return s.run(ctx, "encrypt", func() Result {
		return EncryptID(customID, seed)
	})
}

// Decrypt runs DecryptID inside a "customid.decrypt" span.
func (s *Service) Decrypt(ctx context.Context, token, seed string) Result {
	return s.run(ctx, "decrypt", func() Result {
		return DecryptID(token, seed)
	})
}

func (s *Service) run(ctx context.Context, op string, fn func() Result) Result {
	ctx, span := s.tracer.Start(ctx, "customid."+op)
	defer span.End()

	start := time.Now()
	res := fn()
	elapsed := time.Since(start)

	status := "success"
	if f, ok := res.(*Failure); ok {
		status = "error"
		span.RecordError(f)
		span.SetStatus(codes.Error, f.Kind.String())
		span.SetAttributes(attribute.String("customid.failure_kind", f.Kind.String()))
		s.logger.WarnContext(ctx, "custom id operation failed",
			slog.String("operation", op),
			slog.String("kind", f.Kind.String()),
			slog.String("detail", f.Detail),
		)
	} else {
		span.SetStatus(codes.Ok, "")
		s.logger.DebugContext(ctx, "custom id operation completed",
			slog.String("operation", op),
			slog.Duration("elapsed", elapsed),
		)
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("status", status),
	)
	s.ops.Add(ctx, 1, attrs)
	s.duration.Record(ctx, elapsed.Seconds(), attrs)

	return res
}
