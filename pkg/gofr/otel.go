package gofr

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"gofr.dev/filterable/pkg/gofr/logging"
)

// initTracer installs the global tracer provider. Spans are exported to zipkin when
// TRACE_EXPORTER=zipkin and TRACER_URL are set, otherwise they only carry the trace ids of the logs.
func (a *App) initTracer() {
	traceRatio, err := strconv.ParseFloat(a.Config.GetOrDefault("TRACER_RATIO", "1"), 64)
	if err != nil {
		a.container.Errorf("invalid TRACER_RATIO, sampling every trace: %v", err)

		traceRatio = 1
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(a.container.GetAppName()),
		)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(traceRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetErrorHandler(&otelErrorHandler{logger: a.container.Logger})

	a.tracerProvider = tp

	exporter := a.Config.Get("TRACE_EXPORTER")
	url := a.Config.Get("TRACER_URL")

	switch {
	case exporter == "" && url == "":
		a.container.Debug("tracing is disabled, as configs are not provided")
	case !strings.EqualFold(exporter, "zipkin"):
		a.container.Errorf("unsupported TRACE_EXPORTER: %q", exporter)
	case url == "":
		a.container.Error("missing TRACER_URL config, should be provided with TRACE_EXPORTER to enable tracing")
	default:
		a.container.Infof("Exporting traces to zipkin at %s", url)

		zipkinExporter, err := zipkin.New(url)
		if err != nil {
			a.container.Errorf("could not create zipkin exporter: %v", err)

			return
		}

		tp.RegisterSpanProcessor(sdktrace.NewBatchSpanProcessor(zipkinExporter))
	}
}

func (a *App) shutdownTracer(ctx context.Context) error {
	if a.tracerProvider == nil {
		return nil
	}

	return a.tracerProvider.Shutdown(ctx)
}

type otelErrorHandler struct {
	logger logging.Logger
}

func (o *otelErrorHandler) Handle(e error) {
	if e != nil {
		o.logger.Error(e.Error())
	}
}
