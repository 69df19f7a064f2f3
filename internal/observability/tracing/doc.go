// Package tracing provides OpenTelemetry tracing integration.
//
// The default global tracer provider is used, so spans are no-ops until
// an exporter is configured by the host environment. The HTTP middleware
// and the dataset fetch path create spans unconditionally; the cost is
// negligible when no provider is installed.
//
// Example usage:
//
//	import "nbu-dashboard/internal/observability/tracing"
//
//	func fetch(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "dataset.fetch")
//	    defer span.End()
//	    // ... fetch ...
//	}
package tracing
