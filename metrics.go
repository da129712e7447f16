package minio

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// cacheMetrics holds the OpenTelemetry instruments registered by WithMeter.
// All methods are safe on a nil receiver so the engine can record
// unconditionally.
type cacheMetrics struct {
	resolves  metric.Int64Counter
	evictions metric.Int64Counter
	resident  metric.Int64UpDownCounter
}

func newCacheMetrics(meter metric.Meter) (*cacheMetrics, error) {
	resolves, err := meter.Int64Counter(
		"minio.cache.resolves",
		metric.WithDescription("Total number of resolve attempts, by outcome"),
		metric.WithUnit("{resolve}"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter(
		"minio.cache.evictions",
		metric.WithDescription("Total number of entries evicted to free budget"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	resident, err := meter.Int64UpDownCounter(
		"minio.cache.resident_bytes",
		metric.WithDescription("Current total size of cached entries"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &cacheMetrics{
		resolves:  resolves,
		evictions: evictions,
		resident:  resident,
	}, nil
}

func (m *cacheMetrics) recordResolve(o outcome) {
	if m == nil {
		return
	}
	m.resolves.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", o.String())))
}

func (m *cacheMetrics) recordEviction() {
	if m == nil {
		return
	}
	m.evictions.Add(context.Background(), 1)
}

func (m *cacheMetrics) addResident(n int64) {
	if m == nil {
		return
	}
	m.resident.Add(context.Background(), n)
}
