package metric

import (
	"context"
	"log/slog"
	"sync"

	gometrics "github.com/rcrowley/go-metrics"
	"go.opentelemetry.io/otel"
	otm "go.opentelemetry.io/otel/metric"
)

var percentiles = []float64{0.5, 0.75, 0.90, 0.95, 0.99}
var percentileSuffixes = []string{".median", ".p75", ".p90", ".p95", ".p99"}

type saramaMeters struct {
	mu       sync.Mutex
	meterMap map[string]otm.Float64Gauge
}

func newSaramaMeters() *saramaMeters {
	return &saramaMeters{meterMap: make(map[string]otm.Float64Gauge)}
}

func (s *saramaMeters) getOrCreateGauge(name string) (otm.Float64Gauge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.meterMap[name]; ok {
		return g, nil
	}
	g, err := otel.Meter(meterName).Float64Gauge("krpc.sarama." + name)
	if err != nil {
		return nil, err
	}
	s.meterMap[name] = g
	return g, nil
}

func (s *saramaMeters) record(ctx context.Context, name string, val float64) {
	g, err := s.getOrCreateGauge(name)
	if err != nil {
		slog.Error("Failed to create gauge meter.", "name", name, "error", err.Error())
		return
	}
	g.Record(ctx, val)
}

func (s *saramaMeters) recordSample(ctx context.Context, name string, snap gometrics.Histogram) {
	s.record(ctx, name+".count", float64(snap.Count()))
	s.record(ctx, name+".min", float64(snap.Min()))
	s.record(ctx, name+".max", float64(snap.Max()))
	s.record(ctx, name+".mean", snap.Mean())
	for i, p := range snap.Percentiles(percentiles) {
		s.record(ctx, name+percentileSuffixes[i], p)
	}
}

// RecordSaramaMetrics copies every metric in the sarama registry into the
// corresponding otel gauge.
func (s *service) RecordSaramaMetrics(registry gometrics.Registry) {
	if !s.cfg.Enable.Backend {
		return
	}
	ctx := context.Background()
	sm := s.meters.sarama
	registry.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case gometrics.Counter:
			sm.record(ctx, name, float64(metric.Count()))
		case gometrics.Gauge:
			sm.record(ctx, name, float64(metric.Value()))
		case gometrics.GaugeFloat64:
			sm.record(ctx, name, metric.Value())
		case gometrics.Histogram:
			sm.recordSample(ctx, name, metric.Snapshot())
		case gometrics.Meter:
			m := metric.Snapshot()
			sm.record(ctx, name+".count", float64(m.Count()))
			sm.record(ctx, name+".rate.1min", m.Rate1())
			sm.record(ctx, name+".rate.mean", m.RateMean())
		case gometrics.Timer:
			t := metric.Snapshot()
			sm.record(ctx, name+".count", float64(t.Count()))
			sm.record(ctx, name+".mean", t.Mean())
			sm.record(ctx, name+".max", float64(t.Max()))
			sm.record(ctx, name+".rate.1min", t.Rate1())
		}
	})
}
