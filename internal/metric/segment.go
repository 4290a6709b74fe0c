package metric

import (
	"context"

	segment "github.com/segmentio/kafka-go"
	otm "go.opentelemetry.io/otel/metric"
)

func newSegmentMeters() (*segmentMeters, error) {
	sm := &segmentMeters{}
	if err := createMeters(sm); err != nil {
		return nil, err
	}
	return sm, nil
}

type segmentMeters struct {
	Writes   otm.Int64Counter `name:"krpc.segment.writer.write.count" description:"" unit:""`
	Messages otm.Int64Counter `name:"krpc.segment.writer.message.count" description:"" unit:""`
	Bytes    otm.Int64Counter `name:"krpc.segment.writer.message.bytes" description:"" unit:"By"`
	Errors   otm.Int64Counter `name:"krpc.segment.writer.error.count" description:"" unit:""`
	Retries  otm.Int64Counter `name:"krpc.segment.writer.retries.count" description:"" unit:""`

	WriteTimeAvg otm.Float64Gauge `name:"krpc.segment.writer.write.seconds.avg" description:"" unit:"s"`
	WriteTimeMax otm.Float64Gauge `name:"krpc.segment.writer.write.seconds.max" description:"" unit:"s"`

	BatchSizeAvg otm.Int64Gauge `name:"krpc.segment.writer.batch.size.avg" description:"" unit:""`
	BatchSizeMax otm.Int64Gauge `name:"krpc.segment.writer.batch.size.max" description:"" unit:""`
}

// RecordSegmentMetrics records the writer stats taken since the previous call.
func (s *service) RecordSegmentMetrics(stats segment.WriterStats) {
	if !s.cfg.Enable.Backend {
		return
	}
	ctx := context.Background()
	sm := s.meters.segment

	sm.Writes.Add(ctx, stats.Writes)
	sm.Messages.Add(ctx, stats.Messages)
	sm.Bytes.Add(ctx, stats.Bytes)
	sm.Errors.Add(ctx, stats.Errors)
	sm.Retries.Add(ctx, stats.Retries)

	sm.WriteTimeAvg.Record(ctx, stats.WriteTime.Avg.Seconds())
	sm.WriteTimeMax.Record(ctx, stats.WriteTime.Max.Seconds())

	sm.BatchSizeAvg.Record(ctx, stats.BatchSize.Avg)
	sm.BatchSizeMax.Record(ctx, stats.BatchSize.Max)
}
