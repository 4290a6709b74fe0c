package metric

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	otm "go.opentelemetry.io/otel/metric"
)

func newGatewayMeters() (*gatewayMeters, error) {
	gm := &gatewayMeters{}
	if err := createMeters(gm); err != nil {
		return nil, err
	}
	return gm, nil
}

type gatewayMeters struct {
	RequestSize   otm.Int64Histogram     `name:"krpc.gateway.request.size" description:"Measures the payload size of produce requests." unit:"By"`
	Produced      otm.Int64Counter       `name:"krpc.gateway.message.produced" description:"Counts messages sent to the backend." unit:"{message}"`
	Consumed      otm.Int64Counter       `name:"krpc.gateway.message.consumed" description:"Counts messages delivered to callers." unit:"{message}"`
	ActiveStreams otm.Int64UpDownCounter `name:"krpc.gateway.stream.active" description:"Number of open consume streams." unit:"{stream}"`
}

func (s *service) RecordRequestSize(ctx context.Context, method string, size int) {
	if s.cfg.Enable.Gateway {
		s.meters.gateway.RequestSize.Record(ctx, int64(size),
			otm.WithAttributes(attribute.String("method", method)))
	}
}

func (s *service) RecordProduced(ctx context.Context, topic string, success bool) {
	if s.cfg.Enable.Gateway {
		s.meters.gateway.Produced.Add(ctx, 1,
			otm.WithAttributes(attribute.String("topic", topic), attribute.Bool("success", success)))
	}
}

func (s *service) RecordConsumed(ctx context.Context, topic string, count int) {
	if s.cfg.Enable.Gateway && count > 0 {
		s.meters.gateway.Consumed.Add(ctx, int64(count), topicAttributes(topic))
	}
}

func (s *service) StreamOpened(ctx context.Context, topic string) {
	if s.cfg.Enable.Gateway {
		s.meters.gateway.ActiveStreams.Add(ctx, 1, topicAttributes(topic))
	}
}

func (s *service) StreamClosed(ctx context.Context, topic string) {
	if s.cfg.Enable.Gateway {
		s.meters.gateway.ActiveStreams.Add(ctx, -1, topicAttributes(topic))
	}
}

func topicAttributes(topic string) otm.MeasurementOption {
	return otm.WithAttributeSet(attribute.NewSet(attribute.String("topic", topic)))
}
