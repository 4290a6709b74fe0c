// Package gateway holds the operations served over RPC and dispatches every
// call to them together with the shared backend client.
package gateway

import (
	"context"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/metric"
	"github.com/echo8/krpc/model"
)

type Gateway struct {
	client  backend.Client
	metrics metric.Service
	ops     Operations
}

type Option func(*Gateway)

// WithOperations lets callers replace registered handlers before the
// gateway starts serving.
func WithOperations(fn func(ops *Operations)) Option {
	return func(g *Gateway) {
		fn(&g.ops)
	}
}

// New returns a gateway over client. The gateway never closes client.
func New(client backend.Client, ms metric.Service, opts ...Option) *Gateway {
	g := &Gateway{client: client, metrics: ms, ops: DefaultOperations()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Operations() *Operations {
	return &g.ops
}

func (g *Gateway) Produce(ctx context.Context, req *model.ProduceRequest) (*model.ProduceReply, error) {
	g.metrics.RecordRequestSize(ctx, "Produce", req.Size())
	res, err := g.ops.Produce.Handle(ctx, g.client, req)
	if err == nil {
		g.metrics.RecordProduced(ctx, req.Topic, res.Success)
	}
	return res, err
}

func (g *Gateway) BatchProduce(ctx context.Context, req *model.BatchProduceRequest) (*model.BatchProduceReply, error) {
	g.metrics.RecordRequestSize(ctx, "BatchProduce", req.Size())
	res, err := g.ops.BatchProduce.Handle(ctx, g.client, req)
	if err == nil {
		for _, ok := range res.Success {
			g.metrics.RecordProduced(ctx, req.Topic, ok)
		}
	}
	return res, err
}

func (g *Gateway) Consume(ctx context.Context, req *model.ConsumeRequest) (*model.ConsumeReply, error) {
	res, err := g.ops.Consume.Handle(ctx, g.client, req)
	if err == nil {
		g.metrics.RecordConsumed(ctx, req.Topic, len(res.Messages))
	}
	return res, err
}

func (g *Gateway) StreamConsume(ctx context.Context, req *model.StreamConsumeRequest, send func(*model.ConsumedMessage) error) error {
	g.metrics.StreamOpened(ctx, req.Topic)
	defer g.metrics.StreamClosed(ctx, req.Topic)
	return StreamConsume(ctx, g.client, req, func(msg *model.ConsumedMessage) error {
		if err := send(msg); err != nil {
			return err
		}
		g.metrics.RecordConsumed(ctx, req.Topic, 1)
		return nil
	})
}

func (g *Gateway) CommitOffset(ctx context.Context, req *model.CommitOffsetRequest) (*model.CommitOffsetReply, error) {
	return g.ops.CommitOffset.Handle(ctx, g.client, req)
}

func (g *Gateway) CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.CreateTopicReply, error) {
	return g.ops.CreateTopic.Handle(ctx, g.client, req)
}

func (g *Gateway) DeleteTopic(ctx context.Context, req *model.DeleteTopicRequest) (*model.DeleteTopicReply, error) {
	return g.ops.DeleteTopic.Handle(ctx, g.client, req)
}

func (g *Gateway) ListTopics(ctx context.Context, req *model.ListTopicsRequest) (*model.ListTopicsReply, error) {
	return g.ops.ListTopics.Handle(ctx, g.client, req)
}

func (g *Gateway) DescribeTopic(ctx context.Context, req *model.DescribeTopicRequest) (*model.DescribeTopicReply, error) {
	return g.ops.DescribeTopic.Handle(ctx, g.client, req)
}

func (g *Gateway) ListConsumerGroups(ctx context.Context, req *model.ListConsumerGroupsRequest) (*model.ListConsumerGroupsReply, error) {
	return g.ops.ListConsumerGroups.Handle(ctx, g.client, req)
}

func (g *Gateway) DescribeConsumerGroup(ctx context.Context, req *model.DescribeConsumerGroupRequest) (*model.DescribeConsumerGroupReply, error) {
	return g.ops.DescribeConsumerGroup.Handle(ctx, g.client, req)
}

func (g *Gateway) CreateSmartModule(ctx context.Context, req *model.CreateSmartModuleRequest) (*model.CreateSmartModuleReply, error) {
	return g.ops.CreateSmartModule.Handle(ctx, g.client, req)
}

func (g *Gateway) DeleteSmartModule(ctx context.Context, req *model.DeleteSmartModuleRequest) (*model.DeleteSmartModuleReply, error) {
	return g.ops.DeleteSmartModule.Handle(ctx, g.client, req)
}

func (g *Gateway) ListSmartModules(ctx context.Context, req *model.ListSmartModulesRequest) (*model.ListSmartModulesReply, error) {
	return g.ops.ListSmartModules.Handle(ctx, g.client, req)
}

func (g *Gateway) DescribeSmartModule(ctx context.Context, req *model.DescribeSmartModuleRequest) (*model.DescribeSmartModuleReply, error) {
	return g.ops.DescribeSmartModule.Handle(ctx, g.client, req)
}

func (g *Gateway) UpdateSmartModule(ctx context.Context, req *model.UpdateSmartModuleRequest) (*model.UpdateSmartModuleReply, error) {
	return g.ops.UpdateSmartModule.Handle(ctx, g.client, req)
}

func (g *Gateway) HealthCheck(ctx context.Context, req *model.HealthCheckRequest) (*model.HealthCheckReply, error) {
	return g.ops.HealthCheck.Handle(ctx, g.client, req)
}
