package gateway

import (
	"context"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/model"
)

// Unary handles one request/reply operation against the shared client.
type Unary[Req, Resp any] interface {
	Handle(ctx context.Context, client backend.Client, req *Req) (*Resp, error)
	// Implemented is false for placeholders that return a fixed reply
	// without touching the backend.
	Implemented() bool
}

type UnaryFunc[Req, Resp any] func(ctx context.Context, client backend.Client, req *Req) (*Resp, error)

func (f UnaryFunc[Req, Resp]) Handle(ctx context.Context, client backend.Client, req *Req) (*Resp, error) {
	return f(ctx, client, req)
}

func (f UnaryFunc[Req, Resp]) Implemented() bool {
	return true
}

type stub[Req, Resp any] struct {
	reply func() *Resp
}

// Stub returns a not implemented handler that always answers with reply().
// It never interacts with the backend and never fails.
func Stub[Req, Resp any](reply func() *Resp) Unary[Req, Resp] {
	return stub[Req, Resp]{reply: reply}
}

func (s stub[Req, Resp]) Handle(context.Context, backend.Client, *Req) (*Resp, error) {
	return s.reply(), nil
}

func (s stub[Req, Resp]) Implemented() bool {
	return false
}

// Operations is the table of unary handlers the gateway dispatches to.
// StreamConsume is served directly by the gateway.
type Operations struct {
	Produce               Unary[model.ProduceRequest, model.ProduceReply]
	BatchProduce          Unary[model.BatchProduceRequest, model.BatchProduceReply]
	Consume               Unary[model.ConsumeRequest, model.ConsumeReply]
	CommitOffset          Unary[model.CommitOffsetRequest, model.CommitOffsetReply]
	CreateTopic           Unary[model.CreateTopicRequest, model.CreateTopicReply]
	DeleteTopic           Unary[model.DeleteTopicRequest, model.DeleteTopicReply]
	ListTopics            Unary[model.ListTopicsRequest, model.ListTopicsReply]
	DescribeTopic         Unary[model.DescribeTopicRequest, model.DescribeTopicReply]
	ListConsumerGroups    Unary[model.ListConsumerGroupsRequest, model.ListConsumerGroupsReply]
	DescribeConsumerGroup Unary[model.DescribeConsumerGroupRequest, model.DescribeConsumerGroupReply]
	CreateSmartModule     Unary[model.CreateSmartModuleRequest, model.CreateSmartModuleReply]
	DeleteSmartModule     Unary[model.DeleteSmartModuleRequest, model.DeleteSmartModuleReply]
	ListSmartModules      Unary[model.ListSmartModulesRequest, model.ListSmartModulesReply]
	DescribeSmartModule   Unary[model.DescribeSmartModuleRequest, model.DescribeSmartModuleReply]
	UpdateSmartModule     Unary[model.UpdateSmartModuleRequest, model.UpdateSmartModuleReply]
	HealthCheck           Unary[model.HealthCheckRequest, model.HealthCheckReply]
}

func DefaultOperations() Operations {
	return Operations{
		Produce:               UnaryFunc[model.ProduceRequest, model.ProduceReply](Produce),
		BatchProduce:          UnaryFunc[model.BatchProduceRequest, model.BatchProduceReply](BatchProduce),
		Consume:               UnaryFunc[model.ConsumeRequest, model.ConsumeReply](Consume),
		CommitOffset:          Stub[model.CommitOffsetRequest](commitOffsetReply),
		CreateTopic:           UnaryFunc[model.CreateTopicRequest, model.CreateTopicReply](CreateTopic),
		DeleteTopic:           UnaryFunc[model.DeleteTopicRequest, model.DeleteTopicReply](DeleteTopic),
		ListTopics:            UnaryFunc[model.ListTopicsRequest, model.ListTopicsReply](ListTopics),
		DescribeTopic:         UnaryFunc[model.DescribeTopicRequest, model.DescribeTopicReply](DescribeTopic),
		ListConsumerGroups:    Stub[model.ListConsumerGroupsRequest](listConsumerGroupsReply),
		DescribeConsumerGroup: Stub[model.DescribeConsumerGroupRequest](describeConsumerGroupReply),
		CreateSmartModule:     Stub[model.CreateSmartModuleRequest](createSmartModuleReply),
		DeleteSmartModule:     Stub[model.DeleteSmartModuleRequest](deleteSmartModuleReply),
		ListSmartModules:      Stub[model.ListSmartModulesRequest](listSmartModulesReply),
		DescribeSmartModule:   Stub[model.DescribeSmartModuleRequest](describeSmartModuleReply),
		UpdateSmartModule:     Stub[model.UpdateSmartModuleRequest](updateSmartModuleReply),
		HealthCheck:           UnaryFunc[model.HealthCheckRequest, model.HealthCheckReply](HealthCheck),
	}
}

type implementer interface {
	Implemented() bool
}

// Each calls fn for every registered operation in a fixed order.
func (o *Operations) Each(fn func(name string, implemented bool)) {
	ops := []struct {
		name string
		impl implementer
	}{
		{"Produce", o.Produce},
		{"BatchProduce", o.BatchProduce},
		{"Consume", o.Consume},
		{"CommitOffset", o.CommitOffset},
		{"CreateTopic", o.CreateTopic},
		{"DeleteTopic", o.DeleteTopic},
		{"ListTopics", o.ListTopics},
		{"DescribeTopic", o.DescribeTopic},
		{"ListConsumerGroups", o.ListConsumerGroups},
		{"DescribeConsumerGroup", o.DescribeConsumerGroup},
		{"CreateSmartModule", o.CreateSmartModule},
		{"DeleteSmartModule", o.DeleteSmartModule},
		{"ListSmartModules", o.ListSmartModules},
		{"DescribeSmartModule", o.DescribeSmartModule},
		{"UpdateSmartModule", o.UpdateSmartModule},
		{"HealthCheck", o.HealthCheck},
	}
	for _, op := range ops {
		fn(op.name, op.impl.Implemented())
	}
}
