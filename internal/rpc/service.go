// Package rpc exposes the gateway as the krpc.v1.LogService gRPC service.
package rpc

import (
	"context"

	krpcv1 "github.com/echo8/krpc/gen/krpc/v1"
	"github.com/echo8/krpc/model"

	"google.golang.org/grpc"
)

var ServiceName = krpcv1.LogService_ServiceDesc.ServiceName

// Handler is implemented by *gateway.Gateway.
type Handler interface {
	Produce(context.Context, *model.ProduceRequest) (*model.ProduceReply, error)
	BatchProduce(context.Context, *model.BatchProduceRequest) (*model.BatchProduceReply, error)
	Consume(context.Context, *model.ConsumeRequest) (*model.ConsumeReply, error)
	StreamConsume(context.Context, *model.StreamConsumeRequest, func(*model.ConsumedMessage) error) error
	CommitOffset(context.Context, *model.CommitOffsetRequest) (*model.CommitOffsetReply, error)
	CreateTopic(context.Context, *model.CreateTopicRequest) (*model.CreateTopicReply, error)
	DeleteTopic(context.Context, *model.DeleteTopicRequest) (*model.DeleteTopicReply, error)
	ListTopics(context.Context, *model.ListTopicsRequest) (*model.ListTopicsReply, error)
	DescribeTopic(context.Context, *model.DescribeTopicRequest) (*model.DescribeTopicReply, error)
	ListConsumerGroups(context.Context, *model.ListConsumerGroupsRequest) (*model.ListConsumerGroupsReply, error)
	DescribeConsumerGroup(context.Context, *model.DescribeConsumerGroupRequest) (*model.DescribeConsumerGroupReply, error)
	CreateSmartModule(context.Context, *model.CreateSmartModuleRequest) (*model.CreateSmartModuleReply, error)
	DeleteSmartModule(context.Context, *model.DeleteSmartModuleRequest) (*model.DeleteSmartModuleReply, error)
	ListSmartModules(context.Context, *model.ListSmartModulesRequest) (*model.ListSmartModulesReply, error)
	DescribeSmartModule(context.Context, *model.DescribeSmartModuleRequest) (*model.DescribeSmartModuleReply, error)
	UpdateSmartModule(context.Context, *model.UpdateSmartModuleRequest) (*model.UpdateSmartModuleReply, error)
	HealthCheck(context.Context, *model.HealthCheckRequest) (*model.HealthCheckReply, error)
}

type service struct {
	krpcv1.UnimplementedLogServiceServer
	h Handler
}

// unary runs fn on the converted request and converts its reply, turning a
// handler failure into a status error.
func unary[In, Req, Resp, Out any](ctx context.Context, in *In, req func(*In) *Req,
	fn func(context.Context, *Req) (*Resp, error), reply func(*Resp) *Out) (*Out, error) {
	res, err := fn(ctx, req(in))
	if err != nil {
		return nil, toStatus(err)
	}
	return reply(res), nil
}

func (s *service) Produce(ctx context.Context, in *krpcv1.ProduceRequest) (*krpcv1.ProduceReply, error) {
	return unary(ctx, in, produceRequest, s.h.Produce, produceReply)
}

func (s *service) BatchProduce(ctx context.Context, in *krpcv1.BatchProduceRequest) (*krpcv1.BatchProduceReply, error) {
	return unary(ctx, in, batchProduceRequest, s.h.BatchProduce, batchProduceReply)
}

func (s *service) Consume(ctx context.Context, in *krpcv1.ConsumeRequest) (*krpcv1.ConsumeReply, error) {
	return unary(ctx, in, consumeRequest, s.h.Consume, consumeReply)
}

func (s *service) StreamConsume(in *krpcv1.StreamConsumeRequest, stream grpc.ServerStreamingServer[krpcv1.ConsumedMessage]) error {
	err := s.h.StreamConsume(stream.Context(), streamConsumeRequest(in), func(msg *model.ConsumedMessage) error {
		return stream.Send(consumedMessage(msg))
	})
	return toStatus(err)
}

func (s *service) CommitOffset(ctx context.Context, in *krpcv1.CommitOffsetRequest) (*krpcv1.CommitOffsetReply, error) {
	return unary(ctx, in, commitOffsetRequest, s.h.CommitOffset, commitOffsetReply)
}

func (s *service) CreateTopic(ctx context.Context, in *krpcv1.CreateTopicRequest) (*krpcv1.CreateTopicReply, error) {
	return unary(ctx, in, createTopicRequest, s.h.CreateTopic, createTopicReply)
}

func (s *service) DeleteTopic(ctx context.Context, in *krpcv1.DeleteTopicRequest) (*krpcv1.DeleteTopicReply, error) {
	return unary(ctx, in, deleteTopicRequest, s.h.DeleteTopic, deleteTopicReply)
}

func (s *service) ListTopics(ctx context.Context, in *krpcv1.ListTopicsRequest) (*krpcv1.ListTopicsReply, error) {
	return unary(ctx, in, listTopicsRequest, s.h.ListTopics, listTopicsReply)
}

func (s *service) DescribeTopic(ctx context.Context, in *krpcv1.DescribeTopicRequest) (*krpcv1.DescribeTopicReply, error) {
	return unary(ctx, in, describeTopicRequest, s.h.DescribeTopic, describeTopicReply)
}

func (s *service) ListConsumerGroups(ctx context.Context, in *krpcv1.ListConsumerGroupsRequest) (*krpcv1.ListConsumerGroupsReply, error) {
	return unary(ctx, in, listConsumerGroupsRequest, s.h.ListConsumerGroups, listConsumerGroupsReply)
}

func (s *service) DescribeConsumerGroup(ctx context.Context, in *krpcv1.DescribeConsumerGroupRequest) (*krpcv1.DescribeConsumerGroupReply, error) {
	return unary(ctx, in, describeConsumerGroupRequest, s.h.DescribeConsumerGroup, describeConsumerGroupReply)
}

func (s *service) CreateSmartModule(ctx context.Context, in *krpcv1.CreateSmartModuleRequest) (*krpcv1.CreateSmartModuleReply, error) {
	return unary(ctx, in, createSmartModuleRequest, s.h.CreateSmartModule, createSmartModuleReply)
}

func (s *service) DeleteSmartModule(ctx context.Context, in *krpcv1.DeleteSmartModuleRequest) (*krpcv1.DeleteSmartModuleReply, error) {
	return unary(ctx, in, deleteSmartModuleRequest, s.h.DeleteSmartModule, deleteSmartModuleReply)
}

func (s *service) ListSmartModules(ctx context.Context, in *krpcv1.ListSmartModulesRequest) (*krpcv1.ListSmartModulesReply, error) {
	return unary(ctx, in, listSmartModulesRequest, s.h.ListSmartModules, listSmartModulesReply)
}

func (s *service) DescribeSmartModule(ctx context.Context, in *krpcv1.DescribeSmartModuleRequest) (*krpcv1.DescribeSmartModuleReply, error) {
	return unary(ctx, in, describeSmartModuleRequest, s.h.DescribeSmartModule, describeSmartModuleReply)
}

func (s *service) UpdateSmartModule(ctx context.Context, in *krpcv1.UpdateSmartModuleRequest) (*krpcv1.UpdateSmartModuleReply, error) {
	return unary(ctx, in, updateSmartModuleRequest, s.h.UpdateSmartModule, updateSmartModuleReply)
}

func (s *service) HealthCheck(ctx context.Context, in *krpcv1.HealthCheckRequest) (*krpcv1.HealthCheckReply, error) {
	return unary(ctx, in, healthCheckRequest, s.h.HealthCheck, healthCheckReply)
}
