package rpc

import (
	krpcv1 "github.com/echo8/krpc/gen/krpc/v1"
	"github.com/echo8/krpc/model"
)

func produceRequest(in *krpcv1.ProduceRequest) *model.ProduceRequest {
	return &model.ProduceRequest{Topic: in.GetTopic(), Message: in.GetMessage(), MessageId: in.GetMessageId()}
}

func produceReply(r *model.ProduceReply) *krpcv1.ProduceReply {
	return &krpcv1.ProduceReply{Success: r.Success, Error: r.Error, MessageId: r.MessageId}
}

func batchProduceRequest(in *krpcv1.BatchProduceRequest) *model.BatchProduceRequest {
	req := &model.BatchProduceRequest{Topic: in.GetTopic(), Messages: make([]model.BatchMessage, 0, len(in.GetMessages()))}
	for _, m := range in.GetMessages() {
		req.Messages = append(req.Messages, model.BatchMessage{Message: m.GetMessage(), MessageId: m.GetMessageId()})
	}
	return req
}

func batchProduceReply(r *model.BatchProduceReply) *krpcv1.BatchProduceReply {
	return &krpcv1.BatchProduceReply{Success: r.Success, Error: r.Error}
}

func consumeRequest(in *krpcv1.ConsumeRequest) *model.ConsumeRequest {
	return &model.ConsumeRequest{
		Topic:       in.GetTopic(),
		Partition:   in.GetPartition(),
		Offset:      in.GetOffset(),
		MaxMessages: in.GetMaxMessages(),
	}
}

func consumeReply(r *model.ConsumeReply) *krpcv1.ConsumeReply {
	res := &krpcv1.ConsumeReply{Error: r.Error, NextOffset: r.NextOffset}
	for i := range r.Messages {
		res.Messages = append(res.Messages, consumedMessage(&r.Messages[i]))
	}
	return res
}

func streamConsumeRequest(in *krpcv1.StreamConsumeRequest) *model.StreamConsumeRequest {
	return &model.StreamConsumeRequest{Topic: in.GetTopic(), Partition: in.GetPartition(), Offset: in.GetOffset()}
}

func consumedMessage(m *model.ConsumedMessage) *krpcv1.ConsumedMessage {
	return &krpcv1.ConsumedMessage{
		Message:   m.Message,
		Offset:    m.Offset,
		Key:       m.Key,
		Headers:   m.Headers,
		Timestamp: m.Timestamp,
		MessageId: m.MessageId,
		Partition: m.Partition,
	}
}

func commitOffsetRequest(in *krpcv1.CommitOffsetRequest) *model.CommitOffsetRequest {
	return &model.CommitOffsetRequest{
		Topic:     in.GetTopic(),
		Partition: in.GetPartition(),
		Offset:    in.GetOffset(),
		GroupId:   in.GetGroupId(),
	}
}

func commitOffsetReply(r *model.CommitOffsetReply) *krpcv1.CommitOffsetReply {
	return &krpcv1.CommitOffsetReply{Success: r.Success, Error: r.Error}
}

func createTopicRequest(in *krpcv1.CreateTopicRequest) *model.CreateTopicRequest {
	return &model.CreateTopicRequest{
		Topic:             in.GetTopic(),
		Partitions:        in.GetPartitions(),
		ReplicationFactor: in.GetReplicationFactor(),
	}
}

func createTopicReply(r *model.CreateTopicReply) *krpcv1.CreateTopicReply {
	return &krpcv1.CreateTopicReply{Success: r.Success, Error: r.Error}
}

func deleteTopicRequest(in *krpcv1.DeleteTopicRequest) *model.DeleteTopicRequest {
	return &model.DeleteTopicRequest{Topic: in.GetTopic()}
}

func deleteTopicReply(r *model.DeleteTopicReply) *krpcv1.DeleteTopicReply {
	return &krpcv1.DeleteTopicReply{Success: r.Success, Error: r.Error}
}

func listTopicsRequest(*krpcv1.ListTopicsRequest) *model.ListTopicsRequest {
	return &model.ListTopicsRequest{}
}

func listTopicsReply(r *model.ListTopicsReply) *krpcv1.ListTopicsReply {
	return &krpcv1.ListTopicsReply{Topics: r.Topics}
}

func describeTopicRequest(in *krpcv1.DescribeTopicRequest) *model.DescribeTopicRequest {
	return &model.DescribeTopicRequest{Topic: in.GetTopic()}
}

func describeTopicReply(r *model.DescribeTopicReply) *krpcv1.DescribeTopicReply {
	res := &krpcv1.DescribeTopicReply{
		Topic:       r.Topic,
		RetentionMs: r.RetentionMs,
		Config:      r.Config,
		Error:       r.Error,
	}
	for _, p := range r.Partitions {
		res.Partitions = append(res.Partitions, &krpcv1.PartitionInfo{Partition: p.Partition, Leader: p.Leader, Replicas: p.Replicas})
	}
	return res
}

func listConsumerGroupsRequest(*krpcv1.ListConsumerGroupsRequest) *model.ListConsumerGroupsRequest {
	return &model.ListConsumerGroupsRequest{}
}

func listConsumerGroupsReply(r *model.ListConsumerGroupsReply) *krpcv1.ListConsumerGroupsReply {
	return &krpcv1.ListConsumerGroupsReply{Groups: r.Groups, Error: r.Error}
}

func describeConsumerGroupRequest(in *krpcv1.DescribeConsumerGroupRequest) *model.DescribeConsumerGroupRequest {
	return &model.DescribeConsumerGroupRequest{GroupId: in.GetGroupId()}
}

func describeConsumerGroupReply(r *model.DescribeConsumerGroupReply) *krpcv1.DescribeConsumerGroupReply {
	res := &krpcv1.DescribeConsumerGroupReply{GroupId: r.GroupId, Error: r.Error}
	for _, o := range r.Offsets {
		res.Offsets = append(res.Offsets, &krpcv1.GroupOffset{Topic: o.Topic, Partition: o.Partition, Offset: o.Offset})
	}
	return res
}

func smartModuleSpec(in *krpcv1.SmartModuleSpec) *model.SmartModuleSpec {
	if in == nil {
		return nil
	}
	return &model.SmartModuleSpec{Name: in.Name, Version: in.Version, Description: in.Description, Wasm: in.Wasm}
}

func smartModuleSpecMessage(s *model.SmartModuleSpec) *krpcv1.SmartModuleSpec {
	if s == nil {
		return nil
	}
	return &krpcv1.SmartModuleSpec{Name: s.Name, Version: s.Version, Description: s.Description, Wasm: s.Wasm}
}

func createSmartModuleRequest(in *krpcv1.CreateSmartModuleRequest) *model.CreateSmartModuleRequest {
	return &model.CreateSmartModuleRequest{Spec: smartModuleSpec(in.GetSpec())}
}

func createSmartModuleReply(r *model.CreateSmartModuleReply) *krpcv1.CreateSmartModuleReply {
	return &krpcv1.CreateSmartModuleReply{Success: r.Success, Error: r.Error}
}

func deleteSmartModuleRequest(in *krpcv1.DeleteSmartModuleRequest) *model.DeleteSmartModuleRequest {
	return &model.DeleteSmartModuleRequest{Name: in.GetName()}
}

func deleteSmartModuleReply(r *model.DeleteSmartModuleReply) *krpcv1.DeleteSmartModuleReply {
	return &krpcv1.DeleteSmartModuleReply{Success: r.Success, Error: r.Error}
}

func listSmartModulesRequest(*krpcv1.ListSmartModulesRequest) *model.ListSmartModulesRequest {
	return &model.ListSmartModulesRequest{}
}

func listSmartModulesReply(r *model.ListSmartModulesReply) *krpcv1.ListSmartModulesReply {
	res := &krpcv1.ListSmartModulesReply{Error: r.Error}
	for i := range r.Modules {
		res.Modules = append(res.Modules, smartModuleSpecMessage(&r.Modules[i]))
	}
	return res
}

func describeSmartModuleRequest(in *krpcv1.DescribeSmartModuleRequest) *model.DescribeSmartModuleRequest {
	return &model.DescribeSmartModuleRequest{Name: in.GetName()}
}

func describeSmartModuleReply(r *model.DescribeSmartModuleReply) *krpcv1.DescribeSmartModuleReply {
	return &krpcv1.DescribeSmartModuleReply{Spec: smartModuleSpecMessage(r.Spec), Error: r.Error}
}

func updateSmartModuleRequest(in *krpcv1.UpdateSmartModuleRequest) *model.UpdateSmartModuleRequest {
	return &model.UpdateSmartModuleRequest{Spec: smartModuleSpec(in.GetSpec())}
}

func updateSmartModuleReply(r *model.UpdateSmartModuleReply) *krpcv1.UpdateSmartModuleReply {
	return &krpcv1.UpdateSmartModuleReply{Success: r.Success, Error: r.Error}
}

func healthCheckRequest(*krpcv1.HealthCheckRequest) *model.HealthCheckRequest {
	return &model.HealthCheckRequest{}
}

func healthCheckReply(r *model.HealthCheckReply) *krpcv1.HealthCheckReply {
	return &krpcv1.HealthCheckReply{Ok: r.Ok, Message: r.Message}
}
