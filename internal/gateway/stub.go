package gateway

import (
	"context"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/model"
)

// Consumer group and smart module operations have no backend behaviour yet.
// Each answers with a fixed reply.

func commitOffsetReply() *model.CommitOffsetReply {
	return &model.CommitOffsetReply{Success: true}
}

func listConsumerGroupsReply() *model.ListConsumerGroupsReply {
	return &model.ListConsumerGroupsReply{Groups: []string{}}
}

func describeConsumerGroupReply() *model.DescribeConsumerGroupReply {
	return &model.DescribeConsumerGroupReply{Offsets: []model.GroupOffset{}}
}

func createSmartModuleReply() *model.CreateSmartModuleReply {
	return &model.CreateSmartModuleReply{Success: true}
}

func deleteSmartModuleReply() *model.DeleteSmartModuleReply {
	return &model.DeleteSmartModuleReply{Success: true}
}

func listSmartModulesReply() *model.ListSmartModulesReply {
	return &model.ListSmartModulesReply{Modules: []model.SmartModuleSpec{}}
}

func describeSmartModuleReply() *model.DescribeSmartModuleReply {
	return &model.DescribeSmartModuleReply{}
}

func updateSmartModuleReply() *model.UpdateSmartModuleReply {
	return &model.UpdateSmartModuleReply{Success: true}
}

// HealthCheck reports the gateway process as healthy. The backend is not consulted.
func HealthCheck(context.Context, backend.Client, *model.HealthCheckRequest) (*model.HealthCheckReply, error) {
	return &model.HealthCheckReply{Ok: true, Message: "ok"}, nil
}
