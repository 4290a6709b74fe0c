package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/model"
)

const topicNotFound = "not found"

func openAdmin(ctx context.Context, client backend.Client) (backend.Admin, error) {
	admin, err := client.Admin(ctx)
	if err != nil {
		return nil, &Error{Op: "create admin", Err: err}
	}
	return admin, nil
}

func CreateTopic(ctx context.Context, client backend.Client, req *model.CreateTopicRequest) (*model.CreateTopicReply, error) {
	admin, err := openAdmin(ctx, client)
	if err != nil {
		return nil, err
	}
	defer closeHandle(admin, "admin")

	if req.ReplicationFactor > math.MaxInt16 || req.ReplicationFactor < math.MinInt16 {
		return &model.CreateTopicReply{
			Error: fmt.Sprintf("invalid replication factor %d for topic %s", req.ReplicationFactor, req.Topic),
		}, nil
	}
	spec := backend.TopicSpec{Partitions: req.Partitions, ReplicationFactor: int16(req.ReplicationFactor)}
	if err := admin.CreateTopic(ctx, req.Topic, spec); err != nil {
		slog.Warn("Failed to create topic.", "topic", req.Topic, "error", err)
		return &model.CreateTopicReply{Error: err.Error()}, nil
	}
	slog.Info("Created topic.", "topic", req.Topic, "partitions", spec.Partitions, "replicationFactor", spec.ReplicationFactor)
	return &model.CreateTopicReply{Success: true}, nil
}

func DeleteTopic(ctx context.Context, client backend.Client, req *model.DeleteTopicRequest) (*model.DeleteTopicReply, error) {
	admin, err := openAdmin(ctx, client)
	if err != nil {
		return nil, err
	}
	defer closeHandle(admin, "admin")

	if err := admin.DeleteTopic(ctx, req.Topic); err != nil {
		slog.Warn("Failed to delete topic.", "topic", req.Topic, "error", err)
		return &model.DeleteTopicReply{Error: err.Error()}, nil
	}
	slog.Info("Deleted topic.", "topic", req.Topic)
	return &model.DeleteTopicReply{Success: true}, nil
}

func ListTopics(ctx context.Context, client backend.Client, _ *model.ListTopicsRequest) (*model.ListTopicsReply, error) {
	admin, err := openAdmin(ctx, client)
	if err != nil {
		return nil, err
	}
	defer closeHandle(admin, "admin")

	topics, err := admin.ListTopics(ctx)
	if err != nil {
		return nil, &Error{Op: "list topics", Err: err}
	}
	res := &model.ListTopicsReply{Topics: make([]string, 0, len(topics))}
	for _, t := range topics {
		res.Topics = append(res.Topics, t.Name)
	}
	return res, nil
}

// DescribeTopic only reports whether the topic exists. The remaining reply
// fields are left at their zero values.
func DescribeTopic(ctx context.Context, client backend.Client, req *model.DescribeTopicRequest) (*model.DescribeTopicReply, error) {
	admin, err := openAdmin(ctx, client)
	if err != nil {
		return nil, err
	}
	defer closeHandle(admin, "admin")

	topics, err := admin.ListTopics(ctx, req.Topic)
	if err != nil {
		return nil, &Error{Op: "describe topic", Err: err}
	}
	res := &model.DescribeTopicReply{Topic: req.Topic}
	if len(topics) == 0 {
		res.Error = topicNotFound
	}
	return res, nil
}
