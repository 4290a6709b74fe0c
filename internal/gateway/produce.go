package gateway

import (
	"context"
	"log/slog"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/codec"
	"github.com/echo8/krpc/model"
)

// Produce sends one unkeyed message and waits for the backend to acknowledge it.
func Produce(ctx context.Context, client backend.Client, req *model.ProduceRequest) (*model.ProduceReply, error) {
	producer, err := client.TopicProducer(ctx, req.Topic)
	if err != nil {
		return nil, &Error{Op: "create producer", Err: err}
	}
	defer closeHandle(producer, "producer")

	res := &model.ProduceReply{MessageId: req.MessageId}
	if err := producer.Send(ctx, nil, codec.Encode(req.Message)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &Error{Op: "produce", Err: ctxErr}
		}
		slog.Warn("Failed to produce message.", "topic", req.Topic, "messageId", req.MessageId, "error", err)
		res.Error = err.Error()
		return res, nil
	}
	res.Success = true
	return res, nil
}

// BatchProduce sends the messages one at a time, in order, over a single
// producer. Every message gets its own outcome.
func BatchProduce(ctx context.Context, client backend.Client, req *model.BatchProduceRequest) (*model.BatchProduceReply, error) {
	producer, err := client.TopicProducer(ctx, req.Topic)
	if err != nil {
		return nil, &Error{Op: "create producer", Err: err}
	}
	defer closeHandle(producer, "producer")

	res := &model.BatchProduceReply{
		Success: make([]bool, 0, len(req.Messages)),
		Error:   make([]string, 0, len(req.Messages)),
	}
	for i := range req.Messages {
		if err := ctx.Err(); err != nil {
			return nil, &Error{Op: "batch produce", Err: err}
		}
		msg := &req.Messages[i]
		err := producer.Send(ctx, nil, codec.Encode(msg.Message))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, &Error{Op: "batch produce", Err: ctxErr}
			}
			slog.Warn("Failed to produce message.", "topic", req.Topic, "messageId", msg.MessageId, "error", err)
			res.Success = append(res.Success, false)
			res.Error = append(res.Error, err.Error())
			continue
		}
		res.Success = append(res.Success, true)
		res.Error = append(res.Error, "")
	}
	return res, nil
}
