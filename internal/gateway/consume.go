package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/codec"
	"github.com/echo8/krpc/model"
)

// untilEndIdle bounds how long Consume waits for a record after the last
// one it received before treating the partition as drained.
var untilEndIdle = 2 * time.Second

type cursor struct {
	consumer backend.Consumer
	stream   backend.Stream
}

func openCursor(ctx context.Context, client backend.Client, topic string, partition int32,
	offset backend.Offset, mode backend.StreamMode) (*cursor, error) {
	consumer, err := client.PartitionConsumer(ctx, topic, partition)
	if err != nil {
		return nil, &Error{Op: "create consumer", Err: err}
	}
	stream, err := consumer.Stream(ctx, offset, mode)
	if err != nil {
		closeHandle(consumer, "consumer")
		return nil, &Error{Op: "open stream", Err: err}
	}
	if mode == backend.UntilEnd {
		stream = backend.EndWhenIdle(stream, untilEndIdle)
	}
	slog.Debug("Opened cursor.", "topic", topic, "partition", partition, "offset", offset, "mode", mode)
	return &cursor{consumer: consumer, stream: stream}, nil
}

func (c *cursor) Close() {
	closeHandle(c.stream, "stream")
	closeHandle(c.consumer, "consumer")
}

func resolveOffset(offset int64) (backend.Offset, error) {
	o, err := backend.AbsoluteOffset(offset)
	if err != nil {
		return backend.Offset{}, &Error{Op: "resolve offset", Err: err}
	}
	return o, nil
}

// Consume returns up to MaxMessages records that were already in the
// partition when the call started. It never waits for new records.
func Consume(ctx context.Context, client backend.Client, req *model.ConsumeRequest) (*model.ConsumeReply, error) {
	offset, err := resolveOffset(req.Offset)
	if err != nil {
		return nil, err
	}
	res := &model.ConsumeReply{Messages: []model.ConsumedMessage{}, NextOffset: req.Offset}
	if req.MaxMessages <= 0 {
		return res, nil
	}

	cur, err := openCursor(ctx, client, req.Topic, req.Partition, offset, backend.UntilEnd)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	for len(res.Messages) < int(req.MaxMessages) {
		rec, err := cur.stream.Next(ctx)
		if errors.Is(err, backend.ErrEndOfStream) {
			break
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, &Error{Op: "consume", Err: ctxErr}
			}
			slog.Warn("Stopped consuming on record error.", "topic", req.Topic, "partition", req.Partition, "error", err)
			res.Error = err.Error()
			break
		}
		res.Messages = append(res.Messages, codec.ConsumedMessage(rec))
		res.NextOffset = rec.Offset + 1
	}
	return res, nil
}

// StreamConsume pushes every record from the requested offset onwards to
// send, waiting for new records until ctx is done or a record fails.
func StreamConsume(ctx context.Context, client backend.Client, req *model.StreamConsumeRequest,
	send func(*model.ConsumedMessage) error) error {
	offset, err := resolveOffset(req.Offset)
	if err != nil {
		return err
	}
	cur, err := openCursor(ctx, client, req.Topic, req.Partition, offset, backend.Follow)
	if err != nil {
		return err
	}
	defer cur.Close()

	for {
		rec, err := cur.stream.Next(ctx)
		if err != nil {
			return &Error{Op: "read record", Err: err}
		}
		msg := codec.ConsumedMessage(rec)
		if err := send(&msg); err != nil {
			return err
		}
	}
}
