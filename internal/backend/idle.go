package backend

import (
	"context"
	"time"
)

// EndWhenIdle wraps an UntilEnd stream so that a read which yields nothing
// within idle after a delivered record ends the stream with ErrEndOfStream.
// The partition end can lie past offsets a reader never receives, such as
// transaction markers, so a stream may otherwise wait until ctx is done.
// A non-positive idle returns s unchanged.
func EndWhenIdle(s Stream, idle time.Duration) Stream {
	if idle <= 0 {
		return s
	}
	return &idleStream{Stream: s, idle: idle}
}

type idleStream struct {
	Stream
	idle      time.Duration
	delivered bool
}

func (s *idleStream) Next(ctx context.Context) (*Record, error) {
	if !s.delivered {
		rec, err := s.Stream.Next(ctx)
		s.delivered = err == nil
		return rec, err
	}
	idleCtx, cancel := context.WithTimeout(ctx, s.idle)
	defer cancel()
	rec, err := s.Stream.Next(idleCtx)
	if err != nil && ctx.Err() == nil && idleCtx.Err() != nil {
		return nil, ErrEndOfStream
	}
	return rec, err
}
