package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// blockingStream yields records and then blocks until ctx is done.
type blockingStream struct {
	records []*Record
	err     error
	closed  bool
}

func (s *blockingStream) Next(ctx context.Context) (*Record, error) {
	if len(s.records) > 0 {
		rec := s.records[0]
		s.records = s.records[1:]
		return rec, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *blockingStream) Close() error {
	s.closed = true
	return nil
}

func TestEndWhenIdle(t *testing.T) {
	inner := &blockingStream{records: []*Record{{Offset: 3}, {Offset: 4}}}
	s := EndWhenIdle(inner, 10*time.Millisecond)

	for _, want := range []int64{3, 4} {
		rec, err := s.Next(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, rec.Offset)
	}
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, ErrEndOfStream)

	require.NoError(t, s.Close())
	require.True(t, inner.closed)
}

func TestEndWhenIdleWaitsForFirstRecord(t *testing.T) {
	s := EndWhenIdle(&blockingStream{}, time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := s.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEndWhenIdleKeepsCallerErrors(t *testing.T) {
	tests := []struct {
		name  string
		inner *blockingStream
		ctx   func() (context.Context, context.CancelFunc)
		want  error
	}{
		{
			name:  "caller cancelled",
			inner: &blockingStream{records: []*Record{{Offset: 0}}},
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			want: context.Canceled,
		},
		{
			name:  "record error",
			inner: &blockingStream{records: []*Record{{Offset: 0}}, err: errors.New("corrupt record")},
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithCancel(context.Background())
			},
			want: errors.New("corrupt record"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := EndWhenIdle(tc.inner, time.Hour)
			_, err := s.Next(context.Background())
			require.NoError(t, err)

			ctx, cancel := tc.ctx()
			defer cancel()
			_, err = s.Next(ctx)
			require.EqualError(t, err, tc.want.Error())
		})
	}
}

func TestEndWhenIdleDisabled(t *testing.T) {
	inner := &blockingStream{}
	require.Same(t, Stream(inner), EndWhenIdle(inner, 0))
}
