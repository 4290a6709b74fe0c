package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/config/memory"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, topics ...string) *Client {
	c, err := NewClient(&memory.Config{DefaultPartitions: 1, Topics: topics})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func produce(t *testing.T, c *Client, topic string, values ...string) {
	ctx := context.Background()
	p, err := c.TopicProducer(ctx, topic)
	require.NoError(t, err)
	defer p.Close()
	for _, v := range values {
		require.NoError(t, p.Send(ctx, nil, []byte(v)))
	}
}

func openStream(t *testing.T, c *Client, topic string, offset int64, mode backend.StreamMode) backend.Stream {
	ctx := context.Background()
	cons, err := c.PartitionConsumer(ctx, topic, 0)
	require.NoError(t, err)
	o, err := backend.AbsoluteOffset(offset)
	require.NoError(t, err)
	s, err := cons.Stream(ctx, o, mode)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProduceAndReadUntilEnd(t *testing.T) {
	c := newTestClient(t, "orders")
	produce(t, c, "orders", "a", "b", "c")

	s := openStream(t, c, "orders", 1, backend.UntilEnd)
	produce(t, c, "orders", "d")

	var got []string
	var offsets []int64
	for {
		rec, err := s.Next(context.Background())
		if errors.Is(err, backend.ErrEndOfStream) {
			break
		}
		require.NoError(t, err)
		got = append(got, string(rec.Value))
		offsets = append(offsets, rec.Offset)
	}
	require.Equal(t, []string{"b", "c"}, got)
	require.Equal(t, []int64{1, 2}, offsets)
}

func TestFollowWaitsForNewRecords(t *testing.T) {
	c := newTestClient(t, "orders")
	s := openStream(t, c, "orders", 0, backend.Follow)

	go func() {
		time.Sleep(20 * time.Millisecond)
		produce(t, c, "orders", "late")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rec, err := s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, "late", string(rec.Value))
	require.Equal(t, int64(0), rec.Offset)
}

func TestFollowCancel(t *testing.T) {
	c := newTestClient(t, "orders")
	s := openStream(t, c, "orders", 0, backend.Follow)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := s.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStreamClose(t *testing.T) {
	c := newTestClient(t, "orders")
	s := openStream(t, c, "orders", 0, backend.Follow)
	require.NoError(t, s.Close())
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestUnknownTopic(t *testing.T) {
	c := newTestClient(t)
	_, err := c.TopicProducer(context.Background(), "missing")
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = c.PartitionConsumer(context.Background(), "missing", 0)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
}

func TestUnknownPartition(t *testing.T) {
	c := newTestClient(t, "orders")
	_, err := c.PartitionConsumer(context.Background(), "orders", 3)
	require.Error(t, err)
	_, err = c.PartitionConsumer(context.Background(), "orders", -1)
	require.Error(t, err)
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	a, err := c.Admin(ctx)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.CreateTopic(ctx, "t1", backend.TopicSpec{Partitions: 2, ReplicationFactor: 1}))
	require.NoError(t, a.CreateTopic(ctx, "t0", backend.TopicSpec{Partitions: 1, ReplicationFactor: 1}))
	err = a.CreateTopic(ctx, "t1", backend.TopicSpec{Partitions: 1, ReplicationFactor: 1})
	require.ErrorIs(t, err, backend.ErrTopicExists)
	require.Error(t, a.CreateTopic(ctx, "t2", backend.TopicSpec{Partitions: 0, ReplicationFactor: 1}))

	topics, err := a.ListTopics(ctx)
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{
		{Name: "t1", Partitions: 2, ReplicationFactor: 1},
		{Name: "t0", Partitions: 1, ReplicationFactor: 1},
	}, topics)

	topics, err = a.ListTopics(ctx, "t0", "nope")
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{{Name: "t0", Partitions: 1, ReplicationFactor: 1}}, topics)

	require.NoError(t, a.DeleteTopic(ctx, "t1"))
	require.ErrorIs(t, a.DeleteTopic(ctx, "t1"), backend.ErrTopicNotFound)
	topics, err = a.ListTopics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 1)
}

func TestDeleteTopicEndsStream(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, "orders")
	s := openStream(t, c, "orders", 0, backend.Follow)

	a, err := c.Admin(ctx)
	require.NoError(t, err)
	require.NoError(t, a.DeleteTopic(ctx, "orders"))

	_, err = s.Next(ctx)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
}

func TestRoundRobinPartitions(t *testing.T) {
	ctx := context.Background()
	c, err := NewClient(&memory.Config{DefaultPartitions: 2, Topics: []string{"orders"}})
	require.NoError(t, err)
	produce(t, c, "orders", "a", "b", "c", "d")
	for _, p := range []int32{0, 1} {
		cons, err := c.PartitionConsumer(ctx, "orders", p)
		require.NoError(t, err)
		s, err := cons.Stream(ctx, backend.Offset{}, backend.UntilEnd)
		require.NoError(t, err)
		count := 0
		for {
			rec, err := s.Next(ctx)
			if errors.Is(err, backend.ErrEndOfStream) {
				break
			}
			require.NoError(t, err)
			require.Equal(t, p, rec.Partition)
			count++
		}
		require.Equal(t, 2, count)
	}
}

func TestClosedClient(t *testing.T) {
	c := newTestClient(t, "orders")
	require.NoError(t, c.Close())
	_, err := c.TopicProducer(context.Background(), "orders")
	require.ErrorIs(t, err, backend.ErrClosed)
	_, err = c.Admin(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}
