package segment

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/config"
	segmentcfg "github.com/echo8/krpc/internal/config/segment"
	"github.com/echo8/krpc/internal/metric"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

const testTopic = "orders"

type testWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *testWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *testWriter) Stats() kafka.WriterStats {
	return kafka.WriterStats{Messages: int64(len(w.messages))}
}

func (w *testWriter) Close() error {
	w.closed = true
	return nil
}

type testAdmin struct {
	topics    []kafka.Topic
	end       int64
	createErr error
	deleteErr error
	created   []kafka.TopicConfig
	deleted   []string
	requested [][]string
}

func (a *testAdmin) Metadata(ctx context.Context, req *kafka.MetadataRequest) (*kafka.MetadataResponse, error) {
	a.requested = append(a.requested, req.Topics)
	resp := &kafka.MetadataResponse{}
	if req.Topics == nil {
		resp.Topics = a.topics
		return resp, nil
	}
	for _, name := range req.Topics {
		found := kafka.Topic{Name: name, Error: kafka.UnknownTopicOrPartition}
		for _, t := range a.topics {
			if t.Name == name {
				found = t
			}
		}
		resp.Topics = append(resp.Topics, found)
	}
	return resp, nil
}

func (a *testAdmin) CreateTopics(ctx context.Context, req *kafka.CreateTopicsRequest) (*kafka.CreateTopicsResponse, error) {
	a.created = append(a.created, req.Topics...)
	resp := &kafka.CreateTopicsResponse{Errors: map[string]error{}}
	for _, t := range req.Topics {
		resp.Errors[t.Topic] = a.createErr
	}
	return resp, nil
}

func (a *testAdmin) DeleteTopics(ctx context.Context, req *kafka.DeleteTopicsRequest) (*kafka.DeleteTopicsResponse, error) {
	a.deleted = append(a.deleted, req.Topics...)
	resp := &kafka.DeleteTopicsResponse{Errors: map[string]error{}}
	for _, name := range req.Topics {
		resp.Errors[name] = a.deleteErr
	}
	return resp, nil
}

func (a *testAdmin) ListOffsets(ctx context.Context, req *kafka.ListOffsetsRequest) (*kafka.ListOffsetsResponse, error) {
	resp := &kafka.ListOffsetsResponse{Topics: map[string][]kafka.PartitionOffsets{}}
	for topic, reqs := range req.Topics {
		for _, r := range reqs {
			resp.Topics[topic] = append(resp.Topics[topic], kafka.PartitionOffsets{Partition: r.Partition, LastOffset: a.end})
		}
	}
	return resp, nil
}

type testReader struct {
	messages []kafka.Message
	err      error
	offset   int64
	closed   bool
}

func (r *testReader) SetOffset(offset int64) error {
	r.offset = offset
	return nil
}

func (r *testReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if r.closed {
		return kafka.Message{}, io.EOF
	}
	if r.err != nil {
		return kafka.Message{}, r.err
	}
	for len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		if msg.Offset >= r.offset {
			return msg, nil
		}
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *testReader) Close() error {
	r.closed = true
	return nil
}

type testEnv struct {
	client  *Client
	writer  *testWriter
	admin   *testAdmin
	reader  *testReader
	readers int
}

func newTestEnv(t *testing.T) *testEnv {
	ms, err := metric.NewService(&config.MetricsConfig{})
	require.NoError(t, err)
	replicas := []kafka.Broker{{ID: 1}, {ID: 2}, {ID: 3}}
	env := &testEnv{
		writer: &testWriter{},
		admin: &testAdmin{topics: []kafka.Topic{
			{Name: testTopic, Partitions: []kafka.Partition{{ID: 0, Replicas: replicas}, {ID: 1, Replicas: replicas}}},
			{Name: "__consumer_offsets", Internal: true, Partitions: []kafka.Partition{{ID: 0, Replicas: replicas}}},
			{Name: "audit", Partitions: []kafka.Partition{{ID: 0, Replicas: replicas}}},
		}},
		reader: &testReader{},
	}
	cfg := &segmentcfg.Config{MetricsFlushDuration: time.Minute}
	env.client = newClient(cfg, env.writer, env.admin, func(topic string, partition int) (partitionReader, error) {
		env.readers++
		return env.reader, nil
	}, ms)
	return env
}

func (env *testEnv) stream(t *testing.T, offset int64, mode backend.StreamMode) backend.Stream {
	ctx := context.Background()
	cons, err := env.client.PartitionConsumer(ctx, testTopic, 0)
	require.NoError(t, err)
	o, err := backend.AbsoluteOffset(offset)
	require.NoError(t, err)
	s, err := cons.Stream(ctx, o, mode)
	require.NoError(t, err)
	return s
}

func TestSend(t *testing.T) {
	env := newTestEnv(t)
	p, err := env.client.TopicProducer(context.Background(), testTopic)
	require.NoError(t, err)
	require.NoError(t, p.Send(context.Background(), []byte("k"), []byte("v")))
	require.Equal(t, []kafka.Message{{Topic: testTopic, Key: []byte("k"), Value: []byte("v")}}, env.writer.messages)
	require.Equal(t, [][]string{{testTopic}}, env.admin.requested)
}

func TestSendFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "write error", err: kafka.WriteErrors{kafka.MessageSizeTooLarge}, want: kafka.MessageSizeTooLarge},
		{name: "unknown topic", err: kafka.WriteErrors{kafka.UnknownTopicOrPartition}, want: backend.ErrTopicNotFound},
		{name: "closed writer", err: io.ErrClosedPipe, want: backend.ErrClosed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			p, err := env.client.TopicProducer(context.Background(), testTopic)
			require.NoError(t, err)
			env.writer.err = tc.err
			require.ErrorIs(t, p.Send(context.Background(), nil, []byte("v")), tc.want)
		})
	}
}

func TestUnknownTopicAndPartition(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.client.TopicProducer(context.Background(), "missing")
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), "missing", 0)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), testTopic, 2)
	require.EqualError(t, err, "partition 2 does not exist in topic orders")
}

func TestStreamUntilEnd(t *testing.T) {
	env := newTestEnv(t)
	env.admin.end = 3
	env.reader.messages = []kafka.Message{
		{Offset: 0, Value: []byte("a")},
		{Offset: 1, Value: []byte("b")},
		{Offset: 2, Value: []byte("c")},
		{Offset: 3, Value: []byte("d")},
	}
	s := env.stream(t, 1, backend.UntilEnd)
	require.Equal(t, int64(1), env.reader.offset)

	var values []string
	for {
		rec, err := s.Next(context.Background())
		if errors.Is(err, backend.ErrEndOfStream) {
			break
		}
		require.NoError(t, err)
		values = append(values, string(rec.Value))
	}
	require.Equal(t, []string{"b", "c"}, values)
}

func TestStreamUntilEndAtEnd(t *testing.T) {
	env := newTestEnv(t)
	env.admin.end = 5
	s := env.stream(t, 5, backend.UntilEnd)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrEndOfStream)
	require.Zero(t, env.readers)
	require.NoError(t, s.Close())
}

func TestStreamFollow(t *testing.T) {
	env := newTestEnv(t)
	env.reader.messages = []kafka.Message{{Partition: 0, Offset: 7, Value: []byte("x"), Time: time.Unix(10, 0)}}
	s := env.stream(t, 7, backend.Follow)

	rec, err := s.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, &backend.Record{Partition: 0, Offset: 7, Value: []byte("x"), Timestamp: time.Unix(10, 0)}, rec)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStreamErrors(t *testing.T) {
	env := newTestEnv(t)
	env.reader.err = kafka.OffsetOutOfRange
	s := env.stream(t, 0, backend.Follow)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrInvalidOffset)
	require.ErrorContains(t, err, "failed to consume orders/0")

	require.NoError(t, s.Close())
	require.True(t, env.reader.closed)
	_, err = s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a, err := env.client.Admin(ctx)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.CreateTopic(ctx, "payments", backend.TopicSpec{Partitions: 4, ReplicationFactor: 3}))
	require.Equal(t, []kafka.TopicConfig{{Topic: "payments", NumPartitions: 4, ReplicationFactor: 3}}, env.admin.created)

	env.admin.createErr = kafka.TopicAlreadyExists
	require.ErrorIs(t, a.CreateTopic(ctx, "payments", backend.TopicSpec{Partitions: 1, ReplicationFactor: 1}), backend.ErrTopicExists)

	require.NoError(t, a.DeleteTopic(ctx, "audit"))
	require.Equal(t, []string{"audit"}, env.admin.deleted)
	env.admin.deleteErr = kafka.UnknownTopicOrPartition
	require.ErrorIs(t, a.DeleteTopic(ctx, "audit"), backend.ErrTopicNotFound)

	topics, err := a.ListTopics(ctx)
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{
		{Name: "audit", Partitions: 1, ReplicationFactor: 3},
		{Name: testTopic, Partitions: 2, ReplicationFactor: 3},
	}, topics)

	topics, err = a.ListTopics(ctx, testTopic, "nope")
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{{Name: testTopic, Partitions: 2, ReplicationFactor: 3}}, topics)
}

func TestClose(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.client.Close())
	require.NoError(t, env.client.Close())
	require.True(t, env.writer.closed)
	_, err := env.client.TopicProducer(context.Background(), testTopic)
	require.ErrorIs(t, err, backend.ErrClosed)
	_, err = env.client.Admin(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}
