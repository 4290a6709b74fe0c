package sarama

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/config"
	saramacfg "github.com/echo8/krpc/internal/config/sarama"
	"github.com/echo8/krpc/internal/metric"

	kafka "github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

const testTopic = "orders"

type testOffsetSource struct {
	partitions map[string][]int32
	newest     int64
	offsetErr  error
	closed     bool
}

func (s *testOffsetSource) Partitions(topic string) ([]int32, error) {
	ps, ok := s.partitions[topic]
	if !ok {
		return nil, kafka.ErrUnknownTopicOrPartition
	}
	return ps, nil
}

func (s *testOffsetSource) GetOffset(topic string, partitionID int32, at int64) (int64, error) {
	if s.offsetErr != nil {
		return 0, s.offsetErr
	}
	return s.newest, nil
}

func (s *testOffsetSource) Close() error {
	s.closed = true
	return nil
}

type testConsumer struct {
	kafka.Consumer
	pc      *testPartitionConsumer
	offset  int64
	created int
	closed  bool
}

func (c *testConsumer) ConsumePartition(topic string, partition int32, offset int64) (kafka.PartitionConsumer, error) {
	c.offset = offset
	return c.pc, nil
}

func (c *testConsumer) Close() error {
	c.closed = true
	return nil
}

type testPartitionConsumer struct {
	kafka.PartitionConsumer
	messages chan *kafka.ConsumerMessage
	errors   chan *kafka.ConsumerError
	closed   bool
}

func newTestPartitionConsumer() *testPartitionConsumer {
	return &testPartitionConsumer{
		messages: make(chan *kafka.ConsumerMessage, 10),
		errors:   make(chan *kafka.ConsumerError, 10),
	}
}

func (pc *testPartitionConsumer) Messages() <-chan *kafka.ConsumerMessage {
	return pc.messages
}

func (pc *testPartitionConsumer) Errors() <-chan *kafka.ConsumerError {
	return pc.errors
}

func (pc *testPartitionConsumer) Close() error {
	pc.closed = true
	return nil
}

type testAdmin struct {
	topics    map[string]kafka.TopicDetail
	createErr error
	deleteErr error
	created   map[string]*kafka.TopicDetail
}

func (a *testAdmin) CreateTopic(topic string, detail *kafka.TopicDetail, validateOnly bool) error {
	if a.createErr != nil {
		return a.createErr
	}
	if a.created == nil {
		a.created = map[string]*kafka.TopicDetail{}
	}
	a.created[topic] = detail
	return nil
}

func (a *testAdmin) DeleteTopic(topic string) error {
	return a.deleteErr
}

func (a *testAdmin) ListTopics() (map[string]kafka.TopicDetail, error) {
	return a.topics, nil
}

type testEnv struct {
	client   *Client
	offsets  *testOffsetSource
	producer *mocks.AsyncProducer
	consumer *testConsumer
	admin    *testAdmin
}

func newTestEnv(t *testing.T) *testEnv {
	sc := kafka.NewConfig()
	sc.Producer.Return.Successes = true
	ms, err := metric.NewService(&config.MetricsConfig{})
	require.NoError(t, err)
	env := &testEnv{
		offsets:  &testOffsetSource{partitions: map[string][]int32{testTopic: {0, 1}}},
		producer: mocks.NewAsyncProducer(t, sc),
		consumer: &testConsumer{pc: newTestPartitionConsumer()},
		admin:    &testAdmin{},
	}
	newConsumer := func() (kafka.Consumer, error) {
		env.consumer.created++
		return env.consumer, nil
	}
	env.client = newClient(saramacfg.DefaultConfig(), env.offsets, env.producer, newConsumer, env.admin, ms)
	t.Cleanup(func() { env.client.Close() })
	return env
}

func TestSend(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.client.TopicProducer(ctx, testTopic)
	require.NoError(t, err)
	defer p.Close()

	env.producer.ExpectInputAndSucceed()
	require.NoError(t, p.Send(ctx, nil, []byte("hello")))

	env.producer.ExpectInputAndFail(kafka.ErrMessageSizeTooLarge)
	err = p.Send(ctx, nil, []byte("too big"))
	require.ErrorIs(t, err, kafka.ErrMessageSizeTooLarge)
	require.ErrorContains(t, err, "delivery failure")
}

func TestSendCancelled(t *testing.T) {
	env := newTestEnv(t)
	p, err := env.client.TopicProducer(context.Background(), testTopic)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = env.client.TopicProducer(ctx, testTopic)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, p)
}

func TestUnknownTopic(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.client.TopicProducer(context.Background(), "missing")
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), "missing", 0)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), testTopic, 5)
	require.ErrorContains(t, err, "partition 5 does not exist in topic orders")
}

func openStream(t *testing.T, env *testEnv, offset int64, mode backend.StreamMode) backend.Stream {
	ctx := context.Background()
	c, err := env.client.PartitionConsumer(ctx, testTopic, 0)
	require.NoError(t, err)
	o, err := backend.AbsoluteOffset(offset)
	require.NoError(t, err)
	s, err := c.Stream(ctx, o, mode)
	require.NoError(t, err)
	return s
}

func TestStreamUntilEnd(t *testing.T) {
	env := newTestEnv(t)
	env.offsets.newest = 3
	pc := env.consumer.pc
	pc.messages <- &kafka.ConsumerMessage{Topic: testTopic, Partition: 0, Offset: 1, Value: []byte("b")}
	pc.messages <- &kafka.ConsumerMessage{Topic: testTopic, Partition: 0, Offset: 2, Value: []byte("c")}

	s := openStream(t, env, 1, backend.UntilEnd)
	require.Equal(t, int64(1), env.consumer.offset)

	ctx := context.Background()
	rec, err := s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, &backend.Record{Partition: 0, Offset: 1, Value: []byte("b")}, rec)
	rec, err = s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), rec.Offset)
	_, err = s.Next(ctx)
	require.ErrorIs(t, err, backend.ErrEndOfStream)

	require.NoError(t, s.Close())
	require.True(t, pc.closed)
	require.True(t, env.consumer.closed)
}

func TestStreamUntilEndAtEnd(t *testing.T) {
	env := newTestEnv(t)
	env.offsets.newest = 3
	s := openStream(t, env, 3, backend.UntilEnd)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrEndOfStream)
	require.Zero(t, env.consumer.created)
	require.NoError(t, s.Close())
}

func TestStreamFollow(t *testing.T) {
	env := newTestEnv(t)
	s := openStream(t, env, 0, backend.Follow)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := s.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	env.consumer.pc.errors <- &kafka.ConsumerError{Topic: testTopic, Partition: 0, Err: kafka.ErrNotLeaderForPartition}
	_, err = s.Next(context.Background())
	require.ErrorIs(t, err, kafka.ErrNotLeaderForPartition)
}

func TestStreamClosed(t *testing.T) {
	env := newTestEnv(t)
	s := openStream(t, env, 0, backend.Follow)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestStreamEndOffsetFailure(t *testing.T) {
	env := newTestEnv(t)
	env.offsets.offsetErr = kafka.ErrUnknownTopicOrPartition
	c, err := env.client.PartitionConsumer(context.Background(), testTopic, 0)
	require.NoError(t, err)
	_, err = c.Stream(context.Background(), backend.Offset{}, backend.UntilEnd)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
}

func TestAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.admin.topics = map[string]kafka.TopicDetail{
		"zeta":  {NumPartitions: 1, ReplicationFactor: 1},
		"alpha": {NumPartitions: 3, ReplicationFactor: 2},
		"mid":   {NumPartitions: 2, ReplicationFactor: 1},
	}
	ctx := context.Background()
	a, err := env.client.Admin(ctx)
	require.NoError(t, err)
	defer a.Close()

	topics, err := a.ListTopics(ctx)
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{
		{Name: "alpha", Partitions: 3, ReplicationFactor: 2},
		{Name: "mid", Partitions: 2, ReplicationFactor: 1},
		{Name: "zeta", Partitions: 1, ReplicationFactor: 1},
	}, topics)

	topics, err = a.ListTopics(ctx, "mid", "nope")
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{{Name: "mid", Partitions: 2, ReplicationFactor: 1}}, topics)

	require.NoError(t, a.CreateTopic(ctx, "t1", backend.TopicSpec{Partitions: 4, ReplicationFactor: 3}))
	require.Equal(t, &kafka.TopicDetail{NumPartitions: 4, ReplicationFactor: 3}, env.admin.created["t1"])

	env.admin.createErr = &kafka.TopicError{Err: kafka.ErrTopicAlreadyExists}
	require.ErrorIs(t, a.CreateTopic(ctx, "t1", backend.TopicSpec{Partitions: 1, ReplicationFactor: 1}), backend.ErrTopicExists)

	env.admin.deleteErr = kafka.ErrUnknownTopicOrPartition
	require.ErrorIs(t, a.DeleteTopic(ctx, "t1"), backend.ErrTopicNotFound)
}

func TestClose(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.client.Close())
	require.True(t, env.offsets.closed)
	require.NoError(t, env.client.Close())

	_, err := env.client.TopicProducer(context.Background(), testTopic)
	require.ErrorIs(t, err, backend.ErrClosed)
	_, err = env.client.Admin(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestTranslate(t *testing.T) {
	plain := errors.New("plain")
	require.Equal(t, plain, translate(plain, testTopic))
	require.ErrorIs(t, translate(kafka.ErrOffsetOutOfRange, testTopic), backend.ErrInvalidOffset)
	require.Equal(t, backend.ErrClosed, translate(kafka.ErrClosedClient, testTopic))
}
