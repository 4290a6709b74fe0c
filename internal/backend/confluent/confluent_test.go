package confluent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/echo8/krpc/internal/backend"
	confluentcfg "github.com/echo8/krpc/internal/config/confluent"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/require"
)

const testTopic = "orders"

type testProducer struct {
	topics     map[string]kafka.TopicMetadata
	high       int64
	deliverErr error
	produceErr error
	silent     bool
	produced   []*kafka.Message
	events     chan kafka.Event
	flushed    bool
	closed     bool
}

func newTestProducer() *testProducer {
	partitions := func(n int32) []kafka.PartitionMetadata {
		var ps []kafka.PartitionMetadata
		for i := range n {
			ps = append(ps, kafka.PartitionMetadata{ID: i, Replicas: []int32{1, 2, 3}})
		}
		return ps
	}
	return &testProducer{
		topics: map[string]kafka.TopicMetadata{
			testTopic:            {Topic: testTopic, Partitions: partitions(2)},
			"payments":           {Topic: "payments", Partitions: partitions(1)},
			"__consumer_offsets": {Topic: "__consumer_offsets", Partitions: partitions(50)},
		},
		events: make(chan kafka.Event),
	}
}

func (p *testProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	if p.produceErr != nil {
		return p.produceErr
	}
	p.produced = append(p.produced, msg)
	if !p.silent {
		res := *msg
		res.TopicPartition.Error = p.deliverErr
		deliveryChan <- &res
	}
	return nil
}

func (p *testProducer) Events() chan kafka.Event {
	return p.events
}

func (p *testProducer) GetMetadata(topic *string, allTopics bool, timeoutMs int) (*kafka.Metadata, error) {
	if allTopics {
		return &kafka.Metadata{Topics: p.topics}, nil
	}
	t, ok := p.topics[*topic]
	if !ok {
		t = kafka.TopicMetadata{Topic: *topic, Error: kafka.NewError(kafka.ErrUnknownTopicOrPart, "unknown topic", false)}
	}
	return &kafka.Metadata{Topics: map[string]kafka.TopicMetadata{*topic: t}}, nil
}

func (p *testProducer) QueryWatermarkOffsets(topic string, partition int32, timeoutMs int) (int64, int64, error) {
	return 0, p.high, nil
}

func (p *testProducer) Flush(timeoutMs int) int {
	p.flushed = true
	return 0
}

func (p *testProducer) Close() {
	p.closed = true
	close(p.events)
}

type testAdmin struct {
	createCode kafka.ErrorCode
	deleteCode kafka.ErrorCode
	created    []kafka.TopicSpecification
	deleted    []string
	closed     bool
}

func (a *testAdmin) CreateTopics(ctx context.Context, topics []kafka.TopicSpecification, options ...kafka.CreateTopicsAdminOption) ([]kafka.TopicResult, error) {
	a.created = append(a.created, topics...)
	var res []kafka.TopicResult
	for _, t := range topics {
		res = append(res, kafka.TopicResult{Topic: t.Topic, Error: kafka.NewError(a.createCode, "", false)})
	}
	return res, nil
}

func (a *testAdmin) DeleteTopics(ctx context.Context, topics []string, options ...kafka.DeleteTopicsAdminOption) ([]kafka.TopicResult, error) {
	a.deleted = append(a.deleted, topics...)
	var res []kafka.TopicResult
	for _, name := range topics {
		res = append(res, kafka.TopicResult{Topic: name, Error: kafka.NewError(a.deleteCode, "", false)})
	}
	return res, nil
}

func (a *testAdmin) Close() {
	a.closed = true
}

type testConsumer struct {
	events   []kafka.Event
	assigned []kafka.TopicPartition
	closed   bool
}

func (c *testConsumer) Assign(partitions []kafka.TopicPartition) error {
	c.assigned = partitions
	return nil
}

func (c *testConsumer) Poll(timeoutMs int) kafka.Event {
	if len(c.events) == 0 {
		time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
		return nil
	}
	e := c.events[0]
	c.events = c.events[1:]
	return e
}

func (c *testConsumer) Close() error {
	c.closed = true
	return nil
}

func message(offset int64, value string) *kafka.Message {
	topic := testTopic
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: 0, Offset: kafka.Offset(offset)},
		Value:          []byte(value),
	}
}

type testEnv struct {
	client    *Client
	producer  *testProducer
	admin     *testAdmin
	consumer  *testConsumer
	consumers int
}

func newTestEnv() *testEnv {
	env := &testEnv{producer: newTestProducer(), admin: &testAdmin{}, consumer: &testConsumer{}}
	cfg := &confluentcfg.Config{PollTimeout: 5 * time.Millisecond, QueryTimeout: time.Second}
	env.client = newClient(cfg, env.producer, env.admin, func() (partitionConsumer, error) {
		env.consumers++
		return env.consumer, nil
	})
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
	env := newTestEnv()
	p, err := env.client.TopicProducer(context.Background(), testTopic)
	require.NoError(t, err)
	require.NoError(t, p.Send(context.Background(), []byte("k"), []byte("v")))
	require.Len(t, env.producer.produced, 1)
	msg := env.producer.produced[0]
	require.Equal(t, testTopic, *msg.TopicPartition.Topic)
	require.Equal(t, kafka.PartitionAny, msg.TopicPartition.Partition)
	require.Equal(t, []byte("k"), msg.Key)
	require.Equal(t, []byte("v"), msg.Value)
}

func TestSendFailure(t *testing.T) {
	env := newTestEnv()
	p, err := env.client.TopicProducer(context.Background(), testTopic)
	require.NoError(t, err)

	env.producer.deliverErr = kafka.NewError(kafka.ErrMsgSizeTooLarge, "too large", false)
	err = p.Send(context.Background(), nil, []byte("v"))
	require.ErrorContains(t, err, "delivery failure")

	env.producer.deliverErr = nil
	env.producer.produceErr = kafka.NewError(kafka.ErrQueueFull, "queue full", false)
	require.ErrorContains(t, p.Send(context.Background(), nil, []byte("v")), "failed to enqueue message")
}

func TestSendCancel(t *testing.T) {
	env := newTestEnv()
	env.producer.silent = true
	p, err := env.client.TopicProducer(context.Background(), testTopic)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, p.Send(ctx, nil, []byte("v")), context.DeadlineExceeded)
}

func TestUnknownTopicAndPartition(t *testing.T) {
	env := newTestEnv()
	_, err := env.client.TopicProducer(context.Background(), "missing")
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), "missing", 0)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), testTopic, 9)
	require.EqualError(t, err, "partition 9 does not exist in topic orders")
}

func TestStreamUntilEnd(t *testing.T) {
	env := newTestEnv()
	env.producer.high = 3
	env.consumer.events = []kafka.Event{
		kafka.NewError(kafka.ErrTransport, "broker down", false),
		message(1, "b"),
		kafka.PartitionEOF{},
		message(2, "c"),
	}
	s := env.stream(t, 1, backend.UntilEnd)
	require.Len(t, env.consumer.assigned, 1)
	require.Equal(t, kafka.Offset(1), env.consumer.assigned[0].Offset)
	require.Equal(t, int32(0), env.consumer.assigned[0].Partition)

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
	require.NoError(t, s.Close())
	require.True(t, env.consumer.closed)
}

func TestStreamUntilEndAtEnd(t *testing.T) {
	env := newTestEnv()
	env.producer.high = 4
	s := env.stream(t, 4, backend.UntilEnd)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrEndOfStream)
	require.Zero(t, env.consumers)
	require.NoError(t, s.Close())
}

func TestStreamFollow(t *testing.T) {
	env := newTestEnv()
	env.consumer.events = []kafka.Event{message(0, "a")}
	s := env.stream(t, 0, backend.Follow)

	rec, err := s.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, "a", string(rec.Value))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStreamErrors(t *testing.T) {
	env := newTestEnv()
	env.consumer.events = []kafka.Event{kafka.NewError(kafka.ErrOffsetOutOfRange, "out of range", false)}
	s := env.stream(t, 0, backend.Follow)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrInvalidOffset)
	require.ErrorContains(t, err, "failed to consume orders/0")

	require.NoError(t, s.Close())
	_, err = s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	a, err := env.client.Admin(ctx)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.CreateTopic(ctx, "audit", backend.TopicSpec{Partitions: 6, ReplicationFactor: 3}))
	require.Equal(t, []kafka.TopicSpecification{{Topic: "audit", NumPartitions: 6, ReplicationFactor: 3}}, env.admin.created)

	env.admin.createCode = kafka.ErrTopicAlreadyExists
	require.ErrorIs(t, a.CreateTopic(ctx, "audit", backend.TopicSpec{Partitions: 1, ReplicationFactor: 1}), backend.ErrTopicExists)

	require.NoError(t, a.DeleteTopic(ctx, "payments"))
	require.Equal(t, []string{"payments"}, env.admin.deleted)
	env.admin.deleteCode = kafka.ErrUnknownTopicOrPart
	require.ErrorIs(t, a.DeleteTopic(ctx, "payments"), backend.ErrTopicNotFound)

	topics, err := a.ListTopics(ctx)
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{
		{Name: testTopic, Partitions: 2, ReplicationFactor: 3},
		{Name: "payments", Partitions: 1, ReplicationFactor: 3},
	}, topics)

	topics, err = a.ListTopics(ctx, "payments", "nope")
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{{Name: "payments", Partitions: 1, ReplicationFactor: 3}}, topics)
}

func TestClose(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.client.Close())
	require.NoError(t, env.client.Close())
	require.True(t, env.producer.flushed)
	require.True(t, env.producer.closed)
	require.True(t, env.admin.closed)
	_, err := env.client.TopicProducer(context.Background(), testTopic)
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		code kafka.ErrorCode
		want error
	}{
		{code: kafka.ErrUnknownTopicOrPart, want: backend.ErrTopicNotFound},
		{code: kafka.ErrUnknownTopic, want: backend.ErrTopicNotFound},
		{code: kafka.ErrTopicAlreadyExists, want: backend.ErrTopicExists},
		{code: kafka.ErrOffsetOutOfRange, want: backend.ErrInvalidOffset},
	}
	for _, tc := range tests {
		t.Run(tc.code.String(), func(t *testing.T) {
			require.ErrorIs(t, translate(kafka.NewError(tc.code, "", false), testTopic), tc.want)
		})
	}
	other := errors.New("boom")
	require.Equal(t, other, translate(other, testTopic))
}
