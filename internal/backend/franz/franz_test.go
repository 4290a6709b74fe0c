package franz

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/config/franz"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/kmsg"
)

const testTopic = "orders"

type testFranzClient struct {
	topics     map[string]int32
	internal   map[string]bool
	end        int64
	produceErr error
	createCode int16
	deleteCode int16
	produced   []*kgo.Record
	requests   []kmsg.Request
	closed     bool
}

func (c *testFranzClient) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	res := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		c.produced = append(c.produced, r)
		res = append(res, kgo.ProduceResult{Record: r, Err: c.produceErr})
	}
	return res
}

func (c *testFranzClient) Request(ctx context.Context, req kmsg.Request) (kmsg.Response, error) {
	c.requests = append(c.requests, req)
	switch r := req.(type) {
	case *kmsg.MetadataRequest:
		var names []string
		if r.Topics == nil {
			for name := range c.topics {
				names = append(names, name)
			}
		}
		for _, t := range r.Topics {
			names = append(names, *t.Topic)
		}
		resp := kmsg.NewPtrMetadataResponse()
		for _, name := range names {
			t := kmsg.NewMetadataResponseTopic()
			t.Topic = kmsg.StringPtr(name)
			t.IsInternal = c.internal[name]
			n, ok := c.topics[name]
			if !ok {
				t.ErrorCode = kerr.UnknownTopicOrPartition.Code
			}
			for i := range n {
				p := kmsg.NewMetadataResponseTopicPartition()
				p.Partition = i
				p.Replicas = []int32{1, 2}
				t.Partitions = append(t.Partitions, p)
			}
			resp.Topics = append(resp.Topics, t)
		}
		return resp, nil
	case *kmsg.ListOffsetsRequest:
		resp := kmsg.NewPtrListOffsetsResponse()
		for _, rt := range r.Topics {
			t := kmsg.NewListOffsetsResponseTopic()
			t.Topic = rt.Topic
			for _, rp := range rt.Partitions {
				p := kmsg.NewListOffsetsResponseTopicPartition()
				p.Partition = rp.Partition
				p.Offset = c.end
				t.Partitions = append(t.Partitions, p)
			}
			resp.Topics = append(resp.Topics, t)
		}
		return resp, nil
	case *kmsg.CreateTopicsRequest:
		resp := kmsg.NewPtrCreateTopicsResponse()
		for _, rt := range r.Topics {
			t := kmsg.NewCreateTopicsResponseTopic()
			t.Topic = rt.Topic
			t.ErrorCode = c.createCode
			resp.Topics = append(resp.Topics, t)
		}
		return resp, nil
	case *kmsg.DeleteTopicsRequest:
		resp := kmsg.NewPtrDeleteTopicsResponse()
		for _, name := range r.TopicNames {
			t := kmsg.NewDeleteTopicsResponseTopic()
			t.Topic = kmsg.StringPtr(name)
			t.ErrorCode = c.deleteCode
			resp.Topics = append(resp.Topics, t)
		}
		return resp, nil
	}
	return nil, fmt.Errorf("unexpected request %T", req)
}

func (c *testFranzClient) Close() {
	c.closed = true
}

type testFetcher struct {
	fetches []kgo.Fetches
	closed  bool
}

func (f *testFetcher) PollFetches(ctx context.Context) kgo.Fetches {
	if len(f.fetches) == 0 {
		<-ctx.Done()
		return fetchErr(ctx.Err())
	}
	next := f.fetches[0]
	f.fetches = f.fetches[1:]
	return next
}

func (f *testFetcher) Close() {
	f.closed = true
}

func fetchOf(offsets ...int64) kgo.Fetches {
	var recs []*kgo.Record
	for _, o := range offsets {
		recs = append(recs, &kgo.Record{Topic: testTopic, Offset: o, Value: []byte(fmt.Sprint(o))})
	}
	return kgo.Fetches{{Topics: []kgo.FetchTopic{{
		Topic:      testTopic,
		Partitions: []kgo.FetchPartition{{Partition: 0, Records: recs}},
	}}}}
}

func fetchErr(err error) kgo.Fetches {
	return kgo.Fetches{{Topics: []kgo.FetchTopic{{
		Topic:      testTopic,
		Partitions: []kgo.FetchPartition{{Partition: 0, Err: err}},
	}}}}
}

type testEnv struct {
	client  *Client
	kc      *testFranzClient
	fetcher *testFetcher
	started []int64
}

func newTestEnv() *testEnv {
	env := &testEnv{
		kc: &testFranzClient{
			topics:   map[string]int32{testTopic: 2, "payments": 1, "__consumer_offsets": 50},
			internal: map[string]bool{"__consumer_offsets": true},
		},
		fetcher: &testFetcher{},
	}
	cfg := &franz.Config{AdminTimeout: 15 * time.Second}
	env.client = newClient(cfg, env.kc, func(topic string, partition int32, offset int64) (fetchClient, error) {
		env.started = append(env.started, offset)
		return env.fetcher, nil
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
	require.Len(t, env.kc.produced, 1)
	require.Equal(t, testTopic, env.kc.produced[0].Topic)
	require.Equal(t, []byte("k"), env.kc.produced[0].Key)
	require.Equal(t, []byte("v"), env.kc.produced[0].Value)
}

func TestSendFailure(t *testing.T) {
	env := newTestEnv()
	p, err := env.client.TopicProducer(context.Background(), testTopic)
	require.NoError(t, err)

	env.kc.produceErr = kerr.MessageTooLarge
	err = p.Send(context.Background(), nil, []byte("v"))
	require.ErrorIs(t, err, kerr.MessageTooLarge)
	require.ErrorContains(t, err, "delivery failure")

	env.kc.produceErr = kgo.ErrClientClosed
	require.ErrorIs(t, p.Send(context.Background(), nil, []byte("v")), backend.ErrClosed)
}

func TestUnknownTopicAndPartition(t *testing.T) {
	env := newTestEnv()
	_, err := env.client.TopicProducer(context.Background(), "missing")
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), "missing", 0)
	require.ErrorIs(t, err, backend.ErrTopicNotFound)
	_, err = env.client.PartitionConsumer(context.Background(), testTopic, 5)
	require.EqualError(t, err, "partition 5 does not exist in topic orders")
}

func TestStreamUntilEnd(t *testing.T) {
	env := newTestEnv()
	env.kc.end = 3
	env.fetcher.fetches = []kgo.Fetches{fetchOf(0, 1), fetchOf(2)}

	s := env.stream(t, 1, backend.UntilEnd)
	var offsets []int64
	for {
		rec, err := s.Next(context.Background())
		if errors.Is(err, backend.ErrEndOfStream) {
			break
		}
		require.NoError(t, err)
		offsets = append(offsets, rec.Offset)
		require.Equal(t, fmt.Sprint(rec.Offset), string(rec.Value))
	}
	require.Equal(t, []int64{1, 2}, offsets)
	require.Equal(t, []int64{1}, env.started)

	lo := env.kc.requests[len(env.kc.requests)-1].(*kmsg.ListOffsetsRequest)
	require.Equal(t, int64(-1), lo.Topics[0].Partitions[0].Timestamp)
}

func TestStreamUntilEndAtEnd(t *testing.T) {
	env := newTestEnv()
	env.kc.end = 2
	s := env.stream(t, 2, backend.UntilEnd)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrEndOfStream)
	require.Empty(t, env.started)
	require.NoError(t, s.Close())
}

func TestStreamFollow(t *testing.T) {
	env := newTestEnv()
	env.fetcher.fetches = []kgo.Fetches{fetchOf(4)}
	s := env.stream(t, 4, backend.Follow)

	rec, err := s.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), rec.Offset)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStreamFetchError(t *testing.T) {
	env := newTestEnv()
	env.fetcher.fetches = []kgo.Fetches{fetchErr(kerr.OffsetOutOfRange)}
	s := env.stream(t, 0, backend.Follow)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, kerr.OffsetOutOfRange)
	require.ErrorContains(t, err, "failed to fetch orders/0")
}

func TestStreamClose(t *testing.T) {
	env := newTestEnv()
	s := env.stream(t, 0, backend.Follow)
	require.NoError(t, s.Close())
	require.True(t, env.fetcher.closed)
	_, err := s.Next(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	a, err := env.client.Admin(ctx)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.CreateTopic(ctx, "audit", backend.TopicSpec{Partitions: 3, ReplicationFactor: 2}))
	create := env.kc.requests[0].(*kmsg.CreateTopicsRequest)
	require.Equal(t, int32(15000), create.TimeoutMillis)
	require.Equal(t, "audit", create.Topics[0].Topic)
	require.Equal(t, int32(3), create.Topics[0].NumPartitions)
	require.Equal(t, int16(2), create.Topics[0].ReplicationFactor)

	env.kc.createCode = kerr.TopicAlreadyExists.Code
	require.ErrorIs(t, a.CreateTopic(ctx, "audit", backend.TopicSpec{Partitions: 1, ReplicationFactor: 1}), backend.ErrTopicExists)

	require.NoError(t, a.DeleteTopic(ctx, "payments"))
	del := env.kc.requests[2].(*kmsg.DeleteTopicsRequest)
	require.Equal(t, []string{"payments"}, del.TopicNames)
	require.Equal(t, "payments", *del.Topics[0].Topic)

	env.kc.deleteCode = kerr.UnknownTopicOrPartition.Code
	require.ErrorIs(t, a.DeleteTopic(ctx, "payments"), backend.ErrTopicNotFound)

	topics, err := a.ListTopics(ctx)
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{
		{Name: testTopic, Partitions: 2, ReplicationFactor: 2},
		{Name: "payments", Partitions: 1, ReplicationFactor: 2},
	}, topics)

	topics, err = a.ListTopics(ctx, "payments", "nope")
	require.NoError(t, err)
	require.Equal(t, []backend.TopicMetadata{{Name: "payments", Partitions: 1, ReplicationFactor: 2}}, topics)
}

func TestClose(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.client.Close())
	require.NoError(t, env.client.Close())
	require.True(t, env.kc.closed)
	_, err := env.client.TopicProducer(context.Background(), testTopic)
	require.ErrorIs(t, err, backend.ErrClosed)
	_, err = env.client.Admin(context.Background())
	require.ErrorIs(t, err, backend.ErrClosed)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{err: kerr.UnknownTopicOrPartition, want: backend.ErrTopicNotFound},
		{err: kerr.TopicAlreadyExists, want: backend.ErrTopicExists},
		{err: kerr.OffsetOutOfRange, want: backend.ErrInvalidOffset},
	}
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			got := translate(tc.err, testTopic)
			require.ErrorIs(t, got, tc.want)
			require.ErrorIs(t, got, tc.err)
		})
	}
	other := errors.New("boom")
	require.Equal(t, other, translate(other, testTopic))
}
