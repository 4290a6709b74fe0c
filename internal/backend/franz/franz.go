// Package franz implements the backend facade with twmb/franz-go. Admin and
// offset lookups are issued as raw kmsg requests on the shared client.
package franz

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/config/franz"

	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/kmsg"
)

type franzClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Request(ctx context.Context, req kmsg.Request) (kmsg.Response, error)
	Close()
}

type fetchClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	Close()
}

type fetcherFactory func(topic string, partition int32, offset int64) (fetchClient, error)

type Client struct {
	cfg        *franz.Config
	client     franzClient
	newFetcher fetcherFactory

	done chan struct{}
	once sync.Once
}

func NewClient(cfg *franz.Config) (*Client, error) {
	opts, err := cfg.ClientConfig.ToOpts()
	if err != nil {
		return nil, err
	}
	consumerOpts, err := cfg.ClientConfig.ConsumerOpts()
	if err != nil {
		return nil, err
	}
	kc, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	newFetcher := func(topic string, partition int32, offset int64) (fetchClient, error) {
		fopts := slices.Concat(opts, consumerOpts, []kgo.Opt{
			kgo.ConsumePartitions(map[string]map[int32]kgo.Offset{
				topic: {partition: kgo.NewOffset().At(offset)},
			}),
		})
		fc, err := kgo.NewClient(fopts...)
		if err != nil {
			return nil, err
		}
		return fc, nil
	}
	slog.Info("Created franz backend.", "brokers", *cfg.ClientConfig.SeedBrokers)
	return newClient(cfg, kc, newFetcher), nil
}

func newClient(cfg *franz.Config, client franzClient, newFetcher fetcherFactory) *Client {
	return &Client{cfg: cfg, client: client, newFetcher: newFetcher, done: make(chan struct{})}
}

func (c *Client) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-c.done:
		return backend.ErrClosed
	default:
		return nil
	}
}

func (c *Client) metadata(ctx context.Context, topics ...string) (*kmsg.MetadataResponse, error) {
	req := kmsg.NewPtrMetadataRequest()
	req.AllowAutoTopicCreation = false
	for _, name := range topics {
		t := kmsg.NewMetadataRequestTopic()
		t.Topic = kmsg.StringPtr(name)
		req.Topics = append(req.Topics, t)
	}
	return req.RequestWith(ctx, c.client)
}

// topicPartitions returns the partition ids of a single topic.
func (c *Client) topicPartitions(ctx context.Context, topic string) ([]int32, error) {
	if err := c.check(ctx); err != nil {
		return nil, err
	}
	resp, err := c.metadata(ctx, topic)
	if err != nil {
		return nil, err
	}
	for _, t := range resp.Topics {
		if t.Topic == nil || *t.Topic != topic {
			continue
		}
		if err := kerr.ErrorForCode(t.ErrorCode); err != nil {
			return nil, translate(err, topic)
		}
		ps := make([]int32, 0, len(t.Partitions))
		for _, p := range t.Partitions {
			ps = append(ps, p.Partition)
		}
		return ps, nil
	}
	return nil, fmt.Errorf("%w: %s", backend.ErrTopicNotFound, topic)
}

func (c *Client) endOffset(ctx context.Context, topic string, partition int32) (int64, error) {
	req := kmsg.NewPtrListOffsetsRequest()
	t := kmsg.NewListOffsetsRequestTopic()
	t.Topic = topic
	p := kmsg.NewListOffsetsRequestTopicPartition()
	p.Partition = partition
	p.Timestamp = -1
	t.Partitions = append(t.Partitions, p)
	req.Topics = append(req.Topics, t)
	resp, err := req.RequestWith(ctx, c.client)
	if err != nil {
		return 0, err
	}
	for _, rt := range resp.Topics {
		for _, rp := range rt.Partitions {
			if rt.Topic != topic || rp.Partition != partition {
				continue
			}
			if err := kerr.ErrorForCode(rp.ErrorCode); err != nil {
				return 0, translate(err, topic)
			}
			return rp.Offset, nil
		}
	}
	return 0, fmt.Errorf("no end offset returned for %s/%d", topic, partition)
}

func (c *Client) TopicProducer(ctx context.Context, topic string) (backend.Producer, error) {
	if _, err := c.topicPartitions(ctx, topic); err != nil {
		return nil, err
	}
	return &producer{client: c, topic: topic}, nil
}

func (c *Client) PartitionConsumer(ctx context.Context, topic string, partition int32) (backend.Consumer, error) {
	ps, err := c.topicPartitions(ctx, topic)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(ps, partition) {
		return nil, fmt.Errorf("partition %d does not exist in topic %s", partition, topic)
	}
	return &consumer{client: c, topic: topic, partition: partition}, nil
}

func (c *Client) Admin(ctx context.Context) (backend.Admin, error) {
	if err := c.check(ctx); err != nil {
		return nil, err
	}
	return &admin{client: c}, nil
}

func (c *Client) Close() error {
	c.once.Do(func() {
		close(c.done)
		c.client.Close()
	})
	return nil
}

type producer struct {
	client *Client
	topic  string
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	record := &kgo.Record{Topic: p.topic, Key: key, Value: value}
	if err := p.client.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		if errors.Is(err, kgo.ErrClientClosed) {
			return backend.ErrClosed
		}
		return fmt.Errorf("delivery failure: %w", err)
	}
	return nil
}

func (p *producer) Close() error {
	return nil
}

type consumer struct {
	client    *Client
	topic     string
	partition int32
}

func (c *consumer) Stream(ctx context.Context, offset backend.Offset, mode backend.StreamMode) (backend.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &stream{topic: c.topic, partition: c.partition, pos: offset.Value(), end: -1, done: make(chan struct{})}
	if mode == backend.UntilEnd {
		end, err := c.client.endOffset(ctx, c.topic, c.partition)
		if err != nil {
			return nil, err
		}
		s.end = end
		if s.pos >= s.end {
			return s, nil
		}
	}
	fetcher, err := c.client.newFetcher(c.topic, c.partition, offset.Value())
	if err != nil {
		return nil, err
	}
	s.fetcher = fetcher
	return s, nil
}

func (c *consumer) Close() error {
	return nil
}

// stream owns a dedicated client assigned to one partition.
type stream struct {
	topic     string
	partition int32
	fetcher   fetchClient
	buf       []*kgo.Record
	pos       int64
	end       int64
	done      chan struct{}
	once      sync.Once
}

func (s *stream) Next(ctx context.Context) (*backend.Record, error) {
	for {
		if s.end >= 0 && s.pos >= s.end {
			return nil, backend.ErrEndOfStream
		}
		select {
		case <-s.done:
			return nil, backend.ErrClosed
		default:
		}
		for len(s.buf) > 0 {
			r := s.buf[0]
			s.buf = s.buf[1:]
			if r.Offset < s.pos {
				continue
			}
			s.pos = r.Offset + 1
			return &backend.Record{
				Partition: r.Partition,
				Offset:    r.Offset,
				Key:       r.Key,
				Value:     r.Value,
				Timestamp: r.Timestamp,
			}, nil
		}

		fetches := s.fetcher.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil, backend.ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var fetchErr error
		fetches.EachError(func(topic string, partition int32, err error) {
			if fetchErr == nil {
				fetchErr = fmt.Errorf("failed to fetch %s/%d: %w", topic, partition, err)
			}
		})
		if fetchErr != nil {
			return nil, fetchErr
		}
		fetches.EachRecord(func(r *kgo.Record) {
			s.buf = append(s.buf, r)
		})
	}
}

func (s *stream) Close() error {
	s.once.Do(func() {
		close(s.done)
		if s.fetcher != nil {
			s.fetcher.Close()
		}
	})
	return nil
}

type admin struct {
	client *Client
}

func (a *admin) timeoutMillis() int32 {
	return int32(a.client.cfg.AdminTimeout.Milliseconds())
}

func (a *admin) CreateTopic(ctx context.Context, name string, spec backend.TopicSpec) error {
	if err := a.client.check(ctx); err != nil {
		return err
	}
	req := kmsg.NewPtrCreateTopicsRequest()
	req.TimeoutMillis = a.timeoutMillis()
	t := kmsg.NewCreateTopicsRequestTopic()
	t.Topic = name
	t.NumPartitions = spec.Partitions
	t.ReplicationFactor = spec.ReplicationFactor
	req.Topics = append(req.Topics, t)
	resp, err := req.RequestWith(ctx, a.client.client)
	if err != nil {
		return err
	}
	for _, rt := range resp.Topics {
		if rt.Topic == name {
			return topicError(rt.ErrorCode, rt.ErrorMessage, name)
		}
	}
	return nil
}

func (a *admin) DeleteTopic(ctx context.Context, name string) error {
	if err := a.client.check(ctx); err != nil {
		return err
	}
	req := kmsg.NewPtrDeleteTopicsRequest()
	req.TimeoutMillis = a.timeoutMillis()
	req.TopicNames = []string{name}
	t := kmsg.NewDeleteTopicsRequestTopic()
	t.Topic = kmsg.StringPtr(name)
	req.Topics = append(req.Topics, t)
	resp, err := req.RequestWith(ctx, a.client.client)
	if err != nil {
		return err
	}
	for _, rt := range resp.Topics {
		if rt.Topic != nil && *rt.Topic == name {
			return topicError(rt.ErrorCode, rt.ErrorMessage, name)
		}
	}
	return nil
}

func (a *admin) ListTopics(ctx context.Context, names ...string) ([]backend.TopicMetadata, error) {
	if err := a.client.check(ctx); err != nil {
		return nil, err
	}
	resp, err := a.client.metadata(ctx, names...)
	if err != nil {
		return nil, err
	}
	res := make([]backend.TopicMetadata, 0, len(resp.Topics))
	for _, t := range resp.Topics {
		if t.Topic == nil || t.IsInternal || t.ErrorCode != 0 {
			continue
		}
		md := backend.TopicMetadata{Name: *t.Topic, Partitions: int32(len(t.Partitions))}
		if len(t.Partitions) > 0 {
			md.ReplicationFactor = int16(len(t.Partitions[0].Replicas))
		}
		res = append(res, md)
	}
	slices.SortFunc(res, func(a, b backend.TopicMetadata) int { return cmp.Compare(a.Name, b.Name) })
	return res, nil
}

func (a *admin) Close() error {
	return nil
}

func topicError(code int16, msg *string, topic string) error {
	err := kerr.ErrorForCode(code)
	if err == nil {
		return nil
	}
	if msg != nil && *msg != "" {
		err = fmt.Errorf("%w: %s", err, *msg)
	}
	return translate(err, topic)
}

func translate(err error, topic string) error {
	switch {
	case errors.Is(err, kerr.UnknownTopicOrPartition):
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicNotFound, topic, err)
	case errors.Is(err, kerr.TopicAlreadyExists):
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicExists, topic, err)
	case errors.Is(err, kerr.OffsetOutOfRange):
		return fmt.Errorf("%w: %w", backend.ErrInvalidOffset, err)
	}
	return err
}
