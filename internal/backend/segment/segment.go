// Package segment implements the backend facade with segmentio/kafka-go.
package segment

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/echo8/krpc/internal/backend"
	segmentcfg "github.com/echo8/krpc/internal/config/segment"
	"github.com/echo8/krpc/internal/metric"

	kafka "github.com/segmentio/kafka-go"
)

type segmentWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Stats() kafka.WriterStats
	Close() error
}

// adminClient is the subset of kafka.Client used for metadata and topic
// management.
type adminClient interface {
	Metadata(ctx context.Context, req *kafka.MetadataRequest) (*kafka.MetadataResponse, error)
	CreateTopics(ctx context.Context, req *kafka.CreateTopicsRequest) (*kafka.CreateTopicsResponse, error)
	DeleteTopics(ctx context.Context, req *kafka.DeleteTopicsRequest) (*kafka.DeleteTopicsResponse, error)
	ListOffsets(ctx context.Context, req *kafka.ListOffsetsRequest) (*kafka.ListOffsetsResponse, error)
}

type partitionReader interface {
	SetOffset(offset int64) error
	FetchMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type readerFactory func(topic string, partition int) (partitionReader, error)

type Client struct {
	cfg       *segmentcfg.Config
	writer    segmentWriter
	admin     adminClient
	newReader readerFactory
	metrics   metric.Service

	done chan struct{}
	once sync.Once
}

func NewClient(cfg *segmentcfg.Config, ms metric.Service) (*Client, error) {
	transport, err := cfg.ClientConfig.ToTransport()
	if err != nil {
		return nil, err
	}
	writer, err := cfg.ClientConfig.ToWriter(transport)
	if err != nil {
		return nil, err
	}
	admin := &kafka.Client{
		Addr:      kafka.TCP(cfg.ClientConfig.Brokers()...),
		Transport: transport,
	}
	newReader := func(topic string, partition int) (partitionReader, error) {
		rc, err := cfg.ClientConfig.ToReaderConfig(topic, partition)
		if err != nil {
			return nil, err
		}
		return kafka.NewReader(rc), nil
	}
	slog.Info("Created segment backend.", "brokers", cfg.ClientConfig.Brokers())
	return newClient(cfg, writer, admin, newReader, ms), nil
}

func newClient(cfg *segmentcfg.Config, writer segmentWriter, admin adminClient, newReader readerFactory, ms metric.Service) *Client {
	c := &Client{
		cfg:       cfg,
		writer:    writer,
		admin:     admin,
		newReader: newReader,
		metrics:   ms,
		done:      make(chan struct{}),
	}
	if ms.Config().Enable.Backend {
		c.setupMetrics()
	}
	return c
}

func (c *Client) setupMetrics() {
	go func() {
		ticker := time.NewTicker(c.cfg.MetricsFlushDuration)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.metrics.RecordSegmentMetrics(c.writer.Stats())
			case <-c.done:
				return
			}
		}
	}()
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

func (c *Client) topic(ctx context.Context, name string) (*kafka.Topic, error) {
	if err := c.check(ctx); err != nil {
		return nil, err
	}
	resp, err := c.admin.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{name}})
	if err != nil {
		return nil, err
	}
	for i := range resp.Topics {
		t := &resp.Topics[i]
		if t.Name != name {
			continue
		}
		if t.Error != nil {
			return nil, translate(t.Error, name)
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", backend.ErrTopicNotFound, name)
}

func (c *Client) endOffset(ctx context.Context, topic string, partition int32) (int64, error) {
	resp, err := c.admin.ListOffsets(ctx, &kafka.ListOffsetsRequest{
		Topics: map[string][]kafka.OffsetRequest{topic: {kafka.LastOffsetOf(int(partition))}},
	})
	if err != nil {
		return 0, err
	}
	for _, po := range resp.Topics[topic] {
		if po.Partition != int(partition) {
			continue
		}
		if po.Error != nil {
			return 0, translate(po.Error, topic)
		}
		return po.LastOffset, nil
	}
	return 0, fmt.Errorf("no end offset returned for %s/%d", topic, partition)
}

func (c *Client) TopicProducer(ctx context.Context, topic string) (backend.Producer, error) {
	if _, err := c.topic(ctx, topic); err != nil {
		return nil, err
	}
	return &producer{client: c, topic: topic}, nil
}

func (c *Client) PartitionConsumer(ctx context.Context, topic string, partition int32) (backend.Consumer, error) {
	t, err := c.topic(ctx, topic)
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(t.Partitions, func(p kafka.Partition) bool { return p.ID == int(partition) }) {
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
	var err error
	c.once.Do(func() {
		close(c.done)
		err = c.writer.Close()
	})
	return err
}

type producer struct {
	client *Client
	topic  string
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	err := p.client.writer.WriteMessages(ctx, kafka.Message{Topic: p.topic, Key: key, Value: value})
	if err == nil {
		return nil
	}
	var werrs kafka.WriteErrors
	if errors.As(err, &werrs) && len(werrs) == 1 {
		err = werrs[0]
	}
	if errors.Is(err, io.ErrClosedPipe) {
		return backend.ErrClosed
	}
	return fmt.Errorf("delivery failure: %w", translate(err, p.topic))
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
	reader, err := c.client.newReader(c.topic, int(c.partition))
	if err != nil {
		return nil, err
	}
	if err := reader.SetOffset(s.pos); err != nil {
		reader.Close()
		return nil, err
	}
	s.reader = reader
	return s, nil
}

func (c *consumer) Close() error {
	return nil
}

type stream struct {
	topic     string
	partition int32
	reader    partitionReader
	pos       int64
	end       int64
	done      chan struct{}
	once      sync.Once
}

func (s *stream) Next(ctx context.Context) (*backend.Record, error) {
	if s.end >= 0 && s.pos >= s.end {
		return nil, backend.ErrEndOfStream
	}
	select {
	case <-s.done:
		return nil, backend.ErrClosed
	default:
	}
	msg, err := s.reader.FetchMessage(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, io.EOF) {
			return nil, backend.ErrClosed
		}
		return nil, fmt.Errorf("failed to consume %s/%d: %w", s.topic, s.partition, translate(err, s.topic))
	}
	s.pos = msg.Offset + 1
	return &backend.Record{
		Partition: int32(msg.Partition),
		Offset:    msg.Offset,
		Key:       msg.Key,
		Value:     msg.Value,
		Timestamp: msg.Time,
	}, nil
}

func (s *stream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		if s.reader != nil {
			err = s.reader.Close()
		}
	})
	return err
}

type admin struct {
	client *Client
}

func (a *admin) CreateTopic(ctx context.Context, name string, spec backend.TopicSpec) error {
	if err := a.client.check(ctx); err != nil {
		return err
	}
	resp, err := a.client.admin.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{
			Topic:             name,
			NumPartitions:     int(spec.Partitions),
			ReplicationFactor: int(spec.ReplicationFactor),
		}},
	})
	if err != nil {
		return err
	}
	if err := resp.Errors[name]; err != nil {
		return translate(err, name)
	}
	return nil
}

func (a *admin) DeleteTopic(ctx context.Context, name string) error {
	if err := a.client.check(ctx); err != nil {
		return err
	}
	resp, err := a.client.admin.DeleteTopics(ctx, &kafka.DeleteTopicsRequest{Topics: []string{name}})
	if err != nil {
		return err
	}
	if err := resp.Errors[name]; err != nil {
		return translate(err, name)
	}
	return nil
}

func (a *admin) ListTopics(ctx context.Context, names ...string) ([]backend.TopicMetadata, error) {
	if err := a.client.check(ctx); err != nil {
		return nil, err
	}
	resp, err := a.client.admin.Metadata(ctx, &kafka.MetadataRequest{Topics: names})
	if err != nil {
		return nil, err
	}
	res := make([]backend.TopicMetadata, 0, len(resp.Topics))
	for _, t := range resp.Topics {
		if t.Internal || t.Error != nil {
			continue
		}
		md := backend.TopicMetadata{Name: t.Name, Partitions: int32(len(t.Partitions))}
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

func translate(err error, topic string) error {
	switch {
	case errors.Is(err, kafka.UnknownTopicOrPartition):
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicNotFound, topic, err)
	case errors.Is(err, kafka.TopicAlreadyExists):
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicExists, topic, err)
	case errors.Is(err, kafka.OffsetOutOfRange):
		return fmt.Errorf("%w: %w", backend.ErrInvalidOffset, err)
	}
	return err
}
