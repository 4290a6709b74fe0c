// Package sarama implements the backend facade with IBM/sarama.
package sarama

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/echo8/krpc/internal/backend"
	saramacfg "github.com/echo8/krpc/internal/config/sarama"
	"github.com/echo8/krpc/internal/metric"

	kafka "github.com/IBM/sarama"
)

type saramaAsyncProducer interface {
	Input() chan<- *kafka.ProducerMessage
	Errors() <-chan *kafka.ProducerError
	Successes() <-chan *kafka.ProducerMessage
	Close() error
}

// offsetSource is the part of kafka.Client used to look up partitions.
type offsetSource interface {
	Partitions(topic string) ([]int32, error)
	GetOffset(topic string, partitionID int32, time int64) (int64, error)
	Close() error
}

type clusterAdmin interface {
	CreateTopic(topic string, detail *kafka.TopicDetail, validateOnly bool) error
	DeleteTopic(topic string) error
	ListTopics() (map[string]kafka.TopicDetail, error)
}

type Client struct {
	cfg         *saramacfg.Config
	client      offsetSource
	producer    saramaAsyncProducer
	newConsumer func() (kafka.Consumer, error)
	admin       clusterAdmin
	metrics     metric.Service

	done chan struct{}
	once sync.Once
}

func NewClient(cfg *saramacfg.Config, ms metric.Service) (*Client, error) {
	sc, err := cfg.ClientConfig.ToConfig()
	if err != nil {
		return nil, err
	}
	addrs, err := cfg.ClientConfig.GetAddrs()
	if err != nil {
		return nil, err
	}
	kc, err := kafka.NewClient(addrs, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}
	ap, err := kafka.NewAsyncProducerFromClient(kc)
	if err != nil {
		kc.Close()
		return nil, err
	}
	admin, err := kafka.NewClusterAdminFromClient(kc)
	if err != nil {
		ap.Close()
		kc.Close()
		return nil, err
	}
	newConsumer := func() (kafka.Consumer, error) {
		return kafka.NewConsumerFromClient(kc)
	}
	slog.Info("Created sarama backend.", "brokers", addrs)
	return newClient(cfg, kc, ap, newConsumer, admin, ms), nil
}

func newClient(cfg *saramacfg.Config, client offsetSource, ap saramaAsyncProducer,
	newConsumer func() (kafka.Consumer, error), admin clusterAdmin, ms metric.Service) *Client {
	c := &Client{
		cfg:         cfg,
		client:      client,
		producer:    ap,
		newConsumer: newConsumer,
		admin:       admin,
		metrics:     ms,
		done:        make(chan struct{}),
	}
	go func() {
		for e := range ap.Errors() {
			slog.Error("Kafka delivery failure.", "topic", e.Msg.Topic, "error", e.Err)
			if resCh, ok := e.Msg.Metadata.(chan error); ok {
				resCh <- e.Err
			}
		}
	}()
	go func() {
		for msg := range ap.Successes() {
			if resCh, ok := msg.Metadata.(chan error); ok {
				resCh <- nil
			}
		}
	}()
	if ms.Config().Enable.Backend && cfg.ClientConfig.MetricRegistry != nil {
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
				c.metrics.RecordSaramaMetrics(c.cfg.ClientConfig.MetricRegistry)
			case <-c.done:
				return
			}
		}
	}()
}

func (c *Client) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Client) partitions(ctx context.Context, topic string) ([]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.isClosed() {
		return nil, backend.ErrClosed
	}
	ps, err := c.client.Partitions(topic)
	if err != nil {
		return nil, translate(err, topic)
	}
	return ps, nil
}

func (c *Client) TopicProducer(ctx context.Context, topic string) (backend.Producer, error) {
	if _, err := c.partitions(ctx, topic); err != nil {
		return nil, err
	}
	return &producer{client: c, topic: topic}, nil
}

func (c *Client) PartitionConsumer(ctx context.Context, topic string, partition int32) (backend.Consumer, error) {
	ps, err := c.partitions(ctx, topic)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(ps, partition) {
		return nil, fmt.Errorf("partition %d does not exist in topic %s", partition, topic)
	}
	return &consumer{client: c, topic: topic, partition: partition}, nil
}

func (c *Client) Admin(ctx context.Context) (backend.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.isClosed() {
		return nil, backend.ErrClosed
	}
	return &admin{ca: c.admin}, nil
}

// Close stops the producer and then the underlying client. The admin shares
// the client so it is not closed separately.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		err = errors.Join(c.producer.Close(), c.client.Close())
	})
	return err
}

type producer struct {
	client *Client
	topic  string
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	msg := &kafka.ProducerMessage{Topic: p.topic, Value: kafka.ByteEncoder(value)}
	if key != nil {
		msg.Key = kafka.ByteEncoder(key)
	}
	resCh := make(chan error, 1)
	msg.Metadata = resCh
	select {
	case p.client.producer.Input() <- msg:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.client.done:
		return backend.ErrClosed
	}
	select {
	case err := <-resCh:
		if err != nil {
			return fmt.Errorf("delivery failure: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close is a no-op. The async producer belongs to the client.
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
	s := &stream{end: -1, pos: offset.Value(), done: make(chan struct{})}
	if mode == backend.UntilEnd {
		end, err := c.client.client.GetOffset(c.topic, c.partition, kafka.OffsetNewest)
		if err != nil {
			return nil, translate(err, c.topic)
		}
		s.end = end
		if s.pos >= s.end {
			return s, nil
		}
	}
	kc, err := c.client.newConsumer()
	if err != nil {
		return nil, err
	}
	pc, err := kc.ConsumePartition(c.topic, c.partition, offset.Value())
	if err != nil {
		kc.Close()
		return nil, translate(err, c.topic)
	}
	s.consumer = kc
	s.pc = pc
	return s, nil
}

func (c *consumer) Close() error {
	return nil
}

type stream struct {
	consumer kafka.Consumer
	pc       kafka.PartitionConsumer
	pos      int64
	end      int64
	done     chan struct{}
	once     sync.Once
}

func (s *stream) Next(ctx context.Context) (*backend.Record, error) {
	if s.end >= 0 && s.pos >= s.end {
		return nil, backend.ErrEndOfStream
	}
	select {
	case msg, ok := <-s.pc.Messages():
		if !ok {
			return nil, backend.ErrClosed
		}
		s.pos = msg.Offset + 1
		return &backend.Record{
			Partition: msg.Partition,
			Offset:    msg.Offset,
			Key:       msg.Key,
			Value:     msg.Value,
			Timestamp: msg.Timestamp,
		}, nil
	case err, ok := <-s.pc.Errors():
		if !ok {
			return nil, backend.ErrClosed
		}
		return nil, fmt.Errorf("failed to consume %s/%d: %w", err.Topic, err.Partition, err.Err)
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		return nil, backend.ErrClosed
	}
}

func (s *stream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		if s.pc != nil {
			err = errors.Join(s.pc.Close(), s.consumer.Close())
		}
	})
	return err
}

type admin struct {
	ca clusterAdmin
}

func (a *admin) CreateTopic(ctx context.Context, name string, spec backend.TopicSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	detail := &kafka.TopicDetail{NumPartitions: spec.Partitions, ReplicationFactor: spec.ReplicationFactor}
	if err := a.ca.CreateTopic(name, detail, false); err != nil {
		return translate(err, name)
	}
	return nil
}

func (a *admin) DeleteTopic(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.ca.DeleteTopic(name); err != nil {
		return translate(err, name)
	}
	return nil
}

func (a *admin) ListTopics(ctx context.Context, names ...string) ([]backend.TopicMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	details, err := a.ca.ListTopics()
	if err != nil {
		return nil, err
	}
	res := make([]backend.TopicMetadata, 0, len(details))
	for name, d := range details {
		if len(names) > 0 && !slices.Contains(names, name) {
			continue
		}
		res = append(res, backend.TopicMetadata{Name: name, Partitions: d.NumPartitions, ReplicationFactor: d.ReplicationFactor})
	}
	slices.SortFunc(res, func(a, b backend.TopicMetadata) int { return cmp.Compare(a.Name, b.Name) })
	return res, nil
}

// Close is a no-op. Closing the cluster admin would close the shared client.
func (a *admin) Close() error {
	return nil
}

func translate(err error, topic string) error {
	kerr := err
	var te *kafka.TopicError
	if errors.As(err, &te) {
		kerr = te.Err
	}
	switch {
	case errors.Is(kerr, kafka.ErrUnknownTopicOrPartition):
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicNotFound, topic, err)
	case errors.Is(kerr, kafka.ErrTopicAlreadyExists):
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicExists, topic, err)
	case errors.Is(kerr, kafka.ErrOffsetOutOfRange):
		return fmt.Errorf("%w: %w", backend.ErrInvalidOffset, err)
	case errors.Is(kerr, kafka.ErrClosedClient):
		return backend.ErrClosed
	}
	return err
}
