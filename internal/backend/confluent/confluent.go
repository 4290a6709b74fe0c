// Package confluent implements the backend facade with confluent-kafka-go.
package confluent

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/echo8/krpc/internal/backend"
	confluentcfg "github.com/echo8/krpc/internal/config/confluent"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/google/uuid"
)

type confluentProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Events() chan kafka.Event
	GetMetadata(topic *string, allTopics bool, timeoutMs int) (*kafka.Metadata, error)
	QueryWatermarkOffsets(topic string, partition int32, timeoutMs int) (low, high int64, err error)
	Flush(timeoutMs int) int
	Close()
}

type topicAdmin interface {
	CreateTopics(ctx context.Context, topics []kafka.TopicSpecification, options ...kafka.CreateTopicsAdminOption) ([]kafka.TopicResult, error)
	DeleteTopics(ctx context.Context, topics []string, options ...kafka.DeleteTopicsAdminOption) ([]kafka.TopicResult, error)
	Close()
}

type partitionConsumer interface {
	Assign(partitions []kafka.TopicPartition) error
	Poll(timeoutMs int) kafka.Event
	Close() error
}

type Client struct {
	cfg         *confluentcfg.Config
	producer    confluentProducer
	admin       topicAdmin
	newConsumer func() (partitionConsumer, error)

	done chan struct{}
	once sync.Once
}

func NewClient(cfg *confluentcfg.Config) (*Client, error) {
	p, err := kafka.NewProducer(cfg.ClientConfig.ToProducerConfigMap())
	if err != nil {
		return nil, err
	}
	admin, err := kafka.NewAdminClientFromProducer(p)
	if err != nil {
		p.Close()
		return nil, err
	}
	newConsumer := func() (partitionConsumer, error) {
		// Offsets are assigned explicitly, the group id only satisfies librdkafka.
		kc, err := kafka.NewConsumer(cfg.ClientConfig.ToConsumerConfigMap("krpc-" + uuid.NewString()))
		if err != nil {
			return nil, err
		}
		return kc, nil
	}
	slog.Info("Created confluent backend.", "brokers", *cfg.ClientConfig.BootstrapServers)
	return newClient(cfg, p, admin, newConsumer), nil
}

func newClient(cfg *confluentcfg.Config, p confluentProducer, admin topicAdmin, newConsumer func() (partitionConsumer, error)) *Client {
	c := &Client{
		cfg:         cfg,
		producer:    p,
		admin:       admin,
		newConsumer: newConsumer,
		done:        make(chan struct{}),
	}
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case kafka.Error:
				slog.Error("Kafka client error.", "code", ev.Code(), "error", ev)
			default:
				slog.Debug("Ignored kafka event.", "event", ev)
			}
		}
	}()
	return c
}

func (c *Client) queryTimeoutMs() int {
	return int(c.cfg.QueryTimeout.Milliseconds())
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

func (c *Client) topic(ctx context.Context, name string) (*kafka.TopicMetadata, error) {
	if err := c.check(ctx); err != nil {
		return nil, err
	}
	md, err := c.producer.GetMetadata(&name, false, c.queryTimeoutMs())
	if err != nil {
		return nil, translate(err, name)
	}
	t, ok := md.Topics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", backend.ErrTopicNotFound, name)
	}
	if t.Error.Code() != kafka.ErrNoError {
		return nil, translate(t.Error, name)
	}
	return &t, nil
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
	if !slices.ContainsFunc(t.Partitions, func(p kafka.PartitionMetadata) bool { return p.ID == partition }) {
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
		if n := c.producer.Flush(c.queryTimeoutMs()); n > 0 {
			slog.Warn("Unflushed messages on close.", "count", n)
		}
		c.admin.Close()
		c.producer.Close()
	})
	return nil
}

type producer struct {
	client *Client
	topic  string
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	if err := p.client.check(ctx); err != nil {
		return err
	}
	resCh := make(chan kafka.Event, 1)
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            key,
		Value:          value,
	}
	if err := p.client.producer.Produce(msg, resCh); err != nil {
		return fmt.Errorf("failed to enqueue message: %w", translate(err, p.topic))
	}
	select {
	case e := <-resCh:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failure: %w", translate(m.TopicPartition.Error, p.topic))
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
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
	s := &stream{
		topic:         c.topic,
		partition:     c.partition,
		pollTimeoutMs: int(c.client.cfg.PollTimeout.Milliseconds()),
		pos:           offset.Value(),
		end:           -1,
		done:          make(chan struct{}),
	}
	if mode == backend.UntilEnd {
		_, high, err := c.client.producer.QueryWatermarkOffsets(c.topic, c.partition, c.client.queryTimeoutMs())
		if err != nil {
			return nil, translate(err, c.topic)
		}
		s.end = high
		if s.pos >= s.end {
			return s, nil
		}
	}
	pc, err := c.client.newConsumer()
	if err != nil {
		return nil, err
	}
	assignment := []kafka.TopicPartition{{Topic: &c.topic, Partition: c.partition, Offset: kafka.Offset(s.pos)}}
	if err := pc.Assign(assignment); err != nil {
		pc.Close()
		return nil, translate(err, c.topic)
	}
	s.consumer = pc
	return s, nil
}

func (c *consumer) Close() error {
	return nil
}

type stream struct {
	topic         string
	partition     int32
	pollTimeoutMs int
	consumer      partitionConsumer
	pos           int64
	end           int64
	done          chan struct{}
	once          sync.Once
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
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch e := s.consumer.Poll(s.pollTimeoutMs).(type) {
		case *kafka.Message:
			if e.TopicPartition.Error != nil {
				return nil, s.failure(e.TopicPartition.Error)
			}
			offset := int64(e.TopicPartition.Offset)
			if offset < s.pos {
				continue
			}
			s.pos = offset + 1
			return &backend.Record{
				Partition: e.TopicPartition.Partition,
				Offset:    offset,
				Key:       e.Key,
				Value:     e.Value,
				Timestamp: e.Timestamp,
			}, nil
		case kafka.Error:
			if e.IsFatal() || e.Code() == kafka.ErrUnknownTopicOrPart || e.Code() == kafka.ErrOffsetOutOfRange {
				return nil, s.failure(e)
			}
			slog.Warn("Transient consumer error.", "topic", s.topic, "partition", s.partition, "error", e)
		}
	}
}

func (s *stream) failure(err error) error {
	return fmt.Errorf("failed to consume %s/%d: %w", s.topic, s.partition, translate(err, s.topic))
}

func (s *stream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		if s.consumer != nil {
			err = s.consumer.Close()
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
	res, err := a.client.admin.CreateTopics(ctx, []kafka.TopicSpecification{{
		Topic:             name,
		NumPartitions:     int(spec.Partitions),
		ReplicationFactor: int(spec.ReplicationFactor),
	}})
	if err != nil {
		return translate(err, name)
	}
	return topicResult(res, name)
}

func (a *admin) DeleteTopic(ctx context.Context, name string) error {
	if err := a.client.check(ctx); err != nil {
		return err
	}
	res, err := a.client.admin.DeleteTopics(ctx, []string{name})
	if err != nil {
		return translate(err, name)
	}
	return topicResult(res, name)
}

func (a *admin) ListTopics(ctx context.Context, names ...string) ([]backend.TopicMetadata, error) {
	if err := a.client.check(ctx); err != nil {
		return nil, err
	}
	md, err := a.client.producer.GetMetadata(nil, true, a.client.queryTimeoutMs())
	if err != nil {
		return nil, err
	}
	res := make([]backend.TopicMetadata, 0, len(md.Topics))
	for name, t := range md.Topics {
		// librdkafka metadata does not flag internal topics.
		if strings.HasPrefix(name, "__") || t.Error.Code() != kafka.ErrNoError {
			continue
		}
		if len(names) > 0 && !slices.Contains(names, name) {
			continue
		}
		tm := backend.TopicMetadata{Name: name, Partitions: int32(len(t.Partitions))}
		if len(t.Partitions) > 0 {
			tm.ReplicationFactor = int16(len(t.Partitions[0].Replicas))
		}
		res = append(res, tm)
	}
	slices.SortFunc(res, func(a, b backend.TopicMetadata) int { return cmp.Compare(a.Name, b.Name) })
	return res, nil
}

func (a *admin) Close() error {
	return nil
}

func topicResult(res []kafka.TopicResult, name string) error {
	for _, r := range res {
		if r.Topic == name && r.Error.Code() != kafka.ErrNoError {
			return translate(r.Error, name)
		}
	}
	return nil
}

func translate(err error, topic string) error {
	var kerr kafka.Error
	if !errors.As(err, &kerr) {
		return err
	}
	switch kerr.Code() {
	case kafka.ErrUnknownTopicOrPart, kafka.ErrUnknownTopic:
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicNotFound, topic, err)
	case kafka.ErrTopicAlreadyExists:
		return fmt.Errorf("%w: %s: %w", backend.ErrTopicExists, topic, err)
	case kafka.ErrOffsetOutOfRange:
		return fmt.Errorf("%w: %w", backend.ErrInvalidOffset, err)
	}
	return err
}
