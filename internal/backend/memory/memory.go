// Package memory is an in-process backend. Topics live in memory for the
// lifetime of the client.
package memory

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/config/memory"
)

type Client struct {
	cfg    *memory.Config
	mu     sync.RWMutex
	topics map[string]*topic
	order  []string
	closed chan struct{}
	once   sync.Once
}

func NewClient(cfg *memory.Config) (*Client, error) {
	c := &Client{
		cfg:    cfg,
		topics: make(map[string]*topic),
		closed: make(chan struct{}),
	}
	for _, name := range cfg.Topics {
		if err := c.createTopic(name, backend.TopicSpec{Partitions: cfg.DefaultPartitions, ReplicationFactor: 1}); err != nil {
			return nil, err
		}
	}
	slog.Info("Created in-memory backend.", "topics", len(cfg.Topics))
	return c, nil
}

func (c *Client) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *Client) lookup(name string) (*topic, error) {
	if c.isClosed() {
		return nil, backend.ErrClosed
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.topics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", backend.ErrTopicNotFound, name)
	}
	return t, nil
}

func (c *Client) TopicProducer(ctx context.Context, name string) (backend.Producer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return &producer{client: c, topic: t}, nil
}

func (c *Client) PartitionConsumer(ctx context.Context, name string, partition int32) (backend.Consumer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	if partition < 0 || int(partition) >= len(t.partitions) {
		return nil, fmt.Errorf("partition %d does not exist in topic %s", partition, name)
	}
	return &consumer{client: c, partition: t.partitions[partition]}, nil
}

func (c *Client) Admin(ctx context.Context) (backend.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.isClosed() {
		return nil, backend.ErrClosed
	}
	return &admin{client: c}, nil
}

func (c *Client) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *Client) createTopic(name string, spec backend.TopicSpec) error {
	if name == "" {
		return fmt.Errorf("topic name cannot be blank")
	}
	if spec.Partitions < 1 {
		return fmt.Errorf("invalid partition count %d for topic %s", spec.Partitions, name)
	}
	if spec.ReplicationFactor < 1 {
		return fmt.Errorf("invalid replication factor %d for topic %s", spec.ReplicationFactor, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.topics[name]; ok {
		return fmt.Errorf("%w: %s", backend.ErrTopicExists, name)
	}
	t := &topic{name: name, replicationFactor: spec.ReplicationFactor}
	for i := range spec.Partitions {
		t.partitions = append(t.partitions, newPartition(i))
	}
	c.topics[name] = t
	c.order = append(c.order, name)
	return nil
}

func (c *Client) deleteTopic(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.topics[name]
	if !ok {
		return fmt.Errorf("%w: %s", backend.ErrTopicNotFound, name)
	}
	delete(c.topics, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	for _, p := range t.partitions {
		p.remove()
	}
	return nil
}

type topic struct {
	name              string
	replicationFactor int16
	partitions        []*partition
	next              atomic.Uint32
}

func (t *topic) pick(key []byte) *partition {
	n := uint32(len(t.partitions))
	if key == nil {
		return t.partitions[(t.next.Add(1)-1)%n]
	}
	h := fnv.New32a()
	h.Write(key)
	return t.partitions[h.Sum32()%n]
}

type partition struct {
	id      int32
	mu      sync.Mutex
	records []backend.Record
	changed chan struct{}
	removed bool
}

func newPartition(id int32) *partition {
	return &partition{id: id, changed: make(chan struct{})}
}

func (p *partition) append(key, value []byte) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.removed {
		return 0, backend.ErrTopicNotFound
	}
	offset := int64(len(p.records))
	p.records = append(p.records, backend.Record{
		Partition: p.id,
		Offset:    offset,
		Key:       slices.Clone(key),
		Value:     slices.Clone(value),
		Timestamp: time.Now(),
	})
	close(p.changed)
	p.changed = make(chan struct{})
	return offset, nil
}

func (p *partition) remove() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removed = true
	close(p.changed)
	p.changed = make(chan struct{})
}

func (p *partition) end() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int64(len(p.records))
}

type producer struct {
	client *Client
	topic  *topic
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.client.isClosed() {
		return backend.ErrClosed
	}
	if _, err := p.topic.pick(key).append(key, value); err != nil {
		return fmt.Errorf("failed to append to topic %s: %w", p.topic.name, err)
	}
	return nil
}

func (p *producer) Close() error {
	return nil
}

type consumer struct {
	client    *Client
	partition *partition
}

func (c *consumer) Stream(ctx context.Context, offset backend.Offset, mode backend.StreamMode) (backend.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &stream{
		client:    c.client,
		partition: c.partition,
		pos:       offset.Value(),
		end:       c.partition.end(),
		mode:      mode,
		done:      make(chan struct{}),
	}, nil
}

func (c *consumer) Close() error {
	return nil
}

type stream struct {
	client    *Client
	partition *partition
	pos       int64
	end       int64
	mode      backend.StreamMode
	done      chan struct{}
	once      sync.Once
}

func (s *stream) Next(ctx context.Context) (*backend.Record, error) {
	p := s.partition
	for {
		p.mu.Lock()
		if p.removed {
			p.mu.Unlock()
			return nil, backend.ErrTopicNotFound
		}
		if s.mode == backend.UntilEnd && s.pos >= s.end {
			p.mu.Unlock()
			return nil, backend.ErrEndOfStream
		}
		if s.pos < int64(len(p.records)) {
			rec := p.records[s.pos]
			s.pos++
			p.mu.Unlock()
			return &rec, nil
		}
		changed := p.changed
		p.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.done:
			return nil, backend.ErrClosed
		case <-s.client.closed:
			return nil, backend.ErrClosed
		}
	}
}

func (s *stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

type admin struct {
	client *Client
}

func (a *admin) CreateTopic(ctx context.Context, name string, spec backend.TopicSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.client.createTopic(name, spec)
}

func (a *admin) DeleteTopic(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.client.deleteTopic(name)
}

func (a *admin) ListTopics(ctx context.Context, names ...string) ([]backend.TopicMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.client.mu.RLock()
	defer a.client.mu.RUnlock()
	res := make([]backend.TopicMetadata, 0, len(a.client.order))
	for _, name := range a.client.order {
		if len(names) > 0 && !slices.Contains(names, name) {
			continue
		}
		t := a.client.topics[name]
		res = append(res, backend.TopicMetadata{
			Name:              name,
			Partitions:        int32(len(t.partitions)),
			ReplicationFactor: t.replicationFactor,
		})
	}
	return res, nil
}

func (a *admin) Close() error {
	return nil
}
