// Package backend defines the client facade the gateway uses to talk to the
// partitioned log. Each driver subpackage implements it on top of one client
// library.
package backend

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEndOfStream   = errors.New("end of stream")
	ErrInvalidOffset = errors.New("invalid offset")
	ErrClosed        = errors.New("client is closed")
	ErrTopicNotFound = errors.New("topic not found")
	ErrTopicExists   = errors.New("topic already exists")
)

// StreamMode selects how a record stream behaves once it reaches the end of
// the partition.
type StreamMode int

const (
	// Follow waits for new records indefinitely.
	Follow StreamMode = iota
	// UntilEnd returns ErrEndOfStream once every record that existed when the
	// stream was opened has been delivered.
	UntilEnd
)

func (m StreamMode) String() string {
	switch m {
	case Follow:
		return "follow"
	case UntilEnd:
		return "until_end"
	default:
		return "unknown"
	}
}

type Record struct {
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
	Timestamp time.Time
}

type TopicSpec struct {
	Partitions        int32
	ReplicationFactor int16
}

type TopicMetadata struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
}

// Client is the long-lived connection shared by every call. Implementations
// must be safe for concurrent use.
type Client interface {
	TopicProducer(ctx context.Context, topic string) (Producer, error)
	PartitionConsumer(ctx context.Context, topic string, partition int32) (Consumer, error)
	Admin(ctx context.Context) (Admin, error)
	Close() error
}

type Producer interface {
	// Send writes one unkeyed record when key is nil and waits for the
	// backend to acknowledge it.
	Send(ctx context.Context, key, value []byte) error
	Close() error
}

type Consumer interface {
	Stream(ctx context.Context, offset Offset, mode StreamMode) (Stream, error)
	Close() error
}

type Stream interface {
	// Next blocks until a record is available, the stream ends or ctx is done.
	Next(ctx context.Context) (*Record, error)
	Close() error
}

type Admin interface {
	CreateTopic(ctx context.Context, name string, spec TopicSpec) error
	DeleteTopic(ctx context.Context, name string) error
	// ListTopics returns every topic when no names are given, otherwise only
	// the named topics that exist.
	ListTopics(ctx context.Context, names ...string) ([]TopicMetadata, error)
	Close() error
}
