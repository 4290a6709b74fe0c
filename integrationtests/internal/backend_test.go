//go:build integration

package integrationtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	krpcv1 "github.com/echo8/krpc/gen/krpc/v1"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/network"
)

func TestBackends(t *testing.T) {
	ctx := context.Background()

	net, err := network.New(ctx)
	require.NoError(t, err)
	defer net.Remove(ctx)
	kafka, err := NewKafkaContainer(ctx, net.Name)
	require.NoError(t, err)
	defer kafka.Terminate(ctx)

	testcases := []struct {
		name    string
		backend string
	}{
		{name: "sarama", backend: "  type: sarama\n  clientConfig:\n    bootstrap.servers: " + KafkaAddr},
		{name: "franz", backend: "  type: franz\n  clientConfig:\n    seedbrokers: " + KafkaAddr},
		{name: "segment", backend: "  type: segment\n  clientConfig:\n    bootstrap.servers: " + KafkaAddr},
		{name: "confluent", backend: "  type: confluent\n  clientConfig:\n    bootstrap.servers: " + KafkaAddr},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewGatewayClient(t, tc.backend)
			topic := "it-" + tc.name

			created, err := client.CreateTopic(ctx, &krpcv1.CreateTopicRequest{Topic: topic, Partitions: 1, ReplicationFactor: 1})
			require.NoError(t, err)
			require.True(t, created.GetSuccess(), created.GetError())

			require.Eventually(t, func() bool {
				res, err := client.Produce(ctx, &krpcv1.ProduceRequest{Topic: topic, Message: "m0", MessageId: "id0"})
				return err == nil && res.GetSuccess()
			}, 20*time.Second, 250*time.Millisecond)

			batch, err := client.BatchProduce(ctx, &krpcv1.BatchProduceRequest{Topic: topic, Messages: []*krpcv1.BatchMessage{
				{Message: "m1"}, {Message: "m2"},
			}})
			require.NoError(t, err)
			require.Equal(t, []bool{true, true}, batch.GetSuccess())

			consumed, err := client.Consume(ctx, &krpcv1.ConsumeRequest{Topic: topic, Partition: 0, Offset: 0, MaxMessages: 10})
			require.NoError(t, err)
			require.Empty(t, consumed.GetError())
			require.Equal(t, int64(3), consumed.GetNextOffset())
			require.Len(t, consumed.GetMessages(), 3)
			for i, msg := range consumed.GetMessages() {
				require.Equal(t, fmt.Sprint("m", i), msg.GetMessage())
				require.Equal(t, int64(i), msg.GetOffset())
			}

			sctx, cancel := context.WithTimeout(ctx, 20*time.Second)
			defer cancel()
			stream, err := client.StreamConsume(sctx, &krpcv1.StreamConsumeRequest{Topic: topic, Partition: 0, Offset: 1})
			require.NoError(t, err)
			for _, want := range []string{"m1", "m2"} {
				msg, err := stream.Recv()
				require.NoError(t, err)
				require.Equal(t, want, msg.GetMessage())
			}
			cancel()

			topics, err := client.ListTopics(ctx, &krpcv1.ListTopicsRequest{})
			require.NoError(t, err)
			require.Contains(t, topics.GetTopics(), topic)

			described, err := client.DescribeTopic(ctx, &krpcv1.DescribeTopicRequest{Topic: topic})
			require.NoError(t, err)
			require.Equal(t, topic, described.GetTopic())
			require.Empty(t, described.GetError())

			again, err := client.CreateTopic(ctx, &krpcv1.CreateTopicRequest{Topic: topic, Partitions: 1, ReplicationFactor: 1})
			require.NoError(t, err)
			require.False(t, again.GetSuccess())
			require.NotEmpty(t, again.GetError())

			deleted, err := client.DeleteTopic(ctx, &krpcv1.DeleteTopicRequest{Topic: topic})
			require.NoError(t, err)
			require.True(t, deleted.GetSuccess(), deleted.GetError())
		})
	}
}
