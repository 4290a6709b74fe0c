package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	krpcv1 "github.com/echo8/krpc/gen/krpc/v1"
	"github.com/echo8/krpc/internal/backend/memory"
	"github.com/echo8/krpc/internal/config"
	memcfg "github.com/echo8/krpc/internal/config/memory"
	"github.com/echo8/krpc/internal/gateway"
	"github.com/echo8/krpc/internal/metric"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

type testEnv struct {
	client krpcv1.LogServiceClient
	conn   *grpc.ClientConn
	stop   context.CancelFunc
	served chan error
}

func newTestEnv(t *testing.T, topics ...string) *testEnv {
	backendClient, err := memory.NewClient(&memcfg.Config{DefaultPartitions: 1, Topics: topics})
	require.NoError(t, err)
	t.Cleanup(func() { backendClient.Close() })

	ms, err := metric.NewService(&config.MetricsConfig{Enable: config.MetricsEnableConfig{Rpc: true}})
	require.NoError(t, err)
	gw := gateway.New(backendClient, ms)
	srv, err := NewServer(&config.ServerConfig{Host: "bufnet", Port: 1, ShutdownTimeout: time.Second}, gw, ms)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	env := &testEnv{client: krpcv1.NewLogServiceClient(conn), conn: conn, stop: cancel, served: served}
	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-served
	})
	return env
}

func TestProduceAndConsume(t *testing.T) {
	env := newTestEnv(t, "orders")
	ctx := context.Background()

	res, err := env.client.Produce(ctx, &krpcv1.ProduceRequest{Topic: "orders", Message: "hello", MessageId: "m1"})
	require.NoError(t, err)
	require.True(t, res.GetSuccess())
	require.Empty(t, res.GetError())
	require.Equal(t, "m1", res.GetMessageId())

	batch, err := env.client.BatchProduce(ctx, &krpcv1.BatchProduceRequest{Topic: "orders", Messages: []*krpcv1.BatchMessage{
		{Message: "a"}, {Message: "b"}, {Message: "c"}, {Message: "d"},
	}})
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, true}, batch.GetSuccess())
	require.Equal(t, []string{"", "", "", ""}, batch.GetError())

	consumed, err := env.client.Consume(ctx, &krpcv1.ConsumeRequest{Topic: "orders", Partition: 0, Offset: 0, MaxMessages: 2})
	require.NoError(t, err)
	require.Len(t, consumed.GetMessages(), 2)
	require.Equal(t, "hello", consumed.GetMessages()[0].GetMessage())
	require.Equal(t, int64(1), consumed.GetMessages()[1].GetOffset())
	require.Empty(t, consumed.GetMessages()[0].GetHeaders())
	require.Empty(t, consumed.GetMessages()[0].GetKey())
	require.Equal(t, int64(2), consumed.GetNextOffset())

	empty, err := env.client.Consume(ctx, &krpcv1.ConsumeRequest{Topic: "orders", Offset: 3})
	require.NoError(t, err)
	require.Empty(t, empty.GetMessages())
	require.Equal(t, int64(3), empty.GetNextOffset())
}

func TestProtobufWireFormat(t *testing.T) {
	env := newTestEnv(t, "orders")
	ctx := context.Background()

	health := new(krpcv1.HealthCheckReply)
	err := env.conn.Invoke(ctx, "/krpc.v1.LogService/HealthCheck", &krpcv1.HealthCheckRequest{}, health)
	require.NoError(t, err)
	require.True(t, health.GetOk())
	require.Equal(t, "ok", health.GetMessage())

	// A caller that only knows the wire format encodes the request itself.
	raw, err := proto.Marshal(&krpcv1.ProduceRequest{Topic: "orders", Message: "caf\u00e9", MessageId: "m9"})
	require.NoError(t, err)
	in := new(krpcv1.ProduceRequest)
	require.NoError(t, proto.Unmarshal(raw, in))
	res := new(krpcv1.ProduceReply)
	require.NoError(t, env.conn.Invoke(ctx, krpcv1.LogService_Produce_FullMethodName, in, res))
	require.True(t, res.GetSuccess())
	require.Equal(t, "m9", res.GetMessageId())

	consumed, err := env.client.Consume(ctx, &krpcv1.ConsumeRequest{Topic: "orders", MaxMessages: 1})
	require.NoError(t, err)
	require.Equal(t, "caf\u00e9", consumed.GetMessages()[0].GetMessage())
}

func TestStreamConsume(t *testing.T) {
	env := newTestEnv(t, "orders")
	ctx := context.Background()
	for i := range 3 {
		_, err := env.client.Produce(ctx, &krpcv1.ProduceRequest{Topic: "orders", Message: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
	}

	for range 2 {
		streamCtx, cancel := context.WithCancel(ctx)
		stream, err := env.client.StreamConsume(streamCtx, &krpcv1.StreamConsumeRequest{Topic: "orders", Offset: 1})
		require.NoError(t, err)
		for _, want := range []int64{1, 2} {
			msg, err := stream.Recv()
			require.NoError(t, err)
			require.Equal(t, want, msg.GetOffset())
			require.Equal(t, fmt.Sprintf("m%d", want), msg.GetMessage())
		}
		cancel()
		_, err = stream.Recv()
		require.Equal(t, codes.Canceled, status.Code(err))
	}
}

func TestStreamConsumeErrors(t *testing.T) {
	env := newTestEnv(t, "orders")
	stream, err := env.client.StreamConsume(context.Background(), &krpcv1.StreamConsumeRequest{Topic: "missing"})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.Internal, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "topic not found")
}

func TestRpcErrors(t *testing.T) {
	env := newTestEnv(t, "orders")
	ctx := context.Background()

	_, err := env.client.Produce(ctx, &krpcv1.ProduceRequest{Topic: "missing", Message: "x"})
	require.Equal(t, codes.Internal, status.Code(err))
	require.Equal(t, "failed to create producer: topic not found: missing", status.Convert(err).Message())

	_, err = env.client.Consume(ctx, &krpcv1.ConsumeRequest{Topic: "orders", Offset: -1, MaxMessages: 1})
	require.Equal(t, codes.Internal, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "invalid offset")
}

func TestTopicsAndStubs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.client.CreateTopic(ctx, &krpcv1.CreateTopicRequest{Topic: "t1", Partitions: 1, ReplicationFactor: 1})
	require.NoError(t, err)
	require.True(t, created.GetSuccess())
	created, err = env.client.CreateTopic(ctx, &krpcv1.CreateTopicRequest{Topic: "t1", Partitions: 1, ReplicationFactor: 1})
	require.NoError(t, err)
	require.False(t, created.GetSuccess())
	require.NotEmpty(t, created.GetError())

	list, err := env.client.ListTopics(ctx, &krpcv1.ListTopicsRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{"t1"}, list.GetTopics())

	desc, err := env.client.DescribeTopic(ctx, &krpcv1.DescribeTopicRequest{Topic: "ghost"})
	require.NoError(t, err)
	require.True(t, proto.Equal(&krpcv1.DescribeTopicReply{Topic: "ghost", Error: "not found"}, desc), desc.String())

	deleted, err := env.client.DeleteTopic(ctx, &krpcv1.DeleteTopicRequest{Topic: "t1"})
	require.NoError(t, err)
	require.True(t, deleted.GetSuccess())

	commit, err := env.client.CommitOffset(ctx, &krpcv1.CommitOffsetRequest{Topic: "t1", GroupId: "g"})
	require.NoError(t, err)
	require.True(t, commit.GetSuccess())

	groups, err := env.client.ListConsumerGroups(ctx, &krpcv1.ListConsumerGroupsRequest{})
	require.NoError(t, err)
	require.Empty(t, groups.GetGroups())

	group, err := env.client.DescribeConsumerGroup(ctx, &krpcv1.DescribeConsumerGroupRequest{GroupId: "g"})
	require.NoError(t, err)
	require.Empty(t, group.GetGroupId())
	require.Empty(t, group.GetOffsets())

	sm, err := env.client.CreateSmartModule(ctx, &krpcv1.CreateSmartModuleRequest{Spec: &krpcv1.SmartModuleSpec{Name: "filter", Wasm: []byte{0, 97}}})
	require.NoError(t, err)
	require.True(t, sm.GetSuccess())

	smDel, err := env.client.DeleteSmartModule(ctx, &krpcv1.DeleteSmartModuleRequest{Name: "filter"})
	require.NoError(t, err)
	require.True(t, smDel.GetSuccess())

	smUpd, err := env.client.UpdateSmartModule(ctx, &krpcv1.UpdateSmartModuleRequest{})
	require.NoError(t, err)
	require.True(t, smUpd.GetSuccess())

	smList, err := env.client.ListSmartModules(ctx, &krpcv1.ListSmartModulesRequest{})
	require.NoError(t, err)
	require.Empty(t, smList.GetModules())

	smDesc, err := env.client.DescribeSmartModule(ctx, &krpcv1.DescribeSmartModuleRequest{Name: "filter"})
	require.NoError(t, err)
	require.Nil(t, smDesc.GetSpec())

	health, err := env.client.HealthCheck(ctx, &krpcv1.HealthCheckRequest{})
	require.NoError(t, err)
	require.True(t, health.GetOk())
	require.Equal(t, "ok", health.GetMessage())
}

func TestGrpcHealthService(t *testing.T) {
	env := newTestEnv(t)
	res, err := healthpb.NewHealthClient(env.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)
}

func TestServeStopsOnCancel(t *testing.T) {
	env := newTestEnv(t)
	env.stop()
	select {
	case err := <-env.served:
		require.NoError(t, err)
		env.served <- nil
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "nil", err: nil, want: codes.OK},
		{name: "gateway error", err: &gateway.Error{Op: "create producer", Err: errors.New("down")}, want: codes.Internal},
		{name: "canceled", err: &gateway.Error{Op: "consume", Err: context.Canceled}, want: codes.Canceled},
		{name: "deadline", err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), want: codes.DeadlineExceeded},
		{name: "status passthrough", err: status.Error(codes.Unavailable, "transport closing"), want: codes.Unavailable},
		{name: "plain", err: errors.New("boom"), want: codes.Internal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, status.Code(toStatus(tc.err)))
		})
	}
}
