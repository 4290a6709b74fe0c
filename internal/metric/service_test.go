package metric

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/echo8/krpc/internal/config"

	"github.com/gin-gonic/gin"
	gometrics "github.com/rcrowley/go-metrics"
	segment "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServiceDisabled(t *testing.T) {
	s, err := NewService(&config.MetricsConfig{})
	require.NoError(t, err)
	ctx := context.Background()

	// nothing is recorded when every meter group is off
	s.RecordRequestSize(ctx, "Produce", 10)
	s.RecordProduced(ctx, "orders", true)
	s.RecordConsumed(ctx, "orders", 3)
	s.StreamOpened(ctx, "orders")
	s.StreamClosed(ctx, "orders")
	s.RecordSaramaMetrics(gometrics.NewRegistry())
	s.RecordSegmentMetrics(segment.WriterStats{})
	require.NoError(t, s.Shutdown(ctx))
}

func TestServiceEnabledWithoutExporter(t *testing.T) {
	s, err := NewService(&config.MetricsConfig{Enable: config.MetricsEnableConfig{
		Rpc: true, Http: true, Gateway: true, Backend: true,
	}})
	require.NoError(t, err)
	ctx := context.Background()

	s.RecordRequestSize(ctx, "Produce", 10)
	s.RecordProduced(ctx, "orders", false)
	s.RecordConsumed(ctx, "orders", 3)
	s.StreamOpened(ctx, "orders")
	s.StreamClosed(ctx, "orders")

	registry := gometrics.NewRegistry()
	gometrics.GetOrRegisterCounter("record-send-rate", registry).Inc(5)
	gometrics.GetOrRegisterHistogram("batch-size", registry, gometrics.NewUniformSample(10)).Update(3)
	s.RecordSaramaMetrics(registry)
	s.RecordSaramaMetrics(registry)
	require.Len(t, s.(*service).meters.sarama.meterMap, 1+4+len(percentiles))

	s.RecordSegmentMetrics(segment.WriterStats{Writes: 1, Messages: 2})

	unary := s.UnaryInterceptor()
	resp, err := unary(ctx, "req", &grpc.UnaryServerInfo{FullMethod: "/krpc.v1.LogService/Produce"},
		func(ctx context.Context, req any) (any, error) { return "resp", nil })
	require.NoError(t, err)
	require.Equal(t, "resp", resp)
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, enabled := range []bool{false, true} {
		s, err := NewService(&config.MetricsConfig{Enable: config.MetricsEnableConfig{Http: enabled}})
		require.NoError(t, err)
		router := gin.New()
		router.Use(s.GinMiddleware())
		router.GET("/healthcheck", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRpcAttributes(t *testing.T) {
	attrs := rpcAttributes("/krpc.v1.LogService/Consume", status.Error(codes.Internal, "boom"))
	require.Equal(t, []attribute.KeyValue{
		semconv.RPCSystemGRPC,
		semconv.RPCGRPCStatusCodeKey.Int(int(codes.Internal)),
		semconv.RPCService("krpc.v1.LogService"),
		semconv.RPCMethod("Consume"),
	}, attrs)

	attrs = rpcAttributes("bogus", errors.New("plain"))
	require.Equal(t, []attribute.KeyValue{
		semconv.RPCSystemGRPC,
		semconv.RPCGRPCStatusCodeKey.Int(int(codes.Unknown)),
	}, attrs)
}

func TestSplitHostPort(t *testing.T) {
	host, port := splitHostPort("example.com:8080")
	require.Equal(t, "example.com", host)
	require.Equal(t, 8080, port)
	host, port = splitHostPort("example.com")
	require.Equal(t, "example.com", host)
	require.Equal(t, -1, port)
}
