package metric

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otm "go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func newRpcMeters() (*rpcMeters, error) {
	rm := &rpcMeters{}
	if err := createMeters(rm); err != nil {
		return nil, err
	}
	return rm, nil
}

type rpcMeters struct {
	ServerLatency otm.Float64Histogram `name:"krpc.rpc.server.duration" description:"Measures the duration of inbound RPCs." unit:"ms"`
	Requests      otm.Int64Counter     `name:"krpc.rpc.server.requests" description:"Counts inbound RPCs by status code." unit:"{request}"`
}

// UnaryInterceptor records latency and outcome of unary calls.
func (s *service) UnaryInterceptor() grpc.UnaryServerInterceptor {
	m := s.rpcMeters()
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if m == nil {
			return handler(ctx, req)
		}
		start := time.Now()
		resp, err := handler(ctx, req)
		m.record(ctx, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamInterceptor records the lifetime and outcome of streaming calls.
func (s *service) StreamInterceptor() grpc.StreamServerInterceptor {
	m := s.rpcMeters()
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if m == nil {
			return handler(srv, ss)
		}
		start := time.Now()
		err := handler(srv, ss)
		m.record(ss.Context(), info.FullMethod, start, err)
		return err
	}
}

func (s *service) rpcMeters() *rpcMeters {
	if !s.cfg.Enable.Rpc {
		return nil
	}
	m, err := newRpcMeters()
	if err != nil {
		slog.Error("Failed to create rpc meters. Rpc metrics will be disabled.", "error", err)
		return nil
	}
	return m
}

func (m *rpcMeters) record(ctx context.Context, fullMethod string, start time.Time, err error) {
	opts := otm.WithAttributeSet(attribute.NewSet(rpcAttributes(fullMethod, err)...))
	m.ServerLatency.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), opts)
	m.Requests.Add(ctx, 1, opts)
}

func rpcAttributes(fullMethod string, err error) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.RPCSystemGRPC,
		semconv.RPCGRPCStatusCodeKey.Int(int(status.Code(err))),
	}
	svc, method, ok := strings.Cut(strings.TrimPrefix(fullMethod, "/"), "/")
	if ok {
		attrs = append(attrs, semconv.RPCService(svc), semconv.RPCMethod(method))
	}
	return attrs
}
