package metric

import (
	"context"
	"time"

	"github.com/echo8/krpc/internal/config"

	"github.com/gin-gonic/gin"
	gometrics "github.com/rcrowley/go-metrics"
	segment "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const meterName = "github.com/echo8/krpc"

type Service interface {
	RecordRequestSize(ctx context.Context, method string, size int)
	RecordProduced(ctx context.Context, topic string, success bool)
	RecordConsumed(ctx context.Context, topic string, count int)
	StreamOpened(ctx context.Context, topic string)
	StreamClosed(ctx context.Context, topic string)

	RecordSaramaMetrics(registry gometrics.Registry)
	RecordSegmentMetrics(stats segment.WriterStats)

	GinMiddleware() gin.HandlerFunc
	UnaryInterceptor() grpc.UnaryServerInterceptor
	StreamInterceptor() grpc.StreamServerInterceptor

	Config() *config.MetricsConfig
	Shutdown(ctx context.Context) error
}

type service struct {
	cfg      *config.MetricsConfig
	meters   *meters
	provider *sdkmetric.MeterProvider
}

type meters struct {
	gateway *gatewayMeters
	sarama  *saramaMeters
	segment *segmentMeters
}

func NewService(cfg *config.MetricsConfig) (Service, error) {
	s := &service{cfg: cfg}
	err := s.setup()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) setup() error {
	ctx := context.Background()
	if s.cfg.Enabled() && s.cfg.Otel.Endpoint != "" {
		tlsCfg, err := s.cfg.Otel.Tls.LoadTLSConfig()
		if err != nil {
			return err
		}
		cred := insecure.NewCredentials()
		if tlsCfg != nil {
			cred = credentials.NewTLS(tlsCfg)
		}
		conn, err := grpc.NewClient(s.cfg.Otel.Endpoint, grpc.WithTransportCredentials(cred))
		if err != nil {
			return err
		}
		metricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
		if err != nil {
			return err
		}
		s.provider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(s.cfg.Otel.ExportInterval))),
		)
		otel.SetMeterProvider(s.provider)
	}

	meters := &meters{}
	var err error
	if s.cfg.Enable.Gateway {
		if meters.gateway, err = newGatewayMeters(); err != nil {
			return err
		}
	}
	if s.cfg.Enable.Backend {
		meters.sarama = newSaramaMeters()
		if meters.segment, err = newSegmentMeters(); err != nil {
			return err
		}
	}
	if s.cfg.Enable.Host {
		if err := host.Start(); err != nil {
			return err
		}
	}
	if s.cfg.Enable.Runtime {
		if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second)); err != nil {
			return err
		}
	}
	s.meters = meters
	return nil
}

func (s *service) Config() *config.MetricsConfig {
	return s.cfg
}

// Shutdown flushes pending exports. It is a no-op when no exporter was configured.
func (s *service) Shutdown(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	return s.provider.Shutdown(ctx)
}
