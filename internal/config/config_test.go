package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/echo8/krpc/internal/config/confluent"
	"github.com/echo8/krpc/internal/config/franz"
	"github.com/echo8/krpc/internal/config/memory"
	"github.com/echo8/krpc/internal/config/sarama"
	"github.com/echo8/krpc/internal/config/segment"
	"github.com/echo8/krpc/internal/util"

	"github.com/stretchr/testify/require"
)

var defaultServer = ServerConfig{Host: "0.0.0.0", Port: 50051, ShutdownTimeout: 10 * time.Second}
var defaultMetrics = MetricsConfig{Otel: OtelConfig{ExportInterval: 5 * time.Second}}
var defaultLogging = LoggingConfig{Level: "info", Format: "text"}

func TestConfig(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  AppConfig
	}{
		{
			name: "memory backend",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: memory
			`,
			want: AppConfig{
				Server:  defaultServer,
				Backend: BackendConfig{Type: BackendMemory, Client: &memory.Config{Type: "memory", DefaultPartitions: 1}},
				Metrics: defaultMetrics,
				Logging: defaultLogging,
			},
		},
		{
			name: "memory backend with topics",
			input: `
			server:
				host: localhost
				port: 9000
				shutdownTimeout: 1s
				maxConcurrentStreams: 100
			backend:
				type: memory
				defaultPartitions: 3
				topics:
					- orders
					- payments
			logging:
				level: debug
				format: json
			`,
			want: AppConfig{
				Server: ServerConfig{Host: "localhost", Port: 9000, ShutdownTimeout: time.Second, MaxConcurrentStreams: 100},
				Backend: BackendConfig{Type: BackendMemory, Client: &memory.Config{
					Type:              "memory",
					DefaultPartitions: 3,
					Topics:            []string{"orders", "payments"},
				}},
				Metrics: defaultMetrics,
				Logging: LoggingConfig{Level: "debug", Format: "json"},
			},
		},
		{
			name: "franz backend",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: franz
				clientConfig:
					seedbrokers: broker1:9092,broker2:9092
					requiredacks: all
			`,
			want: AppConfig{
				Server: defaultServer,
				Backend: BackendConfig{Type: BackendFranz, Client: &franz.Config{
					Type:         "franz",
					AdminTimeout: 15 * time.Second,
					ClientConfig: &franz.ClientConfig{
						SeedBrokers:  util.Ptr("broker1:9092,broker2:9092"),
						RequiredAcks: util.Ptr("all"),
					},
				}},
				Metrics: defaultMetrics,
				Logging: defaultLogging,
			},
		},
		{
			name: "segment backend",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: segment
				clientConfig:
					bootstrap.servers: broker1:9092
					batch.timeout: 5ms
			`,
			want: AppConfig{
				Server: defaultServer,
				Backend: BackendConfig{Type: BackendSegment, Client: &segment.Config{
					Type:                 "segment",
					MetricsFlushDuration: 15 * time.Second,
					ClientConfig: &segment.ClientConfig{
						Addr:         util.Ptr("broker1:9092"),
						BatchTimeout: util.Ptr(5 * time.Millisecond),
					},
				}},
				Metrics: defaultMetrics,
				Logging: defaultLogging,
			},
		},
		{
			name: "confluent backend",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: confluent
				pollTimeout: 50ms
				clientConfig:
					bootstrap.servers: broker1:9092
			`,
			want: AppConfig{
				Server: defaultServer,
				Backend: BackendConfig{Type: BackendConfluent, Client: &confluent.Config{
					Type:         "confluent",
					PollTimeout:  50 * time.Millisecond,
					QueryTimeout: 10 * time.Second,
					ClientConfig: &confluent.ClientConfig{BootstrapServers: util.Ptr("broker1:9092")},
				}},
				Metrics: defaultMetrics,
				Logging: defaultLogging,
			},
		},
		{
			name: "http and metrics",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			http:
				cors:
					allowOrigins:
						- https://example.com
			backend:
				type: memory
			metrics:
				enable:
					all: true
				otel:
					endpoint: collector:4317
			`,
			want: AppConfig{
				Server: defaultServer,
				Http: &HttpConfig{
					Addr: ":8080",
					Cors: &CorsConfig{AllowOrigins: []string{"https://example.com"}},
				},
				Backend: BackendConfig{Type: BackendMemory, Client: &memory.Config{Type: "memory", DefaultPartitions: 1}},
				Metrics: MetricsConfig{
					Enable: MetricsEnableConfig{
						All: true, Rpc: true, Http: true, Gateway: true, Backend: true, Host: true, Runtime: true,
					},
					Otel: OtelConfig{Endpoint: "collector:4317", ExportInterval: 5 * time.Second},
				},
				Logging: defaultLogging,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			noTabs := strings.ReplaceAll(tc.input, "\t", "  ")
			config, err := loadFromBytes([]byte(noTabs))
			require.NoError(t, err)
			require.Equal(t, &tc.want, config)
		})
	}
}

func TestConfigDefaultBackend(t *testing.T) {
	config, err := loadFromBytes([]byte("server:\n  host: 127.0.0.1\n  port: 50051\n"))
	require.NoError(t, err)
	require.Equal(t, BackendSarama, config.Backend.Type)
	cfg, ok := config.Backend.Client.(*sarama.Config)
	require.True(t, ok)
	require.Equal(t, "localhost:9092", *cfg.ClientConfig.BootstrapServers)
	require.NotNil(t, cfg.ClientConfig.MetricRegistry)
}

func TestConfigSaramaBackend(t *testing.T) {
	input := `
	server:
		host: 0.0.0.0
		port: 50051
	backend:
		type: sarama
		metricsFlushDuration: 1m
		clientConfig:
			bootstrap.servers: broker1:9092,broker2:9092
			producer.required.acks: all
			consumer.isolation.level: read_committed
	`
	config, err := loadFromBytes([]byte(strings.ReplaceAll(input, "\t", "  ")))
	require.NoError(t, err)
	cfg := config.Backend.Client.(*sarama.Config)
	require.Equal(t, time.Minute, cfg.MetricsFlushDuration)
	addrs, err := cfg.ClientConfig.GetAddrs()
	require.NoError(t, err)
	require.Equal(t, []string{"broker1:9092", "broker2:9092"}, addrs)
	sc, err := cfg.ClientConfig.ToConfig()
	require.NoError(t, err)
	require.True(t, sc.Producer.Return.Successes)
	require.Equal(t, cfg.ClientConfig.MetricRegistry, sc.MetricRegistry)
}

func TestConfigEnvVars(t *testing.T) {
	os.Setenv("KRPC_TEST_BIND_HOST", "10.0.0.1")
	defer os.Unsetenv("KRPC_TEST_BIND_HOST")
	input := `
	server:
		host: ${env:KRPC_TEST_BIND_HOST}
		port: 50051
	backend:
		type: franz
		clientConfig:
			seedbrokers: ${env:KRPC_TEST_BROKERS|localhost:9092}
	`
	config, err := loadFromBytes([]byte(strings.ReplaceAll(input, "\t", "  ")))
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", config.Server.Host)
	require.Equal(t, "10.0.0.1:50051", config.Server.Addr())
	require.Equal(t, "localhost:9092", *config.Backend.Client.(*franz.Config).ClientConfig.SeedBrokers)
}

func TestExpandEnvVarsPassThrough(t *testing.T) {
	input := []byte("# gateway\nserver:\n  host: 0.0.0.0 # all interfaces\n  port: 50051\n")
	got, err := expandEnvVars(input)
	require.NoError(t, err)
	require.Equal(t, input, got)

	os.Setenv("KRPC_TEST_PORT", "6000")
	defer os.Unsetenv("KRPC_TEST_PORT")
	got, err = expandEnvVars([]byte("# gateway\nserver:\n  port: ${env:KRPC_TEST_PORT}\n"))
	require.NoError(t, err)
	require.NotContains(t, string(got), "${env:")
	require.NotContains(t, string(got), "# gateway")
	require.Contains(t, string(got), "6000")
}

func TestConfigWithErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: ``,
			want:  "invalid config, server.host is required",
		},
		{
			name: "missing host",
			input: `
			server:
				port: 50051
			`,
			want: "invalid config, server.host is required",
		},
		{
			name: "blank host",
			input: `
			server:
				host: "  "
				port: 50051
			`,
			want: "invalid config, server.host is required",
		},
		{
			name: "missing port",
			input: `
			server:
				host: 0.0.0.0
			`,
			want: "invalid config, server.port is required",
		},
		{
			name: "port out of range",
			input: `
			server:
				host: 0.0.0.0
				port: 70000
			`,
			want: "invalid config, server.port is out of range: 70000",
		},
		{
			name: "unknown backend",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: pulsar
			`,
			want: "invalid config, unknown backend type: pulsar",
		},
		{
			name: "missing backend type",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				clientConfig: {}
			`,
			want: "invalid config, backend type is missing",
		},
		{
			name: "missing client config",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: sarama
			`,
			want: "invalid config, backend.client.clientconfig is required",
		},
		{
			name: "unknown logging format",
			input: `
			server:
				host: 0.0.0.0
				port: 50051
			backend:
				type: memory
			logging:
				format: xml
			`,
			want: "invalid config, logging.format failed validation: oneof",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			noTabs := strings.ReplaceAll(tc.input, "\t", "  ")
			_, err := loadFromBytes([]byte(noTabs))
			require.Error(t, err)
			require.Equal(t, tc.want, err.Error())
		})
	}
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "krpc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  host: 0.0.0.0\n  port: 50051\nbackend:\n  type: memory\n"), 0o600))
	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50051, config.Server.Port)

	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}
