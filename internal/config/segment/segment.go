package segment

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	kafka "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Type                 string        `default:"segment"`
	ClientConfig         *ClientConfig `yaml:"clientConfig" validate:"required"`
	MetricsFlushDuration time.Duration `yaml:"metricsFlushDuration" default:"15s"`
}

func (c *Config) Load(v any) error {
	bytes, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return err
	}
	type plain Config
	if err := yaml.Unmarshal(bytes, (*plain)(cfg)); err != nil {
		return err
	}
	*c = *cfg
	return nil
}

type ClientConfig struct {
	Addr                   *string        `yaml:"bootstrap.servers" validate:"required"`
	Balancer               *string        `yaml:"balancer"`
	MaxAttempts            *int           `yaml:"max.attempts"`
	BatchSize              *int           `yaml:"batch.size"`
	BatchBytes             *int64         `yaml:"batch.bytes"`
	BatchTimeout           *time.Duration `yaml:"batch.timeout"`
	ReadTimeout            *time.Duration `yaml:"read.timeout"`
	WriteTimeout           *time.Duration `yaml:"write.timeout"`
	RequiredAcks           *string        `yaml:"required.acks"`
	Compression            *string        `yaml:"compression"`
	ReaderMinBytes         *int           `yaml:"reader.min.bytes"`
	ReaderMaxBytes         *int           `yaml:"reader.max.bytes"`
	ReaderMaxWait          *time.Duration `yaml:"reader.max.wait"`
	ReaderIsolationLevel   *string        `yaml:"reader.isolation.level"`
	TransportDialerTimeout *time.Duration `yaml:"transport.dialer.timeout"`
	TransportSaslMechanism *string        `yaml:"transport.sasl.mechanism"` // plain or scram
	TransportSaslUsername  *string        `yaml:"transport.sasl.username"`
	TransportSaslPassword  *string        `yaml:"transport.sasl.password"`
	TransportTlsEnable     *bool          `yaml:"transport.tls.enable"`
	TransportTlsSkipVerify *bool          `yaml:"transport.tls.skip.verify"`
	TransportTlsCertFile   *string        `yaml:"transport.tls.cert.file"`
	TransportTlsKeyFile    *string        `yaml:"transport.tls.key.file"`
	TransportTlsCaFile     *string        `yaml:"transport.tls.ca.file"`
	TransportClientID      *string        `yaml:"transport.client.id"`
	TransportMetadataTTL   *time.Duration `yaml:"transport.metadata.ttl"`
}

func (clientConfig *ClientConfig) Brokers() []string {
	if clientConfig.Addr == nil {
		return nil
	}
	return strings.Split(*clientConfig.Addr, ",")
}

// ToTransport builds the transport shared by the writer and the admin client.
func (clientConfig *ClientConfig) ToTransport() (*kafka.Transport, error) {
	timeout := 3 * time.Second
	if clientConfig.TransportDialerTimeout != nil {
		timeout = *clientConfig.TransportDialerTimeout
	}
	transport := &kafka.Transport{
		Dial: (&net.Dialer{Timeout: timeout}).DialContext,
	}
	mechanism, err := clientConfig.saslMechanism()
	if err != nil {
		return nil, err
	}
	transport.SASL = mechanism
	tlsCfg, err := clientConfig.tlsConfig()
	if err != nil {
		return nil, err
	}
	transport.TLS = tlsCfg
	if clientConfig.TransportClientID != nil {
		transport.ClientID = *clientConfig.TransportClientID
	}
	if clientConfig.TransportMetadataTTL != nil {
		transport.MetadataTTL = *clientConfig.TransportMetadataTTL
	}
	return transport, nil
}

func (clientConfig *ClientConfig) ToWriter(transport *kafka.Transport) (*kafka.Writer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(clientConfig.Brokers()...),
		Transport:    transport,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}
	if clientConfig.Balancer != nil {
		switch *clientConfig.Balancer {
		case "hash_crc":
			writer.Balancer = &kafka.CRC32Balancer{}
		case "hash":
			writer.Balancer = &kafka.Hash{}
		case "murmur2":
			writer.Balancer = &kafka.Murmur2Balancer{}
		case "round_robin":
			writer.Balancer = &kafka.RoundRobin{}
		case "least_bytes":
			writer.Balancer = &kafka.LeastBytes{}
		default:
			return nil, fmt.Errorf("invalid config, unknown segment balancer: %s", *clientConfig.Balancer)
		}
	}
	if clientConfig.MaxAttempts != nil {
		writer.MaxAttempts = *clientConfig.MaxAttempts
	}
	if clientConfig.BatchSize != nil {
		writer.BatchSize = *clientConfig.BatchSize
	}
	if clientConfig.BatchBytes != nil {
		writer.BatchBytes = *clientConfig.BatchBytes
	}
	if clientConfig.BatchTimeout != nil {
		writer.BatchTimeout = *clientConfig.BatchTimeout
	}
	if clientConfig.ReadTimeout != nil {
		writer.ReadTimeout = *clientConfig.ReadTimeout
	}
	if clientConfig.WriteTimeout != nil {
		writer.WriteTimeout = *clientConfig.WriteTimeout
	}
	if clientConfig.RequiredAcks != nil {
		if *clientConfig.RequiredAcks == "all" {
			writer.RequiredAcks = kafka.RequireAll
		} else {
			i, err := strconv.Atoi(*clientConfig.RequiredAcks)
			if err != nil {
				return nil, err
			}
			writer.RequiredAcks = kafka.RequiredAcks(int16(i))
		}
	}
	if clientConfig.Compression != nil {
		switch *clientConfig.Compression {
		case "none":
		case "gzip":
			writer.Compression = kafka.Gzip
		case "snappy":
			writer.Compression = kafka.Snappy
		case "lz4":
			writer.Compression = kafka.Lz4
		case "zstd":
			writer.Compression = kafka.Zstd
		default:
			return nil, fmt.Errorf("invalid config, unknown segment compression codec: %s", *clientConfig.Compression)
		}
	}
	return writer, nil
}

// ToReaderConfig returns a reader config for one partition of topic.
func (clientConfig *ClientConfig) ToReaderConfig(topic string, partition int) (kafka.ReaderConfig, error) {
	rc := kafka.ReaderConfig{
		Brokers:   clientConfig.Brokers(),
		Topic:     topic,
		Partition: partition,
		MinBytes:  1,
	}
	if clientConfig.ReaderMinBytes != nil {
		rc.MinBytes = *clientConfig.ReaderMinBytes
	}
	if clientConfig.ReaderMaxBytes != nil {
		rc.MaxBytes = *clientConfig.ReaderMaxBytes
	}
	if clientConfig.ReaderMaxWait != nil {
		rc.MaxWait = *clientConfig.ReaderMaxWait
	}
	if clientConfig.ReaderIsolationLevel != nil {
		switch *clientConfig.ReaderIsolationLevel {
		case "read_uncommitted":
			rc.IsolationLevel = kafka.ReadUncommitted
		case "read_committed":
			rc.IsolationLevel = kafka.ReadCommitted
		default:
			return rc, fmt.Errorf("invalid config, unknown segment isolation level: %s", *clientConfig.ReaderIsolationLevel)
		}
	}
	dialer := &kafka.Dialer{Timeout: 10 * time.Second, DualStack: true}
	if clientConfig.TransportDialerTimeout != nil {
		dialer.Timeout = *clientConfig.TransportDialerTimeout
	}
	if clientConfig.TransportClientID != nil {
		dialer.ClientID = *clientConfig.TransportClientID
	}
	mechanism, err := clientConfig.saslMechanism()
	if err != nil {
		return rc, err
	}
	dialer.SASLMechanism = mechanism
	tlsCfg, err := clientConfig.tlsConfig()
	if err != nil {
		return rc, err
	}
	dialer.TLS = tlsCfg
	rc.Dialer = dialer
	return rc, nil
}

func (clientConfig *ClientConfig) saslMechanism() (sasl.Mechanism, error) {
	if clientConfig.TransportSaslMechanism == nil {
		return nil, nil
	}
	if clientConfig.TransportSaslUsername == nil || clientConfig.TransportSaslPassword == nil {
		return nil, fmt.Errorf("invalid config, segment sasl username and password are required")
	}
	switch *clientConfig.TransportSaslMechanism {
	case "plain":
		return plain.Mechanism{Username: *clientConfig.TransportSaslUsername, Password: *clientConfig.TransportSaslPassword}, nil
	case "scram":
		return scram.Mechanism(scram.SHA512, *clientConfig.TransportSaslUsername, *clientConfig.TransportSaslPassword)
	default:
		return nil, fmt.Errorf("invalid config, unknown segment sasl mechanism: %s", *clientConfig.TransportSaslMechanism)
	}
}

func (clientConfig *ClientConfig) tlsConfig() (*tls.Config, error) {
	if clientConfig.TransportTlsEnable == nil || !*clientConfig.TransportTlsEnable {
		return nil, nil
	}
	tlsCfg := &tls.Config{}
	if clientConfig.TransportTlsSkipVerify != nil {
		tlsCfg.InsecureSkipVerify = *clientConfig.TransportTlsSkipVerify
	}
	if clientConfig.TransportTlsCertFile != nil && clientConfig.TransportTlsKeyFile != nil {
		cert, err := tls.LoadX509KeyPair(*clientConfig.TransportTlsCertFile, *clientConfig.TransportTlsKeyFile)
		if err != nil {
			return nil, err
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}
	if clientConfig.TransportTlsCaFile != nil {
		caCert, err := os.ReadFile(*clientConfig.TransportTlsCaFile)
		if err != nil {
			return nil, err
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)
		tlsCfg.RootCAs = caCertPool
	}
	return tlsCfg, nil
}
