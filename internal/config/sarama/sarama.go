package sarama

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	kafka "github.com/IBM/sarama"
	"github.com/creasty/defaults"
	"github.com/rcrowley/go-metrics"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Type                 string        `default:"sarama"`
	ClientConfig         *ClientConfig `yaml:"clientConfig" validate:"required"`
	MetricsFlushDuration time.Duration `yaml:"metricsFlushDuration" default:"15s"`
}

func DefaultConfig() *Config {
	bootstrap := "localhost:9092"
	return &Config{
		Type:                 "sarama",
		ClientConfig:         &ClientConfig{BootstrapServers: &bootstrap, MetricRegistry: metrics.NewRegistry()},
		MetricsFlushDuration: 15 * time.Second,
	}
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
	if cfg.ClientConfig != nil {
		cfg.ClientConfig.MetricRegistry = metrics.NewRegistry()
	}
	*c = *cfg
	return nil
}

type ClientConfig struct {
	BootstrapServers         *string          `yaml:"bootstrap.servers" validate:"required"`
	ClientID                 *string          `yaml:"client.id"`
	Version                  *string          `yaml:"version"`
	NetDialTimeout           *time.Duration   `yaml:"net.dial.timeout"`
	NetReadTimeout           *time.Duration   `yaml:"net.read.timeout"`
	NetWriteTimeout          *time.Duration   `yaml:"net.write.timeout"`
	NetTlsEnable             *bool            `yaml:"net.tls.enable"`
	NetTlsSkipVerify         *bool            `yaml:"net.tls.skip.verify"`
	NetTlsCertFile           *string          `yaml:"net.tls.cert.file"`
	NetTlsKeyFile            *string          `yaml:"net.tls.key.file"`
	NetTlsCaFile             *string          `yaml:"net.tls.ca.file"`
	NetSaslEnable            *bool            `yaml:"net.sasl.enable"`
	NetSaslMechanism         *string          `yaml:"net.sasl.mechanism"`
	NetSaslUser              *string          `yaml:"net.sasl.user"`
	NetSaslPassword          *string          `yaml:"net.sasl.password"`
	MetadataRetryMax         *int             `yaml:"metadata.retry.max"`
	MetadataRefreshFrequency *time.Duration   `yaml:"metadata.refresh.frequency"`
	ProducerRequiredAcks     *string          `yaml:"producer.required.acks"`
	ProducerTimeout          *time.Duration   `yaml:"producer.timeout"`
	ProducerCompression      *string          `yaml:"producer.compression"`
	ProducerPartitioner      *string          `yaml:"producer.partitioner"`
	ProducerRetryMax         *int             `yaml:"producer.retry.max"`
	ConsumerFetchMin         *int32           `yaml:"consumer.fetch.min"`
	ConsumerFetchDefault     *int32           `yaml:"consumer.fetch.default"`
	ConsumerMaxWaitTime      *time.Duration   `yaml:"consumer.max.wait.time"`
	ConsumerIsolationLevel   *string          `yaml:"consumer.isolation.level"`
	AdminTimeout             *time.Duration   `yaml:"admin.timeout"`
	ChannelBufferSize        *int             `yaml:"channel.buffer.size"`
	MetricRegistry           metrics.Registry `yaml:"-"`
}

func (clientConfig *ClientConfig) ToConfig() (*kafka.Config, error) {
	cfg := kafka.NewConfig()
	if clientConfig.ClientID != nil {
		cfg.ClientID = *clientConfig.ClientID
	}
	if clientConfig.Version != nil {
		v, err := kafka.ParseKafkaVersion(*clientConfig.Version)
		if err != nil {
			return nil, err
		}
		cfg.Version = v
	}
	if clientConfig.NetDialTimeout != nil {
		cfg.Net.DialTimeout = *clientConfig.NetDialTimeout
	}
	if clientConfig.NetReadTimeout != nil {
		cfg.Net.ReadTimeout = *clientConfig.NetReadTimeout
	}
	if clientConfig.NetWriteTimeout != nil {
		cfg.Net.WriteTimeout = *clientConfig.NetWriteTimeout
	}
	if clientConfig.NetTlsEnable != nil && *clientConfig.NetTlsEnable {
		tlsCfg, err := clientConfig.tlsConfig()
		if err != nil {
			return nil, err
		}
		cfg.Net.TLS.Enable = true
		cfg.Net.TLS.Config = tlsCfg
	}
	if clientConfig.NetSaslEnable != nil {
		cfg.Net.SASL.Enable = *clientConfig.NetSaslEnable
	}
	if clientConfig.NetSaslMechanism != nil {
		cfg.Net.SASL.Mechanism = kafka.SASLMechanism(*clientConfig.NetSaslMechanism)
	}
	if clientConfig.NetSaslUser != nil {
		cfg.Net.SASL.User = *clientConfig.NetSaslUser
	}
	if clientConfig.NetSaslPassword != nil {
		cfg.Net.SASL.Password = *clientConfig.NetSaslPassword
	}
	if clientConfig.MetadataRetryMax != nil {
		cfg.Metadata.Retry.Max = *clientConfig.MetadataRetryMax
	}
	if clientConfig.MetadataRefreshFrequency != nil {
		cfg.Metadata.RefreshFrequency = *clientConfig.MetadataRefreshFrequency
	}
	if clientConfig.ProducerRequiredAcks != nil {
		if *clientConfig.ProducerRequiredAcks == "all" {
			cfg.Producer.RequiredAcks = kafka.WaitForAll
		} else {
			i, err := strconv.Atoi(*clientConfig.ProducerRequiredAcks)
			if err != nil {
				return nil, err
			}
			cfg.Producer.RequiredAcks = kafka.RequiredAcks(int16(i))
		}
	}
	if clientConfig.ProducerTimeout != nil {
		cfg.Producer.Timeout = *clientConfig.ProducerTimeout
	}
	if clientConfig.ProducerCompression != nil {
		switch *clientConfig.ProducerCompression {
		case "none":
			cfg.Producer.Compression = kafka.CompressionNone
		case "gzip":
			cfg.Producer.Compression = kafka.CompressionGZIP
		case "snappy":
			cfg.Producer.Compression = kafka.CompressionSnappy
		case "lz4":
			cfg.Producer.Compression = kafka.CompressionLZ4
		case "zstd":
			cfg.Producer.Compression = kafka.CompressionZSTD
		default:
			return nil, fmt.Errorf("invalid config, unknown sarama compression codec: %s", *clientConfig.ProducerCompression)
		}
	}
	if clientConfig.ProducerPartitioner != nil {
		switch *clientConfig.ProducerPartitioner {
		case "hash":
			cfg.Producer.Partitioner = kafka.NewHashPartitioner
		case "random":
			cfg.Producer.Partitioner = kafka.NewRandomPartitioner
		case "round_robin":
			cfg.Producer.Partitioner = kafka.NewRoundRobinPartitioner
		default:
			return nil, fmt.Errorf("invalid config, unknown sarama partitioner: %s", *clientConfig.ProducerPartitioner)
		}
	}
	if clientConfig.ProducerRetryMax != nil {
		cfg.Producer.Retry.Max = *clientConfig.ProducerRetryMax
	}
	if clientConfig.ConsumerFetchMin != nil {
		cfg.Consumer.Fetch.Min = *clientConfig.ConsumerFetchMin
	}
	if clientConfig.ConsumerFetchDefault != nil {
		cfg.Consumer.Fetch.Default = *clientConfig.ConsumerFetchDefault
	}
	if clientConfig.ConsumerMaxWaitTime != nil {
		cfg.Consumer.MaxWaitTime = *clientConfig.ConsumerMaxWaitTime
	}
	if clientConfig.ConsumerIsolationLevel != nil {
		switch *clientConfig.ConsumerIsolationLevel {
		case "read_uncommitted":
			cfg.Consumer.IsolationLevel = kafka.ReadUncommitted
		case "read_committed":
			cfg.Consumer.IsolationLevel = kafka.ReadCommitted
		default:
			return nil, fmt.Errorf("invalid config, unknown sarama isolation level: %s", *clientConfig.ConsumerIsolationLevel)
		}
	}
	if clientConfig.AdminTimeout != nil {
		cfg.Admin.Timeout = *clientConfig.AdminTimeout
	}
	if clientConfig.ChannelBufferSize != nil {
		cfg.ChannelBufferSize = *clientConfig.ChannelBufferSize
	}
	if clientConfig.MetricRegistry != nil {
		cfg.MetricRegistry = clientConfig.MetricRegistry
	}
	cfg.Producer.Return.Successes = true
	cfg.Consumer.Return.Errors = true
	return cfg, nil
}

func (clientConfig *ClientConfig) tlsConfig() (*tls.Config, error) {
	tlsCfg := &tls.Config{}
	if clientConfig.NetTlsSkipVerify != nil {
		tlsCfg.InsecureSkipVerify = *clientConfig.NetTlsSkipVerify
	}
	if clientConfig.NetTlsCertFile != nil && clientConfig.NetTlsKeyFile != nil {
		cert, err := tls.LoadX509KeyPair(*clientConfig.NetTlsCertFile, *clientConfig.NetTlsKeyFile)
		if err != nil {
			return nil, err
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}
	if clientConfig.NetTlsCaFile != nil {
		caCert, err := os.ReadFile(*clientConfig.NetTlsCaFile)
		if err != nil {
			return nil, err
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)
		tlsCfg.RootCAs = caCertPool
	}
	return tlsCfg, nil
}

func (clientConfig *ClientConfig) GetAddrs() ([]string, error) {
	if clientConfig.BootstrapServers != nil {
		return strings.Split(*clientConfig.BootstrapServers, ","), nil
	}
	return nil, fmt.Errorf("invalid config, sarama client config is missing bootstrap.servers")
}
