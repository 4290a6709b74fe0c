package confluent

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Type         string        `default:"confluent"`
	ClientConfig *ClientConfig `yaml:"clientConfig" validate:"required"`
	PollTimeout  time.Duration `yaml:"pollTimeout" default:"100ms"`
	QueryTimeout time.Duration `yaml:"queryTimeout" default:"10s"`
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
	BootstrapServers        *string `yaml:"bootstrap.servers" validate:"required"` // bootstrap.servers
	ClientId                *string `yaml:"client.id"`                             // client.id
	SocketTimeoutMs         *int    `yaml:"socket.timeout.ms"`                     // socket.timeout.ms	*	10 .. 300000
	MessageMaxBytes         *int    `yaml:"message.max.bytes"`                     // message.max.bytes	*	1000 .. 1000000000
	SecurityProtocol        *string `yaml:"security.protocol"`                     // security.protocol
	SslCaLocation           *string `yaml:"ssl.ca.location"`                       // ssl.ca.location
	SslCertificateLocation  *string `yaml:"ssl.certificate.location"`              // ssl.certificate.location
	SslKeyLocation          *string `yaml:"ssl.key.location"`                      // ssl.key.location
	SaslMechanisms          *string `yaml:"sasl.mechanisms"`                       // sasl.mechanisms
	SaslUsername            *string `yaml:"sasl.username"`                         // sasl.username
	SaslPassword            *string `yaml:"sasl.password"`                         // sasl.password
	Acks                    *string `yaml:"acks"`                                  // acks	P	-1 .. 1000
	LingerMs                *int    `yaml:"linger.ms"`                             // linger.ms	P	0 .. 900000
	CompressionType         *string `yaml:"compression.type"`                      // compression.type	P	none, gzip, snappy, lz4, zstd
	EnableIdempotence       *bool   `yaml:"enable.idempotence"`                    // enable.idempotence	P	true, false
	FetchMinBytes           *int    `yaml:"fetch.min.bytes"`                       // fetch.min.bytes	C	1 .. 100000000
	FetchWaitMaxMs          *int    `yaml:"fetch.wait.max.ms"`                     // fetch.wait.max.ms	C	0 .. 300000
	IsolationLevel          *string `yaml:"isolation.level"`                       // isolation.level	C	read_uncommitted, read_committed
	StatisticsIntervalMs    *int    `yaml:"statistics.interval.ms"`                // statistics.interval.ms	*	0 .. 86400000
	TopicMetadataRefreshMs  *int    `yaml:"topic.metadata.refresh.interval.ms"`    // topic.metadata.refresh.interval.ms	*	-1 .. 3600000
	ApiVersionRequest       *bool   `yaml:"api.version.request"`                   // api.version.request	*	true, false
	AllowAutoCreateTopics   *bool   `yaml:"allow.auto.create.topics"`              // allow.auto.create.topics
	ConnectionsMaxIdleMs    *int    `yaml:"connections.max.idle.ms"`               // connections.max.idle.ms	*	0 .. 2147483647
	ReconnectBackoffMaxMs   *int    `yaml:"reconnect.backoff.max.ms"`              // reconnect.backoff.max.ms	*	0 .. 3600000
	SocketKeepaliveEnable   *bool   `yaml:"socket.keepalive.enable"`               // socket.keepalive.enable
	BrokerAddressFamily     *string `yaml:"broker.address.family"`                 // broker.address.family	*	any, v4, v6
	EnableSslCertValidation *bool   `yaml:"enable.ssl.certificate.verification"`   // enable.ssl.certificate.verification
}

func (clientConfig *ClientConfig) common() kafka.ConfigMap {
	cm := kafka.ConfigMap{}
	if clientConfig.BootstrapServers != nil {
		cm["bootstrap.servers"] = *clientConfig.BootstrapServers
	}
	if clientConfig.ClientId != nil {
		cm["client.id"] = *clientConfig.ClientId
	}
	if clientConfig.SocketTimeoutMs != nil {
		cm["socket.timeout.ms"] = *clientConfig.SocketTimeoutMs
	}
	if clientConfig.MessageMaxBytes != nil {
		cm["message.max.bytes"] = *clientConfig.MessageMaxBytes
	}
	if clientConfig.SecurityProtocol != nil {
		cm["security.protocol"] = *clientConfig.SecurityProtocol
	}
	if clientConfig.SslCaLocation != nil {
		cm["ssl.ca.location"] = *clientConfig.SslCaLocation
	}
	if clientConfig.SslCertificateLocation != nil {
		cm["ssl.certificate.location"] = *clientConfig.SslCertificateLocation
	}
	if clientConfig.SslKeyLocation != nil {
		cm["ssl.key.location"] = *clientConfig.SslKeyLocation
	}
	if clientConfig.SaslMechanisms != nil {
		cm["sasl.mechanisms"] = *clientConfig.SaslMechanisms
	}
	if clientConfig.SaslUsername != nil {
		cm["sasl.username"] = *clientConfig.SaslUsername
	}
	if clientConfig.SaslPassword != nil {
		cm["sasl.password"] = *clientConfig.SaslPassword
	}
	if clientConfig.StatisticsIntervalMs != nil {
		cm["statistics.interval.ms"] = *clientConfig.StatisticsIntervalMs
	}
	if clientConfig.TopicMetadataRefreshMs != nil {
		cm["topic.metadata.refresh.interval.ms"] = *clientConfig.TopicMetadataRefreshMs
	}
	if clientConfig.ApiVersionRequest != nil {
		cm["api.version.request"] = *clientConfig.ApiVersionRequest
	}
	if clientConfig.ConnectionsMaxIdleMs != nil {
		cm["connections.max.idle.ms"] = *clientConfig.ConnectionsMaxIdleMs
	}
	if clientConfig.ReconnectBackoffMaxMs != nil {
		cm["reconnect.backoff.max.ms"] = *clientConfig.ReconnectBackoffMaxMs
	}
	if clientConfig.SocketKeepaliveEnable != nil {
		cm["socket.keepalive.enable"] = *clientConfig.SocketKeepaliveEnable
	}
	if clientConfig.BrokerAddressFamily != nil {
		cm["broker.address.family"] = *clientConfig.BrokerAddressFamily
	}
	if clientConfig.EnableSslCertValidation != nil {
		cm["enable.ssl.certificate.verification"] = *clientConfig.EnableSslCertValidation
	}
	return cm
}

func (clientConfig *ClientConfig) ToProducerConfigMap() *kafka.ConfigMap {
	cm := clientConfig.common()
	if clientConfig.Acks != nil {
		cm["acks"] = *clientConfig.Acks
	}
	if clientConfig.LingerMs != nil {
		cm["linger.ms"] = *clientConfig.LingerMs
	}
	if clientConfig.CompressionType != nil {
		cm["compression.type"] = *clientConfig.CompressionType
	}
	if clientConfig.EnableIdempotence != nil {
		cm["enable.idempotence"] = *clientConfig.EnableIdempotence
	}
	if clientConfig.AllowAutoCreateTopics != nil {
		cm["allow.auto.create.topics"] = *clientConfig.AllowAutoCreateTopics
	}
	return &cm
}

// ToConsumerConfigMap returns the config for a standalone partition
// consumer. Offsets are never committed.
func (clientConfig *ClientConfig) ToConsumerConfigMap(groupId string) *kafka.ConfigMap {
	cm := clientConfig.common()
	cm["group.id"] = groupId
	cm["enable.auto.commit"] = false
	cm["enable.auto.offset.store"] = false
	cm["go.application.rebalance.enable"] = false
	if clientConfig.FetchMinBytes != nil {
		cm["fetch.min.bytes"] = *clientConfig.FetchMinBytes
	}
	if clientConfig.FetchWaitMaxMs != nil {
		cm["fetch.wait.max.ms"] = *clientConfig.FetchWaitMaxMs
	}
	if clientConfig.IsolationLevel != nil {
		cm["isolation.level"] = *clientConfig.IsolationLevel
	}
	return &cm
}
