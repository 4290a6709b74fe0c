package franz

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/kversion"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Type         string        `default:"franz"`
	ClientConfig *ClientConfig `yaml:"clientConfig" validate:"required"`
	AdminTimeout time.Duration `yaml:"adminTimeout" default:"15s"`
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
	SeedBrokers            *string        `validate:"required"`
	ClientID               *string
	DialTimeout            *time.Duration
	MaxVersions            *string
	MinVersions            *string
	MetadataMaxAge         *time.Duration
	RequestRetries         *int
	RetryTimeout           *time.Duration
	TlsEnable              *bool
	TlsSkipVerify          *bool
	TlsCertFile            *string
	TlsKeyFile             *string
	TlsCaFile              *string
	SaslEnabled            *bool
	SaslMechanism          *string
	SaslUsername           *string
	SaslPassword           *string
	ProducerLinger         *time.Duration
	RecordRetries          *int
	RequiredAcks           *string
	RecordPartitioner      *string
	FetchMaxWait           *time.Duration
	FetchMaxBytes          *int32
	FetchIsolationLevel    *string
	DisableIdempotentWrite *bool
}

// ToOpts converts the config to client options. Consumer options are
// applied by the caller per partition cursor.
func (c *ClientConfig) ToOpts() ([]kgo.Opt, error) {
	opts := make([]kgo.Opt, 0)
	if c.SeedBrokers != nil {
		opts = append(opts, kgo.SeedBrokers(strings.Split(*c.SeedBrokers, ",")...))
	}
	if c.ClientID != nil {
		opts = append(opts, kgo.ClientID(*c.ClientID))
	}
	if c.DialTimeout != nil {
		opts = append(opts, kgo.DialTimeout(*c.DialTimeout))
	}
	if c.MaxVersions != nil {
		opts = append(opts, kgo.MaxVersions(kversion.FromString(*c.MaxVersions)))
	}
	if c.MinVersions != nil {
		opts = append(opts, kgo.MinVersions(kversion.FromString(*c.MinVersions)))
	}
	if c.MetadataMaxAge != nil {
		opts = append(opts, kgo.MetadataMaxAge(*c.MetadataMaxAge))
	}
	if c.RequestRetries != nil {
		opts = append(opts, kgo.RequestRetries(*c.RequestRetries))
	}
	if c.RetryTimeout != nil {
		opts = append(opts, kgo.RetryTimeout(*c.RetryTimeout))
	}
	if c.ProducerLinger != nil {
		opts = append(opts, kgo.ProducerLinger(*c.ProducerLinger))
	}
	if c.RecordRetries != nil {
		opts = append(opts, kgo.RecordRetries(*c.RecordRetries))
	}
	if c.DisableIdempotentWrite != nil && *c.DisableIdempotentWrite {
		opts = append(opts, kgo.DisableIdempotentWrite())
	}
	if c.RequiredAcks != nil {
		switch *c.RequiredAcks {
		case "all":
			opts = append(opts, kgo.RequiredAcks(kgo.AllISRAcks()))
		case "0":
			opts = append(opts, kgo.RequiredAcks(kgo.NoAck()))
		case "1":
			opts = append(opts, kgo.RequiredAcks(kgo.LeaderAck()))
		default:
			return nil, fmt.Errorf("invalid config, unknown required acks value: %v", *c.RequiredAcks)
		}
	}
	if c.RecordPartitioner != nil {
		switch *c.RecordPartitioner {
		case "RoundRobinPartitioner":
			opts = append(opts, kgo.RecordPartitioner(kgo.RoundRobinPartitioner()))
		case "LeastBackupPartitioner":
			opts = append(opts, kgo.RecordPartitioner(kgo.LeastBackupPartitioner()))
		case "StickyPartitioner":
			opts = append(opts, kgo.RecordPartitioner(kgo.StickyPartitioner()))
		case "StickyKeyPartitioner":
			opts = append(opts, kgo.RecordPartitioner(kgo.StickyKeyPartitioner(nil)))
		default:
			return nil, fmt.Errorf("invalid config, unknown record partitioner value: %v",
				*c.RecordPartitioner)
		}
	}
	if c.TlsEnable != nil && *c.TlsEnable {
		tlsCfg := &tls.Config{}
		if c.TlsSkipVerify != nil {
			tlsCfg.InsecureSkipVerify = *c.TlsSkipVerify
		}
		if c.TlsCertFile != nil && c.TlsKeyFile != nil {
			cert, err := tls.LoadX509KeyPair(*c.TlsCertFile, *c.TlsKeyFile)
			if err != nil {
				return nil, err
			}
			tlsCfg.Certificates = []tls.Certificate{cert}
		}
		if c.TlsCaFile != nil {
			caCert, err := os.ReadFile(*c.TlsCaFile)
			if err != nil {
				return nil, err
			}
			caCertPool := x509.NewCertPool()
			caCertPool.AppendCertsFromPEM(caCert)
			tlsCfg.RootCAs = caCertPool
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	if c.SaslEnabled != nil && *c.SaslEnabled && c.SaslMechanism != nil {
		if c.SaslUsername == nil || c.SaslPassword == nil {
			return nil, fmt.Errorf("invalid config, sasl username and password are required")
		}
		switch *c.SaslMechanism {
		case "plain":
			opts = append(opts, kgo.SASL(plain.Auth{
				User: *c.SaslUsername,
				Pass: *c.SaslPassword,
			}.AsMechanism()))
		case "scram-sha-256":
			opts = append(opts, kgo.SASL(scram.Auth{
				User: *c.SaslUsername,
				Pass: *c.SaslPassword,
			}.AsSha256Mechanism()))
		case "scram-sha-512":
			opts = append(opts, kgo.SASL(scram.Auth{
				User: *c.SaslUsername,
				Pass: *c.SaslPassword,
			}.AsSha512Mechanism()))
		default:
			return nil, fmt.Errorf("invalid config, unknown sasl mechanism value: %v",
				*c.SaslMechanism)
		}
	}
	return opts, nil
}

// ConsumerOpts are the fetch options used by partition cursors.
func (c *ClientConfig) ConsumerOpts() ([]kgo.Opt, error) {
	opts := make([]kgo.Opt, 0)
	if c.FetchMaxWait != nil {
		opts = append(opts, kgo.FetchMaxWait(*c.FetchMaxWait))
	}
	if c.FetchMaxBytes != nil {
		opts = append(opts, kgo.FetchMaxBytes(*c.FetchMaxBytes))
	}
	if c.FetchIsolationLevel != nil {
		switch *c.FetchIsolationLevel {
		case "read_uncommitted":
			opts = append(opts, kgo.FetchIsolationLevel(kgo.ReadUncommitted()))
		case "read_committed":
			opts = append(opts, kgo.FetchIsolationLevel(kgo.ReadCommitted()))
		default:
			return nil, fmt.Errorf("invalid config, unknown fetch isolation level: %v", *c.FetchIsolationLevel)
		}
	}
	return opts, nil
}
