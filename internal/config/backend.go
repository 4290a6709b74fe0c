package config

import (
	"fmt"

	"github.com/echo8/krpc/internal/config/confluent"
	"github.com/echo8/krpc/internal/config/franz"
	"github.com/echo8/krpc/internal/config/memory"
	"github.com/echo8/krpc/internal/config/sarama"
	"github.com/echo8/krpc/internal/config/segment"
)

type BackendType string

const (
	BackendSarama    BackendType = "sarama"
	BackendFranz     BackendType = "franz"
	BackendSegment   BackendType = "segment"
	BackendConfluent BackendType = "confluent"
	BackendMemory    BackendType = "memory"
)

// ClientConfig is the driver specific part of the backend section.
type ClientConfig interface {
	Load(v any) error
}

type BackendConfig struct {
	Type   BackendType
	Client ClientConfig `validate:"required"`
}

func (c *BackendConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var rawMap map[string]interface{}
	if err := unmarshal(&rawMap); err != nil {
		return err
	}
	typ, ok := rawMap["type"]
	if !ok {
		return fmt.Errorf("invalid config, backend type is missing")
	}
	var cfg ClientConfig
	switch BackendType(fmt.Sprint(typ)) {
	case BackendSarama:
		cfg = &sarama.Config{}
	case BackendFranz:
		cfg = &franz.Config{}
	case BackendSegment:
		cfg = &segment.Config{}
	case BackendConfluent:
		cfg = &confluent.Config{}
	case BackendMemory:
		cfg = &memory.Config{}
	default:
		return fmt.Errorf("invalid config, unknown backend type: %v", typ)
	}
	if err := cfg.Load(rawMap); err != nil {
		return fmt.Errorf("invalid config, failed to load %v backend config: %w", typ, err)
	}
	*c = BackendConfig{Type: BackendType(fmt.Sprint(typ)), Client: cfg}
	return nil
}

func defaultBackendConfig() BackendConfig {
	return BackendConfig{
		Type:   BackendSarama,
		Client: sarama.DefaultConfig(),
	}
}
