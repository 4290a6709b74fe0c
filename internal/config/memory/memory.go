package memory

import (
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config configures the in-process backend.
type Config struct {
	Type              string   `default:"memory"`
	DefaultPartitions int32    `yaml:"defaultPartitions" default:"1" validate:"min=1"`
	Topics            []string `yaml:"topics"`
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
