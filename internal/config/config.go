package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/echo8/krpc/internal/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Server  ServerConfig
	Http    *HttpConfig
	Backend BackendConfig
	Metrics MetricsConfig
	Logging LoggingConfig
}

func Load(configPath string) (*AppConfig, error) {
	contents, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return loadFromBytes(contents)
}

func loadFromBytes(contents []byte) (*AppConfig, error) {
	expanded, err := expandEnvVars(contents)
	if err != nil {
		return nil, fmt.Errorf("failed to expand environment variables in config file: %w", err)
	}
	config := &AppConfig{}
	if err := defaults.Set(config); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(expanded, config); err != nil {
		return nil, err
	}
	if config.Backend.Client == nil {
		config.Backend = defaultBackendConfig()
	}
	if config.Metrics.Enable.All {
		config.Metrics.Enable.Rpc = true
		config.Metrics.Enable.Http = true
		config.Metrics.Enable.Gateway = true
		config.Metrics.Enable.Backend = true
		config.Metrics.Enable.Host = true
		config.Metrics.Enable.Runtime = true
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", util.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func (c *AppConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			ve := validationErrors[0]
			field := strings.ToLower(strings.TrimPrefix(ve.Namespace(), "AppConfig."))
			switch ve.Tag() {
			case "required", "notblank":
				return fmt.Errorf("invalid config, %s is required", field)
			case "min", "max":
				return fmt.Errorf("invalid config, %s is out of range: %v", field, ve.Value())
			default:
				return fmt.Errorf("invalid config, %s failed validation: %s", field, ve.Tag())
			}
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Server.Tls != nil {
		if err := c.Server.Tls.Validate(); err != nil {
			return fmt.Errorf("invalid config, server tls: %w", err)
		}
	}
	return nil
}

// expandEnvVars returns contents unchanged when it holds no ${env:...}
// placeholder.
func expandEnvVars(contents []byte) ([]byte, error) {
	if !util.HasEnvVar(string(contents)) {
		return contents, nil
	}
	cfgMap := make(map[string]any)
	if err := yaml.Unmarshal(contents, cfgMap); err != nil {
		return nil, err
	}
	expandEnvVarsInMap(cfgMap)
	return yaml.Marshal(cfgMap)
}

func expandEnvVarsInMap(mp map[string]any) {
	for k, v := range mp {
		switch v := v.(type) {
		case string:
			mp[k] = util.ExpandEnvVars(v)
		case map[string]any:
			expandEnvVarsInMap(v)
		case []any:
			for i := range v {
				switch iv := v[i].(type) {
				case map[string]any:
					expandEnvVarsInMap(iv)
				case string:
					v[i] = util.ExpandEnvVars(iv)
				}
			}
		case nil, bool, int, float64:
		default:
			slog.Warn(
				"Skipped processing part of the config file because of unknown type.",
				"key", k, "type", reflect.TypeOf(v))
		}
	}
}
