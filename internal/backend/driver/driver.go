// Package driver builds the backend client selected by the backend config.
package driver

import (
	"fmt"
	"log/slog"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/internal/backend/confluent"
	"github.com/echo8/krpc/internal/backend/franz"
	"github.com/echo8/krpc/internal/backend/memory"
	"github.com/echo8/krpc/internal/backend/sarama"
	"github.com/echo8/krpc/internal/backend/segment"
	"github.com/echo8/krpc/internal/config"
	confluentcfg "github.com/echo8/krpc/internal/config/confluent"
	franzcfg "github.com/echo8/krpc/internal/config/franz"
	memorycfg "github.com/echo8/krpc/internal/config/memory"
	saramacfg "github.com/echo8/krpc/internal/config/sarama"
	segmentcfg "github.com/echo8/krpc/internal/config/segment"
	"github.com/echo8/krpc/internal/metric"
)

func New(cfg config.BackendConfig, ms metric.Service) (backend.Client, error) {
	var client backend.Client
	var err error
	switch c := cfg.Client.(type) {
	case *saramacfg.Config:
		client, err = sarama.NewClient(c, ms)
	case *franzcfg.Config:
		client, err = franz.NewClient(c)
	case *segmentcfg.Config:
		client, err = segment.NewClient(c, ms)
	case *confluentcfg.Config:
		client, err = confluent.NewClient(c)
	case *memorycfg.Config:
		client, err = memory.NewClient(c)
	default:
		return nil, fmt.Errorf("failed to load backend, type: %v", cfg.Type)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded backend.", "type", cfg.Type)
	return client, nil
}
