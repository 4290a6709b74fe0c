package driver

import (
	"context"
	"testing"

	"github.com/echo8/krpc/internal/backend/memory"
	"github.com/echo8/krpc/internal/config"
	memorycfg "github.com/echo8/krpc/internal/config/memory"
	"github.com/echo8/krpc/internal/metric"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ms, err := metric.NewService(&config.MetricsConfig{})
	require.NoError(t, err)

	client, err := New(config.BackendConfig{
		Type:   config.BackendMemory,
		Client: &memorycfg.Config{DefaultPartitions: 1, Topics: []string{"orders"}},
	}, ms)
	require.NoError(t, err)
	defer client.Close()
	require.IsType(t, &memory.Client{}, client)
	_, err = client.TopicProducer(context.Background(), "orders")
	require.NoError(t, err)

	_, err = New(config.BackendConfig{Type: "pulsar"}, ms)
	require.EqualError(t, err, "failed to load backend, type: pulsar")

	_, err = New(config.BackendConfig{
		Type:   config.BackendMemory,
		Client: &memorycfg.Config{DefaultPartitions: 0, Topics: []string{"orders"}},
	}, ms)
	require.Error(t, err)
}
