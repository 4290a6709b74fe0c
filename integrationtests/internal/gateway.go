//go:build integration

package integrationtest

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	krpcv1 "github.com/echo8/krpc/gen/krpc/v1"
	"github.com/echo8/krpc/internal/backend/driver"
	"github.com/echo8/krpc/internal/config"
	"github.com/echo8/krpc/internal/gateway"
	"github.com/echo8/krpc/internal/metric"
	"github.com/echo8/krpc/internal/rpc"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const configTemplate = `
server:
  host: 127.0.0.1
  port: 50051
  shutdownTimeout: 2s
backend:
%s
logging:
  level: debug
`

// NewGatewayClient runs an in-process gateway for the given backend section
// and returns a client connected to it over loopback.
func NewGatewayClient(t *testing.T, backendSection string) krpcv1.LogServiceClient {
	path := filepath.Join(t.TempDir(), "krpc.yaml")
	contents := fmt.Sprintf(configTemplate, backendSection)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	ms, err := metric.NewService(&cfg.Metrics)
	require.NoError(t, err)
	client, err := driver.New(cfg.Backend, ms)
	require.NoError(t, err)

	srv, err := rpc.NewServer(&cfg.Server, gateway.New(client, ms), ms)
	require.NoError(t, err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-served
		client.Close()
	})
	return krpcv1.NewLogServiceClient(conn)
}
