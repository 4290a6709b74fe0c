package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/echo8/krpc/internal/backend/driver"
	"github.com/echo8/krpc/internal/config"
	"github.com/echo8/krpc/internal/gateway"
	"github.com/echo8/krpc/internal/metric"
	"github.com/echo8/krpc/internal/rpc"
	"github.com/echo8/krpc/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	flag.Parse()
	if len(*cfgPath) == 0 {
		fmt.Fprintln(os.Stderr, "required flag not defined: -config")
		flag.Usage()
		os.Exit(1)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal("Failed to load configuration.", err)
	}
	handler, err := cfg.Logging.Handler(os.Stdout)
	if err != nil {
		fatal("Failed to configure logging.", err)
	}
	slog.SetDefault(slog.New(handler))

	ms, err := metric.NewService(&cfg.Metrics)
	if err != nil {
		fatal("Failed to initialize metrics.", err)
	}
	client, err := driver.New(cfg.Backend, ms)
	if err != nil {
		fatal("Failed to create backend client.", err)
	}
	gw := gateway.New(client, ms)
	gw.Operations().Each(func(name string, implemented bool) {
		slog.Debug("Registered operation.", "name", name, "implemented", implemented)
	})

	rs, err := rpc.NewServer(&cfg.Server, gw, ms)
	if err != nil {
		fatal("Failed to create rpc server.", err)
	}
	if cfg.Http != nil {
		hs, err := server.NewServer(cfg.Http, gw, ms)
		if err != nil {
			fatal("Failed to create http server.", err)
		}
		go func() {
			if err := hs.Run(); err != nil {
				slog.Error("An error was returned after running the http server.", "error", err.Error())
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rs.ListenAndServe(ctx); err != nil {
		slog.Error("An error was returned after running the rpc server.", "error", err.Error())
	}

	if err := client.Close(); err != nil {
		slog.Error("Failed to close backend client.", "error", err.Error())
	}
	if err := ms.Shutdown(context.Background()); err != nil {
		slog.Error("Failed to shut down metrics.", "error", err.Error())
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err.Error())
	os.Exit(1)
}
