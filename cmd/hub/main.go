package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/meshwork-io/grpc-hub/internal/api"
	"github.com/meshwork-io/grpc-hub/internal/config"
	"github.com/meshwork-io/grpc-hub/internal/events"
	hubgrpc "github.com/meshwork-io/grpc-hub/internal/grpc"
	"github.com/meshwork-io/grpc-hub/internal/proxy"
	"github.com/meshwork-io/grpc-hub/internal/registry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	configPath := flag.String("config", "", "path to config file")
	grpcHost := flag.String("grpc-host", "", "gRPC listen host (overrides config)")
	grpcPort := flag.Int("grpc-port", 0, "gRPC listen port (overrides config)")
	httpHost := flag.String("http-host", "", "HTTP listen host (overrides config)")
	httpPort := flag.Int("http-port", 0, "HTTP listen port (overrides config)")
	flag.Parse()

	cfgPath := *configPath
	if cfgPath == "" {
		home, _ := os.UserHomeDir()
		cfgPath = filepath.Join(home, ".grpc-hub", "hub.yaml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if *grpcHost != "" {
		cfg.GRPC.Host = *grpcHost
	}
	if *grpcPort != 0 {
		cfg.GRPC.Port = *grpcPort
	}
	if *httpHost != "" {
		cfg.HTTP.Host = *httpHost
	}
	if *httpPort != 0 {
		cfg.HTTP.Port = *httpPort
	}

	logger.Info("hub starting",
		"grpc_addr", cfg.GRPC.Address(),
		"http_addr", cfg.HTTP.Address(),
	)

	bus := events.NewBus(logger)
	store := registry.New(bus)
	px := proxy.New(store, nil, cfg.Proxy.CallTimeout, logger)
	monitor := registry.NewMonitor(store, cfg.Registry.SweepInterval, cfg.Registry.OfflineThreshold, logger)

	grpcServer, err := hubgrpc.NewServer(cfg.GRPC.Address(), hubgrpc.NewHubService(store, bus, px, logger), logger)
	if err != nil {
		return err
	}
	apiServer := api.NewServer(store, bus, px, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		monitor.Run(ctx)
		return nil
	})
	g.Go(grpcServer.Start)
	g.Go(func() error {
		err := apiServer.Start(ctx, cfg.HTTP.Address())
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("hub shutting down")
		bus.Close()
		grpcServer.Stop()
		return nil
	})

	logger.Info("hub ready",
		"grpc_addr", cfg.GRPC.Address(),
		"http_addr", cfg.HTTP.Address(),
	)
	return g.Wait()
}
