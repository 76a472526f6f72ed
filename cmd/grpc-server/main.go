package main

import (
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"showrank/internal/episodes"
	"showrank/internal/grpcserver"
	"showrank/internal/logging"
	"showrank/internal/shows"
	"showrank/pkg/config"
	"showrank/pkg/database"
	"showrank/pkg/models"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New("grpc-server", config.Defaults().Log).Error("failed to load configuration", "error", err)
		os.Exit(2)
	}
	logger := logging.New("grpc-server", cfg.Log)

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("db open failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		logger.Error("grpc listen failed", "addr", cfg.GRPC.Addr, "error", err)
		os.Exit(1)
	}

	svc := grpcserver.NewServer(shows.NewRepo(db, models.DefaultTierOrder()), episodes.NewRepo(db))
	grpcServer := grpcserver.NewGRPCServer(svc, logger.Named("rpc"))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("shutdown signal received", "signal", sig.String())
		grpcServer.GracefulStop()
	}()

	logger.Info("gRPC server listening", "addr", cfg.GRPC.Addr)
	if err := grpcServer.Serve(listener); err != nil {
		logger.Error("grpc server stopped", "error", err)
		os.Exit(1)
	}
}
