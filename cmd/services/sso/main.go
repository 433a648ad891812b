package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	config "github.com/apriori/backend/config/sso"
	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/sso/server"
	"github.com/apriori/backend/services/sso/storage"
	"github.com/apriori/backend/services/sso/storage/postgres/ent"
	"github.com/apriori/backend/services/sso/usecase"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelDebug,
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: false,
	})

	cfg := config.MustLoad()

	ctx := logger.WithContext(context.Background(), log)

	rootCtx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("failed to run()", slog.String("error", err.Error()))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Name,
		cfg.Database.Password,
		cfg.Database.SSLMode,
	)
	client, err := ent.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer client.Close()

	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	stg := storage.New(client)
	usc := usecase.New(cfg, stg)

	srv := server.NewServerOptions(cfg, usc)
	grpcServer, err := srv.NewServer()
	if err != nil {
		return fmt.Errorf("failed to create grpc server: %w", err)
	}

	address := fmt.Sprintf(":%d", cfg.Port)
	grpcListener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- grpcServer.Serve(grpcListener)
	}()
	log.Info("sso service started", slog.String("address", address))

	select {
	case err := <-serverErrors:
		return fmt.Errorf("grpc server has closed: %w", err)
	case <-ctx.Done():
		log.Info("closing grpc server due to context cancellation")
		grpcServer.GracefulStop()
	}

	return nil
}
