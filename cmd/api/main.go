package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"workspace-drive/internal/adapters/eventbroker"
	"workspace-drive/internal/adapters/eventbroker/nats"
	"workspace-drive/internal/adapters/handlers/http/chi"
	file2 "workspace-drive/internal/adapters/handlers/http/chi/v1/file"
	"workspace-drive/internal/adapters/repository/mongodb"
	"workspace-drive/internal/adapters/storage/minio"
	"workspace-drive/internal/config"
	"workspace-drive/internal/core/port"
	"workspace-drive/internal/core/service/cleanup"
	"workspace-drive/internal/core/service/file"
	"workspace-drive/internal/core/service/path"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established", "database", cfg.Mongo.Database)

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//events
	publisher, err := initPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	//repositories
	fileRepo := mongodb.NewMongoFileRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)

	pathResolver := path.NewPathResolver(fileRepo)
	fileService := file.NewFileService(fileRepo, minioAdapter, pathResolver, publisher, logger)
	cleanupService := cleanup.NewCleanupService(fileRepo, minioAdapter, publisher, cfg.Trash.Retention, logger)

	//http
	fileHandler := file2.NewFileHandlerV1(fileService, cfg.Upload, logger)

	router := chi.NewRouter(logger, fileHandler, cfg.Env.Env, file2.MaxRequestSize(cfg.Upload))
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	if cfg.Trash.Retention > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			initPurgeTask(ctx, cleanupService, cfg.Trash.PurgeEvery, logger)
		}()
	} else {
		logger.Info("trash purge disabled")
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (port.EventPublisher, error) {
	if !cfg.Enabled {
		logger.Info("NATS disabled, file events will be dropped")
		return eventbroker.NewNoopPublisher(logger), nil
	}
	publisher, err := nats.NewNATSPublisher(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("NATS connection established", "url", cfg.URL, "stream", cfg.StreamName)
	return publisher, nil
}

func initPurgeTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("trash purge task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("trash purge task starting")
			if err := service.PurgeExpiredTrash(ctx, time.Now().UTC()); err != nil {
				logger.Error("failed to purge expired trash", "error", err)
			}
		case <-ctx.Done():
			logger.Info("trash purge task stopped")
			return
		}
	}

}
