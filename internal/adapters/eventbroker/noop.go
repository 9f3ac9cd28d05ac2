package eventbroker

import (
	"context"
	"log/slog"
	"workspace-drive/internal/core/domain"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (n *NoopPublisher) Publish(_ context.Context, event domain.FileEvent) error {
	n.logger.Debug("file event dropped", "type", event.Type, "file_id", event.FileID.Hex())
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}
