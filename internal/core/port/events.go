package port

import (
	"context"
	"workspace-drive/internal/core/domain"
)

// EventPublisher is an interface to define an event publisher (nats, kafka, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.FileEvent) error
	Close() error
}
