package cleanup

import (
	"log/slog"
	"time"
	"workspace-drive/internal/core/port"
)

type cleanupService struct {
	repo        port.FileRepository
	fileStorage port.FileStorage
	publisher   port.EventPublisher
	retention   time.Duration
	logger      *slog.Logger
}

// NewCleanupService creates a new cleanup service. A zero retention disables purging.
func NewCleanupService(repo port.FileRepository, fileStorage port.FileStorage, publisher port.EventPublisher, retention time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		repo:        repo,
		fileStorage: fileStorage,
		publisher:   publisher,
		retention:   retention,
		logger:      logger,
	}
}
