package cleanup

import (
	"context"
	"errors"
	"time"
	"workspace-drive/internal/core/domain"
)

// PurgeExpiredTrash permanently deletes entities trashed longer than the retention.
// A failure on one entity is logged and does not stop the run.
func (c *cleanupService) PurgeExpiredTrash(ctx context.Context, now time.Time) error {
	if c.retention <= 0 {
		return nil
	}

	entities, err := c.repo.FindTrashedBefore(ctx, now.Add(-c.retention))
	if err != nil {
		return err
	}

	purged := 0
	for i := range entities {
		entity := &entities[i]

		if entity.HasBlob() {
			if err := c.fileStorage.DeleteObject(ctx, entity.StorageKey); err != nil {
				c.logger.Error("failed to delete trashed object", "file_id", entity.ID.Hex(), "error", err)
				continue
			}
		}

		if err := c.repo.Delete(ctx, entity.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			c.logger.Error("failed to delete trashed entity", "file_id", entity.ID.Hex(), "error", err)
			continue
		}

		if err := c.publisher.Publish(ctx, domain.NewFileEvent(domain.EventTypeFilePurged, entity, now)); err != nil {
			c.logger.Warn("failed to publish file event", "type", domain.EventTypeFilePurged, "file_id", entity.ID.Hex(), "error", err)
		}
		purged++
	}

	c.logger.Info("trash purge completed", "found", len(entities), "purged", purged)
	return nil
}
