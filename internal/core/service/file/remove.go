package file

import (
	"context"
	"fmt"
	"time"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Remove moves an active entity to trash. An entity already in trash is deleted for good,
// blob first then record.
func (f *fileService) Remove(ctx context.Context, id primitive.ObjectID) (*domain.RemoveResult, error) {

	current, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.IsTrashed {
		trashed := true
		trashedAt := time.Now().UTC()
		updated, err := f.repo.Update(ctx, id, domain.FileUpdate{IsTrashed: &trashed, TrashedAt: &trashedAt})
		if err != nil {
			return nil, err
		}

		f.publish(ctx, domain.EventTypeFileTrashed, updated)
		return &domain.RemoveResult{
			ID:      id,
			Status:  domain.RemoveStatusTrashed,
			Message: fmt.Sprintf("%s moved to trash", current.Name),
		}, nil
	}

	if current.HasBlob() {
		if err := f.fileStorage.DeleteObject(ctx, current.StorageKey); err != nil {
			return nil, fmt.Errorf("could not delete content of %s: %w", id.Hex(), err)
		}
	}

	if err := f.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	f.publish(ctx, domain.EventTypeFileDeleted, current)
	return &domain.RemoveResult{
		ID:      id,
		Status:  domain.RemoveStatusDeleted,
		Message: fmt.Sprintf("%s permanently deleted", current.Name),
	}, nil
}
