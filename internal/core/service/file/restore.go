package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (f *fileService) Restore(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {

	current, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.IsTrashed {
		return nil, domain.ErrNotInTrash
	}

	trashed := false
	updated, err := f.repo.Update(ctx, id, domain.FileUpdate{IsTrashed: &trashed, ClearTrashedAt: true})
	if err != nil {
		return nil, err
	}

	if err := f.sign(ctx, updated); err != nil {
		return nil, err
	}

	f.publish(ctx, domain.EventTypeFileRestored, updated)
	return updated, nil
}
