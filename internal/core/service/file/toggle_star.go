package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (f *fileService) ToggleStar(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {

	current, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	starred := !current.IsStarred
	updated, err := f.repo.Update(ctx, id, domain.FileUpdate{IsStarred: &starred})
	if err != nil {
		return nil, err
	}

	if err := f.sign(ctx, updated); err != nil {
		return nil, err
	}

	f.publish(ctx, domain.EventTypeFileUpdated, updated)
	return updated, nil
}
