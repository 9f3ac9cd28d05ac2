package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// List returns matching entities sorted by name, each file carrying a fresh signed url
func (f *fileService) List(ctx context.Context, filter domain.FileFilter) ([]domain.FileEntity, error) {

	if filter.IsActive == nil {
		active := true
		filter.IsActive = &active
	}

	entities, err := f.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortEntities(entities)

	for i := range entities {
		if err := f.sign(ctx, &entities[i]); err != nil {
			return nil, err
		}
	}
	return entities, nil
}

func (f *fileService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {

	entity, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := f.sign(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}
