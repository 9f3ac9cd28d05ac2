package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (f *fileService) CreateFolder(ctx context.Context, input domain.NewFolder) (*domain.FileEntity, error) {

	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	metadata, err := normalizeMetadata(input.CustomMetadata)
	if err != nil {
		return nil, err
	}

	path, err := f.paths.Resolve(ctx, name, input.ParentFolderID)
	if err != nil {
		return nil, err
	}

	entity := &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   name,
		MimeType:       domain.FolderMimeType,
		Size:           0,
		ParentFolderID: input.ParentFolderID,
		IsFolder:       true,
		CustomMetadata: metadata,
		Path:           path,
		IsActive:       true,
	}

	if err := f.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	f.publish(ctx, domain.EventTypeFolderCreated, entity)
	return entity, nil
}
