package file

import (
	"context"
	"fmt"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFile validates the target location, uploads the content then persists the entity
func (f *fileService) CreateFile(ctx context.Context, input domain.NewFile) (*domain.FileEntity, error) {

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.OriginalName
	}
	name, err := validateName(displayName)
	if err != nil {
		return nil, err
	}

	metadata, err := normalizeMetadata(input.CustomMetadata)
	if err != nil {
		return nil, err
	}

	// parent is checked before any byte reaches the object store
	path, err := f.paths.Resolve(ctx, name, input.ParentFolderID)
	if err != nil {
		return nil, err
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	storageKey, storageURL, err := f.fileStorage.PutObject(ctx, input.Content, input.Size, mimeType, input.OriginalName)
	if err != nil {
		return nil, fmt.Errorf("could not upload %s: %w", input.OriginalName, err)
	}

	entity := &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   input.OriginalName,
		MimeType:       mimeType,
		Size:           input.Size,
		StorageKey:     storageKey,
		StorageURL:     storageURL,
		ParentFolderID: input.ParentFolderID,
		CustomMetadata: metadata,
		Path:           path,
		IsActive:       true,
	}

	if err := f.repo.Create(ctx, entity); err != nil {
		if delErr := f.fileStorage.DeleteObject(ctx, storageKey); delErr != nil {
			f.logger.Error("failed to delete orphaned object",
				"storage_key", storageKey,
				"error", delErr)
		}
		return nil, fmt.Errorf("could not persist file metadata: %w", err)
	}

	f.publish(ctx, domain.EventTypeFileCreated, entity)
	return entity, nil
}
