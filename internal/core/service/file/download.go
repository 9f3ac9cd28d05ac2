package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Download returns a signed url for the file content. Trashed files can still be downloaded.
func (f *fileService) Download(ctx context.Context, id primitive.ObjectID) (*domain.DownloadLink, error) {

	entity, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity.IsFolder {
		return nil, domain.ErrCannotDownloadFolder
	}

	url, expiresAt, err := f.fileStorage.SignedURL(ctx, entity.StorageKey)
	if err != nil {
		return nil, err
	}

	return &domain.DownloadLink{URL: url, ExpiresAt: expiresAt}, nil
}
