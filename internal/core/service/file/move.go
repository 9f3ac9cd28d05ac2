package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Move relocates an entity under target, the root when target has no id
func (f *fileService) Move(ctx context.Context, id primitive.ObjectID, target domain.ParentRef) (*domain.FileEntity, error) {
	return f.Update(ctx, id, domain.FilePatch{Parent: &target})
}
