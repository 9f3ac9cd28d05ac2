package file

import (
	"context"
	"fmt"
	"time"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Update applies patch to the entity. A change of name or parent recomputes the path.
func (f *fileService) Update(ctx context.Context, id primitive.ObjectID, patch domain.FilePatch) (*domain.FileEntity, error) {

	current, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update, err := f.buildUpdate(ctx, current, patch)
	if err != nil {
		return nil, err
	}

	updated, err := f.repo.Update(ctx, id, *update)
	if err != nil {
		return nil, err
	}

	if err := f.sign(ctx, updated); err != nil {
		return nil, err
	}

	f.publish(ctx, updateEventType(current, patch), updated)
	return updated, nil
}

func (f *fileService) buildUpdate(ctx context.Context, current *domain.FileEntity, patch domain.FilePatch) (*domain.FileUpdate, error) {
	update := &domain.FileUpdate{IsStarred: patch.IsStarred}

	name := current.Name
	if patch.Name != nil {
		validated, err := validateName(*patch.Name)
		if err != nil {
			return nil, err
		}
		name = validated
		update.Name = &validated
	}

	parentID := current.ParentFolderID
	if patch.Parent != nil {
		if err := f.checkMove(ctx, current, patch.Parent); err != nil {
			return nil, err
		}
		parentID = patch.Parent.ID
		update.Parent = patch.Parent
	}

	if patch.Name != nil || patch.Parent != nil {
		path, err := f.paths.Resolve(ctx, name, parentID)
		if err != nil {
			return nil, err
		}
		update.Path = &path
	}

	switch {
	case patch.IsTrashed != nil && *patch.IsTrashed:
		trashedAt := time.Now().UTC()
		if patch.TrashedAt != nil {
			trashedAt = *patch.TrashedAt
		}
		update.IsTrashed = patch.IsTrashed
		update.TrashedAt = &trashedAt
	case patch.IsTrashed != nil:
		update.IsTrashed = patch.IsTrashed
		update.ClearTrashedAt = true
	case patch.TrashedAt != nil:
		update.TrashedAt = patch.TrashedAt
	}

	if patch.CustomMetadata != nil {
		metadata, err := normalizeMetadata(patch.CustomMetadata)
		if err != nil {
			return nil, err
		}
		update.CustomMetadata = metadata
	}

	return update, nil
}

// checkMove rejects moves of an entity into itself or, for folders, into one of its descendants
func (f *fileService) checkMove(ctx context.Context, entity *domain.FileEntity, target *domain.ParentRef) error {
	if target.IsRoot() {
		return nil
	}
	if *target.ID == entity.ID {
		return fmt.Errorf("%w: cannot move %s into itself", domain.ErrInvalidMove, entity.ID.Hex())
	}
	if !entity.IsFolder {
		return nil
	}

	descendant, err := f.paths.IsDescendant(ctx, *target.ID, entity.ID)
	if err != nil {
		return err
	}
	if descendant {
		return fmt.Errorf("%w: cannot move %s into its own descendant", domain.ErrInvalidMove, entity.ID.Hex())
	}
	return nil
}

func updateEventType(current *domain.FileEntity, patch domain.FilePatch) domain.EventType {
	switch {
	case patch.IsTrashed != nil && *patch.IsTrashed && !current.IsTrashed:
		return domain.EventTypeFileTrashed
	case patch.IsTrashed != nil && !*patch.IsTrashed && current.IsTrashed:
		return domain.EventTypeFileRestored
	case patch.Parent != nil:
		return domain.EventTypeFileMoved
	default:
		return domain.EventTypeFileUpdated
	}
}
