package path

import (
	"context"
	"errors"
	"fmt"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/port"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxDepth bounds ancestor walks so a corrupted parent chain cannot loop forever
const maxDepth = 1024

type pathResolver struct {
	repo port.FileRepository
}

// NewPathResolver creates a new path resolver reading from repo
func NewPathResolver(repo port.FileRepository) port.PathResolver {
	return &pathResolver{repo: repo}
}

// Resolve returns the materialized path of an entity named name under parentID.
// The parent must exist, be a folder and not be trashed.
func (p *pathResolver) Resolve(ctx context.Context, name string, parentID *primitive.ObjectID) (string, error) {
	if parentID == nil {
		return name, nil
	}

	parent, err := p.repo.FindByID(ctx, *parentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: %s does not exist", domain.ErrInvalidParent, parentID.Hex())
		}
		return "", err
	}
	if !parent.IsFolder {
		return "", fmt.Errorf("%w: %s is not a folder", domain.ErrInvalidParent, parentID.Hex())
	}
	if parent.IsTrashed {
		return "", fmt.Errorf("%w: %s is in trash", domain.ErrInvalidParent, parentID.Hex())
	}

	return parent.Path + domain.PathSeparator + name, nil
}

// IsDescendant reports whether candidateID is ancestorID or sits somewhere below it
func (p *pathResolver) IsDescendant(ctx context.Context, candidateID primitive.ObjectID, ancestorID primitive.ObjectID) (bool, error) {
	current := &candidateID
	for depth := 0; current != nil; depth++ {
		if *current == ancestorID {
			return true, nil
		}
		if depth >= maxDepth {
			return false, fmt.Errorf("%w: folder hierarchy deeper than %d", domain.ErrValidation, maxDepth)
		}

		entity, err := p.repo.FindByID(ctx, *current)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		current = entity.ParentFolderID
	}
	return false, nil
}
