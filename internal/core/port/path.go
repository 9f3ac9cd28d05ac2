package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PathResolver computes materialized paths and answers ancestry questions
type PathResolver interface {
	Resolve(ctx context.Context, name string, parentID *primitive.ObjectID) (string, error)
	IsDescendant(ctx context.Context, candidateID primitive.ObjectID, ancestorID primitive.ObjectID) (bool, error)
}
