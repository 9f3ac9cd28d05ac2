package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoFileRepository struct {
	collection *mongo.Collection
}

// NewMongoFileRepository creates mongoFileRepository that implements port.FileRepository
func NewMongoFileRepository(db *mongo.Database, collection string) port.FileRepository {
	return &mongoFileRepository{
		collection: db.Collection(collection),
	}
}

// now is truncated to the millisecond precision of bson dates
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: error %s file entity: %w", domain.ErrPersistence, op, err)
}

// Create inserts a new entity
func (m *mongoFileRepository) Create(ctx context.Context, entity *domain.FileEntity) error {
	if entity.ID.IsZero() {
		entity.ID = primitive.NewObjectID()
	}
	if entity.CustomMetadata == nil {
		entity.CustomMetadata = map[string]string{}
	}
	createdAt := now()
	entity.CreatedAt = createdAt
	entity.UpdatedAt = createdAt

	if _, err := m.collection.InsertOne(ctx, entity); err != nil {
		return persistenceError("inserting", err)
	}
	return nil
}

// FindByID finds an active entity by id
func (m *mongoFileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {
	var entity domain.FileEntity

	err := m.collection.FindOne(ctx, bson.M{"_id": id, "isActive": true}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, id.Hex())
		}
		return nil, persistenceError("finding", err)
	}
	return &entity, nil
}

func buildFilter(filter domain.FileFilter) bson.M {
	query := bson.M{}

	if filter.Parent != nil {
		if filter.Parent.IsRoot() {
			query["parentFolderId"] = nil
		} else {
			query["parentFolderId"] = *filter.Parent.ID
		}
	}
	if filter.IsFolder != nil {
		query["isFolder"] = *filter.IsFolder
	}
	if filter.IsTrashed != nil {
		query["isTrashed"] = *filter.IsTrashed
	}
	if filter.IsStarred != nil {
		query["isStarred"] = *filter.IsStarred
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	if filter.MimeType != "" {
		query["mimeType"] = filter.MimeType
	}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.PathPrefix != "" {
		query["path"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.PathPrefix)}
	}
	return query
}

func (m *mongoFileRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]domain.FileEntity, error) {
	cursor, err := m.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, persistenceError("listing", err)
	}
	defer cursor.Close(ctx)

	entities := make([]domain.FileEntity, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, persistenceError("decoding", err)
	}
	return entities, nil
}

// Find lists entities matching filter ordered by name then id
func (m *mongoFileRepository) Find(ctx context.Context, filter domain.FileFilter) ([]domain.FileEntity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	return m.find(ctx, buildFilter(filter), opts)
}

// Update applies update in a single findAndModify and returns the new document
func (m *mongoFileRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.FileUpdate) (*domain.FileEntity, error) {
	set := bson.M{"updatedAt": now()}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Path != nil {
		set["path"] = *update.Path
	}
	if update.Parent != nil {
		set["parentFolderId"] = update.Parent.ID
	}
	if update.IsStarred != nil {
		set["isStarred"] = *update.IsStarred
	}
	if update.IsTrashed != nil {
		set["isTrashed"] = *update.IsTrashed
	}
	if update.TrashedAt != nil {
		set["trashedAt"] = update.TrashedAt.UTC()
	}
	if update.ClearTrashedAt {
		set["trashedAt"] = nil
	}
	if update.CustomMetadata != nil {
		set["customMetadata"] = update.CustomMetadata
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entity domain.FileEntity
	err := m.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "isActive": true}, bson.M{"$set": set}, opts).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, id.Hex())
		}
		return nil, persistenceError("updating", err)
	}
	return &entity, nil
}

// Delete removes the document for good
func (m *mongoFileRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return persistenceError("deleting", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFileNotFound, id.Hex())
	}
	return nil
}

// FindTrashedBefore lists active entities trashed at or before the given instant
func (m *mongoFileRepository) FindTrashedBefore(ctx context.Context, before time.Time) ([]domain.FileEntity, error) {
	query := bson.M{
		"isActive":  true,
		"isTrashed": true,
		"trashedAt": bson.M{"$lte": before.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "trashedAt", Value: 1}})
	return m.find(ctx, query, opts)
}
