package mongodb_test

import (
	"context"
	"testing"
	"time"
	"workspace-drive/internal/adapters/repository/mongodb"
	"workspace-drive/internal/core/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newEntity(name, path string, parentID *primitive.ObjectID, isFolder bool) *domain.FileEntity {
	entity := &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   name,
		MimeType:       "text/plain",
		ParentFolderID: parentID,
		IsFolder:       isFolder,
		Path:           path,
		IsActive:       true,
	}
	if isFolder {
		entity.MimeType = domain.FolderMimeType
	} else {
		entity.Size = 3
		entity.StorageKey = primitive.NewObjectID().Hex() + ".txt"
		entity.StorageURL = "https://signed/" + name
	}
	return entity
}

func names(entities []domain.FileEntity) []string {
	result := make([]string, 0, len(entities))
	for _, e := range entities {
		result = append(result, e.Name)
	}
	return result
}

func TestMongoFileRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup, truncate := mongodb.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := mongodb.NewMongoFileRepository(db, mongodb.TestCollection)

	t.Run("Create - Success", func(t *testing.T) {
		// Arrange
		truncate()
		entity := newEntity("a.txt", "a.txt", nil, false)

		// Act
		err := repo.Create(ctx, entity)

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, entity.ID)
		require.NoError(t, err)
		require.Equal(t, entity.ID, found.ID)
		require.Equal(t, "a.txt", found.Name)
		require.Nil(t, found.ParentFolderID)
		require.Nil(t, found.TrashedAt)
		require.NotNil(t, found.CustomMetadata)
		require.False(t, found.CreatedAt.IsZero())
		require.Equal(t, found.CreatedAt, found.UpdatedAt)
	})

	t.Run("Create - Folder has no storage fields", func(t *testing.T) {
		// Arrange
		truncate()
		folder := newEntity("Docs", "Docs", nil, true)

		// Act
		err := repo.Create(ctx, folder)

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, folder.ID)
		require.NoError(t, err)
		require.True(t, found.IsFolder)
		require.Empty(t, found.StorageKey)
		require.Empty(t, found.StorageURL)
	})

	t.Run("FindByID - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		// Assert
		require.Nil(t, found)
		require.ErrorIs(t, err, domain.ErrFileNotFound)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("FindByID - Inactive is hidden", func(t *testing.T) {
		// Arrange
		truncate()
		entity := newEntity("a.txt", "a.txt", nil, false)
		entity.IsActive = false
		require.NoError(t, repo.Create(ctx, entity))

		// Act
		_, err := repo.FindByID(ctx, entity.ID)

		// Assert
		require.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("Find - Filters", func(t *testing.T) {
		// Arrange
		truncate()
		docs := newEntity("Docs", "Docs", nil, true)
		report := newEntity("Report.pdf", "Docs/Report.pdf", &docs.ID, false)
		report.MimeType = "application/pdf"
		notes := newEntity("notes.txt", "Docs/notes.txt", &docs.ID, false)
		notes.IsStarred = true
		rootFile := newEntity("root.txt", "root.txt", nil, false)
		trashed := newEntity("old.txt", "old.txt", nil, false)
		trashed.IsTrashed = true
		inactive := newEntity("hidden.txt", "hidden.txt", nil, false)
		inactive.IsActive = false
		dotted := newEntity("a.b", "a.b", nil, false)
		for _, e := range []*domain.FileEntity{docs, report, notes, rootFile, trashed, inactive, dotted} {
			require.NoError(t, repo.Create(ctx, e))
		}
		yes, no := true, false

		tests := []struct {
			name     string
			filter   domain.FileFilter
			expected []string
		}{
			{name: "root", filter: domain.FileFilter{Parent: domain.Root(), IsActive: &yes}, expected: []string{"Docs", "a.b", "old.txt", "root.txt"}},
			{name: "in folder", filter: domain.FileFilter{Parent: domain.InFolder(docs.ID)}, expected: []string{"Report.pdf", "notes.txt"}},
			{name: "folders", filter: domain.FileFilter{IsFolder: &yes}, expected: []string{"Docs"}},
			{name: "trashed", filter: domain.FileFilter{IsTrashed: &yes}, expected: []string{"old.txt"}},
			{name: "starred", filter: domain.FileFilter{IsStarred: &yes}, expected: []string{"notes.txt"}},
			{name: "mime type", filter: domain.FileFilter{MimeType: "application/pdf"}, expected: []string{"Report.pdf"}},
			{name: "name is case insensitive", filter: domain.FileFilter{Name: "REPORT"}, expected: []string{"Report.pdf"}},
			{name: "name is literal", filter: domain.FileFilter{Name: "."}, expected: []string{"Report.pdf", "a.b", "hidden.txt", "notes.txt", "old.txt", "root.txt"}},
			{name: "path prefix", filter: domain.FileFilter{PathPrefix: "Docs/"}, expected: []string{"Report.pdf", "notes.txt"}},
			{name: "inactive", filter: domain.FileFilter{IsActive: &no}, expected: []string{"hidden.txt"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Act
				entities, err := repo.Find(ctx, tt.filter)

				// Assert
				require.NoError(t, err)
				require.Equal(t, tt.expected, names(entities))
			})
		}
	})

	t.Run("Find - Empty", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		entities, err := repo.Find(ctx, domain.FileFilter{})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, entities)
		require.Empty(t, entities)
	})

	t.Run("Update - Success", func(t *testing.T) {
		// Arrange
		truncate()
		docs := newEntity("Docs", "Docs", nil, true)
		entity := newEntity("a.txt", "a.txt", nil, false)
		require.NoError(t, repo.Create(ctx, docs))
		require.NoError(t, repo.Create(ctx, entity))
		name, path, starred := "b.txt", "Docs/b.txt", true

		// Act
		updated, err := repo.Update(ctx, entity.ID, domain.FileUpdate{
			Name:           &name,
			Path:           &path,
			Parent:         domain.InFolder(docs.ID),
			IsStarred:      &starred,
			CustomMetadata: map[string]string{"k": "v"},
		})

		// Assert
		require.NoError(t, err)
		require.Equal(t, "b.txt", updated.Name)
		require.Equal(t, "Docs/b.txt", updated.Path)
		require.Equal(t, docs.ID, *updated.ParentFolderID)
		require.True(t, updated.IsStarred)
		require.Equal(t, map[string]string{"k": "v"}, updated.CustomMetadata)
		require.Equal(t, "a.txt", updated.OriginalName)
		require.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("Update - Move to root and trash cycle", func(t *testing.T) {
		// Arrange
		truncate()
		docs := newEntity("Docs", "Docs", nil, true)
		entity := newEntity("a.txt", "Docs/a.txt", &docs.ID, false)
		require.NoError(t, repo.Create(ctx, docs))
		require.NoError(t, repo.Create(ctx, entity))
		path, trashed, restored := "a.txt", true, false
		trashedAt := time.Now().UTC().Truncate(time.Millisecond)

		// Act
		moved, errMove := repo.Update(ctx, entity.ID, domain.FileUpdate{Parent: domain.Root(), Path: &path})
		inTrash, errTrash := repo.Update(ctx, entity.ID, domain.FileUpdate{IsTrashed: &trashed, TrashedAt: &trashedAt})
		back, errRestore := repo.Update(ctx, entity.ID, domain.FileUpdate{IsTrashed: &restored, ClearTrashedAt: true})

		// Assert
		require.NoError(t, errMove)
		require.Nil(t, moved.ParentFolderID)
		require.NoError(t, errTrash)
		require.True(t, inTrash.IsTrashed)
		require.True(t, trashedAt.Equal(*inTrash.TrashedAt))
		require.NoError(t, errRestore)
		require.False(t, back.IsTrashed)
		require.Nil(t, back.TrashedAt)
	})

	t.Run("Update - Not Found", func(t *testing.T) {
		// Arrange
		truncate()
		starred := true

		// Act
		_, err := repo.Update(ctx, primitive.NewObjectID(), domain.FileUpdate{IsStarred: &starred})

		// Assert
		require.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("Delete - Success", func(t *testing.T) {
		// Arrange
		truncate()
		entity := newEntity("a.txt", "a.txt", nil, false)
		require.NoError(t, repo.Create(ctx, entity))

		// Act
		err := repo.Delete(ctx, entity.ID)

		// Assert
		require.NoError(t, err)
		_, err = repo.FindByID(ctx, entity.ID)
		require.ErrorIs(t, err, domain.ErrFileNotFound)
		require.ErrorIs(t, repo.Delete(ctx, entity.ID), domain.ErrFileNotFound)
	})

	t.Run("FindTrashedBefore", func(t *testing.T) {
		// Arrange
		truncate()
		now := time.Now().UTC()
		old := newEntity("old.txt", "old.txt", nil, false)
		recent := newEntity("recent.txt", "recent.txt", nil, false)
		active := newEntity("active.txt", "active.txt", nil, false)
		require.NoError(t, repo.Create(ctx, old))
		require.NoError(t, repo.Create(ctx, recent))
		require.NoError(t, repo.Create(ctx, active))
		trashed := true
		oldAt, recentAt := now.Add(-48*time.Hour), now.Add(-time.Hour)
		_, err := repo.Update(ctx, old.ID, domain.FileUpdate{IsTrashed: &trashed, TrashedAt: &oldAt})
		require.NoError(t, err)
		_, err = repo.Update(ctx, recent.ID, domain.FileUpdate{IsTrashed: &trashed, TrashedAt: &recentAt})
		require.NoError(t, err)

		// Act
		expired, err := repo.FindTrashedBefore(ctx, now.Add(-24*time.Hour))

		// Assert
		require.NoError(t, err)
		require.Equal(t, []string{"old.txt"}, names(expired))
	})
}
