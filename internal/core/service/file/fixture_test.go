package file_test

import (
	"context"
	"io"
	"log/slog"
	"workspace-drive/internal/adapters/eventbroker"
	"workspace-drive/internal/adapters/repository"
	"workspace-drive/internal/adapters/storage"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/port"
	"workspace-drive/internal/core/service/file"
	"workspace-drive/internal/core/service/path"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	repo      *repository.MockFileRepository
	storage   *storage.MockStorage
	publisher *eventbroker.MockPublisher
	service   port.FileService
}

func newFixture() *fixture {
	repo := repository.NewMockFileRepository()
	mockStorage := storage.NewMockStorage()
	publisher := eventbroker.NewMockPublisher()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		repo:      repo,
		storage:   mockStorage,
		publisher: publisher,
		service:   file.NewFileService(repo, mockStorage, path.NewPathResolver(repo), publisher, discardLogger),
	}
}

func (f *fixture) expectEvent(ctx context.Context, eventType domain.EventType) {
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.FileEvent) bool {
		return e.Type == eventType
	})).Return(nil).Once()
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.repo.AssertExpectations(t)
	f.storage.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func newFolder(name, path string, parentID *primitive.ObjectID) *domain.FileEntity {
	return &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   name,
		MimeType:       domain.FolderMimeType,
		ParentFolderID: parentID,
		IsFolder:       true,
		Path:           path,
		IsActive:       true,
	}
}

func newStoredFile(name, path string, parentID *primitive.ObjectID) *domain.FileEntity {
	return &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   name,
		MimeType:       "text/plain",
		Size:           5,
		StorageKey:     "1700000000000-" + name,
		ParentFolderID: parentID,
		Path:           path,
		IsActive:       true,
	}
}
