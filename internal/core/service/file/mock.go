package file

import (
	"context"
	"workspace-drive/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

// NewMockFileService creates a new MockFileService
func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func entityOrNil(args mock.Arguments) *domain.FileEntity {
	if v := args.Get(0); v != nil {
		return v.(*domain.FileEntity)
	}
	return nil
}

func (m *MockFileService) CreateFile(ctx context.Context, input domain.NewFile) (*domain.FileEntity, error) {
	args := m.Called(ctx, input)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) CreateFolder(ctx context.Context, input domain.NewFolder) (*domain.FileEntity, error) {
	args := m.Called(ctx, input)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, filter domain.FileFilter) ([]domain.FileEntity, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]domain.FileEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {
	args := m.Called(ctx, id)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) Update(ctx context.Context, id primitive.ObjectID, patch domain.FilePatch) (*domain.FileEntity, error) {
	args := m.Called(ctx, id, patch)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) ToggleStar(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {
	args := m.Called(ctx, id)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) Move(ctx context.Context, id primitive.ObjectID, target domain.ParentRef) (*domain.FileEntity, error) {
	args := m.Called(ctx, id, target)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) Remove(ctx context.Context, id primitive.ObjectID) (*domain.RemoveResult, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.RemoveResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileService) Restore(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {
	args := m.Called(ctx, id)
	return entityOrNil(args), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, id primitive.ObjectID) (*domain.DownloadLink, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.DownloadLink), args.Error(1)
	}
	return nil, args.Error(1)
}
