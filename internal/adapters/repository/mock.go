package repository

import (
	"context"
	"time"
	"workspace-drive/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockFileRepository struct {
	mock.Mock
}

func NewMockFileRepository() *MockFileRepository {
	return &MockFileRepository{}
}

func (m *MockFileRepository) Create(ctx context.Context, entity *domain.FileEntity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.FileEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileRepository) Find(ctx context.Context, filter domain.FileFilter) ([]domain.FileEntity, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]domain.FileEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.FileUpdate) (*domain.FileEntity, error) {
	args := m.Called(ctx, id, update)
	if v := args.Get(0); v != nil {
		return v.(*domain.FileEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileRepository) FindTrashedBefore(ctx context.Context, before time.Time) ([]domain.FileEntity, error) {
	args := m.Called(ctx, before)
	if v := args.Get(0); v != nil {
		return v.([]domain.FileEntity), args.Error(1)
	}
	return nil, args.Error(1)
}
