package storage

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) PutObject(ctx context.Context, content io.Reader, size int64, contentType string, originalName string) (string, string, error) {
	args := m.Called(ctx, content, size, contentType, originalName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) SignedURL(ctx context.Context, fileKey string) (string, *time.Time, error) {
	args := m.Called(ctx, fileKey)
	expiresAt, _ := args.Get(1).(*time.Time)
	return args.String(0), expiresAt, args.Error(2)
}

func (m *MockStorage) DeleteObject(ctx context.Context, fileKey string) error {
	args := m.Called(ctx, fileKey)
	return args.Error(0)
}
