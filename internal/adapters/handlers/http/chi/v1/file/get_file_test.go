package file_test

import (
	"errors"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	file3 "workspace-drive/internal/adapters/handlers/http/chi/v1/file"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/service/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetFileV1(t *testing.T) {

	t.Run("success - get file", func(t *testing.T) {
		// Arrange
		entity := sampleFile("a.txt")

		mockService := file.NewMockFileService()
		mockService.On("GetByID", mock.Anything, entity.ID).Return(entity, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/files/"+entity.ID.Hex(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		resp := decode[entityResponse](t, w)
		assert.Equal(t, entity.ID, resp.Data.ID)
		assert.Equal(t, "https://signed/a.txt", resp.Data.StorageURL)
		mockService.AssertExpectations(t)
	})

	t.Run("error - malformed id", func(t *testing.T) {
		// Arrange
		mockService := file.NewMockFileService()
		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/files/not-an-id", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("error - not found", func(t *testing.T) {
		// Arrange
		id := primitive.NewObjectID()
		mockService := file.NewMockFileService()
		mockService.On("GetByID", mock.Anything, id).Return(nil, domain.ErrFileNotFound)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/files/"+id.Hex(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		resp := decode[file3.V1ErrorResponse](t, w)
		assert.Equal(t, http2.StatusNotFound, resp.Error.Status)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("error - unexpected failure", func(t *testing.T) {
		// Arrange
		id := primitive.NewObjectID()
		mockService := file.NewMockFileService()
		mockService.On("GetByID", mock.Anything, id).Return(nil, errors.New("boom"))

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/files/"+id.Hex(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusInternalServerError, w.Code)
		resp := decode[file3.V1ErrorResponse](t, w)
		assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
		assert.Equal(t, "internal server error", resp.Error.Message)
		assert.False(t, resp.Timestamp.IsZero())
	})
}
