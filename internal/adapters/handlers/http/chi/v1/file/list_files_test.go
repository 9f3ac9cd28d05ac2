package file_test

import (
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/service/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListFilesV1(t *testing.T) {

	t.Run("success - filters are forwarded", func(t *testing.T) {
		// Arrange
		parentID := primitive.NewObjectID()
		starred := true
		expected := domain.FileFilter{
			Parent:     domain.InFolder(parentID),
			IsStarred:  &starred,
			Name:       "rep",
			MimeType:   "application/pdf",
			PathPrefix: "Docs/",
		}
		entities := []domain.FileEntity{*sampleFile("report.pdf"), *sampleFile("reply.pdf")}

		mockService := file.NewMockFileService()
		mockService.On("List", mock.Anything, expected).Return(entities, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet,
			"/api/v1/files?parentFolderId="+parentID.Hex()+"&isStarred=true&name=rep&mimeType=application/pdf&path=Docs/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		resp := decode[listResponse](t, w)
		assert.Equal(t, 2, resp.Metadata.Count)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, "https://signed/report.pdf", resp.Data[0].StorageURL)
		mockService.AssertExpectations(t)
	})

	t.Run("success - null parent selects root", func(t *testing.T) {
		// Arrange
		mockService := file.NewMockFileService()
		mockService.On("List", mock.Anything, domain.FileFilter{Parent: domain.Root()}).Return([]domain.FileEntity{}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/files?parentFolderId=null", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		resp := decode[listResponse](t, w)
		assert.Equal(t, 0, resp.Metadata.Count)
		assert.NotNil(t, resp.Data)
		mockService.AssertExpectations(t)
	})

	t.Run("success - no parameter lists everything", func(t *testing.T) {
		// Arrange
		mockService := file.NewMockFileService()
		mockService.On("List", mock.Anything, domain.FileFilter{}).Return([]domain.FileEntity{}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/files", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - invalid query values", func(t *testing.T) {
		for _, query := range []string{"parentFolderId=abc", "isTrashed=maybe", "isActive=2"} {
			// Arrange
			mockService := file.NewMockFileService()
			h := newTestRouter(mockService)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http2.MethodGet, "/api/v1/files?"+query, nil)

			// Act
			h.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http2.StatusBadRequest, w.Code, query)
			mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		}
	})
}
