package file_test

import (
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"
	"workspace-drive/internal/adapters/handlers/http/chi"
	file3 "workspace-drive/internal/adapters/handlers/http/chi/v1/file"
	"workspace-drive/internal/config"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/service/file"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var testUploadConfig = config.FileUploadConfig{MaxSize: 1 << 20, MaxMemory: 1 << 16}

func newTestRouter(service *file.MockFileService) http2.Handler {
	handler := file3.NewFileHandlerV1(service, testUploadConfig, discardLogger)
	return chi.NewRouter(discardLogger, handler, "", file3.MaxRequestSize(testUploadConfig))
}

func chiRouterWithLimit(handler *file3.HandlerV1, maxBodySize int64) http2.Handler {
	return chi.NewRouter(discardLogger, handler, "", maxBodySize)
}

type entityResponse struct {
	Data      domain.FileEntity `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

type listResponse struct {
	Data     []domain.FileEntity  `json:"data"`
	Metadata file3.V1ListMetadata `json:"metadata"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func sampleFile(name string) *domain.FileEntity {
	return &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   name,
		MimeType:       "text/plain",
		Size:           5,
		StorageKey:     "1700000000000-key.txt",
		StorageURL:     "https://signed/" + name,
		Path:           name,
		CustomMetadata: map[string]string{},
		IsActive:       true,
	}
}

func sampleFolder(name string) *domain.FileEntity {
	return &domain.FileEntity{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OriginalName:   name,
		MimeType:       domain.FolderMimeType,
		IsFolder:       true,
		Path:           name,
		CustomMetadata: map[string]string{},
		IsActive:       true,
	}
}
