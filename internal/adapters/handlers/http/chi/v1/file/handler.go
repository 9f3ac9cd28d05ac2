package file

import (
	"log/slog"
	"workspace-drive/internal/config"
	"workspace-drive/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 files routes
type HandlerV1 struct {
	fileService port.FileService
	upload      config.FileUploadConfig
	logger      *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(service port.FileService, upload config.FileUploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService: service,
		upload:      upload,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadFileV1)
	router.Post("/folders", h.CreateFolderV1)
	router.Get("/", h.ListFilesV1)
	router.Get("/{fileID}", h.GetFileV1)
	router.Patch("/{fileID}", h.UpdateFileV1)
	router.Delete("/{fileID}", h.RemoveFileV1)
	router.Post("/{fileID}/restore", h.RestoreFileV1)
	router.Post("/{fileID}/star", h.ToggleStarV1)
	router.Post("/{fileID}/move", h.MoveFileV1)
	router.Get("/{fileID}/download", h.DownloadFileV1)

	return router
}
