package file

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"workspace-drive/internal/config"
	"workspace-drive/internal/core/domain"

	"github.com/gabriel-vasile/mimetype"
)

const genericMimeType = "application/octet-stream"

// MultipartOverhead leaves room for form fields and part headers around the file part
const MultipartOverhead int64 = 1 << 20

// MaxRequestSize is the largest upload request body accepted for cfg
func MaxRequestSize(cfg config.FileUploadConfig) int64 {
	return cfg.MaxSize + MultipartOverhead
}

// detectContentType trusts the declared type unless it is missing or generic,
// in which case the content is sniffed and rewound
func detectContentType(file multipart.File, declared string) (string, error) {
	if declared != "" && declared != genericMimeType {
		return declared, nil
	}
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}
	return detected.String(), nil
}

// UploadFileV1 handles multipart uploads with a file part and optional name,
// parentFolderId and customMetadata fields
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "upload file"

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize(h.upload))
	if err := r.ParseMultipartForm(h.upload.MaxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if !errors.As(err, &maxBytesErr) {
			err = fmt.Errorf("%w: invalid multipart body: %w", domain.ErrValidation, err)
		}
		h.fail(w, r, operation, "", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile("file")
	if err != nil {
		h.fail(w, r, operation, "", domain.ErrMissingFile)
		return
	}
	defer part.Close()

	if header.Size > h.upload.MaxSize {
		h.fail(w, r, operation, "", &http.MaxBytesError{Limit: h.upload.MaxSize})
		return
	}

	metadata, err := parseMetadata(r.FormValue("customMetadata"))
	if err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	contentType, err := detectContentType(part, header.Header.Get("Content-Type"))
	if err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	entity, err := h.fileService.CreateFile(r.Context(), domain.NewFile{
		Content:        part,
		OriginalName:   header.Filename,
		MimeType:       contentType,
		Size:           header.Size,
		DisplayName:    normalizeValue(r.FormValue("name")),
		ParentFolderID: lenientFolderID(r.FormValue("parentFolderId")),
		CustomMetadata: metadata,
	})
	if err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	h.respond(w, http.StatusCreated, entity)
}
