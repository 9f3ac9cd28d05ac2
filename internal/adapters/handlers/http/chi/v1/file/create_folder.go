package file

import (
	"net/http"
	"workspace-drive/internal/core/domain"
)

// V1CreateFolderRequest is the request to create a folder
type V1CreateFolderRequest struct {
	Name           string         `json:"name"`
	ParentFolderID FolderRef      `json:"parentFolderId"`
	CustomMetadata map[string]any `json:"customMetadata"`
}

func (h *HandlerV1) CreateFolderV1(w http.ResponseWriter, r *http.Request) {
	const operation = "create folder"

	var req V1CreateFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	input := domain.NewFolder{
		Name:           req.Name,
		CustomMetadata: req.CustomMetadata,
	}
	if req.ParentFolderID.Ref != nil {
		input.ParentFolderID = req.ParentFolderID.Ref.ID
	}

	entity, err := h.fileService.CreateFolder(r.Context(), input)
	if err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	h.respond(w, http.StatusCreated, entity)
}
