package file

import (
	"net/http"
	"workspace-drive/internal/core/domain"
)

// V1UpdateFileRequest holds the patchable fields. Absent keys are left untouched.
type V1UpdateFileRequest struct {
	Name           *string        `json:"name"`
	ParentFolderID FolderRef      `json:"parentFolderId"`
	IsStarred      *bool          `json:"isStarred"`
	IsTrashed      *bool          `json:"isTrashed"`
	CustomMetadata map[string]any `json:"customMetadata"`
}

func (h *HandlerV1) UpdateFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "update file"

	fileID, raw, err := parseFileID(r)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	var req V1UpdateFileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	patch := domain.FilePatch{
		Name:           req.Name,
		IsStarred:      req.IsStarred,
		IsTrashed:      req.IsTrashed,
		CustomMetadata: req.CustomMetadata,
	}
	if req.ParentFolderID.Set {
		patch.Parent = req.ParentFolderID.Ref
	}

	entity, err := h.fileService.Update(r.Context(), fileID, patch)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	h.respond(w, http.StatusOK, entity)
}
