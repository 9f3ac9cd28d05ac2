package file

import (
	"fmt"
	"net/http"
	"workspace-drive/internal/core/domain"
)

// V1MoveFileRequest is the request to move an entity. targetFolderId is required, null is the root.
type V1MoveFileRequest struct {
	TargetFolderID FolderRef `json:"targetFolderId"`
}

func (h *HandlerV1) MoveFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "move file"

	fileID, raw, err := parseFileID(r)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	var req V1MoveFileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	if !req.TargetFolderID.Set {
		h.fail(w, r, operation, raw, fmt.Errorf("%w: targetFolderId is required", domain.ErrValidation))
		return
	}
	target := domain.ParentRef{}
	if req.TargetFolderID.Ref != nil {
		target = *req.TargetFolderID.Ref
	}

	entity, err := h.fileService.Move(r.Context(), fileID, target)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	h.respond(w, http.StatusOK, entity)
}
