package file

import (
	"net/http"
)

// RemoveFileV1 trashes an active entity or permanently deletes a trashed one
func (h *HandlerV1) RemoveFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "remove file"

	fileID, raw, err := parseFileID(r)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	result, err := h.fileService.Remove(r.Context(), fileID)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	h.respond(w, http.StatusOK, result)
}
