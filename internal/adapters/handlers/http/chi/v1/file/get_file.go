package file

import (
	"net/http"
)

// GetFileV1 is the function that handles GetFile
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "get file"

	fileID, raw, err := parseFileID(r)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	entity, err := h.fileService.GetByID(r.Context(), fileID)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	h.respond(w, http.StatusOK, entity)
}
