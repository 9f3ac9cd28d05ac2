package file

import (
	"net/http"
)

func (h *HandlerV1) RestoreFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "restore file"

	fileID, raw, err := parseFileID(r)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	entity, err := h.fileService.Restore(r.Context(), fileID)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	h.respond(w, http.StatusOK, entity)
}
