package file

import (
	"net/http"
)

// DownloadFileV1 returns a signed url rather than the content itself
func (h *HandlerV1) DownloadFileV1(w http.ResponseWriter, r *http.Request) {
	const operation = "download file"

	fileID, raw, err := parseFileID(r)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	link, err := h.fileService.Download(r.Context(), fileID)
	if err != nil {
		h.fail(w, r, operation, raw, err)
		return
	}

	h.respond(w, http.StatusOK, link)
}
