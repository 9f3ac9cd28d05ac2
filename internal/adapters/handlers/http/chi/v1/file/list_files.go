package file

import (
	"net/http"
	"workspace-drive/internal/core/domain"
)

func parseFilter(r *http.Request) (domain.FileFilter, error) {
	query := r.URL.Query()
	filter := domain.FileFilter{
		MimeType:   normalizeValue(query.Get("mimeType")),
		Name:       normalizeValue(query.Get("name")),
		PathPrefix: normalizeValue(query.Get("path")),
	}

	if query.Has("parentFolderId") {
		parent, err := strictFolderRef(query.Get("parentFolderId"))
		if err != nil {
			return filter, err
		}
		filter.Parent = parent
	}

	var err error
	if filter.IsFolder, err = parseBool(query, "isFolder"); err != nil {
		return filter, err
	}
	if filter.IsTrashed, err = parseBool(query, "isTrashed"); err != nil {
		return filter, err
	}
	if filter.IsStarred, err = parseBool(query, "isStarred"); err != nil {
		return filter, err
	}
	if filter.IsActive, err = parseBool(query, "isActive"); err != nil {
		return filter, err
	}
	return filter, nil
}

// ListFilesV1 lists entities. An explicit parentFolderId of null or empty selects the root.
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {
	const operation = "list files"

	filter, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	entities, err := h.fileService.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, operation, "", err)
		return
	}

	h.respondList(w, entities)
}
