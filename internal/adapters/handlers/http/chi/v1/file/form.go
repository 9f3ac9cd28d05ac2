package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"workspace-drive/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// normalizeValue maps the placeholders browsers send for missing values to ""
func normalizeValue(v string) string {
	v = strings.TrimSpace(v)
	switch v {
	case "undefined", "null":
		return ""
	}
	return v
}

// parseFileID reads the {fileID} path parameter
func parseFileID(r *http.Request) (primitive.ObjectID, string, error) {
	raw := chi.URLParam(r, "fileID")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, raw, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, raw, nil
}

// lenientFolderID returns nil for absent or malformed ids
func lenientFolderID(raw string) *primitive.ObjectID {
	raw = normalizeValue(raw)
	if raw == "" {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil
	}
	return &id
}

// strictFolderRef returns the root for absent ids and fails on malformed ones
func strictFolderRef(raw string) (*domain.ParentRef, error) {
	raw = normalizeValue(raw)
	if raw == "" {
		return domain.Root(), nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return domain.InFolder(id), nil
}

// FolderRef is a folder id in a JSON body. Set reports whether the key was present,
// a null or empty value designates the root.
type FolderRef struct {
	Set bool
	Ref *domain.ParentRef
}

func (f *FolderRef) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Ref = domain.Root()
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: folder id must be a string or null", domain.ErrInvalidID)
	}
	ref, err := strictFolderRef(raw)
	if err != nil {
		return err
	}
	f.Ref = ref
	return nil
}

// parseMetadata decodes the customMetadata form field
func parseMetadata(raw string) (map[string]any, error) {
	raw = normalizeValue(raw)
	if raw == "" {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidMetadata, err)
	}
	return metadata, nil
}

func parseBool(query map[string][]string, key string) (*bool, error) {
	values, ok := query[key]
	if !ok || normalizeValue(values[0]) == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(values[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", domain.ErrValidation, key)
	}
	return &v, nil
}

// decodeJSON decodes a request body into dst
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", domain.ErrValidation)
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || errors.Is(err, domain.ErrValidation) {
			return err
		}
		return fmt.Errorf("%w: invalid JSON body: %w", domain.ErrValidation, err)
	}
	return nil
}
