package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the kind of every error raised when an entity does not exist
var ErrNotFound = errors.New("not found")

// ErrValidation is the kind of every error raised on bad input or illegal state transition
var ErrValidation = errors.New("validation failed")

// ErrStorage is the kind of every object store failure
var ErrStorage = errors.New("storage error")

// ErrPersistence is the kind of every database failure
var ErrPersistence = errors.New("persistence error")

// ErrFileNotFound is an error thrown when a file or folder is not found
var ErrFileNotFound = fmt.Errorf("file %w", ErrNotFound)

// ErrInvalidParent is an error thrown when parent folder is missing, trashed or not a folder
var ErrInvalidParent = fmt.Errorf("%w: invalid parent folder", ErrValidation)

// ErrInvalidMove is an error thrown when a move would create a cycle or targets a file
var ErrInvalidMove = fmt.Errorf("%w: invalid move target", ErrValidation)

// ErrNotInTrash is an error thrown when restoring an entity that is not trashed
var ErrNotInTrash = fmt.Errorf("%w: not in trash", ErrValidation)

// ErrCannotDownloadFolder is an error thrown when downloading a folder
var ErrCannotDownloadFolder = fmt.Errorf("%w: cannot download a folder", ErrValidation)

// ErrEmptyName is an error thrown when name is empty
var ErrEmptyName = fmt.Errorf("%w: name is required", ErrValidation)

// ErrInvalidName is an error thrown when name contains a path separator
var ErrInvalidName = fmt.Errorf("%w: name must not contain '/'", ErrValidation)

// ErrInvalidID is an error thrown when an id is not a 24 characters hex string
var ErrInvalidID = fmt.Errorf("%w: malformed id", ErrValidation)

// ErrInvalidMetadata is an error thrown when custom metadata cannot be decoded
var ErrInvalidMetadata = fmt.Errorf("%w: invalid custom metadata", ErrValidation)

// ErrMissingFile is an error thrown when an upload carries no file part
var ErrMissingFile = fmt.Errorf("%w: file is required", ErrValidation)
