package domain

import (
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FolderMimeType is the mime type sentinel stored on folders
const FolderMimeType = "folder"

// PathSeparator joins names in a materialized path
const PathSeparator = "/"

// FileEntity represents a file or a folder of the virtual filesystem
type FileEntity struct {
	ID             primitive.ObjectID  `bson:"_id" json:"id"`
	Name           string              `bson:"name" json:"name"`
	OriginalName   string              `bson:"originalName" json:"originalName"`
	MimeType       string              `bson:"mimeType" json:"mimeType"`
	Size           int64               `bson:"size" json:"size"`
	StorageKey     string              `bson:"storageKey,omitempty" json:"storageKey,omitempty"`
	StorageURL     string              `bson:"storageUrl,omitempty" json:"storageUrl,omitempty"`
	ParentFolderID *primitive.ObjectID `bson:"parentFolderId" json:"parentFolderId"`
	IsFolder       bool                `bson:"isFolder" json:"isFolder"`
	IsTrashed      bool                `bson:"isTrashed" json:"isTrashed"`
	TrashedAt      *time.Time          `bson:"trashedAt" json:"trashedAt"`
	CustomMetadata map[string]string   `bson:"customMetadata" json:"customMetadata"`
	Path           string              `bson:"path" json:"path"`
	IsStarred      bool                `bson:"isStarred" json:"isStarred"`
	IsActive       bool                `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// HasBlob reports whether the entity is backed by an object store blob
func (f *FileEntity) HasBlob() bool {
	return !f.IsFolder && f.StorageKey != ""
}

// ParentRef designates a parent folder. A nil ID means the root.
type ParentRef struct {
	ID *primitive.ObjectID
}

// Root returns a ParentRef pointing at the root
func Root() *ParentRef {
	return &ParentRef{}
}

// InFolder returns a ParentRef pointing at folder id
func InFolder(id primitive.ObjectID) *ParentRef {
	return &ParentRef{ID: &id}
}

// IsRoot reports whether the ref points at the root
func (p *ParentRef) IsRoot() bool {
	return p == nil || p.ID == nil
}

// NewFile holds everything needed to create a file
type NewFile struct {
	Content        io.Reader
	OriginalName   string
	MimeType       string
	Size           int64
	DisplayName    string
	ParentFolderID *primitive.ObjectID
	CustomMetadata map[string]any
}

// NewFolder holds everything needed to create a folder
type NewFolder struct {
	Name           string
	ParentFolderID *primitive.ObjectID
	CustomMetadata map[string]any
}

// FileFilter selects entities. Nil fields are not filtered on, except IsActive which
// defaults to true.
type FileFilter struct {
	Parent     *ParentRef
	IsFolder   *bool
	IsTrashed  *bool
	IsStarred  *bool
	IsActive   *bool
	MimeType   string
	Name       string
	PathPrefix string
}

// FilePatch holds the mutable fields of an entity. Nil fields are left untouched.
type FilePatch struct {
	Name           *string
	Parent         *ParentRef
	IsStarred      *bool
	IsTrashed      *bool
	TrashedAt      *time.Time
	CustomMetadata map[string]any
}

// FileUpdate is the normalized set of changes written by the repository
type FileUpdate struct {
	Name           *string
	Path           *string
	Parent         *ParentRef
	IsStarred      *bool
	IsTrashed      *bool
	TrashedAt      *time.Time
	ClearTrashedAt bool
	CustomMetadata map[string]string
}

// RemoveStatus is the outcome of a remove
type RemoveStatus string

const (
	RemoveStatusTrashed RemoveStatus = "trashed"
	RemoveStatusDeleted RemoveStatus = "deleted"
)

// RemoveResult represents the outcome of a remove call
type RemoveResult struct {
	ID      primitive.ObjectID `json:"id"`
	Status  RemoveStatus       `json:"status"`
	Message string             `json:"message"`
}

// DownloadLink is a time limited url to fetch a file
type DownloadLink struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
