package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType is a type that represents the type of a file lifecycle event
type EventType string

const (
	EventTypeFileCreated   EventType = "file.created"
	EventTypeFolderCreated EventType = "folder.created"
	EventTypeFileUpdated   EventType = "file.updated"
	EventTypeFileMoved     EventType = "file.moved"
	EventTypeFileTrashed   EventType = "file.trashed"
	EventTypeFileRestored  EventType = "file.restored"
	EventTypeFileDeleted   EventType = "file.deleted"
	EventTypeFilePurged    EventType = "file.purged"
)

// FileEvent is published after a successful write on an entity
type FileEvent struct {
	Type           EventType           `json:"type"`
	FileID         primitive.ObjectID  `json:"fileId"`
	Name           string              `json:"name"`
	Path           string              `json:"path"`
	IsFolder       bool                `json:"isFolder"`
	ParentFolderID *primitive.ObjectID `json:"parentFolderId"`
	OccurredAt     time.Time           `json:"occurredAt"`
}

// NewFileEvent builds an event of type t for entity
func NewFileEvent(t EventType, entity *FileEntity, now time.Time) FileEvent {
	return FileEvent{
		Type:           t,
		FileID:         entity.ID,
		Name:           entity.Name,
		Path:           entity.Path,
		IsFolder:       entity.IsFolder,
		ParentFolderID: entity.ParentFolderID,
		OccurredAt:     now,
	}
}
