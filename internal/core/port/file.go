package port

import (
	"context"
	"io"
	"time"
	"workspace-drive/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileRepository is an interface to define file entity store interactions
type FileRepository interface {
	Create(ctx context.Context, entity *domain.FileEntity) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error)
	Find(ctx context.Context, filter domain.FileFilter) ([]domain.FileEntity, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.FileUpdate) (*domain.FileEntity, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindTrashedBefore(ctx context.Context, before time.Time) ([]domain.FileEntity, error)
}

// FileStorage is an interface to define object store interactions
type FileStorage interface {
	PutObject(ctx context.Context, content io.Reader, size int64, contentType string, originalName string) (string, string, error)
	SignedURL(ctx context.Context, fileKey string) (string, *time.Time, error)
	DeleteObject(ctx context.Context, fileKey string) error
}

// FileService is an interface to define the virtual filesystem service
type FileService interface {
	CreateFile(ctx context.Context, input domain.NewFile) (*domain.FileEntity, error)
	CreateFolder(ctx context.Context, input domain.NewFolder) (*domain.FileEntity, error)
	List(ctx context.Context, filter domain.FileFilter) ([]domain.FileEntity, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.FilePatch) (*domain.FileEntity, error)
	ToggleStar(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error)
	Move(ctx context.Context, id primitive.ObjectID, target domain.ParentRef) (*domain.FileEntity, error)
	Remove(ctx context.Context, id primitive.ObjectID) (*domain.RemoveResult, error)
	Restore(ctx context.Context, id primitive.ObjectID) (*domain.FileEntity, error)
	Download(ctx context.Context, id primitive.ObjectID) (*domain.DownloadLink, error)
}
