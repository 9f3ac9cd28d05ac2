package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"workspace-drive/internal/core/domain"
	"workspace-drive/internal/core/port"
)

// defaultMimeType is stored when an upload does not carry a content type
const defaultMimeType = "application/octet-stream"

type fileService struct {
	repo        port.FileRepository
	fileStorage port.FileStorage
	paths       port.PathResolver
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(repo port.FileRepository, storage port.FileStorage, paths port.PathResolver, publisher port.EventPublisher, logger *slog.Logger) port.FileService {
	return &fileService{
		repo:        repo,
		fileStorage: storage,
		paths:       paths,
		publisher:   publisher,
		logger:      logger,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrEmptyName
	}
	if strings.Contains(name, domain.PathSeparator) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}
	return name, nil
}

// normalizeMetadata keeps string values as is and JSON encodes everything else
func normalizeMetadata(raw map[string]any) (map[string]string, error) {
	metadata := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			metadata[key] = s
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", domain.ErrInvalidMetadata, key, err)
		}
		metadata[key] = string(encoded)
	}
	return metadata, nil
}

// sign attaches a fresh signed url to files; folders never carry one
func (f *fileService) sign(ctx context.Context, entity *domain.FileEntity) error {
	if !entity.HasBlob() {
		entity.StorageURL = ""
		return nil
	}
	url, _, err := f.fileStorage.SignedURL(ctx, entity.StorageKey)
	if err != nil {
		return err
	}
	entity.StorageURL = url
	return nil
}

func (f *fileService) publish(ctx context.Context, eventType domain.EventType, entity *domain.FileEntity) {
	event := domain.NewFileEvent(eventType, entity, time.Now())
	if err := f.publisher.Publish(ctx, event); err != nil {
		f.logger.Warn("failed to publish file event",
			"type", eventType,
			"file_id", entity.ID.Hex(),
			"error", err)
	}
}

// sortEntities orders by case-insensitive name, then name, then id
func sortEntities(entities []domain.FileEntity) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID.Hex() < b.ID.Hex()
	})
}
