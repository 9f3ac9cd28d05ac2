package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"workspace-drive/internal/config"
	"workspace-drive/internal/core/domain"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// objectKey builds a collision resistant key keeping the original extension
func objectKey(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), ext)
}

// PutObject stores content under a fresh key and returns the key with a signed url
func (a *Adapter) PutObject(ctx context.Context, content io.Reader, size int64, contentType string, originalName string) (string, string, error) {
	fileKey := objectKey(originalName, time.Now())

	opts := minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": originalName,
		},
	}
	if _, err := a.client.PutObject(ctx, a.config.BucketName, fileKey, content, size, opts); err != nil {
		return "", "", fmt.Errorf("%w: failed to put object: %w", domain.ErrStorage, err)
	}

	a.logger.Info("object stored",
		slog.String("fileKey", fileKey),
		slog.String("bucket", a.config.BucketName),
		slog.Int64("size", size))

	signedURL, _, err := a.SignedURL(ctx, fileKey)
	if err != nil {
		return "", "", err
	}
	return fileKey, signedURL, nil
}

// SignedURL generates a presigned URL for downloading a file
func (a *Adapter) SignedURL(ctx context.Context, fileKey string) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, fileKey, a.config.SignedURLDuration, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to generate presigned download URL: %w", domain.ErrStorage, err)
	}

	expiresAt := time.Now().Add(a.config.SignedURLDuration)
	return presignedURL.String(), &expiresAt, nil
}

// DeleteObject deletes an object from storage. A missing key is not an error.
func (a *Adapter) DeleteObject(ctx context.Context, fileKey string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, fileKey, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("%w: failed to delete object: %w", domain.ErrStorage, err)
	}

	a.logger.Info("object deleted",
		slog.String("fileKey", fileKey),
		slog.String("bucket", a.config.BucketName))

	return nil
}
