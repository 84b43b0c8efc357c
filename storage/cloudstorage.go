package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/hiringplatform/backend/config"
)

// ResumeStore archives uploaded resume files
type ResumeStore interface {
	UploadResume(ctx context.Context, candidateID uuid.UUID, content []byte, filename string) (string, error)
	DownloadResume(ctx context.Context, resumeURL string) ([]byte, error)
	DeleteResume(ctx context.Context, resumeURL string) error
}

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	now        func() time.Time
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	if cfg.ResumeBucketName == "" {
		return nil, fmt.Errorf("RESUME_BUCKET_NAME is not set")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.ResumeBucketName,
		now:        time.Now,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadResume stores a resume under resumes/<candidate-id>/<unix-ts><ext>
// and returns its public URL
func (c *CloudStorageClient) UploadResume(ctx context.Context, candidateID uuid.UUID, content []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	objectName := resumeObjectName(candidateID, c.now(), ext)

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType(ext)

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return publicURL(c.bucketName, objectName), nil
}

// DownloadResume reads back an archived resume
func (c *CloudStorageClient) DownloadResume(ctx context.Context, resumeURL string) ([]byte, error) {
	objectName, err := objectFromURL(c.bucketName, resumeURL)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	return data, nil
}

// DeleteResume removes an archived resume
func (c *CloudStorageClient) DeleteResume(ctx context.Context, resumeURL string) error {
	objectName, err := objectFromURL(c.bucketName, resumeURL)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

func resumeObjectName(candidateID uuid.UUID, at time.Time, ext string) string {
	return fmt.Sprintf("resumes/%s/%d%s", candidateID, at.Unix(), ext)
}

func publicURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName)
}

func objectFromURL(bucket, url string) (string, error) {
	prefix := publicURL(bucket, "")
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", fmt.Errorf("invalid resume URL format")
	}
	return strings.TrimPrefix(url, prefix), nil
}

func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
