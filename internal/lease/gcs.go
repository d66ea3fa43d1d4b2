package lease

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"cloud.google.com/go/storage"
)

// Uploader ships a rendered document to durable storage under objectName.
type Uploader interface {
	UploadFile(ctx context.Context, localPath, objectName string) error
}

// GCS uploads files into a bucket under a fixed path prefix.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
	logger *slog.Logger
}

// NewGCS connects to Cloud Storage with ambient credentials. prefix is the
// destination path inside the bucket; logger may be nil.
func NewGCS(ctx context.Context, bucketName, prefix string, logger *slog.Logger) (*GCS, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("lease: bucket name is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GCS{client: client, bucket: bucketName, prefix: prefix, logger: logger}, nil
}

// UploadFile copies the file at localPath to gs://<bucket>/<prefix>/<objectName>.
func (u *GCS) UploadFile(ctx context.Context, localPath, objectName string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer f.Close()

	obj := u.client.Bucket(u.bucket).Object(path.Join(u.prefix, objectName))
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return fmt.Errorf("uploading %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing upload of %s: %w", objectName, err)
	}

	u.logger.Info("uploaded agreement",
		"destination", fmt.Sprintf("gs://%s/%s", u.bucket, obj.ObjectName()))
	return nil
}

// Close releases the storage connection.
func (u *GCS) Close() error {
	return u.client.Close()
}
