package archive

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

//go:generate moq -out object_store_mocks.go . ObjectStore

// ObjectStore is the destination of archive objects
type ObjectStore interface {
	Put(ctx context.Context, name string, contentType string, data []byte) error
}

// GCSStore writes objects into a Google Cloud Storage bucket
type GCSStore struct {
	client *storage.Client
	bucket string
}

var _ ObjectStore = &GCSStore{}

// NewGCSStore uses Application Default Credentials unless options say otherwise
func NewGCSStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{
		client: client,
		bucket: bucket,
	}, nil
}

// Put ...
func (s *GCSStore) Put(ctx context.Context, name string, contentType string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object %s: %w", name, err)
	}
	return nil
}

// Close ...
func (s *GCSStore) Close() error {
	return s.client.Close()
}
