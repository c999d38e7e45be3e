package imagestore

import (
	"context"
	"mime/multipart"
)

// Service is the image-storage collaborator. Uploads return an opaque
// reference; deletion takes the references back.
//
//go:generate mockgen -source=imagestore.go -destination=mock/imagestore_mock.go -package=mock
type Service interface {
	HandleSingleImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	DeleteImages(ctx context.Context, refs []string) error
}

// Noop satisfies Service for deployments without an image backend.
type Noop struct{}

func (Noop) HandleSingleImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	return file.Filename, nil
}

func (Noop) DeleteImages(ctx context.Context, refs []string) error {
	return nil
}
