package gcp

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// UploadFile copies the file at localPath into bucketName/objectPath and returns
// the public object URL.
func UploadFile(ctx context.Context, localPath, bucketName, objectPath string, opts ...option.ClientOption) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	store, err := newObjectStore(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("storage.NewClient: %w", err)
	}
	defer store.Close()

	wc := store.NewWriter(ctx, bucketName, objectPath)

	// Copy the contents of the file to the object in Cloud Storage.
	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("io.Copy: %w", err)
	}

	// Close the Writer, finalizing the upload.
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("Writer.Close: %w", err)
	}

	return ObjectURL(bucketName, objectPath), nil
}

// ObjectURL is the public URL of an object, with the object path escaped.
func ObjectURL(bucketName, objectPath string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "storage.googleapis.com",
		Path:   "/" + bucketName + "/" + objectPath,
	}
	return u.String()
}

type objectStore interface {
	NewWriter(ctx context.Context, bucketName, objectPath string) io.WriteCloser
	Close() error
}

type gcsStore struct {
	client *storage.Client
}

func (s *gcsStore) NewWriter(ctx context.Context, bucketName, objectPath string) io.WriteCloser {
	w := s.client.Bucket(bucketName).Object(objectPath).NewWriter(ctx)
	w.ContentType = mime.TypeByExtension(filepath.Ext(objectPath))
	return w
}

func (s *gcsStore) Close() error {
	return s.client.Close()
}

// factory variable – defaults to the real SDK client
var newObjectStore = func(ctx context.Context, opts ...option.ClientOption) (objectStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &gcsStore{client: client}, nil
}
