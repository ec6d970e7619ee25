package cloud

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"go.uber.org/zap"
)

// StorageProvider uploads local files to an object store.
type StorageProvider interface {
	Name() config.Provider

	// UploadFile uploads localPath under destinationFolder and returns the object URL.
	// originalFilename overrides the base name of localPath when non-empty.
	UploadFile(ctx context.Context, localPath, destinationFolder, originalFilename string) (string, error)
}

var ErrFileNotFound = errors.New("file not found")

func ensureFile(localPath string) error {
	info, err := os.Stat(localPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrFileNotFound, err)
			logger.Error("File does not exist", zap.String("file", localPath))
			return err
		}
		logger.Error("Cannot read file", zap.String("file", localPath), zap.Error(err))
		return err
	}

	if info.IsDir() {
		err := fmt.Errorf("%s is a directory", localPath)
		logger.Error("Cannot upload directory", zap.String("file", localPath))
		return err
	}
	return nil
}

func effectiveFilename(localPath, originalFilename string) string {
	if originalFilename != "" {
		return originalFilename
	}
	return filepath.Base(localPath)
}

// objectPath joins the non-empty segments with "/".
func objectPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}
