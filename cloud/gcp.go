package cloud

import (
	"context"

	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/gcp"
	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GCPStorageProvider uploads to a Google Cloud Storage bucket as <folder>/<filename>.
type GCPStorageProvider struct {
	Bucket          string
	CredentialsFile string
}

func NewGCPStorageProvider(cfg *config.StorageConfig) *GCPStorageProvider {
	return &GCPStorageProvider{
		Bucket:          cfg.GcpBucketName,
		CredentialsFile: cfg.GcpCredentialsFile,
	}
}

func (p *GCPStorageProvider) Name() config.Provider {
	return config.ProviderGCP
}

func (p *GCPStorageProvider) UploadFile(ctx context.Context, localPath, destinationFolder, originalFilename string) (string, error) {
	if err := ensureFile(localPath); err != nil {
		return "", err
	}

	fileName := effectiveFilename(localPath, originalFilename)
	cloudPath := objectPath(destinationFolder, fileName)

	logger.Info("Uploading file to GCS",
		zap.String("file", fileName), zap.String("path", cloudPath), zap.String("bucket", p.Bucket))

	var opts []option.ClientOption
	if p.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(p.CredentialsFile))
	}

	url, err := uploadToGCS(ctx, localPath, p.Bucket, cloudPath, opts...)
	if err != nil {
		logger.Error("Upload failed", zap.String("path", cloudPath), zap.Error(err))
		return "", err
	}

	logger.Info("File uploaded successfully", zap.String("url", url))
	return url, nil
}

// factory variable – defaults to the real upload
var uploadToGCS = gcp.UploadFile
