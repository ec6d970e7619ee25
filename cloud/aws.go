package cloud

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-cloud-upload/aws"
	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"go.uber.org/zap"
)

// S3CompatibleProvider uploads to any S3 compatible endpoint.
// Object keys are laid out as <folder>/YYYY/MM/DD/<filename> unless FlatKeys is set.
type S3CompatibleProvider struct {
	Bucket   string
	Conn     aws.Connection
	FlatKeys bool

	now func() time.Time
}

func NewS3CompatibleProvider(cfg *config.StorageConfig) *S3CompatibleProvider {
	return &S3CompatibleProvider{
		Bucket: cfg.S3BucketName,
		Conn: aws.Connection{
			EndpointUrl: cfg.S3EndpointUrl,
			AccessKey:   cfg.S3AccessKey,
			SecretKey:   cfg.S3SecretKey,
			Region:      cfg.S3Region,
		},
		FlatKeys: cfg.S3FlatKeys,
		now:      time.Now,
	}
}

func (p *S3CompatibleProvider) Name() config.Provider {
	return config.ProviderS3
}

func (p *S3CompatibleProvider) UploadFile(ctx context.Context, localPath, destinationFolder, originalFilename string) (string, error) {
	if err := ensureFile(localPath); err != nil {
		return "", err
	}

	fileName := effectiveFilename(localPath, originalFilename)
	key := p.objectKey(destinationFolder, fileName)

	logger.Info("Uploading file to S3",
		zap.String("file", fileName), zap.String("key", key), zap.String("bucket", p.Bucket))

	url, err := uploadToS3(ctx, localPath, p.Bucket, key, p.Conn)
	if err != nil {
		logger.Error("Upload failed", zap.String("key", key), zap.Error(err))
		return "", err
	}

	logger.Info("File uploaded successfully", zap.String("url", url))
	return url, nil
}

func (p *S3CompatibleProvider) objectKey(destinationFolder, fileName string) string {
	if p.FlatKeys {
		return objectPath(destinationFolder, fileName)
	}

	now := time.Now
	if p.now != nil {
		now = p.now
	}
	return objectPath(destinationFolder, now().Format("2006/01/02"), fileName)
}

// factory variable – defaults to the real upload
var uploadToS3 = aws.UploadFile
