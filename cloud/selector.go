package cloud

import (
	"errors"
	"fmt"

	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"go.uber.org/zap"
)

// SelectProvider returns the GCP provider when its configuration validates,
// otherwise the S3 compatible provider. When neither validates the returned
// error matches config.ErrInvalidConfig and describes both failures.
func SelectProvider(cfg *config.StorageConfig) (StorageProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}

	gcpErr := cfg.Validate(config.ProviderGCP)
	if gcpErr == nil {
		return NewGCPStorageProvider(cfg), nil
	}
	logger.Debug("GCP storage not configured", zap.Error(gcpErr))

	s3Err := cfg.Validate(config.ProviderS3)
	if s3Err == nil {
		return NewS3CompatibleProvider(cfg), nil
	}

	return nil, errors.Join(gcpErr, s3Err)
}
