package uploader

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/SaiNageswarS/go-cloud-upload/cloud"
	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const DefaultCategory = "transcriptions"

// Uploader places local files under <UploadRoot>/<category>/ in whichever
// provider the configuration selects.
type Uploader struct {
	cfg            *config.StorageConfig
	selectProvider func(*config.StorageConfig) (cloud.StorageProvider, error)
	metrics        *uploadMetrics
}

type Option func(*Uploader)

// WithRegisterer records upload metrics into reg instead of the default registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(u *Uploader) {
		u.metrics = newUploadMetrics(reg)
	}
}

// WithProviderSelector replaces cloud.SelectProvider.
func WithProviderSelector(fn func(*config.StorageConfig) (cloud.StorageProvider, error)) Option {
	return func(u *Uploader) {
		u.selectProvider = fn
	}
}

func New(cfg *config.StorageConfig, opts ...Option) *Uploader {
	u := &Uploader{
		cfg:            cfg,
		selectProvider: cloud.SelectProvider,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.metrics == nil {
		u.metrics = defaultMetrics()
	}
	return u
}

// Upload sends localPath to the selected provider and returns its URL.
// An empty category means DefaultCategory. originalFilename, when given, replaces the
// local base name after spaces are turned into underscores.
// Errors are logged and returned as they were produced.
func (u *Uploader) Upload(ctx context.Context, localPath, category, originalFilename string) (string, error) {
	provider, err := u.selectProvider(u.cfg)
	if err != nil {
		logger.Error("No storage provider configured", zap.Error(err))
		u.metrics.uploads.WithLabelValues(providerUnavailable, outcomeConfigError).Inc()
		return "", err
	}

	if category == "" {
		category = DefaultCategory
	}

	fileName := filepath.Base(localPath)
	if originalFilename != "" {
		fileName = SanitizeFilename(originalFilename)
	}

	folder := u.uploadRoot() + "/" + category
	providerName := string(provider.Name())

	start := time.Now()
	url, err := provider.UploadFile(ctx, localPath, folder, fileName)
	u.metrics.duration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Error("Upload failed",
			zap.String("provider", providerName), zap.String("file", localPath), zap.Error(err))
		u.metrics.uploads.WithLabelValues(providerName, outcomeFailure).Inc()
		return "", err
	}

	logger.Info("Upload completed",
		zap.String("provider", providerName), zap.String("file", fileName), zap.String("url", url))
	u.metrics.uploads.WithLabelValues(providerName, outcomeSuccess).Inc()
	return url, nil
}

func (u *Uploader) uploadRoot() string {
	if u.cfg != nil && u.cfg.UploadRoot != "" {
		return u.cfg.UploadRoot
	}
	return config.DefaultUploadRoot
}

// SanitizeFilename replaces every space with an underscore.
func SanitizeFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// UploadFile reads the storage configuration from the process environment and uploads
// filePath. It doesn't read .env files.
func UploadFile(ctx context.Context, filePath, category, originalFilename string) (string, error) {
	cfg, err := config.LoadStorageConfig("")
	if err != nil {
		logger.Error("Failed to load storage config", zap.Error(err))
		return "", err
	}

	return New(cfg).Upload(ctx, filePath, category, originalFilename)
}
