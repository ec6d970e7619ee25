package uploader

import (
	"errors"
	"sync"

	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	outcomeSuccess      = "success"
	outcomeFailure      = "failure"
	outcomeConfigError  = "config_error"
	providerUnavailable = "none"
)

type uploadMetrics struct {
	uploads  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newUploadMetrics registers the upload collectors with reg. Collectors already
// registered there are reused; collectors that conflict with an existing metric
// are kept unregistered.
func newUploadMetrics(reg prometheus.Registerer) *uploadMetrics {
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cloud_upload",
		Name:      "uploads_total",
		Help:      "Upload attempts by provider and outcome.",
	}, []string{"provider", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cloud_upload",
		Name:      "upload_duration_seconds",
		Help:      "Time spent in provider uploads.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"provider"})

	return &uploadMetrics{
		uploads:  registerOrReuse(reg, uploads),
		duration: registerOrReuse(reg, duration),
	}
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}

	logger.Warn("Upload metrics not registered", zap.Error(err))
	return c
}

var (
	defaultMetricsOnce sync.Once
	sharedMetrics      *uploadMetrics
)

// Shared by every Uploader built without WithRegisterer.
func defaultMetrics() *uploadMetrics {
	defaultMetricsOnce.Do(func() {
		sharedMetrics = newUploadMetrics(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}
