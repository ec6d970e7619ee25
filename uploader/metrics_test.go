package uploader

import (
	"context"
	"testing"

	"github.com/SaiNageswarS/go-cloud-upload/cloud"
	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUploadMetrics_ReusesCollectorsAlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	hostCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cloud_upload",
		Name:      "uploads_total",
		Help:      "Upload attempts by provider and outcome.",
	}, []string{"provider", "outcome"})
	require.NoError(t, reg.Register(hostCounter))

	p := &recordingProvider{name: config.ProviderS3, url: "u"}
	var u *Uploader
	assert.NotPanics(t, func() {
		u, _ = newTestUploaderWithRegistry(reg, p)
	})

	_, err := u.Upload(context.Background(), "/tmp/a.wav", "c", "")
	require.NoError(t, err)

	assert.Same(t, hostCounter, u.metrics.uploads)
	assert.Equal(t, 1.0, promtest.ToFloat64(hostCounter.WithLabelValues("s3", outcomeSuccess)))
}

func TestNewUploadMetrics_ConflictingMetricDoesNotPanic(t *testing.T) {
	logs := testutil.ObserveLogs(t)
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cloud_upload",
		Name:      "uploads_total",
		Help:      "Something else entirely.",
	})))

	var m *uploadMetrics
	assert.NotPanics(t, func() { m = newUploadMetrics(reg) })
	require.NotNil(t, m.uploads)

	m.uploads.WithLabelValues("gcp", outcomeSuccess).Inc()
	assert.Equal(t, 1, logs.FilterMessage("Upload metrics not registered").Len())
}

func TestNewUploadMetrics_TwiceOnSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newUploadMetrics(reg)
	second := newUploadMetrics(reg)

	assert.Same(t, first.uploads, second.uploads)
	assert.Same(t, first.duration, second.duration)
}

func newTestUploaderWithRegistry(reg *prometheus.Registry, p *recordingProvider) (*Uploader, *prometheus.Registry) {
	u := New(&config.StorageConfig{},
		WithRegisterer(reg),
		WithProviderSelector(func(*config.StorageConfig) (cloud.StorageProvider, error) { return p, nil }),
	)
	return u, reg
}
