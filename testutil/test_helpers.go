package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// StorageEnvVars are the variables that influence provider selection.
var StorageEnvVars = []string{
	"ENV",
	"GCP_BUCKET_NAME", "GCP_CREDENTIALS_FILE", "GCP_PROJECT_ID",
	"S3_BUCKET_NAME", "S3_ENDPOINT_URL", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	"S3_FLAT_KEYS", "UPLOAD_ROOT",
}

// WithEnv clears every storage variable, then sets vars, for the duration of the test.
// Original values are restored on cleanup.
func WithEnv(t testing.TB, vars map[string]string) {
	t.Helper()
	for _, key := range StorageEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

// ObserveLogs routes the global logger into an observer until the test ends.
func ObserveLogs(t testing.TB) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	original := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = original })

	return logs
}

// TempFile writes content to name inside a per-test directory and returns its path.
func TempFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
