package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEnv_ReadsFile(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")
	os.Unsetenv("S3_BUCKET_NAME")
	t.Setenv("S3_ENDPOINT_URL", "")
	os.Unsetenv("S3_ENDPOINT_URL")

	path := writeEnvFile(t, `
# storage
S3_BUCKET_NAME=media
S3_ENDPOINT_URL=https://minio.local:9000/?a=b
`)

	err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "media", os.Getenv("S3_BUCKET_NAME"))
	assert.Equal(t, "https://minio.local:9000/?a=b", os.Getenv("S3_ENDPOINT_URL"))
}

func TestLoadEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	t.Setenv("GCP_BUCKET_NAME", "from-process")

	path := writeEnvFile(t, "GCP_BUCKET_NAME=from-file\n")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-process", os.Getenv("GCP_BUCKET_NAME"))
}

func TestNoEnvFile(t *testing.T) {
	orig, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))

	err := LoadEnv()
	assert.NoError(t, err)
}
