package gcp

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*──────────────────────────────────────────────────────────────────────────────
  stubSecrets – minimal implementation of secretSource.
 ────────────────────────────────────────────────────────────────────────────*/

type stubSecrets struct {
	names   []string          // ListSecrets result
	values  map[string]string // full-name ➜ value
	failOn  string            // full-name that should error
	listErr error
	parent  string
}

func (s *stubSecrets) ListSecrets(_ context.Context, parent string) ([]string, error) {
	s.parent = parent
	return s.names, s.listErr
}

func (s *stubSecrets) AccessLatest(_ context.Context, name string) (string, error) {
	if name == s.failOn {
		return "", context.Canceled
	}
	return s.values[name], nil
}

func (s *stubSecrets) Close() error { return nil }

func withSecrets(t *testing.T, stub secretSource) {
	t.Helper()
	orig := newSecretSource
	newSecretSource = func(context.Context) (secretSource, error) { return stub, nil }
	t.Cleanup(func() { newSecretSource = orig })
}

func TestLoadSecretsIntoEnv_HappyPath(t *testing.T) {
	t.Setenv("S3_ACCESS_KEY", "")
	t.Setenv("S3_SECRET_KEY", "")

	const projectID = "unit-proj"
	fullA := "projects/" + projectID + "/secrets/S3_ACCESS_KEY"
	fullB := "projects/" + projectID + "/secrets/S3_SECRET_KEY"
	stub := &stubSecrets{
		names: []string{fullA, fullB},
		values: map[string]string{
			fullA: "value-A",
			fullB: "value-B",
		},
	}
	withSecrets(t, stub)

	loaded, err := LoadSecretsIntoEnv(context.Background(), projectID)
	require.NoError(t, err)

	assert.Equal(t, "projects/unit-proj", stub.parent)
	assert.Equal(t, []string{"S3_ACCESS_KEY", "S3_SECRET_KEY"}, loaded)
	assert.Equal(t, "value-A", os.Getenv("S3_ACCESS_KEY"))
	assert.Equal(t, "value-B", os.Getenv("S3_SECRET_KEY"))
}

func TestLoadSecretsIntoEnv_AccessErrorIsIgnored(t *testing.T) {
	t.Setenv("GOOD", "")
	t.Setenv("BAD", "")

	fullGood := "projects/p/secrets/GOOD"
	fullBad := "projects/p/secrets/BAD"
	withSecrets(t, &stubSecrets{
		names:  []string{fullGood, fullBad},
		values: map[string]string{fullGood: "good"},
		failOn: fullBad,
	})

	loaded, err := LoadSecretsIntoEnv(context.Background(), "p")
	require.NoError(t, err)

	assert.Equal(t, []string{"GOOD"}, loaded)
	assert.Equal(t, "good", os.Getenv("GOOD"))
	assert.Equal(t, "", os.Getenv("BAD"))
}

func TestLoadSecretsIntoEnv_ListError(t *testing.T) {
	withSecrets(t, &stubSecrets{listErr: errors.New("permission denied")})

	_, err := LoadSecretsIntoEnv(context.Background(), "p")
	assert.ErrorContains(t, err, "permission denied")
}

func TestLoadSecretsIntoEnv_NoProjectID(t *testing.T) {
	called := false
	orig := newSecretSource
	newSecretSource = func(context.Context) (secretSource, error) {
		called = true
		return &stubSecrets{}, nil
	}
	t.Cleanup(func() { newSecretSource = orig })

	_, err := LoadSecretsIntoEnv(context.Background(), "")
	assert.Error(t, err)
	assert.False(t, called)
}
