package gcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// LoadSecretsIntoEnv copies the latest version of every Secret Manager secret in
// projectID into the process environment, keyed by the short secret name.
// Secrets that can't be read are logged and skipped. Returns the names loaded.
func LoadSecretsIntoEnv(ctx context.Context, projectID string) ([]string, error) {
	if projectID == "" {
		return nil, fmt.Errorf("gcp project id is required to load secrets")
	}

	source, err := newSecretSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secretmanager client: %w", err)
	}
	defer source.Close()

	names, err := source.ListSecrets(ctx, fmt.Sprintf("projects/%s", projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}

	var secretList []string
	for _, fullName := range names {
		value, err := source.AccessLatest(ctx, fullName)
		if err != nil {
			logger.Error("Failed to access secret version", zap.String("secret", fullName), zap.Error(err))
			continue
		}

		secretName := fullName[strings.LastIndex(fullName, "/")+1:]
		if err := os.Setenv(secretName, value); err != nil {
			return secretList, err
		}
		secretList = append(secretList, secretName)
	}

	logger.Info("Successfully loaded GCP secrets into environment variables.", zap.Strings("secrets", secretList))
	return secretList, nil
}

type secretSource interface {
	ListSecrets(ctx context.Context, parent string) ([]string, error)
	AccessLatest(ctx context.Context, secretName string) (string, error)
	Close() error
}

type secretManager struct {
	client *secretmanager.Client
}

func (s *secretManager) ListSecrets(ctx context.Context, parent string) ([]string, error) {
	it := s.client.ListSecrets(ctx, &secretmanagerpb.ListSecretsRequest{Parent: parent})

	var names []string
	for {
		secret, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, secret.Name)
	}
	return names, nil
}

func (s *secretManager) AccessLatest(ctx context.Context, secretName string) (string, error) {
	result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("%s/versions/latest", secretName),
	})
	if err != nil {
		return "", err
	}
	return string(result.Payload.Data), nil
}

func (s *secretManager) Close() error {
	return s.client.Close()
}

var newSecretSource = func(ctx context.Context) (secretSource, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &secretManager{client: client}, nil
}
