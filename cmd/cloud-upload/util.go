package main

import (
	"context"

	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/dotenv"
	"github.com/SaiNageswarS/go-cloud-upload/gcp"
	"github.com/spf13/cobra"
)

var loadSecretsFn = gcp.LoadSecretsIntoEnv

// loadConfig reads .env from the working directory, then the storage settings for a command.
// With --load-gcp-secrets the Secret Manager secrets of GCP_PROJECT_ID are exported
// first and the config is re-read.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.StorageConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	loadSecrets, _ := cmd.Flags().GetBool("load-gcp-secrets")

	if err := dotenv.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadStorageConfig(configPath)
	if err != nil {
		return nil, err
	}

	if !loadSecrets {
		return cfg, nil
	}

	if _, err := loadSecretsFn(ctx, cfg.GcpProjectId); err != nil {
		return nil, err
	}
	return config.LoadStorageConfig(configPath)
}
