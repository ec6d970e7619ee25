package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Provider string

const (
	ProviderGCP Provider = "gcp"
	ProviderS3  Provider = "s3"
)

const (
	DefaultUploadRoot = "uploads"
	DefaultS3Region   = "us-east-1"
)

// ErrInvalidConfig is matched by every configuration error returned from this package.
var ErrInvalidConfig = errors.New("invalid storage configuration")

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	// gcp
	GcpBucketName      string `env:"GCP_BUCKET_NAME" ini:"gcp_bucket_name"`
	GcpCredentialsFile string `env:"GCP_CREDENTIALS_FILE" ini:"gcp_credentials_file"`
	GcpProjectId       string `env:"GCP_PROJECT_ID" ini:"gcp_project_id"`

	// s3 compatible
	S3BucketName  string `env:"S3_BUCKET_NAME" ini:"s3_bucket_name"`
	S3EndpointUrl string `env:"S3_ENDPOINT_URL" ini:"s3_endpoint_url"`
	S3Region      string `env:"S3_REGION" ini:"s3_region"`
	S3AccessKey   string `env:"S3_ACCESS_KEY" ini:"-"`
	S3SecretKey   string `env:"S3_SECRET_KEY" ini:"-"`

	// Disables the YYYY/MM/DD segment in S3 object keys. Keys are date partitioned
	// by default; with S3_FLAT_KEYS=true a file lands at <root>/<category>/<file>
	// (see TestUploadFile_S3OnlyEnvironment in package uploader).
	S3FlatKeys bool `env:"S3_FLAT_KEYS" ini:"s3_flat_keys"`

	UploadRoot string `env:"UPLOAD_ROOT" ini:"upload_root"`
}

// MissingEnvError reports the variables a provider needs but doesn't have.
type MissingEnvError struct {
	Provider Provider
	Missing  []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%s storage not configured: missing %s", e.Provider, strings.Join(e.Missing, ", "))
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// LoadStorageConfig reads the optional INI file at iniPath, then the process
// environment. Environment values win over INI values. .env files are not read
// here; binaries call dotenv.LoadEnv before loading config.
func LoadStorageConfig(iniPath string) (*StorageConfig, error) {
	cfg := &StorageConfig{}

	if iniPath != "" {
		if err := LoadConfig(iniPath, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", iniPath, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func (c *StorageConfig) ApplyDefaults() {
	if c.UploadRoot == "" {
		c.UploadRoot = DefaultUploadRoot
	}
	if c.S3Region == "" {
		c.S3Region = DefaultS3Region
	}
}

// Validate checks that every variable the given provider requires is set.
func (c *StorageConfig) Validate(provider Provider) error {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch provider {
	case ProviderGCP:
		require("GCP_BUCKET_NAME", c.GcpBucketName)
	case ProviderS3:
		require("S3_BUCKET_NAME", c.S3BucketName)
		require("S3_ENDPOINT_URL", c.S3EndpointUrl)
		require("S3_ACCESS_KEY", c.S3AccessKey)
		require("S3_SECRET_KEY", c.S3SecretKey)
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, provider)
	}

	if len(missing) > 0 {
		return &MissingEnvError{Provider: provider, Missing: missing}
	}
	return nil
}
