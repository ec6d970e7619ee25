package dotenv

import (
	"errors"
	"io/fs"
	"os"

	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads environment variables from the given .env files (".env" when none given).
// Files that don't exist are skipped. Variables already present in the process
// environment are not overridden.
func LoadEnv(envPath ...string) error {
	if len(envPath) == 0 {
		envPath = append(envPath, ".env")
	}

	for _, filename := range envPath {
		if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("env file not found, skipping", zap.String("file", filename))
			continue
		}

		if err := godotenv.Load(filename); err != nil {
			return err
		}
	}

	return nil
}
