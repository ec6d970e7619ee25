package main

import (
	"fmt"
	"os"

	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"github.com/spf13/cobra"
)

func main() {
	defer logger.Sync()

	if err := NewRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func NewRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cloud-upload",
		Short:         "Upload files to GCS or an S3 compatible store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "INI file with non-secret storage settings")
	rootCmd.PersistentFlags().Bool("load-gcp-secrets", false, "load GCP Secret Manager secrets into the environment first")

	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newProviderCmd())
	return rootCmd
}
