package main

import (
	"context"
	"fmt"

	"github.com/SaiNageswarS/go-cloud-upload/cloud"
	"github.com/spf13/cobra"
)

func newProviderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provider",
		Short: "Print the storage provider the current configuration selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := loadConfig(ctx, cmd)
			if err != nil {
				return err
			}

			provider, err := cloud.SelectProvider(cfg)
			if err != nil {
				return err
			}

			switch p := provider.(type) {
			case *cloud.GCPStorageProvider:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tbucket=%s\n", p.Name(), p.Bucket)
			case *cloud.S3CompatibleProvider:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tbucket=%s\tendpoint=%s\n", p.Name(), p.Bucket, p.Conn.EndpointUrl)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), provider.Name())
			}
			return nil
		},
	}
}
