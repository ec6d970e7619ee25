package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiNageswarS/go-cloud-upload/config"
	"github.com/SaiNageswarS/go-cloud-upload/uploader"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type fileUploader interface {
	Upload(ctx context.Context, localPath, category, originalFilename string) (string, error)
}

var newUploaderFn = func(cfg *config.StorageConfig) fileUploader {
	return uploader.New(cfg)
}

func newUploadCmd() *cobra.Command {
	var (
		category string
		name     string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "upload [file]...",
		Short: "Upload local files and print their URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" && len(args) > 1 {
				return errors.New("--name can only be used with a single file")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := loadConfig(ctx, cmd)
			if err != nil {
				return err
			}

			urls, err := uploadAll(ctx, newUploaderFn(cfg), args, category, name, parallel)
			for i, url := range urls {
				if url != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[i], url)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", uploader.DefaultCategory, "folder under the upload root")
	cmd.Flags().StringVarP(&name, "name", "n", "", "object filename (spaces become underscores)")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of files uploaded at once")
	return cmd
}

// uploadAll uploads every file, at most parallel at a time. urls[i] belongs to files[i]
// and is empty for failed uploads. The first error is returned and cancels the rest.
func uploadAll(ctx context.Context, up fileUploader, files []string, category, name string, parallel int) ([]string, error) {
	if parallel < 1 {
		parallel = 1
	}

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			url, err := up.Upload(ctx, file, category, name)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			urls[i] = url
			return nil
		})
	}

	err := g.Wait()
	return urls, err
}
