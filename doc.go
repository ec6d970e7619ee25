/*
Package upload places local files in cloud object storage.

Official Repository: https://github.com/SaiNageswarS/go-cloud-upload

Two interchangeable backends are supported:
- Google Cloud Storage, selected when GCP_BUCKET_NAME is set
- any S3 compatible store (AWS, MinIO, R2...), selected when S3_BUCKET_NAME,
  S3_ENDPOINT_URL, S3_ACCESS_KEY and S3_SECRET_KEY are set

GCP takes priority when both are configured. Files land under
uploads/<category>/ (S3 keys get an extra YYYY/MM/DD segment unless S3_FLAT_KEYS=true).

Quick Start:

	url, err := uploader.UploadFile(ctx, "/tmp/demo.mp3", "transcriptions", "")

or from the shell:

	go install github.com/SaiNageswarS/go-cloud-upload/cmd/cloud-upload@latest
	cloud-upload upload /tmp/demo.mp3 --category transcriptions

Package Import:

	import "github.com/SaiNageswarS/go-cloud-upload/uploader"
	import "github.com/SaiNageswarS/go-cloud-upload/cloud"
	import "github.com/SaiNageswarS/go-cloud-upload/config"

License: Apache-2.0
*/
package upload
