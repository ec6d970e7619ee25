package aws

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/SaiNageswarS/go-cloud-upload/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"go.uber.org/zap"
)

// Connection describes how to reach an S3 compatible endpoint (AWS, MinIO, R2, Spaces...).
type Connection struct {
	EndpointUrl string
	AccessKey   string
	SecretKey   string
	Region      string
}

// UploadFile uploads the file at localPath to bucket/key and returns the object URL
// reported by the endpoint.
func UploadFile(ctx context.Context, localPath, bucket, key string, conn Connection) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	sess, err := newSession(conn)
	if err != nil {
		logger.Error("Error getting s3 session", zap.String("endpoint", conn.EndpointUrl), zap.Error(err))
		return "", fmt.Errorf("s3 session: %w", err)
	}

	input := &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType := mime.TypeByExtension(filepath.Ext(key)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := s3manager.NewUploader(sess).UploadWithContext(ctx, input)
	if err != nil {
		return "", err
	}

	return out.Location, nil
}

func newSession(conn Connection) (*session.Session, error) {
	region := conn.Region
	if region == "" {
		region = "us-east-1"
	}

	return session.NewSession(&aws.Config{
		Endpoint:         aws.String(conn.EndpointUrl),
		Region:           aws.String(region),
		Credentials:      credentials.NewStaticCredentials(conn.AccessKey, conn.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
}
