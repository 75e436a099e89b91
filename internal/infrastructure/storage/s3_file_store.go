package storage

import (
	"context"
	"log"
	"os"
	"time"

	"client_portal/internal/infrastructure/database"
	"client_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultProposalsBucket = "proposal-files"

// S3FileStore serves proposal documents out of a single S3 bucket.
// Downloads are only ever exposed as presigned GET URLs.
type S3FileStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IFileStore = (*S3FileStore)(nil)

// ConnectS3 creates the file store using environment variables.
//
// Supported env vars:
//   - PROPOSALS_BUCKET (default: proposal-files)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, forces path style)
//
// plus the shared AWS config vars (see database.NewAWSConfigFromEnv).
func ConnectS3() *S3FileStore {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := os.Getenv("PROPOSALS_BUCKET")
	if bucket == "" {
		bucket = defaultProposalsBucket
	}

	return &S3FileStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

func (s *S3FileStore) SignedDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

func (s *S3FileStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
