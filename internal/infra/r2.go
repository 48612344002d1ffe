package infra

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"offcampus/pkg/utils"
)

// R2Storage uploads objects to Cloudflare R2. R2 speaks the S3 protocol, so
// the AWS SDK is pointed at the account endpoint.
type R2Storage struct {
	client  *s3.S3
	bucket  string
	baseURL string
}

type ObjectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewR2StorageFromEnv reads R2_ENDPOINT (or R2_ACCOUNT_ID), R2_ACCESS_KEY_ID,
// R2_SECRET_ACCESS_KEY, R2_BUCKET and R2_PUBLIC_BASE_URL. Missing credentials
// leave the storage unconfigured; uploads then fail with ErrMisconfigured
// instead of panicking at boot.
func NewR2StorageFromEnv() ObjectStorage {
	endpoint := os.Getenv("R2_ENDPOINT")
	if endpoint == "" {
		if accountID := os.Getenv("R2_ACCOUNT_ID"); accountID != "" {
			endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
		}
	}
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	bucket := os.Getenv("R2_BUCKET")

	if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return &R2Storage{}
	}

	awsConfig := &aws.Config{
		Region:           aws.String("auto"),
		Endpoint:         aws.String(endpoint),
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return &R2Storage{}
	}

	baseURL := os.Getenv("R2_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.r2.dev", bucket)
	}

	return &R2Storage{
		client:  s3.New(sess),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *R2Storage) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if r.client == nil {
		return "", utils.ErrMisconfigured
	}

	_, err := r.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", utils.ErrUpstreamUnavailable
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}

func (r *R2Storage) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return utils.ErrMisconfigured
	}

	_, err := r.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return utils.ErrUpstreamUnavailable
	}
	return nil
}
