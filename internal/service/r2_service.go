package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/shutterpost/configs"
)

// ObjectStore mirrors uploaded media to public object storage.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	// PublicURL is empty when no public base URL is configured.
	PublicURL(key string) string
}

// R2Service stores objects in a Cloudflare R2 bucket through its S3 API.
type R2Service struct {
	config cfg.R2

	once   sync.Once
	client *s3.Client
	err    error
}

func NewR2Service(r2 cfg.R2) *R2Service {
	return &R2Service{config: r2}
}

func (r *R2Service) r2Client(ctx context.Context) (*s3.Client, error) {
	r.once.Do(func() {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.AccessKey, r.config.SecretKey, "")),
			config.WithRegion("auto"),
		)
		if err != nil {
			r.err = fmt.Errorf("failed to load R2 config: %w", err)
			return
		}

		r.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.AccountID))
		})
	})
	return r.client, r.err
}

func (r *R2Service) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	client, err := r.r2Client(ctx)
	if err != nil {
		return err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (r *R2Service) PublicURL(key string) string {
	if r.config.PublicURL == "" {
		return ""
	}
	return r.config.PublicURL + "/" + key
}
