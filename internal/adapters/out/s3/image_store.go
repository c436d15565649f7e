// Package s3 implements image storage on AWS S3. Orders keep only object
// keys; the actual bytes live in a bucket and are purged when an order
// reaches a terminal status or drops an image during an edit.
package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// deleteObjectsAPI is the slice of the S3 client the store depends on.
type deleteObjectsAPI interface {
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// ImageStore removes order images from an S3 bucket.
type ImageStore struct {
	client deleteObjectsAPI
	bucket string
	logger *zap.Logger
}

// Config carries the credentials and bucket for the image store.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// NewImageStore creates an image store backed by AWS S3.
func NewImageStore(ctx context.Context, cfg Config, logger *zap.Logger) (*ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &ImageStore{
		client: s3.NewFromConfig(awsConfig),
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// newImageStoreWithClient wires a preconfigured client, for tests.
func newImageStoreWithClient(client deleteObjectsAPI, bucket string, logger *zap.Logger) *ImageStore {
	return &ImageStore{client: client, bucket: bucket, logger: logger}
}

// Remove deletes the given object keys from the bucket in one batch call.
// Empty keys are skipped; an empty batch is a no-op.
func (s *ImageStore) Remove(ctx context.Context, refs []string) error {
	objects := make([]types.ObjectIdentifier, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(ref)})
	}
	if len(objects) == 0 {
		return nil
	}

	output, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("delete images from s3: %w", err)
	}

	for _, failed := range output.Errors {
		s.logger.Warn("image delete failed",
			zap.String("key", aws.ToString(failed.Key)),
			zap.String("code", aws.ToString(failed.Code)),
			zap.String("message", aws.ToString(failed.Message)),
		)
	}

	return nil
}
