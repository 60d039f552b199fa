// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup ships tree snapshots to S3-compatible object storage.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

var ErrNoBucket = errors.New("backup bucket is not configured")

// Uploader stores one snapshot under a key derived from its creation time.
type Uploader interface {
	Upload(ctx context.Context, snapshot []byte, createdAt time.Time) (string, error)
}

type s3Uploader struct {
	client *s3.Client
	bucket string
	prefix string

	logger *logger.Logger
}

// NewS3Uploader builds an Uploader for cfg. A custom endpoint (MinIO and
// friends) switches the client to path-style addressing. Static credentials
// are used when an access key is configured, the default AWS chain
// otherwise.
func NewS3Uploader(ctx context.Context, cfg config.Backup, logger *logger.Logger) (Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, ErrNoBucket
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &s3Uploader{
		client: client,
		bucket: cfg.S3Bucket,
		prefix: strings.Trim(cfg.S3Prefix, "/"),
		logger: logger,
	}, nil
}

// ObjectKey returns the key a snapshot created at t is stored under.
func ObjectKey(prefix string, t time.Time) string {
	name := fmt.Sprintf("talos_backup-%s.zip", t.UTC().Format(time.RFC3339))
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func (u *s3Uploader) Upload(ctx context.Context, snapshot []byte, createdAt time.Time) (string, error) {
	key := ObjectKey(u.prefix, createdAt)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(snapshot),
		ContentLength: aws.Int64(int64(len(snapshot))),
		ContentType:   aws.String("application/zip"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	u.logger.Info().Str("bucket", u.bucket).Str("key", key).Int("size", len(snapshot)).Msg("snapshot uploaded")
	return key, nil
}
