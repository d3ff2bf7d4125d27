// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	awsx "github.com/jsonwatch/jsonwatch/internal/aws"
	"github.com/jsonwatch/jsonwatch/internal/log"
)

// S3 samples by fetching an object from S3.
type S3 struct {
	Bucket string
	Key    string

	client *s3v2.Client
}

// NewS3 returns an S3 sampler for a "s3://bucket/key" or "bucket/key" URI.
// Credentials come from the ambient AWS chain, adjusted by opts.
func NewS3(ctx context.Context, uri string, opts ...awsx.Option) (*S3, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}

	cfg, err := awsx.LoadConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3{Bucket: bucket, Key: key, client: awsx.NewS3(cfg)}, nil
}

// ParseS3URI splits "s3://bucket/key" (scheme optional) into bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(uri, "s3://")

	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: want s3://bucket/key", uri)
	}

	return bucket, key, nil
}

// Sample fetches the object body, capped at MaxBodySize.
func (s *S3) Sample(ctx context.Context) (string, error) {
	out, err := s.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	defer out.Body.Close()

	body, err := readCapped(out.Body, MaxBodySize)
	if err != nil {
		return "", err
	}
	log.Debugf("fetched s3://%s/%s: %s", s.Bucket, s.Key, humanize.IBytes(uint64(len(body))))

	return body, nil
}
