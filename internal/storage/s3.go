package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Signer implements URLSigner for AWS S3.
type S3Signer struct {
	presigner *s3.PresignClient
}

// NewS3Signer builds an S3 presign client for region. Static credentials are
// used when both keys are set; otherwise the SDK default chain resolves them
// lazily at signing time.
func NewS3Signer(ctx context.Context, region, accessKey, secretKey string) (*S3Signer, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Keeps checksum query parameters out of presigned PUT URLs.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &S3Signer{presigner: s3.NewPresignClient(client)}, nil
}

// SignPutURL presigns a PutObject request for key.
func (s *S3Signer) SignPutURL(ctx context.Context, bucket, key, contentType string, ttl time.Duration) (string, error) {
	if err := checkSignArgs(bucket, ttl); err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return req.URL, nil
}
