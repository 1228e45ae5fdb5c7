package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Resolver uploads media to an S3 bucket and returns the public
// object URL.
type S3Resolver struct {
	uploader  *manager.Uploader
	bucket    string
	region    string
	prefix    string
	publicURL string // optional CDN/custom domain; falls back to the bucket endpoint
}

// NewS3Resolver builds a resolver from the default AWS credential chain.
func NewS3Resolver(ctx context.Context, bucket, region, prefix, publicURL string) (*S3Resolver, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Resolver{
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		region:    region,
		prefix:    strings.Trim(prefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Resolve uploads the file and returns its object URL.
func (sr *S3Resolver) Resolve(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	ext, err := screenExtension(fileHeader.Filename)
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	key := path.Join(sr.prefix, uuid.NewString()+ext)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = sr.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(sr.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if sr.publicURL != "" {
		return sr.publicURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", sr.bucket, sr.region, key), nil
}
