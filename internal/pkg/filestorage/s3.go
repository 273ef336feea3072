package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config holds configuration for an S3-compatible object store
type S3Config struct {
	Endpoint        string // optional, for S3-compatible stores
	Region          string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicURL       string // base URL objects are served from
}

// S3Storage stores uploaded files in an S3-compatible bucket
type S3Storage struct {
	client *s3.Client
	config S3Config
}

// NewS3Storage creates an S3Storage and verifies bucket access
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("missing required S3 configuration parameters")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.AccessKeySecret,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	headCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := client.HeadBucket(headCtx, &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	}); err != nil {
		return nil, fmt.Errorf("failed to access bucket %s: %w", cfg.Bucket, err)
	}

	return &S3Storage{client: client, config: cfg}, nil
}

// SaveFile uploads the file under a generated key and returns its public URL
func (s *S3Storage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := uuid.New().String() + ext
	if subPath != "" {
		key = strings.Trim(subPath, "/") + "/" + key
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	}); err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return strings.TrimRight(s.config.PublicURL, "/") + "/" + key, nil
}

// DeleteFile removes an object by its public URL or key
func (s *S3Storage) DeleteFile(path string) error {
	if path == "" {
		return nil
	}

	key := path
	if base := strings.TrimRight(s.config.PublicURL, "/"); base != "" && strings.HasPrefix(path, base) {
		key = strings.TrimLeft(strings.TrimPrefix(path, base), "/")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
