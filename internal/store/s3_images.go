package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
)

// s3ImageStorage keeps uploaded images in an S3-compatible bucket. Objects
// are written with a public-read ACL so they can be served directly.
type s3ImageStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
	maxBytes  int64
	logger    *logger.Logger
}

// NewS3ImageStorage builds an S3-backed [ImageStorage] configured for
// path-style addressing, which non-AWS providers require.
func NewS3ImageStorage(ctx context.Context, conf config.Images, log *logger.Logger) (ImageStorage, error) {
	if conf.S3AccessKey == "" || conf.S3SecretKey == "" {
		return nil, fmt.Errorf("s3 image storage requires access credentials")
	}

	endpoint := strings.TrimRight(conf.S3Endpoint, "/")

	client := s3.New(s3.Options{
		Region:       conf.S3Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(conf.S3AccessKey, conf.S3SecretKey, ""),
		UsePathStyle: true,
	})

	// HeadBucket both validates the credentials and fails fast on a
	// missing bucket instead of on the first upload.
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(conf.S3Bucket)}); err != nil {
		return nil, fmt.Errorf("error checking s3 bucket %q: %w", conf.S3Bucket, err)
	}

	log.Debug().Str("endpoint", endpoint).Str("bucket", conf.S3Bucket).Msg("using s3 image storage")
	return &s3ImageStorage{
		client:    client,
		bucket:    conf.S3Bucket,
		publicURL: strings.TrimRight(conf.S3PublicURL, "/"),
		maxBytes:  conf.MaxUploadBytes,
		logger:    log,
	}, nil
}

func (s *s3ImageStorage) Save(ctx context.Context, filename string, content io.Reader) error {
	log := logger.FromContext(ctx)

	// PutObject needs the content length up front, so the upload is
	// buffered; the size limit keeps the buffer bounded.
	data, err := io.ReadAll(io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		return fmt.Errorf("error reading image upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return ErrImageTooLarge
	}

	key := filepath.Base(filename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentTypeForImage(key)),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		log.Err(err).Str("func", "*s3ImageStorage.Save").Str("key", key).Msg("error uploading image to s3")
		return fmt.Errorf("error uploading image %q: %w", key, err)
	}

	return nil
}

func (s *s3ImageStorage) Delete(ctx context.Context, filename string) error {
	key := filepath.Base(filename)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("error deleting image %q: %w", key, err)
	}
	return nil
}

func (s *s3ImageStorage) URL(filename string) string {
	key := filepath.Base(filename)
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return s.bucket + "/" + key
}

func contentTypeForImage(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
