package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileSystem implements fsx.FileSystem on top of an S3 bucket.
// All paths are stored under the configured prefix.
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

// NewS3FileSystem creates an S3-backed file system rooted at bucket/prefix
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// WithRegion sets the region used to build public URLs
func (fs *S3FileSystem) WithRegion(region string) *S3FileSystem {
	fs.region = region
	return fs
}

func (fs *S3FileSystem) key(path string) string {
	path = strings.TrimPrefix(path, "/")
	if fs.prefix == "" {
		return path
	}
	return fs.prefix + "/" + path
}

// WriteFile uploads data to the bucket
func (fs *S3FileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	_, err := fs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(fs.key(path)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("s3 put %q: %w", path, err)
	}
	return nil
}

// ReadFileStream opens an object for streaming
func (fs *S3FileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := fs.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(fs.key(path)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %q: %w", path, err)
	}
	return out.Body, nil
}

// DeleteFile removes an object
func (fs *S3FileSystem) DeleteFile(ctx context.Context, path string) error {
	_, err := fs.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(fs.key(path)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %q: %w", path, err)
	}
	return nil
}

// Join builds a slash-separated storage path
func (fs *S3FileSystem) Join(parts ...string) string {
	return strings.Join(parts, "/")
}

// PublicURL returns the virtual-hosted URL for a stored path
func (fs *S3FileSystem) PublicURL(path string) string {
	if fs.region == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", fs.bucket, fs.key(path))
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", fs.bucket, fs.region, fs.key(path))
}
