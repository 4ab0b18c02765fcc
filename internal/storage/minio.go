package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// To switch to AWS S3 or another provider, change S3_ENDPOINT_URL and
// credentials — no code changes are needed.
//
// Uploads go through the internal endpoint. Presigned URLs are signed by a
// client configured with the public endpoint: a V4 signature covers the Host
// header, so rewriting the host of an already-signed URL would invalidate it.
type MinioStorage struct {
	client  *minio.Client
	presign *minio.Client
	bucket  string
}

// NewMinioStorage creates MinIO clients for the internal and public endpoints,
// ensures the bucket exists, and returns a ready-to-use MinioStorage.
func NewMinioStorage(endpointURL, publicURL, region, bucket, accessKey, secretKey string) (*MinioStorage, error) {
	creds := credentials.NewStaticV4(accessKey, secretKey, "")

	client, err := newClient(endpointURL, region, creds)
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	presignClient := client
	if publicURL != "" && publicURL != endpointURL {
		presignClient, err = newClient(publicURL, region, creds)
		if err != nil {
			return nil, fmt.Errorf("create presign client: %w", err)
		}
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	return &MinioStorage{
		client:  client,
		presign: presignClient,
		bucket:  bucket,
	}, nil
}

func newClient(rawURL, region string, creds *credentials.Credentials) (*minio.Client, error) {
	endpoint, secure, err := parseEndpoint(rawURL)
	if err != nil {
		return nil, err
	}
	return minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: secure,
		Region: region,
	})
}

// Upload streams reader to the bucket under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown — MinIO will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// PresignedGetURL returns a URL granting read access to the object at key,
// valid for expiry. Signing is local: it does not verify the object exists.
func (s *MinioStorage) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.presign.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return u.String(), nil
}

// parseEndpoint splits an endpoint URL like "http://localhost:9000" into the
// host:port form minio-go expects, plus whether to use TLS.
func parseEndpoint(rawURL string) (endpoint string, secure bool, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, fmt.Errorf("parse endpoint %q: %w", rawURL, err)
	}
	if u.Host == "" {
		// Tolerate bare "host:port" without a scheme.
		return rawURL, false, nil
	}
	return u.Host, u.Scheme == "https", nil
}
