package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectConfig addresses an S3-compatible bucket.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	// PublicURL prefixes object keys in returned URLs; defaults to the endpoint.
	PublicURL string
}

// ObjectStore writes images to MinIO or any S3-compatible service.
type ObjectStore struct {
	cfg    ObjectConfig
	client *minio.Client
}

// NewObjectStore connects to the endpoint; call EnsureBucket before use.
func NewObjectStore(cfg ObjectConfig) (*ObjectStore, error) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "http://"), "https://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	if cfg.PublicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		cfg.PublicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")

	return &ObjectStore{cfg: cfg, client: client}, nil
}

// EnsureBucket creates the bucket when missing.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", s.cfg.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.cfg.Bucket, err)
	}
	return nil
}

func (s *ObjectStore) Save(ctx context.Context, img Image) (string, error) {
	key := ObjectKey(img)
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(img.Data), int64(len(img.Data)),
		minio.PutObjectOptions{ContentType: img.ContentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.cfg.PublicURL + "/" + key, nil
}

func (s *ObjectStore) Backend() string { return "object" }

// ObjectKey names a new upload.
func ObjectKey(img Image) string {
	return "posts/" + uuid.NewString() + img.Ext()
}
