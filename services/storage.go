package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// UploadResult describes the stored object as the rest of the app sees it.
type UploadResult struct {
	PublicId  string
	URL       string
	SecureURL string
	Bytes     int64
	Format    string
}

// ObjectStorage is the upload backend. Handlers talk to this interface so
// tests can swap in a fake without a running MinIO.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*UploadResult, error)
	Remove(ctx context.Context, key string) error
}

// Storage is the process-wide backend, set by ConnectMinio.
var Storage ObjectStorage

type MinioStorage struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
}

// ConnectMinio initializes the shared Storage backend from env. Missing or
// unreachable MinIO is not fatal; uploads will fail with a clear error.
func ConnectMinio() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "netson-uploads"
	}
	secure := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		log.Println("MinIO chưa được cấu hình:", err)
		return
	}
	Storage = &MinioStorage{client: client, bucket: bucket, endpoint: endpoint, secure: secure}
	log.Println("Đã kết nối MinIO:", endpoint)
}

func (m *MinioStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*UploadResult, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, err
	}

	scheme := "http"
	if m.secure {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key)
	return &UploadResult{
		PublicId:  key,
		URL:       url,
		SecureURL: fmt.Sprintf("https://%s/%s/%s", m.endpoint, m.bucket, key),
		Bytes:     info.Size,
		Format:    formatFromContentType(contentType),
	}, nil
}

func (m *MinioStorage) Remove(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func formatFromContentType(ct string) string {
	if i := strings.Index(ct, "/"); i >= 0 {
		return ct[i+1:]
	}
	return ct
}
