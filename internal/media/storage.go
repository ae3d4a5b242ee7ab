// Package media cung cấp lớp lưu trữ file media (video, thumbnail, avatar) trên MinIO.
// Upload trả về URL công khai, các domain chỉ lưu URL này như một chuỗi opaque.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"video_tube/config"
	"video_tube/internal/common"
	"video_tube/internal/logger"
)

// Storage là client lưu trữ media trên MinIO
type Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewStorage khởi tạo client MinIO và đảm bảo bucket tồn tại
func NewStorage(ctx context.Context, cfg *config.Configuration) (*Storage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeStorage, "Không thể khởi tạo MinIO client", common.StatusServiceUnavailable, err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, common.NewError(common.ErrCodeStorage, "Không thể kiểm tra bucket MinIO", common.StatusServiceUnavailable, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, common.NewError(common.ErrCodeStorage, "Không thể tạo bucket MinIO", common.StatusServiceUnavailable, err)
		}
	}

	logger.GetAppLogger().WithField("endpoint", cfg.MinioEndpoint).Info("Kết nối MinIO thành công")

	publicURL := cfg.MinioPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}

	return &Storage{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// ObjectName sinh tên object duy nhất theo prefix thư mục và đuôi file gốc
func ObjectName(prefix, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("%s/%s%s", prefix, primitive.NewObjectID().Hex(), ext)
}

// Upload đẩy một stream lên MinIO và trả về URL công khai của object
func (s *Storage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", common.NewError(common.ErrCodeStorage, "Không thể upload file lên MinIO", common.StatusInternalServerError, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

// Remove xóa object theo URL công khai đã trả về từ Upload.
// URL không thuộc storage này thì bỏ qua (file cũ có thể nằm ở hệ thống khác).
func (s *Storage) Remove(ctx context.Context, objectURL string) error {
	prefix := fmt.Sprintf("%s/%s/", s.publicURL, s.bucket)
	if !strings.HasPrefix(objectURL, prefix) {
		return nil
	}
	objectName := strings.TrimPrefix(objectURL, prefix)

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return common.NewError(common.ErrCodeStorage, "Không thể xóa file trên MinIO", common.StatusInternalServerError, err)
	}
	return nil
}
