package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"video_tube/internal/common"
)

// EnsureOwner tải tài nguyên theo id và kiểm tra quyền sở hữu của viewer.
// Thứ tự lỗi cố định: tài nguyên không tồn tại trả về ErrNotFound trước,
// sai chủ sở hữu mới trả về ErrForbidden (không để lộ sự tồn tại qua 403).
func EnsureOwner[T any](ctx context.Context, svc BaseServiceMongo[T], id primitive.ObjectID, viewer primitive.ObjectID, ownerOf func(T) primitive.ObjectID) (T, error) {
	var zero T

	doc, err := svc.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if ownerOf(doc) != viewer {
		return zero, common.ErrForbidden
	}

	return doc, nil
}
