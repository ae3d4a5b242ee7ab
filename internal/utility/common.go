// Package utility - Các hàm tiện ích dùng chung: thời gian, bson, token, mật khẩu.
package utility

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"video_tube/internal/common"
)

// GoProtect bao bọc một hàm để bảo vệ khỏi panic.
// Nếu xảy ra panic trong f(), GoProtect bắt lại và in ra lỗi thay vì làm chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Đã bắt lỗi panic: %v\n", err)
		}
	}()

	f()
}

// UnixMilli lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli lấy thời gian hiện tại tính bằng mili giây.
// Dùng cho các trường createdAt/updatedAt.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Trả về common.ErrInvalidObjectID nếu chuỗi không đúng định dạng.
func String2ObjectID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidObjectID
	}
	return id, nil
}
