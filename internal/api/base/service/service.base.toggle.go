package basesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"video_tube/internal/common"
)

// ToggleResult cho biết kết quả của một lần toggle quan hệ
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"   // Cạnh quan hệ vừa được tạo
	ToggleRemoved ToggleResult = "removed" // Cạnh quan hệ vừa bị gỡ
)

// Số lần thử tối đa khi toggle thua race với request song song
const toggleMaxAttempts = 3

// ToggleEdge thêm hoặc gỡ một cạnh quan hệ (like, subscription) một cách nguyên tử.
// Không đọc trước rồi rẽ nhánh: insert trước, unique index trên natural key là
// điểm tuần tự hóa duy nhất.
//   - Insert thành công -> cạnh vừa được thêm.
//   - Duplicate key -> cạnh đã tồn tại, gỡ theo natural key.
//   - Gỡ không trúng document nào -> thua race với một lần gỡ song song, thử insert lại.
//
// Quá toggleMaxAttempts lần vẫn xung đột thì trả về ErrToggleContention.
func ToggleEdge[T any](ctx context.Context, svc *BaseServiceMongoImpl[T], edge T, naturalKey bson.M) (ToggleResult, T, error) {
	var zero T

	for attempt := 0; attempt < toggleMaxAttempts; attempt++ {
		created, err := svc.InsertOne(ctx, edge)
		if err == nil {
			return ToggleAdded, created, nil
		}
		if !errors.Is(err, common.ErrMongoDuplicate) {
			return "", zero, err
		}

		// Cạnh đã tồn tại: gỡ theo natural key
		delErr := svc.DeleteOne(ctx, naturalKey)
		if delErr == nil {
			return ToggleRemoved, zero, nil
		}
		if !errors.Is(delErr, common.ErrNotFound) {
			return "", zero, delErr
		}
	}

	return "", zero, common.ErrToggleContention
}
