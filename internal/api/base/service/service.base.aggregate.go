package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	"video_tube/internal/common"
)

// SortWithTiebreak dựng sort stage theo field chính kèm _id tăng dần để
// thứ tự trang ổn định khi giá trị sort trùng nhau.
func SortWithTiebreak(field string, dir int) bson.D {
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}
}

// SortNewestFirst là sort mặc định của các listing: createdAt giảm dần, _id tăng dần.
func SortNewestFirst() bson.D {
	return SortWithTiebreak("createdAt", -1)
}

// Aggregate chạy một pipeline và decode kết quả vào slice kiểu R.
// Domain service dùng hàm này khi shape kết quả khác với model gốc (projection, lookup).
func Aggregate[R any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]R, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []R
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if results == nil {
		results = []R{}
	}

	return results, nil
}

// AggregateOne chạy pipeline và trả về document đầu tiên, ErrNotFound nếu pipeline rỗng.
func AggregateOne[R any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) (R, error) {
	var zero R

	results, err := Aggregate[R](ctx, collection, pipeline)
	if err != nil {
		return zero, err
	}
	if len(results) == 0 {
		return zero, common.ErrNotFound
	}

	return results[0], nil
}

// AggregateWithPagination chạy pipeline với phân trang: hai lượt trên cùng các stage match,
// một lượt $count để lấy tổng và một lượt $skip/$limit để lấy trang dữ liệu.
func AggregateWithPagination[R any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline, page, limit int64) (*basemodels.PaginateResult[R], error) {
	// Đảm bảo page >= 1 và limit > 0 để tránh skip âm
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	// Copy pipeline trước khi append để hai lượt không ghi đè lên nhau
	countPipeline := make(mongo.Pipeline, len(pipeline), len(pipeline)+1)
	copy(countPipeline, pipeline)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})

	var counts []struct {
		Total int64 `bson:"total"`
	}
	cursor, err := collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if err = cursor.All(ctx, &counts); err != nil {
		cursor.Close(ctx)
		return nil, common.ConvertMongoError(err)
	}
	cursor.Close(ctx)

	var total int64
	if len(counts) > 0 {
		total = counts[0].Total
	}

	pagePipeline := make(mongo.Pipeline, len(pipeline), len(pipeline)+2)
	copy(pagePipeline, pipeline)
	pagePipeline = append(pagePipeline,
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	items, err := Aggregate[R](ctx, collection, pagePipeline)
	if err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(page, limit, items, total), nil
}
