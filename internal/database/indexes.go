package database

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"video_tube/internal/logger"
)

// CreateIndexes tạo index cho collection dựa trên tag `index` của model.
//
// Cú pháp tag:
//   - index:"single:1"                    — index đơn, thứ tự 1/-1
//   - index:"unique"                      — unique index trên một trường
//   - index:"unique,sparse"               — unique + sparse
//   - index:"compound:<group>"            — compound index, các trường cùng group gộp lại;
//     group chứa "_unique" thì compound là unique, chứa "sparse" trong config thì sparse.
//   - index:"compound:<group>,partial:<field>" — compound index chỉ áp dụng cho document
//     có <field> tồn tại (partialFilterExpression). Dùng cho các cạnh like: likedBy luôn
//     có mặt nên sparse không đủ, phải partial theo trường phân loại (video/comment/tweet).
//
// Các toggle like/subscribe dựa vào compound unique index làm điểm
// serialization duy nhất, nên hàm này phải chạy xong trước khi nhận request.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	compoundGroups := map[string]bson.D{}
	compoundSparse := map[string]bool{}
	compoundPartial := map[string]string{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := bsonFieldName(field)
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, config := range parseIndexTag(tag) {
			if _, ok := config["single"]; ok {
				keys := bson.D{{Key: bsonField, Value: parseOrder(config["single"])}}
				opts := options.Index().SetName(bsonField + "_single")
				if err := ensureIndex(ctx, collection, keys, opts); err != nil {
					return err
				}
			}

			if _, ok := config["unique"]; ok {
				keys := bson.D{{Key: bsonField, Value: 1}}
				opts := options.Index().SetName(bsonField + "_unique").SetUnique(true)
				if _, hasSparse := config["sparse"]; hasSparse {
					opts = opts.SetSparse(true)
				}
				if err := ensureIndex(ctx, collection, keys, opts); err != nil {
					return err
				}
			}

			if groupName, ok := config["compound"]; ok && groupName != "" {
				compoundGroups[groupName] = append(compoundGroups[groupName], bson.E{Key: bsonField, Value: 1})
				if _, hasSparse := config["sparse"]; hasSparse {
					compoundSparse[groupName] = true
				}
				if partialField, hasPartial := config["partial"]; hasPartial && partialField != "" {
					compoundPartial[groupName] = partialField
				}
			}
		}
	}

	for groupName, fields := range compoundGroups {
		opts := options.Index().SetName(groupName)
		if strings.Contains(groupName, "_unique") {
			opts = opts.SetUnique(true)
		}
		if compoundSparse[groupName] {
			opts = opts.SetSparse(true)
		}
		if partialField, ok := compoundPartial[groupName]; ok {
			opts = opts.SetPartialFilterExpression(bson.D{{Key: partialField, Value: bson.D{{Key: "$exists", Value: true}}}})
		}
		if err := ensureIndex(ctx, collection, fields, opts); err != nil {
			return err
		}
	}

	return nil
}

// bsonFieldName lấy tên trường bson từ tag, bỏ các option như omitempty
func bsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("bson")
	if tag == "" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

// parseIndexTag tách tag index thành danh sách cấu hình.
// Các cấu hình phân cách bởi ';', mỗi cấu hình gồm các cặp key:value phân cách bởi ','.
func parseIndexTag(tag string) []map[string]string {
	parts := strings.Split(tag, ";")
	result := []map[string]string{}

	for _, part := range parts {
		subParts := strings.Split(part, ",")
		entry := map[string]string{}
		for _, subPart := range subParts {
			kv := strings.SplitN(subPart, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}

	return result
}

// parseOrder đọc thứ tự index (1 hoặc -1), mặc định 1
func parseOrder(s string) int {
	if n, err := strconv.Atoi(s); err == nil && (n == 1 || n == -1) {
		return n
	}
	return 1
}

// ensureIndex tạo index nếu chưa tồn tại; index trùng tên đã tồn tại thì bỏ qua
func ensureIndex(ctx context.Context, collection *mongo.Collection, keys bson.D, opts *options.IndexOptions) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil && !isIndexExistsError(err) {
		return fmt.Errorf("không thể tạo index cho collection %s: %w", collection.Name(), err)
	}
	logger.GetAppLogger().WithField("collection", collection.Name()).Debug("Index checked")
	return nil
}

// isIndexExistsError nhận diện lỗi index đã tồn tại (IndexOptionsConflict / IndexKeySpecsConflict)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
