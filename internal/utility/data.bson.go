package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson dùng để tạo các document update bson ($set, $push, ...) từ struct.
type CustomBson struct{}

// BsonWrapper chứa các toán tử update cơ bản của mongo.
// Gán struct dữ liệu vào một trường, mã hóa bson sẽ cho ra document update tương ứng,
// ví dụ Set -> { $set : {name : "Jack"} }.
type BsonWrapper struct {
	Set      interface{} `json:"$set,omitempty" bson:"$set,omitempty"`
	Unset    interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`
	Push     interface{} `json:"$push,omitempty" bson:"$push,omitempty"`
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`
	Pull     interface{} `json:"$pull,omitempty" bson:"$pull,omitempty"`
}

// ToMap chuyển đổi struct thành map[string]interface{} qua bson marshal/unmarshal.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err = bson.Unmarshal(itr, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// Set tạo truy vấn thay thế giá trị của các trường bằng giá trị cụ thể
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Set: data})
}

// Push tạo truy vấn thêm một giá trị vào một trường mảng
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Push: data})
}

// Unset tạo truy vấn xóa một trường cụ thể
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Unset: data})
}

// AddToSet tạo truy vấn thêm giá trị vào mảng nếu giá trị chưa tồn tại
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{AddToSet: data})
}

// Pull tạo truy vấn gỡ giá trị khỏi mảng
func (customBson *CustomBson) Pull(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Pull: data})
}
