package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerFragment là projection rút gọn của User, nhúng vào kết quả pipeline
// của các domain khác (video, comment, playlist) qua $lookup.
type OwnerFragment struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// OwnerLookupProjection các trường user được lộ ra trong owner fragment
var OwnerLookupProjection = map[string]int{
	"username": 1,
	"fullName": 1,
	"avatar":   1,
}
