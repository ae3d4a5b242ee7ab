// Package dto - cấu trúc vào/ra cho domain đăng ký kênh.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriberEntry một người đăng ký trong danh sách subscriber của kênh.
// SubscribedToSubscriber cho biết viewer có đang đăng ký kênh của người này không.
type SubscriberEntry struct {
	ID                     primitive.ObjectID `json:"id" bson:"_id"`
	Username               string             `json:"username" bson:"username"`
	FullName               string             `json:"fullName" bson:"fullName"`
	Avatar                 string             `json:"avatar" bson:"avatar"`
	SubscribersCount       int64              `json:"subscribersCount" bson:"subscribersCount"`
	SubscribedToSubscriber bool               `json:"subscribedToSubscriber" bson:"subscribedToSubscriber"`
}

// LatestVideo video mới nhất của một kênh trong danh sách kênh đã đăng ký
type LatestVideo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Thumbnail string             `json:"thumbnail" bson:"thumbnail"`
	Duration  float64            `json:"duration" bson:"duration"`
	Views     int64              `json:"views" bson:"views"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// SubscribedChannelEntry một kênh trong danh sách kênh viewer đã đăng ký
type SubscribedChannelEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Username    string             `json:"username" bson:"username"`
	FullName    string             `json:"fullName" bson:"fullName"`
	Avatar      string             `json:"avatar" bson:"avatar"`
	LatestVideo *LatestVideo       `json:"latestVideo,omitempty" bson:"latestVideo,omitempty"`
}
