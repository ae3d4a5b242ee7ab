// Package models - model Video thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video định nghĩa mô hình video.
// Views là counter duy nhất được lưu trữ, tăng qua buffer Redis rồi flush về đây.
// IsPublished = false thì chỉ chủ sở hữu nhìn thấy video.
type Video struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
