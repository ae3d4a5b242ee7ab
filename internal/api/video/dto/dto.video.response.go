package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	userdto "video_tube/internal/api/user/dto"
)

// VideoWithOwner video kèm thông tin rút gọn của chủ kênh, dùng cho danh sách
type VideoWithOwner struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id"`
	Title       string                `json:"title" bson:"title"`
	Description string                `json:"description" bson:"description"`
	VideoFile   string                `json:"videoFile" bson:"videoFile"`
	Thumbnail   string                `json:"thumbnail" bson:"thumbnail"`
	Duration    float64               `json:"duration" bson:"duration"`
	Views       int64                 `json:"views" bson:"views"`
	IsPublished bool                  `json:"isPublished" bson:"isPublished"`
	CreatedAt   int64                 `json:"createdAt" bson:"createdAt"`
	Owner       userdto.OwnerFragment `json:"owner" bson:"owner"`
}

// VideoDetailOwner chủ kênh trong trang chi tiết video, kèm số liệu subscribe
type VideoDetailOwner struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	Username         string             `json:"username" bson:"username"`
	FullName         string             `json:"fullName" bson:"fullName"`
	Avatar           string             `json:"avatar" bson:"avatar"`
	SubscribersCount int64              `json:"subscribersCount" bson:"subscribersCount"`
	IsSubscribed     bool               `json:"isSubscribed" bson:"isSubscribed"`
}

// VideoDetail trang chi tiết video theo góc nhìn của viewer
type VideoDetail struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
	Owner       VideoDetailOwner   `json:"owner" bson:"owner"`
	LikesCount  int64              `json:"likesCount" bson:"likesCount"`
	IsLiked     bool               `json:"isLiked" bson:"isLiked"`
}
