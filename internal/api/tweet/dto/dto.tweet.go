// Package dto - cấu trúc vào/ra cho domain tweet.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	userdto "video_tube/internal/api/user/dto"
)

// TweetCreateInput nội dung tweet mới
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,max=512,no_xss"`
}

// TweetUpdateInput nội dung tweet sau chỉnh sửa
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,max=512,no_xss"`
}

// TweetWithMeta tweet kèm người viết và số liệu like theo góc nhìn của viewer
type TweetWithMeta struct {
	ID         primitive.ObjectID    `json:"id" bson:"_id"`
	Content    string                `json:"content" bson:"content"`
	CreatedAt  int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                 `json:"updatedAt" bson:"updatedAt"`
	Owner      userdto.OwnerFragment `json:"owner" bson:"owner"`
	LikesCount int64                 `json:"likesCount" bson:"likesCount"`
	IsLiked    bool                  `json:"isLiked" bson:"isLiked"`
}

// TweetUserParams tham số đường dẫn chứa id chủ tweet
type TweetUserParams struct {
	UserID string `uri:"userId" validate:"required,len=24,hexadecimal"`
}
