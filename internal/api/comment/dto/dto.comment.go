// Package dto - cấu trúc vào/ra cho domain bình luận.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	userdto "video_tube/internal/api/user/dto"
)

// CommentAddInput nội dung bình luận mới
type CommentAddInput struct {
	Content string `json:"content" validate:"required,max=2048,no_xss"`
}

// CommentUpdateInput nội dung bình luận sau chỉnh sửa
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,max=2048,no_xss"`
}

// CommentWithMeta bình luận kèm thông tin người viết và số liệu like
// tính tại thời điểm đọc theo góc nhìn của viewer
type CommentWithMeta struct {
	ID         primitive.ObjectID    `json:"id" bson:"_id"`
	Content    string                `json:"content" bson:"content"`
	Video      primitive.ObjectID    `json:"video" bson:"video"`
	CreatedAt  int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                 `json:"updatedAt" bson:"updatedAt"`
	Owner      userdto.OwnerFragment `json:"owner" bson:"owner"`
	LikesCount int64                 `json:"likesCount" bson:"likesCount"`
	IsLiked    bool                  `json:"isLiked" bson:"isLiked"`
}
