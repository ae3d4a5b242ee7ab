// Package models - model Like thuộc domain like.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like là một cạnh quan hệ: đúng một trong ba trường Video/Comment/Tweet được set.
// Mỗi cặp (target, likedBy) có tối đa một cạnh, đảm bảo bằng ba partial unique
// compound index. LikedBy luôn có mặt nên mỗi index phải partial theo trường
// phân loại của nó, sparse không đủ.
type Like struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty" index:"compound:video_likedBy_unique,partial:video"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty" index:"compound:comment_likedBy_unique,partial:comment"`
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty" index:"compound:tweet_likedBy_unique,partial:tweet"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy" index:"compound:video_likedBy_unique;compound:comment_likedBy_unique;compound:tweet_likedBy_unique"`
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`
}
