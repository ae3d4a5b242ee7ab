// Package models - model Comment thuộc domain comment.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment định nghĩa mô hình bình luận trên video.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video" index:"single:1"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
