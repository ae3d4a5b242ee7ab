// Package models - model Subscription thuộc domain subscription.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription là cạnh đăng ký kênh: Subscriber theo dõi Channel.
// Mỗi cặp (channel, subscriber) có tối đa một cạnh, đảm bảo bằng unique compound index.
// Channel == Subscriber bị từ chối ở service (không cho tự đăng ký kênh của mình).
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"compound:channel_subscriber_unique"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"compound:channel_subscriber_unique;single:1"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
