package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "video_tube/internal/api/user/models"
)

// TokenPair cặp token trả về cho client sau khi đăng nhập / refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult thông tin user kèm cặp token
type LoginResult struct {
	User         usermodels.User `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

// WatchHistoryEntry một video trong lịch sử xem, kèm thông tin rút gọn của chủ kênh
type WatchHistoryEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	Owner       OwnerFragment      `json:"owner" bson:"owner"`
}

// ChannelProfile hồ sơ kênh theo góc nhìn của viewer
type ChannelProfile struct {
	ID                        primitive.ObjectID `json:"id" bson:"_id"`
	Username                  string             `json:"username" bson:"username"`
	FullName                  string             `json:"fullName" bson:"fullName"`
	Avatar                    string             `json:"avatar" bson:"avatar"`
	CoverImage                string             `json:"coverImage" bson:"coverImage"`
	SubscribersCount          int64              `json:"subscribersCount" bson:"subscribersCount"`
	ChannelsSubscribedToCount int64              `json:"channelsSubscribedToCount" bson:"channelsSubscribedToCount"`
	IsSubscribed              bool               `json:"isSubscribed" bson:"isSubscribed"`
}
