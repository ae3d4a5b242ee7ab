// Package subscriptionsvc - nghiệp vụ đăng ký kênh.
//
// Subscription là cạnh (channel, subscriber) với unique index, toggle theo
// chiến lược insert-trước như like (xem basesvc.ToggleEdge).
package subscriptionsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	subscriptiondto "video_tube/internal/api/subscription/dto"
	subscriptionmodels "video_tube/internal/api/subscription/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// SubscriptionService là service quản lý cạnh đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[subscriptionmodels.Subscription]
	users *mongo.Collection
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	users, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[subscriptionmodels.Subscription](collection),
		users:                users,
	}, nil
}

func (s *SubscriptionService) ensureChannelExists(ctx context.Context, channelID primitive.ObjectID) error {
	count, err := s.users.CountDocuments(ctx, bson.M{"_id": channelID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Toggle đảo trạng thái đăng ký của viewer với một kênh, trả về cạnh vừa tạo
// khi kết quả là added. Tự đăng ký kênh của mình bị từ chối, kênh không tồn
// tại trả về 404.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID, viewer primitive.ObjectID) (basesvc.ToggleResult, subscriptionmodels.Subscription, error) {
	var zero subscriptionmodels.Subscription
	if channelID == viewer {
		return "", zero, common.ErrSelfSubscription
	}
	if err := s.ensureChannelExists(ctx, channelID); err != nil {
		return "", zero, err
	}

	return basesvc.ToggleEdge(ctx, s.BaseServiceMongoImpl,
		subscriptionmodels.Subscription{Channel: channelID, Subscriber: viewer},
		bson.M{"channel": channelID, "subscriber": viewer})
}

// Subscribers trả về danh sách người đăng ký của một kênh, kèm số subscriber
// của từng người và việc viewer có đăng ký lại họ hay không.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[subscriptiondto.SubscriberEntry], error) {
	if err := s.ensureChannelExists(ctx, channelID); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"channel": channelID}}},
		{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "subscriber",
			"pipeline": mongo.Pipeline{
				{{Key: "$lookup", Value: bson.M{
					"from":         global.MongoDB_ColNames.Subscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribedToChannel",
				}}},
				{{Key: "$addFields", Value: bson.M{
					"subscribersCount": bson.M{"$size": "$subscribedToChannel"},
					"subscribedToSubscriber": bson.M{"$cond": bson.M{
						"if":   bson.M{"$in": bson.A{viewer, "$subscribedToChannel.subscriber"}},
						"then": true,
						"else": false,
					}},
				}}},
				{{Key: "$project", Value: bson.M{
					"username":               1,
					"fullName":               1,
					"avatar":                 1,
					"subscribersCount":       1,
					"subscribedToSubscriber": 1,
				}}},
			},
		}}},
		{{Key: "$unwind", Value: "$subscriber"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$subscriber"}}},
	}

	return basesvc.AggregateWithPagination[subscriptiondto.SubscriberEntry](ctx, s.Collection(), pipeline, page, limit)
}

// SubscribedChannels trả về các kênh viewer đã đăng ký, kèm video mới nhất
// (đã publish) của từng kênh.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[subscriptiondto.SubscribedChannelEntry], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"subscriber": subscriberID}}},
		{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channel",
			"pipeline": mongo.Pipeline{
				{{Key: "$lookup", Value: bson.M{
					"from":         global.MongoDB_ColNames.Videos,
					"localField":   "_id",
					"foreignField": "owner",
					"as":           "videos",
					"pipeline": mongo.Pipeline{
						{{Key: "$match", Value: bson.M{"isPublished": true}}},
						{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
						{{Key: "$limit", Value: 1}},
						{{Key: "$project", Value: bson.M{
							"title":     1,
							"thumbnail": 1,
							"duration":  1,
							"views":     1,
							"createdAt": 1,
						}}},
					},
				}}},
				{{Key: "$addFields", Value: bson.M{
					"latestVideo": bson.M{"$first": "$videos"},
				}}},
				{{Key: "$project", Value: bson.M{
					"username":    1,
					"fullName":    1,
					"avatar":      1,
					"latestVideo": 1,
				}}},
			},
		}}},
		{{Key: "$unwind", Value: "$channel"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$channel"}}},
	}

	return basesvc.AggregateWithPagination[subscriptiondto.SubscribedChannelEntry](ctx, s.Collection(), pipeline, page, limit)
}
