// Package tweetsvc - nghiệp vụ tweet (bài viết ngắn trên kênh).
package tweetsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	tweetdto "video_tube/internal/api/tweet/dto"
	tweetmodels "video_tube/internal/api/tweet/models"
	userdto "video_tube/internal/api/user/dto"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// TweetService là service quản lý tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[tweetmodels.Tweet]
	users *mongo.Collection
	likes *mongo.Collection
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	users, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	likes, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[tweetmodels.Tweet](collection),
		users:                users,
		likes:                likes,
	}, nil
}

// Create tạo tweet mới cho viewer
func (s *TweetService) Create(ctx context.Context, owner primitive.ObjectID, input *tweetdto.TweetCreateInput) (tweetmodels.Tweet, error) {
	return s.InsertOne(ctx, tweetmodels.Tweet{
		Content: input.Content,
		Owner:   owner,
	})
}

// ListByUser trả về tweet của một kênh (mới nhất trước), kèm số liệu like
// theo góc nhìn của viewer. Kênh không tồn tại trả về 404.
func (s *TweetService) ListByUser(ctx context.Context, userID, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[tweetdto.TweetWithMeta], error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if count == 0 {
		return nil, common.ErrNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": userID}}},
		{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "tweet",
			"as":           "likes",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: userdto.OwnerLookupProjection}},
			},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"isLiked": bson.M{"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewer, "$likes.likedBy"}},
				"then": true,
				"else": false,
			}},
		}}},
		{{Key: "$project", Value: bson.M{"likes": 0}}},
	}

	return basesvc.AggregateWithPagination[tweetdto.TweetWithMeta](ctx, s.Collection(), pipeline, page, limit)
}

// Update sửa nội dung tweet. Chỉ người viết được sửa.
func (s *TweetService) Update(ctx context.Context, id, owner primitive.ObjectID, input *tweetdto.TweetUpdateInput) (tweetmodels.Tweet, error) {
	var zero tweetmodels.Tweet

	if _, err := basesvc.EnsureOwner(ctx, s, id, owner, func(t tweetmodels.Tweet) primitive.ObjectID { return t.Owner }); err != nil {
		return zero, err
	}

	return s.UpdateOne(ctx, bson.M{"_id": id, "owner": owner}, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	}, nil)
}

// Delete xóa tweet kèm các like của nó. Chỉ người viết được xóa.
func (s *TweetService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := basesvc.EnsureOwner(ctx, s, id, owner, func(t tweetmodels.Tweet) primitive.ObjectID { return t.Owner }); err != nil {
		return err
	}

	if _, err := s.likes.DeleteMany(ctx, bson.M{"tweet": id}); err != nil {
		return common.ConvertMongoError(err)
	}

	return s.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
}
