// Package likesvc - nghiệp vụ like cho video, bình luận và tweet.
//
// Like là một cạnh (target, likedBy) với unique index theo từng loại target.
// Toggle dùng chiến lược insert-trước: insert thành công là thêm like,
// đụng duplicate thì xóa cạnh hiện có (xem basesvc.ToggleEdge).
package likesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	likemodels "video_tube/internal/api/like/models"
	userdto "video_tube/internal/api/user/dto"
	videodto "video_tube/internal/api/video/dto"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// LikeService là service quản lý cạnh like
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[likemodels.Like]
	videos   *mongo.Collection
	comments *mongo.Collection
	tweets   *mongo.Collection
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	videos, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	comments, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	tweets, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[likemodels.Like](collection),
		videos:               videos,
		comments:             comments,
		tweets:               tweets,
	}, nil
}

func (s *LikeService) ensureExists(ctx context.Context, collection *mongo.Collection, filter bson.M) error {
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ToggleVideoLike đảo trạng thái like của viewer trên một video.
// Video không tồn tại hoặc viewer không thấy được trả về 404.
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error) {
	var zero likemodels.Like
	if err := s.ensureExists(ctx, s.videos, bson.M{
		"_id": videoID,
		"$or": []bson.M{
			{"isPublished": true},
			{"owner": viewer},
		},
	}); err != nil {
		return "", zero, err
	}

	return basesvc.ToggleEdge(ctx, s.BaseServiceMongoImpl,
		likemodels.Like{Video: &videoID, LikedBy: viewer},
		bson.M{"video": videoID, "likedBy": viewer})
}

// ToggleCommentLike đảo trạng thái like của viewer trên một bình luận
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error) {
	var zero likemodels.Like
	if err := s.ensureExists(ctx, s.comments, bson.M{"_id": commentID}); err != nil {
		return "", zero, err
	}

	return basesvc.ToggleEdge(ctx, s.BaseServiceMongoImpl,
		likemodels.Like{Comment: &commentID, LikedBy: viewer},
		bson.M{"comment": commentID, "likedBy": viewer})
}

// ToggleTweetLike đảo trạng thái like của viewer trên một tweet
func (s *LikeService) ToggleTweetLike(ctx context.Context, tweetID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error) {
	var zero likemodels.Like
	if err := s.ensureExists(ctx, s.tweets, bson.M{"_id": tweetID}); err != nil {
		return "", zero, err
	}

	return basesvc.ToggleEdge(ctx, s.BaseServiceMongoImpl,
		likemodels.Like{Tweet: &tweetID, LikedBy: viewer},
		bson.M{"tweet": tweetID, "likedBy": viewer})
}

// LikedVideos trả về các video viewer đã like (like mới nhất trước),
// bỏ qua video đã xóa hoặc đã gỡ publish.
func (s *LikeService) LikedVideos(ctx context.Context, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[videodto.VideoWithOwner], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"likedBy": viewer,
			"video":   bson.M{"$exists": true},
		}}},
		{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$match", Value: bson.M{"video.isPublished": true}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
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
	}

	return basesvc.AggregateWithPagination[videodto.VideoWithOwner](ctx, s.Collection(), pipeline, page, limit)
}
