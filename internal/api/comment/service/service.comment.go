// Package commentsvc - nghiệp vụ bình luận video.
package commentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	commentdto "video_tube/internal/api/comment/dto"
	commentmodels "video_tube/internal/api/comment/models"
	userdto "video_tube/internal/api/user/dto"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// CommentService là service quản lý bình luận.
// Giữ thêm collection videos để kiểm tra video đích và likes để dọn khi xóa.
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.Comment]
	videos *mongo.Collection
	likes  *mongo.Collection
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	videos, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likes, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.Comment](collection),
		videos:               videos,
		likes:                likes,
	}, nil
}

// ensureVideoVisible trả về ErrNotFound khi video không tồn tại hoặc
// chưa publish mà viewer không phải chủ video.
func (s *CommentService) ensureVideoVisible(ctx context.Context, videoID, viewer primitive.ObjectID) error {
	count, err := s.videos.CountDocuments(ctx, bson.M{
		"_id": videoID,
		"$or": []bson.M{
			{"isPublished": true},
			{"owner": viewer},
		},
	})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ListForVideo trả về bình luận của một video (mới nhất trước), kèm người viết
// và số like theo góc nhìn của viewer. Video không thấy được trả về 404.
func (s *CommentService) ListForVideo(ctx context.Context, videoID, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[commentdto.CommentWithMeta], error) {
	if err := s.ensureVideoVisible(ctx, videoID, viewer); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": videoID}}},
		{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "comment",
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

	return basesvc.AggregateWithPagination[commentdto.CommentWithMeta](ctx, s.Collection(), pipeline, page, limit)
}

// Add thêm bình luận vào video. Video không thấy được trả về 404.
func (s *CommentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, input *commentdto.CommentAddInput) (commentmodels.Comment, error) {
	var zero commentmodels.Comment

	if err := s.ensureVideoVisible(ctx, videoID, owner); err != nil {
		return zero, err
	}

	return s.InsertOne(ctx, commentmodels.Comment{
		Content: input.Content,
		Video:   videoID,
		Owner:   owner,
	})
}

// Update sửa nội dung bình luận. Chỉ người viết được sửa.
func (s *CommentService) Update(ctx context.Context, id, owner primitive.ObjectID, input *commentdto.CommentUpdateInput) (commentmodels.Comment, error) {
	var zero commentmodels.Comment

	if _, err := basesvc.EnsureOwner(ctx, s, id, owner, func(cm commentmodels.Comment) primitive.ObjectID { return cm.Owner }); err != nil {
		return zero, err
	}

	return s.UpdateOne(ctx, bson.M{"_id": id, "owner": owner}, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	}, nil)
}

// Delete xóa bình luận kèm các like của nó. Chỉ người viết được xóa.
func (s *CommentService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := basesvc.EnsureOwner(ctx, s, id, owner, func(cm commentmodels.Comment) primitive.ObjectID { return cm.Owner }); err != nil {
		return err
	}

	if _, err := s.likes.DeleteMany(ctx, bson.M{"comment": id}); err != nil {
		return common.ConvertMongoError(err)
	}

	return s.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
}
