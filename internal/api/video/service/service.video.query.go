package videosvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	userdto "video_tube/internal/api/user/dto"
	videodto "video_tube/internal/api/video/dto"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// ownerFragmentLookup trả về cặp stage $lookup + $unwind nhúng thông tin
// rút gọn của chủ kênh vào document video.
func ownerFragmentLookup() mongo.Pipeline {
	return mongo.Pipeline{
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
}

// List trả về danh sách video đã publish, có tìm kiếm, sắp xếp và phân trang.
// Khi lọc theo chính kênh của viewer thì trả về cả video chưa publish.
func (s *VideoService) List(ctx context.Context, query *videodto.VideoListQuery, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[videodto.VideoWithOwner], error) {
	match := bson.M{"isPublished": true}

	if query.UserID != "" {
		ownerID, err := primitive.ObjectIDFromHex(query.UserID)
		if err != nil {
			return nil, common.ErrInvalidInput
		}
		match["owner"] = ownerID
		if ownerID == viewer {
			// Chủ kênh xem kênh của mình thấy cả video chưa publish
			delete(match, "isPublished")
		}
	}

	if query.Query != "" {
		match["$or"] = []bson.M{
			{"title": bson.M{"$regex": query.Query, "$options": "i"}},
			{"description": bson.M{"$regex": query.Query, "$options": "i"}},
		}
	}

	sortField := "createdAt"
	if query.SortBy != "" {
		sortField = query.SortBy
	}
	sortDir := -1
	if query.SortType == "asc" {
		sortDir = 1
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: basesvc.SortWithTiebreak(sortField, sortDir)}},
	}
	pipeline = append(pipeline, ownerFragmentLookup()...)

	return basesvc.AggregateWithPagination[videodto.VideoWithOwner](ctx, s.Collection(), pipeline, page, limit)
}

// GetDetail trả về trang chi tiết video: chủ kênh kèm số subscriber,
// số like và trạng thái like/subscribe của viewer. Video chưa publish
// chỉ chủ video thấy được, người khác nhận 404.
func (s *VideoService) GetDetail(ctx context.Context, id, viewer primitive.ObjectID) (*videodto.VideoDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"_id": id,
			"$or": []bson.M{
				{"isPublished": true},
				{"owner": viewer},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": mongo.Pipeline{
				{{Key: "$lookup", Value: bson.M{
					"from":         global.MongoDB_ColNames.Subscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}}},
				{{Key: "$addFields", Value: bson.M{
					"subscribersCount": bson.M{"$size": "$subscribers"},
					"isSubscribed": bson.M{"$cond": bson.M{
						"if":   bson.M{"$in": bson.A{viewer, "$subscribers.subscriber"}},
						"then": true,
						"else": false,
					}},
				}}},
				{{Key: "$project", Value: bson.M{
					"username":         1,
					"fullName":         1,
					"avatar":           1,
					"subscribersCount": 1,
					"isSubscribed":     1,
				}}},
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

	detail, err := basesvc.AggregateOne[videodto.VideoDetail](ctx, s.Collection(), pipeline)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
