package usersvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	userdto "video_tube/internal/api/user/dto"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// ChannelProfile trả về hồ sơ kênh công khai theo username, kèm số liệu
// subscribe tính tại thời điểm đọc. isSubscribed phản ánh trạng thái của viewer;
// viewer ẩn danh (NilObjectID) luôn nhận isSubscribed=false.
func (s *UserService) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*userdto.ChannelProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": strings.ToLower(strings.TrimSpace(username))}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subscribersCount":          bson.M{"$size": "$subscribers"},
			"channelsSubscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed": bson.M{"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewer, "$subscribers.subscriber"}},
				"then": true,
				"else": false,
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"username":                  1,
			"fullName":                  1,
			"avatar":                    1,
			"coverImage":                1,
			"subscribersCount":          1,
			"channelsSubscribedToCount": 1,
			"isSubscribed":              1,
		}}},
	}

	profile, err := basesvc.AggregateOne[userdto.ChannelProfile](ctx, s.Collection(), pipeline)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// WatchHistory trả về lịch sử xem của user theo thứ tự đã lưu (mới nhất trước),
// đã loại các video không còn tồn tại hoặc đã bị gỡ publish.
func (s *UserService) WatchHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[userdto.WatchHistoryEntry], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		// Giữ thứ tự phần tử trong mảng watchHistory qua chỉ số unwind
		{{Key: "$unwind", Value: bson.M{
			"path":              "$watchHistory",
			"includeArrayIndex": "order",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "video",
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"video.isPublished": true},
			{"video.owner": userID},
		}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "video.owner",
			"foreignField": "_id",
			"as":           "video.ownerInfo",
		}}},
		{{Key: "$unwind", Value: "$video.ownerInfo"}},
		{{Key: "$sort", Value: bson.M{"order": 1}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
		{{Key: "$project", Value: bson.M{
			"title":       1,
			"description": 1,
			"videoFile":   1,
			"thumbnail":   1,
			"duration":    1,
			"views":       1,
			"createdAt":   1,
			"owner": bson.M{
				"_id":      "$ownerInfo._id",
				"username": "$ownerInfo.username",
				"fullName": "$ownerInfo.fullName",
				"avatar":   "$ownerInfo.avatar",
			},
		}}},
	}

	return basesvc.AggregateWithPagination[userdto.WatchHistoryEntry](ctx, s.Collection(), pipeline, page, limit)
}

// RecordWatch đưa videoID lên đầu watchHistory của user, không trùng lặp.
// Dùng một update pipeline duy nhất nên không có trạng thái trung gian khi
// hai request ghi cùng lúc: video mới đứng đầu, bản cũ (nếu có) bị loại.
func (s *UserService) RecordWatch(ctx context.Context, userID, videoID primitive.ObjectID) error {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"watchHistory": bson.M{"$concatArrays": bson.A{
				bson.A{videoID},
				bson.M{"$filter": bson.M{
					"input": bson.M{"$ifNull": bson.A{"$watchHistory", bson.A{}}},
					"cond":  bson.M{"$ne": bson.A{"$$this", videoID}},
				}},
			}},
		}}},
	}

	_, err := s.Collection().UpdateOne(ctx, bson.M{"_id": userID}, update)
	return common.ConvertMongoError(err)
}
