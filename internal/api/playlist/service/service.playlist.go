// Package playlistsvc - nghiệp vụ playlist video.
package playlistsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistmodels "video_tube/internal/api/playlist/models"
	userdto "video_tube/internal/api/user/dto"
	"video_tube/internal/common"
	"video_tube/internal/global"
)

// PlaylistService là service quản lý playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[playlistmodels.Playlist]
	videos *mongo.Collection
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	videos, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](collection),
		videos:               videos,
	}, nil
}

func (s *PlaylistService) ownerOf(p playlistmodels.Playlist) primitive.ObjectID {
	return p.Owner
}

// Create tạo playlist mới cho viewer
func (s *PlaylistService) Create(ctx context.Context, owner primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (playlistmodels.Playlist, error) {
	return s.InsertOne(ctx, playlistmodels.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Owner:       owner,
	})
}

// ListByUser trả về playlist của một kênh kèm tổng số video và tổng lượt xem,
// tính từ các video còn tồn tại tại thời điểm đọc.
func (s *PlaylistService) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[playlistdto.PlaylistSummary], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": userID}}},
		{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"views": 1}}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"totalVideos": bson.M{"$size": "$videoDocs"},
			"totalViews":  bson.M{"$sum": "$videoDocs.views"},
		}}},
		{{Key: "$project", Value: bson.M{"videoDocs": 0, "videos": 0}}},
	}

	return basesvc.AggregateWithPagination[playlistdto.PlaylistSummary](ctx, s.Collection(), pipeline, page, limit)
}

// GetDetail trả về playlist kèm nội dung video. Video chưa publish chỉ hiện
// khi viewer là chủ playlist (cũng là chủ video trong trường hợp đó).
func (s *PlaylistService) GetDetail(ctx context.Context, id, viewer primitive.ObjectID) (*playlistdto.PlaylistDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
			"pipeline": mongo.Pipeline{
				{{Key: "$match", Value: bson.M{"$or": []bson.M{
					{"isPublished": true},
					{"owner": viewer},
				}}}},
				{{Key: "$sort", Value: basesvc.SortNewestFirst()}},
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
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"totalVideos": bson.M{"$size": "$videos"},
			"totalViews":  bson.M{"$sum": "$videos.views"},
		}}},
	}

	detail, err := basesvc.AggregateOne[playlistdto.PlaylistDetail](ctx, s.Collection(), pipeline)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update cập nhật name/description. Chỉ chủ playlist được sửa.
func (s *PlaylistService) Update(ctx context.Context, id, owner primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (playlistmodels.Playlist, error) {
	var zero playlistmodels.Playlist

	if _, err := basesvc.EnsureOwner(ctx, s, id, owner, s.ownerOf); err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return zero, common.ErrRequiredField
	}

	return s.UpdateOne(ctx, bson.M{"_id": id, "owner": owner}, &basesvc.UpdateData{Set: set}, nil)
}

// AddVideo thêm video vào playlist, không trùng lặp ($addToSet).
// Video không tồn tại hoặc chủ playlist không thấy được trả về 404.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, owner primitive.ObjectID) (playlistmodels.Playlist, error) {
	var zero playlistmodels.Playlist

	if _, err := basesvc.EnsureOwner(ctx, s, playlistID, owner, s.ownerOf); err != nil {
		return zero, err
	}

	count, err := s.videos.CountDocuments(ctx, bson.M{
		"_id": videoID,
		"$or": []bson.M{
			{"isPublished": true},
			{"owner": owner},
		},
	})
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if count == 0 {
		return zero, common.ErrNotFound
	}

	return s.UpdateOne(ctx, bson.M{"_id": playlistID, "owner": owner}, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"videos": videoID},
	}, nil)
}

// RemoveVideo gỡ video khỏi playlist. Chỉ chủ playlist được thao tác.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, owner primitive.ObjectID) (playlistmodels.Playlist, error) {
	var zero playlistmodels.Playlist

	if _, err := basesvc.EnsureOwner(ctx, s, playlistID, owner, s.ownerOf); err != nil {
		return zero, err
	}

	return s.UpdateOne(ctx, bson.M{"_id": playlistID, "owner": owner}, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}, nil)
}

// Delete xóa playlist. Chỉ chủ playlist được xóa, video bên trong không bị ảnh hưởng.
func (s *PlaylistService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := basesvc.EnsureOwner(ctx, s, id, owner, s.ownerOf); err != nil {
		return err
	}

	return s.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
}
