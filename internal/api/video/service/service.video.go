// Package videosvc - nghiệp vụ quản lý video: publish, cập nhật, xóa cascade.
package videosvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "video_tube/internal/api/base/service"
	videodto "video_tube/internal/api/video/dto"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
)

// VideoService là service quản lý video.
// Giữ thêm collection likes/comments/playlists để dọn dữ liệu liên quan khi xóa video.
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
	likes     *mongo.Collection
	comments  *mongo.Collection
	playlists *mongo.Collection
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likes, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	comments, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	playlists, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Video](collection),
		likes:                likes,
		comments:             comments,
		playlists:            playlists,
	}, nil
}

// Publish tạo video mới ở trạng thái đã publish.
// videoURL/thumbURL là URL media đã upload xong ở handler.
func (s *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, input *videodto.VideoPublishInput, videoURL, thumbURL string) (videomodels.Video, error) {
	video := videomodels.Video{
		Owner:       owner,
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Duration:    input.Duration,
		IsPublished: true,
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		return created, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":   "video_publish",
		"video_id": created.ID.Hex(),
		"owner":    owner.Hex(),
	}).Info("Publish video mới")
	return created, nil
}

// Update cập nhật title/description/thumbnail. Chỉ chủ video được sửa.
// Trả về video sau cập nhật và URL thumbnail cũ (rỗng nếu không đổi) để dọn storage.
func (s *VideoService) Update(ctx context.Context, id, owner primitive.ObjectID, input *videodto.VideoUpdateInput, newThumbURL string) (videomodels.Video, string, error) {
	var zero videomodels.Video

	current, err := basesvc.EnsureOwner(ctx, s, id, owner, func(v videomodels.Video) primitive.ObjectID { return v.Owner })
	if err != nil {
		return zero, "", err
	}

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	oldThumb := ""
	if newThumbURL != "" {
		set["thumbnail"] = newThumbURL
		oldThumb = current.Thumbnail
	}
	if len(set) == 0 {
		return zero, "", common.ErrRequiredField
	}

	// Filter kèm owner để chặn race khi quyền sở hữu thay đổi giữa hai bước
	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "owner": owner}, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return zero, "", err
	}
	return updated, oldThumb, nil
}

// TogglePublish đảo trạng thái publish của video. Chỉ chủ video được thao tác.
func (s *VideoService) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (videomodels.Video, error) {
	var zero videomodels.Video

	current, err := basesvc.EnsureOwner(ctx, s, id, owner, func(v videomodels.Video) primitive.ObjectID { return v.Owner })
	if err != nil {
		return zero, err
	}

	return s.UpdateOne(ctx, bson.M{"_id": id, "owner": owner}, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": !current.IsPublished},
	}, nil)
}

// Delete xóa video kèm toàn bộ dữ liệu liên quan: like của video, bình luận
// và like của bình luận, tham chiếu trong playlist. Trả về video đã xóa để
// handler dọn file media. Chỉ chủ video được xóa.
func (s *VideoService) Delete(ctx context.Context, id, owner primitive.ObjectID) (videomodels.Video, error) {
	var zero videomodels.Video

	video, err := basesvc.EnsureOwner(ctx, s, id, owner, func(v videomodels.Video) primitive.ObjectID { return v.Owner })
	if err != nil {
		return zero, err
	}

	// Gom id bình luận trước để dọn like của chúng
	commentIDs, err := s.collectCommentIDs(ctx, id)
	if err != nil {
		return zero, err
	}

	likeFilter := bson.M{"video": id}
	if len(commentIDs) > 0 {
		likeFilter = bson.M{"$or": []bson.M{
			{"video": id},
			{"comment": bson.M{"$in": commentIDs}},
		}}
	}
	if _, err := s.likes.DeleteMany(ctx, likeFilter); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	if _, err := s.comments.DeleteMany(ctx, bson.M{"video": id}); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	if _, err := s.playlists.UpdateMany(ctx, bson.M{"videos": id}, bson.M{
		"$pull": bson.M{"videos": id},
	}); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	if err := s.DeleteOne(ctx, bson.M{"_id": id, "owner": owner}); err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":   "video_delete",
		"video_id": id.Hex(),
		"owner":    owner.Hex(),
		"comments": len(commentIDs),
	}).Info("Xóa video và dữ liệu liên quan")
	return video, nil
}

func (s *VideoService) collectCommentIDs(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := s.comments.Find(ctx, bson.M{"video": videoID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
