// Package dto - cấu trúc vào/ra cho domain playlist.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	videodto "video_tube/internal/api/video/dto"
)

// PlaylistCreateInput dữ liệu tạo playlist mới
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,max=128,no_xss"`
	Description string `json:"description" validate:"omitempty,max=2048,no_xss"`
}

// PlaylistUpdateInput dữ liệu cập nhật playlist, field rỗng giữ nguyên giá trị cũ
type PlaylistUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,max=128,no_xss"`
	Description string `json:"description" validate:"omitempty,max=2048,no_xss"`
}

// PlaylistSummary playlist trong danh sách của một kênh, kèm số liệu
// tính tại thời điểm đọc từ các video còn tồn tại
type PlaylistSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	TotalVideos int64              `json:"totalVideos" bson:"totalVideos"`
	TotalViews  int64              `json:"totalViews" bson:"totalViews"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail playlist kèm nội dung video theo góc nhìn của viewer
type PlaylistDetail struct {
	ID          primitive.ObjectID        `json:"id" bson:"_id"`
	Name        string                    `json:"name" bson:"name"`
	Description string                    `json:"description" bson:"description"`
	Owner       primitive.ObjectID        `json:"owner" bson:"owner"`
	TotalVideos int64                     `json:"totalVideos" bson:"totalVideos"`
	TotalViews  int64                     `json:"totalViews" bson:"totalViews"`
	CreatedAt   int64                     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                     `json:"updatedAt" bson:"updatedAt"`
	Videos      []videodto.VideoWithOwner `json:"videos" bson:"videos"`
}
