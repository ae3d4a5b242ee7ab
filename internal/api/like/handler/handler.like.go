// Package likehdl - handler HTTP cho domain like.
package likehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	basesvc "video_tube/internal/api/base/service"
	likemodels "video_tube/internal/api/like/models"
	likesvc "video_tube/internal/api/like/service"
	"video_tube/internal/logger"
)

// LikeHandler xử lý các route /likes
type LikeHandler struct {
	*basehdl.BaseHandler[likemodels.Like, interface{}, interface{}]
	service *likesvc.LikeService
}

// NewLikeHandler tạo mới LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	service, err := likesvc.NewLikeService()
	if err != nil {
		return nil, err
	}

	return &LikeHandler{
		BaseHandler: basehdl.NewBaseHandler[likemodels.Like, interface{}, interface{}](service),
		service:     service,
	}, nil
}

// handleToggle logic chung cho ba loại target: parse id, toggle rồi trả về
// trạng thái sau toggle. Khi cạnh vừa được thêm, response kèm document like mới.
func (h *LikeHandler) handleToggle(c fiber.Ctx, param, targetKind string,
	toggle func(ctx fiber.Ctx, targetID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error)) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		targetID, err := h.ParseObjectID(c, param)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, edge, err := toggle(c, targetID, viewer)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogEngagement(string(result)+"_like", targetKind, targetID.Hex(), c)

		data := fiber.Map{"liked": result == basesvc.ToggleAdded}
		if result == basesvc.ToggleAdded {
			data["like"] = edge
		}
		h.HandleResponse(c, data, nil)
		return nil
	})
}

// HandleToggleVideoLike đảo trạng thái like trên video
// @Router /api/v1/likes/toggle/v/{videoId} [post]
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.handleToggle(c, "videoId", "video", func(c fiber.Ctx, targetID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error) {
		return h.service.ToggleVideoLike(c.Context(), targetID, viewer)
	})
}

// HandleToggleCommentLike đảo trạng thái like trên bình luận
// @Router /api/v1/likes/toggle/c/{commentId} [post]
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.handleToggle(c, "commentId", "comment", func(c fiber.Ctx, targetID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error) {
		return h.service.ToggleCommentLike(c.Context(), targetID, viewer)
	})
}

// HandleToggleTweetLike đảo trạng thái like trên tweet
// @Router /api/v1/likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.handleToggle(c, "tweetId", "tweet", func(c fiber.Ctx, targetID, viewer primitive.ObjectID) (basesvc.ToggleResult, likemodels.Like, error) {
		return h.service.ToggleTweetLike(c.Context(), targetID, viewer)
	})
}

// HandleLikedVideos danh sách video viewer đã like, có phân trang
// @Router /api/v1/likes/videos [get]
func (h *LikeHandler) HandleLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.LikedVideos(c.Context(), viewer, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
