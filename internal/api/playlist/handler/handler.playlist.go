// Package playlisthdl - handler HTTP cho domain playlist.
package playlisthdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistmodels "video_tube/internal/api/playlist/models"
	playlistsvc "video_tube/internal/api/playlist/service"
)

// PlaylistHandler xử lý các route /playlists
type PlaylistHandler struct {
	*basehdl.BaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput]
	service *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	service, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, err
	}

	return &PlaylistHandler{
		BaseHandler: basehdl.NewBaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput](service),
		service:     service,
	}, nil
}

// HandleCreate tạo playlist mới
// @Router /api/v1/playlists [post]
func (h *PlaylistHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(playlistdto.PlaylistCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.service.Create(c.Context(), viewer, input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleListByUser danh sách playlist của một kênh, có phân trang
// @Router /api/v1/playlists/user/{userId} [get]
func (h *PlaylistHandler) HandleListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParseObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.ListByUser(c.Context(), userID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetByID playlist kèm nội dung video theo góc nhìn của viewer
// @Router /api/v1/playlists/{id} [get]
func (h *PlaylistHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		detail, err := h.service.GetDetail(c.Context(), id, h.ViewerID(c))
		h.HandleResponse(c, detail, err)
		return nil
	})
}

// HandleUpdate cập nhật name/description của playlist
// @Router /api/v1/playlists/{id} [patch]
func (h *PlaylistHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(playlistdto.PlaylistUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.service.Update(c.Context(), id, viewer, input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDelete xóa playlist
// @Router /api/v1/playlists/{id} [delete]
func (h *PlaylistHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), id, viewer)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// handleVideoMutation logic chung cho thêm/gỡ video khỏi playlist
func (h *PlaylistHandler) handleVideoMutation(c fiber.Ctx,
	mutate func(c fiber.Ctx, playlistID, videoID, viewer primitive.ObjectID) (playlistmodels.Playlist, error)) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParseObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ParseObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := mutate(c, playlistID, videoID, viewer)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleAddVideo thêm video vào playlist
// @Router /api/v1/playlists/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.handleVideoMutation(c, func(c fiber.Ctx, playlistID, videoID, viewer primitive.ObjectID) (playlistmodels.Playlist, error) {
		return h.service.AddVideo(c.Context(), playlistID, videoID, viewer)
	})
}

// HandleRemoveVideo gỡ video khỏi playlist
// @Router /api/v1/playlists/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.handleVideoMutation(c, func(c fiber.Ctx, playlistID, videoID, viewer primitive.ObjectID) (playlistmodels.Playlist, error) {
		return h.service.RemoveVideo(c.Context(), playlistID, videoID, viewer)
	})
}
