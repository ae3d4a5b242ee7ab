// Package videohdl - handler HTTP cho domain video.
package videohdl

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	usersvc "video_tube/internal/api/user/service"
	videodto "video_tube/internal/api/video/dto"
	videomodels "video_tube/internal/api/video/models"
	videosvc "video_tube/internal/api/video/service"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/media"
)

// VideoHandler xử lý các route /videos.
// Giữ thêm UserService để ghi lịch sử xem khi viewer mở video.
type VideoHandler struct {
	*basehdl.BaseHandler[videomodels.Video, videodto.VideoPublishInput, videodto.VideoUpdateInput]
	service     *videosvc.VideoService
	userService *usersvc.UserService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	service, err := videosvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &VideoHandler{
		BaseHandler: basehdl.NewBaseHandler[videomodels.Video, videodto.VideoPublishInput, videodto.VideoUpdateInput](service),
		service:     service,
		userService: userService,
	}, nil
}

func (h *VideoHandler) uploadHeader(c fiber.Ctx, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err)
	}
	defer file.Close()

	objectName := media.ObjectName(prefix, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	return global.MediaStorage.Upload(c.Context(), objectName, file, fileHeader.Size, contentType)
}

// HandlePublish upload video mới (multipart: videoFile + thumbnail bắt buộc)
// @Router /api/v1/videos [post]
func (h *VideoHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(videodto.VideoPublishInput)
		if err := h.ParseRequestForm(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoHeader, err := c.FormFile("videoFile")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file videoFile", common.StatusBadRequest, err))
			return nil
		}
		thumbHeader, err := c.FormFile("thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file thumbnail", common.StatusBadRequest, err))
			return nil
		}

		videoURL, err := h.uploadHeader(c, videoHeader, "videos")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		thumbURL, err := h.uploadHeader(c, thumbHeader, "thumbnails")
		if err != nil {
			// Video đã lên storage nhưng thumbnail hỏng thì dọn luôn
			_ = global.MediaStorage.Remove(c.Context(), videoURL)
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.service.Publish(c.Context(), viewer, input, videoURL, thumbURL)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleList danh sách video đã publish, có tìm kiếm / sắp xếp / phân trang
// @Router /api/v1/videos [get]
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := new(videodto.VideoListQuery)
		if err := h.ParseRequestQuery(c, query); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.List(c.Context(), query, h.ViewerID(c), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetByID trang chi tiết video. Mỗi lần mở sẽ tăng đếm view (đệm Redis)
// và ghi vào lịch sử xem nếu viewer đã đăng nhập.
// @Router /api/v1/videos/{id} [get]
func (h *VideoHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		viewer := h.ViewerID(c)
		detail, err := h.service.GetDetail(c.Context(), id, viewer)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := global.ViewCounter.Increment(c.Context(), id); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Không tăng được lượt xem video " + id.Hex())
		}
		if !viewer.IsZero() {
			if err := h.userService.RecordWatch(c.Context(), viewer, id); err != nil {
				logger.GetErrorLogger().WithError(err).Warn("Không ghi được lịch sử xem cho user " + viewer.Hex())
			}
		}

		h.HandleResponse(c, detail, nil)
		return nil
	})
}

// HandleUpdate cập nhật title/description/thumbnail (multipart, thumbnail tùy chọn)
// @Router /api/v1/videos/{id} [patch]
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
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

		input := new(videodto.VideoUpdateInput)
		if err := h.ParseRequestForm(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		newThumbURL := ""
		if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
			newThumbURL, err = h.uploadHeader(c, thumbHeader, "thumbnails")
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		video, oldThumb, err := h.service.Update(c.Context(), id, viewer, input, newThumbURL)
		if err == nil && oldThumb != "" {
			_ = global.MediaStorage.Remove(c.Context(), oldThumb)
		}
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleDelete xóa video và toàn bộ dữ liệu liên quan, dọn cả file media
// @Router /api/v1/videos/{id} [delete]
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
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

		video, err := h.service.Delete(c.Context(), id, viewer)
		if err == nil {
			_ = global.MediaStorage.Remove(c.Context(), video.VideoFile)
			_ = global.MediaStorage.Remove(c.Context(), video.Thumbnail)
			logger.LogCRUD("delete", "video", id.Hex(), c, nil)
		}
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái publish của video
// @Router /api/v1/videos/toggle/publish/{id} [patch]
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
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

		video, err := h.service.TogglePublish(c.Context(), id, viewer)
		h.HandleResponse(c, video, err)
		return nil
	})
}
