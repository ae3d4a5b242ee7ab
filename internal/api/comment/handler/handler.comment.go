// Package commenthdl - handler HTTP cho domain bình luận.
package commenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	commentdto "video_tube/internal/api/comment/dto"
	commentmodels "video_tube/internal/api/comment/models"
	commentsvc "video_tube/internal/api/comment/service"
)

// CommentHandler xử lý các route /comments
type CommentHandler struct {
	*basehdl.BaseHandler[commentmodels.Comment, commentdto.CommentAddInput, commentdto.CommentUpdateInput]
	service *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	service, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, err
	}

	return &CommentHandler{
		BaseHandler: basehdl.NewBaseHandler[commentmodels.Comment, commentdto.CommentAddInput, commentdto.CommentUpdateInput](service),
		service:     service,
	}, nil
}

// HandleListForVideo danh sách bình luận của một video, có phân trang
// @Router /api/v1/comments/{videoId} [get]
func (h *CommentHandler) HandleListForVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParseObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.ListForVideo(c.Context(), videoID, h.ViewerID(c), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAdd thêm bình luận vào video
// @Router /api/v1/comments/{videoId} [post]
func (h *CommentHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(commentdto.CommentAddInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.service.Add(c.Context(), videoID, viewer, input)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleUpdate sửa nội dung bình luận của chính mình
// @Router /api/v1/comments/c/{id} [patch]
func (h *CommentHandler) HandleUpdate(c fiber.Ctx) error {
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

		input := new(commentdto.CommentUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.service.Update(c.Context(), id, viewer, input)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDelete xóa bình luận của chính mình
// @Router /api/v1/comments/c/{id} [delete]
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
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
