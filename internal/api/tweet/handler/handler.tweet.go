// Package tweethdl - handler HTTP cho domain tweet.
package tweethdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	tweetdto "video_tube/internal/api/tweet/dto"
	tweetmodels "video_tube/internal/api/tweet/models"
	tweetsvc "video_tube/internal/api/tweet/service"
)

// TweetHandler xử lý các route /tweets
type TweetHandler struct {
	*basehdl.BaseHandler[tweetmodels.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput]
	service *tweetsvc.TweetService
}

// NewTweetHandler tạo mới TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	service, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, err
	}

	return &TweetHandler{
		BaseHandler: basehdl.NewBaseHandler[tweetmodels.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput](service),
		service:     service,
	}, nil
}

// HandleCreate tạo tweet mới
// @Router /api/v1/tweets [post]
func (h *TweetHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(tweetdto.TweetCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.service.Create(c.Context(), viewer, input)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleListByUser danh sách tweet của một kênh, có phân trang
// @Router /api/v1/tweets/user/{userId} [get]
func (h *TweetHandler) HandleListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParseObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.ListByUser(c.Context(), userID, h.ViewerID(c), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate sửa nội dung tweet của chính mình
// @Router /api/v1/tweets/{id} [patch]
func (h *TweetHandler) HandleUpdate(c fiber.Ctx) error {
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

		input := new(tweetdto.TweetUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.service.Update(c.Context(), id, viewer, input)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDelete xóa tweet của chính mình
// @Router /api/v1/tweets/{id} [delete]
func (h *TweetHandler) HandleDelete(c fiber.Ctx) error {
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
