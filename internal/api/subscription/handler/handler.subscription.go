// Package subscriptionhdl - handler HTTP cho domain đăng ký kênh.
package subscriptionhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	basesvc "video_tube/internal/api/base/service"
	subscriptionmodels "video_tube/internal/api/subscription/models"
	subscriptionsvc "video_tube/internal/api/subscription/service"
	"video_tube/internal/logger"
)

// SubscriptionHandler xử lý các route /subscriptions
type SubscriptionHandler struct {
	*basehdl.BaseHandler[subscriptionmodels.Subscription, interface{}, interface{}]
	service *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	service, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return nil, err
	}

	return &SubscriptionHandler{
		BaseHandler: basehdl.NewBaseHandler[subscriptionmodels.Subscription, interface{}, interface{}](service),
		service:     service,
	}, nil
}

// HandleToggle đảo trạng thái đăng ký của viewer với kênh
// @Router /api/v1/subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) HandleToggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := h.ParseObjectID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, edge, err := h.service.Toggle(c.Context(), channelID, viewer)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogEngagement(string(result)+"_subscription", "channel", channelID.Hex(), c)

		data := fiber.Map{"subscribed": result == basesvc.ToggleAdded}
		if result == basesvc.ToggleAdded {
			data["subscription"] = edge
		}
		h.HandleResponse(c, data, nil)
		return nil
	})
}

// HandleSubscribers danh sách người đăng ký của một kênh, có phân trang
// @Router /api/v1/subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) HandleSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.ParseObjectID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.Subscribers(c.Context(), channelID, h.ViewerID(c), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleSubscribedChannels danh sách kênh viewer đã đăng ký, có phân trang
// @Router /api/v1/subscriptions/me [get]
func (h *SubscriptionHandler) HandleSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.SubscribedChannels(c.Context(), viewer, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
