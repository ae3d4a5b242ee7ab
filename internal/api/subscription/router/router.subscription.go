// Package subscriptionrouter đăng ký các route /subscriptions.
package subscriptionrouter

import (
	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	"video_tube/internal/api/router"
	subscriptionhdl "video_tube/internal/api/subscription/handler"
)

// Register đăng ký route cho domain đăng ký kênh lên group /api/v1.
// Danh sách subscriber đọc công khai, toggle và danh sách kênh của mình
// yêu cầu đăng nhập qua RequireViewer trong handler.
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := subscriptionhdl.NewSubscriptionHandler()
	if err != nil {
		return err
	}

	subscriptions := router.NewGroupWithMiddleware(v1, "/subscriptions", middleware.OptionalAuthMiddleware())

	subscriptions.Post("/c/:channelId", handler.HandleToggle)
	subscriptions.Get("/c/:channelId", handler.HandleSubscribers)
	subscriptions.Get("/me", handler.HandleSubscribedChannels)

	return nil
}
