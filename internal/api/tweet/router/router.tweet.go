// Package tweetrouter đăng ký các route /tweets.
package tweetrouter

import (
	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	"video_tube/internal/api/router"
	tweethdl "video_tube/internal/api/tweet/handler"
)

// Register đăng ký route cho domain tweet lên group /api/v1.
// Đọc công khai, ghi yêu cầu đăng nhập qua RequireViewer trong handler.
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return err
	}

	tweets := router.NewGroupWithMiddleware(v1, "/tweets", middleware.OptionalAuthMiddleware())

	tweets.Post("/", handler.HandleCreate)
	tweets.Get("/user/:userId", handler.HandleListByUser)
	tweets.Patch("/:id", handler.HandleUpdate)
	tweets.Delete("/:id", handler.HandleDelete)

	return nil
}
