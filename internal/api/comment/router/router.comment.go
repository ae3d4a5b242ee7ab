// Package commentrouter đăng ký các route /comments.
package commentrouter

import (
	"github.com/gofiber/fiber/v3"

	commenthdl "video_tube/internal/api/comment/handler"
	"video_tube/internal/api/middleware"
	"video_tube/internal/api/router"
)

// Register đăng ký route cho domain bình luận lên group /api/v1.
// Đọc công khai, ghi yêu cầu đăng nhập qua RequireViewer trong handler.
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return err
	}

	comments := router.NewGroupWithMiddleware(v1, "/comments", middleware.OptionalAuthMiddleware())

	comments.Get("/:videoId", handler.HandleListForVideo)
	comments.Post("/:videoId", handler.HandleAdd)
	comments.Patch("/c/:id", handler.HandleUpdate)
	comments.Delete("/c/:id", handler.HandleDelete)

	return nil
}
