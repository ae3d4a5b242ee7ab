// Package videorouter đăng ký các route /videos.
package videorouter

import (
	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	"video_tube/internal/api/router"
	videohdl "video_tube/internal/api/video/handler"
)

// Register đăng ký route cho domain video lên group /api/v1.
// Đọc công khai (viewer ẩn danh vẫn xem được video đã publish), ghi yêu cầu
// đăng nhập qua RequireViewer trong handler.
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := videohdl.NewVideoHandler()
	if err != nil {
		return err
	}

	videos := router.NewGroupWithMiddleware(v1, "/videos", middleware.OptionalAuthMiddleware())

	videos.Get("/", handler.HandleList)
	videos.Post("/", handler.HandlePublish)
	videos.Patch("/toggle/publish/:id", handler.HandleTogglePublish)
	videos.Get("/:id", handler.HandleGetByID)
	videos.Patch("/:id", handler.HandleUpdate)
	videos.Delete("/:id", handler.HandleDelete)

	return nil
}
