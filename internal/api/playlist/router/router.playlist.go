// Package playlistrouter đăng ký các route /playlists.
package playlistrouter

import (
	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	playlisthdl "video_tube/internal/api/playlist/handler"
	"video_tube/internal/api/router"
)

// Register đăng ký route cho domain playlist lên group /api/v1.
// Đọc công khai, ghi yêu cầu đăng nhập qua RequireViewer trong handler.
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return err
	}

	playlists := router.NewGroupWithMiddleware(v1, "/playlists", middleware.OptionalAuthMiddleware())

	playlists.Post("/", handler.HandleCreate)
	playlists.Get("/user/:userId", handler.HandleListByUser)
	playlists.Patch("/add/:videoId/:playlistId", handler.HandleAddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", handler.HandleRemoveVideo)
	playlists.Get("/:id", handler.HandleGetByID)
	playlists.Patch("/:id", handler.HandleUpdate)
	playlists.Delete("/:id", handler.HandleDelete)

	return nil
}
