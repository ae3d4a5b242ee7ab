// Package likerouter đăng ký các route /likes.
package likerouter

import (
	"github.com/gofiber/fiber/v3"

	likehdl "video_tube/internal/api/like/handler"
	"video_tube/internal/api/middleware"
	"video_tube/internal/api/router"
)

// Register đăng ký route cho domain like lên group /api/v1.
// Mọi route like đều cần đăng nhập nên cả group dùng AuthMiddleware.
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := likehdl.NewLikeHandler()
	if err != nil {
		return err
	}

	likes := router.NewGroupWithMiddleware(v1, "/likes", middleware.AuthMiddleware())

	likes.Post("/toggle/v/:videoId", handler.HandleToggleVideoLike)
	likes.Post("/toggle/c/:commentId", handler.HandleToggleCommentLike)
	likes.Post("/toggle/t/:tweetId", handler.HandleToggleTweetLike)
	likes.Get("/videos", handler.HandleLikedVideos)

	return nil
}
