// Package userrouter đăng ký các route /users.
package userrouter

import (
	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	"video_tube/internal/api/router"
	userhdl "video_tube/internal/api/user/handler"
)

// Register đăng ký route cho domain user lên group /api/v1.
//
// Prefix /users có cả route công khai (register/login) lẫn route cần đăng nhập
// nên cả group dùng OptionalAuthMiddleware; các handler cần đăng nhập tự chặn
// qua RequireViewer (xem cảnh báo về middleware theo prefix trong routes.go).
func Register(v1 fiber.Router, _ *router.Router) error {
	handler, err := userhdl.NewUserHandler()
	if err != nil {
		return err
	}

	users := router.NewGroupWithMiddleware(v1, "/users", middleware.OptionalAuthMiddleware())

	users.Post("/register", handler.HandleRegister)
	users.Post("/login", handler.HandleLogin)
	users.Post("/refresh-token", handler.HandleRefreshToken)
	users.Post("/logout", handler.HandleLogout)
	users.Post("/change-password", handler.HandleChangePassword)
	users.Get("/me", handler.HandleCurrentUser)
	users.Patch("/me", handler.HandleUpdateAccount)
	users.Patch("/avatar", handler.HandleUpdateAvatar)
	users.Patch("/cover-image", handler.HandleUpdateCoverImage)
	users.Get("/history", handler.HandleWatchHistory)
	users.Get("/c/:username", handler.HandleChannelProfile)

	return nil
}
