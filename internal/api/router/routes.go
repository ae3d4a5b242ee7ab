package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
)

// ============================================================================
// QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có bug với cách đăng ký middleware trực tiếp trong route.
// Middleware sẽ KHÔNG được gọi nếu dùng cách trực tiếp!
//
// CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware.AuthMiddleware(), handler)
//    → Middleware sẽ KHÔNG được gọi, request sẽ bỏ qua middleware!
//
// CÁCH ĐÚNG (PHẢI DÙNG):
//    authMiddleware := middleware.AuthMiddleware()
//    group := NewGroupWithMiddleware(router, "/prefix", authMiddleware)
//    group.Get("/path", handler)
//    → Middleware sẽ được gọi đúng cách thông qua .Use() method
//
// LƯU Ý THÊM: middleware gắn qua Group.Use() match theo PREFIX, nghĩa là áp cho
// MỌI route cùng prefix kể cả route đăng ký ở group khác. Mỗi prefix chỉ được
// có MỘT chế độ middleware; route công khai và route cần đăng nhập chung prefix
// thì cả group dùng OptionalAuthMiddleware và handler tự chặn qua RequireViewer.
//
// Nếu thấy route nào dùng cách trực tiếp router.Get/Post/Put/Delete(path, middleware, handler)
// → PHẢI SỬA NGAY thành NewGroupWithMiddleware!
//
// ============================================================================

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// NewGroupWithMiddleware tạo group theo prefix và gắn middleware qua .Use()
// (cách đúng theo Fiber v3). Mỗi prefix chỉ gọi hàm này MỘT lần.
//
// Ví dụ sử dụng:
//
//	authMiddleware := middleware.AuthMiddleware()
//	likes := NewGroupWithMiddleware(v1, "/likes", authMiddleware)
//	likes.Post("/toggle/v/:videoId", handler.HandleToggleVideoLike)
func NewGroupWithMiddleware(router fiber.Router, prefix string, middlewares ...fiber.Handler) fiber.Router {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw) // Dùng .Use() thay vì truyền trực tiếp
	}
	return routeGroup
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	if err := registerSystemRoutes(app); err != nil {
		return err
	}

	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}

// registerSystemRoutes đăng ký các route hệ thống (không versioned)
func registerSystemRoutes(app *fiber.App) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %v", err)
	}

	app.Get("/healthz", systemHandler.HandleHealth)

	return nil
}
