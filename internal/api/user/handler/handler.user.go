// Package userhdl - handler HTTP cho tài khoản người dùng và hồ sơ kênh.
package userhdl

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	userdto "video_tube/internal/api/user/dto"
	usermodels "video_tube/internal/api/user/models"
	usersvc "video_tube/internal/api/user/service"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/media"
)

// UserHandler xử lý các route /users
type UserHandler struct {
	*basehdl.BaseHandler[usermodels.User, userdto.UserRegisterInput, userdto.UpdateAccountInput]
	service *usersvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	service, err := usersvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[usermodels.User, userdto.UserRegisterInput, userdto.UpdateAccountInput](service),
		service:     service,
	}, nil
}

// uploadFormFile đẩy một file multipart lên storage, trả về URL công khai.
// required=false thì thiếu file không phải lỗi, trả về chuỗi rỗng.
func (h *UserHandler) uploadFormFile(c fiber.Ctx, field, prefix string, required bool) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if !required {
			return "", nil
		}
		return "", common.NewError(common.ErrCodeValidationInput, "Thiếu file "+field, common.StatusBadRequest, err)
	}

	return h.uploadHeader(c, fileHeader, prefix)
}

func (h *UserHandler) uploadHeader(c fiber.Ctx, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err)
	}
	defer file.Close()

	objectName := media.ObjectName(prefix, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	return global.MediaStorage.Upload(c.Context(), objectName, file, fileHeader.Size, contentType)
}

// HandleRegister đăng ký tài khoản mới (multipart: avatar bắt buộc, coverImage tùy chọn)
// @Summary Đăng ký tài khoản
// @Router /api/v1/users/register [post]
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(userdto.UserRegisterInput)
		if err := h.ParseRequestForm(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		avatarURL, err := h.uploadFormFile(c, "avatar", "avatars", true)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		coverURL, err := h.uploadFormFile(c, "coverImage", "covers", false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.Register(c.Context(), input, avatarURL, coverURL)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin đăng nhập bằng username hoặc email
// @Router /api/v1/users/login [post]
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(userdto.UserLoginInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.service.Login(c.Context(), input)
		if err == nil {
			logger.LogAuth("login", c, map[string]interface{}{"identifier": input.Username})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRefreshToken đổi refresh token lấy cặp token mới
// @Router /api/v1/users/refresh-token [post]
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(userdto.RefreshTokenInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pair, err := h.service.RefreshAccessToken(c.Context(), input.RefreshToken)
		h.HandleResponse(c, pair, err)
		return nil
	})
}

// HandleLogout thu hồi refresh token của user hiện tại
// @Router /api/v1/users/logout [post]
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Logout(c.Context(), viewer)
		if err == nil {
			logger.LogAuth("logout", c, nil)
		}
		h.HandleResponse(c, fiber.Map{"loggedOut": err == nil}, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của user hiện tại
// @Router /api/v1/users/change-password [post]
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(userdto.ChangePasswordInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.ChangePassword(c.Context(), viewer, input)
		h.HandleResponse(c, fiber.Map{"changed": err == nil}, err)
		return nil
	})
}

// HandleCurrentUser trả về thông tin user đang đăng nhập
// @Router /api/v1/users/me [get]
func (h *UserHandler) HandleCurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.CurrentUser(c.Context(), viewer)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAccount cập nhật fullName/email của user hiện tại
// @Router /api/v1/users/me [patch]
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(userdto.UpdateAccountInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.UpdateAccount(c.Context(), viewer, input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// handleUpdateImage logic chung cho đổi avatar và cover image
func (h *UserHandler) handleUpdateImage(c fiber.Ctx, formField, dbField, prefix string) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		url, err := h.uploadFormFile(c, formField, prefix, true)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, oldURL, err := h.service.UpdateImage(c.Context(), viewer, dbField, url)
		if err == nil && oldURL != "" {
			// Dọn ảnh cũ, lỗi xóa không chặn response
			_ = global.MediaStorage.Remove(c.Context(), oldURL)
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAvatar đổi ảnh đại diện
// @Router /api/v1/users/avatar [patch]
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	return h.handleUpdateImage(c, "avatar", "avatar", "avatars")
}

// HandleUpdateCoverImage đổi ảnh bìa kênh
// @Router /api/v1/users/cover-image [patch]
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	return h.handleUpdateImage(c, "coverImage", "coverImage", "covers")
}

// HandleChannelProfile hồ sơ kênh công khai theo username
// @Router /api/v1/users/c/{username} [get]
func (h *UserHandler) HandleChannelProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		params := new(userdto.ChannelProfileParams)
		if err := h.ParseRequestParams(c, params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		profile, err := h.service.ChannelProfile(c.Context(), params.Username, h.ViewerID(c))
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleWatchHistory lịch sử xem của user hiện tại, có phân trang
// @Router /api/v1/users/history [get]
func (h *UserHandler) HandleWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		viewer, err := h.RequireViewer(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		history, err := h.service.WatchHistory(c.Context(), viewer, page, limit)
		h.HandleResponse(c, history, err)
		return nil
	})
}
