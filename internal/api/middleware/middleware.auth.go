package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	usermodels "video_tube/internal/api/user/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// extractBearerToken lấy JWT từ header Authorization, trả về chuỗi rỗng nếu không có
func extractBearerToken(c fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", common.ErrTokenInvalid
	}

	return parts[1], nil
}

// verifyAccessToken parse access token và trả về userID dưới dạng hex string
func verifyAccessToken(token string) (string, error) {
	claims := &usermodels.JwtToken{}
	if err := utility.ParseToken(global.ServerConfig.AccessTokenSecret, token, claims); err != nil {
		return "", err
	}
	if claims.UserID == "" {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}

// AuthMiddleware middleware xác thực bắt buộc cho Fiber.
// Request không có token hợp lệ bị chặn với 401, viewer được lưu vào c.Locals("user_id").
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if token == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		userID, err := verifyAccessToken(token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Invalid access token")
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// OptionalAuthMiddleware middleware xác thực tùy chọn cho các route đọc viewer-relative.
// Không có token thì request đi tiếp dưới dạng ẩn danh (không set user_id);
// có token nhưng token hỏng thì vẫn chặn 401 để client biết phiên đã hết hạn.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if token == "" {
			return c.Next()
		}

		userID, err := verifyAccessToken(token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
