package utility

import (
	"github.com/dgrijalva/jwt-go"

	"video_tube/internal/common"
)

// CreateToken ký một JWT (HS256) với secret và claims cho trước.
func CreateToken(secret string, claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken xác thực chữ ký và parse claims từ token string.
// Trả về common.ErrTokenExpired nếu token hết hạn, common.ErrTokenInvalid cho mọi lỗi khác.
func ParseToken(secret string, tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return common.ErrTokenExpired
		}
		return common.ErrTokenInvalid
	}
	if !token.Valid {
		return common.ErrTokenInvalid
	}
	return nil
}
