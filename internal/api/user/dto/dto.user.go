// Package dto - các cấu trúc input/output cho domain user.
package dto

// UserRegisterInput dữ liệu đầu vào khi đăng ký tài khoản (phần text của multipart form)
type UserRegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=32,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"fullName" form:"fullName" validate:"required,max=128,no_xss"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// UserLoginInput dữ liệu đầu vào khi đăng nhập, chấp nhận username hoặc email
type UserLoginInput struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput chứa refresh token cần đổi lấy cặp token mới
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordInput dữ liệu đổi mật khẩu
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput các trường account được phép sửa
type UpdateAccountInput struct {
	FullName string `json:"fullName" validate:"omitempty,max=128,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// ChannelProfileParams param username trên URI
type ChannelProfileParams struct {
	Username string `uri:"username" validate:"required,min=3"`
}
