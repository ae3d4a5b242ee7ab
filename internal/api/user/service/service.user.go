// Package usersvc - nghiệp vụ tài khoản, phiên đăng nhập và hồ sơ kênh.
package usersvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "video_tube/internal/api/base/service"
	userdto "video_tube/internal/api/user/dto"
	usermodels "video_tube/internal/api/user/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// UserService là service quản lý tài khoản người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[usermodels.User](collection),
	}, nil
}

// Register đăng ký tài khoản mới. Username/email trùng trả về lỗi 409.
// avatarURL/coverURL là URL media đã upload xong ở handler.
func (s *UserService) Register(ctx context.Context, input *userdto.UserRegisterInput, avatarURL, coverURL string) (usermodels.User, error) {
	var zero usermodels.User

	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Báo 409 sớm với message rõ ràng; unique index vẫn là chốt chặn cuối
	existed, err := s.DocumentExists(ctx, bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}})
	if err != nil {
		return zero, err
	}
	if existed {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, err
	}

	user := usermodels.User{
		Username:   username,
		Email:      email,
		FullName:   input.FullName,
		Password:   hashed,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":  "user_register",
		"user_id": created.ID.Hex(),
	}).Info("Đăng ký tài khoản mới")

	created.Password = ""
	return created, nil
}

// Login xác thực bằng username hoặc email, trả về user kèm cặp token.
// Refresh token được lưu lại trên user để so khớp khi refresh.
func (s *UserService) Login(ctx context.Context, input *userdto.UserLoginInput) (*userdto.LoginResult, error) {
	var or []bson.M
	if input.Username != "" {
		or = append(or, bson.M{"username": strings.ToLower(input.Username)})
	}
	if input.Email != "" {
		or = append(or, bson.M{"email": strings.ToLower(input.Email)})
	}
	if len(or) == 0 {
		return nil, common.ErrRequiredField
	}

	user, err := s.FindOne(ctx, bson.M{"$or": or}, nil)
	if err != nil {
		// Không lộ user tồn tại hay không qua login
		return nil, common.ErrInvalidCredentials
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.generateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	}); err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":  "user_login",
		"user_id": user.ID.Hex(),
	}).Info("Đăng nhập thành công")

	user.Password = ""
	return &userdto.LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken đổi refresh token hợp lệ lấy cặp token mới (rotation).
// Token phải parse được bằng refresh secret VÀ trùng với token đang lưu trên user.
func (s *UserService) RefreshAccessToken(ctx context.Context, refreshToken string) (*userdto.TokenPair, error) {
	claims := &usermodels.JwtToken{}
	if err := utility.ParseToken(global.ServerConfig.RefreshTokenSecret, refreshToken, claims); err != nil {
		return nil, err
	}

	userID, err := utility.String2ObjectID(claims.UserID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		// Token đã bị thu hồi (logout) hoặc đã rotate
		return nil, common.ErrTokenInvalid
	}

	accessToken, newRefreshToken, err := s.generateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": newRefreshToken},
	}); err != nil {
		return nil, err
	}

	return &userdto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout thu hồi refresh token của user
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	})
	if err != nil {
		return err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":  "user_logout",
		"user_id": userID.Hex(),
	}).Info("Đăng xuất")
	return nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *userdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(user.Password, input.OldPassword); err != nil {
		return err
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashed},
	})
	return err
}

// CurrentUser trả về user hiện tại, không kèm các trường nhạy cảm
func (s *UserService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (usermodels.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return user, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

// UpdateAccount cập nhật fullName/email. Email trùng sẽ bị unique index chặn (409).
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *userdto.UpdateAccountInput) (usermodels.User, error) {
	set := map[string]interface{}{}
	if input.FullName != "" {
		set["fullName"] = input.FullName
	}
	if input.Email != "" {
		set["email"] = strings.ToLower(input.Email)
	}
	if len(set) == 0 {
		var zero usermodels.User
		return zero, common.ErrRequiredField
	}

	user, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return user, err
	}
	user.Password = ""
	return user, nil
}

// UpdateImage cập nhật avatar hoặc coverImage, trả về user mới và URL ảnh cũ để dọn storage
func (s *UserService) UpdateImage(ctx context.Context, userID primitive.ObjectID, field, url string) (usermodels.User, string, error) {
	var zero usermodels.User
	if field != "avatar" && field != "coverImage" {
		return zero, "", common.ErrInvalidInput
	}

	current, err := s.FindOneById(ctx, userID)
	if err != nil {
		return zero, "", err
	}

	oldURL := current.Avatar
	if field == "coverImage" {
		oldURL = current.CoverImage
	}

	user, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{field: url},
	})
	if err != nil {
		return zero, "", err
	}
	user.Password = ""
	return user, oldURL, nil
}

// generateTokenPair tạo access token và refresh token mới cho user
func (s *UserService) generateTokenPair(userID primitive.ObjectID) (string, string, error) {
	now := time.Now()

	accessClaims := &usermodels.JwtToken{
		UserID:       userID.Hex(),
		Time:         now.Format(time.RFC3339),
		RandomNumber: strconv.FormatInt(now.UnixNano(), 10),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(time.Duration(global.ServerConfig.AccessTokenExpiry) * time.Second).Unix(),
		},
	}
	accessToken, err := utility.CreateToken(global.ServerConfig.AccessTokenSecret, accessClaims)
	if err != nil {
		return "", "", err
	}

	refreshClaims := &usermodels.JwtToken{
		UserID:       userID.Hex(),
		Time:         now.Format(time.RFC3339),
		RandomNumber: strconv.FormatInt(now.UnixNano()+1, 10),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(time.Duration(global.ServerConfig.RefreshTokenExpiry) * time.Second).Unix(),
		},
	}
	refreshToken, err := utility.CreateToken(global.ServerConfig.RefreshTokenSecret, refreshClaims)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
