// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// phiên kết nối MongoDB/Redis, validator và registry các collection.
package global

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"video_tube/config"
	"video_tube/internal/media"
	"video_tube/internal/registry"
	"video_tube/internal/views"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Tweets        string // Tên collection cho tweet
	Likes         string // Tên collection cho cạnh like (video/comment/tweet)
	Subscriptions string // Tên collection cho cạnh đăng ký kênh
	Playlists     string // Tên collection cho playlist
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection
var Redis_Session *redis.Client                // Phiên kết nối tới Redis (view counter)
var MediaStorage *media.Storage                // Client lưu trữ media trên MinIO
var ViewCounter *views.Counter                 // Bộ đệm view counter (Redis)

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
