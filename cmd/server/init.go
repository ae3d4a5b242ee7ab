package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"video_tube/config"
	commentmodels "video_tube/internal/api/comment/models"
	likemodels "video_tube/internal/api/like/models"
	playlistmodels "video_tube/internal/api/playlist/models"
	subscriptionmodels "video_tube/internal/api/subscription/models"
	tweetmodels "video_tube/internal/api/tweet/models"
	usermodels "video_tube/internal/api/user/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/database"
	"video_tube/internal/global"
	"video_tube/internal/media"
	"video_tube/internal/views"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Tên các collection trong database
	initValidator()        // Validator với các rule tùy biến
	initConfig()           // Cấu hình server từ env
	initDatabase_MongoDB() // Kết nối MongoDB và tạo index
	initRedis()            // Redis cho bộ đệm view counter
	initMediaStorage()     // MinIO cho media
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Playlists = "playlists"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator (global.InitValidator đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB và tạo index cho toàn bộ model
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	ctx := context.TODO()

	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.Users, usermodels.User{}},
		{global.MongoDB_ColNames.Videos, videomodels.Video{}},
		{global.MongoDB_ColNames.Comments, commentmodels.Comment{}},
		{global.MongoDB_ColNames.Tweets, tweetmodels.Tweet{}},
		{global.MongoDB_ColNames.Likes, likemodels.Like{}},
		{global.MongoDB_ColNames.Subscriptions, subscriptionmodels.Subscription{}},
		{global.MongoDB_ColNames.Playlists, playlistmodels.Playlist{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(ctx, db.Collection(target.colName), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", target.colName, err)
		}
	}
	logrus.Info("Ensured collection indexes")
}

// initRedis kết nối Redis cho bộ đệm view counter
func initRedis() {
	cfg := global.ServerConfig
	global.Redis_Session = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := global.Redis_Session.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	logrus.Info("Connected to Redis")
}

// initMediaStorage khởi tạo client MinIO và đảm bảo bucket tồn tại
func initMediaStorage() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storage, err := media.NewStorage(ctx, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize media storage: %v", err)
	}
	global.MediaStorage = storage
	logrus.Info("Initialized media storage")
}

// InitViewCounter khởi tạo và chạy bộ đệm view counter.
// Gọi sau InitRegistry vì cần collection videos.
func InitViewCounter() {
	videos := global.MongoDB_Session.
		Database(global.ServerConfig.MongoDB_DBName).
		Collection(global.MongoDB_ColNames.Videos)

	interval := time.Duration(global.ServerConfig.ViewFlushSecs) * time.Second
	global.ViewCounter = views.NewCounter(global.Redis_Session, videos, interval)
	global.ViewCounter.Start()
	logrus.Info("Started view counter worker")
}
