package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/database"
	"video_tube/internal/global"
	"video_tube/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server trên main goroutine
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	// Tắt server theo trình tự khi nhận SIGINT/SIGTERM:
	// dừng nhận request, flush view counter, đóng kết nối
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Infof("Received signal %v, shutting down...", sig)

		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
	}()

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}

	// Listen đã trả về sau Shutdown: dọn các tài nguyên nền
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := global.ViewCounter.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Error stopping view counter")
	}
	if err := global.Redis_Session.Close(); err != nil {
		log.WithError(err).Error("Error closing Redis connection")
	}
	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		log.WithError(err).Error("Error closing MongoDB connection")
	}

	log.Info("Server stopped")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (config, MongoDB, Redis, MinIO)
	InitGlobal()

	// Khởi tạo registry collection
	InitRegistry()

	// Khởi tạo và chạy worker đếm lượt xem
	InitViewCounter()

	// Chạy Fiber server trên main thread
	main_thread()
}
