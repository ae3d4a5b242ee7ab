package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// JWT Configuration
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,required"`          // Bí mật ký access token
	AccessTokenExpiry  int    `env:"ACCESS_TOKEN_EXPIRY" envDefault:"86400"`  // TTL access token (giây)
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,required"`         // Bí mật ký refresh token
	RefreshTokenExpiry int    `env:"REFRESH_TOKEN_EXPIRY" envDefault:"864000"` // TTL refresh token (giây)

	// Redis Configuration (bộ đệm view counter)
	RedisAddress  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"` // Địa chỉ Redis
	RedisPassword string `env:"REDIS_PASSWORD"`                            // Mật khẩu Redis (optional)
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`                   // DB index
	ViewFlushSecs int    `env:"VIEW_FLUSH_SECONDS" envDefault:"30"`        // Chu kỳ flush view counter về Mongo (giây)

	// MinIO Configuration (media storage)
	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"` // Endpoint MinIO
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`                           // Access key
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`                           // Secret key
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"video-tube"`       // Bucket chứa media
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`           // Dùng https khi kết nối MinIO
	MinioPublicURL string `env:"MINIO_PUBLIC_URL"`                           // Base URL public của media (optional, mặc định dựng từ endpoint)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
