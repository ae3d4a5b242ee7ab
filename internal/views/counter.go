// Package views đệm lượt xem video trong Redis và flush định kỳ về MongoDB.
// Views trên document Video là counter duy nhất được lưu trữ; số đọc từ Mongo
// có thể trễ một chu kỳ flush so với thực tế.
package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"video_tube/internal/logger"
	"video_tube/internal/utility"
)

// viewHashKey là hash Redis chứa các bộ đếm chưa flush, field = video id hex
const viewHashKey = "video_tube:view_counts"

// Counter đệm các lượt tăng view và flush về collection videos theo chu kỳ
type Counter struct {
	redis    *redis.Client
	videos   *mongo.Collection
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewCounter tạo Counter mới, chưa chạy worker cho tới khi gọi Start
func NewCounter(rdb *redis.Client, videos *mongo.Collection, interval time.Duration) *Counter {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Counter{
		redis:    rdb,
		videos:   videos,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Increment tăng bộ đếm view cho một video trong Redis.
// Lỗi Redis không được nuốt ở đây, caller quyết định có chặn request hay không.
func (c *Counter) Increment(ctx context.Context, videoID primitive.ObjectID) error {
	return c.redis.HIncrBy(ctx, viewHashKey, videoID.Hex(), 1).Err()
}

// Flush chuyển toàn bộ bộ đếm đang đệm về field views trên Mongo ($inc).
// Hash được rename sang key tạm trước khi đọc để không mất increment tới trong lúc flush.
func (c *Counter) Flush(ctx context.Context) error {
	tmpKey := fmt.Sprintf("%s:flush:%d", viewHashKey, time.Now().UnixNano())

	if err := c.redis.Rename(ctx, viewHashKey, tmpKey).Err(); err != nil {
		if err == redis.Nil || err.Error() == "ERR no such key" {
			return nil // Không có view nào cần flush
		}
		return err
	}

	counts, err := c.redis.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}

	for idHex, countStr := range counts {
		videoID, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			logger.GetAppLogger().WithField("video_id", idHex).Warn("Bỏ qua view counter với video id hỏng")
			continue
		}

		var count int64
		if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
			continue
		}

		_, err = c.videos.UpdateOne(ctx,
			bson.M{"_id": videoID},
			bson.M{"$inc": bson.M{"views": count}},
		)
		if err != nil {
			// Đẩy lại bộ đếm vào hash chính để chu kỳ sau flush tiếp, không mất view
			if backErr := c.redis.HIncrBy(ctx, viewHashKey, idHex, count).Err(); backErr != nil {
				logger.GetErrorLogger().WithFields(logrus.Fields{
					"video_id": idHex,
					"count":    count,
				}).WithError(backErr).Error("Mất view counter: không ghi được Mongo lẫn Redis")
			}
		}
	}

	return c.redis.Del(ctx, tmpKey).Err()
}

// Start chạy worker flush định kỳ trong goroutine riêng
func (c *Counter) Start() {
	go func() {
		defer close(c.done)

		// Panic trong worker chỉ dừng worker, không kéo sập server
		utility.GoProtect(func() {
			ticker := time.NewTicker(c.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					if err := c.Flush(ctx); err != nil {
						logger.GetAppLogger().WithError(err).Warn("Flush view counter thất bại")
					}
					cancel()
				case <-c.stop:
					return
				}
			}
		})
	}()
}

// Stop dừng worker và flush nốt các bộ đếm còn lại
func (c *Counter) Stop(ctx context.Context) error {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
	return c.Flush(ctx)
}
