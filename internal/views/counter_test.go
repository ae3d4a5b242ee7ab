// Package views - Test bộ đệm view counter trên Redis, dùng miniredis thay Redis thật.
package views

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCounter(t *testing.T) (*Counter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewCounter(rdb, nil, time.Minute), mr
}

func TestCounter_IncrementTichLuy(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	videoA := primitive.NewObjectID()
	videoB := primitive.NewObjectID()

	for i := 0; i < 3; i++ {
		if err := counter.Increment(ctx, videoA); err != nil {
			t.Fatalf("Increment lỗi: %v", err)
		}
	}
	if err := counter.Increment(ctx, videoB); err != nil {
		t.Fatalf("Increment lỗi: %v", err)
	}

	if got := mr.HGet(viewHashKey, videoA.Hex()); got != "3" {
		t.Errorf("video A tăng 3 lần phải có counter=3, nhận %q", got)
	}
	if got := mr.HGet(viewHashKey, videoB.Hex()); got != "1" {
		t.Errorf("video B tăng 1 lần phải có counter=1, nhận %q", got)
	}
}

func TestCounter_FlushKhongCoDuLieu(t *testing.T) {
	counter, _ := newTestCounter(t)

	// Hash chưa tồn tại, flush phải là no-op không lỗi
	if err := counter.Flush(context.Background()); err != nil {
		t.Errorf("flush khi không có counter nào phải trả về nil, nhận: %v", err)
	}
}

func TestCounter_StopDungWorker(t *testing.T) {
	counter, _ := newTestCounter(t)
	counter.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Stop phải chờ worker thoát rồi flush nốt; không có dữ liệu nên không lỗi
	if err := counter.Stop(ctx); err != nil {
		t.Errorf("Stop với hash rỗng phải trả về nil, nhận: %v", err)
	}
}
