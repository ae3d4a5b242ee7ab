// Package registry - Test registry generic: register/get/clear thread-safe.
package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("videos", "collection-videos")
	assert.NoError(t, err)
	assert.True(t, isNew, "đăng ký lần đầu phải trả về isNew=true")

	item, exists := r.Get("videos")
	assert.True(t, exists)
	assert.Equal(t, "collection-videos", item)
}

func TestRegistry_RegisterGhiDe(t *testing.T) {
	r := NewRegistry[int]()

	_, _ = r.Register("x", 1)
	isNew, err := r.Register("x", 2)
	assert.NoError(t, err)
	assert.False(t, isNew, "đăng ký trùng tên phải trả về isNew=false")

	item, _ := r.Get("x")
	assert.Equal(t, 2, item, "giá trị mới phải ghi đè giá trị cũ")
}

func TestRegistry_TenRong(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "x")
	assert.Error(t, err, "tên rỗng phải bị từ chối")
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()

	_, exists := r.Get("khong-co")
	assert.False(t, exists)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	created := 0

	for i := 0; i < 3; i++ {
		item, err := r.GetOrCreate("likes", func() (string, error) {
			created++
			return "collection-likes", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "collection-likes", item)
	}

	assert.Equal(t, 1, created, "creator chỉ được gọi đúng một lần")
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("tweets", "collection-tweets")

	cleaned := false
	deleted, err := r.Clear("tweets", func(item string) error {
		cleaned = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned, "cleanup phải được gọi trước khi xóa")

	_, exists := r.Get("tweets")
	assert.False(t, exists)
}

func TestRegistry_RegisterDongThoi(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register(fmt.Sprintf("item-%d", n), n)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		item, exists := r.Get(fmt.Sprintf("item-%d", i))
		assert.True(t, exists)
		assert.Equal(t, i, item)
	}
}
