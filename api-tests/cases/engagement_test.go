package tests

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEngagementModule kiểm tra like toggle, subscription toggle và số liệu
// engagement trên danh sách comment qua HTTP thật.
func TestEngagementModule(t *testing.T) {
	waitForHealth(serverRoot, 10, 1*time.Second, t)

	owner := newTestAccount(t, "chukenh")
	viewer := newTestAccount(t, "nguoixem")

	videoID := publishTestVideo(t, owner, fmt.Sprintf("Video engagement %d", time.Now().UnixNano()))

	// ============================================
	// LIKE TOGGLE TRÊN VIDEO
	// ============================================
	t.Run("👍 Video Like Toggle", func(t *testing.T) {
		// Toggle lần 1: tạo like, response phải kèm edge vừa tạo
		resp, body, err := viewer.Client.POST("/likes/toggle/v/"+videoID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi toggle like: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Toggle lần 1 phải thành công")

		data := dataOf(t, body)
		assert.Equal(t, true, data["liked"], "Toggle lần 1 phải trả về liked=true")

		like, ok := data["like"].(map[string]interface{})
		if assert.True(t, ok, "Response toggle phải kèm object like vừa tạo") {
			assert.Equal(t, viewer.UserID, like["likedBy"], "likedBy phải là viewer")
			assert.Equal(t, videoID, like["video"], "like phải trỏ đúng video")
		}
		fmt.Printf("✅ Toggle lần 1 tạo like thành công\n")

		// Toggle lần 2: gỡ like, không còn edge trong response
		resp, body, err = viewer.Client.POST("/likes/toggle/v/"+videoID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi toggle like lần 2: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data = dataOf(t, body)
		assert.Equal(t, false, data["liked"], "Toggle lần 2 phải trả về liked=false")
		_, hasLike := data["like"]
		assert.False(t, hasLike, "Response gỡ like không được kèm object like")
		fmt.Printf("✅ Toggle lần 2 gỡ like thành công\n")

		// Toggle lần 3: trạng thái phải đảo lại như lần 1
		_, body, err = viewer.Client.POST("/likes/toggle/v/"+videoID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi toggle like lần 3: %v", err)
		}
		data = dataOf(t, body)
		assert.Equal(t, true, data["liked"], "Toggle lần 3 phải tạo lại like")

		// Chi tiết video phản ánh đúng trạng thái
		_, body, err = viewer.Client.GET("/videos/" + videoID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc chi tiết video: %v", err)
		}
		detail := dataOf(t, body)
		assert.Equal(t, float64(1), detail["likesCount"], "likesCount phải là 1 sau chuỗi toggle lẻ")
		assert.Equal(t, true, detail["isLiked"], "isLiked phải true theo góc nhìn viewer")
		fmt.Printf("✅ Chi tiết video phản ánh đúng like state\n")
	})

	// ============================================
	// TOGGLE ĐỒNG THỜI: TỐI ĐA MỘT EDGE
	// ============================================
	t.Run("⚡ Concurrent Toggle - tối đa một like", func(t *testing.T) {
		concurrentVideoID := publishTestVideo(t, owner, fmt.Sprintf("Video concurrent %d", time.Now().UnixNano()))

		const workers = 8
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				viewer.Client.POST("/likes/toggle/v/"+concurrentVideoID, nil)
			}()
		}
		wg.Wait()

		_, body, err := viewer.Client.GET("/videos/" + concurrentVideoID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc chi tiết video: %v", err)
		}
		detail := dataOf(t, body)
		likesCount, _ := detail["likesCount"].(float64)
		assert.LessOrEqual(t, likesCount, float64(1), "Toggle đồng thời không được tạo quá một like cho cùng (video, user)")
		fmt.Printf("✅ Sau %d toggle đồng thời, likesCount = %v\n", workers, likesCount)
	})

	// ============================================
	// SUBSCRIPTION TOGGLE
	// ============================================
	t.Run("🔔 Subscription Toggle", func(t *testing.T) {
		// Viewer đăng ký kênh của owner, response phải kèm edge
		resp, body, err := viewer.Client.POST("/subscriptions/c/"+owner.UserID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi toggle subscription: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := dataOf(t, body)
		assert.Equal(t, true, data["subscribed"], "Toggle lần 1 phải trả về subscribed=true")

		sub, ok := data["subscription"].(map[string]interface{})
		if assert.True(t, ok, "Response phải kèm object subscription vừa tạo") {
			assert.Equal(t, owner.UserID, sub["channel"], "subscription phải trỏ đúng kênh")
			assert.Equal(t, viewer.UserID, sub["subscriber"], "subscriber phải là viewer")
		}
		fmt.Printf("✅ Subscribe kênh thành công\n")

		// Toggle lần 2: hủy đăng ký
		_, body, err = viewer.Client.POST("/subscriptions/c/"+owner.UserID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi toggle subscription lần 2: %v", err)
		}
		data = dataOf(t, body)
		assert.Equal(t, false, data["subscribed"], "Toggle lần 2 phải trả về subscribed=false")
		_, hasSub := data["subscription"]
		assert.False(t, hasSub, "Response hủy đăng ký không được kèm object subscription")
		fmt.Printf("✅ Unsubscribe kênh thành công\n")

		// Tự đăng ký chính mình phải bị chặn
		resp, body, err = owner.Client.POST("/subscriptions/c/"+owner.UserID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi tự subscribe: %v", err)
		}
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "Tự đăng ký kênh của mình phải trả về 400 (body: %s)", string(body))
		fmt.Printf("✅ Self-subscribe bị chặn đúng\n")
	})

	// ============================================
	// COMMENT: likesCount / isLiked THEO GÓC NHÌN VIEWER
	// ============================================
	t.Run("💬 Comment likesCount và isLiked", func(t *testing.T) {
		// Viewer bình luận rồi tự like bình luận đó
		resp, body, err := viewer.Client.POST("/comments/"+videoID, map[string]interface{}{
			"content": "Binh luan tu bo test tich hop",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo comment: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Tạo comment phải thành công (body: %s)", string(body))

		commentData := dataOf(t, body)
		commentID, _ := commentData["id"].(string)
		if commentID == "" {
			t.Fatalf("❌ Response tạo comment thiếu id (body: %s)", string(body))
		}

		_, _, err = viewer.Client.POST("/likes/toggle/c/"+commentID, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi like comment: %v", err)
		}

		findComment := func(body []byte) map[string]interface{} {
			data := dataOf(t, body)
			items, _ := data["items"].([]interface{})
			for _, item := range items {
				c, _ := item.(map[string]interface{})
				if c["id"] == commentID {
					return c
				}
			}
			return nil
		}

		// Theo góc nhìn viewer: isLiked=true
		_, body, err = viewer.Client.GET("/comments/" + videoID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi liệt kê comment: %v", err)
		}
		comment := findComment(body)
		if assert.NotNil(t, comment, "Danh sách comment phải chứa comment vừa tạo") {
			assert.Equal(t, float64(1), comment["likesCount"], "likesCount phải là 1")
			assert.Equal(t, true, comment["isLiked"], "isLiked phải true theo góc nhìn người đã like")
		}

		// Theo góc nhìn chủ video (chưa like): isLiked=false nhưng likesCount giữ nguyên
		_, body, err = owner.Client.GET("/comments/" + videoID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi liệt kê comment: %v", err)
		}
		comment = findComment(body)
		if assert.NotNil(t, comment) {
			assert.Equal(t, float64(1), comment["likesCount"], "likesCount không phụ thuộc viewer")
			assert.Equal(t, false, comment["isLiked"], "isLiked phải false với người chưa like")
		}
		fmt.Printf("✅ likesCount/isLiked của comment đúng theo góc nhìn từng viewer\n")
	})
}
