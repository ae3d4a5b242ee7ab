package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestPlaylistModule kiểm tra vòng đời playlist (tạo, thêm/gỡ video, số liệu
// tổng hợp, quyền sở hữu) và lịch sử xem qua HTTP thật.
func TestPlaylistModule(t *testing.T) {
	waitForHealth(serverRoot, 10, 1*time.Second, t)

	owner := newTestAccount(t, "chuplaylist")
	stranger := newTestAccount(t, "nguoila")

	videoA := publishTestVideo(t, owner, fmt.Sprintf("Video A %d", time.Now().UnixNano()))
	videoB := publishTestVideo(t, owner, fmt.Sprintf("Video B %d", time.Now().UnixNano()))

	var playlistID string

	// ============================================
	// TẠO PLAYLIST + SỐ LIỆU TỔNG HỢP TRÊN TRANG CHI TIẾT
	// ============================================
	t.Run("📁 Create + Detail totals", func(t *testing.T) {
		resp, body, err := owner.Client.POST("/playlists/", map[string]interface{}{
			"name":        fmt.Sprintf("Playlist test %d", time.Now().UnixNano()),
			"description": "Playlist tu bo test tich hop",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo playlist: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Tạo playlist phải thành công (body: %s)", string(body))

		data := dataOf(t, body)
		playlistID, _ = data["id"].(string)
		if playlistID == "" {
			t.Fatalf("❌ Response tạo playlist thiếu id (body: %s)", string(body))
		}
		fmt.Printf("✅ Tạo playlist thành công, ID: %s\n", playlistID)

		// Thêm cả hai video
		for _, videoID := range []string{videoA, videoB} {
			resp, body, err := owner.Client.PATCH(fmt.Sprintf("/playlists/add/%s/%s", videoID, playlistID), nil)
			if err != nil {
				t.Fatalf("❌ Lỗi khi thêm video vào playlist: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "Thêm video phải thành công (body: %s)", string(body))
		}

		// Trang chi tiết phải có totalVideos và totalViews
		_, body, err = owner.Client.GET("/playlists/" + playlistID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc chi tiết playlist: %v", err)
		}
		detail := dataOf(t, body)
		assert.Equal(t, float64(2), detail["totalVideos"], "totalVideos phải đếm đủ video trong playlist")

		totalViews, hasViews := detail["totalViews"].(float64)
		assert.True(t, hasViews, "Chi tiết playlist phải có totalViews")
		assert.GreaterOrEqual(t, totalViews, float64(0), "totalViews là tổng views các video, không âm")

		videos, _ := detail["videos"].([]interface{})
		assert.Len(t, videos, 2, "Mảng videos phải chứa đủ 2 video")
		fmt.Printf("✅ Chi tiết playlist có totalVideos=%v, totalViews=%v\n", detail["totalVideos"], totalViews)
	})

	// ============================================
	// ADD/REMOVE ROUND-TRIP, KHÔNG TRÙNG LẶP
	// ============================================
	t.Run("🔁 Add/Remove round-trip", func(t *testing.T) {
		if playlistID == "" {
			t.Skip("Skipping: Chưa có playlist ID")
		}

		// Thêm lại video đã có: không được nhân đôi
		_, _, err := owner.Client.PATCH(fmt.Sprintf("/playlists/add/%s/%s", videoA, playlistID), nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi thêm lại video: %v", err)
		}

		_, body, err := owner.Client.GET("/playlists/" + playlistID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc chi tiết playlist: %v", err)
		}
		detail := dataOf(t, body)
		assert.Equal(t, float64(2), detail["totalVideos"], "Thêm trùng video không được tăng totalVideos")

		// Gỡ một video
		resp, body, err := owner.Client.PATCH(fmt.Sprintf("/playlists/remove/%s/%s", videoA, playlistID), nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi gỡ video: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Gỡ video phải thành công (body: %s)", string(body))

		_, body, err = owner.Client.GET("/playlists/" + playlistID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc chi tiết playlist: %v", err)
		}
		detail = dataOf(t, body)
		assert.Equal(t, float64(1), detail["totalVideos"], "Sau khi gỡ phải còn đúng 1 video")
		fmt.Printf("✅ Add/Remove round-trip giữ totalVideos chính xác\n")
	})

	// ============================================
	// QUYỀN SỞ HỮU: 404 CHO ID KHÔNG TỒN TẠI, 403 CHO NGƯỜI LẠ
	// ============================================
	t.Run("🔒 Ownership", func(t *testing.T) {
		if playlistID == "" {
			t.Skip("Skipping: Chưa có playlist ID")
		}

		// ID hợp lệ nhưng không tồn tại: 404 bất kể viewer là ai
		resp, body, err := stranger.Client.PATCH("/playlists/aaaaaaaaaaaaaaaaaaaaaaaa", map[string]interface{}{
			"name": "doi ten",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi sửa playlist không tồn tại: %v", err)
		}
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "Playlist không tồn tại phải trả về 404 (body: %s)", string(body))

		// Playlist tồn tại nhưng không phải của mình: 403
		resp, body, err = stranger.Client.PATCH("/playlists/"+playlistID, map[string]interface{}{
			"name": "doi ten trai phep",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi sửa playlist của người khác: %v", err)
		}
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "Sửa playlist của người khác phải trả về 403 (body: %s)", string(body))
		fmt.Printf("✅ Ownership: 404 cho ID lạ, 403 cho người không phải chủ\n")
	})

	// ============================================
	// LỊCH SỬ XEM: MỚI NHẤT TRƯỚC, KHÔNG TRÙNG LẶP
	// ============================================
	t.Run("🕘 Watch history - xem lại nổi lên đầu, không trùng", func(t *testing.T) {
		watcher := newTestAccount(t, "nguoixemls")

		// Xem A, xem B, rồi xem lại A
		for _, videoID := range []string{videoA, videoB, videoA} {
			if _, _, err := watcher.Client.GET("/videos/" + videoID); err != nil {
				t.Fatalf("❌ Lỗi khi xem video: %v", err)
			}
		}

		_, body, err := watcher.Client.GET("/users/history")
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc lịch sử xem: %v", err)
		}
		data := dataOf(t, body)
		items, _ := data["items"].([]interface{})
		if !assert.Len(t, items, 2, "Lịch sử phải có đúng 2 video dù xem A hai lần") {
			return
		}

		first, _ := items[0].(map[string]interface{})
		second, _ := items[1].(map[string]interface{})
		assert.Equal(t, videoA, first["id"], "Video xem lại gần nhất phải đứng đầu lịch sử")
		assert.Equal(t, videoB, second["id"], "Video xem trước đó đứng sau")
		fmt.Printf("✅ Lịch sử xem đúng thứ tự và không trùng lặp\n")
	})
}
