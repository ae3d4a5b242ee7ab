package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"video_tube_tests/utils"
)

const (
	serverRoot = "http://localhost:8080"
	apiBase    = serverRoot + "/api/v1"
)

var accountSeq int64

// waitForHealth chờ server sẵn sàng qua /healthz. Server không chạy thì skip
// cả bộ test tích hợp thay vì fail.
func waitForHealth(baseURL string, retries int, delay time.Duration, t *testing.T) {
	for i := 0; i < retries; i++ {
		resp, err := http.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(delay)
	}
	t.Skipf("⚠️ Server chưa sẵn sàng tại %s, bỏ qua bộ test tích hợp", baseURL)
}

// parseBody parse JSON response body, fail test nếu body không phải JSON
func parseBody(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("❌ Không parse được JSON response: %v (body: %s)", err, string(body))
	}
	return result
}

// dataOf lấy object data từ response envelope thành công
func dataOf(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	result := parseBody(t, body)
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("❌ Response không có data object (body: %s)", string(body))
	}
	return data
}

// testAccount là một user đã đăng ký + đăng nhập, kèm client mang token của họ
type testAccount struct {
	Client   *utils.HTTPClient
	UserID   string
	Username string
}

// newTestAccount đăng ký user mới với username duy nhất rồi đăng nhập.
// Mỗi lần gọi tạo một account độc lập để các test không giẫm lên nhau.
func newTestAccount(t *testing.T, label string) *testAccount {
	t.Helper()

	seq := atomic.AddInt64(&accountSeq, 1)
	username := fmt.Sprintf("%s%d_%d", label, seq, time.Now().UnixNano())
	password := "Test@12345"

	client := utils.NewHTTPClient(apiBase, 10)

	resp, body, err := client.POST("/users/register", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"fullName": "Nguoi dung " + label,
		"password": password,
	})
	if err != nil {
		t.Fatalf("❌ Lỗi khi đăng ký user %s: %v", username, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		t.Fatalf("❌ Đăng ký user thất bại (status: %d, body: %s)", resp.StatusCode, string(body))
	}

	resp, body, err = client.POST("/users/login", map[string]interface{}{
		"username": username,
		"password": password,
	})
	if err != nil {
		t.Fatalf("❌ Lỗi khi đăng nhập user %s: %v", username, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("❌ Đăng nhập thất bại (status: %d, body: %s)", resp.StatusCode, string(body))
	}

	data := dataOf(t, body)
	token, _ := data["accessToken"].(string)
	if token == "" {
		t.Fatalf("❌ Login response thiếu accessToken (body: %s)", string(body))
	}
	client.SetToken(token)

	user, _ := data["user"].(map[string]interface{})
	userID, _ := user["id"].(string)
	if userID == "" {
		t.Fatalf("❌ Login response thiếu user.id (body: %s)", string(body))
	}

	return &testAccount{Client: client, UserID: userID, Username: username}
}

// publishTestVideo upload một video nhỏ cho account và trả về video ID
func publishTestVideo(t *testing.T, account *testAccount, title string) string {
	t.Helper()

	resp, body, err := account.Client.PostMultipart("/videos",
		map[string]string{
			"title":       title,
			"description": "Video tạo bởi bộ test tích hợp",
			"duration":    "12.5",
		},
		map[string]utils.MultipartFile{
			"videoFile": {Filename: "clip.mp4", Content: []byte("fake-mp4-bytes")},
			"thumbnail": {Filename: "thumb.jpg", Content: []byte("fake-jpg-bytes")},
		})
	if err != nil {
		t.Fatalf("❌ Lỗi khi upload video: %v", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		t.Fatalf("❌ Upload video thất bại (status: %d, body: %s)", resp.StatusCode, string(body))
	}

	data := dataOf(t, body)
	videoID, _ := data["id"].(string)
	if videoID == "" {
		t.Fatalf("❌ Publish response thiếu id (body: %s)", string(body))
	}
	return videoID
}
