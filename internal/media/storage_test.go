// Package media - Test sinh tên object và nhận diện URL ngoài storage.
package media

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectName_DinhDang(t *testing.T) {
	name := ObjectName("avatars", "anh-dai-dien.PNG")

	if !strings.HasPrefix(name, "avatars/") {
		t.Errorf("object name phải nằm trong prefix avatars/, nhận %q", name)
	}
	if !strings.HasSuffix(name, ".PNG") {
		t.Errorf("object name phải giữ đuôi file gốc, nhận %q", name)
	}

	hexPart := strings.TrimSuffix(strings.TrimPrefix(name, "avatars/"), ".PNG")
	if _, err := primitive.ObjectIDFromHex(hexPart); err != nil {
		t.Errorf("phần giữa phải là ObjectID hex để không trùng tên, nhận %q", hexPart)
	}
}

func TestObjectName_KhongTrung(t *testing.T) {
	a := ObjectName("videos", "clip.mp4")
	b := ObjectName("videos", "clip.mp4")
	if a == b {
		t.Error("hai lần sinh từ cùng tên file phải cho object name khác nhau")
	}
}

func TestObjectName_FileKhongDuoi(t *testing.T) {
	name := ObjectName("thumbnails", "khongduoi")
	if strings.Contains(strings.TrimPrefix(name, "thumbnails/"), ".") {
		t.Errorf("file không có đuôi thì object name không được có dấu chấm, nhận %q", name)
	}
}

func TestRemove_BoQuaURLNgoaiStorage(t *testing.T) {
	s := &Storage{bucket: "video-tube", publicURL: "http://localhost:9000"}

	// URL thuộc hệ thống khác phải được bỏ qua, không gọi tới MinIO
	err := s.Remove(context.Background(), "https://cdn.khac.example.com/bucket/file.png")
	if err != nil {
		t.Errorf("URL ngoài storage phải được bỏ qua không lỗi, nhận: %v", err)
	}
}
