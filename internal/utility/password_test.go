// Package utility - Test băm và so sánh mật khẩu bcrypt.
package utility

import (
	"testing"

	"video_tube/internal/common"
)

func TestHashPassword_HashKhacPlaintext(t *testing.T) {
	hash, err := HashPassword("matkhau123!A")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hash == "" || hash == "matkhau123!A" {
		t.Error("hash không được rỗng hoặc trùng plaintext")
	}
}

func TestComparePassword_DungMatKhau(t *testing.T) {
	hash, err := HashPassword("matkhau123!A")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if err := ComparePassword(hash, "matkhau123!A"); err != nil {
		t.Errorf("mật khẩu đúng phải pass, nhận lỗi: %v", err)
	}
}

func TestComparePassword_SaiMatKhau(t *testing.T) {
	hash, err := HashPassword("matkhau123!A")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if err := ComparePassword(hash, "saimatkhau"); err != common.ErrInvalidCredentials {
		t.Errorf("mật khẩu sai phải trả về ErrInvalidCredentials, nhận: %v", err)
	}
}

func TestHashPassword_HaiLanKhacNhau(t *testing.T) {
	h1, _ := HashPassword("matkhau123!A")
	h2, _ := HashPassword("matkhau123!A")
	if h1 == h2 {
		t.Error("bcrypt phải sinh salt ngẫu nhiên, hai lần băm không được giống nhau")
	}
}
