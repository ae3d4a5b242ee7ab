// Package global - Test các custom validator: no_xss, strong_password, object_id.
package global

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type xssInput struct {
	Content string `validate:"no_xss"`
}

type passwordInput struct {
	Password string `validate:"strong_password"`
}

type objectIDInput struct {
	ID string `validate:"omitempty,object_id"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	cases := []struct {
		name    string
		content string
		valid   bool
	}{
		{"văn bản thường", "Video này hay quá!", true},
		{"chứa thẻ script", "xin chào <script>alert(1)</script>", false},
		{"chứa javascript uri", "bấm vào javascript:alert(1)", false},
		{"chứa onerror viết hoa", "<img src=x ONERROR=alert(1)>", false},
		{"chứa iframe", "<iframe src='x'></iframe>", false},
		{"ký tự < > vô hại", "1 < 2 và 3 > 2", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(xssInput{Content: tc.content})
			if tc.valid && err != nil {
				t.Errorf("nội dung %q phải hợp lệ, nhận lỗi: %v", tc.content, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("nội dung %q phải bị chặn", tc.content)
			}
		})
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"đủ 3 nhóm chữ hoa thường số", "MatKhau123", true},
		{"đủ 4 nhóm", "MatKhau123!", true},
		{"quá ngắn", "Mk1!", false},
		{"chỉ chữ thường", "matkhaudai", false},
		{"chỉ 2 nhóm", "matkhau123", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(passwordInput{Password: tc.password})
			if tc.valid && err != nil {
				t.Errorf("mật khẩu %q phải hợp lệ, nhận lỗi: %v", tc.password, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("mật khẩu %q phải bị từ chối", tc.password)
			}
		})
	}
}

func TestValidateObjectID(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(objectIDInput{ID: primitive.NewObjectID().Hex()}); err != nil {
		t.Errorf("hex ObjectID hợp lệ phải pass, nhận lỗi: %v", err)
	}
	if err := Validate.Struct(objectIDInput{ID: "abc"}); err == nil {
		t.Error("chuỗi không phải ObjectID phải bị từ chối")
	}
	if err := Validate.Struct(objectIDInput{ID: ""}); err != nil {
		t.Errorf("chuỗi rỗng với omitempty phải pass, nhận lỗi: %v", err)
	}
}
