// Package utility - Test ký và parse JWT: round-trip, sai secret, hết hạn.
package utility

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"video_tube/internal/common"
)

type testClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

func TestToken_RoundTrip(t *testing.T) {
	claims := &testClaims{
		UserID: "64b0c8f2e4b0a1a2b3c4d5e6",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	token, err := CreateToken("secret-test", claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	parsed := &testClaims{}
	if err := ParseToken("secret-test", token, parsed); err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if parsed.UserID != claims.UserID {
		t.Errorf("userId sau parse phải là %s, nhận %s", claims.UserID, parsed.UserID)
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	claims := &testClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}
	token, err := CreateToken("secret-a", claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	if err := ParseToken("secret-b", token, &testClaims{}); err != common.ErrTokenInvalid {
		t.Errorf("sai secret phải trả về ErrTokenInvalid, nhận: %v", err)
	}
}

func TestParseToken_HetHan(t *testing.T) {
	claims := &testClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()},
	}
	token, err := CreateToken("secret-test", claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	if err := ParseToken("secret-test", token, &testClaims{}); err != common.ErrTokenExpired {
		t.Errorf("token hết hạn phải trả về ErrTokenExpired, nhận: %v", err)
	}
}

func TestParseToken_ChuoiRac(t *testing.T) {
	if err := ParseToken("secret-test", "khong.phai.jwt", &testClaims{}); err != common.ErrTokenInvalid {
		t.Errorf("chuỗi rác phải trả về ErrTokenInvalid, nhận: %v", err)
	}
}
