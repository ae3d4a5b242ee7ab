// Package common - Test hệ thống lỗi: errors.Is với sentinel, chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is_Sentinel(t *testing.T) {
	wrapped := ConvertMongoError(ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("ErrNotFound đi qua ConvertMongoError vẫn phải match errors.Is(ErrNotFound)")
	}
}

func TestError_StatusCode(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrNotFound, StatusNotFound},
		{ErrForbidden, StatusForbidden},
		{ErrInvalidCredentials, StatusUnauthorized},
		{ErrDuplicate, StatusConflict},
		{ErrSelfSubscription, StatusBadRequest},
		{ErrToggleContention, StatusConflict},
	}

	for _, tc := range cases {
		var e *Error
		if !errors.As(tc.err, &e) {
			t.Fatalf("sentinel phải là *Error: %v", tc.err)
		}
		if e.StatusCode != tc.status {
			t.Errorf("%q phải có status %d, nhận %d", e.Message, tc.status, e.StatusCode)
		}
	}
}

func TestConvertMongoError_Duplicate(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	converted := ConvertMongoError(dupErr)
	if !errors.Is(converted, ErrMongoDuplicate) {
		t.Errorf("lỗi duplicate key phải convert thành ErrMongoDuplicate, nhận: %v", converted)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("nil phải được giữ nguyên là nil")
	}
}

func TestConvertMongoError_LoiLa(t *testing.T) {
	converted := ConvertMongoError(errors.New("lỗi lạ"))

	var e *Error
	if !errors.As(converted, &e) {
		t.Fatal("lỗi không nhận diện được vẫn phải được bọc thành *Error")
	}
	if e.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi không nhận diện được phải có status 500, nhận %d", e.StatusCode)
	}
}
