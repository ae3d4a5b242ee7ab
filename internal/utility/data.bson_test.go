// Package utility - Test ToMap và CustomBson: field con trỏ nil với omitempty phải bị loại bỏ.
package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type edgeDoc struct {
	Video   *primitive.ObjectID `bson:"video,omitempty"`
	Comment *primitive.ObjectID `bson:"comment,omitempty"`
	LikedBy primitive.ObjectID  `bson:"likedBy"`
}

func TestToMap_BoQuaConTroNil(t *testing.T) {
	videoID := primitive.NewObjectID()
	doc := edgeDoc{Video: &videoID, LikedBy: primitive.NewObjectID()}

	m, err := ToMap(doc)
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}

	if _, ok := m["video"]; !ok {
		t.Error("field video đã set phải có mặt trong map")
	}
	if _, ok := m["comment"]; ok {
		t.Error("field comment nil với omitempty không được xuất hiện trong map, nếu không document sẽ chứa comment:null và phá partial index")
	}
	if _, ok := m["likedBy"]; !ok {
		t.Error("field likedBy không omitempty phải luôn có mặt")
	}
}

func TestCustomBson_Set(t *testing.T) {
	b := &CustomBson{}
	m, err := b.Set(map[string]interface{}{"fullName": "Nguyễn Văn A"})
	if err != nil {
		t.Fatalf("Set lỗi: %v", err)
	}

	setDoc, ok := m["$set"]
	if !ok || setDoc == nil {
		t.Fatalf("kết quả phải có key $set, nhận: %+v", m)
	}
	if len(m) != 1 {
		t.Errorf("wrapper chỉ được chứa đúng một operator, nhận: %+v", m)
	}
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	parsed, err := String2ObjectID(id.Hex())
	if err != nil {
		t.Fatalf("hex hợp lệ phải parse được, lỗi: %v", err)
	}
	if parsed != id {
		t.Errorf("parse round-trip phải giữ nguyên id, nhận %s", parsed.Hex())
	}

	if _, err := String2ObjectID("khong-phai-hex"); err == nil {
		t.Error("chuỗi không phải hex phải trả về lỗi")
	}
}
