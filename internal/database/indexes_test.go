// Package database - Test parser tag index: tách cấu hình, partial filter cho compound unique.
package database

import "testing"

func TestParseIndexTag_Single(t *testing.T) {
	configs := parseIndexTag("single:1")
	if len(configs) != 1 {
		t.Fatalf("tag một cấu hình phải trả về 1 entry, nhận %d", len(configs))
	}
	if configs[0]["single"] != "1" {
		t.Errorf("single phải có giá trị '1', nhận %q", configs[0]["single"])
	}
}

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	// LikedBy tham gia ba compound index, phân cách bởi ';'
	configs := parseIndexTag("compound:video_likedBy_unique;compound:comment_likedBy_unique;compound:tweet_likedBy_unique")
	if len(configs) != 3 {
		t.Fatalf("ba cấu hình phân cách ';' phải trả về 3 entries, nhận %d", len(configs))
	}
	if configs[0]["compound"] != "video_likedBy_unique" {
		t.Errorf("entry đầu phải là video_likedBy_unique, nhận %q", configs[0]["compound"])
	}
	if configs[2]["compound"] != "tweet_likedBy_unique" {
		t.Errorf("entry cuối phải là tweet_likedBy_unique, nhận %q", configs[2]["compound"])
	}
}

func TestParseIndexTag_CompoundVoiPartial(t *testing.T) {
	configs := parseIndexTag("compound:video_likedBy_unique,partial:video")
	if len(configs) != 1 {
		t.Fatalf("một cấu hình nhiều cặp key:value phải trả về 1 entry, nhận %d", len(configs))
	}
	if configs[0]["compound"] != "video_likedBy_unique" {
		t.Errorf("thiếu tên compound group, nhận %q", configs[0]["compound"])
	}
	if configs[0]["partial"] != "video" {
		t.Errorf("thiếu partial field, nhận %q", configs[0]["partial"])
	}
}

func TestParseIndexTag_KeyKhongCoGiaTri(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("phải trả về 1 entry, nhận %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("key không có giá trị vẫn phải có mặt trong map")
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Error("key sparse phải có mặt trong map")
	}
}

func TestParseOrder(t *testing.T) {
	if parseOrder("-1") != -1 {
		t.Error("parseOrder('-1') phải trả về -1")
	}
	if parseOrder("1") != 1 {
		t.Error("parseOrder('1') phải trả về 1")
	}
	if parseOrder("xyz") != 1 {
		t.Error("giá trị không hợp lệ phải fallback về 1")
	}
	if parseOrder("5") != 1 {
		t.Error("số khác 1/-1 phải fallback về 1")
	}
}
