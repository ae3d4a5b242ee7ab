// Package basesvc - Test sort stage của các listing: tiebreak _id luôn tăng dần.
package basesvc

import "testing"

func TestSortNewestFirst(t *testing.T) {
	sort := SortNewestFirst()

	if len(sort) != 2 {
		t.Fatalf("sort phải có đúng 2 key, nhận %d", len(sort))
	}
	if sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("key chính phải là createdAt giảm dần, nhận %v", sort[0])
	}
	if sort[1].Key != "_id" || sort[1].Value != 1 {
		t.Errorf("tiebreak phải là _id TĂNG dần để thứ tự trang ổn định, nhận %v", sort[1])
	}
}

func TestSortWithTiebreak(t *testing.T) {
	sort := SortWithTiebreak("views", -1)

	if sort[0].Key != "views" || sort[0].Value != -1 {
		t.Errorf("key chính phải giữ nguyên field và chiều sort, nhận %v", sort[0])
	}
	if sort[1].Key != "_id" || sort[1].Value != 1 {
		t.Errorf("tiebreak phải là _id tăng dần bất kể chiều sort chính, nhận %v", sort[1])
	}
}
