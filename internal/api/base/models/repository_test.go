// Package models - Test envelope phân trang: totalPage làm tròn lên, hasNext/hasPrev theo biên.
package models

import "testing"

func TestNewPaginateResult_TrangGiua(t *testing.T) {
	items := []string{"a", "b", "c"}

	// Constructor trả về con trỏ, cùng kiểu với FindWithPagination/AggregateWithPagination
	var r *PaginateResult[string] = NewPaginateResult(2, 3, items, 10)
	if r == nil {
		t.Fatal("NewPaginateResult không được trả về nil")
	}

	if r.TotalPage != 4 {
		t.Errorf("total=10 limit=3 phải có totalPage=4, nhận %d", r.TotalPage)
	}
	if r.ItemCount != 3 {
		t.Errorf("itemCount phải bằng len(items)=3, nhận %d", r.ItemCount)
	}
	if !r.HasNext {
		t.Error("trang 2/4 phải có hasNext=true")
	}
	if !r.HasPrev {
		t.Error("trang 2 phải có hasPrev=true")
	}
}

func TestNewPaginateResult_TrangDau(t *testing.T) {
	r := NewPaginateResult(1, 10, []int{1, 2}, 12)

	if r.HasPrev {
		t.Error("trang 1 không được có hasPrev")
	}
	if !r.HasNext {
		t.Error("total=12 limit=10 trang 1 phải có hasNext")
	}
}

func TestNewPaginateResult_TrangCuoi(t *testing.T) {
	r := NewPaginateResult(2, 10, []int{1, 2}, 12)

	if r.HasNext {
		t.Error("trang cuối không được có hasNext")
	}
	if r.TotalPage != 2 {
		t.Errorf("total=12 limit=10 phải có totalPage=2, nhận %d", r.TotalPage)
	}
}

func TestNewPaginateResult_Rong(t *testing.T) {
	r := NewPaginateResult(1, 10, []int{}, 0)

	if r.TotalPage != 0 {
		t.Errorf("total=0 phải có totalPage=0, nhận %d", r.TotalPage)
	}
	if r.HasNext || r.HasPrev {
		t.Error("kết quả rỗng không được có hasNext/hasPrev")
	}
	if r.Items == nil {
		t.Error("items phải là slice rỗng, không phải nil, để JSON trả về [] thay vì null")
	}
}

func TestNewPaginateResult_TotalChiaHet(t *testing.T) {
	r := NewPaginateResult(1, 5, []int{1, 2, 3, 4, 5}, 10)

	if r.TotalPage != 2 {
		t.Errorf("total=10 limit=5 phải có totalPage=2 (không dư trang), nhận %d", r.TotalPage)
	}
}
